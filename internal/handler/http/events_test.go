// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/models"
)

// ─────────────────────────────────────────────
// event intake
// ─────────────────────────────────────────────

// TestEvent_Success verifies that a known lifecycle notification is handed to
// the dispatcher and acknowledged with 200.
func TestEvent_Success(t *testing.T) {
	dispatcher := &mockEventDispatcher{
		handleFn: func(_ context.Context, event models.DomainEvent) error {
			assert.Equal(t, models.EventOrderPlaced, event.Kind)
			assert.Equal(t, int64(100), event.OrderID)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{EventDispatcher: dispatcher})

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{"kind":"order_placed","order_id":100}`))
	rec := httptest.NewRecorder()

	h.event(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestEvent_InvalidJSON verifies that a malformed body is rejected with 400
// before reaching the dispatcher.
func TestEvent_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{EventDispatcher: &mockEventDispatcher{}})

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()

	h.event(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestEvent_UnknownKind verifies that a kind outside the closed set is
// rejected with 400 before reaching the dispatcher.
func TestEvent_UnknownKind(t *testing.T) {
	dispatcher := &mockEventDispatcher{
		handleFn: func(_ context.Context, _ models.DomainEvent) error {
			t.Fatal("dispatcher must not be called for unknown kinds")
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{EventDispatcher: dispatcher})

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{"kind":"reindex_search"}`))
	rec := httptest.NewRecorder()

	h.event(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestEvent_DispatchFailure verifies that dispatcher errors surface through
// the shared error-to-status mapping.
func TestEvent_DispatchFailure(t *testing.T) {
	dispatcher := &mockEventDispatcher{
		handleFn: func(_ context.Context, _ models.DomainEvent) error {
			return assert.AnError
		},
	}
	h := newTestHandler(t, &service.Services{EventDispatcher: dispatcher})

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{"kind":"order_paid","order_id":100}`))
	rec := httptest.NewRecorder()

	h.event(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
