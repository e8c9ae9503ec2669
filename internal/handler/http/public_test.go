// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-sync/internal/service"
)

// ─────────────────────────────────────────────
// tracking scripts
// ─────────────────────────────────────────────

// TestTrackingScripts_Success verifies that rendered snippets are served as
// HTML with the query parameters forwarded to the service.
func TestTrackingScripts_Success(t *testing.T) {
	tracking := &mockTrackingService{
		pageScriptsFn: func(_ context.Context, customerID int64, routeName string) (string, error) {
			assert.Equal(t, int64(42), customerID)
			assert.Equal(t, "product", routeName)
			return "<script>init('brand-7')</script>", nil
		},
	}
	h := newTestHandler(t, &service.Services{TrackingService: tracking})

	req := httptest.NewRequest(http.MethodGet, "/api/tracking/scripts?customer_id=42&route=product", nil)
	rec := httptest.NewRecorder()

	h.trackingScripts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<script>init('brand-7')</script>", rec.Body.String())
}

// TestTrackingScripts_AnonymousVisitor verifies that a missing customer_id is
// passed through as zero.
func TestTrackingScripts_AnonymousVisitor(t *testing.T) {
	tracking := &mockTrackingService{
		pageScriptsFn: func(_ context.Context, customerID int64, _ string) (string, error) {
			assert.Zero(t, customerID)
			return "", nil
		},
	}
	h := newTestHandler(t, &service.Services{TrackingService: tracking})

	req := httptest.NewRequest(http.MethodGet, "/api/tracking/scripts", nil)
	rec := httptest.NewRecorder()

	h.trackingScripts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// TestTrackingScripts_BadCustomerID verifies the 400 response for a
// non-numeric customer_id.
func TestTrackingScripts_BadCustomerID(t *testing.T) {
	h := newTestHandler(t, &service.Services{TrackingService: &mockTrackingService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/tracking/scripts?customer_id=abc", nil)
	rec := httptest.NewRecorder()

	h.trackingScripts(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// cart recovery
// ─────────────────────────────────────────────

// TestRestoreCart_Success verifies that a valid recovery token resolves into
// the customer and cart correlation id.
func TestRestoreCart_Success(t *testing.T) {
	carts := &mockCartService{
		restoreCartFn: func(_ context.Context, token string) (int64, string, error) {
			assert.Equal(t, "opaque-token", token)
			return 42, "cart-uuid", nil
		},
	}
	h := newTestHandler(t, &service.Services{CartService: carts})

	req := httptest.NewRequest(http.MethodGet, "/cart/restore/opaque-token", nil)
	rec := httptest.NewRecorder()

	newTestRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got restoredCartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.CustomerID)
	assert.Equal(t, "cart-uuid", got.CartID)
}

// TestRestoreCart_BadToken verifies the 400 mapping for rejected tokens.
func TestRestoreCart_BadToken(t *testing.T) {
	carts := &mockCartService{
		restoreCartFn: func(_ context.Context, _ string) (int64, string, error) {
			return 0, "", service.ErrBadRestoreToken
		},
	}
	h := newTestHandler(t, &service.Services{CartService: carts})

	req := httptest.NewRequest(http.MethodGet, "/cart/restore/garbage", nil)
	rec := httptest.NewRecorder()

	newTestRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
