// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	tokenFn      func(ctx context.Context, login, password string) (models.Token, error)
	parseTokenFn func(tokenString string) (models.Token, error)
}

func (m *mockAuthService) Token(ctx context.Context, login, password string) (models.Token, error) {
	return m.tokenFn(ctx, login, password)
}

func (m *mockAuthService) ParseToken(tokenString string) (models.Token, error) {
	return m.parseTokenFn(tokenString)
}

// mockAccountService implements service.AccountService for unit tests.
type mockAccountService struct {
	connectFn        func(ctx context.Context, apiKey string) (*models.Settings, error)
	disconnectFn     func(ctx context.Context) error
	settingsFn       func(ctx context.Context) (*models.Settings, error)
	updateSettingsFn func(ctx context.Context, upd models.Settings) (*models.Settings, error)
	applySettingsFn  func(ctx context.Context) error
}

func (m *mockAccountService) Connect(ctx context.Context, apiKey string) (*models.Settings, error) {
	return m.connectFn(ctx, apiKey)
}

func (m *mockAccountService) Disconnect(ctx context.Context) error {
	return m.disconnectFn(ctx)
}

func (m *mockAccountService) Settings(ctx context.Context) (*models.Settings, error) {
	return m.settingsFn(ctx)
}

func (m *mockAccountService) UpdateSettings(ctx context.Context, upd models.Settings) (*models.Settings, error) {
	return m.updateSettingsFn(ctx, upd)
}

func (m *mockAccountService) ApplySettings(ctx context.Context) error {
	return m.applySettingsFn(ctx)
}

// mockBatchTracker implements service.BatchTracker for unit tests.
type mockBatchTracker struct {
	recordSubmissionFn func(ctx context.Context, body []byte) (string, error)
	reconcileFn        func(ctx context.Context) ([]models.BatchResponse, models.BlockFlags, error)
}

func (m *mockBatchTracker) RecordSubmission(ctx context.Context, body []byte) (string, error) {
	return m.recordSubmissionFn(ctx, body)
}

func (m *mockBatchTracker) Reconcile(ctx context.Context) ([]models.BatchResponse, models.BlockFlags, error) {
	return m.reconcileFn(ctx)
}

// mockSyncService implements service.SyncService for unit tests.
type mockSyncService struct {
	syncContactsFn   func(ctx context.Context) (service.SyncResult, error)
	syncCategoriesFn func(ctx context.Context) (service.SyncResult, error)
	syncProductsFn   func(ctx context.Context) (service.SyncResult, error)
	syncOrdersFn     func(ctx context.Context) (service.SyncResult, error)
	syncCartsFn      func(ctx context.Context) (service.SyncResult, error)
}

func (m *mockSyncService) SyncContacts(ctx context.Context) (service.SyncResult, error) {
	return m.syncContactsFn(ctx)
}

func (m *mockSyncService) SyncCategories(ctx context.Context) (service.SyncResult, error) {
	return m.syncCategoriesFn(ctx)
}

func (m *mockSyncService) SyncProducts(ctx context.Context) (service.SyncResult, error) {
	return m.syncProductsFn(ctx)
}

func (m *mockSyncService) SyncOrders(ctx context.Context) (service.SyncResult, error) {
	return m.syncOrdersFn(ctx)
}

func (m *mockSyncService) SyncCarts(ctx context.Context) (service.SyncResult, error) {
	return m.syncCartsFn(ctx)
}

func (m *mockSyncService) UpdateOrCreateContact(context.Context, models.Contact, string, bool) error {
	return nil
}

func (m *mockSyncService) CreateOrUpdateProduct(context.Context, int64) error { return nil }

func (m *mockSyncService) CreateOrder(context.Context, int64) error { return nil }

func (m *mockSyncService) UpdateOrder(context.Context, int64) error { return nil }

// mockEventDispatcher implements service.EventDispatcher for unit tests.
type mockEventDispatcher struct {
	handleFn func(ctx context.Context, event models.DomainEvent) error
}

func (m *mockEventDispatcher) Handle(ctx context.Context, event models.DomainEvent) error {
	return m.handleFn(ctx, event)
}

// mockCartService implements service.CartService for unit tests.
type mockCartService struct {
	restoreCartFn func(ctx context.Context, token string) (int64, string, error)
}

func (m *mockCartService) PushCart(context.Context, int64) error { return nil }

func (m *mockCartService) PushCartItemUpdate(context.Context, models.CartItem) error { return nil }

func (m *mockCartService) RestoreToken(int64, string) string { return "" }

func (m *mockCartService) RestoreCart(ctx context.Context, token string) (int64, string, error) {
	return m.restoreCartFn(ctx, token)
}

// mockTrackingService implements service.TrackingService for unit tests.
type mockTrackingService struct {
	pageScriptsFn func(ctx context.Context, customerID int64, routeName string) (string, error)
}

func (m *mockTrackingService) PageScripts(ctx context.Context, customerID int64, routeName string) (string, error) {
	return m.pageScriptsFn(ctx, customerID, routeName)
}

func (m *mockTrackingService) MarkIdentify(context.Context, int64, string) error { return nil }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given services. Fields the test
// does not exercise may stay nil.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// newTestRouter mounts the URL-parameter routes without the auth middleware
// so that handlers depending on chi route values can be exercised directly.
func newTestRouter(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Post("/sync/{endpoint}", h.sync)
	router.Get("/cart/restore/{token}", h.restoreCart)
	return router
}

// stubToken returns a models.Token with the given signed string and login.
func stubToken(signed, login string) models.Token {
	return models.Token{SignedString: signed, Login: login}
}
