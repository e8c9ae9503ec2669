// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/mock"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/models"
)

// syncMocks собирает все зависимости sync-сервиса
type syncMocks struct {
	client    *mock.MockClient
	settings  *mock.MockSettingsStore
	contacts  *mock.MockContactSource
	catalog   *mock.MockCatalogSource
	orders    *mock.MockOrderSource
	carts     *mock.MockCartSource
	tracker   *mock.MockBatchTracker
	customers *mock.MockCustomerService
	cartSvc   *mock.MockCartService
}

// newTestSync — хелпер для создания sync-сервиса с моками
func newTestSync(t *testing.T, ctrl *gomock.Controller) (service.SyncService, *syncMocks) {
	t.Helper()

	m := &syncMocks{
		client:    mock.NewMockClient(ctrl),
		settings:  mock.NewMockSettingsStore(ctrl),
		contacts:  mock.NewMockContactSource(ctrl),
		catalog:   mock.NewMockCatalogSource(ctrl),
		orders:    mock.NewMockOrderSource(ctrl),
		carts:     mock.NewMockCartSource(ctrl),
		tracker:   mock.NewMockBatchTracker(ctrl),
		customers: mock.NewMockCustomerService(ctrl),
		cartSvc:   mock.NewMockCartService(ctrl),
	}

	storages := &store.Storages{
		Settings:   m.settings,
		Attributes: mock.NewMockAttributeStore(ctrl),
		Contacts:   m.contacts,
		Catalog:    m.catalog,
		Orders:     m.orders,
		Carts:      m.carts,
	}

	mapper := service.NewMapper(config.App{Currency: "USD", StoreURL: "https://shop.example"})
	svc := service.NewSyncService(m.client, storages, m.tracker, m.customers, m.cartSvc, mapper, logger.Nop())

	return svc, m
}

// ── выбор стратегии ──────────────────────────────────────────────────────────

func TestSyncService_SyncContacts_Batched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	// 120 подписок при пороге 100: batch-стратегия, по одному заданию на страницу
	settings := &models.Settings{PageSize: 50, BatchThreshold: 100}
	m.tracker.EXPECT().Reconcile(ctx).Return(nil, models.BlockFlags{}, nil)
	m.settings.EXPECT().Load(ctx).Return(settings, nil)
	m.contacts.EXPECT().CountSubscriptions(ctx).Return(120, nil)

	page := func(n int) []models.Contact {
		contacts := make([]models.Contact, n)
		for i := range contacts {
			contacts[i] = models.Contact{Subscription: models.Subscription{
				ID:     int64(i + 1),
				Email:  fmt.Sprintf("user%d@example.com", i+1),
				Active: true,
			}}
		}
		return contacts
	}
	m.contacts.EXPECT().SubscriptionsPage(ctx, 50, 0).Return(page(50), nil)
	m.contacts.EXPECT().SubscriptionsPage(ctx, 50, 50).Return(page(50), nil)
	m.contacts.EXPECT().SubscriptionsPage(ctx, 50, 100).Return(page(20), nil)
	m.contacts.EXPECT().SubscriptionsPage(ctx, 50, 150).Return(nil, nil)

	submissions := 0
	m.client.EXPECT().Perform(ctx, http.MethodPost, "batches", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, body any) ([]byte, error) {
			request, ok := body.(models.BatchRequest)
			require.True(t, ok)
			assert.Equal(t, "contacts", request.Endpoint)
			assert.Equal(t, http.MethodPost, request.Method)
			submissions++
			return []byte(fmt.Sprintf(`{"batchID":"b-%d"}`, submissions)), nil
		},
	).Times(3)
	recorded := 0
	m.tracker.EXPECT().RecordSubmission(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []byte) (string, error) {
			recorded++
			return fmt.Sprintf("b-%d", recorded), nil
		},
	).Times(3)

	result, err := svc.SyncContacts(ctx)

	require.NoError(t, err)
	assert.True(t, result.Batched)
	assert.Equal(t, 120, result.Total)
	assert.Equal(t, []string{"b-1", "b-2", "b-3"}, result.BatchIDs)
	assert.Zero(t, result.Pushed)
}

func TestSyncService_SyncCategories_Direct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	// 10 категорий при пороге 1000 и странице 100: прямые запросы
	settings := &models.Settings{PageSize: 100, BatchThreshold: 1000}
	m.tracker.EXPECT().Reconcile(ctx).Return(nil, models.BlockFlags{}, nil)
	m.settings.EXPECT().Load(ctx).Return(settings, nil)
	m.catalog.EXPECT().CountCategories(ctx).Return(10, nil)

	categories := make([]models.Category, 10)
	for i := range categories {
		categories[i] = models.Category{ID: int64(i + 1), Name: fmt.Sprintf("category %d", i+1)}
	}
	m.catalog.EXPECT().CategoriesPage(ctx, 100, 0).Return(categories, nil)
	m.catalog.EXPECT().CategoriesPage(ctx, 100, 100).Return(nil, nil)

	// каждая категория: существование не подтверждено — создаём
	m.client.EXPECT().Perform(ctx, http.MethodGet, gomock.Any(), nil).Return([]byte{}, nil).Times(10)
	m.client.EXPECT().Perform(ctx, http.MethodPost, "categories", gomock.Any()).Return([]byte(`{}`), nil).Times(10)

	result, err := svc.SyncCategories(ctx)

	require.NoError(t, err)
	assert.False(t, result.Batched)
	assert.Equal(t, 10, result.Total)
	assert.Equal(t, 10, result.Pushed)
	assert.Empty(t, result.BatchIDs)
}

func TestSyncService_SyncContacts_PageSizeOverflowForcesBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	// 150 подписок не достигают порога 1000, но не помещаются в страницу —
	// batch-стратегия всё равно
	settings := &models.Settings{PageSize: 100, BatchThreshold: 1000}
	m.tracker.EXPECT().Reconcile(ctx).Return(nil, models.BlockFlags{}, nil)
	m.settings.EXPECT().Load(ctx).Return(settings, nil)
	m.contacts.EXPECT().CountSubscriptions(ctx).Return(150, nil)

	page := func(n int) []models.Contact {
		contacts := make([]models.Contact, n)
		for i := range contacts {
			contacts[i] = models.Contact{Subscription: models.Subscription{
				ID:    int64(i + 1),
				Email: fmt.Sprintf("user%d@example.com", i+1),
			}}
		}
		return contacts
	}
	m.contacts.EXPECT().SubscriptionsPage(ctx, 100, 0).Return(page(100), nil)
	m.contacts.EXPECT().SubscriptionsPage(ctx, 100, 100).Return(page(50), nil)
	m.contacts.EXPECT().SubscriptionsPage(ctx, 100, 200).Return(nil, nil)

	m.client.EXPECT().Perform(ctx, http.MethodPost, "batches", gomock.Any()).
		Return([]byte(`{"batchID":"b-1"}`), nil).Times(2)
	m.tracker.EXPECT().RecordSubmission(ctx, gomock.Any()).Return("b-1", nil).Times(2)

	result, err := svc.SyncContacts(ctx)

	require.NoError(t, err)
	assert.True(t, result.Batched)
}

// ── блокировки ───────────────────────────────────────────────────────────────

func TestSyncService_SyncContacts_Blocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	m.tracker.EXPECT().Reconcile(ctx).Return(
		[]models.BatchResponse{{BatchID: "b-1", Endpoint: "contacts", Status: "inProgress"}},
		models.BlockFlags{Contacts: true},
		nil,
	)

	_, err := svc.SyncContacts(ctx)

	require.ErrorIs(t, err, service.ErrEndpointBlocked)
}

func TestSyncService_SyncCategories_BlockedByProductsFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	// взведённый флаг товаров блокирует и категории
	m.tracker.EXPECT().Reconcile(ctx).Return(nil, models.BlockFlags{Products: true}, nil)

	_, err := svc.SyncCategories(ctx)

	require.ErrorIs(t, err, service.ErrEndpointBlocked)
}

// ── заказы ───────────────────────────────────────────────────────────────────

func TestSyncService_SyncOrders_SkipsOrdersWithoutEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	settings := &models.Settings{PageSize: 100, BatchThreshold: 1000}
	m.tracker.EXPECT().Reconcile(ctx).Return(nil, models.BlockFlags{}, nil)
	m.settings.EXPECT().Load(ctx).Return(settings, nil)
	m.orders.EXPECT().CountOrders(ctx).Return(2, nil)

	withEmail := models.Order{ID: 1, OrderGUID: "guid-1", CustomerID: 10}
	anonymous := models.Order{ID: 2, OrderGUID: "guid-2", CustomerID: 11}
	m.orders.EXPECT().OrdersPage(ctx, 100, 0).Return([]models.Order{withEmail, anonymous}, nil)
	m.orders.EXPECT().OrdersPage(ctx, 100, 100).Return(nil, nil)

	known := models.Customer{ID: 10, Email: "buyer@example.com"}
	m.contacts.EXPECT().CustomerByID(ctx, int64(10)).Return(known, nil)
	m.customers.EXPECT().ResolveEmail(ctx, known).Return("buyer@example.com", nil)

	// аккаунт удалён, биллингового адреса нет — заказ пропускается
	m.contacts.EXPECT().CustomerByID(ctx, int64(11)).Return(models.Customer{}, store.ErrNotFound)

	m.client.EXPECT().Perform(ctx, http.MethodPost, "orders", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, body any) ([]byte, error) {
			dto, ok := body.(models.OrderDTO)
			require.True(t, ok)
			assert.Equal(t, "guid-1", dto.OrderID)
			assert.Equal(t, "buyer@example.com", dto.Email)
			return []byte(`{}`), nil
		},
	)

	result, err := svc.SyncOrders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Pushed)
}

func TestSyncService_SyncOrders_BillingAddressFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	settings := &models.Settings{PageSize: 100, BatchThreshold: 1000}
	m.tracker.EXPECT().Reconcile(ctx).Return(nil, models.BlockFlags{}, nil)
	m.settings.EXPECT().Load(ctx).Return(settings, nil)
	m.orders.EXPECT().CountOrders(ctx).Return(1, nil)

	guest := models.Order{ID: 5, OrderGUID: "guid-5", CustomerID: 20, BillingAddrID: 7}
	m.orders.EXPECT().OrdersPage(ctx, 100, 0).Return([]models.Order{guest}, nil)
	m.orders.EXPECT().OrdersPage(ctx, 100, 100).Return(nil, nil)

	// у гостевого аккаунта нет email — берём его из биллингового адреса заказа
	account := models.Customer{ID: 20, IsGuest: true}
	m.contacts.EXPECT().CustomerByID(ctx, int64(20)).Return(account, nil)
	m.customers.EXPECT().ResolveEmail(ctx, account).Return("", nil)
	m.contacts.EXPECT().AddressByID(ctx, int64(7)).Return(models.Address{ID: 7, Email: "guest@example.com"}, nil)

	m.client.EXPECT().Perform(ctx, http.MethodPost, "orders", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, body any) ([]byte, error) {
			dto := body.(models.OrderDTO)
			assert.Equal(t, "guest@example.com", dto.Email)
			return []byte(`{}`), nil
		},
	)

	result, err := svc.SyncOrders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Pushed)
}

// ── корзины ──────────────────────────────────────────────────────────────────

func TestSyncService_SyncCarts_AlwaysDirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	settings := &models.Settings{PageSize: 100, BatchThreshold: 1000}
	m.settings.EXPECT().Load(ctx).Return(settings, nil)
	m.carts.EXPECT().CountCarts(ctx).Return(3, nil)
	m.carts.EXPECT().CartCustomersPage(ctx, 100, 0).Return([]int64{1, 2, 3}, nil)
	m.carts.EXPECT().CartCustomersPage(ctx, 100, 100).Return(nil, nil)

	// сбой на одном покупателе не прерывает остальных
	m.cartSvc.EXPECT().PushCart(ctx, int64(1)).Return(nil)
	m.cartSvc.EXPECT().PushCart(ctx, int64(2)).Return(errors.New("boom"))
	m.cartSvc.EXPECT().PushCart(ctx, int64(3)).Return(nil)

	result, err := svc.SyncCarts(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Pushed)
	assert.False(t, result.Batched)
}

// ── одиночные записи ─────────────────────────────────────────────────────────

func TestSyncService_UpdateOrCreateContact_PatchesKnownContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	contact := models.Contact{Subscription: models.Subscription{ID: 1, Email: "known@example.com", Active: true}}

	// известный контакт патчится по email, а не по удалённому id
	m.customers.EXPECT().ContactID(ctx, "known@example.com").Return("remote-1", nil)
	m.client.EXPECT().Perform(ctx, http.MethodPatch, "contacts?email=known%40example.com", gomock.Any()).Return([]byte(`{}`), nil)

	err := svc.UpdateOrCreateContact(ctx, contact, models.ContactStatusNonSubscribed, false)

	require.NoError(t, err)
}

func TestSyncService_CreateOrUpdateProduct_UpdatesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	product := models.Product{ID: 15, Name: "Mug", Published: true}
	m.catalog.EXPECT().ProductByID(ctx, int64(15)).Return(product, nil)

	m.client.EXPECT().Perform(ctx, http.MethodGet, "products/15", nil).Return([]byte(`{"productID":"15"}`), nil)
	m.client.EXPECT().Perform(ctx, http.MethodPut, "products/15", gomock.Any()).Return([]byte(`{}`), nil)

	err := svc.CreateOrUpdateProduct(ctx, 15)

	require.NoError(t, err)
}

func TestSyncService_CreateOrUpdateProduct_GoneProductSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	// товар сняли с публикации после события — пропускаем без ошибки
	m.catalog.EXPECT().ProductByID(ctx, int64(16)).Return(models.Product{}, store.ErrNotFound)

	err := svc.CreateOrUpdateProduct(ctx, 16)

	require.NoError(t, err)
}

func TestSyncService_UpdateOrCreateContact_CreatesUnknownContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSync(t, ctrl)
	ctx := context.Background()

	contact := models.Contact{Subscription: models.Subscription{ID: 2, Email: "new@example.com", Active: true}}

	m.customers.EXPECT().ContactID(ctx, "new@example.com").Return("", nil)
	m.client.EXPECT().Perform(ctx, http.MethodPost, "contacts", gomock.Any()).Return([]byte(`{}`), nil)

	err := svc.UpdateOrCreateContact(ctx, contact, models.ContactStatusNonSubscribed, false)

	require.NoError(t, err)
}

func TestSyncService_UpdateOrCreateContact_NoEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSync(t, ctrl)

	err := svc.UpdateOrCreateContact(context.Background(), models.Contact{}, models.ContactStatusNonSubscribed, false)

	require.ErrorIs(t, err, service.ErrInvalidDataProvided)
}
