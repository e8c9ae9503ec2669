// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/mock"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/models"
)

// newTestCarts — хелпер для создания cart-сервиса с моками
func newTestCarts(t *testing.T, ctrl *gomock.Controller) (service.CartService, *mock.MockClient, *mock.MockCartSource, *mock.MockContactSource, *mock.MockCustomerService) {
	t.Helper()

	client := mock.NewMockClient(ctrl)
	carts := mock.NewMockCartSource(ctrl)
	contacts := mock.NewMockContactSource(ctrl)
	customers := mock.NewMockCustomerService(ctrl)

	mapper := service.NewMapper(config.App{Currency: "USD", StoreURL: "https://shop.example"})
	svc := service.NewCartService(client, carts, contacts, customers, mapper, config.App{StoreURL: "https://shop.example/"}, logger.Nop())

	return svc, client, carts, contacts, customers
}

// ── PushCart ─────────────────────────────────────────────────────────────────

func TestCartService_PushCart_CreatesNewRemoteCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, carts, contacts, customers := newTestCarts(t, ctrl)
	ctx := context.Background()

	items := []models.CartItem{{ID: 1, CustomerID: 42, ProductID: 7, SKU: "SKU-7", Name: "Mug", Quantity: 2, Price: 9.99}}
	carts.EXPECT().CartItemsByCustomer(ctx, int64(42)).Return(items, nil)

	customer := models.Customer{ID: 42, Email: "buyer@example.com"}
	contacts.EXPECT().CustomerByID(ctx, int64(42)).Return(customer, nil)
	customers.EXPECT().ResolveEmail(ctx, customer).Return("buyer@example.com", nil)
	customers.EXPECT().CartID(ctx, int64(42)).Return("cart-uuid", nil)

	// удалённого документа ещё нет — POST
	client.EXPECT().Perform(ctx, http.MethodGet, "carts/cart-uuid", nil).Return([]byte{}, nil)
	client.EXPECT().Perform(ctx, http.MethodPost, "carts", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, body any) ([]byte, error) {
			dto, ok := body.(models.CartDTO)
			require.True(t, ok)
			assert.Equal(t, "cart-uuid", dto.CartID)
			assert.Equal(t, "buyer@example.com", dto.Email)
			require.Len(t, dto.Products, 1)
			return []byte(`{}`), nil
		},
	)

	require.NoError(t, svc.PushCart(ctx, 42))
}

func TestCartService_PushCart_UpdatesExistingRemoteCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, carts, contacts, customers := newTestCarts(t, ctrl)
	ctx := context.Background()

	items := []models.CartItem{{ID: 1, CustomerID: 42, ProductID: 7, Quantity: 1, Price: 5}}
	carts.EXPECT().CartItemsByCustomer(ctx, int64(42)).Return(items, nil)

	customer := models.Customer{ID: 42, Email: "buyer@example.com"}
	contacts.EXPECT().CustomerByID(ctx, int64(42)).Return(customer, nil)
	customers.EXPECT().ResolveEmail(ctx, customer).Return("buyer@example.com", nil)
	customers.EXPECT().CartID(ctx, int64(42)).Return("cart-uuid", nil)

	// документ уже существует — PUT
	client.EXPECT().Perform(ctx, http.MethodGet, "carts/cart-uuid", nil).Return([]byte(`{"cartID":"cart-uuid"}`), nil)
	client.EXPECT().Perform(ctx, http.MethodPut, "carts/cart-uuid", gomock.Any()).Return([]byte(`{}`), nil)

	require.NoError(t, svc.PushCart(ctx, 42))
}

func TestCartService_PushCart_EmptyCartDeletesRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, carts, _, customers := newTestCarts(t, ctrl)
	ctx := context.Background()

	carts.EXPECT().CartItemsByCustomer(ctx, int64(42)).Return(nil, nil)

	// пустая корзина: удаляем удалённый документ и забываем correlation id
	customers.EXPECT().StoredCartID(ctx, int64(42)).Return("cart-uuid", nil)
	client.EXPECT().Perform(ctx, http.MethodDelete, "carts/cart-uuid", nil).Return([]byte{}, nil)
	customers.EXPECT().DeleteCartID(ctx, int64(42)).Return(nil)

	require.NoError(t, svc.PushCart(ctx, 42))
}

func TestCartService_PushCart_EmptyCartWithoutStoredID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, carts, _, customers := newTestCarts(t, ctrl)
	ctx := context.Background()

	carts.EXPECT().CartItemsByCustomer(ctx, int64(42)).Return(nil, nil)
	customers.EXPECT().StoredCartID(ctx, int64(42)).Return("", nil)

	// корзина никогда не отправлялась — удалять нечего
	require.NoError(t, svc.PushCart(ctx, 42))
}

func TestCartService_PushCart_AnonymousOwnerSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, carts, contacts, customers := newTestCarts(t, ctrl)
	ctx := context.Background()

	items := []models.CartItem{{ID: 1, CustomerID: 9}}
	carts.EXPECT().CartItemsByCustomer(ctx, int64(9)).Return(items, nil)

	anonymous := models.Customer{ID: 9, IsGuest: true}
	contacts.EXPECT().CustomerByID(ctx, int64(9)).Return(anonymous, nil)
	customers.EXPECT().ResolveEmail(ctx, anonymous).Return("", nil)

	require.NoError(t, svc.PushCart(ctx, 9))
}

// ── PushCartItemUpdate ───────────────────────────────────────────────────────

func TestCartService_PushCartItemUpdate_PatchesLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, _, _, customers := newTestCarts(t, ctrl)
	ctx := context.Background()

	item := models.CartItem{ID: 3, CustomerID: 42, ProductID: 7, Quantity: 5, Price: 2.5}
	customers.EXPECT().StoredCartID(ctx, int64(42)).Return("cart-uuid", nil)

	client.EXPECT().Perform(ctx, http.MethodPatch, "carts/cart-uuid/products/3", gomock.Any()).Return([]byte(`{}`), nil)

	require.NoError(t, svc.PushCartItemUpdate(ctx, item))
}

func TestCartService_PushCartItemUpdate_NoStoredIDFallsBackToFullPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client, carts, contacts, customers := newTestCarts(t, ctrl)
	ctx := context.Background()

	item := models.CartItem{ID: 3, CustomerID: 42, ProductID: 7, Quantity: 1, Price: 2.5}
	customers.EXPECT().StoredCartID(ctx, int64(42)).Return("", nil)

	// без correlation id патчить нечего — отправляется вся корзина
	carts.EXPECT().CartItemsByCustomer(ctx, int64(42)).Return([]models.CartItem{item}, nil)
	customer := models.Customer{ID: 42, Email: "buyer@example.com"}
	contacts.EXPECT().CustomerByID(ctx, int64(42)).Return(customer, nil)
	customers.EXPECT().ResolveEmail(ctx, customer).Return("buyer@example.com", nil)
	customers.EXPECT().CartID(ctx, int64(42)).Return("fresh-uuid", nil)
	client.EXPECT().Perform(ctx, http.MethodGet, "carts/fresh-uuid", nil).Return([]byte{}, nil)
	client.EXPECT().Perform(ctx, http.MethodPost, "carts", gomock.Any()).Return([]byte(`{}`), nil)

	require.NoError(t, svc.PushCartItemUpdate(ctx, item))
}

// ── токены восстановления ────────────────────────────────────────────────────

func TestCartService_RestoreToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, customers := newTestCarts(t, ctrl)
	ctx := context.Background()

	token := svc.RestoreToken(42, "cart-uuid")
	require.NotEmpty(t, token)

	// восстановление привязывает correlation id обратно к покупателю
	customers.EXPECT().StoreCartID(ctx, int64(42), "cart-uuid").Return(nil)

	customerID, cartID, err := svc.RestoreCart(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, int64(42), customerID)
	assert.Equal(t, "cart-uuid", cartID)
}

func TestCartService_RestoreCart_BadTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestCarts(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{name: "не base64", token: "%%%not-base64%%%"},
		{name: "нет разделителя", token: "NDJjYXJ0"},             // "42cart"
		{name: "пустой cart id", token: "NDI6"},                  // "42:"
		{name: "пустой customer id", token: "OmNhcnQtdXVpZA"},    // ":cart-uuid"
		{name: "нечисловой customer id", token: "YWJjOmNhcnQtdXVpZA"}, // "abc:cart-uuid"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.RestoreCart(ctx, tt.token)
			require.ErrorIs(t, err, service.ErrBadRestoreToken)
		})
	}
}
