// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/mock"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/models"
)

// newTestCustomers — хелпер для создания сервиса покупателей с моками
func newTestCustomers(t *testing.T, ctrl *gomock.Controller) (service.CustomerService, *mock.MockClient, *mock.MockContactSource, *mock.MockAttributeStore) {
	t.Helper()

	client := mock.NewMockClient(ctrl)
	contacts := mock.NewMockContactSource(ctrl)
	attributes := mock.NewMockAttributeStore(ctrl)

	return service.NewCustomerService(client, contacts, attributes, logger.Nop()), client, contacts, attributes
}

// ── разрешение email ─────────────────────────────────────────────────────────

func TestCustomerService_ResolveEmail_AccountEmailWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, _ := newTestCustomers(t, ctrl)

	// email аккаунта найден — дальше по цепочке не ходим
	email, err := customers.ResolveEmail(context.Background(), models.Customer{ID: 1, Email: "account@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "account@example.com", email)
}

func TestCustomerService_ResolveEmail_RememberedAttribute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, attributes := newTestCustomers(t, ctrl)
	ctx := context.Background()

	attributes.EXPECT().Get(ctx, "customer", int64(1), "email").Return("guest@example.com", nil)

	email, err := customers.ResolveEmail(ctx, models.Customer{ID: 1})

	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", email)
}

func TestCustomerService_ResolveEmail_BillingAddressFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, contacts, attributes := newTestCustomers(t, ctrl)
	ctx := context.Background()

	attributes.EXPECT().Get(ctx, "customer", int64(1), "email").Return("", nil)
	contacts.EXPECT().AddressByID(ctx, int64(7)).Return(models.Address{ID: 7, Email: "billing@example.com"}, nil)

	email, err := customers.ResolveEmail(ctx, models.Customer{ID: 1, BillingAddressID: 7})

	require.NoError(t, err)
	assert.Equal(t, "billing@example.com", email)
}

func TestCustomerService_ResolveEmail_AnonymousCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, attributes := newTestCustomers(t, ctrl)
	ctx := context.Background()

	// ни аккаунта, ни атрибута, ни платёжного адреса — пустой результат без ошибки
	attributes.EXPECT().Get(ctx, "customer", int64(1), "email").Return("", nil)

	email, err := customers.ResolveEmail(ctx, models.Customer{ID: 1})

	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestCustomerService_ResolveEmail_VanishedBillingAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, contacts, attributes := newTestCustomers(t, ctrl)
	ctx := context.Background()

	// пропавший платёжный адрес не ошибка, а отсутствие email
	attributes.EXPECT().Get(ctx, "customer", int64(1), "email").Return("", nil)
	contacts.EXPECT().AddressByID(ctx, int64(7)).Return(models.Address{}, store.ErrNotFound)

	email, err := customers.ResolveEmail(ctx, models.Customer{ID: 1, BillingAddressID: 7})

	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestCustomerService_RememberEmail_SkipsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, attributes := newTestCustomers(t, ctrl)
	ctx := context.Background()

	require.NoError(t, customers.RememberEmail(ctx, 1, ""))

	attributes.EXPECT().Set(ctx, "customer", int64(1), "email", "guest@example.com").Return(nil)
	require.NoError(t, customers.RememberEmail(ctx, 1, "guest@example.com"))
}

// ── идентификатор корзины ────────────────────────────────────────────────────

func TestCustomerService_CartID_ReturnsStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, attributes := newTestCustomers(t, ctrl)
	ctx := context.Background()

	attributes.EXPECT().Get(ctx, "customer", int64(1), "cart_id").Return("cart-uuid", nil)

	cartID, err := customers.CartID(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "cart-uuid", cartID)
}

func TestCustomerService_CartID_GeneratesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, attributes := newTestCustomers(t, ctrl)
	ctx := context.Background()

	var generated string
	attributes.EXPECT().Get(ctx, "customer", int64(1), "cart_id").Return("", nil)
	attributes.EXPECT().Set(ctx, "customer", int64(1), "cart_id", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ int64, _ string, value string) error {
			generated = value
			return nil
		},
	)

	cartID, err := customers.CartID(ctx, 1)

	require.NoError(t, err)
	assert.NotEmpty(t, cartID)
	// возвращается ровно тот id, который был сохранён
	assert.Equal(t, generated, cartID)
}

func TestCustomerService_DeleteCartID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, attributes := newTestCustomers(t, ctrl)
	ctx := context.Background()

	attributes.EXPECT().Delete(ctx, "customer", int64(1), "cart_id").Return(nil)

	require.NoError(t, customers.DeleteCartID(ctx, 1))
}

// ── удалённый contact id ─────────────────────────────────────────────────────

func TestCustomerService_ContactID_KnownContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, client, _, _ := newTestCustomers(t, ctrl)
	ctx := context.Background()

	// email экранируется в query, запрос ограничен одним результатом
	client.EXPECT().Perform(ctx, http.MethodGet, "contacts?email=user%2Btag%40example.com&limit=1", nil).
		Return([]byte(`{"contacts":[{"contactID":"remote-1"}]}`), nil)

	contactID, err := customers.ContactID(ctx, "user+tag@example.com")

	require.NoError(t, err)
	assert.Equal(t, "remote-1", contactID)
}

func TestCustomerService_ContactID_UnknownContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, client, _, _ := newTestCustomers(t, ctrl)
	ctx := context.Background()

	client.EXPECT().Perform(ctx, http.MethodGet, "contacts?email=nobody%40example.com&limit=1", nil).
		Return([]byte(`{"contacts":[]}`), nil)

	contactID, err := customers.ContactID(ctx, "nobody@example.com")

	require.NoError(t, err)
	assert.Empty(t, contactID)
}

func TestCustomerService_ContactID_EmptyEmailSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, _ := newTestCustomers(t, ctrl)

	contactID, err := customers.ContactID(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, contactID)
}

// ── события покупателя ───────────────────────────────────────────────────────

func TestCustomerService_NewCustomerEvent_SkipsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, attributes := newTestCustomers(t, ctrl)
	ctx := context.Background()

	attributes.EXPECT().Get(ctx, "customer", int64(1), "email").Return("", nil)

	event, err := customers.NewCustomerEvent(ctx, models.Customer{ID: 1}, models.EventNameStartedCheckout, nil)

	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestCustomerService_NewCustomerEvent_BuildsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers, _, _, _ := newTestCustomers(t, ctrl)

	properties := models.CartEventProperty{CartID: "cart-uuid", Value: 20}
	event, err := customers.NewCustomerEvent(context.Background(), models.Customer{ID: 1, Email: "user@example.com"}, models.EventNameStartedCheckout, properties)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "user@example.com", event.Email)
	assert.Equal(t, models.EventNameStartedCheckout, event.EventName)
	assert.Equal(t, properties, event.Properties)
}
