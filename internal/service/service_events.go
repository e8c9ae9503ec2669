// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/models"
)

// eventDispatcher turns host lifecycle notifications into marketing API
// effects: direct record pushes, behavioral customer events, and local state
// mutations (cart ids, one-shot flags, remembered emails).
type eventDispatcher struct {
	client    adapter.Client
	storages  *store.Storages
	sync      SyncService
	carts     CartService
	customers CustomerService
	tracking  TrackingService
	mapper    *Mapper
	storeURL  string
	logger    *logger.Logger
}

func NewEventDispatcher(client adapter.Client, storages *store.Storages, sync SyncService, carts CartService, customers CustomerService, tracking TrackingService, mapper *Mapper, cfg config.App, logger *logger.Logger) EventDispatcher {
	return &eventDispatcher{
		client:    client,
		storages:  storages,
		sync:      sync,
		carts:     carts,
		customers: customers,
		tracking:  tracking,
		mapper:    mapper,
		storeURL:  strings.TrimRight(cfg.StoreURL, "/"),
		logger:    logger,
	}
}

func (d *eventDispatcher) Handle(ctx context.Context, event models.DomainEvent) error {
	log := logger.FromContext(ctx)
	log.Debug().Str("kind", string(event.Kind)).Msg("dispatching event")

	switch event.Kind {
	case models.EventContactRegistered:
		return d.onContactRegistered(ctx, event)
	case models.EventCustomerLoggedIn:
		return d.onCustomerLoggedIn(ctx, event)
	case models.EventCustomerUpdated:
		return d.onCustomerUpdated(ctx, event)
	case models.EventSubscriptionChanged:
		return d.onSubscriptionChanged(ctx, event)
	case models.EventCartItemAdded:
		return d.onCartItemAdded(ctx, event)
	case models.EventCartItemRemoved:
		return d.onCartItemRemoved(ctx, event)
	case models.EventOrderItemAdded:
		return d.onOrderItemAdded(ctx, event)
	case models.EventOrderPlaced:
		return d.onOrderPlaced(ctx, event)
	case models.EventOrderPaid:
		return d.onOrderPaid(ctx, event)
	case models.EventOrderRefunded:
		return d.onOrderRefunded(ctx, event)
	case models.EventOrderStatusChanged:
		return d.onOrderStatusChanged(ctx, event)
	case models.EventProductChanged:
		return d.sync.CreateOrUpdateProduct(ctx, event.ProductID)
	case models.EventPageRendered:
		return d.onPageRendered(ctx, event)
	default:
		return fmt.Errorf("%q: %w", event.Kind, ErrUnknownEvent)
	}
}

// ── contacts ────────────────────────────────────────────────────────────────

func (d *eventDispatcher) onContactRegistered(ctx context.Context, event models.DomainEvent) error {
	customer, err := d.storages.Contacts.CustomerByID(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read customer %d: %w", event.CustomerID, err)
	}

	email, err := d.customers.ResolveEmail(ctx, customer)
	if err != nil {
		return err
	}
	if email == "" {
		return nil
	}

	// an existing newsletter subscription decides the channel status;
	// a fresh account without one starts as nonSubscribed
	subscription, err := d.storages.Contacts.SubscriptionByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("read subscription of %s: %w", email, err)
	}
	if errors.Is(err, store.ErrNotFound) {
		subscription = models.Subscription{Email: email, Active: false}
	}

	contact := models.Contact{Subscription: subscription, Customer: &customer}
	if err := d.sync.UpdateOrCreateContact(ctx, contact, models.ContactStatusNonSubscribed, false); err != nil {
		return err
	}

	// remember the remote contact id so guest sessions can be identified
	contactID, err := d.customers.ContactID(ctx, email)
	if err != nil {
		return err
	}
	if contactID != "" {
		if err := d.storages.Attributes.Set(ctx, entityCustomer, customer.ID, attrContactID, contactID); err != nil {
			return err
		}
	}

	return nil
}

func (d *eventDispatcher) onCustomerLoggedIn(ctx context.Context, event models.DomainEvent) error {
	customer, err := d.storages.Contacts.CustomerByID(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read customer %d: %w", event.CustomerID, err)
	}

	email, err := d.customers.ResolveEmail(ctx, customer)
	if err != nil {
		return err
	}
	if email == "" {
		return nil
	}

	return d.tracking.MarkIdentify(ctx, customer.ID, email)
}

// onCustomerUpdated patches the profile fields of an already known contact.
// Customers the marketing side has never seen are skipped: registration and
// subscription events create contacts, account edits only refresh them.
func (d *eventDispatcher) onCustomerUpdated(ctx context.Context, event models.DomainEvent) error {
	customer, err := d.storages.Contacts.CustomerByID(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read customer %d: %w", event.CustomerID, err)
	}

	email, err := d.customers.ResolveEmail(ctx, customer)
	if err != nil {
		return err
	}
	if email == "" {
		return nil
	}

	contactID, err := d.customers.ContactID(ctx, email)
	if err != nil {
		return err
	}
	if contactID == "" {
		return nil
	}

	patch := d.mapper.Profile(customer)
	_, err = d.client.Perform(ctx, http.MethodPatch, pathContacts+"?email="+url.QueryEscape(email), patch)
	return err
}

func (d *eventDispatcher) onSubscriptionChanged(ctx context.Context, event models.DomainEvent) error {
	subscription, err := d.storages.Contacts.SubscriptionByID(ctx, event.SubscriptionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read subscription %d: %w", event.SubscriptionID, err)
	}

	// an explicit unsubscribe maps to "unsubscribed", not "nonSubscribed";
	// a fresh subscribe sends the welcome message
	contact := models.Contact{Subscription: subscription}
	return d.sync.UpdateOrCreateContact(ctx, contact, models.ContactStatusUnsubscribed, event.Subscribed)
}

// ── carts ───────────────────────────────────────────────────────────────────

func (d *eventDispatcher) onCartItemAdded(ctx context.Context, event models.DomainEvent) error {
	item, err := d.storages.Carts.CartItemByID(ctx, event.CartItemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read cart item %d: %w", event.CartItemID, err)
	}

	items, err := d.storages.Carts.CartItemsByCustomer(ctx, item.CustomerID)
	if err != nil {
		return fmt.Errorf("read cart of customer %d: %w", item.CustomerID, err)
	}

	// the first item creates the remote cart document; later items only
	// patch their own line
	if len(items) <= 1 {
		if err := d.carts.PushCart(ctx, item.CustomerID); err != nil {
			return err
		}
	} else {
		if err := d.carts.PushCartItemUpdate(ctx, item); err != nil {
			return err
		}
	}

	customer, err := d.storages.Contacts.CustomerByID(ctx, item.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read customer %d: %w", item.CustomerID, err)
	}

	cartID, err := d.customers.CartID(ctx, item.CustomerID)
	if err != nil {
		return err
	}

	property := d.mapper.CartEvent(items, cartID, d.recoveryURL(item.CustomerID, cartID))
	added := d.mapper.EventCartItem(item)
	property.AddedItem = &added

	return d.sendCustomerEvent(ctx, customer, models.EventNameAddedProductToCart, property)
}

func (d *eventDispatcher) onCartItemRemoved(ctx context.Context, event models.DomainEvent) error {
	// the item row is already gone; pushing the remaining cart also handles
	// the now-empty case (remote delete plus correlation id cleanup)
	return d.carts.PushCart(ctx, event.CustomerID)
}

// ── orders ──────────────────────────────────────────────────────────────────

func (d *eventDispatcher) onOrderItemAdded(ctx context.Context, event models.DomainEvent) error {
	return d.sync.UpdateOrder(ctx, event.OrderID)
}

func (d *eventDispatcher) onOrderPlaced(ctx context.Context, event models.DomainEvent) error {
	order, err := d.storages.Orders.OrderByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read order %d: %w", event.OrderID, err)
	}

	// a guest checkout reveals an email worth remembering
	billing := d.orderBillingAddress(ctx, order)
	if billing != nil && billing.Email != "" {
		if err := d.customers.RememberEmail(ctx, order.CustomerID, billing.Email); err != nil {
			return err
		}
	}

	if err := d.sync.CreateOrder(ctx, event.OrderID); err != nil {
		return err
	}

	if err := d.sendOrderEvent(ctx, order, billing, models.EventNamePlacedOrder, 0); err != nil {
		return err
	}

	// the cart became this order
	return d.customers.DeleteCartID(ctx, order.CustomerID)
}

func (d *eventDispatcher) onOrderPaid(ctx context.Context, event models.DomainEvent) error {
	order, err := d.storages.Orders.OrderByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read order %d: %w", event.OrderID, err)
	}

	if err := d.sync.UpdateOrder(ctx, event.OrderID); err != nil {
		return err
	}

	return d.sendOrderEvent(ctx, order, d.orderBillingAddress(ctx, order), models.EventNamePaidForOrder, 0)
}

func (d *eventDispatcher) onOrderRefunded(ctx context.Context, event models.DomainEvent) error {
	order, err := d.storages.Orders.OrderByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read order %d: %w", event.OrderID, err)
	}

	// partial refunds keep another payment status; only a full refund fires
	if order.PaymentStatus != paymentStatusRefunded {
		return nil
	}

	if err := d.sync.UpdateOrder(ctx, event.OrderID); err != nil {
		return err
	}

	return d.sendOrderEvent(ctx, order, d.orderBillingAddress(ctx, order), models.EventNameOrderRefunded, order.RefundedTotal)
}

func (d *eventDispatcher) onOrderStatusChanged(ctx context.Context, event models.DomainEvent) error {
	order, err := d.storages.Orders.OrderByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read order %d: %w", event.OrderID, err)
	}

	if err := d.sync.UpdateOrder(ctx, event.OrderID); err != nil {
		return err
	}

	switch order.Status {
	case orderStatusCancelled:
		return d.sendOneShotOrderEvent(ctx, order, attrCanceledEventSent, models.EventNameOrderCanceled)
	case orderStatusComplete:
		return d.sendOneShotOrderEvent(ctx, order, attrFulfilledEvent, models.EventNameOrderFulfilled)
	}

	return nil
}

// ── pages ───────────────────────────────────────────────────────────────────

func (d *eventDispatcher) onPageRendered(ctx context.Context, event models.DomainEvent) error {
	if event.RouteName != checkoutRouteName {
		return nil
	}

	items, err := d.storages.Carts.CartItemsByCustomer(ctx, event.CustomerID)
	if err != nil {
		return fmt.Errorf("read cart of customer %d: %w", event.CustomerID, err)
	}
	if len(items) == 0 {
		return nil
	}

	customer, err := d.storages.Contacts.CustomerByID(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read customer %d: %w", event.CustomerID, err)
	}

	cartID, err := d.customers.CartID(ctx, event.CustomerID)
	if err != nil {
		return err
	}

	property := d.mapper.CartEvent(items, cartID, d.recoveryURL(event.CustomerID, cartID))
	return d.sendCustomerEvent(ctx, customer, models.EventNameStartedCheckout, property)
}

// ── helpers ─────────────────────────────────────────────────────────────────

// sendCustomerEvent posts a behavioral event, silently skipping customers
// without a resolvable email.
func (d *eventDispatcher) sendCustomerEvent(ctx context.Context, customer models.Customer, eventName string, properties any) error {
	event, err := d.customers.NewCustomerEvent(ctx, customer, eventName, properties)
	if err != nil {
		return err
	}
	if event == nil {
		return nil
	}

	_, err = d.client.Perform(ctx, http.MethodPost, pathEvents, event)
	return err
}

func (d *eventDispatcher) sendOrderEvent(ctx context.Context, order models.Order, billing *models.Address, eventName string, refunded float64) error {
	property := d.mapper.OrderEvent(order, billing)
	property.TotalRefundedAmount = refunded

	return d.sendCustomerEvent(ctx, d.orderCustomer(ctx, order), eventName, property)
}

// sendOneShotOrderEvent fires the event at most once per order, guarded by a
// persisted flag.
func (d *eventDispatcher) sendOneShotOrderEvent(ctx context.Context, order models.Order, flagKey, eventName string) error {
	sent, err := d.storages.Attributes.Get(ctx, entityOrder, order.ID, flagKey)
	if err != nil {
		return err
	}
	if sent != "" {
		return nil
	}

	err = d.sendOrderEvent(ctx, order, d.orderBillingAddress(ctx, order), eventName, 0)
	if err != nil {
		return err
	}

	return d.storages.Attributes.Set(ctx, entityOrder, order.ID, flagKey, "true")
}

// orderCustomer loads the order's customer; when the account is gone a stub
// pointing at the order's billing address keeps the email resolvable.
func (d *eventDispatcher) orderCustomer(ctx context.Context, order models.Order) models.Customer {
	customer, err := d.storages.Contacts.CustomerByID(ctx, order.CustomerID)
	if err != nil {
		return models.Customer{ID: order.CustomerID, BillingAddressID: order.BillingAddrID}
	}
	if customer.BillingAddressID == 0 {
		customer.BillingAddressID = order.BillingAddrID
	}
	return customer
}

func (d *eventDispatcher) orderBillingAddress(ctx context.Context, order models.Order) *models.Address {
	if order.BillingAddrID == 0 {
		return nil
	}
	address, err := d.storages.Contacts.AddressByID(ctx, order.BillingAddrID)
	if err != nil {
		return nil
	}
	return &address
}

func (d *eventDispatcher) recoveryURL(customerID int64, cartID string) string {
	if d.storeURL == "" {
		return ""
	}
	return d.storeURL + cartRestorePath + d.carts.RestoreToken(customerID, cartID)
}
