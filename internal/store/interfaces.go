// SPDX-License-Identifier: Apache-2.0

// Package store contains the persistence layer: repositories over the
// shop-platform PostgreSQL database (read-only sources of customers,
// catalog, orders, and carts) and over the local SQLite state database
// (persisted settings and entity attributes).
package store

import (
	"context"

	"github.com/MKhiriev/go-shop-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsStore persists the runtime-changeable integration settings in the
// local state database. Load always returns a usable value: when no settings
// have been saved yet it returns defaults.
type SettingsStore interface {
	Load(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
}

// AttributeStore is a generic per-entity key/value store in the local state
// database. The sync engine uses it for one-shot flags, stored cart ids, and
// remembered guest emails.
//
// Get returns an empty string (not an error) when the attribute is absent.
type AttributeStore interface {
	Get(ctx context.Context, entity string, entityID int64, key string) (string, error)
	Set(ctx context.Context, entity string, entityID int64, key, value string) error
	Delete(ctx context.Context, entity string, entityID int64, key string) error
}

// ContactSource reads newsletter subscriptions and customer accounts from the
// shop database.
type ContactSource interface {
	// CountSubscriptions returns the number of active newsletter
	// subscriptions eligible for synchronization.
	CountSubscriptions(ctx context.Context) (int, error)
	// SubscriptionsPage returns one page of subscriptions joined with their
	// customer account when one exists (Customer is nil for guests).
	// Subscriptions whose customer account is inactive or deleted are
	// excluded.
	SubscriptionsPage(ctx context.Context, limit, offset int) ([]models.Contact, error)
	SubscriptionByID(ctx context.Context, id int64) (models.Subscription, error)
	SubscriptionByEmail(ctx context.Context, email string) (models.Subscription, error)
	CustomerByID(ctx context.Context, id int64) (models.Customer, error)
	AddressByID(ctx context.Context, id int64) (models.Address, error)
}

// CatalogSource reads categories and products from the shop database.
// Pages contain only published, non-deleted records.
type CatalogSource interface {
	CountCategories(ctx context.Context) (int, error)
	CategoriesPage(ctx context.Context, limit, offset int) ([]models.Category, error)
	CategoryByID(ctx context.Context, id int64) (models.Category, error)

	CountProducts(ctx context.Context) (int, error)
	// ProductsPage returns one page of products with category ids and
	// variants populated.
	ProductsPage(ctx context.Context, limit, offset int) ([]models.Product, error)
	ProductByID(ctx context.Context, id int64) (models.Product, error)
}

// OrderSource reads orders with their line items from the shop database.
type OrderSource interface {
	CountOrders(ctx context.Context) (int, error)
	OrdersPage(ctx context.Context, limit, offset int) ([]models.Order, error)
	OrderByID(ctx context.Context, id int64) (models.Order, error)
	OrderItemByID(ctx context.Context, id int64) (models.OrderItem, error)
}

// CartSource reads live shopping-cart contents from the shop database.
// A "cart" is the set of cart items belonging to one customer.
type CartSource interface {
	// CountCarts returns the number of distinct customers with a non-empty
	// cart.
	CountCarts(ctx context.Context) (int, error)
	// CartCustomersPage returns one page of customer ids with non-empty
	// carts, ordered by customer id.
	CartCustomersPage(ctx context.Context, limit, offset int) ([]int64, error)
	CartItemsByCustomer(ctx context.Context, customerID int64) ([]models.CartItem, error)
	CartItemByID(ctx context.Context, id int64) (models.CartItem, error)
}
