// SPDX-License-Identifier: Apache-2.0

// Package service contains the business logic of the sync engine: bulk
// synchronization with its batch-versus-direct strategy, batch-job tracking
// across restarts, the lifecycle event dispatcher, and the supporting
// account, customer, cart, and tracking services.
package service

import (
	"context"

	"github.com/MKhiriev/go-shop-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and validates admin JWT tokens.
type AuthService interface {
	// Token verifies the admin credentials and returns a signed JWT.
	// Returns ErrWrongCredentials when they do not match.
	Token(ctx context.Context, login, password string) (models.Token, error)
	// ParseToken validates a raw token string and returns its claims.
	ParseToken(tokenString string) (models.Token, error)
}

// AccountService manages the connection to the marketing service and the
// persisted integration settings.
type AccountService interface {
	// Connect stores the API key, registers the shop with the marketing
	// service, persists the returned brand id, and applies both to the
	// outbound client.
	Connect(ctx context.Context, apiKey string) (*models.Settings, error)
	// Disconnect clears the API key, brand id, and tracked batch ids.
	Disconnect(ctx context.Context) error
	// Settings returns the current persisted settings.
	Settings(ctx context.Context) (*models.Settings, error)
	// UpdateSettings persists the changeable settings fields (paging knobs,
	// tracking flags, scripts, request logging) and re-applies them to the
	// outbound client. Connection fields (API key, brand id, batch ids) are
	// not touched.
	UpdateSettings(ctx context.Context, upd models.Settings) (*models.Settings, error)
	// ApplySettings pushes the persisted API key, brand id, and logging
	// flags onto the outbound client. Called at startup.
	ApplySettings(ctx context.Context) error
}

// BatchTracker owns the persisted set of outstanding batch-job ids.
//
// Both methods mutate the persisted settings and save immediately, so a
// crash between calls never loses an id that the remote side still knows.
type BatchTracker interface {
	// RecordSubmission parses a batch-create response body, appends the new
	// batch id to the persisted set, and returns it. An empty body yields an
	// empty id and no mutation.
	RecordSubmission(ctx context.Context, body []byte) (string, error)
	// Reconcile fetches the remote state of every tracked batch job, drops
	// finished and vanished ids from the persisted set, and reports the
	// still-running jobs together with the endpoint block flags they raise.
	Reconcile(ctx context.Context) ([]models.BatchResponse, models.BlockFlags, error)
}

// SyncResult describes the outcome of one endpoint synchronization.
type SyncResult struct {
	Endpoint string   `json:"endpoint"`
	Total    int      `json:"total"`
	Batched  bool     `json:"batched"`
	BatchIDs []string `json:"batch_ids,omitempty"`
	Pushed   int      `json:"pushed"`
}

// SyncService performs bulk synchronization of shop data and single-record
// pushes used by the event dispatcher.
//
// Every SyncX method first reconciles batch jobs and refuses with
// ErrEndpointBlocked while a job targeting the endpoint is still running.
// Products and categories share one block flag.
type SyncService interface {
	SyncContacts(ctx context.Context) (SyncResult, error)
	SyncCategories(ctx context.Context) (SyncResult, error)
	SyncProducts(ctx context.Context) (SyncResult, error)
	SyncOrders(ctx context.Context) (SyncResult, error)
	SyncCarts(ctx context.Context) (SyncResult, error)

	// UpdateOrCreateContact pushes one contact: patch when the email is
	// already known remotely, create otherwise. inactiveStatus is the
	// channel status applied to a non-active subscription.
	UpdateOrCreateContact(ctx context.Context, contact models.Contact, inactiveStatus string, welcome bool) error
	// CreateOrUpdateProduct pushes one product: update when it exists
	// remotely, create otherwise.
	CreateOrUpdateProduct(ctx context.Context, productID int64) error
	CreateOrder(ctx context.Context, orderID int64) error
	UpdateOrder(ctx context.Context, orderID int64) error
}

// EventDispatcher turns host lifecycle notifications into API effects.
type EventDispatcher interface {
	Handle(ctx context.Context, event models.DomainEvent) error
}

// CustomerService resolves customer identity details shared by the sync
// service, the dispatcher, and the tracking scripts.
type CustomerService interface {
	// ResolveEmail returns the first known email for a customer: the account
	// email, then the remembered attribute, then the billing address email.
	// An empty string means the customer is anonymous.
	ResolveEmail(ctx context.Context, customer models.Customer) (string, error)
	// RememberEmail stores an email observed for a customer (e.g. a guest
	// checkout) so later events can resolve it.
	RememberEmail(ctx context.Context, customerID int64, email string) error
	// CartID returns the customer's cart correlation id, generating and
	// storing a fresh one when none exists.
	CartID(ctx context.Context, customerID int64) (string, error)
	// StoredCartID returns the correlation id without generating one;
	// "" means the customer has no live cart.
	StoredCartID(ctx context.Context, customerID int64) (string, error)
	StoreCartID(ctx context.Context, customerID int64, cartID string) error
	// DeleteCartID forgets the correlation id; the next CartID call starts a
	// new cart.
	DeleteCartID(ctx context.Context, customerID int64) error
	// ContactID looks up the remote contact id for an email (limit-1 remote
	// query), returning "" when the contact does not exist.
	ContactID(ctx context.Context, email string) (string, error)
	// NewCustomerEvent builds a behavioral event for a customer, resolving
	// the email first. Returns nil (no error) for customers without any
	// resolvable email: such events are silently skipped.
	NewCustomerEvent(ctx context.Context, customer models.Customer, eventName string, properties any) (*models.CustomerEvent, error)
}

// CartService pushes live cart state and handles recovery links.
type CartService interface {
	// PushCart sends the customer's full cart to the marketing API, creating
	// or updating the remote cart document. An empty cart deletes the remote
	// document and forgets the correlation id.
	PushCart(ctx context.Context, customerID int64) error
	// PushCartItemUpdate updates a single line of an already pushed cart.
	PushCartItemUpdate(ctx context.Context, item models.CartItem) error
	// RestoreToken builds the opaque token embedded in recovery links.
	RestoreToken(customerID int64, cartID string) string
	// RestoreCart decodes a recovery token into its mandatory parts and
	// stores the correlation id back on the customer, so later cart pushes
	// keep updating the same remote document. A token that cannot be
	// decoded is a hard error (ErrBadRestoreToken).
	RestoreCart(ctx context.Context, token string) (customerID int64, cartID string, err error)
}

// TrackingService renders the front-end tracking snippets.
type TrackingService interface {
	// PageScripts returns the script block for a rendered page: the base
	// tracking snippet, the product snippet on product pages, and the
	// one-shot identify snippet when a login was recorded for the customer.
	PageScripts(ctx context.Context, customerID int64, routeName string) (string, error)
	// MarkIdentify records that the next rendered page for the customer
	// must include the identify snippet for the given email.
	MarkIdentify(ctx context.Context, customerID int64, email string) error
}
