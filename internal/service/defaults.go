package service

// Marketing API paths, relative to the configured base URL.
const (
	pathAccounts   = "accounts"
	pathContacts   = "contacts"
	pathCategories = "categories"
	pathProducts   = "products"
	pathOrders     = "orders"
	pathCarts      = "carts"
	pathBatches    = "batches"
	pathEvents     = "events"
)

// Endpoint names used in batch submissions and block flags. They coincide
// with the API paths but are a separate vocabulary: the remote batch state
// reports them back verbatim.
const (
	endpointContacts   = "contacts"
	endpointCategories = "categories"
	endpointProducts   = "products"
	endpointOrders     = "orders"
	endpointCarts      = "carts"
)

// platformName identifies this integration during account registration.
const platformName = "goshop"

// tokenIssuer is the iss claim of admin JWT tokens.
const tokenIssuer = "go-shop-sync"

// Attribute entities in the local state database.
const (
	entityCustomer = "customer"
	entityOrder    = "order"
)

// Attribute keys.
const (
	attrEmail             = "email"
	attrCartID            = "cart_id"
	attrContactID         = "contact_id"
	attrIdentifyEmail     = "identify_email"
	attrCanceledEventSent = "order_canceled_event_sent"
	attrFulfilledEvent    = "order_fulfilled_event_sent"
)

// Shop-side status values the dispatcher compares verbatim.
const (
	paymentStatusRefunded = "Refunded"
	orderStatusCancelled  = "Cancelled"
	orderStatusComplete   = "Complete"
)

// Page routes with special handling: checkout triggers the "started
// checkout" behavioral event, product pages get the product snippet.
const (
	checkoutRouteName = "checkout"
	productRouteName  = "product"
)

// Placeholders substituted into the stored tracking snippets before they are
// served to the storefront.
const (
	placeholderBrandID   = "{{brandID}}"
	placeholderEmail     = "{{email}}"
	placeholderContactID = "{{contactID}}"
)

// cartRestorePath is the public path prefix for cart recovery links.
const cartRestorePath = "/cart/restore/"
