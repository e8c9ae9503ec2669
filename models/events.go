package models

// EventKind enumerates the closed set of host lifecycle notifications the
// dispatcher understands. The host adapter translates its native events into
// this set; anything else is dropped at the HTTP boundary.
type EventKind string

const (
	EventContactRegistered   EventKind = "contact_registered"
	EventCustomerLoggedIn    EventKind = "customer_logged_in"
	EventCustomerUpdated     EventKind = "customer_updated"
	EventSubscriptionChanged EventKind = "subscription_changed"
	EventCartItemAdded       EventKind = "cart_item_added"
	EventCartItemRemoved     EventKind = "cart_item_removed"
	EventOrderItemAdded      EventKind = "order_item_added"
	EventOrderPlaced         EventKind = "order_placed"
	EventOrderPaid           EventKind = "order_paid"
	EventOrderRefunded       EventKind = "order_refunded"
	EventOrderStatusChanged  EventKind = "order_status_changed"
	EventProductChanged      EventKind = "product_changed"
	EventPageRendered        EventKind = "page_rendered"
)

// Known returns false for kinds outside the closed set.
func (k EventKind) Known() bool {
	switch k {
	case EventContactRegistered, EventCustomerLoggedIn, EventCustomerUpdated,
		EventSubscriptionChanged, EventCartItemAdded, EventCartItemRemoved,
		EventOrderItemAdded, EventOrderPlaced, EventOrderPaid,
		EventOrderRefunded, EventOrderStatusChanged, EventProductChanged,
		EventPageRendered:
		return true
	}
	return false
}

// DomainEvent is one host lifecycle notification. Only the fields relevant to
// the Kind are set; identifiers reference shop entities the dispatcher loads
// through the source repositories.
type DomainEvent struct {
	Kind EventKind `json:"kind"`

	CustomerID     int64 `json:"customer_id,omitempty"`
	SubscriptionID int64 `json:"subscription_id,omitempty"`
	OrderID        int64 `json:"order_id,omitempty"`
	CartItemID     int64 `json:"cart_item_id,omitempty"`
	ProductID      int64 `json:"product_id,omitempty"`

	// Subscribed distinguishes subscribe from unsubscribe for
	// EventSubscriptionChanged.
	Subscribed bool `json:"subscribed,omitempty"`

	// RouteName identifies the page for EventPageRendered.
	RouteName string `json:"route_name,omitempty"`
}

// CustomerEvent is the fire-and-forget behavioral event sent to the
// customer-events endpoint.
type CustomerEvent struct {
	Email      string `json:"email"`
	EventName  string `json:"eventName"`
	Properties any    `json:"properties"`
}

// Behavioral event names on the marketing side.
const (
	EventNameAddedProductToCart = "added product to cart"
	EventNameStartedCheckout    = "started checkout"
	EventNamePlacedOrder        = "placed order"
	EventNamePaidForOrder       = "paid for order"
	EventNameOrderCanceled      = "order canceled"
	EventNameOrderFulfilled     = "order fulfilled"
	EventNameOrderRefunded      = "order refunded"
)

type EventProductItem struct {
	ProductID          string  `json:"productID"`
	ProductTitle       string  `json:"productTitle"`
	ProductDescription string  `json:"productDescription,omitempty"`
	ProductSKU         string  `json:"productSku"`
	ProductVariantID   string  `json:"productVariantID"`
	ProductPrice       float64 `json:"productPrice"`
	ProductQuantity    int     `json:"productQuantity"`
	ProductURL         string  `json:"productUrl,omitempty"`
	ProductImageURL    string  `json:"productImageUrl,omitempty"`
}

type CartEventProperty struct {
	CartID               string             `json:"cartID"`
	Currency             string             `json:"currency"`
	Value                float64            `json:"value"`
	AbandonedCheckoutURL string             `json:"abandonedCheckoutUrl,omitempty"`
	LineItems            []EventProductItem `json:"lineItems"`

	// AddedItem is set only for the "added product to cart" event.
	AddedItem *EventProductItem `json:"addedItem,omitempty"`
}

type AddressItem struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Company     string `json:"company,omitempty"`
	Address1    string `json:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	State       string `json:"state,omitempty"`
	StateCode   string `json:"stateCode,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type OrderEventProperty struct {
	OrderID           string             `json:"orderID"`
	OrderNumber       int64              `json:"orderNumber"`
	Currency          string             `json:"currency"`
	CreatedAt         string             `json:"createdAt"`
	TotalPrice        float64            `json:"totalPrice"`
	SubTotalPrice     float64            `json:"subTotalPrice"`
	TotalDiscount     float64            `json:"totalDiscount"`
	TotalTax          float64            `json:"totalTax"`
	ShippingPrice     float64            `json:"shippingPrice"`
	PaymentMethod     string             `json:"paymentMethod,omitempty"`
	PaymentStatus     string             `json:"paymentStatus,omitempty"`
	FulfillmentStatus string             `json:"fulfillmentStatus,omitempty"`
	ShippingMethod    string             `json:"shippingMethod,omitempty"`
	BillingAddress    *AddressItem       `json:"billingAddress,omitempty"`
	LineItems         []EventProductItem `json:"lineItems"`

	// TotalRefundedAmount is set only for the refunded event.
	TotalRefundedAmount float64 `json:"totalRefundedAmount,omitempty"`
}
