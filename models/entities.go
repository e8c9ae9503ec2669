package models

import "time"

// Customer is the read-only shape of a shop customer account as returned by
// the source repositories. Profile attributes (name, address parts, gender,
// birth date) come from the shop's generic attribute table and are flattened
// here by the repository layer.
type Customer struct {
	ID               int64
	Email            string
	Active           bool
	Deleted          bool
	IsGuest          bool
	BillingAddressID int64
	FirstName        string
	LastName         string
	Country          string
	CountryCode      string
	State            string
	City             string
	Address          string
	PostalCode       string
	Gender           string
	BirthDate        *time.Time
}

// Address is a shop address record. Only the fields the sync engine reads are
// mapped.
type Address struct {
	ID          int64
	Email       string
	FirstName   string
	LastName    string
	Company     string
	Address1    string
	Address2    string
	City        string
	Country     string
	CountryCode string
	State       string
	StateCode   string
	Zip         string
	Phone       string
}

// Subscription is a newsletter subscription record. Email may belong to a
// registered customer or to a guest; the contact source resolves the join.
type Subscription struct {
	ID     int64
	Email  string
	Active bool
}

// Contact is a subscription joined with its customer account when one exists.
// Customer is nil for guest subscribers.
type Contact struct {
	Subscription Subscription
	Customer     *Customer
}

type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// ProductVariant is a sellable combination of a product. Every product has at
// least the default variant (the product itself); attribute combinations add
// more.
type ProductVariant struct {
	ID               int64
	SKU              string
	Price            float64
	StockQuantity    int
	AllowOutOfStock  bool
	IsDefaultVariant bool
}

type Product struct {
	ID               int64
	Name             string
	SKU              string
	ShortDescription string
	Price            float64
	OldPrice         float64
	Published        bool
	Deleted          bool
	ManageStock      bool
	StockQuantity    int
	AllowOutOfStock  bool
	CategoryIDs      []int64
	Variants         []ProductVariant
	PictureURL       string
	ProductURL       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InStock reports whether the product is sellable right now.
func (p Product) InStock() bool {
	if !p.Published || p.Deleted {
		return false
	}
	if !p.ManageStock {
		return true
	}
	return p.StockQuantity > 0 || p.AllowOutOfStock
}

type OrderItem struct {
	ID        int64
	ProductID int64
	VariantID int64
	SKU       string
	Name      string
	Quantity  int
	UnitPrice float64
	Discount  float64
}

// Order payment and fulfilment statuses are the shop's own textual values.
// The sync engine compares them verbatim against the refunded payment status
// and the terminal order statuses from the service defaults.
type Order struct {
	ID            int64
	OrderGUID     string
	CustomerID    int64
	BillingAddrID int64
	Status        string
	PaymentStatus string
	PaymentMethod string
	ShippingName  string
	Total         float64
	Subtotal      float64
	Discount      float64
	Tax           float64
	Shipping      float64
	RefundedTotal float64
	Items         []OrderItem
	CreatedAt     time.Time
}

// CartItem is one line of a shopper's live cart.
type CartItem struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	VariantID  int64
	SKU        string
	Name       string
	Quantity   int
	Price      float64
}
