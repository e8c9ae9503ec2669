package models

type OrderItemDTO struct {
	ProductID string `json:"productID"`
	SKU       string `json:"sku"`
	VariantID string `json:"variantID"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// OrderDTO is the order document pushed to the orders endpoint. Sums are
// integer cents. Email is mandatory: an order whose customer has no
// resolvable email cannot be mapped at all.
type OrderDTO struct {
	OrderID     string         `json:"orderID"`
	Email       string         `json:"email"`
	Currency    string         `json:"currency"`
	OrderSum    int64          `json:"orderSum"`
	SubTotalSum int64          `json:"subTotalSum"`
	DiscountSum int64          `json:"discountSum"`
	TaxSum      int64          `json:"taxSum"`
	ShippingSum int64          `json:"shippingSum"`
	CreatedAt   string         `json:"createdAt"`
	Products    []OrderItemDTO `json:"products"`
}
