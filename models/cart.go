package models

type CartItemDTO struct {
	CartProductID string `json:"cartProductID"`
	ProductID     string `json:"productID"`
	SKU           string `json:"sku"`
	VariantID     string `json:"variantID"`
	Title         string `json:"title"`
	Quantity      int    `json:"quantity"`
	Currency      string `json:"currency"`
	Price         int64  `json:"price"`
}

// CartDTO is the live shopping cart document. CartID is the engine-generated
// correlation id stored on the customer, not a shop-side key.
type CartDTO struct {
	CartID          string        `json:"cartID"`
	Email           string        `json:"email"`
	Currency        string        `json:"currency"`
	CartSum         int64         `json:"cartSum"`
	CartRecoveryURL string        `json:"cartRecoveryUrl,omitempty"`
	Products        []CartItemDTO `json:"products"`
}
