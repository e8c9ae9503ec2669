package models

// Product availability statuses on the marketing side.
const (
	ProductStatusInStock      = "inStock"
	ProductStatusOutOfStock   = "outOfStock"
	ProductStatusNotAvailable = "notAvailable"
)

type ProductImage struct {
	ImageID string `json:"imageID"`
	URL     string `json:"url"`
}

type ProductVariantDTO struct {
	VariantID string `json:"variantID"`
	Title     string `json:"title"`
	SKU       string `json:"sku"`
	Status    string `json:"status"`
	Price     int64  `json:"price"`
}

// ProductDTO is the catalog document pushed to the products endpoint. Prices
// are integer cents.
type ProductDTO struct {
	ProductID   string              `json:"productID"`
	Title       string              `json:"title"`
	Status      string              `json:"status"`
	Description string              `json:"description,omitempty"`
	Currency    string              `json:"currency"`
	ProductURL  string              `json:"productUrl,omitempty"`
	Images      []ProductImage      `json:"images,omitempty"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
	CategoryIDs []string            `json:"categoryIDs"`
	Variants    []ProductVariantDTO `json:"variants"`
}

type CategoryDTO struct {
	CategoryID string `json:"categoryID"`
	Title      string `json:"title"`
	CreatedAt  string `json:"createdAt"`
}
