package service

import (
	"math"
	"strconv"
	"time"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/models"
)

// Mapper converts shop entities into the documents the marketing API accepts.
// Monetary amounts become integer cents; identifiers become strings.
type Mapper struct {
	currency string
	storeURL string
}

func NewMapper(cfg config.App) *Mapper {
	return &Mapper{
		currency: cfg.Currency,
		storeURL: cfg.StoreURL,
	}
}

// cents converts a decimal amount to integer cents, rounding half away from
// zero.
func cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Contact builds the contact document for a subscription. Profile fields are
// filled from the customer account when one exists.
func (m *Mapper) Contact(contact models.Contact, inactiveStatus string, welcome bool) models.CreateContactRequest {
	req := models.NewContactRequest(contact.Subscription, inactiveStatus, welcome)

	if customer := contact.Customer; customer != nil {
		req.FirstName = customer.FirstName
		req.LastName = customer.LastName
		req.Country = customer.Country
		req.CountryCode = customer.CountryCode
		req.State = customer.State
		req.City = customer.City
		req.Address = customer.Address
		req.PostalCode = customer.PostalCode
		req.Gender = customer.Gender
		if customer.BirthDate != nil {
			req.BirthDate = customer.BirthDate.UTC().Format("2006-01-02")
		}
	}

	return req
}

// Profile builds a patch-by-email document from the customer account fields.
func (m *Mapper) Profile(customer models.Customer) models.ContactProfilePatch {
	patch := models.ContactProfilePatch{
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		Country:     customer.Country,
		CountryCode: customer.CountryCode,
		State:       customer.State,
		City:        customer.City,
		Address:     customer.Address,
		PostalCode:  customer.PostalCode,
		Gender:      customer.Gender,
	}
	if customer.BirthDate != nil {
		patch.BirthDate = customer.BirthDate.UTC().Format("2006-01-02")
	}
	return patch
}

func (m *Mapper) Category(category models.Category) models.CategoryDTO {
	return models.CategoryDTO{
		CategoryID: formatID(category.ID),
		Title:      category.Name,
		CreatedAt:  formatTime(category.CreatedAt),
	}
}

func (m *Mapper) Product(product models.Product) models.ProductDTO {
	dto := models.ProductDTO{
		ProductID:   formatID(product.ID),
		Title:       product.Name,
		Status:      productStatus(product),
		Description: product.ShortDescription,
		Currency:    m.currency,
		ProductURL:  product.ProductURL,
		CreatedAt:   formatTime(product.CreatedAt),
		UpdatedAt:   formatTime(product.UpdatedAt),
		CategoryIDs: make([]string, 0, len(product.CategoryIDs)),
	}

	for _, categoryID := range product.CategoryIDs {
		dto.CategoryIDs = append(dto.CategoryIDs, formatID(categoryID))
	}

	if product.PictureURL != "" {
		dto.Images = []models.ProductImage{{
			ImageID: formatID(product.ID),
			URL:     product.PictureURL,
		}}
	}

	for _, variant := range product.Variants {
		dto.Variants = append(dto.Variants, m.variant(product, variant))
	}
	// a product without explicit variants is sold as itself
	if len(dto.Variants) == 0 {
		dto.Variants = []models.ProductVariantDTO{{
			VariantID: formatID(product.ID),
			Title:     product.Name,
			SKU:       product.SKU,
			Status:    productStatus(product),
			Price:     cents(product.Price),
		}}
	}

	return dto
}

func (m *Mapper) variant(product models.Product, variant models.ProductVariant) models.ProductVariantDTO {
	return models.ProductVariantDTO{
		VariantID: formatID(variant.ID),
		Title:     product.Name,
		SKU:       variant.SKU,
		Status:    variantStatus(product, variant),
		Price:     cents(variant.Price),
	}
}

func productStatus(product models.Product) string {
	if !product.Published || product.Deleted {
		return models.ProductStatusNotAvailable
	}
	if product.InStock() {
		return models.ProductStatusInStock
	}
	return models.ProductStatusOutOfStock
}

func variantStatus(product models.Product, variant models.ProductVariant) string {
	if !product.Published || product.Deleted {
		return models.ProductStatusNotAvailable
	}
	if !product.ManageStock || variant.StockQuantity > 0 || variant.AllowOutOfStock {
		return models.ProductStatusInStock
	}
	return models.ProductStatusOutOfStock
}

// Order builds the order document. email must already be resolved; an order
// without an email cannot be mapped and must be skipped by the caller.
func (m *Mapper) Order(order models.Order, email string) models.OrderDTO {
	dto := models.OrderDTO{
		OrderID:     orderID(order),
		Email:       email,
		Currency:    m.currency,
		OrderSum:    cents(order.Total),
		SubTotalSum: cents(order.Subtotal),
		DiscountSum: cents(order.Discount),
		TaxSum:      cents(order.Tax),
		ShippingSum: cents(order.Shipping),
		CreatedAt:   formatTime(order.CreatedAt),
		Products:    make([]models.OrderItemDTO, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		dto.Products = append(dto.Products, models.OrderItemDTO{
			ProductID: formatID(item.ProductID),
			SKU:       item.SKU,
			VariantID: orderItemVariantID(item),
			Title:     item.Name,
			Quantity:  item.Quantity,
			Price:     cents(item.UnitPrice),
		})
	}

	return dto
}

// orderID prefers the order GUID: it survives shop database reshuffles.
func orderID(order models.Order) string {
	if order.OrderGUID != "" {
		return order.OrderGUID
	}
	return formatID(order.ID)
}

func orderItemVariantID(item models.OrderItem) string {
	if item.VariantID != 0 {
		return formatID(item.VariantID)
	}
	return formatID(item.ProductID)
}

// Cart builds the live cart document from the customer's cart lines.
func (m *Mapper) Cart(items []models.CartItem, cartID, email, recoveryURL string) models.CartDTO {
	dto := models.CartDTO{
		CartID:          cartID,
		Email:           email,
		Currency:        m.currency,
		CartRecoveryURL: recoveryURL,
		Products:        make([]models.CartItemDTO, 0, len(items)),
	}

	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
		dto.Products = append(dto.Products, m.CartItem(item))
	}
	dto.CartSum = cents(sum)

	return dto
}

func (m *Mapper) CartItem(item models.CartItem) models.CartItemDTO {
	return models.CartItemDTO{
		CartProductID: formatID(item.ID),
		ProductID:     formatID(item.ProductID),
		SKU:           item.SKU,
		VariantID:     cartItemVariantID(item),
		Title:         item.Name,
		Quantity:      item.Quantity,
		Currency:      m.currency,
		Price:         cents(item.Price),
	}
}

func cartItemVariantID(item models.CartItem) string {
	if item.VariantID != 0 {
		return formatID(item.VariantID)
	}
	return formatID(item.ProductID)
}

// EventCartItem builds the event line-item representation of a cart line.
func (m *Mapper) EventCartItem(item models.CartItem) models.EventProductItem {
	return models.EventProductItem{
		ProductID:        formatID(item.ProductID),
		ProductTitle:     item.Name,
		ProductSKU:       item.SKU,
		ProductVariantID: cartItemVariantID(item),
		ProductPrice:     item.Price,
		ProductQuantity:  item.Quantity,
	}
}

// EventOrderItem builds the event line-item representation of an order line.
func (m *Mapper) EventOrderItem(item models.OrderItem) models.EventProductItem {
	return models.EventProductItem{
		ProductID:        formatID(item.ProductID),
		ProductTitle:     item.Name,
		ProductSKU:       item.SKU,
		ProductVariantID: orderItemVariantID(item),
		ProductPrice:     item.UnitPrice,
		ProductQuantity:  item.Quantity,
	}
}

// OrderEvent builds the behavioral-event payload for an order.
func (m *Mapper) OrderEvent(order models.Order, billing *models.Address) models.OrderEventProperty {
	property := models.OrderEventProperty{
		OrderID:           orderID(order),
		OrderNumber:       order.ID,
		Currency:          m.currency,
		CreatedAt:         formatTime(order.CreatedAt),
		TotalPrice:        order.Total,
		SubTotalPrice:     order.Subtotal,
		TotalDiscount:     order.Discount,
		TotalTax:          order.Tax,
		ShippingPrice:     order.Shipping,
		PaymentMethod:     order.PaymentMethod,
		PaymentStatus:     order.PaymentStatus,
		FulfillmentStatus: order.Status,
		ShippingMethod:    order.ShippingName,
		LineItems:         make([]models.EventProductItem, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		property.LineItems = append(property.LineItems, m.EventOrderItem(item))
	}

	if billing != nil {
		property.BillingAddress = &models.AddressItem{
			FirstName:   billing.FirstName,
			LastName:    billing.LastName,
			Company:     billing.Company,
			Address1:    billing.Address1,
			Address2:    billing.Address2,
			City:        billing.City,
			Country:     billing.Country,
			CountryCode: billing.CountryCode,
			State:       billing.State,
			StateCode:   billing.StateCode,
			Zip:         billing.Zip,
			Phone:       billing.Phone,
		}
	}

	return property
}

// CartEvent builds the behavioral-event payload for a cart.
func (m *Mapper) CartEvent(items []models.CartItem, cartID, recoveryURL string) models.CartEventProperty {
	property := models.CartEventProperty{
		CartID:               cartID,
		Currency:             m.currency,
		AbandonedCheckoutURL: recoveryURL,
		LineItems:            make([]models.EventProductItem, 0, len(items)),
	}

	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
		property.LineItems = append(property.LineItems, m.EventCartItem(item))
	}
	property.Value = sum

	return property
}
