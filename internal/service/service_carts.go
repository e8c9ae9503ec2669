package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/models"
)

// cartService pushes live cart state to the marketing API and handles
// recovery links.
type cartService struct {
	client    adapter.Client
	carts     store.CartSource
	contacts  store.ContactSource
	customers CustomerService
	mapper    *Mapper
	storeURL  string
	logger    *logger.Logger
}

func NewCartService(client adapter.Client, carts store.CartSource, contacts store.ContactSource, customers CustomerService, mapper *Mapper, cfg config.App, logger *logger.Logger) CartService {
	return &cartService{
		client:    client,
		carts:     carts,
		contacts:  contacts,
		customers: customers,
		mapper:    mapper,
		storeURL:  strings.TrimRight(cfg.StoreURL, "/"),
		logger:    logger,
	}
}

// PushCart sends the customer's full cart. An empty cart deletes the remote
// document and forgets the correlation id, so the next added item starts a
// fresh cart.
func (c *cartService) PushCart(ctx context.Context, customerID int64) error {
	log := logger.FromContext(ctx)

	items, err := c.carts.CartItemsByCustomer(ctx, customerID)
	if err != nil {
		return fmt.Errorf("read cart of customer %d: %w", customerID, err)
	}

	if len(items) == 0 {
		return c.dropCart(ctx, customerID)
	}

	customer, err := c.contacts.CustomerByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("read customer %d: %w", customerID, err)
	}
	email, err := c.customers.ResolveEmail(ctx, customer)
	if err != nil {
		return err
	}
	if email == "" {
		log.Debug().Int64("customerID", customerID).Msg("cart owner has no resolvable email, skipping")
		return nil
	}

	cartID, err := c.customers.CartID(ctx, customerID)
	if err != nil {
		return err
	}

	dto := c.mapper.Cart(items, cartID, email, c.recoveryURL(customerID, cartID))

	// update when the remote document already exists, create otherwise
	body, err := c.client.Perform(ctx, http.MethodGet, pathCarts+"/"+cartID, nil)
	if err != nil {
		return err
	}
	if len(body) > 0 {
		_, err = c.client.Perform(ctx, http.MethodPut, pathCarts+"/"+cartID, dto)
		return err
	}

	_, err = c.client.Perform(ctx, http.MethodPost, pathCarts, dto)
	return err
}

// PushCartItemUpdate updates one line of an already pushed cart. Without a
// stored correlation id there is nothing to patch, so the whole cart is
// pushed instead.
func (c *cartService) PushCartItemUpdate(ctx context.Context, item models.CartItem) error {
	cartID, err := c.customers.StoredCartID(ctx, item.CustomerID)
	if err != nil {
		return err
	}
	if cartID == "" {
		return c.PushCart(ctx, item.CustomerID)
	}

	dto := c.mapper.CartItem(item)
	_, err = c.client.Perform(ctx, http.MethodPatch, pathCarts+"/"+cartID+"/products/"+dto.CartProductID, dto)
	return err
}

// RestoreToken encodes the mandatory recovery parts into an opaque
// URL-safe token.
func (c *cartService) RestoreToken(customerID int64, cartID string) string {
	raw := strconv.FormatInt(customerID, 10) + ":" + cartID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// RestoreCart decodes a recovery token. Every part is mandatory: a token
// that does not decode into a customer id and a cart id is a hard error.
// The decoded correlation id is stored back on the customer so later cart
// pushes keep updating the same remote document.
func (c *cartService) RestoreCart(ctx context.Context, token string) (int64, string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrBadRestoreToken, err)
	}

	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return 0, "", ErrBadRestoreToken
	}

	customerID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrBadRestoreToken, err)
	}

	if err := c.customers.StoreCartID(ctx, customerID, parts[1]); err != nil {
		return 0, "", fmt.Errorf("store cart id: %w", err)
	}

	return customerID, parts[1], nil
}

func (c *cartService) recoveryURL(customerID int64, cartID string) string {
	if c.storeURL == "" {
		return ""
	}
	return c.storeURL + cartRestorePath + c.RestoreToken(customerID, cartID)
}

// dropCart removes the remote cart document (when one was ever pushed) and
// forgets the correlation id.
func (c *cartService) dropCart(ctx context.Context, customerID int64) error {
	cartID, err := c.customers.StoredCartID(ctx, customerID)
	if err != nil {
		return err
	}
	if cartID == "" {
		return nil
	}

	if _, err := c.client.Perform(ctx, http.MethodDelete, pathCarts+"/"+cartID, nil); err != nil {
		return err
	}

	return c.customers.DeleteCartID(ctx, customerID)
}
