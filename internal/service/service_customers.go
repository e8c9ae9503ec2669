package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

// customerService resolves customer identity details: emails, cart
// correlation ids, and remote contact ids.
type customerService struct {
	client     adapter.Client
	contacts   store.ContactSource
	attributes store.AttributeStore
	uuid       *utils.UUIDGenerator
	logger     *logger.Logger
}

func NewCustomerService(client adapter.Client, contacts store.ContactSource, attributes store.AttributeStore, logger *logger.Logger) CustomerService {
	return &customerService{
		client:     client,
		contacts:   contacts,
		attributes: attributes,
		uuid:       utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// ResolveEmail walks the resolution chain: account email, remembered
// attribute, billing address email. The first non-empty value wins; an empty
// result means the customer is anonymous.
func (c *customerService) ResolveEmail(ctx context.Context, customer models.Customer) (string, error) {
	if customer.Email != "" {
		return customer.Email, nil
	}

	remembered, err := c.attributes.Get(ctx, entityCustomer, customer.ID, attrEmail)
	if err != nil {
		return "", fmt.Errorf("read remembered email: %w", err)
	}
	if remembered != "" {
		return remembered, nil
	}

	if customer.BillingAddressID == 0 {
		return "", nil
	}
	address, err := c.contacts.AddressByID(ctx, customer.BillingAddressID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("read billing address: %w", err)
	}

	return address.Email, nil
}

func (c *customerService) RememberEmail(ctx context.Context, customerID int64, email string) error {
	if email == "" {
		return nil
	}
	return c.attributes.Set(ctx, entityCustomer, customerID, attrEmail, email)
}

// CartID returns the stored correlation id, generating and persisting a new
// one when the customer has no live cart yet.
func (c *customerService) CartID(ctx context.Context, customerID int64) (string, error) {
	stored, err := c.attributes.Get(ctx, entityCustomer, customerID, attrCartID)
	if err != nil {
		return "", fmt.Errorf("read cart id: %w", err)
	}
	if stored != "" {
		return stored, nil
	}

	fresh := c.uuid.Generate()
	if err := c.attributes.Set(ctx, entityCustomer, customerID, attrCartID, fresh); err != nil {
		return "", fmt.Errorf("store cart id: %w", err)
	}

	return fresh, nil
}

func (c *customerService) StoredCartID(ctx context.Context, customerID int64) (string, error) {
	return c.attributes.Get(ctx, entityCustomer, customerID, attrCartID)
}

func (c *customerService) StoreCartID(ctx context.Context, customerID int64, cartID string) error {
	return c.attributes.Set(ctx, entityCustomer, customerID, attrCartID, cartID)
}

func (c *customerService) DeleteCartID(ctx context.Context, customerID int64) error {
	return c.attributes.Delete(ctx, entityCustomer, customerID, attrCartID)
}

// ContactID asks the marketing API whether the email is a known contact.
// The lookup is a limit-1 list query; "" means unknown.
func (c *customerService) ContactID(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return "", nil
	}

	path := fmt.Sprintf("%s?email=%s&limit=1", pathContacts, url.QueryEscape(email))
	body, err := c.client.Perform(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", fmt.Errorf("contact lookup: %w", err)
	}
	if len(body) == 0 {
		return "", nil
	}

	var list models.ContactsListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		log.Err(err).Str("email", email).Msg("error decoding contact lookup response")
		return "", fmt.Errorf("decode contact lookup response: %w", err)
	}
	if len(list.Contacts) == 0 {
		return "", nil
	}

	return list.Contacts[0].ContactID, nil
}

// NewCustomerEvent builds a behavioral event for a customer. A customer
// without any resolvable email produces (nil, nil): the event is skipped.
func (c *customerService) NewCustomerEvent(ctx context.Context, customer models.Customer, eventName string, properties any) (*models.CustomerEvent, error) {
	email, err := c.ResolveEmail(ctx, customer)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, nil
	}

	return &models.CustomerEvent{
		Email:      email,
		EventName:  eventName,
		Properties: properties,
	}, nil
}
