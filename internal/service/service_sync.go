// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/models"
)

// syncService implements SyncService: bulk synchronization of shop data into
// the marketing API plus the single-record pushes the event dispatcher uses.
//
// The strategy decision is made per endpoint from the total record count:
// a collection is batched when it reaches the batch threshold or simply does
// not fit one page; otherwise records are pushed directly one by one. Batched
// submissions enqueue one batch job per page and the paging loop ends only on
// an empty page, so a collection that grows mid-sync is still drained.
type syncService struct {
	client    adapter.Client
	storages  *store.Storages
	tracker   BatchTracker
	customers CustomerService
	carts     CartService
	mapper    *Mapper
	logger    *logger.Logger
}

func NewSyncService(client adapter.Client, storages *store.Storages, tracker BatchTracker, customers CustomerService, carts CartService, mapper *Mapper, logger *logger.Logger) SyncService {
	return &syncService{
		client:    client,
		storages:  storages,
		tracker:   tracker,
		customers: customers,
		carts:     carts,
		mapper:    mapper,
		logger:    logger,
	}
}

// ── bulk synchronization ────────────────────────────────────────────────────

func (s *syncService) SyncContacts(ctx context.Context) (SyncResult, error) {
	if err := s.ensureUnblocked(ctx, endpointContacts); err != nil {
		return SyncResult{Endpoint: endpointContacts}, err
	}

	settings, err := s.storages.Settings.Load(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointContacts}, fmt.Errorf("load settings: %w", err)
	}

	total, err := s.storages.Contacts.CountSubscriptions(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointContacts}, fmt.Errorf("count subscriptions: %w", err)
	}

	result := SyncResult{Endpoint: endpointContacts, Total: total}
	if total == 0 {
		return result, nil
	}
	result.Batched = shouldBatch(total, settings)

	offset := 0
	for {
		contacts, err := s.storages.Contacts.SubscriptionsPage(ctx, settings.PageSize, offset)
		if err != nil {
			return result, fmt.Errorf("subscriptions page at offset %d: %w", offset, err)
		}
		if len(contacts) == 0 {
			break
		}

		if result.Batched {
			items := make([]any, 0, len(contacts))
			for _, contact := range contacts {
				items = append(items, s.mapper.Contact(contact, models.ContactStatusNonSubscribed, false))
			}
			batchID, err := s.submitBatch(ctx, endpointContacts, items)
			if err != nil {
				return result, err
			}
			if batchID != "" {
				result.BatchIDs = append(result.BatchIDs, batchID)
			}
		} else {
			for _, contact := range contacts {
				if err := s.pushContact(ctx, contact, models.ContactStatusNonSubscribed, false); err != nil {
					s.logPushError(ctx, endpointContacts, contact.Subscription.Email, err)
					continue
				}
				result.Pushed++
			}
		}

		offset += settings.PageSize
	}

	return result, nil
}

func (s *syncService) SyncCategories(ctx context.Context) (SyncResult, error) {
	// categories share the products block flag: both feed the catalog
	if err := s.ensureUnblocked(ctx, endpointProducts); err != nil {
		return SyncResult{Endpoint: endpointCategories}, err
	}

	settings, err := s.storages.Settings.Load(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointCategories}, fmt.Errorf("load settings: %w", err)
	}

	total, err := s.storages.Catalog.CountCategories(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointCategories}, fmt.Errorf("count categories: %w", err)
	}

	result := SyncResult{Endpoint: endpointCategories, Total: total}
	if total == 0 {
		return result, nil
	}
	result.Batched = shouldBatch(total, settings)

	offset := 0
	for {
		categories, err := s.storages.Catalog.CategoriesPage(ctx, settings.PageSize, offset)
		if err != nil {
			return result, fmt.Errorf("categories page at offset %d: %w", offset, err)
		}
		if len(categories) == 0 {
			break
		}

		if result.Batched {
			items := make([]any, 0, len(categories))
			for _, category := range categories {
				items = append(items, s.mapper.Category(category))
			}
			batchID, err := s.submitBatch(ctx, endpointCategories, items)
			if err != nil {
				return result, err
			}
			if batchID != "" {
				result.BatchIDs = append(result.BatchIDs, batchID)
			}
		} else {
			for _, category := range categories {
				if err := s.pushCategory(ctx, category); err != nil {
					s.logPushError(ctx, endpointCategories, category.Name, err)
					continue
				}
				result.Pushed++
			}
		}

		offset += settings.PageSize
	}

	return result, nil
}

func (s *syncService) SyncProducts(ctx context.Context) (SyncResult, error) {
	if err := s.ensureUnblocked(ctx, endpointProducts); err != nil {
		return SyncResult{Endpoint: endpointProducts}, err
	}

	settings, err := s.storages.Settings.Load(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointProducts}, fmt.Errorf("load settings: %w", err)
	}

	total, err := s.storages.Catalog.CountProducts(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointProducts}, fmt.Errorf("count products: %w", err)
	}

	result := SyncResult{Endpoint: endpointProducts, Total: total}
	if total == 0 {
		return result, nil
	}
	result.Batched = shouldBatch(total, settings)

	offset := 0
	for {
		products, err := s.storages.Catalog.ProductsPage(ctx, settings.PageSize, offset)
		if err != nil {
			return result, fmt.Errorf("products page at offset %d: %w", offset, err)
		}
		if len(products) == 0 {
			break
		}

		if result.Batched {
			items := make([]any, 0, len(products))
			for _, product := range products {
				items = append(items, s.mapper.Product(product))
			}
			batchID, err := s.submitBatch(ctx, endpointProducts, items)
			if err != nil {
				return result, err
			}
			if batchID != "" {
				result.BatchIDs = append(result.BatchIDs, batchID)
			}
		} else {
			for _, product := range products {
				if err := s.pushProduct(ctx, product); err != nil {
					s.logPushError(ctx, endpointProducts, product.SKU, err)
					continue
				}
				result.Pushed++
			}
		}

		offset += settings.PageSize
	}

	return result, nil
}

func (s *syncService) SyncOrders(ctx context.Context) (SyncResult, error) {
	if err := s.ensureUnblocked(ctx, endpointOrders); err != nil {
		return SyncResult{Endpoint: endpointOrders}, err
	}

	settings, err := s.storages.Settings.Load(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointOrders}, fmt.Errorf("load settings: %w", err)
	}

	total, err := s.storages.Orders.CountOrders(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointOrders}, fmt.Errorf("count orders: %w", err)
	}

	result := SyncResult{Endpoint: endpointOrders, Total: total}
	if total == 0 {
		return result, nil
	}
	result.Batched = shouldBatch(total, settings)

	offset := 0
	for {
		orders, err := s.storages.Orders.OrdersPage(ctx, settings.PageSize, offset)
		if err != nil {
			return result, fmt.Errorf("orders page at offset %d: %w", offset, err)
		}
		if len(orders) == 0 {
			break
		}

		if result.Batched {
			items := make([]any, 0, len(orders))
			for _, order := range orders {
				email, err := s.orderEmail(ctx, order)
				if err != nil {
					return result, err
				}
				if email == "" {
					// an order without a resolvable email cannot be mapped
					continue
				}
				items = append(items, s.mapper.Order(order, email))
			}
			if len(items) > 0 {
				batchID, err := s.submitBatch(ctx, endpointOrders, items)
				if err != nil {
					return result, err
				}
				if batchID != "" {
					result.BatchIDs = append(result.BatchIDs, batchID)
				}
			}
		} else {
			for _, order := range orders {
				if err := s.pushOrder(ctx, order, false); err != nil {
					s.logPushError(ctx, endpointOrders, order.OrderGUID, err)
					continue
				}
				result.Pushed++
			}
		}

		offset += settings.PageSize
	}

	return result, nil
}

// SyncCarts pushes live carts one customer at a time; there is no batch
// ingestion for carts.
func (s *syncService) SyncCarts(ctx context.Context) (SyncResult, error) {
	settings, err := s.storages.Settings.Load(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointCarts}, fmt.Errorf("load settings: %w", err)
	}

	total, err := s.storages.Carts.CountCarts(ctx)
	if err != nil {
		return SyncResult{Endpoint: endpointCarts}, fmt.Errorf("count carts: %w", err)
	}

	result := SyncResult{Endpoint: endpointCarts, Total: total}
	if total == 0 {
		return result, nil
	}

	offset := 0
	for {
		customerIDs, err := s.storages.Carts.CartCustomersPage(ctx, settings.PageSize, offset)
		if err != nil {
			return result, fmt.Errorf("cart customers page at offset %d: %w", offset, err)
		}
		if len(customerIDs) == 0 {
			break
		}

		for _, customerID := range customerIDs {
			if err := s.carts.PushCart(ctx, customerID); err != nil {
				s.logPushError(ctx, endpointCarts, formatID(customerID), err)
				continue
			}
			result.Pushed++
		}

		offset += settings.PageSize
	}

	return result, nil
}

// ── single-record pushes ────────────────────────────────────────────────────

func (s *syncService) UpdateOrCreateContact(ctx context.Context, contact models.Contact, inactiveStatus string, welcome bool) error {
	return s.pushContact(ctx, contact, inactiveStatus, welcome)
}

func (s *syncService) CreateOrUpdateProduct(ctx context.Context, productID int64) error {
	product, err := s.storages.Catalog.ProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// unpublished or deleted since the event fired
			return nil
		}
		return fmt.Errorf("read product %d: %w", productID, err)
	}

	return s.pushProduct(ctx, product)
}

func (s *syncService) CreateOrder(ctx context.Context, orderID int64) error {
	order, err := s.storages.Orders.OrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("read order %d: %w", orderID, err)
	}

	return s.pushOrder(ctx, order, false)
}

func (s *syncService) UpdateOrder(ctx context.Context, orderID int64) error {
	order, err := s.storages.Orders.OrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("read order %d: %w", orderID, err)
	}

	return s.pushOrder(ctx, order, true)
}

// ── internals ───────────────────────────────────────────────────────────────

// shouldBatch is the strategy decision: batch when the collection reaches the
// threshold or does not fit a single page.
func shouldBatch(total int, settings *models.Settings) bool {
	return total >= settings.BatchThreshold || total > settings.PageSize
}

// ensureUnblocked reconciles batch jobs and refuses while one still targets
// the endpoint.
func (s *syncService) ensureUnblocked(ctx context.Context, endpoint string) error {
	_, flags, err := s.tracker.Reconcile(ctx)
	if err != nil {
		return fmt.Errorf("reconcile batches: %w", err)
	}

	blocked := false
	switch endpoint {
	case endpointContacts:
		blocked = flags.Contacts
	case endpointOrders:
		blocked = flags.Orders
	case endpointProducts, endpointCategories:
		blocked = flags.Products
	}
	if blocked {
		return fmt.Errorf("%s: %w", endpoint, ErrEndpointBlocked)
	}

	return nil
}

func (s *syncService) submitBatch(ctx context.Context, endpoint string, items []any) (string, error) {
	request := models.BatchRequest{
		Method:   http.MethodPost,
		Endpoint: endpoint,
		Items:    items,
	}

	body, err := s.client.Perform(ctx, http.MethodPost, pathBatches, request)
	if err != nil {
		return "", fmt.Errorf("submit %s batch: %w", endpoint, err)
	}

	return s.tracker.RecordSubmission(ctx, body)
}

func (s *syncService) pushContact(ctx context.Context, contact models.Contact, inactiveStatus string, welcome bool) error {
	request := s.mapper.Contact(contact, inactiveStatus, welcome)
	email := request.Email()
	if email == "" {
		return fmt.Errorf("subscription %d: %w", contact.Subscription.ID, ErrInvalidDataProvided)
	}

	contactID, err := s.customers.ContactID(ctx, email)
	if err != nil {
		return err
	}

	if contactID != "" {
		// existing contacts are patched by email, not by remote id
		patch := models.ContactPatchRequest{Identifiers: request.Identifiers}
		_, err = s.client.Perform(ctx, http.MethodPatch, pathContacts+"?email="+url.QueryEscape(email), patch)
		return err
	}

	_, err = s.client.Perform(ctx, http.MethodPost, pathContacts, request)
	return err
}

func (s *syncService) pushCategory(ctx context.Context, category models.Category) error {
	dto := s.mapper.Category(category)

	body, err := s.client.Perform(ctx, http.MethodGet, pathCategories+"/"+dto.CategoryID, nil)
	if err != nil {
		return err
	}
	if len(body) > 0 {
		_, err = s.client.Perform(ctx, http.MethodPut, pathCategories+"/"+dto.CategoryID, dto)
		return err
	}

	_, err = s.client.Perform(ctx, http.MethodPost, pathCategories, dto)
	return err
}

func (s *syncService) pushProduct(ctx context.Context, product models.Product) error {
	dto := s.mapper.Product(product)

	body, err := s.client.Perform(ctx, http.MethodGet, pathProducts+"/"+dto.ProductID, nil)
	if err != nil {
		return err
	}
	if len(body) > 0 {
		_, err = s.client.Perform(ctx, http.MethodPut, pathProducts+"/"+dto.ProductID, dto)
		return err
	}

	_, err = s.client.Perform(ctx, http.MethodPost, pathProducts, dto)
	return err
}

// pushOrder sends one order; update forces a PUT against the existing remote
// document.
func (s *syncService) pushOrder(ctx context.Context, order models.Order, update bool) error {
	log := logger.FromContext(ctx)

	email, err := s.orderEmail(ctx, order)
	if err != nil {
		return err
	}
	if email == "" {
		log.Warn().Int64("orderID", order.ID).Msg("order has no resolvable email, skipping")
		return nil
	}

	dto := s.mapper.Order(order, email)
	if update {
		_, err = s.client.Perform(ctx, http.MethodPut, pathOrders+"/"+dto.OrderID, dto)
		return err
	}

	_, err = s.client.Perform(ctx, http.MethodPost, pathOrders, dto)
	return err
}

// orderEmail resolves the email for an order: the customer resolution chain
// first, then the order's own billing address.
func (s *syncService) orderEmail(ctx context.Context, order models.Order) (string, error) {
	customer, err := s.storages.Contacts.CustomerByID(ctx, order.CustomerID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("read customer %d: %w", order.CustomerID, err)
	}
	if err == nil {
		email, err := s.customers.ResolveEmail(ctx, customer)
		if err != nil {
			return "", err
		}
		if email != "" {
			return email, nil
		}
	}

	if order.BillingAddrID == 0 {
		return "", nil
	}
	address, err := s.storages.Contacts.AddressByID(ctx, order.BillingAddrID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("read order billing address: %w", err)
	}

	return address.Email, nil
}

func (s *syncService) logPushError(ctx context.Context, endpoint, record string, err error) {
	logger.FromContext(ctx).Err(err).
		Str("endpoint", endpoint).
		Str("record", record).
		Msg("direct push failed, continuing")
}
