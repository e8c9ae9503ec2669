package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/models"
)

// orderRepository implements [OrderSource] over the shop database.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewOrderRepository(db *DB, logger *logger.Logger) OrderSource {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) CountOrders(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("COUNT(*)").
		From("orders").
		Where(sq.Eq{"deleted": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*orderRepository.CountOrders").Msg("error counting orders")
		if isSchemaError(err) {
			return 0, fmt.Errorf("%w: %w", ErrShopSchema, err)
		}
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

func (r *orderRepository) OrdersPage(ctx context.Context, limit, offset int) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := orderSelect().
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.OrdersPage").Msg("error querying orders page")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.OrdersPage").Msg("error: scanning error")
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) OrderByID(ctx context.Context, id int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := orderSelect().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Order{}, fmt.Errorf("build query: %w", err)
	}

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.OrderByID").Msg("error reading order")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	orders := []models.Order{order}
	if err := r.attachItems(ctx, orders); err != nil {
		return models.Order{}, err
	}

	return orders[0], nil
}

func (r *orderRepository) OrderItemByID(ctx context.Context, id int64) (models.OrderItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(
		"id", "product_id", "variant_id", "sku", "name",
		"quantity", "unit_price", "discount",
	).
		From("order_item").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.OrderItem{}, fmt.Errorf("build query: %w", err)
	}

	var item models.OrderItem
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&item.ID, &item.ProductID, &item.VariantID, &item.SKU, &item.Name,
		&item.Quantity, &item.UnitPrice, &item.Discount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OrderItem{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.OrderItemByID").Msg("error reading order item")
		return models.OrderItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

func orderSelect() sq.SelectBuilder {
	return psql.Select(
		"id", "order_guid", "customer_id", "billing_address_id",
		"status", "payment_status", "payment_method", "shipping_name",
		"total", "subtotal", "discount", "tax", "shipping", "refunded_total",
		"created_at",
	).
		From("orders").
		Where(sq.Eq{"deleted": false})
}

func scanOrder(row rowScanner) (models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID, &order.OrderGUID, &order.CustomerID, &order.BillingAddrID,
		&order.Status, &order.PaymentStatus, &order.PaymentMethod, &order.ShippingName,
		&order.Total, &order.Subtotal, &order.Discount, &order.Tax, &order.Shipping,
		&order.RefundedTotal, &order.CreatedAt,
	)
	return order, err
}

func (r *orderRepository) attachItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]int64, len(orders))
	index := make(map[int64]*models.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = &orders[i]
	}

	query, args, err := psql.Select(
		"id", "order_id", "product_id", "variant_id", "sku", "name",
		"quantity", "unit_price", "discount",
	).
		From("order_item").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build items query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.attachItems").Msg("error querying order items")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		var orderID int64
		err := rows.Scan(
			&item.ID, &orderID, &item.ProductID, &item.VariantID, &item.SKU, &item.Name,
			&item.Quantity, &item.UnitPrice, &item.Discount,
		)
		if err != nil {
			return err
		}
		if order, ok := index[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	return rows.Err()
}
