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

// cartRepository implements [CartSource] over the shop database.
type cartRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCartRepository(db *DB, logger *logger.Logger) CartSource {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cartRepository) CountCarts(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("COUNT(DISTINCT customer_id)").
		From("cart_item").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*cartRepository.CountCarts").Msg("error counting carts")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

func (r *cartRepository) CartCustomersPage(ctx context.Context, limit, offset int) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("customer_id").
		From("cart_item").
		GroupBy("customer_id").
		OrderBy("customer_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.CartCustomersPage").Msg("error querying cart customers page")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var customerIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*cartRepository.CartCustomersPage").Msg("error: scanning error")
			return nil, err
		}
		customerIDs = append(customerIDs, id)
	}

	return customerIDs, rows.Err()
}

func (r *cartRepository) CartItemsByCustomer(ctx context.Context, customerID int64) ([]models.CartItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := cartItemSelect().
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.CartItemsByCustomer").Msg("error querying cart items")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		err := rows.Scan(
			&item.ID, &item.CustomerID, &item.ProductID, &item.VariantID,
			&item.SKU, &item.Name, &item.Quantity, &item.Price,
		)
		if err != nil {
			log.Err(err).Str("func", "*cartRepository.CartItemsByCustomer").Msg("error: scanning error")
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *cartRepository) CartItemByID(ctx context.Context, id int64) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := cartItemSelect().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.CartItem{}, fmt.Errorf("build query: %w", err)
	}

	var item models.CartItem
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&item.ID, &item.CustomerID, &item.ProductID, &item.VariantID,
		&item.SKU, &item.Name, &item.Quantity, &item.Price,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CartItem{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.CartItemByID").Msg("error reading cart item")
		return models.CartItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

func cartItemSelect() sq.SelectBuilder {
	return psql.Select(
		"id", "customer_id", "product_id", "variant_id",
		"sku", "name", "quantity", "price",
	).From("cart_item")
}
