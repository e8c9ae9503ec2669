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

// catalogRepository implements [CatalogSource] over the shop database.
// Only published, non-deleted records are visible to the sync engine.
type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogSource {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *catalogRepository) CountCategories(ctx context.Context) (int, error) {
	return r.count(ctx, psql.Select("COUNT(*)").
		From("category").
		Where(sq.Eq{"published": true, "deleted": false}))
}

func (r *catalogRepository) CategoriesPage(ctx context.Context, limit, offset int) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("id", "name", "created_at").
		From("category").
		Where(sq.Eq{"published": true, "deleted": false}).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.CategoriesPage").Msg("error querying categories page")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			log.Err(err).Str("func", "*catalogRepository.CategoriesPage").Msg("error: scanning error")
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *catalogRepository) CategoryByID(ctx context.Context, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("id", "name", "created_at").
		From("category").
		Where(sq.Eq{"id": id, "published": true, "deleted": false}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("build query: %w", err)
	}

	var category models.Category
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&category.ID, &category.Name, &category.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.CategoryByID").Msg("error reading category")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return category, nil
}

func (r *catalogRepository) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, psql.Select("COUNT(*)").
		From("product").
		Where(sq.Eq{"published": true, "deleted": false}))
}

func (r *catalogRepository) ProductsPage(ctx context.Context, limit, offset int) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := productSelect().
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.ProductsPage").Msg("error querying products page")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Err(err).Str("func", "*catalogRepository.ProductsPage").Msg("error: scanning error")
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.attachCategoryIDs(ctx, products); err != nil {
		return nil, err
	}
	if err := r.attachVariants(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *catalogRepository) ProductByID(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := productSelect().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("build query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.ProductByID").Msg("error reading product")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	products := []models.Product{product}
	if err := r.attachCategoryIDs(ctx, products); err != nil {
		return models.Product{}, err
	}
	if err := r.attachVariants(ctx, products); err != nil {
		return models.Product{}, err
	}

	return products[0], nil
}

func productSelect() sq.SelectBuilder {
	return psql.Select(
		"id", "name", "sku", "short_description",
		"price", "old_price", "published", "deleted",
		"manage_stock", "stock_quantity", "allow_out_of_stock",
		"picture_url", "product_url", "created_at", "updated_at",
	).
		From("product").
		Where(sq.Eq{"published": true, "deleted": false})
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var product models.Product
	err := row.Scan(
		&product.ID, &product.Name, &product.SKU, &product.ShortDescription,
		&product.Price, &product.OldPrice, &product.Published, &product.Deleted,
		&product.ManageStock, &product.StockQuantity, &product.AllowOutOfStock,
		&product.PictureURL, &product.ProductURL, &product.CreatedAt, &product.UpdatedAt,
	)
	return product, err
}

func (r *catalogRepository) attachCategoryIDs(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]int64, len(products))
	index := make(map[int64]*models.Product, len(products))
	for i := range products {
		ids[i] = products[i].ID
		index[products[i].ID] = &products[i]
	}

	query, args, err := psql.Select("product_id", "category_id").
		From("product_category").
		Where(sq.Eq{"product_id": ids}).
		OrderBy("product_id", "category_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build category ids query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.attachCategoryIDs").Msg("error querying product categories")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID, categoryID int64
		if err := rows.Scan(&productID, &categoryID); err != nil {
			return err
		}
		if product, ok := index[productID]; ok {
			product.CategoryIDs = append(product.CategoryIDs, categoryID)
		}
	}

	return rows.Err()
}

func (r *catalogRepository) attachVariants(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]int64, len(products))
	index := make(map[int64]*models.Product, len(products))
	for i := range products {
		ids[i] = products[i].ID
		index[products[i].ID] = &products[i]
	}

	query, args, err := psql.Select(
		"id", "product_id", "sku", "price",
		"stock_quantity", "allow_out_of_stock", "is_default",
	).
		From("product_variant").
		Where(sq.Eq{"product_id": ids}).
		OrderBy("product_id", "id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build variants query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.attachVariants").Msg("error querying product variants")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var variant models.ProductVariant
		var productID int64
		err := rows.Scan(
			&variant.ID, &productID, &variant.SKU, &variant.Price,
			&variant.StockQuantity, &variant.AllowOutOfStock, &variant.IsDefaultVariant,
		)
		if err != nil {
			return err
		}
		if product, ok := index[productID]; ok {
			product.Variants = append(product.Variants, variant)
		}
	}

	return rows.Err()
}

func (r *catalogRepository) count(ctx context.Context, builder sq.SelectBuilder) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*catalogRepository.count").Msg("error counting records")
		if isSchemaError(err) {
			return 0, fmt.Errorf("%w: %w", ErrShopSchema, err)
		}
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
