package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
)

// ProductRepository handles database operations for the item catalog
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, name, description, price, category, stock, image_url, for_course, branch, year, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var product models.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.Stock,
		&product.ImageURL,
		&product.ForCourse,
		&product.Branch,
		&product.Year,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts a new product and fills in the generated fields.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, category, stock, image_url, for_course, branch, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Category,
		product.Stock, product.ImageURL, product.ForCourse, product.Branch, product.Year,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("error retrieving product: %w", err)
	}

	return product, nil
}

// ProductFilter narrows List results to one course scope and/or year.
// Note the filter matches the scoping columns exactly; resolving which
// products apply to a student is the catalog package's job.
type ProductFilter struct {
	ForCourse *string
	Year      *int
}

// List retrieves products, optionally filtered.
func (r *ProductRepository) List(ctx context.Context, filter ProductFilter) ([]*models.Product, error) {
	queryBuilder := squirrel.Select(
		"id", "name", "description", "price", "category", "stock",
		"image_url", "for_course", "branch", "year", "created_at", "updated_at",
	).
		From("products").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ForCourse != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"for_course": *filter.ForCourse})
	}
	if filter.Year != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"year": *filter.Year})
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building product list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if products == nil {
		products = []*models.Product{}
	}

	return products, nil
}

// Update applies a partial update; only columns in setMap are written.
func (r *ProductRepository) Update(ctx context.Context, id int64, setMap map[string]interface{}) (*models.Product, error) {
	if len(setMap) == 0 {
		return r.GetByID(ctx, id)
	}

	queryBuilder := squirrel.Update("products").
		SetMap(setMap).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + productColumns).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building product update query: %w", err)
	}

	product, err := scanProduct(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return product, nil
}

// Delete removes a product by ID
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}
