package postgresql

import (
	"context"
	"errors"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepositoryImpl{db: db}
}

// Create implements product.ProductRepository.
func (r *productRepositoryImpl) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (name, category, quantity, purchase_price, selling_price, supplier, min_stock_level, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, category, quantity, purchase_price, selling_price, supplier, min_stock_level, image_url, created_at, updated_at
	`

	var created product.Product
	err := q.QueryRow(ctx, query,
		newProduct.Name, newProduct.Category, newProduct.Quantity,
		newProduct.PurchasePrice, newProduct.SellingPrice, newProduct.Supplier,
		newProduct.MinStockLevel, newProduct.ImageURL,
	).Scan(
		&created.ID, &created.Name, &created.Category, &created.Quantity,
		&created.PurchasePrice, &created.SellingPrice, &created.Supplier,
		&created.MinStockLevel, &created.ImageURL, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return product.Product{}, product.ErrProductNameExists
		}
		return product.Product{}, err
	}

	return created, nil
}

// GetByID implements product.ProductRepository.
func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, quantity, purchase_price, selling_price, supplier, min_stock_level, image_url, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var p product.Product
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Quantity,
		&p.PurchasePrice, &p.SellingPrice, &p.Supplier,
		&p.MinStockLevel, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, err
	}

	return p, nil
}

// GetAll implements product.ProductRepository.
func (r *productRepositoryImpl) GetAll(ctx context.Context) ([]product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, quantity, purchase_price, selling_price, supplier, min_stock_level, image_url, created_at, updated_at
		FROM products
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var p product.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Quantity,
			&p.PurchasePrice, &p.SellingPrice, &p.Supplier,
			&p.MinStockLevel, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// AdjustQuantity implements product.ProductRepository. The WHERE clause
// rejects adjustments that would drive the quantity negative, so the check
// and the write are one statement.
func (r *productRepositoryImpl) AdjustQuantity(ctx context.Context, id string, delta int) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE products
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2 AND quantity + $1 >= 0
		RETURNING id, name, category, quantity, purchase_price, selling_price, supplier, min_stock_level, image_url, created_at, updated_at
	`

	var p product.Product
	err := q.QueryRow(ctx, query, delta, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Quantity,
		&p.PurchasePrice, &p.SellingPrice, &p.Supplier,
		&p.MinStockLevel, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the product is missing or the delta would overdraw it.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return product.Product{}, getErr
			}
			return product.Product{}, product.ErrInsufficientStock
		}
		return product.Product{}, err
	}

	return p, nil
}
