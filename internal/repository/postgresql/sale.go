package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type saleRepositoryImpl struct {
	db *database.DB
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepositoryImpl{db: db}
}

// Create implements sale.SaleRepository. The sale row and its line items are
// written in one transaction.
func (r *saleRepositoryImpl) Create(ctx context.Context, newSale sale.Sale) (sale.Sale, error) {
	var created sale.Sale

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO sales (date, total_amount, payment_method, cashier_id, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, date, total_amount, payment_method, cashier_id, notes, created_at
		`

		err := q.QueryRow(txCtx, query,
			newSale.Date, newSale.TotalAmount, newSale.PaymentMethod,
			newSale.CashierID, newSale.Notes,
		).Scan(
			&created.ID, &created.Date, &created.TotalAmount,
			&created.PaymentMethod, &created.CashierID, &created.Notes, &created.CreatedAt,
		)
		if err != nil {
			return err
		}

		itemQuery := `
			INSERT INTO sale_items (sale_id, product_id, product_name, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5, $6)
		`

		for _, item := range newSale.Items {
			_, err := q.Exec(txCtx, itemQuery,
				created.ID, item.ProductID, item.ProductName,
				item.Quantity, item.UnitPrice, item.Total,
			)
			if err != nil {
				return err
			}
		}

		created.Items = append([]sale.SaleItem(nil), newSale.Items...)
		return nil
	})
	if err != nil {
		return sale.Sale{}, err
	}

	return created, nil
}

// GetByID implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, total_amount, payment_method, cashier_id, notes, created_at
		FROM sales
		WHERE id = $1
	`

	var s sale.Sale
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Date, &s.TotalAmount, &s.PaymentMethod,
		&s.CashierID, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sale.Sale{}, sale.ErrSaleNotFound
		}
		return sale.Sale{}, err
	}

	items, err := r.getItems(ctx, []string{s.ID})
	if err != nil {
		return sale.Sale{}, err
	}
	s.Items = items[s.ID]

	return s, nil
}

// GetAll implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetAll(ctx context.Context) ([]sale.Sale, error) {
	query := `
		SELECT id, date, total_amount, payment_method, cashier_id, notes, created_at
		FROM sales
		ORDER BY date DESC, created_at DESC
	`

	return r.queryMany(ctx, query)
}

// GetBetween implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetBetween(ctx context.Context, from, to time.Time) ([]sale.Sale, error) {
	query := `
		SELECT id, date, total_amount, payment_method, cashier_id, notes, created_at
		FROM sales
		WHERE date >= $1 AND date < $2
		ORDER BY date DESC, created_at DESC
	`

	return r.queryMany(ctx, query, from, to)
}

func (r *saleRepositoryImpl) queryMany(ctx context.Context, query string, args ...any) ([]sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []sale.Sale
	var ids []string
	for rows.Next() {
		var s sale.Sale
		err := rows.Scan(
			&s.ID, &s.Date, &s.TotalAmount, &s.PaymentMethod,
			&s.CashierID, &s.Notes, &s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
		ids = append(ids, s.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return sales, nil
	}

	items, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Items = items[sales[i].ID]
	}

	return sales, nil
}

func (r *saleRepositoryImpl) getItems(ctx context.Context, saleIDs []string) (map[string][]sale.SaleItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sale_id, product_id, product_name, quantity, unit_price, total
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY sale_id, id
	`

	rows, err := q.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]sale.SaleItem)
	for rows.Next() {
		var saleID string
		var item sale.SaleItem
		err := rows.Scan(
			&saleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Total,
		)
		if err != nil {
			return nil, err
		}
		items[saleID] = append(items[saleID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
