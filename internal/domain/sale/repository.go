package sale

import (
	"context"
	"time"
)

type SaleRepository interface {
	Create(ctx context.Context, newSale Sale) (Sale, error)
	GetByID(ctx context.Context, id string) (Sale, error)
	// GetAll returns every sale, newest first.
	GetAll(ctx context.Context) ([]Sale, error)
	// GetBetween returns sales whose date falls within [from, to), newest
	// first.
	GetBetween(ctx context.Context, from, to time.Time) ([]Sale, error)
}
