package product

import "context"

type ProductRepository interface {
	Create(ctx context.Context, newProduct Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	// GetAll returns every product in insertion order.
	GetAll(ctx context.Context) ([]Product, error)
	// AdjustQuantity applies a signed delta to the product's stock and
	// refreshes updated_at. Returns ErrInsufficientStock when the delta
	// would drive the quantity negative.
	AdjustQuantity(ctx context.Context, id string, delta int) (Product, error)
}
