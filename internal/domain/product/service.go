package product

import "context"

// InventoryService defines business logic for the product inventory
type InventoryService interface {
	// CreateProduct adds a new product to the inventory
	CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error)

	// GetProduct retrieves a single product by ID
	GetProduct(ctx context.Context, id string) (ProductResponse, error)

	// ListProducts filters the inventory and reports the low-stock count
	ListProducts(ctx context.Context, filter ProductFilter) (ListProductResponse, error)

	// AdjustStock applies a signed quantity delta (restock or consumption)
	AdjustStock(ctx context.Context, id string, req AdjustStockRequest) (ProductResponse, error)

	// ListCategories returns the static recognized-category set
	ListCategories(ctx context.Context) []CategoryResponse

	// ListSuppliers returns the static recognized-supplier set
	ListSuppliers(ctx context.Context) []SupplierResponse
}
