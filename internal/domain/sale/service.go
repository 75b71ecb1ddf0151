package sale

import "context"

// SalesService defines business logic for the sales ledger
type SalesService interface {
	// RecordSale registers a completed sale, snapshotting product names and
	// unit prices at the time of sale
	RecordSale(ctx context.Context, req RecordSaleRequest) (SaleResponse, error)

	// GetSale retrieves a single sale by ID
	GetSale(ctx context.Context, id string) (SaleResponse, error)

	// ListSales filters the ledger by free-text query and period
	ListSales(ctx context.Context, filter SaleFilter) ([]SaleResponse, error)
}
