package inventory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
)

type InventoryServiceImpl struct {
	productRepo product.ProductRepository
}

func NewInventoryService(productRepo product.ProductRepository) product.InventoryService {
	return &InventoryServiceImpl{productRepo: productRepo}
}

// CreateProduct implements product.InventoryService.
func (s *InventoryServiceImpl) CreateProduct(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	purchasePrice, _ := validator.IsValidMoney(req.PurchasePrice)
	sellingPrice, _ := validator.IsValidMoney(req.SellingPrice)

	created, err := s.productRepo.Create(ctx, product.Product{
		Name:          strings.TrimSpace(req.Name),
		Category:      product.Category(req.Category),
		Quantity:      req.Quantity,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		Supplier:      product.Supplier(req.Supplier),
		MinStockLevel: req.MinStockLevel,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return product.ProductResponse{}, err
	}

	slog.InfoContext(ctx, "product created",
		slog.String("product_id", created.ID),
		slog.String("category", string(created.Category)),
	)

	return product.NewProductResponse(created), nil
}

// GetProduct implements product.InventoryService.
func (s *InventoryServiceImpl) GetProduct(ctx context.Context, id string) (product.ProductResponse, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return product.ProductResponse{}, err
	}

	return product.NewProductResponse(p), nil
}

// ListProducts implements product.InventoryService. LowStockCount always
// reflects the whole inventory, not just the filtered page.
func (s *InventoryServiceImpl) ListProducts(ctx context.Context, filter product.ProductFilter) (product.ListProductResponse, error) {
	if err := filter.Validate(); err != nil {
		return product.ListProductResponse{}, err
	}

	all, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return product.ListProductResponse{}, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))

	lowStockCount := 0
	products := make([]product.ProductResponse, 0, len(all))
	for _, p := range all {
		if p.IsLowStock() {
			lowStockCount++
		}

		if filter.Category != nil && p.Category != product.Category(*filter.Category) {
			continue
		}
		if filter.LowStockOnly && !p.IsLowStock() {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}

		products = append(products, product.NewProductResponse(p))
	}

	return product.ListProductResponse{
		Products:      products,
		LowStockCount: lowStockCount,
	}, nil
}

// AdjustStock implements product.InventoryService.
func (s *InventoryServiceImpl) AdjustStock(ctx context.Context, id string, req product.AdjustStockRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	p, err := s.productRepo.AdjustQuantity(ctx, id, req.Delta)
	if err != nil {
		return product.ProductResponse{}, err
	}

	if p.IsLowStock() {
		slog.WarnContext(ctx, "product at or below minimum stock",
			slog.String("product_id", p.ID),
			slog.Int("quantity", p.Quantity),
			slog.Int("min_stock_level", p.MinStockLevel),
		)
	}

	return product.NewProductResponse(p), nil
}

// ListCategories implements product.InventoryService.
func (s *InventoryServiceImpl) ListCategories(ctx context.Context) []product.CategoryResponse {
	infos := product.Categories()

	result := make([]product.CategoryResponse, 0, len(infos))
	for _, info := range infos {
		result = append(result, product.CategoryResponse{
			ID:   string(info.ID),
			Name: info.Name,
		})
	}

	return result
}

// ListSuppliers implements product.InventoryService.
func (s *InventoryServiceImpl) ListSuppliers(ctx context.Context) []product.SupplierResponse {
	infos := product.Suppliers()

	result := make([]product.SupplierResponse, 0, len(infos))
	for _, info := range infos {
		result = append(result, product.SupplierResponse{
			ID:   string(info.ID),
			Name: info.Name,
		})
	}

	return result
}

func matchesQuery(p product.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Supplier.DisplayName()), query) ||
		strings.Contains(strings.ToLower(p.Category.DisplayName()), query)
}
