package product

import (
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
)

type CreateProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	PurchasePrice string  `json:"purchase_price"`
	SellingPrice  string  `json:"selling_price"`
	Supplier      string  `json:"supplier"`
	MinStockLevel int     `json:"min_stock_level"`
	ImageURL      *string `json:"image_url,omitempty"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !IsValidCategory(Category(r.Category)) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of the recognized categories",
		})
	}

	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}

	if validator.IsEmpty(r.PurchasePrice) {
		errs = append(errs, validator.ValidationError{
			Field:   "purchase_price",
			Message: "purchase_price is required",
		})
	} else if _, ok := validator.IsValidMoney(r.PurchasePrice); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "purchase_price",
			Message: "purchase_price must be a non-negative decimal amount",
		})
	}

	if validator.IsEmpty(r.SellingPrice) {
		errs = append(errs, validator.ValidationError{
			Field:   "selling_price",
			Message: "selling_price is required",
		})
	} else if _, ok := validator.IsValidMoney(r.SellingPrice); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "selling_price",
			Message: "selling_price must be a non-negative decimal amount",
		})
	}

	if validator.IsEmpty(r.Supplier) {
		errs = append(errs, validator.ValidationError{
			Field:   "supplier",
			Message: "supplier is required",
		})
	} else if !IsValidSupplier(Supplier(r.Supplier)) {
		errs = append(errs, validator.ValidationError{
			Field:   "supplier",
			Message: "supplier must be one of the recognized suppliers",
		})
	}

	if r.MinStockLevel < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_stock_level",
			Message: "min_stock_level must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProductFilter narrows the inventory listing. Query matches name, supplier
// and category display name case-insensitively.
type ProductFilter struct {
	Query        string
	Category     *string
	LowStockOnly bool
}

func (f *ProductFilter) Validate() error {
	if f.Category != nil && !IsValidCategory(Category(*f.Category)) {
		return ErrInvalidCategory
	}

	return nil
}

type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

func (r *AdjustStockRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Delta == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "delta",
			Message: "delta must not be zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProductResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	CategoryName  string  `json:"category_name"`
	Quantity      int     `json:"quantity"`
	PurchasePrice string  `json:"purchase_price"`
	SellingPrice  string  `json:"selling_price"`
	Supplier      string  `json:"supplier"`
	SupplierName  string  `json:"supplier_name"`
	MinStockLevel int     `json:"min_stock_level"`
	LowStock      bool    `json:"low_stock"`
	ImageURL      *string `json:"image_url,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ListProductResponse struct {
	Products      []ProductResponse `json:"products"`
	LowStockCount int               `json:"low_stock_count"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SupplierResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewProductResponse maps an entity to its response representation.
func NewProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      string(p.Category),
		CategoryName:  p.Category.DisplayName(),
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice.StringFixed(2),
		SellingPrice:  p.SellingPrice.StringFixed(2),
		Supplier:      string(p.Supplier),
		SupplierName:  p.Supplier.DisplayName(),
		MinStockLevel: p.MinStockLevel,
		LowStock:      p.IsLowStock(),
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}
