package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string
	Name          string
	Category      Category
	Quantity      int
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Supplier      Supplier
	MinStockLevel int
	ImageURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock reports whether the product is at or below its minimum stock
// level.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinStockLevel
}

type Category string

const (
	CategoryMeat       Category = "meat"
	CategoryVegetables Category = "vegetables"
	CategoryDairy      Category = "dairy"
	CategoryGrains     Category = "grains"
	CategoryBeverages  Category = "beverages"
	CategoryCondiments Category = "condiments"
)

// CategoryInfo pairs a category tag with its display name.
type CategoryInfo struct {
	ID   Category
	Name string
}

// Categories returns the recognized category set in display order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{ID: CategoryMeat, Name: "Meat & Protein"},
		{ID: CategoryVegetables, Name: "Vegetables"},
		{ID: CategoryDairy, Name: "Dairy"},
		{ID: CategoryGrains, Name: "Grains & Bread"},
		{ID: CategoryBeverages, Name: "Beverages"},
		{ID: CategoryCondiments, Name: "Condiments"},
	}
}

// IsValidCategory reports whether c is in the recognized category set.
func IsValidCategory(c Category) bool {
	for _, info := range Categories() {
		if info.ID == c {
			return true
		}
	}
	return false
}

// DisplayName resolves the category's display name, falling back to the raw
// tag for unknown values.
func (c Category) DisplayName() string {
	for _, info := range Categories() {
		if info.ID == c {
			return info.Name
		}
	}
	return string(c)
}

type Supplier string

const (
	SupplierFarmFresh     Supplier = "supplier1"
	SupplierGlobalFoods   Supplier = "supplier2"
	SupplierCityBeverages Supplier = "supplier3"
	SupplierPremiumMeats  Supplier = "supplier4"
)

// SupplierInfo pairs a supplier tag with its display name.
type SupplierInfo struct {
	ID   Supplier
	Name string
}

// Suppliers returns the recognized supplier set in display order.
func Suppliers() []SupplierInfo {
	return []SupplierInfo{
		{ID: SupplierFarmFresh, Name: "Farm Fresh Inc."},
		{ID: SupplierGlobalFoods, Name: "Global Foods Ltd."},
		{ID: SupplierCityBeverages, Name: "City Beverages"},
		{ID: SupplierPremiumMeats, Name: "Premium Meats Co."},
	}
}

// IsValidSupplier reports whether s is in the recognized supplier set.
func IsValidSupplier(s Supplier) bool {
	for _, info := range Suppliers() {
		if info.ID == s {
			return true
		}
	}
	return false
}

// DisplayName resolves the supplier's display name, falling back to the raw
// tag for unknown values.
func (s Supplier) DisplayName() string {
	for _, info := range Suppliers() {
		if info.ID == s {
			return info.Name
		}
	}
	return string(s)
}
