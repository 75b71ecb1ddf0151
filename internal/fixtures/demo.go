// Package fixtures seeds the in-memory backend with a small demo dataset so
// the dashboard is usable out of the box.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/user"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type Repositories struct {
	Users     user.UserRepository
	Employees employee.EmployeeRepository
	Schedules schedule.ScheduleRepository
	Products  product.ProductRepository
	Sales     sale.SaleRepository
}

// SeedDemo loads one admin account, a small staff roster with shifts around
// "today", a stocked inventory and a few recent sales.
func SeedDemo(ctx context.Context, repos Repositories, clk clock.Clock) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin password: %w", err)
	}

	hash := string(adminHash)
	admin, err := repos.Users.Create(ctx, user.User{
		Name:         "Admin",
		Email:        "admin@tastyoperations.local",
		PasswordHash: &hash,
		Role:         user.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	today := schedule.StartOfDay(clk.Now().UTC())

	staff := []struct {
		name     string
		position employee.Position
		email    string
		phone    string
		shifts   [][2]time.Duration // offset from today's midnight
	}{
		{
			name: "Juan Pérez", position: employee.PositionManager, email: "juan.perez@tastyoperations.local", phone: "+34 600 111 222",
			shifts: [][2]time.Duration{{9 * time.Hour, 17 * time.Hour}, {24*time.Hour + 9*time.Hour, 24*time.Hour + 17*time.Hour}},
		},
		{
			name: "María Rodríguez", position: employee.PositionChef, email: "maria.rodriguez@tastyoperations.local", phone: "+34 600 333 444",
			shifts: [][2]time.Duration{{10 * time.Hour, 18 * time.Hour}},
		},
		{
			name: "Carlos López", position: employee.PositionWaiter, email: "carlos.lopez@tastyoperations.local", phone: "+34 600 555 666",
			shifts: [][2]time.Duration{{12 * time.Hour, 20 * time.Hour}, {48*time.Hour + 12*time.Hour, 48*time.Hour + 20*time.Hour}},
		},
		{
			name: "Ana Martínez", position: employee.PositionBartender, email: "ana.martinez@tastyoperations.local", phone: "+34 600 777 888",
			shifts: [][2]time.Duration{{16 * time.Hour, 24 * time.Hour}},
		},
		{
			name: "Javier Sánchez", position: employee.PositionKitchen, email: "javier.sanchez@tastyoperations.local", phone: "+34 600 999 000",
			shifts: [][2]time.Duration{{8 * time.Hour, 16 * time.Hour}},
		},
	}

	for _, s := range staff {
		phone := s.phone
		created, err := repos.Employees.Create(ctx, employee.Employee{
			Name:     s.name,
			Position: s.position,
			Email:    s.email,
			Phone:    &phone,
		})
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", s.name, err)
		}

		for _, shift := range s.shifts {
			interval, err := schedule.NewInterval(today.Add(shift[0]), today.Add(shift[1]))
			if err != nil {
				return fmt.Errorf("seed shift for %s: %w", s.name, err)
			}
			if _, err := repos.Schedules.Create(ctx, schedule.Entry{
				EmployeeID: created.ID,
				Interval:   interval,
			}); err != nil {
				return fmt.Errorf("seed shift for %s: %w", s.name, err)
			}
		}
	}

	catalog := []product.Product{
		{Name: "Chicken Breast", Category: product.CategoryMeat, Quantity: 24, PurchasePrice: dec("4.50"), SellingPrice: dec("9.90"), Supplier: product.SupplierPremiumMeats, MinStockLevel: 10},
		{Name: "Tomatoes", Category: product.CategoryVegetables, Quantity: 8, PurchasePrice: dec("1.20"), SellingPrice: dec("2.50"), Supplier: product.SupplierFarmFresh, MinStockLevel: 15},
		{Name: "Mozzarella", Category: product.CategoryDairy, Quantity: 12, PurchasePrice: dec("3.80"), SellingPrice: dec("7.20"), Supplier: product.SupplierFarmFresh, MinStockLevel: 6},
		{Name: "Baguette", Category: product.CategoryGrains, Quantity: 30, PurchasePrice: dec("0.60"), SellingPrice: dec("1.80"), Supplier: product.SupplierGlobalFoods, MinStockLevel: 12},
		{Name: "House Red Wine", Category: product.CategoryBeverages, Quantity: 18, PurchasePrice: dec("5.00"), SellingPrice: dec("14.00"), Supplier: product.SupplierCityBeverages, MinStockLevel: 8},
		{Name: "Olive Oil", Category: product.CategoryCondiments, Quantity: 5, PurchasePrice: dec("6.50"), SellingPrice: dec("11.00"), Supplier: product.SupplierGlobalFoods, MinStockLevel: 5},
	}

	products := make([]product.Product, 0, len(catalog))
	for _, p := range catalog {
		created, err := repos.Products.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
		products = append(products, created)
	}

	demoSales := []struct {
		ageHours int
		method   sale.PaymentMethod
		lines    []int // indexes into products, quantity 2 each
	}{
		{ageHours: 2, method: sale.PaymentCard, lines: []int{0, 2}},
		{ageHours: 6, method: sale.PaymentCash, lines: []int{3, 4}},
		{ageHours: 30, method: sale.PaymentTransfer, lines: []int{1, 5}},
	}

	for _, ds := range demoSales {
		items := make([]sale.SaleItem, 0, len(ds.lines))
		total := decimal.Zero
		for _, idx := range ds.lines {
			p := products[idx]
			lineTotal := p.SellingPrice.Mul(decimal.NewFromInt(2))
			items = append(items, sale.SaleItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    2,
				UnitPrice:   p.SellingPrice,
				Total:       lineTotal,
			})
			total = total.Add(lineTotal)
		}

		if _, err := repos.Sales.Create(ctx, sale.Sale{
			Date:          clk.Now().UTC().Add(-time.Duration(ds.ageHours) * time.Hour),
			Items:         items,
			TotalAmount:   total,
			PaymentMethod: ds.method,
			CashierID:     admin.ID,
		}); err != nil {
			return fmt.Errorf("seed sale: %w", err)
		}
	}

	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
