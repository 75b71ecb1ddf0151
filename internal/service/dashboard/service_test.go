package dashboard

import (
	"context"
	"testing"
	"time"

	domain "github.com/alexialg05/tasty-operations-manager/internal/domain/dashboard"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
	"github.com/alexialg05/tasty-operations-manager/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-12 is a Wednesday.
var testNow = time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC)

func TestGetStats(t *testing.T) {
	clk := clock.NewFixed(testNow)
	store := memory.NewStore(clk)
	ctx := context.Background()

	employeeRepo := memory.NewEmployeeRepository(store)
	productRepo := memory.NewProductRepository(store)
	saleRepo := memory.NewSaleRepository(store)

	svc := NewDashboardService(saleRepo, productRepo, employeeRepo, clk, time.Monday)

	for _, name := range []string{"Juan", "María", "Carlos"} {
		_, err := employeeRepo.Create(ctx, employee.Employee{
			Name:     name,
			Position: employee.PositionWaiter,
			Email:    name + "@example.com",
		})
		require.NoError(t, err)
	}

	_, err := productRepo.Create(ctx, product.Product{
		Name: "Olive Oil", Category: product.CategoryCondiments,
		Quantity: 3, MinStockLevel: 5,
		SellingPrice: decimal.RequireFromString("11.00"),
	})
	require.NoError(t, err)
	_, err = productRepo.Create(ctx, product.Product{
		Name: "Baguette", Category: product.CategoryGrains,
		Quantity: 30, MinStockLevel: 12,
		SellingPrice: decimal.RequireFromString("1.80"),
	})
	require.NoError(t, err)

	recordSale := func(date time.Time, productName string, qty int, unitPrice string) {
		t.Helper()
		price := decimal.RequireFromString(unitPrice)
		total := price.Mul(decimal.NewFromInt(int64(qty)))
		_, err := saleRepo.Create(ctx, sale.Sale{
			Date: date,
			Items: []sale.SaleItem{{
				ProductID:   "p",
				ProductName: productName,
				Quantity:    qty,
				UnitPrice:   price,
				Total:       total,
			}},
			TotalAmount:   total,
			PaymentMethod: sale.PaymentCash,
			CashierID:     "cashier-1",
		})
		require.NoError(t, err)
	}

	recordSale(testNow.Add(-2*time.Hour), "Olive Oil", 2, "11.00")                     // today: 22.00
	recordSale(time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), "Baguette", 5, "1.80")   // this week: 9.00
	recordSale(time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC), "Baguette", 10, "1.80")   // this month: 18.00
	recordSale(time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC), "Olive Oil", 4, "11.00") // previous month

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, "22.00", stats.TotalSalesToday)
	assert.Equal(t, "31.00", stats.TotalSalesWeek)
	assert.Equal(t, "49.00", stats.TotalSalesMonth)
	assert.Equal(t, 1, stats.LowStockItems)
	assert.Equal(t, 3, stats.ActiveEmployees)

	// Ranked by units sold this month; the May sale does not count.
	require.Len(t, stats.TopProducts, 2)
	assert.Equal(t, domain.TopProduct{ProductName: "Baguette", Quantity: 15, Total: "27.00"}, stats.TopProducts[0])
	assert.Equal(t, domain.TopProduct{ProductName: "Olive Oil", Quantity: 2, Total: "22.00"}, stats.TopProducts[1])
}

func TestGetStatsEmptyDataset(t *testing.T) {
	clk := clock.NewFixed(testNow)
	store := memory.NewStore(clk)

	svc := NewDashboardService(
		memory.NewSaleRepository(store),
		memory.NewProductRepository(store),
		memory.NewEmployeeRepository(store),
		clk,
		time.Monday,
	)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.00", stats.TotalSalesToday)
	assert.Equal(t, "0.00", stats.TotalSalesWeek)
	assert.Equal(t, "0.00", stats.TotalSalesMonth)
	assert.Zero(t, stats.LowStockItems)
	assert.Zero(t, stats.ActiveEmployees)
	assert.Empty(t, stats.TopProducts)
}
