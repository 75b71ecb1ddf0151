package sales

import (
	"context"
	"testing"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
	"github.com/alexialg05/tasty-operations-manager/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-12 is a Wednesday.
var testNow = time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC)

type testEnv struct {
	svc         sale.SalesService
	productRepo product.ProductRepository
	clk         *clock.Fixed
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	clk := clock.NewFixed(testNow)
	store := memory.NewStore(clk)
	productRepo := memory.NewProductRepository(store)
	return testEnv{
		svc:         NewSalesService(memory.NewSaleRepository(store), productRepo, clk, time.Monday),
		productRepo: productRepo,
		clk:         clk,
	}
}

func (e testEnv) createProduct(t *testing.T, name, price string) product.Product {
	t.Helper()
	p, err := e.productRepo.Create(context.Background(), product.Product{
		Name:         name,
		Category:     product.CategoryBeverages,
		Quantity:     100,
		SellingPrice: decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return p
}

func TestRecordSale(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	wine := env.createProduct(t, "House Red Wine", "14.00")
	bread := env.createProduct(t, "Baguette", "1.80")

	resp, err := env.svc.RecordSale(ctx, sale.RecordSaleRequest{
		CashierID:     "cashier-1",
		PaymentMethod: "card",
		Items: []sale.SaleItemRequest{
			{ProductID: wine.ID, Quantity: 2},
			{ProductID: bread.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "33.40", resp.TotalAmount)
	assert.Equal(t, "Card", resp.PaymentMethodName)
	assert.Equal(t, "cashier-1", resp.CashierID)
	assert.Equal(t, testNow.Format(time.RFC3339), resp.Date)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "House Red Wine", resp.Items[0].ProductName)
	assert.Equal(t, "28.00", resp.Items[0].Total)
	assert.Equal(t, "5.40", resp.Items[1].Total)

	// Stock was consumed.
	wineAfter, err := env.productRepo.GetByID(ctx, wine.ID)
	require.NoError(t, err)
	assert.Equal(t, 98, wineAfter.Quantity)
	breadAfter, err := env.productRepo.GetByID(ctx, bread.ID)
	require.NoError(t, err)
	assert.Equal(t, 97, breadAfter.Quantity)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	wine := env.createProduct(t, "House Red Wine", "14.00")

	_, err := env.svc.RecordSale(ctx, sale.RecordSaleRequest{
		CashierID:     "cashier-1",
		PaymentMethod: "cash",
		Items: []sale.SaleItemRequest{
			{ProductID: wine.ID, Quantity: 5},
			{ProductID: wine.ID, Quantity: 100},
		},
	})
	assert.ErrorIs(t, err, product.ErrInsufficientStock)

	// The rejected sale left no ledger entry and the first line's
	// decrement was rolled back.
	sales, err := env.svc.ListSales(ctx, sale.SaleFilter{})
	require.NoError(t, err)
	assert.Empty(t, sales)

	after, err := env.productRepo.GetByID(ctx, wine.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, after.Quantity)
}

func TestRecordSaleSnapshotsPrices(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	wine := env.createProduct(t, "House Red Wine", "14.00")

	resp, err := env.svc.RecordSale(ctx, sale.RecordSaleRequest{
		CashierID:     "cashier-1",
		PaymentMethod: "cash",
		Items:         []sale.SaleItemRequest{{ProductID: wine.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// A price change after the fact must not rewrite the recorded sale.
	fetched, err := env.svc.GetSale(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "14.00", fetched.Items[0].UnitPrice)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.RecordSale(context.Background(), sale.RecordSaleRequest{
		CashierID:     "cashier-1",
		PaymentMethod: "cash",
		Items:         []sale.SaleItemRequest{{ProductID: "ghost", Quantity: 1}},
	})
	assert.ErrorIs(t, err, product.ErrProductNotFound)

	// Nothing was written.
	sales, err := env.svc.ListSales(context.Background(), sale.SaleFilter{})
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestRecordSaleValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		req  sale.RecordSaleRequest
	}{
		{"no items", sale.RecordSaleRequest{PaymentMethod: "cash"}},
		{"zero quantity", sale.RecordSaleRequest{PaymentMethod: "cash", Items: []sale.SaleItemRequest{{ProductID: "p", Quantity: 0}}}},
		{"bad method", sale.RecordSaleRequest{PaymentMethod: "crypto", Items: []sale.SaleItemRequest{{ProductID: "p", Quantity: 1}}}},
	}
	for _, c := range cases {
		_, err := env.svc.RecordSale(context.Background(), c.req)
		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs, c.name)
	}
}

func TestListSalesPeriods(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	wine := env.createProduct(t, "House Red Wine", "14.00")

	record := func(date string) {
		t.Helper()
		_, err := env.svc.RecordSale(ctx, sale.RecordSaleRequest{
			CashierID:     "cashier-1",
			Date:          date,
			PaymentMethod: "cash",
			Items:         []sale.SaleItemRequest{{ProductID: wine.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	record("2024-06-12T10:00:00Z") // today
	record("2024-06-10T12:00:00Z") // this week (Monday)
	record("2024-06-05T12:00:00Z") // this month, previous week
	record("2024-05-20T12:00:00Z") // previous month

	today, err := env.svc.ListSales(ctx, sale.SaleFilter{Period: sale.PeriodToday})
	require.NoError(t, err)
	assert.Len(t, today, 1)

	week, err := env.svc.ListSales(ctx, sale.SaleFilter{Period: sale.PeriodWeek})
	require.NoError(t, err)
	assert.Len(t, week, 2)

	month, err := env.svc.ListSales(ctx, sale.SaleFilter{Period: sale.PeriodMonth})
	require.NoError(t, err)
	assert.Len(t, month, 3)

	all, err := env.svc.ListSales(ctx, sale.SaleFilter{Period: sale.PeriodAll})
	require.NoError(t, err)
	require.Len(t, all, 4)
	// Newest first.
	assert.Equal(t, "2024-06-12T10:00:00Z", all[0].Date)

	_, err = env.svc.ListSales(ctx, sale.SaleFilter{Period: "decade"})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestListSalesQuery(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	wine := env.createProduct(t, "House Red Wine", "14.00")
	bread := env.createProduct(t, "Baguette", "1.80")

	_, err := env.svc.RecordSale(ctx, sale.RecordSaleRequest{
		CashierID:     "cashier-1",
		PaymentMethod: "cash",
		Items:         []sale.SaleItemRequest{{ProductID: wine.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = env.svc.RecordSale(ctx, sale.RecordSaleRequest{
		CashierID:     "cashier-1",
		PaymentMethod: "card",
		Items:         []sale.SaleItemRequest{{ProductID: bread.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	matches, err := env.svc.ListSales(ctx, sale.SaleFilter{Query: "wine"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "House Red Wine", matches[0].Items[0].ProductName)
}
