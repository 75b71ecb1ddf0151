package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/dashboard"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

const topProductLimit = 5

type DashboardServiceImpl struct {
	saleRepo     sale.SaleRepository
	productRepo  product.ProductRepository
	employeeRepo employee.EmployeeRepository
	clk          clock.Clock
	weekStartsOn time.Weekday
}

func NewDashboardService(
	saleRepo sale.SaleRepository,
	productRepo product.ProductRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	weekStartsOn time.Weekday,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		clk:          clk,
		weekStartsOn: weekStartsOn,
	}
}

// GetStats implements dashboard.DashboardService. Top products are ranked by
// units sold this month.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	now := s.clk.Now().UTC()

	today := schedule.StartOfDay(now)
	window := schedule.NewWeekWindow(now, s.weekStartsOn)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// The week window can reach back into the previous month, so the fetch
	// covers whichever starts earlier.
	from := monthStart
	if window.Start().Before(from) {
		from = window.Start()
	}
	monthSales, err := s.saleRepo.GetBetween(ctx, from, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	totalToday := decimal.Zero
	totalWeek := decimal.Zero
	totalMonth := decimal.Zero
	unitsByProduct := make(map[string]*dashboard.TopProduct)
	revenueByProduct := make(map[string]decimal.Decimal)

	for _, sl := range monthSales {
		inMonth := !sl.Date.Before(monthStart)
		if inMonth {
			totalMonth = totalMonth.Add(sl.TotalAmount)
		}
		if !sl.Date.Before(window.Start()) && sl.Date.Before(window.End().AddDate(0, 0, 1)) {
			totalWeek = totalWeek.Add(sl.TotalAmount)
		}
		if !sl.Date.Before(today) && sl.Date.Before(today.AddDate(0, 0, 1)) {
			totalToday = totalToday.Add(sl.TotalAmount)
		}

		if !inMonth {
			continue
		}
		for _, item := range sl.Items {
			tp, ok := unitsByProduct[item.ProductName]
			if !ok {
				tp = &dashboard.TopProduct{ProductName: item.ProductName}
				unitsByProduct[item.ProductName] = tp
			}
			tp.Quantity += item.Quantity
			revenueByProduct[item.ProductName] = revenueByProduct[item.ProductName].Add(item.Total)
		}
	}

	top := make([]dashboard.TopProduct, 0, len(unitsByProduct))
	for name, tp := range unitsByProduct {
		tp.Total = revenueByProduct[name].StringFixed(2)
		top = append(top, *tp)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].ProductName < top[j].ProductName
	})
	if len(top) > topProductLimit {
		top = top[:topProductLimit]
	}

	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	lowStock := 0
	for _, p := range products {
		if p.IsLowStock() {
			lowStock++
		}
	}

	employeeCount, err := s.employeeRepo.CountAll(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	return dashboard.StatsResponse{
		TotalSalesToday: totalToday.StringFixed(2),
		TotalSalesWeek:  totalWeek.StringFixed(2),
		TotalSalesMonth: totalMonth.StringFixed(2),
		LowStockItems:   lowStock,
		ActiveEmployees: employeeCount,
		TopProducts:     top,
	}, nil
}
