package sales

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SalesServiceImpl struct {
	saleRepo     sale.SaleRepository
	productRepo  product.ProductRepository
	clk          clock.Clock
	weekStartsOn time.Weekday
}

func NewSalesService(
	saleRepo sale.SaleRepository,
	productRepo product.ProductRepository,
	clk clock.Clock,
	weekStartsOn time.Weekday,
) sale.SalesService {
	return &SalesServiceImpl{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		clk:          clk,
		weekStartsOn: weekStartsOn,
	}
}

// RecordSale implements sale.SalesService. Product names and unit prices are
// snapshotted into the sale, so later catalog edits never rewrite history.
func (s *SalesServiceImpl) RecordSale(ctx context.Context, req sale.RecordSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	date := s.clk.Now().UTC()
	if req.Date != "" {
		parsed, _ := validator.IsValidDateTime(req.Date)
		date = parsed.UTC()
	}

	// Resolve every line item before writing anything, so an unknown
	// product fails the whole sale.
	items := make([]sale.SaleItem, 0, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		p, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return sale.SaleResponse{}, err
		}

		lineTotal := p.SellingPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, sale.SaleItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			UnitPrice:   p.SellingPrice,
			Total:       lineTotal,
		})
		total = total.Add(lineTotal)
	}

	// Each line consumes stock. If any decrement or the ledger write fails,
	// the decrements applied so far are restored.
	for i, item := range items {
		if _, err := s.productRepo.AdjustQuantity(ctx, item.ProductID, -item.Quantity); err != nil {
			s.restoreStock(ctx, items[:i])
			return sale.SaleResponse{}, err
		}
	}

	created, err := s.saleRepo.Create(ctx, sale.Sale{
		Date:          date,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: sale.PaymentMethod(req.PaymentMethod),
		CashierID:     req.CashierID,
		Notes:         req.Notes,
	})
	if err != nil {
		s.restoreStock(ctx, items)
		return sale.SaleResponse{}, err
	}

	slog.InfoContext(ctx, "sale recorded",
		slog.String("sale_id", created.ID),
		slog.String("total_amount", created.TotalAmount.StringFixed(2)),
		slog.String("payment_method", string(created.PaymentMethod)),
	)

	return sale.NewSaleResponse(created), nil
}

func (s *SalesServiceImpl) restoreStock(ctx context.Context, items []sale.SaleItem) {
	for _, item := range items {
		if _, err := s.productRepo.AdjustQuantity(ctx, item.ProductID, item.Quantity); err != nil {
			slog.ErrorContext(ctx, "failed to restore stock after aborted sale",
				slog.String("product_id", item.ProductID),
				slog.Int("quantity", item.Quantity),
				slog.Any("error", err),
			)
		}
	}
}

// GetSale implements sale.SalesService.
func (s *SalesServiceImpl) GetSale(ctx context.Context, id string) (sale.SaleResponse, error) {
	sl, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return sale.NewSaleResponse(sl), nil
}

// ListSales implements sale.SalesService.
func (s *SalesServiceImpl) ListSales(ctx context.Context, filter sale.SaleFilter) ([]sale.SaleResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	sales, err := s.salesForPeriod(ctx, filter.Period)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))

	result := make([]sale.SaleResponse, 0, len(sales))
	for _, sl := range sales {
		if query != "" && !matchesQuery(sl, query) {
			continue
		}
		result = append(result, sale.NewSaleResponse(sl))
	}

	return result, nil
}

func (s *SalesServiceImpl) salesForPeriod(ctx context.Context, period sale.Period) ([]sale.Sale, error) {
	now := s.clk.Now().UTC()

	switch period {
	case sale.PeriodToday:
		from := schedule.StartOfDay(now)
		return s.saleRepo.GetBetween(ctx, from, from.AddDate(0, 0, 1))
	case sale.PeriodWeek:
		window := schedule.NewWeekWindow(now, s.weekStartsOn)
		return s.saleRepo.GetBetween(ctx, window.Start(), window.End().AddDate(0, 0, 1))
	case sale.PeriodMonth:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return s.saleRepo.GetBetween(ctx, from, from.AddDate(0, 1, 0))
	default:
		return s.saleRepo.GetAll(ctx)
	}
}

func matchesQuery(sl sale.Sale, query string) bool {
	if strings.Contains(strings.ToLower(sl.ID), query) {
		return true
	}
	for _, item := range sl.Items {
		if strings.Contains(strings.ToLower(item.ProductName), query) {
			return true
		}
	}
	return false
}
