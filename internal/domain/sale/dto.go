package sale

import (
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
)

type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type RecordSaleRequest struct {
	CashierID     string            `json:"-"` // From JWT
	Date          string            `json:"date,omitempty"`
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
	Notes         *string           `json:"notes,omitempty"`
}

func (r *RecordSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "at least one item is required",
		})
	}
	for _, item := range r.Items {
		if validator.IsEmpty(item.ProductID) {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "every item requires a product_id",
			})
			break
		}
		if item.Quantity <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "every item quantity must be positive",
			})
			break
		}
	}

	if validator.IsEmpty(r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_method",
			Message: "payment_method is required",
		})
	} else if !IsValidPaymentMethod(PaymentMethod(r.PaymentMethod)) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_method",
			Message: "payment_method must be cash, card or transfer",
		})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDateTime(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SaleFilter narrows the ledger listing. Query matches the sale ID and item
// product names case-insensitively.
type SaleFilter struct {
	Query  string
	Period Period
}

func (f *SaleFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Period != "" && !IsValidPeriod(f.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be all, today, week or month",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SaleItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

type SaleResponse struct {
	ID                string             `json:"id"`
	Date              string             `json:"date"`
	Items             []SaleItemResponse `json:"items"`
	TotalAmount       string             `json:"total_amount"`
	PaymentMethod     string             `json:"payment_method"`
	PaymentMethodName string             `json:"payment_method_name"`
	CashierID         string             `json:"cashier_id"`
	Notes             *string            `json:"notes,omitempty"`
}

// NewSaleResponse maps an entity to its response representation.
func NewSaleResponse(s Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Total:       item.Total.StringFixed(2),
		})
	}

	return SaleResponse{
		ID:                s.ID,
		Date:              s.Date.Format(time.RFC3339),
		Items:             items,
		TotalAmount:       s.TotalAmount.StringFixed(2),
		PaymentMethod:     string(s.PaymentMethod),
		PaymentMethodName: s.PaymentMethod.DisplayName(),
		CashierID:         s.CashierID,
		Notes:             s.Notes,
	}
}
