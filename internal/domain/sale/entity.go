package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID            string
	Date          time.Time
	Items         []SaleItem
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	CashierID     string
	Notes         *string
	CreatedAt     time.Time
}

type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// IsValidPaymentMethod reports whether m is a recognized payment method.
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// DisplayName resolves the payment method label shown on receipts.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentCard:
		return "Card"
	case PaymentTransfer:
		return "Transfer"
	}
	return string(m)
}

// Period is the ledger's time filter.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// IsValidPeriod reports whether p is a recognized ledger period.
func IsValidPeriod(p Period) bool {
	switch p {
	case PeriodAll, PeriodToday, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}
