package invoice

import (
	"time"

	"github.com/invora/invora/internal/types"
	"github.com/shopspring/decimal"
)

// Totals is the server-computed part of a new invoice
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	ExpireAt  *time.Time
}

// ComputeTotals derives subtotal, tax amount, total and expiration from
// raw request input. It has no side effects and performs no rounding;
// amounts are rounded to two decimals at display time only.
//
// taxPercent is a percentage (18 means 18%). The returned TaxAmount is
// an absolute currency value: that unit conversion is what gets
// persisted in the invoice's tax field.
func ComputeTotals(
	expenseType types.ExpenseType,
	items LineItems,
	taxPercent *float64,
	expireHours *float64,
	now time.Time,
) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount(expenseType))
	}

	taxAmount := decimal.Zero
	if taxPercent != nil {
		taxAmount = subtotal.Mul(decimal.NewFromFloat(*taxPercent)).Div(decimal.NewFromInt(100))
	}

	var expireAt *time.Time
	if expireHours != nil && *expireHours > 0 {
		t := now.Add(time.Duration(*expireHours * float64(time.Hour)))
		expireAt = &t
	}

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
		ExpireAt:  expireAt,
	}
}
