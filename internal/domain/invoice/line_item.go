package invoice

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/invora/invora/internal/types"
	"github.com/shopspring/decimal"
)

// Numeric is a float64 that tolerates malformed JSON values. Missing,
// null, or non-numeric fields decode to zero instead of failing the
// request: line item contributions degrade silently rather than erroring.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Numeric(f)
		return nil
	}

	// anything that is not a JSON number (strings included) contributes
	// nothing
	*n = 0
	return nil
}

func (n Numeric) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(n))
}

// LineItem is a tagged union over the two expense categories. The
// invoice's expense_type decides which fields are meaningful; the other
// variant's fields stay at their zero values and are omitted on the wire.
type LineItem struct {
	// leasing variant
	PropertyAddress string  `json:"property_address,omitempty"`
	LeasePeriod     string  `json:"lease_period,omitempty"`
	AreaSqm         Numeric `json:"area_sqm,omitempty"`
	MonthlyRent     Numeric `json:"monthly_rent,omitempty"`

	// marketing variant
	CampaignName string  `json:"campaign_name,omitempty"`
	ServiceType  string  `json:"service_type,omitempty"`
	Duration     Numeric `json:"duration,omitempty"`
	Rate         Numeric `json:"rate,omitempty"`
}

// Amount returns the line's contribution to the invoice subtotal.
// Leasing lines contribute their monthly rent as-is: area_sqm and
// lease_period are descriptive only. Marketing lines contribute
// duration * rate.
func (li LineItem) Amount(expenseType types.ExpenseType) decimal.Decimal {
	switch expenseType {
	case types.ExpenseTypeLeasing:
		return li.MonthlyRent.Decimal()
	case types.ExpenseTypeMarketing:
		return li.Duration.Decimal().Mul(li.Rate.Decimal())
	}
	return decimal.Zero
}

// Quantity returns the displayed quantity for the line. Leasing lines
// are implicitly quantity 1 per line.
func (li LineItem) Quantity(expenseType types.ExpenseType) decimal.Decimal {
	if expenseType == types.ExpenseTypeMarketing {
		return li.Duration.Decimal()
	}
	return decimal.NewFromInt(1)
}

// UnitPrice returns the displayed per-unit price for the line
func (li LineItem) UnitPrice(expenseType types.ExpenseType) decimal.Decimal {
	if expenseType == types.ExpenseTypeMarketing {
		return li.Rate.Decimal()
	}
	return li.MonthlyRent.Decimal()
}

// Description returns the displayed label for the line
func (li LineItem) Description(expenseType types.ExpenseType) string {
	if expenseType == types.ExpenseTypeMarketing {
		if li.ServiceType != "" {
			return fmt.Sprintf("%s (%s)", li.CampaignName, li.ServiceType)
		}
		return li.CampaignName
	}
	if li.LeasePeriod != "" {
		return fmt.Sprintf("%s (%s)", li.PropertyAddress, li.LeasePeriod)
	}
	return li.PropertyAddress
}

// LineItems is the JSONB column holding an invoice's ordered line items
type LineItems []LineItem

// Scan implements the sql.Scanner interface for LineItems
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = make(LineItems, 0)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}

	result := make(LineItems, 0)
	err := json.Unmarshal(bytes, &result)
	*l = result
	return err
}

// Value implements the driver.Valuer interface for LineItems
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(make(LineItems, 0))
	}
	return json.Marshal(l)
}
