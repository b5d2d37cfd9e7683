package invoice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/invora/invora/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals_Leasing(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	items := LineItems{
		{PropertyAddress: "12 Rustaveli Ave", LeasePeriod: "2024-06", AreaSqm: 85, MonthlyRent: 500},
		{PropertyAddress: "3 Chavchavadze St", AreaSqm: 9999, MonthlyRent: 300},
	}

	totals := ComputeTotals(types.ExpenseTypeLeasing, items, lo.ToPtr(18.0), nil, now)

	// area_sqm and lease_period never affect totals
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(800)), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromInt(144)), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(944)), "total = %s", totals.Total)
	assert.Nil(t, totals.ExpireAt)
}

func TestComputeTotals_Marketing(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	items := LineItems{
		{CampaignName: "Summer launch", ServiceType: "social", Duration: 3, Rate: 250},
	}

	totals := ComputeTotals(types.ExpenseTypeMarketing, items, nil, nil, now)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(750)))
	assert.True(t, totals.TaxAmount.IsZero(), "absent tax means zero stored tax")
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(750)))
}

func TestComputeTotals_MissingNumericFieldsContributeZero(t *testing.T) {
	now := time.Now().UTC()

	leasing := LineItems{
		{PropertyAddress: "no rent set"},
		{MonthlyRent: 100},
	}
	totals := ComputeTotals(types.ExpenseTypeLeasing, leasing, nil, nil, now)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(100)))

	marketing := LineItems{
		{CampaignName: "rate only", Rate: 50},
		{CampaignName: "duration only", Duration: 4},
		{CampaignName: "both", Duration: 2, Rate: 10},
	}
	totals = ComputeTotals(types.ExpenseTypeMarketing, marketing, nil, nil, now)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(20)))
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	totals := ComputeTotals(types.ExpenseTypeLeasing, LineItems{}, lo.ToPtr(18.0), nil, time.Now().UTC())
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_TaxPercentages(t *testing.T) {
	now := time.Now().UTC()
	items := LineItems{{MonthlyRent: 200}}

	tests := []struct {
		name     string
		tax      *float64
		expected decimal.Decimal
	}{
		{"absent", nil, decimal.Zero},
		{"zero", lo.ToPtr(0.0), decimal.Zero},
		{"integer percent", lo.ToPtr(18.0), decimal.NewFromInt(36)},
		{"fractional percent", lo.ToPtr(7.5), decimal.NewFromInt(15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(types.ExpenseTypeLeasing, items, tt.tax, nil, now)
			assert.True(t, totals.TaxAmount.Equal(tt.expected), "tax = %s", totals.TaxAmount)
			assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.TaxAmount)))
		})
	}
}

func TestComputeTotals_Expiration(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := LineItems{{MonthlyRent: 100}}

	t.Run("absent hours never expires", func(t *testing.T) {
		totals := ComputeTotals(types.ExpenseTypeLeasing, items, nil, nil, now)
		assert.Nil(t, totals.ExpireAt)
	})

	t.Run("zero and negative hours never expire", func(t *testing.T) {
		totals := ComputeTotals(types.ExpenseTypeLeasing, items, nil, lo.ToPtr(0.0), now)
		assert.Nil(t, totals.ExpireAt)

		totals = ComputeTotals(types.ExpenseTypeLeasing, items, nil, lo.ToPtr(-5.0), now)
		assert.Nil(t, totals.ExpireAt)
	})

	t.Run("positive hours expire after creation", func(t *testing.T) {
		totals := ComputeTotals(types.ExpenseTypeLeasing, items, nil, lo.ToPtr(48.0), now)
		require.NotNil(t, totals.ExpireAt)
		assert.Equal(t, now.Add(48*time.Hour), *totals.ExpireAt)
	})

	t.Run("fractional hours", func(t *testing.T) {
		totals := ComputeTotals(types.ExpenseTypeLeasing, items, nil, lo.ToPtr(1.5), now)
		require.NotNil(t, totals.ExpireAt)
		assert.Equal(t, now.Add(90*time.Minute), *totals.ExpireAt)
	})
}

func TestLineItems_MalformedNumericsDecodeToZero(t *testing.T) {
	raw := `[
		{"property_address": "ok", "monthly_rent": 500},
		{"property_address": "numeric string rent", "monthly_rent": "750"},
		{"property_address": "garbage rent", "monthly_rent": "abc"},
		{"property_address": "null rent", "monthly_rent": null}
	]`

	var items LineItems
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 4)

	// only JSON numbers count; numeric-looking strings are still strings
	totals := ComputeTotals(types.ExpenseTypeLeasing, items, nil, nil, time.Now().UTC())
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(500)), "subtotal = %s", totals.Subtotal)
}

func TestLineItems_JSONBRoundTrip(t *testing.T) {
	items := LineItems{
		{CampaignName: "Spring promo", ServiceType: "ads", Duration: 2, Rate: 100},
	}

	value, err := items.Value()
	require.NoError(t, err)

	var decoded LineItems
	require.NoError(t, decoded.Scan(value))
	require.Len(t, decoded, 1)
	assert.Equal(t, items[0], decoded[0])

	var empty LineItems
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}
