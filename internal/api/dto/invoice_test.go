package dto

import (
	"testing"
	"time"

	"github.com/invora/invora/internal/domain/invoice"
	ierr "github.com/invora/invora/internal/errors"
	"github.com/invora/invora/internal/types"
	"github.com/invora/invora/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	validator.NewValidator()
	m.Run()
}

func validRequest() GenerateInvoiceRequest {
	return GenerateInvoiceRequest{
		UserID:        "user_123",
		InvoiceNumber: "INV-001",
		ExpenseType:   types.ExpenseTypeLeasing,
		ClientName:    "Acme LLC",
		Items: []invoice.LineItem{
			{PropertyAddress: "12 Rustaveli Ave", MonthlyRent: 500},
		},
	}
}

func TestGenerateInvoiceRequest_Validate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*GenerateInvoiceRequest)
		}{
			{"missing user_id", func(r *GenerateInvoiceRequest) { r.UserID = "" }},
			{"missing invoice_number", func(r *GenerateInvoiceRequest) { r.InvoiceNumber = "" }},
			{"missing expense_type", func(r *GenerateInvoiceRequest) { r.ExpenseType = "" }},
			{"missing client_name", func(r *GenerateInvoiceRequest) { r.ClientName = "" }},
			{"missing items", func(r *GenerateInvoiceRequest) { r.Items = nil }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validRequest()
				tt.mutate(&req)
				err := req.Validate()
				require.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
			})
		}
	})

	t.Run("unknown expense type is rejected", func(t *testing.T) {
		req := validRequest()
		req.ExpenseType = "consulting"
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("empty items array is accepted", func(t *testing.T) {
		// only absent or non-array items fail; an empty list yields a
		// zero subtotal
		req := validRequest()
		req.Items = []invoice.LineItem{}
		assert.NoError(t, req.Validate())
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		req := validRequest()
		req.ClientAddress = ""
		req.ClientTaxID = ""
		req.Tax = nil
		req.Notes = ""
		req.IssueDate = ""
		req.DueDate = nil
		req.ExpireHours = nil
		assert.NoError(t, req.Validate())
	})
}

func TestGenerateInvoiceRequest_ToInvoice(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("computes totals and defaults", func(t *testing.T) {
		req := validRequest()
		req.Tax = lo.ToPtr(18.0)

		inv := req.ToInvoice(now)

		assert.NotEmpty(t, inv.ID)
		assert.Contains(t, inv.ID, types.UUID_PREFIX_INVOICE+"_")
		assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(500)))
		assert.True(t, inv.Tax.Equal(decimal.NewFromInt(90)), "stored tax is the absolute amount")
		assert.True(t, inv.Total.Equal(decimal.NewFromInt(590)))
		assert.Equal(t, "2024-06-01", inv.IssueDate, "issue date defaults to creation date")
		assert.Nil(t, inv.ExpireAt)
		assert.Equal(t, now, inv.CreatedAt)
		assert.False(t, inv.IsOverdue)
	})

	t.Run("explicit issue date is kept", func(t *testing.T) {
		req := validRequest()
		req.IssueDate = "2024-05-15"
		inv := req.ToInvoice(now)
		assert.Equal(t, "2024-05-15", inv.IssueDate)
	})

	t.Run("caller-asserted overdue flag is stored as-is", func(t *testing.T) {
		req := validRequest()
		req.IsOverdue = true
		req.DueDate = lo.ToPtr("2030-01-01")
		inv := req.ToInvoice(now)
		assert.True(t, inv.IsOverdue, "flag is not derived from due_date")
	})

	t.Run("expire_hours sets expire_at", func(t *testing.T) {
		req := validRequest()
		req.ExpireHours = lo.ToPtr(24.0)
		inv := req.ToInvoice(now)
		require.NotNil(t, inv.ExpireAt)
		assert.Equal(t, now.Add(24*time.Hour), *inv.ExpireAt)
	})

	t.Run("each conversion mints a fresh id", func(t *testing.T) {
		req := validRequest()
		first := req.ToInvoice(now)
		second := req.ToInvoice(now)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestNewInvoiceResponse(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	inv := &invoice.Invoice{
		ID:          "inv_123",
		ExpenseType: types.ExpenseTypeMarketing,
		Items: invoice.LineItems{
			{CampaignName: "Summer launch", ServiceType: "social", Duration: 3, Rate: 250},
		},
		Subtotal:  decimal.NewFromInt(750),
		Total:     decimal.NewFromInt(750),
		IsOverdue: true,
		DueDate:   lo.ToPtr("2024-01-01"),
	}

	resp := NewInvoiceResponse(inv, now)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Summer launch (social)", resp.Lines[0].Description)
	assert.Equal(t, "3.00", resp.Lines[0].Quantity)
	assert.Equal(t, "250.00", resp.Lines[0].UnitPrice)
	assert.Equal(t, "750.00", resp.Lines[0].Total)
	assert.Equal(t, 9, resp.OverdueDays)
	assert.Equal(t, invoice.SeveritySevere, resp.Severity)
}
