package dto

import (
	"time"

	"github.com/invora/invora/internal/domain/invoice"
	"github.com/invora/invora/internal/types"
	"github.com/invora/invora/internal/validator"
	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest is the payload of the invoice generation
// endpoint. Line items carry no per-item validation: malformed numeric
// fields degrade to zero contributions.
type GenerateInvoiceRequest struct {
	UserID        string             `json:"user_id" validate:"required"`
	InvoiceNumber string             `json:"invoice_number" validate:"required"`
	ExpenseType   types.ExpenseType  `json:"expense_type" validate:"required"`
	ClientName    string             `json:"client_name" validate:"required"`
	ClientAddress string             `json:"client_address"`
	ClientTaxID   string             `json:"client_tax_id"`
	Items         []invoice.LineItem `json:"items" validate:"required"`
	// Tax is a percentage on input (18 means 18%); the persisted tax
	// field holds the derived absolute amount
	Tax       *float64 `json:"tax"`
	Notes     string   `json:"notes"`
	IssueDate string   `json:"issue_date"`
	DueDate   *string  `json:"due_date"`
	IsOverdue bool     `json:"is_overdue"`
	// ExpireHours makes the invoice inaccessible that many hours after
	// creation when positive
	ExpireHours *float64 `json:"expire_hours"`
}

func (r *GenerateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.ExpenseType.Validate()
}

// ToInvoice converts the request to a domain invoice, computing totals
// and expiration against the given creation instant
func (r *GenerateInvoiceRequest) ToInvoice(now time.Time) *invoice.Invoice {
	items := invoice.LineItems(r.Items)
	totals := invoice.ComputeTotals(r.ExpenseType, items, r.Tax, r.ExpireHours, now)

	issueDate := r.IssueDate
	if issueDate == "" {
		issueDate = types.FormatDate(now)
	}

	return &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		UserID:        r.UserID,
		InvoiceNumber: r.InvoiceNumber,
		ExpenseType:   r.ExpenseType,
		ClientName:    r.ClientName,
		ClientAddress: r.ClientAddress,
		ClientTaxID:   r.ClientTaxID,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.TaxAmount,
		Total:         totals.Total,
		Notes:         r.Notes,
		IssueDate:     issueDate,
		DueDate:       r.DueDate,
		IsOverdue:     r.IsOverdue,
		ExpireAt:      totals.ExpireAt,
		CreatedAt:     now,
	}
}

// GenerateInvoiceResponse is returned on successful generation
type GenerateInvoiceResponse struct {
	Success    bool       `json:"success"`
	InvoiceID  string     `json:"invoice_id"`
	InvoiceURL string     `json:"invoice_url"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

// LineItemDisplay is a rendered line on the public invoice view
type LineItemDisplay struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

// InvoiceResponse is the rendered invoice plus its display-only facts
type InvoiceResponse struct {
	*invoice.Invoice
	Lines       []LineItemDisplay `json:"lines"`
	OverdueDays int               `json:"overdue_days,omitempty"`
	Severity    invoice.Severity  `json:"severity,omitempty"`
}

// NewInvoiceResponse builds the view model for an invoice at the given
// instant. Monetary values are rounded to two decimals here and nowhere
// else.
func NewInvoiceResponse(inv *invoice.Invoice, now time.Time) *InvoiceResponse {
	lines := make([]LineItemDisplay, len(inv.Items))
	for i, item := range inv.Items {
		lines[i] = LineItemDisplay{
			Description: item.Description(inv.ExpenseType),
			Quantity:    display(item.Quantity(inv.ExpenseType)),
			UnitPrice:   display(item.UnitPrice(inv.ExpenseType)),
			Total:       display(item.Amount(inv.ExpenseType)),
		}
	}

	return &InvoiceResponse{
		Invoice:     inv,
		Lines:       lines,
		OverdueDays: inv.OverdueDays(now),
		Severity:    inv.DisplaySeverity(now),
	}
}

// ListInvoicesResponse is the dashboard listing payload
type ListInvoicesResponse struct {
	Items []*InvoiceResponse `json:"items"`
	Total int                `json:"total"`
}

func display(d decimal.Decimal) string {
	return d.StringFixed(2)
}
