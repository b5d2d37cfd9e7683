package invoice

import (
	"time"

	"github.com/invora/invora/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model. Invoices are created
// exactly once and never updated or deleted; a record with a past
// expire_at is withheld from display but stays in the store.
type Invoice struct {
	ID            string            `db:"id" json:"id"`
	UserID        string            `db:"user_id" json:"user_id"`
	InvoiceNumber string            `db:"invoice_number" json:"invoice_number"`
	ExpenseType   types.ExpenseType `db:"expense_type" json:"expense_type"`
	ClientName    string            `db:"client_name" json:"client_name"`
	ClientAddress string            `db:"client_address" json:"client_address,omitempty"`
	ClientTaxID   string            `db:"client_tax_id" json:"client_tax_id,omitempty"`
	Items         LineItems         `db:"items" json:"items"`
	Subtotal      decimal.Decimal   `db:"subtotal" json:"subtotal"`
	// Tax holds the absolute tax amount, not the input percentage. The
	// conversion happens once in ComputeTotals and the stored field keeps
	// currency semantics for compatibility with existing records.
	Tax       decimal.Decimal `db:"tax" json:"tax"`
	Total     decimal.Decimal `db:"total" json:"total"`
	Notes     string          `db:"notes" json:"notes,omitempty"`
	IssueDate string          `db:"issue_date" json:"issue_date"`
	DueDate   *string         `db:"due_date" json:"due_date,omitempty"`
	// IsOverdue is asserted by the caller at creation time and never
	// recomputed from due_date
	IsOverdue bool       `db:"is_overdue" json:"is_overdue"`
	ExpireAt  *time.Time `db:"expire_at" json:"expire_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
