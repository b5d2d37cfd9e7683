package types

import (
	ierr "github.com/invora/invora/internal/errors"
	"github.com/samber/lo"
)

// ExpenseType classifies an invoice's billing category. It determines
// which line item shape and which subtotal rule applies.
type ExpenseType string

const (
	// ExpenseTypeLeasing is for property rental invoices
	ExpenseTypeLeasing ExpenseType = "leasing"
	// ExpenseTypeMarketing is for service campaign invoices
	ExpenseTypeMarketing ExpenseType = "marketing"
)

func (t ExpenseType) String() string {
	return string(t)
}

func (t ExpenseType) Validate() error {
	allowed := []ExpenseType{
		ExpenseTypeLeasing,
		ExpenseTypeMarketing,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid expense type").
			WithHint(`expense_type must be either "leasing" or "marketing"`).
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
