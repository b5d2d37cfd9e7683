package invoice

import (
	"math"
	"time"

	"github.com/invora/invora/internal/types"
)

// Severity is the display emphasis tier for overdue invoices
type Severity string

const (
	SeverityMild   Severity = "mild"
	SeveritySevere Severity = "severe"
)

// SevereOverdueDays is the overdue-day threshold at which an invoice is
// displayed as severely overdue
const SevereOverdueDays = 7

// IsExpired reports whether the invoice's viewing window has passed.
// Expired invoices are withheld from display but never deleted.
func (i *Invoice) IsExpired(now time.Time) bool {
	return i.ExpireAt != nil && i.ExpireAt.Before(now)
}

// OverdueDays returns the number of days the invoice is past its due
// date, rounded up. It is only meaningful when the caller asserted
// is_overdue at creation and a due_date is present; it never feeds back
// into the stored is_overdue flag.
func (i *Invoice) OverdueDays(now time.Time) int {
	if !i.IsOverdue || i.DueDate == nil {
		return 0
	}

	due, err := types.ParseDate(*i.DueDate)
	if err != nil {
		return 0
	}

	diff := now.Sub(due)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// DisplaySeverity returns the presentation tier for an overdue invoice.
// It is empty when the invoice is not overdue.
func (i *Invoice) DisplaySeverity(now time.Time) Severity {
	if !i.IsOverdue {
		return ""
	}
	if i.OverdueDays(now) >= SevereOverdueDays {
		return SeveritySevere
	}
	return SeverityMild
}
