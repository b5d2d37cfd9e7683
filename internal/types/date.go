package types

import (
	"time"

	ierr "github.com/invora/invora/internal/errors"
)

// DateFormat is the wire format for invoice dates (issue_date, due_date)
const DateFormat = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string as a UTC instant
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHintf("invalid date %q, expected YYYY-MM-DD", s).
			Mark(ierr.ErrValidation)
	}
	return t, nil
}

// FormatDate renders an instant as a YYYY-MM-DD date string in UTC
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}
