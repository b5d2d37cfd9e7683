package invoice

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestInvoice_IsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no expire_at never expires", func(t *testing.T) {
		inv := &Invoice{}
		assert.False(t, inv.IsExpired(now))
	})

	t.Run("future expire_at", func(t *testing.T) {
		inv := &Invoice{ExpireAt: lo.ToPtr(now.Add(time.Hour))}
		assert.False(t, inv.IsExpired(now))
	})

	t.Run("past expire_at", func(t *testing.T) {
		inv := &Invoice{ExpireAt: lo.ToPtr(now.Add(-time.Minute))}
		assert.True(t, inv.IsExpired(now))
	})

	t.Run("expiry is independent of overdue state", func(t *testing.T) {
		inv := &Invoice{
			ExpireAt:  lo.ToPtr(now.Add(-time.Minute)),
			IsOverdue: true,
			DueDate:   lo.ToPtr("2024-01-01"),
		}
		assert.True(t, inv.IsExpired(now))
	})
}

func TestInvoice_OverdueDays(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("nine days past due", func(t *testing.T) {
		inv := &Invoice{IsOverdue: true, DueDate: lo.ToPtr("2024-01-01")}
		assert.Equal(t, 9, inv.OverdueDays(now))
	})

	t.Run("partial days round up", func(t *testing.T) {
		// 30 hours past due counts as 2 days
		inv := &Invoice{IsOverdue: true, DueDate: lo.ToPtr("2024-01-09")}
		assert.Equal(t, 2, inv.OverdueDays(now.Add(6*time.Hour)))
	})

	t.Run("not overdue yields zero even past due date", func(t *testing.T) {
		// is_overdue is caller-asserted at creation, never recomputed
		inv := &Invoice{IsOverdue: false, DueDate: lo.ToPtr("2024-01-01")}
		assert.Equal(t, 0, inv.OverdueDays(now))
	})

	t.Run("overdue without due date yields zero", func(t *testing.T) {
		inv := &Invoice{IsOverdue: true}
		assert.Equal(t, 0, inv.OverdueDays(now))
	})

	t.Run("due date in the future yields zero", func(t *testing.T) {
		inv := &Invoice{IsOverdue: true, DueDate: lo.ToPtr("2024-02-01")}
		assert.Equal(t, 0, inv.OverdueDays(now))
	})

	t.Run("unparseable due date yields zero", func(t *testing.T) {
		inv := &Invoice{IsOverdue: true, DueDate: lo.ToPtr("not-a-date")}
		assert.Equal(t, 0, inv.OverdueDays(now))
	})
}

func TestInvoice_DisplaySeverity(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		inv      *Invoice
		expected Severity
	}{
		{
			name:     "not overdue has no severity",
			inv:      &Invoice{IsOverdue: false, DueDate: lo.ToPtr("2024-01-01")},
			expected: "",
		},
		{
			name:     "nine days overdue is severe",
			inv:      &Invoice{IsOverdue: true, DueDate: lo.ToPtr("2024-01-01")},
			expected: SeveritySevere,
		},
		{
			name:     "exactly seven days overdue is severe",
			inv:      &Invoice{IsOverdue: true, DueDate: lo.ToPtr("2024-01-03")},
			expected: SeveritySevere,
		},
		{
			name:     "six days overdue is mild",
			inv:      &Invoice{IsOverdue: true, DueDate: lo.ToPtr("2024-01-04")},
			expected: SeverityMild,
		},
		{
			name:     "overdue without due date is mild",
			inv:      &Invoice{IsOverdue: true},
			expected: SeverityMild,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.inv.DisplaySeverity(now))
		})
	}
}
