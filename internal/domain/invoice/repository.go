package invoice

import (
	"context"
)

// Repository defines the interface for invoice persistence operations.
// Invoices are write-once: there is no update or delete.
type Repository interface {
	// Create persists a new invoice
	Create(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by ID
	Get(ctx context.Context, id string) (*Invoice, error)

	// ListByUser retrieves all invoices owned by a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*Invoice, error)
}
