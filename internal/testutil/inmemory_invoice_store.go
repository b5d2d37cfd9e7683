package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/invora/invora/internal/domain/invoice"
	ierr "github.com/invora/invora/internal/errors"
)

// InMemoryInvoiceStore implements invoice.Repository for tests
type InMemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]*invoice.Invoice

	// createErr and getErr, when set, make the matching operation fail
	// the way a store rejection would
	createErr error
	getErr    error
}

// NewInMemoryInvoiceStore creates a new in-memory invoice store
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		invoices: make(map[string]*invoice.Invoice),
	}
}

// Helper to copy invoice so stored records stay isolated from callers
func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}

	out := *inv
	out.Items = make(invoice.LineItems, len(inv.Items))
	copy(out.Items, inv.Items)

	if inv.DueDate != nil {
		due := *inv.DueDate
		out.DueDate = &due
	}
	if inv.ExpireAt != nil {
		expire := *inv.ExpireAt
		out.ExpireAt = &expire
	}

	return &out
}

func (s *InMemoryInvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return ierr.WithError(s.createErr).
			WithHint(s.createErr.Error()).
			Mark(ierr.ErrDatabase)
	}

	s.invoices[inv.ID] = copyInvoice(inv)
	return nil
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.getErr != nil {
		return nil, ierr.WithError(s.getErr).
			WithHint(s.getErr.Error()).
			Mark(ierr.ErrDatabase)
	}

	inv, ok := s.invoices[id]
	if !ok {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) ListByUser(ctx context.Context, userID string) ([]*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*invoice.Invoice, 0)
	for _, inv := range s.invoices {
		if inv.UserID == userID {
			result = append(result, copyInvoice(inv))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// SetCreateError injects a persistence failure for subsequent Create calls
func (s *InMemoryInvoiceStore) SetCreateError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createErr = err
}

// SetGetError injects a lookup failure for subsequent Get calls
func (s *InMemoryInvoiceStore) SetGetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

// Count returns the number of stored invoices
func (s *InMemoryInvoiceStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.invoices)
}

// Clear removes all stored invoices and any injected error
func (s *InMemoryInvoiceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = make(map[string]*invoice.Invoice)
	s.createErr = nil
	s.getErr = nil
}
