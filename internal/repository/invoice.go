package repository

import (
	"context"
	"database/sql"

	"github.com/invora/invora/internal/domain/invoice"
	ierr "github.com/invora/invora/internal/errors"
	"github.com/invora/invora/internal/logger"
	"github.com/invora/invora/internal/postgres"
)

const insertInvoiceQuery = `
	INSERT INTO invoices (
		id, user_id, invoice_number, expense_type, client_name,
		client_address, client_tax_id, items, subtotal, tax, total,
		notes, issue_date, due_date, is_overdue, expire_at, created_at
	) VALUES (
		:id, :user_id, :invoice_number, :expense_type, :client_name,
		:client_address, :client_tax_id, :items, :subtotal, :tax, :total,
		:notes, :issue_date, :due_date, :is_overdue, :expire_at, :created_at
	)`

const selectInvoiceQuery = `
	SELECT id, user_id, invoice_number, expense_type, client_name,
		client_address, client_tax_id, items, subtotal, tax, total,
		notes, issue_date, due_date, is_overdue, expire_at, created_at
	FROM invoices`

type invoiceRepository struct {
	db     postgres.Querier
	logger *logger.Logger
}

// NewInvoiceRepository creates a Postgres-backed invoice repository
func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	r.logger.Debugw("inserting invoice", "invoice_id", inv.ID, "invoice_number", inv.InvoiceNumber)

	if _, err := r.db.NamedExecContext(ctx, insertInvoiceQuery, inv); err != nil {
		// The store's message is forwarded to the caller as-is
		return ierr.WithError(err).
			WithHint(err.Error()).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := r.db.GetContext(ctx, &inv, selectInvoiceQuery+` WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("invoice not found").
				WithHintf("Invoice with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint(err.Error()).
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) ListByUser(ctx context.Context, userID string) ([]*invoice.Invoice, error) {
	invoices := make([]*invoice.Invoice, 0)
	err := r.db.SelectContext(ctx, &invoices,
		selectInvoiceQuery+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint(err.Error()).
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}
