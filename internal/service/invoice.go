package service

import (
	"context"
	"fmt"
	"time"

	"github.com/invora/invora/internal/api/dto"
	"github.com/invora/invora/internal/cache"
	"github.com/invora/invora/internal/config"
	"github.com/invora/invora/internal/domain/invoice"
	ierr "github.com/invora/invora/internal/errors"
	"github.com/invora/invora/internal/logger"
)

type InvoiceService interface {
	// GenerateInvoice validates the request, computes totals, persists
	// the invoice and returns a shareable link. origin is the caller's
	// Origin header and is only honoured when configured.
	GenerateInvoice(ctx context.Context, req dto.GenerateInvoiceRequest, origin string) (*dto.GenerateInvoiceResponse, error)

	// GetInvoice returns the rendered invoice for the public view.
	// Expired invoices are withheld; the record itself is untouched.
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)

	// ListInvoices returns the authenticated user's invoices for the
	// dashboard, newest first
	ListInvoices(ctx context.Context, userID string) (*dto.ListInvoicesResponse, error)
}

type invoiceService struct {
	cfg         *config.Configuration
	logger      *logger.Logger
	invoiceRepo invoice.Repository
	cache       cache.Cache
}

func NewInvoiceService(
	cfg *config.Configuration,
	invoiceRepo invoice.Repository,
	cache cache.Cache,
	logger *logger.Logger,
) InvoiceService {
	return &invoiceService{
		cfg:         cfg,
		logger:      logger,
		invoiceRepo: invoiceRepo,
		cache:       cache,
	}
}

func (s *invoiceService) GenerateInvoice(ctx context.Context, req dto.GenerateInvoiceRequest, origin string) (*dto.GenerateInvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.Infow("generating invoice",
		"invoice_number", req.InvoiceNumber,
		"client_name", req.ClientName,
		"expense_type", req.ExpenseType)

	// Clock is read once per request; expiration and issue date default
	// both derive from it
	now := time.Now().UTC()
	inv := req.ToInvoice(now)

	// A single insert, no idempotency key: duplicate submissions create
	// duplicate records
	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		s.logger.Errorw("failed to create invoice",
			"error", err,
			"invoice_number", req.InvoiceNumber)
		return nil, err
	}

	s.logger.Infow("invoice created successfully", "invoice_id", inv.ID)

	return &dto.GenerateInvoiceResponse{
		Success:    true,
		InvoiceID:  inv.ID,
		InvoiceURL: s.invoiceURL(inv.ID, origin),
		ExpiresAt:  inv.ExpireAt,
	}, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	now := time.Now().UTC()

	inv, err := s.getInvoice(ctx, id)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, err
		}
		// The public surface does not distinguish a failed lookup from a
		// record that never existed
		s.logger.Errorw("failed to fetch invoice", "error", err, "invoice_id", id)
		return nil, ierr.NewError("invoice lookup failed").
			WithHintf("Invoice with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	// Expiry wins over content, regardless of any other state on the
	// record
	if inv.IsExpired(now) {
		return nil, ierr.NewError("invoice expired").
			WithHint("This invoice has expired and is no longer available").
			Mark(ierr.ErrExpired)
	}

	return dto.NewInvoiceResponse(inv, now), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, userID string) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = dto.NewInvoiceResponse(inv, now)
	}

	return &dto.ListInvoicesResponse{
		Items: items,
		Total: len(items),
	}, nil
}

// getInvoice fetches through the read cache. Invoices are immutable
// once created so cached entries can never go stale, only expire.
func (s *invoiceService) getInvoice(ctx context.Context, id string) (*invoice.Invoice, error) {
	key := cache.Key(cache.PrefixInvoice, id)
	if cached, ok := s.cache.Get(ctx, key); ok {
		if inv, ok := cached.(*invoice.Invoice); ok {
			return inv, nil
		}
	}

	inv, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, inv, s.cfg.Invoice.CacheTTL)
	return inv, nil
}

// invoiceURL builds the shareable link. The configured base URL is the
// default; the caller-supplied origin is substituted only when the
// deployment explicitly opts in, and consumers must treat the resulting
// host as advisory.
func (s *invoiceService) invoiceURL(id string, origin string) string {
	base := s.cfg.Invoice.BaseURL
	if s.cfg.Invoice.AllowCallerOrigin && origin != "" {
		base = origin
	}
	return fmt.Sprintf("%s/invoice/%s", base, id)
}
