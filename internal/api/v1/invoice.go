package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invora/invora/internal/api/dto"
	ierr "github.com/invora/invora/internal/errors"
	"github.com/invora/invora/internal/logger"
	"github.com/invora/invora/internal/service"
	"github.com/invora/invora/internal/types"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

func NewInvoiceHandler(invoiceService service.InvoiceService, logger *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// GenerateInvoice handles POST /v1/invoices/generate. The endpoint is
// open: the user_id in the body is stored as an owner reference but not
// checked against any session.
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var req dto.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	origin := c.GetHeader(types.HeaderOrigin)
	resp, err := h.invoiceService.GenerateInvoice(c.Request.Context(), req, origin)
	if err != nil {
		h.logger.Errorw("failed to generate invoice", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInvoice handles GET /invoice/:id, the public viewing surface.
// The only observable outcomes are the rendered invoice, an expired
// state and a not found state.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid invoice id").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListInvoices handles GET /v1/invoices for the authenticated dashboard
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID := types.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to list invoices", "error", err, "user_id", userID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
