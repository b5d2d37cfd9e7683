package router

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/invora/invora/internal/api/v1"
	"github.com/invora/invora/internal/auth"
	"github.com/invora/invora/internal/logger"
	"github.com/invora/invora/internal/rest/middleware"
)

func SetupRouter(
	invoiceHandler *v1.InvoiceHandler,
	healthHandler *v1.HealthHandler,
	authProvider auth.Provider,
	logger *logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(middleware.RecoveryHandler))

	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", healthHandler.Health)

	// Public surfaces: generation is open by design, the view link is
	// shareable
	router.POST("/v1/invoices/generate", invoiceHandler.GenerateInvoice)
	router.GET("/invoice/:id", invoiceHandler.GetInvoice)

	// Dashboard routes require a valid session token
	dashboard := router.Group("/v1", middleware.AuthenticateMiddleware(authProvider, logger))
	dashboard.GET("/invoices", invoiceHandler.ListInvoices)

	return router
}
