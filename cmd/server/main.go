package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invora/invora/internal/api/v1"
	"github.com/invora/invora/internal/auth"
	"github.com/invora/invora/internal/cache"
	"github.com/invora/invora/internal/config"
	"github.com/invora/invora/internal/logger"
	"github.com/invora/invora/internal/postgres"
	"github.com/invora/invora/internal/repository"
	"github.com/invora/invora/internal/router"
	"github.com/invora/invora/internal/service"
	"github.com/invora/invora/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,

			// Cache
			cache.NewInMemoryCache,

			// Auth
			auth.NewProvider,

			// Repositories
			repository.NewInvoiceRepository,

			// Services
			service.NewInvoiceService,

			// Handlers
			v1.NewInvoiceHandler,
			v1.NewHealthHandler,

			// Router
			router.SetupRouter,
		),
		fx.Invoke(
			registerValidator,
			startServer,
		),
	)

	app.Run()
}

// registerValidator initializes the shared request validator before any
// handler can run
func registerValidator() {
	validator.NewValidator()
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	db *postgres.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			db.Close()
			return nil
		},
	})
}
