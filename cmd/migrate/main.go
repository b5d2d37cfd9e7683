package main

import (
	"context"

	"github.com/invora/invora/internal/config"
	"github.com/invora/invora/internal/logger"
	"github.com/invora/invora/internal/postgres"
)

const invoicesSchema = `
CREATE TABLE IF NOT EXISTS invoices (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL,
	invoice_number TEXT NOT NULL,
	expense_type   TEXT NOT NULL CHECK (expense_type IN ('leasing', 'marketing')),
	client_name    TEXT NOT NULL,
	client_address TEXT NOT NULL DEFAULT '',
	client_tax_id  TEXT NOT NULL DEFAULT '',
	items          JSONB NOT NULL DEFAULT '[]',
	subtotal       NUMERIC(18, 4) NOT NULL,
	tax            NUMERIC(18, 4) NOT NULL DEFAULT 0,
	total          NUMERIC(18, 4) NOT NULL,
	notes          TEXT NOT NULL DEFAULT '',
	issue_date     TEXT NOT NULL,
	due_date       TEXT,
	is_overdue     BOOLEAN NOT NULL DEFAULT FALSE,
	expire_at      TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_invoices_user_id ON invoices (user_id, created_at DESC);
`

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.L.Fatalf("Failed to load config: %v", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		logger.L.Fatalf("Failed to create logger: %v", err)
	}

	db, err := postgres.NewDB(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(context.Background(), invoicesSchema); err != nil {
		log.Fatalf("Failed to apply invoices schema: %v", err)
	}

	log.Info("Migrations applied successfully")
}
