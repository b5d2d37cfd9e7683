package auth

import (
	"context"

	"github.com/invora/invora/internal/config"
)

// Claims holds the identity extracted from a validated session token
type Claims struct {
	UserID string
	Email  string
}

// Provider validates dashboard session tokens against the external auth
// service. User authentication itself (sign up, login) lives entirely in
// that service; this system only verifies tokens it is handed.
type Provider interface {
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

// NewProvider returns the configured auth provider
func NewProvider(cfg *config.Configuration) Provider {
	return NewSupabaseAuth(cfg)
}
