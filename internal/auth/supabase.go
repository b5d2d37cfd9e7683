package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/invora/invora/internal/config"
	ierr "github.com/invora/invora/internal/errors"
	"github.com/nedpals/supabase-go"
)

type supabaseAuth struct {
	authConfig config.AuthConfig
	client     *supabase.Client
}

// NewSupabaseAuth creates a Supabase-backed auth provider
func NewSupabaseAuth(cfg *config.Configuration) Provider {
	var client *supabase.Client
	if cfg.Auth.Supabase.BaseURL != "" {
		client = supabase.CreateClient(cfg.Auth.Supabase.BaseURL, cfg.Auth.Supabase.ServiceKey)
	}

	return &supabaseAuth{
		authConfig: cfg.Auth,
		client:     client,
	}
}

// ValidateToken verifies a Supabase access token. When a JWT secret is
// configured the token is verified locally; otherwise it is checked
// against the Supabase user endpoint.
func (s *supabaseAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	if s.authConfig.Secret != "" {
		return s.validateLocal(token)
	}
	return s.validateRemote(ctx, token)
}

func (s *supabaseAuth) validateLocal(token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHintf("unexpected signing method: %v", token.Header["alg"]).
				Mark(ierr.ErrValidation)
		}
		return []byte(s.authConfig.Secret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid session token").
			Mark(ierr.ErrValidation)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid session token").
			Mark(ierr.ErrValidation)
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" {
		return nil, ierr.NewError("token has no subject").
			WithHint("Invalid session token").
			Mark(ierr.ErrValidation)
	}

	return &Claims{UserID: sub, Email: email}, nil
}

func (s *supabaseAuth) validateRemote(ctx context.Context, token string) (*Claims, error) {
	if s.client == nil {
		return nil, ierr.NewError("auth provider not configured").
			WithHint("Authentication is not available").
			Mark(ierr.ErrSystem)
	}

	user, err := s.client.Auth.User(ctx, token)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid session token").
			Mark(ierr.ErrValidation)
	}

	return &Claims{UserID: user.ID, Email: user.Email}, nil
}
