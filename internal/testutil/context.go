package testutil

import (
	"context"

	"github.com/invora/invora/internal/types"
)

const (
	TestUserID    = "user_0123456789"
	TestRequestID = "req_0123456789"
)

// SetupContext returns a context carrying a test identity
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxRequestID, TestRequestID)
	ctx = types.SetUserID(ctx, TestUserID)
	return ctx
}
