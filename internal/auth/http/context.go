package http

import (
	"context"

	"github.com/fiscalhub/fiscalhub/internal/auth/usecase"
)

// identityKey is the context key for the authenticated identity.
// An unexported struct type avoids collisions with other packages.
type identityKey struct{}

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity *usecase.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the authenticated identity from the context.
// Returns false when the request did not pass the authentication middleware.
func GetIdentity(ctx context.Context) (*usecase.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*usecase.Identity)
	return identity, ok
}
