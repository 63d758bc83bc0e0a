package handlers

import "context"

type contextKey string

const identityKey contextKey = "admin_identity"

// Identity is the verified admin identity attached to the request context
// by the auth middleware. It reflects the token claims, i.e. the admin
// record at token-issuance time.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// WithIdentity returns a context carrying the verified admin identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity extracts the verified admin identity from the context.
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
