package identity

import "context"

// Identity is the authenticated caller, resolved by the auth middleware and
// passed explicitly into every core operation that needs it.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity sets the caller identity into context (called by middleware).
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext retrieves the caller identity safely.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
