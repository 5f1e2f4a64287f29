// Package identity carries the authenticated caller through a request context.
package identity

import "context"

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID uint
}

type ctxKey struct{}

// WithIdentity returns a copy of ctx carrying id. A nil id leaves the caller anonymous.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	if id == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, *id)
}

// FromContext returns the caller identity, or nil for an anonymous caller.
func FromContext(ctx context.Context) *Identity {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok {
		return nil
	}
	return &id
}

// IsUser reports whether the caller is the user with the given id.
func IsUser(ctx context.Context, userID uint) bool {
	id := FromContext(ctx)
	return id != nil && id.UserID == userID
}
