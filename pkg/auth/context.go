package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const identityKey contextKey = "identity"

// ErrIdentityNotFound is returned when no authenticated identity exists in the
// request context.
var ErrIdentityNotFound = errors.New("identity not found in context")

// Identity is the authenticated caller. UserID is the stable opaque identifier
// used for list membership; the remaining attributes are informational.
type Identity struct {
	UserID      string `json:"userId"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// IdentityFromCtx extracts the authenticated caller from the request context.
// Returns ErrIdentityNotFound if the request was not authenticated.
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, ErrIdentityNotFound
	}
	return id, nil
}

// UserIDFromCtx is shorthand for IdentityFromCtx(ctx).UserID.
func UserIDFromCtx(ctx context.Context) (string, error) {
	id, err := IdentityFromCtx(ctx)
	if err != nil {
		return "", err
	}
	return id.UserID, nil
}

// WithIdentity returns a new context with the given identity attached.
// Used by Authenticate after a resolver accepts the request credentials.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
