package auth

import (
	"errors"
	"net/http"
)

var (
	// ErrNoCredentials means the request carries nothing this resolver
	// understands; Authenticate moves on to the next resolver.
	ErrNoCredentials = errors.New("no credentials")

	// ErrInvalidCredentials means credentials were presented but rejected.
	ErrInvalidCredentials = errors.New("invalid or expired credentials")
)

// Resolver turns request credentials into an Identity.
type Resolver interface {
	Resolve(r *http.Request) (Identity, error)
}
