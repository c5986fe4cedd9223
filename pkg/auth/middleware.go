package auth

import (
	"errors"
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	"github.com/SamWeninger/shopping-assistant/pkg/logger"
)

const kindAuthentication = "authentication"

// Authenticate is a chi middleware that resolves the caller identity with the
// first resolver that recognizes the request credentials and injects it into
// the request context.
//
// Presented-but-invalid credentials always yield 401. Requests without any
// credentials yield 401 when required is true and pass through anonymously
// otherwise, leaving handlers to fall back to the payload user id.
//
// After this middleware, handlers can call auth.IdentityFromCtx(r.Context()).
func Authenticate(log logger.Logger, required bool, resolvers ...Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, res := range resolvers {
				id, err := res.Resolve(r)
				if errors.Is(err, ErrNoCredentials) {
					continue
				}
				if err != nil {
					log.WarnContext(r.Context(), "rejected credentials", "error", err)
					httpx.JSONError(w, http.StatusUnauthorized, kindAuthentication, "invalid or expired credentials")
					return
				}
				ctx := logger.WithUserID(WithIdentity(r.Context(), id), id.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if required {
				httpx.JSONError(w, http.StatusUnauthorized, kindAuthentication, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth is Authenticate with required set.
func RequireAuth(log logger.Logger, resolvers ...Resolver) func(http.Handler) http.Handler {
	return Authenticate(log, true, resolvers...)
}
