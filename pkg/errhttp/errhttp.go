// Package errhttp maps domain sentinel errors to HTTP status codes and the
// {"kind", "message"} error body. Add a case to StatusFor for each new
// domain error kind.
package errhttp

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Classification uses errors.Is() so wrapped sentinel errors are matched.
// Unrecognized errors become 500 with a generic message.
func WriteError(w http.ResponseWriter, err error) {
	kind := domain.Kind(err)
	status := StatusFor(kind)
	httpx.JSONError(w, status, kind, publicMessage(err, status, kind))
}

// StatusFor returns the HTTP status for a domain error kind.
func StatusFor(kind string) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusUnprocessableEntity // 422
	case domain.KindAuthentication:
		return http.StatusUnauthorized // 401
	case domain.KindAuthorization:
		return http.StatusForbidden // 403
	case domain.KindNotFound:
		return http.StatusNotFound // 404
	case domain.KindCapacity, domain.KindConflict:
		return http.StatusConflict // 409
	case domain.KindUploadURL:
		return http.StatusBadGateway // 502
	case domain.KindDependency:
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}

// publicMessage keeps store and SDK details out of 5xx responses.
func publicMessage(err error, status int, kind string) string {
	switch kind {
	case domain.KindUploadURL:
		return domain.ErrUploadURL.Error()
	case domain.KindDependency:
		return domain.ErrDependency.Error()
	}
	return httpx.SafeError(err, status, true)
}
