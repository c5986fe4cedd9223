package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/pkg/auth"
	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
)

// Caller returns the user id an operation runs as. An authenticated identity
// always wins; a payload id that names someone else is rejected. Without an
// identity (authentication disabled) the payload id is trusted.
func Caller(ctx context.Context, payloadUserID string) (string, error) {
	payloadUserID = strings.TrimSpace(payloadUserID)
	if id, err := auth.UserIDFromCtx(ctx); err == nil {
		if payloadUserID != "" && payloadUserID != id {
			return "", fmt.Errorf("%w: payload user does not match the authenticated caller", domain.ErrAuthorization)
		}
		return id, nil
	}
	if payloadUserID == "" {
		return "", domain.ErrAuthentication
	}
	return payloadUserID, nil
}

// queryCaller resolves the caller from the requestingUserId query parameter.
func queryCaller(r *http.Request) (string, error) {
	return Caller(r.Context(), r.URL.Query().Get("requestingUserId"))
}

// DeleteRequest is the optional JSON body of DELETE requests.
type DeleteRequest struct {
	RequestingUserID string `json:"requestingUserId" example:"user123"`
} // @name DeleteRequest

// deleteCaller resolves the caller of a DELETE. The requestingUserId may come
// from the query string or from an optional JSON body; when both are given
// they must agree. On failure the error response is already written.
func deleteCaller(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "validation", "Request body too large")
		} else {
			httpx.JSONError(w, http.StatusBadRequest, "validation", "Invalid JSON")
		}
		return "", false
	}

	query := strings.TrimSpace(r.URL.Query().Get("requestingUserId"))
	fromBody := strings.TrimSpace(body.RequestingUserID)
	payload := query
	switch {
	case query == "":
		payload = fromBody
	case fromBody != "" && fromBody != query:
		errhttp.WriteError(w, fmt.Errorf("%w: requestingUserId differs between query and body", domain.ErrAuthorization))
		return "", false
	}

	userID, err := Caller(r.Context(), payload)
	if err != nil {
		errhttp.WriteError(w, err)
		return "", false
	}
	return userID, true
}

// listIDParam parses {listId}. A malformed id cannot name a list, so it is
// reported as not found.
func listIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "listId"))
	if err != nil {
		return uuid.Nil, domain.ErrListNotFound
	}
	return id, nil
}

func itemIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		return uuid.Nil, domain.ErrItemNotFound
	}
	return id, nil
}
