package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// DeleteListUserHandler handles DELETE /lists/{listId}/users/{userId} requests.
type DeleteListUserHandler struct {
	svc *appsvcs.Services
}

// NewDeleteListUserHandler returns a DeleteListUserHandler backed by the given services.
func NewDeleteListUserHandler(svc *appsvcs.Services) *DeleteListUserHandler {
	return &DeleteListUserHandler{svc: svc}
}

// Execute removes a member from the list. The creator cannot be removed.
//
//	@Summary		Remove user from list
//	@Description	Removing a non-member is a no-op reported as status "not_member".
//	@Tags			members
//	@Produce		json
//	@Param			listId				path		string	true	"List ID"
//	@Param			userId				path		string	true	"Member to remove"
//	@Param			requestingUserId	query		string	false	"Caller id when authentication is disabled"
//	@Param			body				body		DeleteRequest	false	"Caller id in the body, as an alternative to the query"
//	@Success		200					{object}	MembershipResponse
//	@Failure		400					{object}	httpx.ErrorBody
//	@Failure		401					{object}	httpx.ErrorBody
//	@Failure		403					{object}	httpx.ErrorBody
//	@Failure		404					{object}	httpx.ErrorBody
//	@Failure		409					{object}	httpx.ErrorBody
//	@Failure		422					{object}	httpx.ErrorBody
//	@Router			/lists/{listId}/users/{userId} [delete]
func (h *DeleteListUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	requester, ok := deleteCaller(w, r)
	if !ok {
		return
	}
	listID, err := listIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	res, err := h.svc.Lists.RemoveUser(r.Context(), listID, requester, chi.URLParam(r, "userId"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newMembershipResponse(res))
}
