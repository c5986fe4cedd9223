package handlers

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// DeleteListHandler handles DELETE /lists/{listId} requests.
type DeleteListHandler struct {
	svc *appsvcs.Services
}

// NewDeleteListHandler returns a DeleteListHandler backed by the given services.
func NewDeleteListHandler(svc *appsvcs.Services) *DeleteListHandler {
	return &DeleteListHandler{svc: svc}
}

// Execute deletes a list and all of its items. Only the creator may delete.
//
//	@Summary	Delete list
//	@Tags		lists
//	@Param		listId				path	string	true	"List ID"
//	@Param		requestingUserId	query	string	false	"Caller id when authentication is disabled"
//	@Param		body				body	DeleteRequest	false	"Caller id in the body, as an alternative to the query"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorBody
//	@Failure	401	{object}	httpx.ErrorBody
//	@Failure	403	{object}	httpx.ErrorBody
//	@Failure	404	{object}	httpx.ErrorBody
//	@Failure	503	{object}	httpx.ErrorBody
//	@Router		/lists/{listId} [delete]
func (h *DeleteListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, ok := deleteCaller(w, r)
	if !ok {
		return
	}
	listID, err := listIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := h.svc.Deletion.DeleteList(r.Context(), listID, userID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
