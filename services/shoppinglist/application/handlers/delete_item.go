package handlers

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// DeleteItemHandler handles DELETE /lists/{listId}/items/{itemId} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item. Removing an absent item succeeds.
//
//	@Summary	Remove item
//	@Tags		items
//	@Param		listId				path	string	true	"List ID"
//	@Param		itemId				path	string	true	"Item ID"
//	@Param		requestingUserId	query	string	false	"Caller id when authentication is disabled"
//	@Param		body				body	DeleteRequest	false	"Caller id in the body, as an alternative to the query"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorBody
//	@Failure	401	{object}	httpx.ErrorBody
//	@Failure	403	{object}	httpx.ErrorBody
//	@Failure	503	{object}	httpx.ErrorBody
//	@Router		/lists/{listId}/items/{itemId} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, ok := deleteCaller(w, r)
	if !ok {
		return
	}
	listID, err := listIDParam(r)
	if err != nil {
		// No list can own the item.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	itemID, err := itemIDParam(r)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.svc.Items.Remove(r.Context(), listID, itemID, userID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
