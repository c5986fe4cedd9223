package handlers

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// GetItemsHandler handles GET /lists/{listId}/items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute returns the items of a list, oldest first.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		listId				path		string	true	"List ID"
//	@Param		requestingUserId	query		string	false	"Caller id when authentication is disabled"
//	@Success	200					{object}	ItemsResponse
//	@Failure	401					{object}	httpx.ErrorBody
//	@Failure	403					{object}	httpx.ErrorBody
//	@Failure	404					{object}	httpx.ErrorBody
//	@Router		/lists/{listId}/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := queryCaller(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	listID, err := listIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items, err := h.svc.Items.List(r.Context(), listID, userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ItemsResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, i := range items {
		resp.Items = append(resp.Items, newItemResponse(i))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
