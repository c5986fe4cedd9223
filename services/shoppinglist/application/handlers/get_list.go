package handlers

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// GetListHandler handles GET /lists/{listId} requests.
type GetListHandler struct {
	svc *appsvcs.Services
}

// NewGetListHandler returns a GetListHandler backed by the given services.
func NewGetListHandler(svc *appsvcs.Services) *GetListHandler {
	return &GetListHandler{svc: svc}
}

// Execute returns a list the caller is a member of.
//
//	@Summary	Get list
//	@Tags		lists
//	@Produce	json
//	@Param		listId				path		string	true	"List ID"
//	@Param		requestingUserId	query		string	false	"Caller id when authentication is disabled"
//	@Success	200					{object}	ListResponse
//	@Failure	401					{object}	httpx.ErrorBody
//	@Failure	403					{object}	httpx.ErrorBody
//	@Failure	404					{object}	httpx.ErrorBody
//	@Failure	503					{object}	httpx.ErrorBody
//	@Router		/lists/{listId} [get]
func (h *GetListHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	l, err := h.svc.Lists.Get(r.Context(), listID, userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newListResponse(l))
}
