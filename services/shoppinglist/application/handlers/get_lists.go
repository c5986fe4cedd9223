package handlers

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// GetListsHandler handles GET /lists requests.
type GetListsHandler struct {
	svc *appsvcs.Services
}

// NewGetListsHandler returns a GetListsHandler backed by the given services.
func NewGetListsHandler(svc *appsvcs.Services) *GetListsHandler {
	return &GetListsHandler{svc: svc}
}

// Execute returns every list the caller is a member of.
//
//	@Summary	List my lists
//	@Tags		lists
//	@Produce	json
//	@Param		requestingUserId	query		string	false	"Caller id when authentication is disabled"
//	@Success	200					{object}	ListsResponse
//	@Failure	401					{object}	httpx.ErrorBody
//	@Failure	403					{object}	httpx.ErrorBody
//	@Failure	503					{object}	httpx.ErrorBody
//	@Router		/lists [get]
func (h *GetListsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := queryCaller(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	lists, err := h.svc.Lists.ListForUser(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListsResponse{Lists: make([]ListResponse, 0, len(lists))}
	for _, l := range lists {
		resp.Lists = append(resp.Lists, newListResponse(l))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
