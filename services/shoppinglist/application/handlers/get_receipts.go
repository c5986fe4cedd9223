package handlers

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// GetReceiptsHandler handles GET /lists/{listId}/receipts requests.
type GetReceiptsHandler struct {
	svc *appsvcs.Services
}

// NewGetReceiptsHandler returns a GetReceiptsHandler backed by the given services.
func NewGetReceiptsHandler(svc *appsvcs.Services) *GetReceiptsHandler {
	return &GetReceiptsHandler{svc: svc}
}

// Execute lists the receipts recorded against a list.
//
//	@Summary	List receipts
//	@Tags		receipts
//	@Produce	json
//	@Param		listId				path		string	true	"List ID"
//	@Param		requestingUserId	query		string	false	"Caller id when authentication is disabled"
//	@Success	200					{object}	ReceiptsResponse
//	@Failure	401					{object}	httpx.ErrorBody
//	@Failure	403					{object}	httpx.ErrorBody
//	@Failure	404					{object}	httpx.ErrorBody
//	@Router		/lists/{listId}/receipts [get]
func (h *GetReceiptsHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	receipts, err := h.svc.Receipts.ListReceipts(r.Context(), listID, userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ReceiptsResponse{Receipts: make([]ReceiptResponse, 0, len(receipts))}
	for _, rc := range receipts {
		resp.Receipts = append(resp.Receipts, ReceiptResponse{
			ReceiptID:  rc.ID,
			ListID:     rc.ListID,
			UploadedBy: rc.UploadedBy,
			ImageURL:   rc.ImageURL,
			UploadedAt: rc.UploadedAt,
		})
	}
	httpx.JSON(w, http.StatusOK, resp)
}
