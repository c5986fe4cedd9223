package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	pkgvalidator "github.com/SamWeninger/shopping-assistant/pkg/validator"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// PurchaseItemRequest is the request body for PUT /lists/{listId}/items/{itemId}/purchase.
type PurchaseItemRequest struct {
	PurchasedBy     string          `json:"purchasedBy,omitempty" example:"user456"`
	Cost            *float64        `json:"cost,omitempty" validate:"omitempty,gte=0" example:"2.99"`
	ItemDetails     json.RawMessage `json:"itemDetails,omitempty" swaggertype:"object"`
	ExpectedVersion *int64          `json:"expectedVersion,omitempty" validate:"omitempty,gte=1" example:"1"`
} // @name PurchaseItemRequest

// PutItemPurchaseHandler handles PUT /lists/{listId}/items/{itemId}/purchase requests.
type PutItemPurchaseHandler struct {
	svc *appsvcs.Services
}

// NewPutItemPurchaseHandler returns a PutItemPurchaseHandler backed by the given services.
func NewPutItemPurchaseHandler(svc *appsvcs.Services) *PutItemPurchaseHandler {
	return &PutItemPurchaseHandler{svc: svc}
}

// Execute marks an item purchased, replacing any earlier purchase state.
//
//	@Summary		Mark item purchased
//	@Description	Last writer wins unless expectedVersion is supplied, in which case a stale version fails with 409.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			listId	path		string				true	"List ID"
//	@Param			itemId	path		string				true	"Item ID"
//	@Param			request	body		PurchaseItemRequest	true	"Purchase details"
//	@Success		200		{object}	ItemResponse
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		403		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody
//	@Failure		409		{object}	httpx.ErrorBody
//	@Failure		422		{object}	validator.FieldErrorBody
//	@Router			/lists/{listId}/items/{itemId}/purchase [put]
func (h *PutItemPurchaseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[PurchaseItemRequest](w, r)
	if !ok {
		return
	}
	purchasedBy, err := Caller(r.Context(), req.PurchasedBy)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	listID, err := listIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	itemID, err := itemIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	item, err := h.svc.Items.MarkPurchased(r.Context(), appsvcs.PurchaseInput{
		ListID:          listID,
		ItemID:          itemID,
		PurchasedBy:     purchasedBy,
		Cost:            req.Cost,
		ItemDetails:     req.ItemDetails,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newItemResponse(item))
}
