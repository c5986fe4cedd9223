package handlers

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	pkgvalidator "github.com/SamWeninger/shopping-assistant/pkg/validator"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// AddItemRequest is the request body for POST /lists/{listId}/items.
type AddItemRequest struct {
	ItemName string `json:"itemName" validate:"required,notblank,max=255" example:"Eggs"`
	Quantity int    `json:"quantity,omitempty" validate:"gte=0" example:"1"`
	Unit     string `json:"unit,omitempty" validate:"max=32" example:"dozen"`
	AddedBy  string `json:"addedBy,omitempty" example:"user123"`
} // @name AddItemRequest

// PostItemHandler handles POST /lists/{listId}/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute adds an item to a list.
//
//	@Summary		Add item
//	@Description	Adds an unpurchased item. Quantity defaults to 1.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			listId	path		string			true	"List ID"
//	@Param			request	body		AddItemRequest	true	"Item to add"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		403		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody
//	@Failure		422		{object}	validator.FieldErrorBody
//	@Router			/lists/{listId}/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AddItemRequest](w, r)
	if !ok {
		return
	}
	addedBy, err := Caller(r.Context(), req.AddedBy)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	listID, err := listIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	item, err := h.svc.Items.Add(r.Context(), appsvcs.AddItemInput{
		ListID:   listID,
		Name:     req.ItemName,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		AddedBy:  addedBy,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newItemResponse(item))
}
