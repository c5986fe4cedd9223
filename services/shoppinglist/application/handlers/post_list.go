package handlers

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	pkgvalidator "github.com/SamWeninger/shopping-assistant/pkg/validator"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// CreateListRequest is the request body for POST /lists.
type CreateListRequest struct {
	ListName     string   `json:"listName" validate:"required,notblank,max=255" example:"Weekly Groceries"`
	CreatedBy    string   `json:"createdBy,omitempty" example:"user123"`
	AllowedUsers []string `json:"allowedUsers,omitempty" example:"user456,user789"`
} // @name CreateListRequest

// PostListHandler handles POST /lists requests.
type PostListHandler struct {
	svc *appsvcs.Services
}

// NewPostListHandler returns a PostListHandler backed by the given services.
func NewPostListHandler(svc *appsvcs.Services) *PostListHandler {
	return &PostListHandler{svc: svc}
}

// Execute creates a new shopping list owned by the caller.
//
//	@Summary		Create list
//	@Description	Creates a shopping list. The creator is always a member; members are de-duplicated and capped at 10.
//	@Tags			lists
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateListRequest	true	"List creation request"
//	@Success		201		{object}	ListResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		403		{object}	httpx.ErrorBody
//	@Failure		409		{object}	httpx.ErrorBody
//	@Failure		422		{object}	validator.FieldErrorBody
//	@Failure		503		{object}	httpx.ErrorBody
//	@Router			/lists [post]
func (h *PostListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateListRequest](w, r)
	if !ok {
		return
	}

	createdBy, err := Caller(r.Context(), req.CreatedBy)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	l, err := h.svc.Lists.Create(r.Context(), req.ListName, createdBy, req.AllowedUsers)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newListResponse(l))
}
