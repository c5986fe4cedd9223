package handlers

import (
	"net/http"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	pkgvalidator "github.com/SamWeninger/shopping-assistant/pkg/validator"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// AddUserRequest is the request body for POST /lists/{listId}/users.
type AddUserRequest struct {
	RequestingUserID string `json:"requestingUserId,omitempty" example:"user123"`
	UserID           string `json:"userId" validate:"required,notblank,max=255" example:"user456"`
} // @name AddUserRequest

// PostListUserHandler handles POST /lists/{listId}/users requests.
type PostListUserHandler struct {
	svc *appsvcs.Services
}

// NewPostListUserHandler returns a PostListUserHandler backed by the given services.
func NewPostListUserHandler(svc *appsvcs.Services) *PostListUserHandler {
	return &PostListUserHandler{svc: svc}
}

// Execute adds a member to the list. Only current members may invite.
//
//	@Summary		Add user to list
//	@Description	Adding an existing member is a no-op reported as status "already_member".
//	@Tags			members
//	@Accept			json
//	@Produce		json
//	@Param			listId	path		string			true	"List ID"
//	@Param			request	body		AddUserRequest	true	"Member to add"
//	@Success		200		{object}	MembershipResponse
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		403		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody
//	@Failure		409		{object}	httpx.ErrorBody
//	@Failure		422		{object}	validator.FieldErrorBody
//	@Router			/lists/{listId}/users [post]
func (h *PostListUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AddUserRequest](w, r)
	if !ok {
		return
	}
	requester, err := Caller(r.Context(), req.RequestingUserID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	listID, err := listIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	res, err := h.svc.Lists.AddUser(r.Context(), listID, requester, req.UserID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newMembershipResponse(res))
}
