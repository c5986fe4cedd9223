package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/pkg/errhttp"
	"github.com/SamWeninger/shopping-assistant/pkg/httpx"
	pkgvalidator "github.com/SamWeninger/shopping-assistant/pkg/validator"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// ReceiptUploadRequest is the request body for POST /receipts/upload.
type ReceiptUploadRequest struct {
	ListID     string `json:"listId" validate:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	UploadedBy string `json:"uploadedBy,omitempty" example:"user123"`
} // @name ReceiptUploadRequest

// ReceiptUploadResponse carries the pre-signed upload URL for a receipt image.
type ReceiptUploadResponse struct {
	ReceiptID uuid.UUID `json:"receiptId" example:"9b2f4c1e-0d7a-4a8e-b3f2-5c6d7e8f9a0b"`
	UploadURL string    `json:"uploadUrl" example:"https://shopping-receipts.s3.us-east-2.amazonaws.com/receipts/9b2f4c1e-0d7a-4a8e-b3f2-5c6d7e8f9a0b.jpg?X-Amz-Signature=..."`
	Method    string    `json:"method" example:"PUT"`
	// ContentType must be sent as the Content-Type header of the upload.
	ContentType string    `json:"contentType" example:"image/jpeg"`
	ImageURL    string    `json:"imageUrl" example:"https://shopping-receipts.s3.us-east-2.amazonaws.com/receipts/9b2f4c1e-0d7a-4a8e-b3f2-5c6d7e8f9a0b.jpg"`
	ExpiresAt   time.Time `json:"expiresAt" example:"2024-01-15T19:05:00Z"`
} // @name ReceiptUploadResponse

// PostReceiptUploadHandler handles POST /receipts/upload requests.
type PostReceiptUploadHandler struct {
	svc *appsvcs.Services
}

// NewPostReceiptUploadHandler returns a PostReceiptUploadHandler backed by the given services.
func NewPostReceiptUploadHandler(svc *appsvcs.Services) *PostReceiptUploadHandler {
	return &PostReceiptUploadHandler{svc: svc}
}

// Execute issues a one-hour pre-signed PUT URL for a receipt image.
//
//	@Summary		Generate receipt upload URL
//	@Description	Records receipt metadata and returns a pre-signed URL that accepts a single image/jpeg PUT.
//	@Tags			receipts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReceiptUploadRequest	true	"Target list"
//	@Success		201		{object}	ReceiptUploadResponse
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		403		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody
//	@Failure		422		{object}	validator.FieldErrorBody
//	@Failure		502		{object}	httpx.ErrorBody
//	@Router			/receipts/upload [post]
func (h *PostReceiptUploadHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ReceiptUploadRequest](w, r)
	if !ok {
		return
	}
	uploadedBy, err := Caller(r.Context(), req.UploadedBy)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	listID, err := uuid.Parse(req.ListID)
	if err != nil {
		errhttp.WriteError(w, domain.ErrListNotFound)
		return
	}

	grant, err := h.svc.Receipts.GenerateUploadURL(r.Context(), listID, uploadedBy)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ReceiptUploadResponse{
		ReceiptID:   grant.ReceiptID,
		UploadURL:   grant.UploadURL,
		Method:      grant.Method,
		ContentType: models.ReceiptContentType,
		ImageURL:    grant.ImageURL,
		ExpiresAt:   grant.ExpiresAt,
	})
}
