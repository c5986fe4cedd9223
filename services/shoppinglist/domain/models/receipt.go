package models

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptContentType is the only content type an issued upload URL accepts.
const ReceiptContentType = "image/jpeg"

// Receipt is metadata for a receipt image uploaded (or about to be uploaded)
// directly to object storage. It is never mutated after creation.
type Receipt struct {
	ID         uuid.UUID
	ListID     uuid.UUID
	UploadedBy string
	ObjectKey  string
	ImageURL   string
	UploadedAt time.Time
}

// ReceiptObjectKey is the deterministic object key for a receipt id.
func ReceiptObjectKey(id uuid.UUID) string {
	return "receipts/" + id.String() + ".jpg"
}

// NewReceipt builds the metadata record for receipt id; imageURL must be the
// public URL derived from ReceiptObjectKey(id).
func NewReceipt(id, listID uuid.UUID, uploadedBy, imageURL string) *Receipt {
	return &Receipt{
		ID:         id,
		ListID:     listID,
		UploadedBy: uploadedBy,
		ObjectKey:  ReceiptObjectKey(id),
		ImageURL:   imageURL,
		UploadedAt: time.Now().UTC(),
	}
}
