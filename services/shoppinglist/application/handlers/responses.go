package handlers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// ListResponse is the JSON representation of a shopping list.
type ListResponse struct {
	ListID       uuid.UUID `json:"listId"       example:"123e4567-e89b-12d3-a456-426614174000"`
	ListName     string    `json:"listName"     example:"Weekly Groceries"`
	CreatedBy    string    `json:"createdBy"    example:"user123"`
	CreatedAt    time.Time `json:"createdAt"    example:"2024-01-15T10:30:00Z"`
	AllowedUsers []string  `json:"allowedUsers" example:"user123,user456"`
	Version      int64     `json:"version"      example:"1"`
} // @name ListResponse

func newListResponse(l *models.List) ListResponse {
	return ListResponse{
		ListID:       l.ID,
		ListName:     l.Name.String(),
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
		AllowedUsers: append([]string{}, l.AllowedUsers...),
		Version:      l.Version,
	}
}

// ListsResponse wraps the lists a caller belongs to.
type ListsResponse struct {
	Lists []ListResponse `json:"lists"`
} // @name ListsResponse

// MembershipResponse reports the outcome of adding or removing a member.
type MembershipResponse struct {
	Status       string    `json:"status"       example:"added" enums:"added,already_member,removed,not_member"`
	ListID       uuid.UUID `json:"listId"       example:"123e4567-e89b-12d3-a456-426614174000"`
	AllowedUsers []string  `json:"allowedUsers" example:"user123,user456"`
} // @name MembershipResponse

func newMembershipResponse(res *appsvcs.MembershipResult) MembershipResponse {
	return MembershipResponse{
		Status:       res.Status,
		ListID:       res.List.ID,
		AllowedUsers: append([]string{}, res.List.AllowedUsers...),
	}
}

// ItemResponse is the JSON representation of a list item.
type ItemResponse struct {
	ListID      uuid.UUID       `json:"listId"                example:"123e4567-e89b-12d3-a456-426614174000"`
	ItemID      uuid.UUID       `json:"itemId"                example:"550e8400-e29b-41d4-a716-446655440000"`
	ItemName    string          `json:"itemName"              example:"Eggs"`
	Quantity    int             `json:"quantity"              example:"1"`
	Unit        string          `json:"unit,omitempty"        example:"dozen"`
	AddedBy     string          `json:"addedBy"               example:"user123"`
	AddedAt     time.Time       `json:"addedAt"               example:"2024-01-15T10:30:00Z"`
	Purchased   bool            `json:"purchased"             example:"false"`
	PurchasedBy string          `json:"purchasedBy,omitempty" example:"user456"`
	PurchasedAt *time.Time      `json:"purchasedAt,omitempty" example:"2024-01-15T18:02:00Z"`
	Cost        *float64        `json:"cost"                  example:"2.99"`
	ItemDetails json.RawMessage `json:"itemDetails" swaggertype:"object"`
	Version     int64           `json:"version"               example:"1"`
} // @name ItemResponse

func newItemResponse(i *models.Item) ItemResponse {
	details := i.ItemDetails
	if len(details) == 0 {
		details = json.RawMessage("null")
	}
	return ItemResponse{
		ListID:      i.ListID,
		ItemID:      i.ID,
		ItemName:    i.Name.String(),
		Quantity:    i.Quantity.Int(),
		Unit:        i.Unit,
		AddedBy:     i.AddedBy,
		AddedAt:     i.AddedAt,
		Purchased:   i.Purchased,
		PurchasedBy: i.PurchasedBy,
		PurchasedAt: i.PurchasedAt,
		Cost:        i.Cost,
		ItemDetails: details,
		Version:     i.Version,
	}
}

// ItemsResponse wraps the items of a list.
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
} // @name ItemsResponse

// ReceiptResponse is the JSON representation of receipt metadata.
type ReceiptResponse struct {
	ReceiptID  uuid.UUID `json:"receiptId"  example:"9b2f4c1e-0d7a-4a8e-b3f2-5c6d7e8f9a0b"`
	ListID     uuid.UUID `json:"listId"     example:"123e4567-e89b-12d3-a456-426614174000"`
	UploadedBy string    `json:"uploadedBy" example:"user123"`
	ImageURL   string    `json:"imageUrl"   example:"https://shopping-receipts.s3.us-east-2.amazonaws.com/receipts/9b2f4c1e-0d7a-4a8e-b3f2-5c6d7e8f9a0b.jpg"`
	UploadedAt time.Time `json:"uploadedAt" example:"2024-01-15T18:05:00Z"`
} // @name ReceiptResponse

// ReceiptsResponse wraps the receipts of a list.
type ReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
} // @name ReceiptsResponse
