package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// Watermill topics published by the shopping list repositories.
const (
	TopicListCreated         = "list.created"
	TopicListMembersChanged  = "list.members_changed"
	TopicListDeleted         = "list.deleted"
	TopicItemAdded           = "item.added"
	TopicItemPurchased       = "item.purchased"
	TopicItemRemoved         = "item.removed"
	TopicReceiptUploadIssued = "receipt.upload_issued"
)

// SchemaVersion is stamped on every event; increment on breaking changes.
const SchemaVersion = 1

// Envelope carries the fields shared by every event.
type Envelope struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newEnvelope(at time.Time) Envelope {
	return Envelope{EventID: uuid.New(), Version: SchemaVersion, OccurredAt: at.UTC()}
}

// ListCreatedEvent is published after a new List is persisted.
type ListCreatedEvent struct {
	Envelope
	ListID       uuid.UUID `json:"list_id"`
	Name         string    `json:"name"`
	CreatedBy    string    `json:"created_by"`
	AllowedUsers []string  `json:"allowed_users"`
}

func NewListCreated(l *models.List) ListCreatedEvent {
	return ListCreatedEvent{
		Envelope:     newEnvelope(l.CreatedAt),
		ListID:       l.ID,
		Name:         l.Name.String(),
		CreatedBy:    l.CreatedBy,
		AllowedUsers: l.AllowedUsers,
	}
}

// ListMembersChangedEvent is published after a conditional membership write.
type ListMembersChangedEvent struct {
	Envelope
	ListID       uuid.UUID `json:"list_id"`
	AllowedUsers []string  `json:"allowed_users"`
	ListVersion  int64     `json:"list_version"`
}

func NewListMembersChanged(l *models.List) ListMembersChangedEvent {
	return ListMembersChangedEvent{
		Envelope:     newEnvelope(time.Now()),
		ListID:       l.ID,
		AllowedUsers: l.AllowedUsers,
		ListVersion:  l.Version,
	}
}

// ListDeletedEvent is published once the list record itself is removed.
type ListDeletedEvent struct {
	Envelope
	ListID uuid.UUID `json:"list_id"`
}

func NewListDeleted(listID uuid.UUID) ListDeletedEvent {
	return ListDeletedEvent{Envelope: newEnvelope(time.Now()), ListID: listID}
}

// ItemAddedEvent is published after a new Item is persisted.
type ItemAddedEvent struct {
	Envelope
	ListID   uuid.UUID `json:"list_id"`
	ItemID   uuid.UUID `json:"item_id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Unit     string    `json:"unit,omitempty"`
	AddedBy  string    `json:"added_by"`
}

func NewItemAdded(i *models.Item) ItemAddedEvent {
	return ItemAddedEvent{
		Envelope: newEnvelope(i.AddedAt),
		ListID:   i.ListID,
		ItemID:   i.ID,
		Name:     i.Name.String(),
		Quantity: i.Quantity.Int(),
		Unit:     i.Unit,
		AddedBy:  i.AddedBy,
	}
}

// ItemPurchasedEvent is published after the purchase state is overwritten.
type ItemPurchasedEvent struct {
	Envelope
	ListID      uuid.UUID       `json:"list_id"`
	ItemID      uuid.UUID       `json:"item_id"`
	PurchasedBy string          `json:"purchased_by"`
	Cost        *float64        `json:"cost"`
	ItemDetails json.RawMessage `json:"item_details,omitempty"`
	ItemVersion int64           `json:"item_version"`
}

func NewItemPurchased(i *models.Item) ItemPurchasedEvent {
	at := time.Now()
	if i.PurchasedAt != nil {
		at = *i.PurchasedAt
	}
	return ItemPurchasedEvent{
		Envelope:    newEnvelope(at),
		ListID:      i.ListID,
		ItemID:      i.ID,
		PurchasedBy: i.PurchasedBy,
		Cost:        i.Cost,
		ItemDetails: i.ItemDetails,
		ItemVersion: i.Version,
	}
}

// ItemRemovedEvent is published for every item delete, including no-op deletes
// and deletes issued by the list cascade.
type ItemRemovedEvent struct {
	Envelope
	ListID uuid.UUID `json:"list_id"`
	ItemID uuid.UUID `json:"item_id"`
}

func NewItemRemoved(listID, itemID uuid.UUID) ItemRemovedEvent {
	return ItemRemovedEvent{Envelope: newEnvelope(time.Now()), ListID: listID, ItemID: itemID}
}

// ReceiptUploadIssuedEvent is published once receipt metadata is recorded for a
// freshly issued upload URL. The worker uses it to schedule reconciliation.
type ReceiptUploadIssuedEvent struct {
	Envelope
	ReceiptID  uuid.UUID `json:"receipt_id"`
	ListID     uuid.UUID `json:"list_id"`
	ObjectKey  string    `json:"object_key"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func NewReceiptUploadIssued(r *models.Receipt) ReceiptUploadIssuedEvent {
	return ReceiptUploadIssuedEvent{
		Envelope:   newEnvelope(r.UploadedAt),
		ReceiptID:  r.ID,
		ListID:     r.ListID,
		ObjectKey:  r.ObjectKey,
		UploadedBy: r.UploadedBy,
		UploadedAt: r.UploadedAt,
	}
}
