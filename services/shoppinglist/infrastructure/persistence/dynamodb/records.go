package dynamodb

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

// Attribute names as stored in the tables.
const (
	attrListID    = "ListId"
	attrItemID    = "ItemId"
	attrReceiptID = "ReceiptId"
)

type listRecord struct {
	ListID       string   `dynamodbav:"ListId"`
	ListName     string   `dynamodbav:"ListName"`
	CreatedAt    int64    `dynamodbav:"CreatedAt"` // epoch milliseconds
	CreatedBy    string   `dynamodbav:"CreatedBy"`
	AllowedUsers []string `dynamodbav:"AllowedUsers"`
	Version      int64    `dynamodbav:"Version"`
}

func toListRecord(l *models.List) listRecord {
	return listRecord{
		ListID:       l.ID.String(),
		ListName:     l.Name.String(),
		CreatedAt:    l.CreatedAt.UnixMilli(),
		CreatedBy:    l.CreatedBy,
		AllowedUsers: []string(l.AllowedUsers),
		Version:      l.Version,
	}
}

func (r listRecord) toModel() (*models.List, error) {
	id, err := uuid.Parse(r.ListID)
	if err != nil {
		return nil, fmt.Errorf("decode ListId %q: %w", r.ListID, err)
	}
	version := r.Version
	if version == 0 {
		// Records written before versioning start at 1.
		version = 1
	}
	return &models.List{
		ID:           id,
		Name:         models.ListName(r.ListName),
		CreatedBy:    r.CreatedBy,
		CreatedAt:    time.UnixMilli(r.CreatedAt).UTC(),
		AllowedUsers: models.Membership(r.AllowedUsers),
		Version:      version,
	}, nil
}

type itemRecord struct {
	ListID      string   `dynamodbav:"ListId"`
	ItemID      string   `dynamodbav:"ItemId"`
	ItemName    string   `dynamodbav:"ItemName"`
	Quantity    int      `dynamodbav:"Quantity"`
	Unit        string   `dynamodbav:"Unit,omitempty"`
	AddedBy     string   `dynamodbav:"AddedBy"`
	AddedAt     string   `dynamodbav:"AddedAt"` // RFC 3339
	Purchased   bool     `dynamodbav:"Purchased"`
	PurchasedBy string   `dynamodbav:"PurchasedBy,omitempty"`
	PurchasedAt string   `dynamodbav:"PurchasedAt,omitempty"`
	Cost        *float64 `dynamodbav:"Cost,omitempty"`
	ItemDetails any      `dynamodbav:"ItemDetails,omitempty"`
	Version     int64    `dynamodbav:"Version"`
}

func toItemRecord(i *models.Item) (itemRecord, error) {
	details, err := decodeDetails(i.ItemDetails)
	if err != nil {
		return itemRecord{}, err
	}
	r := itemRecord{
		ListID:      i.ListID.String(),
		ItemID:      i.ID.String(),
		ItemName:    i.Name.String(),
		Quantity:    i.Quantity.Int(),
		Unit:        i.Unit,
		AddedBy:     i.AddedBy,
		AddedAt:     i.AddedAt.UTC().Format(time.RFC3339Nano),
		Purchased:   i.Purchased,
		PurchasedBy: i.PurchasedBy,
		Cost:        i.Cost,
		ItemDetails: details,
		Version:     i.Version,
	}
	if i.PurchasedAt != nil {
		r.PurchasedAt = i.PurchasedAt.UTC().Format(time.RFC3339Nano)
	}
	return r, nil
}

func (r itemRecord) toModel() (*models.Item, error) {
	listID, err := uuid.Parse(r.ListID)
	if err != nil {
		return nil, fmt.Errorf("decode ListId %q: %w", r.ListID, err)
	}
	itemID, err := uuid.Parse(r.ItemID)
	if err != nil {
		return nil, fmt.Errorf("decode ItemId %q: %w", r.ItemID, err)
	}
	addedAt, err := time.Parse(time.RFC3339Nano, r.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("decode AddedAt: %w", err)
	}
	qty := r.Quantity
	if qty < 1 {
		qty = 1
	}
	version := r.Version
	if version == 0 {
		version = 1
	}
	i := &models.Item{
		ListID:      listID,
		ID:          itemID,
		Name:        models.ItemName(r.ItemName),
		Quantity:    models.Quantity(qty),
		Unit:        r.Unit,
		AddedBy:     r.AddedBy,
		AddedAt:     addedAt.UTC(),
		Purchased:   r.Purchased,
		PurchasedBy: r.PurchasedBy,
		Cost:        r.Cost,
		Version:     version,
	}
	if r.PurchasedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, r.PurchasedAt)
		if err != nil {
			return nil, fmt.Errorf("decode PurchasedAt: %w", err)
		}
		t = t.UTC()
		i.PurchasedAt = &t
	}
	if r.ItemDetails != nil {
		raw, err := json.Marshal(r.ItemDetails)
		if err != nil {
			return nil, fmt.Errorf("encode ItemDetails: %w", err)
		}
		i.ItemDetails = raw
	}
	return i, nil
}

// decodeDetails turns raw JSON into a Go value attributevalue can marshal
// into a native DynamoDB map/list/scalar.
func decodeDetails(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode item details: %w", err)
	}
	return v, nil
}

type receiptRecord struct {
	ReceiptID  string `dynamodbav:"ReceiptId"`
	ListID     string `dynamodbav:"ListId"`
	UploadedBy string `dynamodbav:"UploadedBy"`
	ObjectKey  string `dynamodbav:"ObjectKey"`
	ImageURL   string `dynamodbav:"ImageURL"`
	UploadedAt string `dynamodbav:"UploadedAt"`
}

func toReceiptRecord(rc *models.Receipt) receiptRecord {
	return receiptRecord{
		ReceiptID:  rc.ID.String(),
		ListID:     rc.ListID.String(),
		UploadedBy: rc.UploadedBy,
		ObjectKey:  rc.ObjectKey,
		ImageURL:   rc.ImageURL,
		UploadedAt: rc.UploadedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (r receiptRecord) toModel() (*models.Receipt, error) {
	id, err := uuid.Parse(r.ReceiptID)
	if err != nil {
		return nil, fmt.Errorf("decode ReceiptId %q: %w", r.ReceiptID, err)
	}
	listID, err := uuid.Parse(r.ListID)
	if err != nil {
		return nil, fmt.Errorf("decode ListId %q: %w", r.ListID, err)
	}
	at, err := time.Parse(time.RFC3339Nano, r.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("decode UploadedAt: %w", err)
	}
	key := r.ObjectKey
	if key == "" {
		key = models.ReceiptObjectKey(id)
	}
	return &models.Receipt{
		ID:         id,
		ListID:     listID,
		UploadedBy: r.UploadedBy,
		ObjectKey:  key,
		ImageURL:   r.ImageURL,
		UploadedAt: at.UTC(),
	}, nil
}
