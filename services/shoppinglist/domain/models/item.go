package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
)

// MaxUnitLength bounds the free-text unit ("gallon", "dozen", ...).
const MaxUnitLength = 32

// Quantity is a positive item count.
type Quantity int

// NewQuantity returns 1 for an unspecified (zero) quantity and rejects negatives.
func NewQuantity(n int) (Quantity, error) {
	if n == 0 {
		return 1, nil
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	return Quantity(n), nil
}

// Int returns the underlying int value.
func (q Quantity) Int() int {
	return int(q)
}

// Item is a purchasable entry scoped to one list; (ListID, ID) is its key.
type Item struct {
	ListID   uuid.UUID
	ID       uuid.UUID
	Name     ItemName
	Quantity Quantity
	Unit     string
	AddedBy  string
	AddedAt  time.Time

	Purchased   bool
	PurchasedBy string
	PurchasedAt *time.Time
	Cost        *float64
	ItemDetails json.RawMessage

	Version int64
}

// NewItem constructs an unpurchased Item with a fresh id and Version 1.
func NewItem(listID uuid.UUID, name ItemName, qty Quantity, unit, addedBy string) (*Item, error) {
	unit = strings.TrimSpace(unit)
	if utf8.RuneCountInString(unit) > MaxUnitLength {
		return nil, fmt.Errorf("%w: unit must not exceed %d characters", domain.ErrValidation, MaxUnitLength)
	}
	if qty < 1 {
		qty = 1
	}
	return &Item{
		ListID:   listID,
		ID:       uuid.New(),
		Name:     name,
		Quantity: qty,
		Unit:     unit,
		AddedBy:  addedBy,
		AddedAt:  time.Now().UTC(),
		Version:  1,
	}, nil
}

// Purchase is the state written by markItemPurchased. It replaces any earlier
// purchase state wholesale.
type Purchase struct {
	By      string
	At      time.Time
	Cost    *float64
	Details json.RawMessage
}

// NewPurchase validates cost and details and stamps the purchase time.
// A JSON null for details is stored as absent.
func NewPurchase(by string, cost *float64, details json.RawMessage) (Purchase, error) {
	if cost != nil && (*cost < 0 || math.IsNaN(*cost) || math.IsInf(*cost, 0)) {
		return Purchase{}, fmt.Errorf("%w: cost must be a non-negative number", domain.ErrValidation)
	}
	details = bytes.TrimSpace(details)
	if len(details) == 0 || bytes.Equal(details, []byte("null")) {
		details = nil
	} else if !json.Valid(details) {
		return Purchase{}, fmt.Errorf("%w: itemDetails must be valid JSON", domain.ErrValidation)
	}
	return Purchase{By: by, At: time.Now().UTC(), Cost: cost, Details: details}, nil
}

// Apply overwrites the purchase fields of i with p.
func (i *Item) Apply(p Purchase) {
	at := p.At
	i.Purchased = true
	i.PurchasedBy = p.By
	i.PurchasedAt = &at
	i.Cost = p.Cost
	i.ItemDetails = p.Details
}
