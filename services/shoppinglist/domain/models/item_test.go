package models

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
)

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		in      int
		want    Quantity
		wantErr bool
	}{
		{0, 1, false},
		{1, 1, false},
		{12, 12, false},
		{-1, 0, true},
	}
	for _, tt := range tests {
		got, err := NewQuantity(tt.in)
		if tt.wantErr {
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("NewQuantity(%d): expected validation error, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("NewQuantity(%d) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestNewItem(t *testing.T) {
	listID := uuid.New()
	item, err := NewItem(listID, ItemName("Milk"), 2, " gallon ", "user123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ListID != listID || item.ID == uuid.Nil {
		t.Fatalf("unexpected keys: %+v", item)
	}
	if item.Purchased || item.Cost != nil || item.ItemDetails != nil {
		t.Fatalf("new item must be unpurchased: %+v", item)
	}
	if item.Unit != "gallon" {
		t.Fatalf("expected trimmed unit, got %q", item.Unit)
	}

	if _, err := NewItem(listID, ItemName("Milk"), 1, strings.Repeat("u", MaxUnitLength+1), "user123"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for long unit, got %v", err)
	}
}

func TestNewPurchase(t *testing.T) {
	cost := 2.99
	negative := -0.01
	nan := math.NaN()

	t.Run("valid", func(t *testing.T) {
		p, err := NewPurchase("user123", &cost, json.RawMessage(`{"brand":"BrandA","barcode":"123456789"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *p.Cost != 2.99 || p.At.IsZero() {
			t.Fatalf("unexpected purchase %+v", p)
		}
	})

	t.Run("null details stored as absent", func(t *testing.T) {
		p, err := NewPurchase("u", nil, json.RawMessage(" null "))
		if err != nil || p.Details != nil {
			t.Fatalf("expected nil details, got %s err=%v", p.Details, err)
		}
	})

	t.Run("scalar details accepted", func(t *testing.T) {
		if _, err := NewPurchase("u", nil, json.RawMessage(`"organic"`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	for name, c := range map[string]*float64{"negative cost": &negative, "NaN cost": &nan} {
		t.Run(name, func(t *testing.T) {
			if _, err := NewPurchase("u", c, nil); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	t.Run("invalid details", func(t *testing.T) {
		if _, err := NewPurchase("u", nil, json.RawMessage(`{broken`)); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestItem_ApplyOverwrites(t *testing.T) {
	item, _ := NewItem(uuid.New(), ItemName("Eggs"), 1, "", "user123")
	first := 5.0
	p1, _ := NewPurchase("user123", &first, json.RawMessage(`{"brand":"A"}`))
	item.Apply(p1)

	p2, _ := NewPurchase("user456", nil, nil)
	item.Apply(p2)

	if !item.Purchased || item.PurchasedBy != "user456" {
		t.Fatalf("expected second purchase to win: %+v", item)
	}
	if item.Cost != nil || item.ItemDetails != nil {
		t.Fatalf("expected prior cost/details to be overwritten: %+v", item)
	}
}

func TestReceiptObjectKey(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	if got := ReceiptObjectKey(id); got != "receipts/123e4567-e89b-12d3-a456-426614174000.jpg" {
		t.Fatalf("unexpected key %q", got)
	}
	r := NewReceipt(id, uuid.New(), "user123", "https://example/receipts/x.jpg")
	if r.ObjectKey != ReceiptObjectKey(id) || r.UploadedAt.IsZero() {
		t.Fatalf("unexpected receipt %+v", r)
	}
}
