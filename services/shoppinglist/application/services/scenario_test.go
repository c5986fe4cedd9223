package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
)

func TestWeeklyGroceriesScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.svc

	l, err := svc.Lists.Create(ctx, "Weekly Groceries", "user123", []string{"user456", "user789", "user123"})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.AllowedUsers) != 3 {
		t.Fatalf("allowedUsers = %v, want 3 entries", l.AllowedUsers)
	}

	eggs, err := svc.Items.Add(ctx, AddItemInput{ListID: l.ID, Name: "Eggs", Quantity: 1, AddedBy: "user123"})
	if err != nil {
		t.Fatal(err)
	}
	if eggs.Purchased {
		t.Fatal("new item must not be purchased")
	}

	cost := 2.99
	eggs, err = svc.Items.MarkPurchased(ctx, PurchaseInput{
		ListID:      l.ID,
		ItemID:      eggs.ID,
		PurchasedBy: "user123",
		Cost:        &cost,
		ItemDetails: json.RawMessage(`{"brand":"BrandA","barcode":"123456789"}`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !eggs.Purchased || *eggs.Cost != 2.99 {
		t.Fatalf("purchase not reflected: %+v", eggs)
	}

	res, err := svc.Lists.AddUser(ctx, l.ID, "user123", "user456")
	if err != nil || res.Status != StatusAlreadyMember {
		t.Fatalf("re-add = %+v, %v", res, err)
	}

	res, err = svc.Lists.RemoveUser(ctx, l.ID, "user123", "user456")
	if err != nil || len(res.List.AllowedUsers) != 2 {
		t.Fatalf("remove = %+v, %v", res, err)
	}

	if err := svc.Items.Remove(ctx, l.ID, eggs.ID, "user123"); err != nil {
		t.Fatal(err)
	}
	items, err := svc.Items.List(ctx, l.ID, "user123")
	if err != nil || len(items) != 0 {
		t.Fatalf("items = %v, %v", items, err)
	}

	if err := svc.Deletion.DeleteList(ctx, l.ID, "user789"); !errors.Is(err, domain.ErrAuthorization) {
		t.Fatalf("non-creator delete: expected ErrAuthorization, got %v", err)
	}
	if err := svc.Deletion.DeleteList(ctx, l.ID, "user123"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Lists.Get(ctx, l.ID, "user123"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if left, _ := f.store.Items().ListByList(ctx, l.ID); len(left) != 0 {
		t.Fatalf("%d items survived the delete", len(left))
	}
}
