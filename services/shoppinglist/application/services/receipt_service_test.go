package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
)

func TestReceiptService_GenerateUploadURL(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	l := f.createList(t, "Groceries", "owner")

	grant, err := f.svc.Receipts.GenerateUploadURL(ctx, l.ID, "owner")
	if err != nil {
		t.Fatalf("GenerateUploadURL: %v", err)
	}
	key := models.ReceiptObjectKey(grant.ReceiptID)
	if !strings.Contains(grant.UploadURL, key) || grant.ImageURL != "https://receipts.example/"+key {
		t.Fatalf("unexpected grant %+v", grant)
	}
	if !strings.Contains(grant.UploadURL, "ct=image/jpeg") {
		t.Fatalf("upload must be restricted to image/jpeg: %s", grant.UploadURL)
	}
	if d := time.Until(grant.ExpiresAt); d < 59*time.Minute || d > time.Hour {
		t.Fatalf("expires in %v, want about 1h", d)
	}

	rc, err := f.store.Receipts().Get(ctx, grant.ReceiptID)
	if err != nil {
		t.Fatalf("metadata not persisted: %v", err)
	}
	if rc.ListID != l.ID || rc.UploadedBy != "owner" || rc.ImageURL != grant.ImageURL {
		t.Fatalf("unexpected receipt %+v", rc)
	}

	list, err := f.svc.Receipts.ListReceipts(ctx, l.ID, "owner")
	if err != nil || len(list) != 1 {
		t.Fatalf("ListReceipts = %v, %v", list, err)
	}

	if _, err := f.svc.Receipts.GenerateUploadURL(ctx, l.ID, "stranger"); !errors.Is(err, domain.ErrAuthorization) {
		t.Fatalf("expected ErrAuthorization, got %v", err)
	}
}

func TestReceiptService_UploadURLFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("presign fails", func(t *testing.T) {
		f := newFixture(t)
		l := f.createList(t, "Groceries", "owner")
		f.objects.presignErr = errors.New("expired credentials")

		_, err := f.svc.Receipts.GenerateUploadURL(ctx, l.ID, "owner")
		if domain.Kind(err) != domain.KindUploadURL {
			t.Fatalf("kind = %q (%v)", domain.Kind(err), err)
		}
		if got, _ := f.store.Receipts().ListByList(ctx, l.ID); len(got) != 0 {
			t.Fatal("no metadata may be written when presigning fails")
		}
	})

	t.Run("metadata write fails", func(t *testing.T) {
		f := newFixture(t)
		l := f.createList(t, "Groceries", "owner")
		svc := NewReceiptService(failingReceipts{f.store.Receipts()}, f.objects, f.svc.Lists, 0, testApp().Logger)

		_, err := svc.GenerateUploadURL(ctx, l.ID, "owner")
		if domain.Kind(err) != domain.KindUploadURL {
			t.Fatalf("kind = %q (%v)", domain.Kind(err), err)
		}
		if svc.TTL() != DefaultUploadTTL {
			t.Fatalf("TTL = %v", svc.TTL())
		}
	})
}

func TestReceiptService_Reconcile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	l := f.createList(t, "Groceries", "owner")

	uploaded, _ := f.svc.Receipts.GenerateUploadURL(ctx, l.ID, "owner")
	abandoned, _ := f.svc.Receipts.GenerateUploadURL(ctx, l.ID, "owner")
	f.objects.uploaded[models.ReceiptObjectKey(uploaded.ReceiptID)] = true

	tests := []struct {
		name string
		id   uuid.UUID
		want ReconcileOutcome
	}{
		{"uploaded", uploaded.ReceiptID, ReconcileConfirmed},
		{"abandoned", abandoned.ReceiptID, ReconcileDropped},
		{"already dropped", abandoned.ReceiptID, ReconcileMissing},
		{"unknown", uuid.New(), ReconcileMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.svc.Receipts.Reconcile(ctx, tt.id)
			if err != nil || got != tt.want {
				t.Fatalf("Reconcile = %q, %v; want %q", got, err, tt.want)
			}
		})
	}

	if _, err := f.store.Receipts().Get(ctx, uploaded.ReceiptID); err != nil {
		t.Fatalf("confirmed receipt must be kept: %v", err)
	}

	f.objects.existsErr = errors.New("timeout")
	if _, err := f.svc.Receipts.Reconcile(ctx, uploaded.ReceiptID); !errors.Is(err, domain.ErrDependency) {
		t.Fatalf("expected ErrDependency, got %v", err)
	}
}
