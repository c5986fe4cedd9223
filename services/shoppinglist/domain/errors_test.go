package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", ErrValidation, KindValidation},
		{"creator removal is validation", ErrCannotRemoveCreator, KindValidation},
		{"authentication", ErrAuthentication, KindAuthentication},
		{"authorization", fmt.Errorf("get list: %w", ErrAuthorization), KindAuthorization},
		{"list not found", ErrListNotFound, KindNotFound},
		{"item not found", ErrItemNotFound, KindNotFound},
		{"receipt not found", ErrReceiptNotFound, KindNotFound},
		{"capacity", ErrCapacity, KindCapacity},
		{"conflict", ErrConflict, KindConflict},
		{"upload url wrapping dependency", fmt.Errorf("%w: %w", ErrUploadURL, ErrDependency), KindUploadURL},
		{"dependency", ErrDependency, KindDependency},
		{"unknown", errors.New("boom"), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Fatalf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotFoundErrors_WrapSentinel(t *testing.T) {
	for _, err := range []error{ErrListNotFound, ErrItemNotFound, ErrReceiptNotFound} {
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("%v must wrap ErrNotFound", err)
		}
	}
	if ErrListNotFound.Error() != "list not found" {
		t.Fatalf("unexpected message: %q", ErrListNotFound.Error())
	}
}

func TestOp(t *testing.T) {
	if Op("list.get", "abc", nil) != nil {
		t.Fatal("Op(nil) must be nil")
	}

	err := Op("list.get", "abc", ErrListNotFound)
	if err.Error() != "list.get abc: list not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, ErrListNotFound) {
		t.Fatal("errors.Is must see through OpError")
	}

	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Key != "abc" {
		t.Fatalf("errors.As failed: %#v", opErr)
	}

	if got := Op("list.create", "", ErrValidation).Error(); got != "list.create: validation failed" {
		t.Fatalf("unexpected message without key: %q", got)
	}
}

func TestDependency(t *testing.T) {
	if Dependency(nil) != nil {
		t.Fatal("Dependency(nil) must be nil")
	}
	raw := errors.New("connection refused")
	if err := Dependency(raw); !errors.Is(err, ErrDependency) || !errors.Is(err, raw) {
		t.Fatalf("expected dependency wrapping, got %v", err)
	}
	if err := Dependency(ErrConflict); errors.Is(err, ErrDependency) {
		t.Fatal("domain errors must pass through unchanged")
	}
}
