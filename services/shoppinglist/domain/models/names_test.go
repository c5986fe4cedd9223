package models

import (
	"strings"
	"testing"
)

func TestNewListName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := NewListName("  Weekly Groceries \n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "Weekly Groceries" {
			t.Fatalf("expected %q, got %q", "Weekly Groceries", n.String())
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		if _, err := NewListName(""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("whitespace only returns error", func(t *testing.T) {
		if _, err := NewListName(" \t "); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("255 multi-byte characters is valid", func(t *testing.T) {
		s := strings.Repeat("é", 255)
		if _, err := NewListName(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("256 characters returns error", func(t *testing.T) {
		if _, err := NewListName(strings.Repeat("x", 256)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestNewItemName(t *testing.T) {
	n, err := NewItemName(" Eggs ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "Eggs" {
		t.Fatalf("expected %q, got %q", "Eggs", n.String())
	}
	if _, err := NewItemName("   "); err == nil {
		t.Fatal("expected error for blank item name")
	}
}
