package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minNameLength = 1
	maxNameLength = 255
)

// ListName is a value object holding a trimmed, non-empty list name.
type ListName string

// NewListName trims s and checks 1 <= runes <= 255.
func NewListName(s string) (ListName, error) {
	n, err := normalizeName("list", s)
	return ListName(n), err
}

// String returns the underlying string value.
func (n ListName) String() string {
	return string(n)
}

// ItemName is a value object holding a trimmed, non-empty item name.
type ItemName string

// NewItemName trims s and checks 1 <= runes <= 255.
func NewItemName(s string) (ItemName, error) {
	n, err := normalizeName("item", s)
	return ItemName(n), err
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}

func normalizeName(what, s string) (string, error) {
	s = strings.TrimSpace(s)
	l := utf8.RuneCountInString(s)
	if l < minNameLength {
		return "", fmt.Errorf("%s name cannot be empty", what)
	}
	if l > maxNameLength {
		return "", fmt.Errorf("%s name must not exceed %d characters", what, maxNameLength)
	}
	return s, nil
}
