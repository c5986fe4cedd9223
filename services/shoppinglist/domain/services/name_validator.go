package services

import (
	"fmt"
	"unicode"
)

// ValidateName enforces the rules list and item names share beyond the
// structural checks of their constructors (trimmed, 1-255 runes):
// no control characters such as newlines or tabs.
func ValidateName(name string) error {
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("name must not contain control characters")
		}
	}
	return nil
}
