package models

import (
	"fmt"
	"strings"
)

// ItemName is a value object representing a valid stock item name.
// Construction trims surrounding whitespace; the trimmed value must be
// non-empty and at most 255 characters.
type ItemName string

const maxItemNameLength = 255

// NewItemName trims s and constructs a valid ItemName, or returns an
// error if constraints are violated.
func NewItemName(s string) (ItemName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("item name must not be empty")
	}
	if len(s) > maxItemNameLength {
		return "", fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
