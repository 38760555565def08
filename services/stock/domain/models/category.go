package models

import "strings"

// Category is the storage location of a stock item. The set is fixed;
// unknown or absent values fall back to the first entry.
type Category string

const (
	CategoryFridge  Category = "fridge"
	CategoryFreezer Category = "freezer"
	CategoryPantry  Category = "pantry"
	CategorySpice   Category = "spice"
	CategoryOther   Category = "other"
)

// Categories lists all valid categories in display order.
// CategoryFridge is first and doubles as the default.
var Categories = []Category{
	CategoryFridge,
	CategoryFreezer,
	CategoryPantry,
	CategorySpice,
	CategoryOther,
}

// ParseCategory matches s against the fixed category set,
// case-insensitively. Unrecognized or empty input yields the default.
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if s == string(c) {
			return c
		}
	}
	return Categories[0]
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}
