package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/services/stock/domain/models"
)

// ValidateName enforces business rules for ItemName beyond the
// structural constraints enforced by the ItemName constructor
// (trimmed, non-empty, max 255).
//
// Business rules:
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
func ValidateName(name models.ItemName) error {
	s := name.String()

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("item name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("item name must not contain consecutive spaces")
	}

	return nil
}

// ValidateItemForWrite performs cross-field validation on a
// fully-constructed StockItem before it is persisted. It assumes the
// item was built via models.NewStockItem or ApplyUpdate (so coercions
// already ran) and adds checks that span multiple fields.
func ValidateItemForWrite(item *models.StockItem) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if item.UserID == uuid.Nil {
		return fmt.Errorf("user_id must be set")
	}

	if item.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if item.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	if item.AlarmThresholdDays < 1 {
		return fmt.Errorf("alarm threshold must be at least 1 day")
	}

	if item.ExpirationDate.IsZero() {
		return fmt.Errorf("expiration date must be set")
	}

	return nil
}
