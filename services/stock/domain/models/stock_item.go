package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAlarmThresholdDays is applied when a new item does not specify
// its own warning lead time.
const DefaultAlarmThresholdDays = 7

// StockItem is the core aggregate for this bounded context: one tracked
// perishable item belonging to one user.
type StockItem struct {
	ID                 uuid.UUID
	UserID             uuid.UUID // owner scope — always filter by this in queries
	Name               ItemName
	Quantity           int
	ExpirationDate     time.Time // calendar date; time-of-day is not meaningful
	AlarmThresholdDays int
	Category           Category
	CreatedAt          time.Time
}

// NewStockItem constructs a valid StockItem with generated ID and current
// timestamp. Quantity and threshold are coerced to their minimums rather
// than rejected, so a draft with quantity 0 always persists as 1.
func NewStockItem(userID uuid.UUID, name ItemName, quantity int, expirationDate time.Time, thresholdDays int, category Category) *StockItem {
	if thresholdDays < 1 {
		thresholdDays = DefaultAlarmThresholdDays
	}
	return &StockItem{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               name,
		Quantity:           coerceMin1(quantity),
		ExpirationDate:     DateOnly(expirationDate),
		AlarmThresholdDays: thresholdDays,
		Category:           category,
		CreatedAt:          time.Now().UTC(),
	}
}

// ApplyUpdate mutates the item in place from new field values.
// ID, UserID and CreatedAt are immutable.
func (s *StockItem) ApplyUpdate(name ItemName, quantity int, expirationDate time.Time, thresholdDays int, category Category) {
	s.Name = name
	s.Quantity = coerceMin1(quantity)
	s.ExpirationDate = DateOnly(expirationDate)
	s.AlarmThresholdDays = coerceMin1(thresholdDays)
	s.Category = category
}

// DateOnly truncates t to its calendar date, dropping the time component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func coerceMin1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
