package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewStockItem(t *testing.T) {
	userID := uuid.New()
	expiration := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)

	t.Run("populates generated fields", func(t *testing.T) {
		item := NewStockItem(userID, "Whole Milk", 2, expiration, 5, CategoryFridge)

		if item.ID == uuid.Nil {
			t.Fatal("expected generated ID")
		}
		if item.UserID != userID {
			t.Fatalf("UserID = %v, want %v", item.UserID, userID)
		}
		if item.CreatedAt.IsZero() {
			t.Fatal("expected CreatedAt to be set")
		}
		if item.Quantity != 2 || item.AlarmThresholdDays != 5 {
			t.Fatalf("fields not carried over: %+v", item)
		}
	})

	t.Run("truncates expiration to calendar date", func(t *testing.T) {
		item := NewStockItem(userID, "Whole Milk", 1, expiration, 5, CategoryFridge)

		want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		if !item.ExpirationDate.Equal(want) {
			t.Fatalf("ExpirationDate = %v, want %v", item.ExpirationDate, want)
		}
	})

	t.Run("coerces quantity to minimum of one", func(t *testing.T) {
		for _, q := range []int{0, -3} {
			item := NewStockItem(userID, "Whole Milk", q, expiration, 5, CategoryFridge)
			if item.Quantity != 1 {
				t.Fatalf("quantity %d coerced to %d, want 1", q, item.Quantity)
			}
		}
	})

	t.Run("missing threshold falls back to default", func(t *testing.T) {
		item := NewStockItem(userID, "Whole Milk", 1, expiration, 0, CategoryFridge)
		if item.AlarmThresholdDays != DefaultAlarmThresholdDays {
			t.Fatalf("threshold = %d, want default %d", item.AlarmThresholdDays, DefaultAlarmThresholdDays)
		}
	})
}

func TestApplyUpdate(t *testing.T) {
	userID := uuid.New()
	created := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	newDate := time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC)

	item := NewStockItem(userID, "Whole Milk", 2, created, 7, CategoryFridge)
	originalID := item.ID
	originalCreatedAt := item.CreatedAt

	item.ApplyUpdate("Oat Milk", 3, newDate, 4, CategoryPantry)

	if item.ID != originalID || item.UserID != userID || !item.CreatedAt.Equal(originalCreatedAt) {
		t.Fatalf("immutable fields changed: %+v", item)
	}
	if item.Name != "Oat Milk" || item.Quantity != 3 || item.Category != CategoryPantry {
		t.Fatalf("mutable fields not applied: %+v", item)
	}
	if item.AlarmThresholdDays != 4 {
		t.Fatalf("threshold = %d, want 4", item.AlarmThresholdDays)
	}

	want := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	if !item.ExpirationDate.Equal(want) {
		t.Fatalf("ExpirationDate = %v, want %v", item.ExpirationDate, want)
	}

	t.Run("threshold coerced on update, not defaulted", func(t *testing.T) {
		item.ApplyUpdate("Oat Milk", 3, newDate, 0, CategoryPantry)
		if item.AlarmThresholdDays != 1 {
			t.Fatalf("threshold = %d, want 1", item.AlarmThresholdDays)
		}
	})
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 9, 15, 23, 59, 59, 999, time.UTC)
	got := DateOnly(in)
	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOnly(%v) = %v, want %v", in, got, want)
	}
}
