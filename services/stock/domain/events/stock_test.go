package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/services/stock/domain/events"
)

func TestStockChangedEvent_JSONRoundTrip(t *testing.T) {
	original := events.StockChangedEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		Kind:       events.KindUpdated,
		ItemID:     uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		UserID:     uuid.MustParse("660e8400-e29b-41d4-a716-446655440000"),
		Name:       "Whole Milk",
		OccurredAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.StockChangedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.Kind != original.Kind {
		t.Errorf("Kind: got %q, want %q", decoded.Kind, original.Kind)
	}
	if decoded.ItemID != original.ItemID || decoded.UserID != original.UserID {
		t.Errorf("IDs differ: %+v vs %+v", decoded, original)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestStockChangedEvent_JSONFieldNames(t *testing.T) {
	evt := events.StockChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Kind:       events.KindCreated,
		ItemID:     uuid.New(),
		UserID:     uuid.New(),
		Name:       "Whole Milk",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "kind", "item_id", "user_id", "name", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopicStockChanged_Value(t *testing.T) {
	if events.TopicStockChanged != "stock.changed" {
		t.Errorf("expected %q, got %q", "stock.changed", events.TopicStockChanged)
	}
}

func TestChangeKinds(t *testing.T) {
	kinds := map[string]string{
		events.KindCreated: "created",
		events.KindUpdated: "updated",
		events.KindDeleted: "deleted",
	}
	for got, want := range kinds {
		if got != want {
			t.Errorf("kind %q, want %q", got, want)
		}
	}
}
