package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicStockChanged is the Watermill topic published whenever a user's
// stock collection changes (create, update or delete).
const TopicStockChanged = "stock.changed"

// Change kinds carried in StockChangedEvent.Kind.
const (
	KindCreated = "created"
	KindUpdated = "updated"
	KindDeleted = "deleted"
)

// StockChangedEvent notifies consumers that one user's stock changed.
// Consumers must treat it as a trigger to reload the full snapshot for
// that user, never as an incremental diff — events may arrive out of
// order or coalesced.
type StockChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	Kind       string    `json:"kind"`
	ItemID     uuid.UUID `json:"item_id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}
