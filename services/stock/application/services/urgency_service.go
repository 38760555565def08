package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/services/stock/domain/models"
	domainsvcs "github.com/ghuser/shelfwatch/services/stock/domain/services"
)

// ClassifiedItem pairs a stock item with its classification at the
// report's moment.
type ClassifiedItem struct {
	Item           *models.StockItem
	Classification domainsvcs.Classification
}

// UrgencyReport is the derived urgency view handed to presentation.
type UrgencyReport struct {
	All          []ClassifiedItem
	Warning      []ClassifiedItem
	Expired      []ClassifiedItem
	AlertPending bool
}

// Urgent reports whether the urgent set (Warning ∪ Expired) is non-empty.
func (r *UrgencyReport) Urgent() bool {
	return len(r.Warning) > 0 || len(r.Expired) > 0
}

// GateStore persists the alert gate between computations. The Redis
// implementation lives in pkg/cache; tests use an in-memory one.
type GateStore interface {
	Pending(ctx context.Context, userID uuid.UUID) (bool, error)
	SetPending(ctx context.Context, userID uuid.UUID, v bool) error
	WasUrgent(ctx context.Context, userID uuid.UUID) (bool, error)
	SetWasUrgent(ctx context.Context, userID uuid.UUID, v bool) error
}

// UrgencyService computes the urgency buckets from the latest full
// snapshot and drives the deduplicated alert lifecycle.
//
// The alert-pending flag flips true only when the urgent set
// transitions from empty to non-empty (including the first computation
// after load), and flips false only on explicit acknowledgment.
// Content changes of an already non-empty urgent set never re-trigger
// it, so every tick does not storm the user with alerts.
type UrgencyService struct {
	stock *StockService
	gate  GateStore
	now   func() time.Time
}

// timeNow is swapped out in tests.
var timeNow = time.Now

// NewUrgencyService returns an UrgencyService over the given stock
// reader and gate store.
func NewUrgencyService(stock *StockService, gate GateStore) *UrgencyService {
	return &UrgencyService{stock: stock, gate: gate, now: func() time.Time { return timeNow() }}
}

// Aggregate classifies every item with its own threshold at now and
// partitions the result. It iterates a private copy of items, so a
// collection that mutates concurrently with aggregation is safe; it
// never consults or updates the alert gate.
func Aggregate(items []*models.StockItem, now time.Time) UrgencyReport {
	snapshot := make([]*models.StockItem, len(items))
	copy(snapshot, items)

	report := UrgencyReport{All: make([]ClassifiedItem, 0, len(snapshot))}
	for _, item := range snapshot {
		if item == nil {
			continue
		}
		ci := ClassifiedItem{
			Item:           item,
			Classification: domainsvcs.Classify(item.ExpirationDate, item.AlarmThresholdDays, now),
		}
		report.All = append(report.All, ci)
		switch ci.Classification.Status {
		case models.StatusWarning:
			report.Warning = append(report.Warning, ci)
		case models.StatusExpired:
			report.Expired = append(report.Expired, ci)
		}
	}
	return report
}

// Report loads the user's latest snapshot, aggregates it and advances
// the alert gate.
func (s *UrgencyService) Report(ctx context.Context, userID uuid.UUID) (*UrgencyReport, error) {
	items, err := s.stock.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := Aggregate(items, s.now())
	pending, err := s.Observe(ctx, userID, report.Urgent())
	if err != nil {
		return nil, err
	}
	report.AlertPending = pending
	return &report, nil
}

// Observe records one urgency computation outcome and returns the
// resulting alert-pending flag. Exported so the event worker can drive
// the same gate from stock.changed notifications.
func (s *UrgencyService) Observe(ctx context.Context, userID uuid.UUID, urgent bool) (bool, error) {
	was, err := s.gate.WasUrgent(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("alert gate read: %w", err)
	}

	if urgent && !was {
		if err := s.gate.SetPending(ctx, userID, true); err != nil {
			return false, fmt.Errorf("alert gate raise: %w", err)
		}
	}
	if urgent != was {
		if err := s.gate.SetWasUrgent(ctx, userID, urgent); err != nil {
			return false, fmt.Errorf("alert gate record: %w", err)
		}
	}

	pending, err := s.gate.Pending(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("alert gate read: %w", err)
	}
	return pending, nil
}

// Acknowledge clears the alert-pending flag. The gate fires again only
// after the urgent set empties completely and refills.
func (s *UrgencyService) Acknowledge(ctx context.Context, userID uuid.UUID) error {
	if err := s.gate.SetPending(ctx, userID, false); err != nil {
		return fmt.Errorf("alert gate ack: %w", err)
	}
	return nil
}
