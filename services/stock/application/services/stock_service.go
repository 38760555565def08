package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/shelfwatch/pkg/cache"
	stockdomain "github.com/ghuser/shelfwatch/services/stock/domain"
	"github.com/ghuser/shelfwatch/services/stock/domain/models"
	"github.com/ghuser/shelfwatch/services/stock/domain/repositories"
	domainsvcs "github.com/ghuser/shelfwatch/services/stock/domain/services"
)

// StockService orchestrates creation, retrieval and mutation of stock
// items. Change notifications are published by the repository layer
// (outbox pattern). Full-snapshot reads are served from the Redis
// snapshot cache when available.
type StockService struct {
	repo      repositories.StockItemRepository
	snapshots *pkgcache.StockSnapshotCache
}

// NewStockService returns a StockService wired with the given
// repository and snapshot cache (nil cache disables read-through).
func NewStockService(repo repositories.StockItemRepository, snapshots *pkgcache.StockSnapshotCache) *StockService {
	return &StockService{repo: repo, snapshots: snapshots}
}

// CreateParams are the write fields of a stock item. Quantity and
// AlarmThresholdDays are coerced to their minimums by the aggregate,
// never rejected; Category falls back to the default when unrecognized.
type CreateParams struct {
	Name               string
	Quantity           int
	ExpirationDate     time.Time
	AlarmThresholdDays int
	Category           string
}

// Create validates and persists a new StockItem.
func (s *StockService) Create(ctx context.Context, userID uuid.UUID, p CreateParams) (*models.StockItem, error) {
	name, err := models.NewItemName(p.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", stockdomain.ErrInvalidItem, err)
	}

	item := models.NewStockItem(userID, name, p.Quantity, p.ExpirationDate, p.AlarmThresholdDays, models.ParseCategory(p.Category))

	if err := domainsvcs.ValidateItemForWrite(item); err != nil {
		return nil, fmt.Errorf("%w: %w", stockdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save stock item: %w", err)
	}

	s.invalidate(userID)
	return item, nil
}

// GetByID retrieves a StockItem by ID scoped to the given user.
func (s *StockService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.StockItem, error) {
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

// List returns the user's full stock snapshot using a read-through
// cache pattern:
//  1. Check the Redis snapshot cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
//
// Expiration statuses are never part of the snapshot; callers classify
// at read time with their own now.
func (s *StockService) List(ctx context.Context, userID uuid.UUID) ([]*models.StockItem, error) {
	if s.snapshots != nil {
		// A redis.Nil miss and a degraded cache both fall through to
		// Postgres; the snapshot cache is never load-bearing.
		if cached, err := s.snapshots.Get(ctx, userID); err == nil {
			return fromCached(cached), nil
		}
	}

	items, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}

	if s.snapshots != nil {
		warm := toCached(items)
		go func() {
			_ = s.snapshots.Set(context.Background(), userID, warm)
		}()
	}

	return items, nil
}

// UpdateParams mirror CreateParams for in-place mutation.
type UpdateParams = CreateParams

// Update applies new field values to an existing item. The identifier
// stays immutable.
func (s *StockService) Update(ctx context.Context, userID, id uuid.UUID, p UpdateParams) (*models.StockItem, error) {
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get stock item: %w", err)
	}

	name, err := models.NewItemName(p.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", stockdomain.ErrInvalidItem, err)
	}

	item.ApplyUpdate(name, p.Quantity, p.ExpirationDate, p.AlarmThresholdDays, models.ParseCategory(p.Category))
	if err := domainsvcs.ValidateItemForWrite(item); err != nil {
		return nil, fmt.Errorf("%w: %w", stockdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update stock item: %w", err)
	}

	s.invalidate(userID)
	return item, nil
}

// Delete removes an item by ID scoped to the given user.
func (s *StockService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	s.invalidate(userID)
	return nil
}

// invalidate drops the cached snapshot after a write so the next read
// observes the store's state. Best-effort: the worker re-warms it from
// the stock.changed event.
func (s *StockService) invalidate(userID uuid.UUID) {
	if s.snapshots == nil {
		return
	}
	_ = s.snapshots.Invalidate(context.Background(), userID)
}

func toCached(items []*models.StockItem) []pkgcache.CachedStockItem {
	out := make([]pkgcache.CachedStockItem, len(items))
	for i, it := range items {
		out[i] = pkgcache.CachedStockItem{
			ID:                 it.ID,
			UserID:             it.UserID,
			Name:               it.Name.String(),
			Quantity:           it.Quantity,
			ExpirationDate:     it.ExpirationDate,
			AlarmThresholdDays: it.AlarmThresholdDays,
			Category:           it.Category.String(),
			CreatedAt:          it.CreatedAt,
		}
	}
	return out
}

func fromCached(cached []pkgcache.CachedStockItem) []*models.StockItem {
	out := make([]*models.StockItem, len(cached))
	for i, c := range cached {
		out[i] = &models.StockItem{
			ID:                 c.ID,
			UserID:             c.UserID,
			Name:               models.ItemName(c.Name),
			Quantity:           c.Quantity,
			ExpirationDate:     c.ExpirationDate,
			AlarmThresholdDays: c.AlarmThresholdDays,
			Category:           models.ParseCategory(c.Category),
			CreatedAt:          c.CreatedAt,
		}
	}
	return out
}
