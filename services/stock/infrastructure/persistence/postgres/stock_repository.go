package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/shelfwatch/pkg/database"
	"github.com/ghuser/shelfwatch/pkg/events"
	stockdomain "github.com/ghuser/shelfwatch/services/stock/domain"
	domainevents "github.com/ghuser/shelfwatch/services/stock/domain/events"
	"github.com/ghuser/shelfwatch/services/stock/domain/models"
)

// StockItemRepository implements repositories.StockItemRepository
// against PostgreSQL. Writes publish a StockChangedEvent within the
// same transaction (outbox pattern), so a committed row always has a
// matching change notification.
type StockItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewStockItemRepository returns a StockItemRepository backed by the
// given pool and event bus. A nil bus disables event publishing.
func NewStockItemRepository(db *database.Database, bus *events.EventBus) *StockItemRepository {
	return &StockItemRepository{db: db, bus: bus}
}

// Save persists a new StockItem and publishes stock.changed/created.
// Returns ErrItemAlreadyExists on unique constraint violations.
func (r *StockItemRepository) Save(ctx context.Context, item *models.StockItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO stock_items (id, user_id, name, quantity, expiration_date, alarm_threshold_days, category, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.UserID, item.Name.String(), item.Quantity,
			item.ExpirationDate, item.AlarmThresholdDays, item.Category.String(), item.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return stockdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert stock item: %w", err)
		}
		return r.publishChanged(tx, domainevents.KindCreated, item.UserID, item.ID, item.Name.String())
	})
}

// GetByID retrieves a StockItem by ID scoped to the given user.
// Returns ErrItemNotFound if no row matches.
func (r *StockItemRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.StockItem, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, user_id, name, quantity, expiration_date, alarm_threshold_days, category, created_at
		FROM stock_items WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, stockdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query stock item: %w", err)
	}
	return item, nil
}

// FindByUserID returns the user's full stock snapshot, newest first.
func (r *StockItemRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.StockItem, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, user_id, name, quantity, expiration_date, alarm_threshold_days, category, created_at
		FROM stock_items WHERE user_id = $1
		ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query stock items: %w", err)
	}
	defer rows.Close()

	var items []*models.StockItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock items: %w", err)
	}
	return items, nil
}

// Update persists mutable fields of an existing StockItem and publishes
// stock.changed/updated. Returns ErrItemNotFound for a missing row.
func (r *StockItemRepository) Update(ctx context.Context, item *models.StockItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE stock_items
			SET name = $3, quantity = $4, expiration_date = $5, alarm_threshold_days = $6, category = $7
			WHERE id = $1 AND user_id = $2`,
			item.ID, item.UserID, item.Name.String(), item.Quantity,
			item.ExpirationDate, item.AlarmThresholdDays, item.Category.String(),
		)
		if err != nil {
			return fmt.Errorf("update stock item: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return stockdomain.ErrItemNotFound
		}
		return r.publishChanged(tx, domainevents.KindUpdated, item.UserID, item.ID, item.Name.String())
	})
}

// Delete removes an item by ID scoped to the given user and publishes
// stock.changed/deleted. Returns ErrItemNotFound for a missing row.
func (r *StockItemRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM stock_items WHERE id = $1 AND user_id = $2`, id, userID)
		if err != nil {
			return fmt.Errorf("delete stock item: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return stockdomain.ErrItemNotFound
		}
		return r.publishChanged(tx, domainevents.KindDeleted, userID, id, "")
	})
}

// ListUserIDs returns every user that currently owns at least one stock item.
func (r *StockItemRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT DISTINCT user_id FROM stock_items ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("query stock users: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock users: %w", err)
	}
	return ids, nil
}

func (r *StockItemRepository) publishChanged(tx *sql.Tx, kind string, userID, itemID uuid.UUID, name string) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.StockChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Kind:       kind,
		ItemID:     itemID,
		UserID:     userID,
		Name:       name,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicStockChanged, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.StockItem, error) {
	var (
		item     models.StockItem
		name     string
		category string
	)
	if err := row.Scan(
		&item.ID, &item.UserID, &name, &item.Quantity,
		&item.ExpirationDate, &item.AlarmThresholdDays, &category, &item.CreatedAt,
	); err != nil {
		return nil, err
	}
	item.Name = models.ItemName(name)
	item.Category = models.ParseCategory(category)
	return &item, nil
}
