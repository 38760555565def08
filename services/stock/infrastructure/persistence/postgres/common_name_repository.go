package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/pkg/database"
	"github.com/ghuser/shelfwatch/services/stock/domain/models"
)

// CommonNameRepository implements repositories.CommonNameRepository
// against PostgreSQL. Rows are keyed by (user_id, key) where key is the
// normalized NameKey, so re-importing the same names is idempotent.
type CommonNameRepository struct {
	db *database.Database
}

// NewCommonNameRepository returns a CommonNameRepository backed by the given pool.
func NewCommonNameRepository(db *database.Database) *CommonNameRepository {
	return &CommonNameRepository{db: db}
}

// FindByUserID returns all curated names for the user ordered by key.
func (r *CommonNameRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.CommonName, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT key, name FROM common_names WHERE user_id = $1 ORDER BY key`, userID)
	if err != nil {
		return nil, fmt.Errorf("query common names: %w", err)
	}
	defer rows.Close()

	var names []models.CommonName
	for rows.Next() {
		var cn models.CommonName
		if err := rows.Scan(&cn.Key, &cn.Name); err != nil {
			return nil, fmt.Errorf("scan common name: %w", err)
		}
		names = append(names, cn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate common names: %w", err)
	}
	return names, nil
}

// Upsert writes one curated name, overwriting any existing row with the same key.
func (r *CommonNameRepository) Upsert(ctx context.Context, userID uuid.UUID, name models.CommonName) error {
	if _, err := r.db.DB().ExecContext(ctx, upsertSQL, userID, name.Key, name.Name); err != nil {
		return fmt.Errorf("upsert common name: %w", err)
	}
	return nil
}

// UpsertBatch writes all names in a single transaction. The commit is
// all-or-nothing: on error the transaction rolls back and no name is
// assumed written.
func (r *CommonNameRepository) UpsertBatch(ctx context.Context, userID uuid.UUID, names []models.CommonName) error {
	if len(names) == 0 {
		return nil
	}
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertSQL)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer stmt.Close()

		for _, cn := range names {
			if _, err := stmt.ExecContext(ctx, userID, cn.Key, cn.Name); err != nil {
				return fmt.Errorf("upsert common name %q: %w", cn.Key, err)
			}
		}
		return nil
	})
}

// Delete removes the curated name with the given key.
func (r *CommonNameRepository) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	if _, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM common_names WHERE user_id = $1 AND key = $2`, userID, key); err != nil {
		return fmt.Errorf("delete common name: %w", err)
	}
	return nil
}

const upsertSQL = `
	INSERT INTO common_names (user_id, key, name)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, key) DO UPDATE SET name = EXCLUDED.name`
