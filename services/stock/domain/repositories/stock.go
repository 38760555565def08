package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shelfwatch/services/stock/domain/models"
)

// StockItemRepository is the persistence interface for the StockItem
// aggregate. The domain layer owns this interface; infrastructure
// implements it. Every operation is scoped to one user.
type StockItemRepository interface {
	Save(ctx context.Context, item *models.StockItem) error

	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.StockItem, error)

	// FindByUserID returns the user's full stock snapshot, newest first.
	// Consumers always replace their view with the returned slice.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.StockItem, error)

	// Update persists changes to an existing StockItem. The identifier
	// is immutable; only mutable fields are written.
	Update(ctx context.Context, item *models.StockItem) error

	// Delete removes an item by ID scoped to the given user.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// ListUserIDs returns every user that currently owns at least one
	// stock item. Used by the nightly expiry sweep.
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// CommonNameRepository is the persistence interface for curated
// autocompletion names.
type CommonNameRepository interface {
	// FindByUserID returns all curated names for the user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.CommonName, error)

	// Upsert writes one name keyed by its normalized key.
	Upsert(ctx context.Context, userID uuid.UUID, name models.CommonName) error

	// UpsertBatch writes all names in one transaction. The commit is
	// all-or-nothing: on error no name is assumed written.
	UpsertBatch(ctx context.Context, userID uuid.UUID, names []models.CommonName) error

	// Delete removes the curated name with the given key.
	Delete(ctx context.Context, userID uuid.UUID, key string) error
}
