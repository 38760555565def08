package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	stockdomain "github.com/ghuser/shelfwatch/services/stock/domain"
	"github.com/ghuser/shelfwatch/services/stock/domain/models"
	"github.com/ghuser/shelfwatch/services/stock/domain/repositories"
	domainsvcs "github.com/ghuser/shelfwatch/services/stock/domain/services"
)

// NameService serves the unified autocompletion list and curated-name
// maintenance.
type NameService struct {
	stock     *StockService
	names     repositories.CommonNameRepository
	collation language.Tag
}

// NewNameService returns a NameService sorting with the given collation tag.
func NewNameService(stock *StockService, names repositories.CommonNameRepository, collation language.Tag) *NameService {
	return &NameService{stock: stock, names: names, collation: collation}
}

// UnifiedNames merges the names on current stock with the curated set
// into one sorted, deduplicated candidate list. Recomputed on every
// call — both sources can change underneath us.
func (s *NameService) UnifiedNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	items, err := s.stock.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	curated, err := s.names.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list common names: %w", err)
	}

	stockNames := make([]string, len(items))
	for i, it := range items {
		stockNames[i] = it.Name.String()
	}
	curatedNames := make([]string, len(curated))
	for i, cn := range curated {
		curatedNames[i] = cn.Name
	}

	return domainsvcs.UnifyNames(stockNames, curatedNames, s.collation), nil
}

// Save upserts one curated name.
func (s *NameService) Save(ctx context.Context, userID uuid.UUID, name string) (models.CommonName, error) {
	cn, err := models.NewCommonName(name)
	if err != nil {
		return models.CommonName{}, fmt.Errorf("%w: %w", stockdomain.ErrInvalidItem, err)
	}
	if err := s.names.Upsert(ctx, userID, cn); err != nil {
		return models.CommonName{}, fmt.Errorf("save common name: %w", err)
	}
	return cn, nil
}

// Delete removes the curated name with the given key.
func (s *NameService) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	if err := s.names.Delete(ctx, userID, key); err != nil {
		return fmt.Errorf("delete common name: %w", err)
	}
	return nil
}
