package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	stockdomain "github.com/ghuser/shelfwatch/services/stock/domain"
	"github.com/ghuser/shelfwatch/services/stock/domain/repositories"
	domainsvcs "github.com/ghuser/shelfwatch/services/stock/domain/services"
)

// ImportResult reports the outcome of one bulk name import.
type ImportResult struct {
	Accepted int
	Rejected int
	Upserted int
}

// ImportService applies bulk name imports: pure reconciliation followed
// by one atomic batch commit.
type ImportService struct {
	names repositories.CommonNameRepository
}

// NewImportService returns an ImportService over the given repository.
func NewImportService(names repositories.CommonNameRepository) *ImportService {
	return &ImportService{names: names}
}

// Import reconciles raw into canonical name upserts and commits them in
// one all-or-nothing batch. Re-importing the same text is idempotent:
// upserts target the normalized name key, never append.
//
// On commit failure the whole import is reported failed — no per-line
// partial state exists to report.
func (s *ImportService) Import(ctx context.Context, userID uuid.UUID, raw string) (ImportResult, error) {
	rec := domainsvcs.ReconcileImport(raw)
	res := ImportResult{Accepted: rec.Accepted, Rejected: rec.Rejected}

	if len(rec.Upserts) == 0 {
		return res, stockdomain.ErrEmptyImport
	}

	if err := s.names.UpsertBatch(ctx, userID, rec.Upserts); err != nil {
		return res, fmt.Errorf("commit import: %w", err)
	}

	res.Upserted = len(rec.Upserts)
	return res, nil
}
