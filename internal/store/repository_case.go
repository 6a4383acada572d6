package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
)

// caseRepository is the PostgreSQL-backed implementation of
// [CaseRepository]. The aggregate travels as one JSONB document: the
// document pipeline always produces a fully-formed next case state, so
// Replace is a whole-document write with no partial-update path.
type caseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCaseRepository constructs a [CaseRepository] backed by the provided
// database connection and logger.
func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	logger.Debug().Msg("creating case repository")
	return &caseRepository{db: db, logger: logger}
}

// Get implements [CaseRepository].
func (r *caseRepository) Get(ctx context.Context, caseID string) (models.Case, error) {
	log := logger.FromContext(ctx)

	var raw []byte
	err := r.db.QueryRowContext(ctx, getCase, caseID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Case{}, ErrCaseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.Get").Str("case_id", caseID).Msg("error getting case")
		return models.Case{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var c models.Case
	if err := json.Unmarshal(raw, &c); err != nil {
		log.Err(err).Str("func", "*caseRepository.Get").Str("case_id", caseID).Msg("error decoding case aggregate")
		return models.Case{}, fmt.Errorf("decoding case aggregate: %w", err)
	}

	return c, nil
}

// Replace implements [CaseRepository]. It is the single write path behind
// the services' replace-case callback.
func (r *caseRepository) Replace(ctx context.Context, c models.Case) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding case aggregate: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, replaceCase, c.CaseID, raw); err != nil {
		log.Err(err).
			Str("func", "*caseRepository.Replace").
			Str("case_id", c.CaseID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error replacing case")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Delete implements [CaseRepository].
func (r *caseRepository) Delete(ctx context.Context, caseID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCase, caseID)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.Delete").Str("case_id", caseID).Msg("error deleting case")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCaseNotFound
	}

	return nil
}
