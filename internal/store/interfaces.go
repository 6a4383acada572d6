package store

import (
	"context"

	"github.com/jmarr/casefolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DirectoryRepository is the store-side contract of one shared directory
// table (providers or insurance companies — identical algorithm, distinct
// tables).
type DirectoryRepository interface {
	// UpsertByName trims the record's name and atomically inserts a new
	// row or updates every field of the row whose folded name matches.
	// Returns the canonical stored record.
	UpsertByName(ctx context.Context, record models.DirectoryRecord) (models.DirectoryRecord, error)

	// Search returns up to limit records whose name contains query
	// case-insensitively, ordered by name. Queries shorter than two
	// characters after trimming return an empty result without touching
	// the database.
	Search(ctx context.Context, query string, limit int) ([]models.DirectoryRecord, error)

	// List returns every record ordered by name.
	List(ctx context.Context) ([]models.DirectoryRecord, error)

	// Get returns one record by id, or ErrDirectoryRecordNotFound.
	Get(ctx context.Context, id int64) (models.DirectoryRecord, error)

	// Update applies a partial update and returns the updated record, or
	// ErrDirectoryRecordNotFound when id does not exist.
	Update(ctx context.Context, id int64, patch models.DirectoryRecordPatch) (models.DirectoryRecord, error)

	// Delete removes one record. It reports whether a row was removed and
	// never cascades into case-scoped copies.
	Delete(ctx context.Context, id int64) (bool, error)
}

// CaseRepository persists the case aggregate as one document. Replace is
// the single write path the services' replace-case callback feeds into.
type CaseRepository interface {
	Get(ctx context.Context, caseID string) (models.Case, error)
	Replace(ctx context.Context, c models.Case) error
	Delete(ctx context.Context, caseID string) error
}
