package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/store"
	"github.com/jmarr/casefolio/internal/validators"
	"github.com/jmarr/casefolio/models"
)

// minSearchRunes is the shortest query worth matching. Anything below it
// would be a near-universal substring and flood the result list.
const minSearchRunes = 2

// directoryService fronts one directory table. Two instances are wired,
// one per directory.
type directoryService struct {
	repo      store.DirectoryRepository
	validator validators.Validator

	logger *logger.Logger
}

// NewDirectoryService constructs a service over the given directory
// repository.
func NewDirectoryService(repo store.DirectoryRepository, validator validators.Validator, logger *logger.Logger) DirectoryService {
	return &directoryService{repo: repo, validator: validator, logger: logger}
}

// Search implements [DirectoryService]. Queries shorter than two runes
// return nothing. Lookups degrade silently: a directory error yields no
// matches rather than failing whatever flow the search is embedded in.
func (d *directoryService) Search(ctx context.Context, query string) []models.DirectoryRecord {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchRunes {
		return nil
	}

	records, err := d.repo.Search(ctx, query, store.SearchLimit)
	if err != nil {
		log.Err(err).Str("query", query).Msg("directory search failed")
		return nil
	}
	return records
}

// List implements [DirectoryService].
func (d *directoryService) List(ctx context.Context) ([]models.DirectoryRecord, error) {
	return d.repo.List(ctx)
}

// Upsert implements [DirectoryService].
func (d *directoryService) Upsert(ctx context.Context, record models.DirectoryRecord) (models.DirectoryRecord, error) {
	if err := d.validator.Validate(ctx, record); err != nil {
		return models.DirectoryRecord{}, err
	}
	return d.repo.UpsertByName(ctx, record)
}

// Update implements [DirectoryService].
func (d *directoryService) Update(ctx context.Context, id int64, patch models.DirectoryRecordPatch) (models.DirectoryRecord, error) {
	if err := d.validator.Validate(ctx, patch); err != nil {
		return models.DirectoryRecord{}, err
	}
	return d.repo.Update(ctx, id, patch)
}

// Delete implements [DirectoryService].
func (d *directoryService) Delete(ctx context.Context, id int64) (bool, error) {
	return d.repo.Delete(ctx, id)
}
