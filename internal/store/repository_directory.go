package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
)

// Fixed table names for the two directory instances. Only these two values
// are ever interpolated into the query templates.
const (
	providerDirectoryTable = "provider_directory"
	insurerDirectoryTable  = "insurer_directory"
)

// SearchLimit is the cap applied to directory search results.
const SearchLimit = 10

// minSearchQueryLen is the shortest query Search will send to the
// database; anything shorter matches near-everything and floods the UI.
const minSearchQueryLen = 2

// directoryRepository is the PostgreSQL-backed implementation of
// [DirectoryRepository]. One instance serves one table; the provider and
// insurer directories are two instances over the same code.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type directoryRepository struct {
	table  string
	logger *logger.Logger
	db     *DB
}

// NewProviderDirectory constructs the [DirectoryRepository] over the
// medical-provider directory table.
func NewProviderDirectory(db *DB, logger *logger.Logger) DirectoryRepository {
	logger.Debug().Msg("creating provider directory repository")
	return &directoryRepository{table: providerDirectoryTable, db: db, logger: logger}
}

// NewInsurerDirectory constructs the [DirectoryRepository] over the
// insurance-company directory table.
func NewInsurerDirectory(db *DB, logger *logger.Logger) DirectoryRepository {
	logger.Debug().Msg("creating insurer directory repository")
	return &directoryRepository{table: insurerDirectoryTable, db: db, logger: logger}
}

// UpsertByName implements [DirectoryRepository].
//
// The write is a single INSERT ... ON CONFLICT statement targeting the
// unique index over LOWER(BTRIM(name)), so the lookup and the branch are
// one atomic round trip — concurrent upserts of "State Farm" and
// " state farm " converge on one row, with the later writer's fields
// winning.
func (r *directoryRepository) UpsertByName(ctx context.Context, record models.DirectoryRecord) (models.DirectoryRecord, error) {
	log := logger.FromContext(ctx)

	record.Name = strings.TrimSpace(record.Name)
	if record.Name == "" {
		return models.DirectoryRecord{}, ErrEmptyDirectoryName
	}

	row := r.db.QueryRowContext(ctx, fmt.Sprintf(upsertDirectoryRecord, r.table),
		record.Name, record.Type, record.Addr, record.City, record.State,
		record.Zip, record.Phone, record.Fax, record.Email, record.Notes)

	saved, err := scanDirectoryRecord(row)
	if err != nil {
		log.Err(err).
			Str("func", "*directoryRepository.UpsertByName").
			Str("table", r.table).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error upserting directory record")
		return models.DirectoryRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// Search implements [DirectoryRepository]. Matching is a case-insensitive
// substring match on name (ILIKE), ordered alphabetically and capped at
// limit. LIKE metacharacters in the query are escaped so "%" and "_" match
// literally.
func (r *directoryRepository) Search(ctx context.Context, query string, limit int) ([]models.DirectoryRecord, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchQueryLen {
		return nil, nil
	}
	if limit <= 0 || limit > SearchLimit {
		limit = SearchLimit
	}

	pattern := "%" + escapeLike(query) + "%"
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(searchDirectoryRecords, r.table), pattern, limit)
	if err != nil {
		log.Err(err).Str("func", "*directoryRepository.Search").Str("table", r.table).Msg("error searching directory")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	return scanDirectoryRecords(rows)
}

// List implements [DirectoryRepository].
func (r *directoryRepository) List(ctx context.Context) ([]models.DirectoryRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(listDirectoryRecords, r.table))
	if err != nil {
		log.Err(err).Str("func", "*directoryRepository.List").Str("table", r.table).Msg("error listing directory")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	return scanDirectoryRecords(rows)
}

// Get implements [DirectoryRepository].
func (r *directoryRepository) Get(ctx context.Context, id int64) (models.DirectoryRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, fmt.Sprintf(getDirectoryRecord, r.table), id)

	record, err := scanDirectoryRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DirectoryRecord{}, ErrDirectoryRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*directoryRepository.Get").Str("table", r.table).Msg("error getting directory record")
		return models.DirectoryRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// Update implements [DirectoryRepository]. The SET clause is built with
// squirrel from the patch's non-nil fields; a name change is trimmed the
// same way UpsertByName trims it.
func (r *directoryRepository) Update(ctx context.Context, id int64, patch models.DirectoryRecordPatch) (models.DirectoryRecord, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update(r.table).PlaceholderFormat(sq.Dollar)
	assigned := false

	set := func(column string, value *string, trim bool) {
		if value == nil {
			return
		}
		v := *value
		if trim {
			v = strings.TrimSpace(v)
		}
		builder = builder.Set(column, v)
		assigned = true
	}

	set("name", patch.Name, true)
	set("type", patch.Type, false)
	set("addr", patch.Addr, false)
	set("city", patch.City, false)
	set("state", patch.State, false)
	set("zip", patch.Zip, false)
	set("phone", patch.Phone, false)
	set("fax", patch.Fax, false)
	set("email", patch.Email, false)
	set("notes", patch.Notes, false)

	if !assigned {
		return models.DirectoryRecord{}, ErrNothingToUpdate
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.DirectoryRecord{}, ErrEmptyDirectoryName
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + directoryColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*directoryRepository.Update").Msg("error building update query")
		return models.DirectoryRecord{}, fmt.Errorf("error building sql query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	record, err := scanDirectoryRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DirectoryRecord{}, ErrDirectoryRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*directoryRepository.Update").
			Str("table", r.table).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error updating directory record")

		// A rename can collide with another record's folded name; the
		// upsert path resolves that conflict, a targeted update cannot.
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.DirectoryRecord{}, ErrDuplicateDirectoryName
		default:
			return models.DirectoryRecord{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return record, nil
}

// Delete implements [DirectoryRepository]. Case-scoped copies embedded in
// existing cases are intentionally untouched; they are independent records.
func (r *directoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(deleteDirectoryRecord, r.table), id)
	if err != nil {
		log.Err(err).Str("func", "*directoryRepository.Delete").Str("table", r.table).Msg("error deleting directory record")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected > 0, nil
}

// escapeLike escapes LIKE/ILIKE metacharacters so a user query matches
// them literally. The queries declare ESCAPE '\'.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func scanDirectoryRecord(row *sql.Row) (models.DirectoryRecord, error) {
	var r models.DirectoryRecord
	err := row.Scan(&r.ID, &r.Name, &r.Type, &r.Addr, &r.City, &r.State,
		&r.Zip, &r.Phone, &r.Fax, &r.Email, &r.Notes, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func scanDirectoryRecords(rows *sql.Rows) ([]models.DirectoryRecord, error) {
	var records []models.DirectoryRecord
	for rows.Next() {
		var r models.DirectoryRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Type, &r.Addr, &r.City, &r.State,
			&r.Zip, &r.Phone, &r.Fax, &r.Email, &r.Notes, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan directory row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan directory rows: %w", err)
	}

	return records, nil
}
