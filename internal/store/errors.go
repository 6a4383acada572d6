package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyDirectoryName is returned by UpsertByName when the record's
	// name is empty after trimming. The dedup key is the folded name, so a
	// blank name can never be stored.
	ErrEmptyDirectoryName = errors.New("directory record name is empty")

	// ErrDirectoryRecordNotFound is returned when an update or delete
	// targets a directory record id that does not exist.
	ErrDirectoryRecordNotFound = errors.New("directory record was not found")

	// ErrDuplicateDirectoryName is returned when an update renames a
	// record to a name another record already holds under the folded-name
	// unique index. Upserts never hit this: their ON CONFLICT clause
	// converges on the existing row instead.
	ErrDuplicateDirectoryName = errors.New("directory record name already exists")

	// ErrNothingToUpdate is returned when a partial update carries no
	// fields to change.
	ErrNothingToUpdate = errors.New("no fields provided for update")

	// ErrCaseNotFound is returned when a queried case id has no stored
	// aggregate.
	ErrCaseNotFound = errors.New("case was not found")
)
