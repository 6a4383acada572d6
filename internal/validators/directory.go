package validators

import (
	"context"
	"strings"

	"github.com/jmarr/casefolio/models"
)

// Field name constants passed to Validate to restrict which fields are
// checked.
const (
	// FieldName targets the display name of a directory record.
	FieldName = "name"
)

// DirectoryValidator validates directory record inputs before they reach
// the store. The store enforces the same name rule again inside the
// upsert, so this check only exists to reject bad input early with a
// clean error.
type DirectoryValidator struct{}

// NewDirectoryValidator returns a validator for directory records and
// patches.
func NewDirectoryValidator() *DirectoryValidator {
	return &DirectoryValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each supported model are accepted.
//
// Supported types:
//   - models.DirectoryRecord / *models.DirectoryRecord
//   - models.DirectoryRecordPatch / *models.DirectoryRecordPatch
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *DirectoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DirectoryRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.DirectoryRecord:
		return v.validateRecord(ctx, *value, fields...)

	case models.DirectoryRecordPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.DirectoryRecordPatch:
		return v.validatePatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DirectoryValidator) validateRecord(_ context.Context, record models.DirectoryRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(record.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch requires at least one populated field, and when the name
// is among them it must not be blank.
func (v *DirectoryValidator) validatePatch(_ context.Context, patch models.DirectoryRecordPatch, _ ...string) error {
	populated := false
	for _, f := range []*string{
		patch.Name, patch.Type, patch.Addr, patch.City, patch.State,
		patch.Zip, patch.Phone, patch.Fax, patch.Email, patch.Notes,
	} {
		if f != nil {
			populated = true
			break
		}
	}
	if !populated {
		return ErrEmptyPatch
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return ErrEmptyName
	}

	return nil
}
