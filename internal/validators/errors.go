package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName  = errors.New("name is required")
	ErrEmptyPatch = errors.New("at least one field must be provided for update")
)
