// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

// Package validators holds the input validation rules enforced before a
// request reaches storage. Validators are injected into services so the
// rules stay independent of transport and of the SQL layer's own guards.
package validators

import "context"

// Validator validates an arbitrary input value. Optional field names
// restrict the check to a subset of fields; when omitted, a default set
// is validated.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
