// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
// is configured, leaving the application with no transport at all. This is
// a fatal misconfiguration surfaced at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
