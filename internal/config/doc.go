// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

// Package config loads and merges the casefolio service configuration.
//
// Configuration is assembled from three layers, merged in order with
// dario.cat/mergo so that earlier non-zero values win:
//
//  1. environment variables (caarlos0/env tags on [StructuredConfig]);
//  2. command-line flags ([ParseFlags]);
//  3. an optional JSON file named by either of the first two layers.
//
// After merging, validate() applies defaults and rejects configurations
// that are missing the database DSN or the blob store bucket.
package config
