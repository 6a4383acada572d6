// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

// Package blob provides the keyed blob store the document pipeline writes
// uploaded file bytes into.
//
// The primary abstraction is [Gateway]; the production implementation
// ([NewS3Gateway]) talks to S3 or any S3-compatible endpoint. The upload
// pipeline treats every Gateway error as a per-file failure, so
// implementations should return plain errors rather than panic.
package blob

import "context"

//go:generate mockgen -source=gateway.go -destination=../mock/blob_gateway_mock.go -package=mock

// PutResult identifies a stored object: the key it was written under and
// its stable public URL.
type PutResult struct {
	Key string
	URL string
}

// Gateway is the keyed blob store contract.
type Gateway interface {
	// Put writes data under key with the given content type and returns
	// the key together with the object's stable public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (PutResult, error)

	// Delete removes the object stored under key. Deleting a key that was
	// already removed is not an error.
	Delete(ctx context.Context, key string) error

	// PublicURL returns the stable public URL for key without touching
	// the store.
	PublicURL(key string) string
}
