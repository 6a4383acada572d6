package service

import "errors"

// Sentinel errors returned by the document pipeline and facility linker.
// Callers should match with [errors.Is].
var (
	// ErrDocumentIndexOutOfRange is returned when an operation addresses
	// a document position the case does not have.
	ErrDocumentIndexOutOfRange = errors.New("document index out of range")

	// ErrDeleteNotConfirmed is returned when a document deletion is
	// attempted without the caller's interactive confirmation.
	ErrDeleteNotConfirmed = errors.New("document deletion was not confirmed")

	// ErrProviderNotInCase is returned when a link targets a provider id
	// that is not present in the case's provider list.
	ErrProviderNotInCase = errors.New("provider is not present in the case")

	// ErrProviderNameRequired is returned when a case provider or insurer
	// is saved with an empty trimmed name.
	ErrProviderNameRequired = errors.New("provider name is required")
)
