// Package adapter is the client side of the case service: a REST adapter
// over its HTTP API plus the incremental directory search used while
// filling in provider and insurer forms.
package adapter

import (
	"context"

	"github.com/jmarr/casefolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CaseAPI is the remote case service as seen by a client.
type CaseAPI interface {
	// GetCase fetches one case aggregate.
	GetCase(ctx context.Context, caseID string) (models.Case, error)

	// SearchProviders queries the shared provider directory by name
	// substring.
	SearchProviders(ctx context.Context, query string) ([]models.DirectoryRecord, error)

	// SearchInsurers queries the shared insurer directory by name
	// substring.
	SearchInsurers(ctx context.Context, query string) ([]models.DirectoryRecord, error)

	// SaveProvider saves a case-scoped provider copy and returns the
	// updated case.
	SaveProvider(ctx context.Context, caseID string, provider models.MedicalProvider) (models.Case, error)

	// SaveInsurer saves a case-scoped insurer copy and returns the
	// updated case.
	SaveInsurer(ctx context.Context, caseID string, insurer models.CaseInsurer) (models.Case, error)

	// DeleteDocument removes the document at index from the case.
	DeleteDocument(ctx context.Context, caseID string, index int) (models.Case, error)
}

// DirectorySearcher is the one-shot lookup the incremental search runs
// once its debounce window closes. Both directory searches of [CaseAPI]
// satisfy it via [ProviderSearcher] and [InsurerSearcher].
type DirectorySearcher interface {
	Search(ctx context.Context, query string) ([]models.DirectoryRecord, error)
}

// SearcherFunc adapts a function to [DirectorySearcher].
type SearcherFunc func(ctx context.Context, query string) ([]models.DirectoryRecord, error)

func (f SearcherFunc) Search(ctx context.Context, query string) ([]models.DirectoryRecord, error) {
	return f(ctx, query)
}

// ProviderSearcher exposes api's provider directory search as a
// [DirectorySearcher].
func ProviderSearcher(api CaseAPI) DirectorySearcher {
	return SearcherFunc(api.SearchProviders)
}

// InsurerSearcher exposes api's insurer directory search as a
// [DirectorySearcher].
func InsurerSearcher(api CaseAPI) DirectorySearcher {
	return SearcherFunc(api.SearchInsurers)
}
