package service

import (
	"context"

	"github.com/jmarr/casefolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CaseUpdater is the single channel the core uses to persist a mutated
// case. Every operation builds a fully-formed next state and hands it to
// this callback; the core never writes case state any other way. Callers
// that allow true concurrent editors are responsible for serializing the
// writes behind this callback.
type CaseUpdater func(ctx context.Context, c models.Case) error

// IDGenerator produces identifiers for activity entries and case-scoped
// records.
type IDGenerator interface {
	Generate() string
}

// UploadOutcome reports one confirmed batch: the resulting case state, the
// attachments applied, and one "<filename>: <message>" entry per failure,
// both slices in submission order.
type UploadOutcome struct {
	Case    models.Case
	Applied []models.DocumentAttachment
	Errors  []string
}

// DeleteOutcome reports a document deletion. BlobDeleteErr carries the
// best-effort blob removal failure: the attachment is gone from the case
// either way, but a non-nil value means the backing object may be
// orphaned and should at least be logged by the caller.
type DeleteOutcome struct {
	Case          models.Case
	BlobDeleteErr error
}

// DocumentService is the upload pipeline over stored case documents.
type DocumentService interface {
	// ConfirmUpload persists the batch one file at a time, in submission
	// order, applying every success to the case even when other files
	// fail. Each pending entry's preview is released exactly once,
	// success or failure. One activity entry is appended when at least
	// one document was applied.
	ConfirmUpload(ctx context.Context, c models.Case, batch []*PendingFile, update CaseUpdater) (UploadOutcome, error)

	// Delete removes the attachment at index. It refuses to run without
	// confirmed set — the interactive confirmation happens upstream, but
	// deletion must never proceed without it. A failed blob delete is
	// reported in the outcome without blocking the removal.
	Delete(ctx context.Context, c models.Case, index int, confirmed bool, update CaseUpdater) (DeleteOutcome, error)

	// Rename replaces only the file name of the attachment at index. An
	// empty trimmed name is a no-op.
	Rename(ctx context.Context, c models.Case, index int, newName string, update CaseUpdater) (models.Case, error)

	// AddTag appends one tag to the attachment at index. An empty trimmed
	// tag is a no-op. Duplicates are kept: tags are an ordered sequence.
	AddTag(ctx context.Context, c models.Case, index int, tag string, update CaseUpdater) (models.Case, error)

	// Patch applies a rename and a tag append to the attachment at index
	// as one resulting case state, persisted in a single write. Empty
	// trimmed values are skipped; when both are empty nothing is written.
	Patch(ctx context.Context, c models.Case, index int, newName, tag string, update CaseUpdater) (models.Case, error)
}

// FacilityLinker maintains the weak many-to-one relation between stored
// documents and case providers. It is the only component allowed to touch
// DocumentAttachment.LinkedFacilityID.
type FacilityLinker interface {
	// Link points the document at index to providerID, overwriting any
	// existing link. The provider must be present in the case.
	Link(ctx context.Context, c models.Case, index int, providerID string, update CaseUpdater) (models.Case, error)

	// Unlink clears the document's link.
	Unlink(ctx context.Context, c models.Case, index int, update CaseUpdater) (models.Case, error)

	// RemoveProvider deletes the provider from the case and clears every
	// document link pointing at it, as one resulting case state.
	RemoveProvider(ctx context.Context, c models.Case, providerID string, update CaseUpdater) (models.Case, error)

	// LinkedDocuments returns the documents linked to providerID in
	// document-list order.
	LinkedDocuments(c models.Case, providerID string) []models.DocumentAttachment
}

// ProviderService saves case-scoped provider and insurer copies, mirroring
// their shared fields into the matching directory.
type ProviderService interface {
	SaveProvider(ctx context.Context, c models.Case, provider models.MedicalProvider, update CaseUpdater) (models.Case, error)
	SaveInsurer(ctx context.Context, c models.Case, insurer models.CaseInsurer, update CaseUpdater) (models.Case, error)
}

// DirectoryService exposes one shared directory table to the transport
// layer. Search degrades to an empty result on read failure.
type DirectoryService interface {
	Search(ctx context.Context, query string) []models.DirectoryRecord
	List(ctx context.Context) ([]models.DirectoryRecord, error)
	Upsert(ctx context.Context, record models.DirectoryRecord) (models.DirectoryRecord, error)
	Update(ctx context.Context, id int64, patch models.DirectoryRecordPatch) (models.DirectoryRecord, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
