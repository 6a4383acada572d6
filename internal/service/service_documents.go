package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmarr/casefolio/internal/blob"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
)

// defaultSource labels documents that entered through the manual upload
// flow.
const defaultSource = "Manual Upload"

// documentService implements [DocumentService] on top of the blob gateway.
type documentService struct {
	gateway blob.Gateway
	ids     IDGenerator
	now     func() time.Time

	logger *logger.Logger
}

// NewDocumentService constructs the upload pipeline.
func NewDocumentService(gateway blob.Gateway, ids IDGenerator, logger *logger.Logger) DocumentService {
	return &documentService{
		gateway: gateway,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

// ConfirmUpload implements [DocumentService].
//
// Files are processed strictly sequentially in submission order: one
// in-flight gateway call at a time bounds pressure on the blob store and
// keeps error attribution per file unambiguous. A failure records
// "<filename>: <message>" and moves on — the batch never aborts early, and
// every success is applied even when siblings fail.
func (s *documentService) ConfirmUpload(ctx context.Context, c models.Case, batch []*PendingFile, update CaseUpdater) (UploadOutcome, error) {
	log := logger.FromContext(ctx)

	var applied []models.DocumentAttachment
	var uploadErrors []string

	for _, entry := range batch {
		key := blob.BuildObjectKey(c.CaseID, entry.File.Name, s.now())

		result, err := s.gateway.Put(ctx, key, entry.File.Data, entry.File.ContentType)

		// The preview is owned by the pending entry and dies with it,
		// whether the upload succeeded or not.
		entry.releasePreview()

		if err != nil {
			log.Err(err).Str("file", entry.File.Name).Str("case_id", c.CaseID).Msg("file upload failed")
			uploadErrors = append(uploadErrors, fmt.Sprintf("%s: %s", entry.File.Name, err.Error()))
			continue
		}

		doc := models.DocumentAttachment{
			Type:       entry.Type,
			FileName:   entry.File.Name,
			MimeType:   entry.File.ContentType,
			Source:     defaultSource,
			Tags:       []string{},
			StorageKey: result.Key,
			StorageURL: result.URL,
		}
		if entry.Type == models.DocumentTypePhoto {
			doc.PhotoCategory = entry.PhotoCategory
		}

		applied = append(applied, doc)
	}

	if len(applied) > 0 {
		c.Documents = append(c.Documents, applied...)

		names := make([]string, len(applied))
		for i, doc := range applied {
			names[i] = doc.FileName
		}
		s.appendActivity(&c, models.ActivityDocumentUpload,
			fmt.Sprintf("Uploaded %d document(s): %s", len(applied), strings.Join(names, ", ")))

		if err := update(ctx, c); err != nil {
			return UploadOutcome{}, fmt.Errorf("persisting case after upload: %w", err)
		}
	}

	return UploadOutcome{Case: c, Applied: applied, Errors: uploadErrors}, nil
}

// Delete implements [DocumentService]. The blob removal is best effort:
// the case-level record is authoritative, so a gateway failure leaves an
// orphaned object rather than a phantom attachment. The failure is
// surfaced in the outcome, never swallowed.
func (s *documentService) Delete(ctx context.Context, c models.Case, index int, confirmed bool, update CaseUpdater) (DeleteOutcome, error) {
	log := logger.FromContext(ctx)

	if !confirmed {
		return DeleteOutcome{}, ErrDeleteNotConfirmed
	}
	if index < 0 || index >= len(c.Documents) {
		return DeleteOutcome{}, ErrDocumentIndexOutOfRange
	}

	doc := c.Documents[index]

	var blobErr error
	if doc.StorageKey != "" {
		if blobErr = s.gateway.Delete(ctx, doc.StorageKey); blobErr != nil {
			log.Err(blobErr).Str("key", doc.StorageKey).Str("case_id", c.CaseID).Msg("blob delete failed, attachment removed anyway")
		}
	}

	c.Documents = append(c.Documents[:index:index], c.Documents[index+1:]...)
	s.appendActivity(&c, models.ActivityDocumentDelete, fmt.Sprintf("Deleted document %s", doc.FileName))

	if err := update(ctx, c); err != nil {
		return DeleteOutcome{}, fmt.Errorf("persisting case after delete: %w", err)
	}

	return DeleteOutcome{Case: c, BlobDeleteErr: blobErr}, nil
}

// Rename implements [DocumentService].
func (s *documentService) Rename(ctx context.Context, c models.Case, index int, newName string, update CaseUpdater) (models.Case, error) {
	return s.Patch(ctx, c, index, newName, "", update)
}

// AddTag implements [DocumentService]. Tags are an ordered sequence, not a
// set: appending an existing tag keeps both occurrences.
func (s *documentService) AddTag(ctx context.Context, c models.Case, index int, tag string, update CaseUpdater) (models.Case, error) {
	return s.Patch(ctx, c, index, "", tag, update)
}

// Patch implements [DocumentService]. Rename and tag land in one replaced
// case state, so a request carrying both never persists a half-applied
// document.
func (s *documentService) Patch(ctx context.Context, c models.Case, index int, newName, tag string, update CaseUpdater) (models.Case, error) {
	if index < 0 || index >= len(c.Documents) {
		return models.Case{}, ErrDocumentIndexOutOfRange
	}

	newName = strings.TrimSpace(newName)
	tag = strings.TrimSpace(tag)
	if newName == "" && tag == "" {
		return c, nil
	}

	docs := make([]models.DocumentAttachment, len(c.Documents))
	copy(docs, c.Documents)
	if newName != "" {
		docs[index].FileName = newName
	}
	if tag != "" {
		docs[index].Tags = append(docs[index].Tags[:len(docs[index].Tags):len(docs[index].Tags)], tag)
	}
	c.Documents = docs

	if err := update(ctx, c); err != nil {
		return models.Case{}, fmt.Errorf("persisting case after document patch: %w", err)
	}

	return c, nil
}

func (s *documentService) appendActivity(c *models.Case, kind models.ActivityKind, message string) {
	now := s.now()
	c.Activity = append(c.Activity, models.ActivityEntry{
		ID:        s.ids.Generate(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
	})
	c.UpdatedAt = now
}
