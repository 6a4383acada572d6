package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
)

// facilityLinker associates documents with medical providers on a case.
type facilityLinker struct {
	ids IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewFacilityLinker constructs the document-to-facility linker.
func NewFacilityLinker(ids IDGenerator, logger *logger.Logger) FacilityLinker {
	return &facilityLinker{
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

// Link implements [FacilityLinker]. Each document carries at most one
// facility reference, so linking overwrites any previous association.
func (l *facilityLinker) Link(ctx context.Context, c models.Case, index int, providerID string, update CaseUpdater) (models.Case, error) {
	if index < 0 || index >= len(c.Documents) {
		return models.Case{}, ErrDocumentIndexOutOfRange
	}
	if c.FindProvider(providerID) < 0 {
		return models.Case{}, ErrProviderNotInCase
	}

	docs := make([]models.DocumentAttachment, len(c.Documents))
	copy(docs, c.Documents)
	docs[index].LinkedFacilityID = providerID
	c.Documents = docs

	if err := update(ctx, c); err != nil {
		return models.Case{}, fmt.Errorf("persisting case after link: %w", err)
	}

	return c, nil
}

// Unlink implements [FacilityLinker]. Unlinking an already unlinked
// document is a no-op that still persists, keeping the operation
// idempotent from the caller's view.
func (l *facilityLinker) Unlink(ctx context.Context, c models.Case, index int, update CaseUpdater) (models.Case, error) {
	if index < 0 || index >= len(c.Documents) {
		return models.Case{}, ErrDocumentIndexOutOfRange
	}

	docs := make([]models.DocumentAttachment, len(c.Documents))
	copy(docs, c.Documents)
	docs[index].LinkedFacilityID = ""
	c.Documents = docs

	if err := update(ctx, c); err != nil {
		return models.Case{}, fmt.Errorf("persisting case after unlink: %w", err)
	}

	return c, nil
}

// RemoveProvider implements [FacilityLinker]. Removing a provider clears
// the facility reference on every document that pointed at it, so the
// case never holds a dangling link.
func (l *facilityLinker) RemoveProvider(ctx context.Context, c models.Case, providerID string, update CaseUpdater) (models.Case, error) {
	log := logger.FromContext(ctx)

	pos := c.FindProvider(providerID)
	if pos < 0 {
		return models.Case{}, ErrProviderNotInCase
	}

	removed := c.Providers[pos]
	c.Providers = append(c.Providers[:pos:pos], c.Providers[pos+1:]...)

	cleared := 0
	docs := make([]models.DocumentAttachment, len(c.Documents))
	copy(docs, c.Documents)
	for i := range docs {
		if docs[i].LinkedFacilityID == providerID {
			docs[i].LinkedFacilityID = ""
			cleared++
		}
	}
	c.Documents = docs

	if cleared > 0 {
		log.Info().Str("provider_id", providerID).Int("cleared", cleared).Msg("cleared facility links for removed provider")
	}

	now := l.now()
	c.Activity = append(c.Activity, models.ActivityEntry{
		ID:        l.ids.Generate(),
		Kind:      models.ActivityProviderDelete,
		Message:   fmt.Sprintf("Removed provider %s", removed.Name),
		CreatedAt: now,
	})
	c.UpdatedAt = now

	if err := update(ctx, c); err != nil {
		return models.Case{}, fmt.Errorf("persisting case after provider removal: %w", err)
	}

	return c, nil
}

// LinkedDocuments implements [FacilityLinker].
func (l *facilityLinker) LinkedDocuments(c models.Case, providerID string) []models.DocumentAttachment {
	var linked []models.DocumentAttachment
	for _, doc := range c.Documents {
		if doc.LinkedFacilityID == providerID {
			linked = append(linked, doc)
		}
	}
	return linked
}
