package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/store"
	"github.com/jmarr/casefolio/models"
)

// providerService maintains the provider and insurer lists on a case and
// mirrors their contact details into the shared directories.
type providerService struct {
	providerDir store.DirectoryRepository
	insurerDir  store.DirectoryRepository
	ids         IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewProviderService constructs the case provider/insurer service.
func NewProviderService(providerDir, insurerDir store.DirectoryRepository, ids IDGenerator, logger *logger.Logger) ProviderService {
	return &providerService{
		providerDir: providerDir,
		insurerDir:  insurerDir,
		ids:         ids,
		now:         time.Now,
		logger:      logger,
	}
}

// SaveProvider implements [ProviderService]. The directory upsert is
// non-fatal: the case copy is the source of truth for the visit, and a
// directory outage must not block saving it.
func (p *providerService) SaveProvider(ctx context.Context, c models.Case, provider models.MedicalProvider, update CaseUpdater) (models.Case, error) {
	log := logger.FromContext(ctx)

	provider.Name = strings.TrimSpace(provider.Name)
	if provider.Name == "" {
		return models.Case{}, ErrProviderNameRequired
	}
	if provider.ID == "" {
		provider.ID = p.ids.Generate()
	}

	rec, err := p.providerDir.UpsertByName(ctx, models.DirectoryRecord{
		Name:  provider.Name,
		Type:  provider.Type,
		Addr:  provider.Addr,
		City:  provider.City,
		State: provider.State,
		Zip:   provider.Zip,
		Phone: provider.Phone,
		Fax:   provider.Fax,
		Email: provider.Email,
		Notes: provider.Notes,
	})
	if err != nil {
		log.Err(err).Str("name", provider.Name).Msg("provider directory upsert failed, saving case anyway")
	} else {
		provider.DirectoryID = rec.ID
	}

	if pos := c.FindProvider(provider.ID); pos >= 0 {
		providers := make([]models.MedicalProvider, len(c.Providers))
		copy(providers, c.Providers)
		providers[pos] = provider
		c.Providers = providers
	} else {
		c.Providers = append(c.Providers, provider)
	}

	now := p.now()
	c.Activity = append(c.Activity, models.ActivityEntry{
		ID:        p.ids.Generate(),
		Kind:      models.ActivityProviderSave,
		Message:   fmt.Sprintf("Saved provider %s", provider.Name),
		CreatedAt: now,
	})
	c.UpdatedAt = now

	if err := update(ctx, c); err != nil {
		return models.Case{}, fmt.Errorf("persisting case after provider save: %w", err)
	}

	return c, nil
}

// SaveInsurer implements [ProviderService]. Mirrors SaveProvider for the
// insurer list and the insurer directory.
func (p *providerService) SaveInsurer(ctx context.Context, c models.Case, insurer models.CaseInsurer, update CaseUpdater) (models.Case, error) {
	log := logger.FromContext(ctx)

	insurer.Name = strings.TrimSpace(insurer.Name)
	if insurer.Name == "" {
		return models.Case{}, ErrProviderNameRequired
	}
	if insurer.ID == "" {
		insurer.ID = p.ids.Generate()
	}

	rec, err := p.insurerDir.UpsertByName(ctx, models.DirectoryRecord{
		Name:  insurer.Name,
		Type:  insurer.Type,
		Addr:  insurer.Addr,
		City:  insurer.City,
		State: insurer.State,
		Zip:   insurer.Zip,
		Phone: insurer.Phone,
		Fax:   insurer.Fax,
		Email: insurer.Email,
		Notes: insurer.Notes,
	})
	if err != nil {
		log.Err(err).Str("name", insurer.Name).Msg("insurer directory upsert failed, saving case anyway")
	} else {
		insurer.DirectoryID = rec.ID
	}

	replaced := false
	for i := range c.Insurers {
		if c.Insurers[i].ID == insurer.ID {
			insurers := make([]models.CaseInsurer, len(c.Insurers))
			copy(insurers, c.Insurers)
			insurers[i] = insurer
			c.Insurers = insurers
			replaced = true
			break
		}
	}
	if !replaced {
		c.Insurers = append(c.Insurers, insurer)
	}

	now := p.now()
	c.Activity = append(c.Activity, models.ActivityEntry{
		ID:        p.ids.Generate(),
		Kind:      models.ActivityProviderSave,
		Message:   fmt.Sprintf("Saved insurer %s", insurer.Name),
		CreatedAt: now,
	})
	c.UpdatedAt = now

	if err := update(ctx, c); err != nil {
		return models.Case{}, fmt.Errorf("persisting case after insurer save: %w", err)
	}

	return c, nil
}
