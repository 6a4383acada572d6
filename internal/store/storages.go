package store

import (
	"context"
	"fmt"

	"github.com/jmarr/casefolio/internal/config"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/migrations"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	ProviderDirectory DirectoryRepository
	InsurerDirectory  DirectoryRepository
	Cases             CaseRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		ProviderDirectory: NewProviderDirectory(db, log),
		InsurerDirectory:  NewInsurerDirectory(db, log),
		Cases:             NewCaseRepository(db, log),
	}, nil
}
