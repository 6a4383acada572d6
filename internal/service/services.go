// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

// Package service holds the case-level business rules: staging and
// confirming document uploads, maintaining provider/insurer copies, and
// keeping document-to-facility links consistent.
package service

import (
	"github.com/jmarr/casefolio/internal/blob"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/store"
	"github.com/jmarr/casefolio/internal/utils"
	"github.com/jmarr/casefolio/internal/validators"
)

// Services aggregates every business-rule component behind one wiring
// point for the transport layer.
type Services struct {
	Documents         DocumentService
	Links             FacilityLinker
	Providers         ProviderService
	ProviderDirectory DirectoryService
	InsurerDirectory  DirectoryService
}

// NewServices wires the service layer over the given storages and blob
// gateway.
func NewServices(storages *store.Storages, gateway blob.Gateway, log *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()
	directoryValidator := validators.NewDirectoryValidator()

	return &Services{
		Documents:         NewDocumentService(gateway, ids, log),
		Links:             NewFacilityLinker(ids, log),
		Providers:         NewProviderService(storages.ProviderDirectory, storages.InsurerDirectory, ids, log),
		ProviderDirectory: NewDirectoryService(storages.ProviderDirectory, directoryValidator, log),
		InsurerDirectory:  NewDirectoryService(storages.InsurerDirectory, directoryValidator, log),
	}
}
