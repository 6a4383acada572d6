// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/utils"
	"github.com/jmarr/casefolio/models"
)

type httpCaseAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCaseAPI constructs a REST implementation of [CaseAPI] against the
// case service at address. The address may omit the scheme; http is
// assumed. Returns an error when address is empty or unparsable.
func NewHTTPCaseAPI(address string, logger *logger.Logger) (CaseAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid case service address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &httpCaseAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetCase implements [CaseAPI] via GET /api/cases/{caseID}.
func (h *httpCaseAPI) GetCase(ctx context.Context, caseID string) (models.Case, error) {
	var out models.CaseResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/cases/" + url.PathEscape(caseID))
	if err != nil {
		return models.Case{}, fmt.Errorf("get case request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Case{}, err
	}

	return out.Case, nil
}

// SearchProviders implements [CaseAPI] via
// GET /api/directory/providers/search.
func (h *httpCaseAPI) SearchProviders(ctx context.Context, query string) ([]models.DirectoryRecord, error) {
	return h.searchDirectory(ctx, "/api/directory/providers/search", query)
}

// SearchInsurers implements [CaseAPI] via
// GET /api/directory/insurers/search.
func (h *httpCaseAPI) SearchInsurers(ctx context.Context, query string) ([]models.DirectoryRecord, error) {
	return h.searchDirectory(ctx, "/api/directory/insurers/search", query)
}

func (h *httpCaseAPI) searchDirectory(ctx context.Context, path, query string) ([]models.DirectoryRecord, error) {
	var out models.DirectorySearchResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&out).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("directory search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Records, nil
}

// SaveProvider implements [CaseAPI] via
// PUT /api/cases/{caseID}/providers.
func (h *httpCaseAPI) SaveProvider(ctx context.Context, caseID string, provider models.MedicalProvider) (models.Case, error) {
	var out models.CaseResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(provider).
		SetResult(&out).
		Put("/api/cases/" + url.PathEscape(caseID) + "/providers")
	if err != nil {
		return models.Case{}, fmt.Errorf("save provider request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Case{}, err
	}

	return out.Case, nil
}

// SaveInsurer implements [CaseAPI] via PUT /api/cases/{caseID}/insurers.
func (h *httpCaseAPI) SaveInsurer(ctx context.Context, caseID string, insurer models.CaseInsurer) (models.Case, error) {
	var out models.CaseResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(insurer).
		SetResult(&out).
		Put("/api/cases/" + url.PathEscape(caseID) + "/insurers")
	if err != nil {
		return models.Case{}, fmt.Errorf("save insurer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Case{}, err
	}

	return out.Case, nil
}

// DeleteDocument implements [CaseAPI] via
// DELETE /api/cases/{caseID}/documents/{index}. The confirm flag is always
// sent: calling this method is the confirmation.
func (h *httpCaseAPI) DeleteDocument(ctx context.Context, caseID string, index int) (models.Case, error) {
	var out models.CaseResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("confirm", "true").
		SetResult(&out).
		Delete("/api/cases/" + url.PathEscape(caseID) + "/documents/" + strconv.Itoa(index))
	if err != nil {
		return models.Case{}, fmt.Errorf("delete document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Case{}, err
	}

	return out.Case, nil
}
