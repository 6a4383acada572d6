// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, serverURL string) *httpCaseAPI {
	t.Helper()
	api, err := NewHTTPCaseAPI(serverURL, logger.Nop())
	require.NoError(t, err)
	return api.(*httpCaseAPI)
}

func TestNewHTTPCaseAPI_AddressValidation(t *testing.T) {
	_, err := NewHTTPCaseAPI("", logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPCaseAPI("   ", logger.Nop())
	assert.Error(t, err)

	api, err := NewHTTPCaseAPI("localhost:8080", logger.Nop())
	require.NoError(t, err, "scheme-less address gets http")
	assert.NotNil(t, api)
}

func TestGetCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cases/case-7", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CaseResponse{Case: models.Case{CaseID: "case-7", Title: "Doe v. Roe"}})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.GetCase(context.Background(), "case-7")

	require.NoError(t, err)
	assert.Equal(t, "case-7", got.CaseID)
	assert.Equal(t, "Doe v. Roe", got.Title)
}

func TestGetCase_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("case not found"))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.GetCase(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchProviders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/directory/providers/search", r.URL.Path)
		assert.Equal(t, "cle", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DirectorySearchResponse{Records: []models.DirectoryRecord{
			{ID: 1, Name: "Cleveland Clinic"},
		}})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.SearchProviders(context.Background(), "cle")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cleveland Clinic", got[0].Name)
}

func TestSaveProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/cases/case-7/providers", r.URL.Path)

		var body models.MedicalProvider
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "City Hospital", body.Name)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CaseResponse{Case: models.Case{
			CaseID:    "case-7",
			Providers: []models.MedicalProvider{{ID: "prov-1", Name: "City Hospital"}},
		}})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.SaveProvider(context.Background(), "case-7", models.MedicalProvider{Name: "City Hospital"})

	require.NoError(t, err)
	require.Len(t, got.Providers, 1)
	assert.Equal(t, "prov-1", got.Providers[0].ID)
}

func TestDeleteDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/cases/case-7/documents/2", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("confirm"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CaseResponse{Case: models.Case{CaseID: "case-7"}})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	got, err := api.DeleteDocument(context.Background(), "case-7", 2)

	require.NoError(t, err)
	assert.Equal(t, "case-7", got.CaseID)
}

func TestDeleteDocument_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("document index out of range"))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.DeleteDocument(context.Background(), "case-7", 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}
