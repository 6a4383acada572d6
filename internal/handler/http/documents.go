// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/service"
	"github.com/jmarr/casefolio/models"
)

// maxUploadMemory bounds how much of a multipart body is held in memory
// before spilling to disk.
const maxUploadMemory = 32 << 20

// uploadDocuments handles POST /api/cases/{caseID}/documents. Files arrive
// as the multipart field "files"; the classified type of file i can be
// overridden with the form fields "type_{i}" and "photo_category_{i}".
func (h *Handler) uploadDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	caseID := chi.URLParam(r, "caseID")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart body")
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		http.Error(w, "no files provided", http.StatusBadRequest)
		return
	}

	stager := service.NewStager(h.previews, h.logger)
	defer stager.Cancel()

	for i, header := range files {
		f, err := header.Open()
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("opening multipart file")
			http.Error(w, "reading uploaded file", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("reading multipart file")
			http.Error(w, "reading uploaded file", http.StatusBadRequest)
			return
		}

		stager.Stage(service.RawFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})

		if v := r.FormValue(fmt.Sprintf("type_%d", i)); v != "" {
			stager.SetType(i, models.DocumentType(v))
		}
		if v := r.FormValue(fmt.Sprintf("photo_category_%d", i)); v != "" {
			stager.SetPhotoCategory(i, models.PhotoCategory(v))
		}
	}

	c, err := h.cases.Get(ctx, caseID)
	if err != nil {
		log.Err(err).Str("case_id", caseID).Msg("loading case for upload")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	batch := stager.Take()
	out, err := h.services.Documents.ConfirmUpload(ctx, c, batch, h.replaceCase())
	if err != nil {
		log.Err(err).Str("case_id", caseID).Msg("confirming upload batch")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.UploadBatchResponse{
		Applied: out.Applied,
		Errors:  out.Errors,
		Case:    out.Case,
	})
}

// deleteDocument handles DELETE /api/cases/{caseID}/documents/{index}.
// The request must carry confirm=true; an unconfirmed delete is rejected.
func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid document index", http.StatusBadRequest)
		return
	}
	confirmed := r.URL.Query().Get("confirm") == "true"

	c, err := h.cases.Get(ctx, chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	out, err := h.services.Documents.Delete(ctx, c, index, confirmed, h.replaceCase())
	if err != nil {
		log.Err(err).Int("index", index).Msg("deleting document")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if out.BlobDeleteErr != nil {
		log.Warn().Err(out.BlobDeleteErr).Msg("blob removal failed, object orphaned")
	}

	writeJSON(w, http.StatusOK, models.CaseResponse{Case: out.Case})
}

// patchDocument handles PATCH /api/cases/{caseID}/documents/{index}:
// rename and/or append one tag.
func (h *Handler) patchDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid document index", http.StatusBadRequest)
		return
	}

	var req models.PatchDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	c, err := h.cases.Get(ctx, chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	c, err = h.services.Documents.Patch(ctx, c, index, req.Rename, req.AddTag, h.replaceCase())
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.CaseResponse{Case: c})
}

// linkDocument handles POST /api/cases/{caseID}/documents/{index}/link.
func (h *Handler) linkDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid document index", http.StatusBadRequest)
		return
	}

	var req models.LinkDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	c, err := h.cases.Get(ctx, chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	c, err = h.services.Links.Link(ctx, c, index, req.ProviderID, h.replaceCase())
	if err != nil {
		log.Err(err).Int("index", index).Str("provider_id", req.ProviderID).Msg("linking document")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.CaseResponse{Case: c})
}

// unlinkDocument handles DELETE /api/cases/{caseID}/documents/{index}/link.
func (h *Handler) unlinkDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid document index", http.StatusBadRequest)
		return
	}

	c, err := h.cases.Get(ctx, chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	c, err = h.services.Links.Unlink(ctx, c, index, h.replaceCase())
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.CaseResponse{Case: c})
}
