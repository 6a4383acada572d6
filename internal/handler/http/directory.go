package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/service"
	"github.com/jmarr/casefolio/models"
)

// directoryFromRequest resolves the {directory} URL segment to the
// matching directory service, or nil for an unknown segment.
func (h *Handler) directoryFromRequest(r *http.Request) service.DirectoryService {
	switch chi.URLParam(r, "directory") {
	case "providers":
		return h.services.ProviderDirectory
	case "insurers":
		return h.services.InsurerDirectory
	default:
		return nil
	}
}

func (h *Handler) listDirectory(w http.ResponseWriter, r *http.Request) {
	svc := h.directoryFromRequest(r)
	if svc == nil {
		http.NotFound(w, r)
		return
	}

	records, err := svc.List(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing directory")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.DirectorySearchResponse{Records: records})
}

// searchDirectory handles GET /api/directory/{directory}/search?q=...
// Failures degrade to an empty result inside the service, so this
// endpoint never reports a directory outage to the caller.
func (h *Handler) searchDirectory(w http.ResponseWriter, r *http.Request) {
	svc := h.directoryFromRequest(r)
	if svc == nil {
		http.NotFound(w, r)
		return
	}

	records := svc.Search(r.Context(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, models.DirectorySearchResponse{Records: records})
}

func (h *Handler) upsertDirectoryRecord(w http.ResponseWriter, r *http.Request) {
	svc := h.directoryFromRequest(r)
	if svc == nil {
		http.NotFound(w, r)
		return
	}
	log := logger.FromRequest(r)

	var record models.DirectoryRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := svc.Upsert(r.Context(), record)
	if err != nil {
		log.Err(err).Str("name", record.Name).Msg("upserting directory record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) updateDirectoryRecord(w http.ResponseWriter, r *http.Request) {
	svc := h.directoryFromRequest(r)
	if svc == nil {
		http.NotFound(w, r)
		return
	}
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	var patch models.DirectoryRecordPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := svc.Update(r.Context(), id, patch)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("updating directory record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// deleteDirectoryRecord removes a shared directory record. Case-scoped
// copies made from the record are intentionally left untouched.
func (h *Handler) deleteDirectoryRecord(w http.ResponseWriter, r *http.Request) {
	svc := h.directoryFromRequest(r)
	if svc == nil {
		http.NotFound(w, r)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	removed, err := svc.Delete(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("deleting directory record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if !removed {
		http.Error(w, "directory record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
