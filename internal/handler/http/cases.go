package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
)

func (h *Handler) getCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.cases.Get(r.Context(), chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.CaseResponse{Case: c})
}

// saveProvider handles PUT /api/cases/{caseID}/providers. The body is a
// full case-scoped provider copy; its shared fields are mirrored into the
// provider directory as a side effect.
func (h *Handler) saveProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var provider models.MedicalProvider
	if err := json.NewDecoder(r.Body).Decode(&provider); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	c, err := h.cases.Get(ctx, chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	c, err = h.services.Providers.SaveProvider(ctx, c, provider, h.replaceCase())
	if err != nil {
		log.Err(err).Str("provider", provider.Name).Msg("saving case provider")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.CaseResponse{Case: c})
}

// removeProvider handles DELETE /api/cases/{caseID}/providers/{providerID}.
// Every document linked to the provider is unlinked in the same write.
func (h *Handler) removeProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	providerID := chi.URLParam(r, "providerID")

	c, err := h.cases.Get(ctx, chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	c, err = h.services.Links.RemoveProvider(ctx, c, providerID, h.replaceCase())
	if err != nil {
		log.Err(err).Str("provider_id", providerID).Msg("removing case provider")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.CaseResponse{Case: c})
}

// providerDocuments handles
// GET /api/cases/{caseID}/providers/{providerID}/documents.
func (h *Handler) providerDocuments(w http.ResponseWriter, r *http.Request) {
	c, err := h.cases.Get(r.Context(), chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	docs := h.services.Links.LinkedDocuments(c, chi.URLParam(r, "providerID"))
	writeJSON(w, http.StatusOK, models.LinkedDocumentsResponse{Documents: docs})
}

// saveInsurer handles PUT /api/cases/{caseID}/insurers.
func (h *Handler) saveInsurer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var insurer models.CaseInsurer
	if err := json.NewDecoder(r.Body).Decode(&insurer); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	c, err := h.cases.Get(ctx, chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	c, err = h.services.Providers.SaveInsurer(ctx, c, insurer, h.replaceCase())
	if err != nil {
		log.Err(err).Str("insurer", insurer.Name).Msg("saving case insurer")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.CaseResponse{Case: c})
}
