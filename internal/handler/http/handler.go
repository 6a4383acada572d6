package http

import (
	"encoding/json"
	"net/http"

	"github.com/jmarr/casefolio/internal/config"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/service"
	"github.com/jmarr/casefolio/internal/store"
)

type Handler struct {
	services *service.Services
	cases    store.CaseRepository
	previews config.Previews
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cases store.CaseRepository, previews config.Previews, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cases:    cases,
		previews: previews,
		version:  version,
		logger:   logger,
	}
}

// replaceCase is the CaseUpdater every mutating handler feeds into the
// service layer.
func (h *Handler) replaceCase() service.CaseUpdater {
	return h.cases.Replace
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
