package http

import (
	"net/http"

	"github.com/jmarr/casefolio/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.VersionResponse{Version: h.version})
}
