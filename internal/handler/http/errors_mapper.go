package http

import (
	"errors"
	"net/http"

	"github.com/jmarr/casefolio/internal/service"
	"github.com/jmarr/casefolio/internal/store"
	"github.com/jmarr/casefolio/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrDocumentIndexOutOfRange: http.StatusBadRequest,
	service.ErrDeleteNotConfirmed:      http.StatusBadRequest,
	service.ErrProviderNotInCase:       http.StatusBadRequest,
	service.ErrProviderNameRequired:    http.StatusBadRequest,

	store.ErrEmptyDirectoryName:      http.StatusBadRequest,
	store.ErrNothingToUpdate:         http.StatusBadRequest,
	validators.ErrEmptyName:          http.StatusBadRequest,
	validators.ErrEmptyPatch:         http.StatusBadRequest,
	store.ErrCaseNotFound:            http.StatusNotFound,
	store.ErrDirectoryRecordNotFound: http.StatusNotFound,
	store.ErrDuplicateDirectoryName:  http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
