package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/cases/{caseID}", func(r chi.Router) {
			r.Get("/", h.getCase)

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", h.uploadDocuments)
				r.Route("/{index}", func(r chi.Router) {
					r.Delete("/", h.deleteDocument)
					r.Patch("/", h.patchDocument)
					r.Post("/link", h.linkDocument)
					r.Delete("/link", h.unlinkDocument)
				})
			})

			r.Put("/providers", h.saveProvider)
			r.Delete("/providers/{providerID}", h.removeProvider)
			r.Get("/providers/{providerID}/documents", h.providerDocuments)
			r.Put("/insurers", h.saveInsurer)
		})

		r.Route("/directory/{directory}", func(r chi.Router) {
			r.Get("/", h.listDirectory)
			r.Get("/search", h.searchDirectory)
			r.Post("/", h.upsertDirectoryRecord)
			r.Patch("/{id}", h.updateDirectoryRecord)
			r.Delete("/{id}", h.deleteDirectoryRecord)
		})
	})

	return router
}
