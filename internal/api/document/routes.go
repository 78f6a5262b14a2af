package document

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers document routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/data", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/upload", h.Upload)

		r.Route("/{document_id}", func(r chi.Router) {
			r.Delete("/", h.Delete)
			r.Get("/export", h.Export)
		})
	})
}
