package carousel

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers carousel routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/carousel", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/upload", h.Upload)
		r.Post("/upload-base64", h.UploadBase64)
		r.Delete("/{image_id}", h.Delete)
	})
}
