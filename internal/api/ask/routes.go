package ask

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers ask routes
func RegisterRoutes(r chi.Router, h *Handler, rateLimit func(http.Handler) http.Handler) {
	r.Route("/ask", func(r chi.Router) {
		r.Use(rateLimit)
		r.Post("/", h.Ask)
	})
}
