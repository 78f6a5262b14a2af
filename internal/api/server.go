package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	askapi "github.com/nqkhanh/commune-backend/internal/api/ask"
	carouselapi "github.com/nqkhanh/commune-backend/internal/api/carousel"
	"github.com/nqkhanh/commune-backend/internal/api/docs"
	documentapi "github.com/nqkhanh/commune-backend/internal/api/document"
	"github.com/nqkhanh/commune-backend/internal/api/middleware"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	askHandler *askapi.Handler,
	documentHandler *documentapi.Handler,
	carouselHandler *carouselapi.Handler,
	askRateLimiter *middleware.RateLimiter,
	uploadDir string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Uploaded files are served statically
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		askapi.RegisterRoutes(r, askHandler, askRateLimiter.Handler)
		documentapi.RegisterRoutes(r, documentHandler)
		carouselapi.RegisterRoutes(r, carouselHandler)
	})

	return r
}
