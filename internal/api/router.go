package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/madhvpruthi/ROOV/internal/api/middleware"
	"github.com/madhvpruthi/ROOV/internal/config"
	"github.com/madhvpruthi/ROOV/internal/handlers"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(logger zerolog.Logger, h *handlers.Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware (first to capture all requests)
	r.Use(middleware.Metrics)

	// Security middleware
	r.Use(middleware.SecurityHeaders)

	// Standard middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	// CORS - the SPA may be served from anywhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Metrics endpoint (for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Service banner and health
	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	// Uploaded images, served statically
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Route("/api", func(r chi.Router) {
		// JSON endpoints: small bodies, strict content type
		r.Group(func(r chi.Router) {
			r.Use(middleware.MaxBodySize(1 << 20)) // 1MB max body
			r.Use(middleware.RequireJSON)

			r.Get("/properties", h.ListProperties)
			r.Post("/properties", h.CreateProperty)
			r.Get("/properties/{id}", h.GetProperty)
			r.Put("/properties/{id}", h.UpdateProperty)
			r.Delete("/properties/{id}", h.DeleteProperty)

			r.Post("/contact", h.CreateContact)
			r.Get("/contacts", h.ListContacts)

			r.Post("/verify-admin", h.VerifyAdmin)
		})

		// Multipart upload endpoint, outside the JSON content-type check
		r.Group(func(r chi.Router) {
			r.Use(middleware.MaxBodySize(cfg.MaxUploadBytes()))
			r.Post("/upload-images", h.UploadImages)
		})
	})

	// Unmatched routes always answer in JSON
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.Error(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.Error(w, http.StatusNotFound, "Not found")
	})

	return r
}
