package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Reads are public; creating a user requires Basic
// credentials of an existing user.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Get("/health_check", h.healthCheck)
	router.Get("/version", h.getServerVersion)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Get("/{user_id}", h.getUser)

		r.With(h.withBasicAuth, withGzipRequest).Post("/", h.createUser)
	})

	return router
}
