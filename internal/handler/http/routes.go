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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
	})

	// routes protected by the session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/threats", h.submitThreat)
		r.Get("/api/threats", h.listThreats)
		r.Get("/api/dashboard-stats", h.dashboardStats)
		r.Post("/api/analyze", h.analyze)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
