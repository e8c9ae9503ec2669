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

	// routes without authorization: admin login and the storefront-facing
	// endpoints (tracking snippets, cart recovery links)
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
		r.Get("/api/tracking/scripts", h.trackingScripts)
		r.Get("/cart/restore/{token}", h.restoreCart)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/admin/connect", h.connect)
		r.Delete("/api/admin/connect", h.disconnect)
		r.Get("/api/admin/settings", h.settings)
		r.Put("/api/admin/settings", h.updateSettings)
		r.Get("/api/admin/batches", h.batches)
		r.Post("/api/admin/sync/{endpoint}", h.sync)

		r.Post("/api/events", h.event)
	})

	return router
}
