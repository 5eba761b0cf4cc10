package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/themes", h.listThemes)
		r.Post("/api/themes", h.createTheme)

		r.Route("/api/themes/{theme_id}", func(r chi.Router) {
			r.Use(withThemeID)

			r.Get("/assets", h.listAssets)
			r.Get("/asset", h.getAsset)
			r.Put("/asset", h.putAsset)
			r.Delete("/asset", h.deleteAsset)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
