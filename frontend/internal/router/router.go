package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/equipbook/equipbook/frontend/internal/middleware"
	"github.com/equipbook/equipbook/frontend/internal/setup"
	mw "github.com/equipbook/equipbook/shared/middleware"
	"github.com/equipbook/equipbook/shared/middleware/metrics"
)

// New creates the chi router with every frontend route.
func New(deps *setup.Dependencies) (*chi.Mux, error) {
	r := chi.NewRouter()
	h := deps.Handler

	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders(deps.Public.SecureCookies))

	// Script callers of the toggle route from other configured origins.
	// Without configured origins only same-origin scripts are served.
	if origins := deps.Public.CORS.AllowedOrigins; len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Public routes
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.Public.StaticPath))))

	csrfConfig := middleware.CSRFConfig{SecureCookies: deps.Public.SecureCookies}

	var mountErr error
	r.Group(func(r chi.Router) {
		r.Use(middleware.GenerateCSRFToken(csrfConfig))
		r.Use(middleware.ValidateCSRFToken())
		r.Use(deps.Auth.NeedAuth())
		r.Use(middleware.RateLimit(deps.Limiter, h.Notifier))

		r.Get("/", h.IndexGetHandler)
		r.Get("/equipment", h.EquipmentListHandler)
		r.Get("/equipment/{id}", h.EquipmentDetailHandler)
		mountErr = h.Favorites.Mount(r, h.ToggleFavoriteHandler)

		r.Get("/favorites", h.FavoritesGetHandler)
		r.Post("/favorites", h.FavoriteAddHandler)
		r.Post("/favorites/delete", h.FavoriteDeleteHandler)

		r.Get("/bookings", h.BookingsGetHandler)
		r.Post("/bookings", h.BookingsPostHandler)

		r.Get("/reports", h.ReportsGetHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.GenerateCSRFToken(csrfConfig))
		r.Use(deps.Auth.AdminOnly())

		r.Get("/admin", h.AdminGetHandler)
	})

	if mountErr != nil {
		return nil, mountErr
	}
	return r, nil
}
