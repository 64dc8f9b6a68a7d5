package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/marinval/userhub-be/internal/api/handlers"
	"github.com/marinval/userhub-be/internal/auth"
	"github.com/marinval/userhub-be/internal/services"
)

// RouterConfig carries the wiring the router needs.
type RouterConfig struct {
	Users         services.UserServiceProvider
	Profiles      services.ProfileServiceProvider
	Codec         *auth.TokenCodec
	SecureCookies bool
	AllowedOrigin string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true, // the session cookie rides on every request
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg.Users, cfg.Codec, cfg.SecureCookies)
	profileHandler := handlers.NewProfileHandler(cfg.Profiles, cfg.Users)
	healthHandler := handlers.NewHealthHandler()

	// The gate protecting everything that needs an authenticated subject.
	protect := auth.Middleware(cfg.Codec)

	r.Get("/health", healthHandler.Get)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(protect).Get("/validate", authHandler.Validate)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Use(protect)
		r.Get("/view", profileHandler.View)
		r.Put("/update", profileHandler.Update)
		r.Delete("/delete", profileHandler.Delete)
	})

	return r
}
