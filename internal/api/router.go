package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/calverly/taskdeck-api/internal/api/middleware"
)

// NewRouter assembles the HTTP surface: public auth endpoints plus
// bearer-protected task and tag resources. The Recoverer middleware is the
// outermost boundary converting panics into generic 500 responses.
func NewRouter(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	tagHandler *TagHandler,
	authMiddleware *middleware.AuthMiddleware,
) *chi.Mux {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.TraceMiddleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Public endpoints
	router.Post("/auth/sign-up", authHandler.SignUp)
	router.Post("/token", authHandler.Token)

	// Authenticated endpoints
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/auth/me", authHandler.Me)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", taskHandler.Get)
				r.Patch("/", taskHandler.Update)
				r.Delete("/", taskHandler.Delete)
			})
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", tagHandler.List)
			r.Post("/", tagHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", tagHandler.Get)
				r.Patch("/", tagHandler.Update)
				r.Delete("/", tagHandler.Delete)
			})
		})
	})

	return router
}
