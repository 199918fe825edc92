package routes

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/satishgautham/New-Fitness-App/controllers"
	"github.com/satishgautham/New-Fitness-App/middleware"
	"github.com/satishgautham/New-Fitness-App/session"
)

// SetupRouter wires the tracker's endpoints. Reference data and targets are
// process-wide; the log and view routes are scoped to the caller's session.
func SetupRouter(api *controllers.API, sessions *session.Manager) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.SessionHeader},
		ExposedHeaders:   []string{middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Process-wide read-only data
	r.Get("/ingredients", api.ListIngredients)
	r.Get("/targets", api.GetTargets)

	// Session-scoped logging and views
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(sessions))

		r.Post("/food", api.LogFood)
		r.Get("/food", api.GetFoodDay)
		r.Get("/food/export", api.ExportFoodDay)

		r.Post("/supplements", api.LogSupplement)
		r.Get("/supplements", api.GetSupplements)

		r.Post("/weight", api.LogWeight)
		r.Get("/weight", api.GetWeights)
	})

	return r
}
