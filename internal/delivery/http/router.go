package http

import (
	"encoding/json"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"sportsevents/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(events *controllers.EventController, catalog *controllers.CatalogController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("POST /api/v1/events", events.CreateEvent)
	mux.HandleFunc("GET /api/v1/events", events.ListEvents)
	mux.HandleFunc("GET /api/v1/events/{eventID}", events.GetEventByID)
	mux.HandleFunc("GET /api/v1/sports", catalog.ListSports)
	mux.HandleFunc("GET /api/v1/venues", catalog.ListVenues)
	mux.HandleFunc("GET /api/v1/teams", catalog.ListTeams)

	// Liveness probe, no core involvement
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
