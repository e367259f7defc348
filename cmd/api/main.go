package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"

	"sportsevents/config"
	_ "sportsevents/docs"
	delivery "sportsevents/internal/delivery/http"
	"sportsevents/internal/delivery/http/controllers"
	"sportsevents/internal/delivery/http/middleware"
	"sportsevents/internal/repository/postgres"
	"sportsevents/internal/services"
)

const requestTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	sportRepo := postgres.NewSportRepository(db)
	venueRepo := postgres.NewVenueRepository(db)

	clock := clockwork.NewRealClock()
	eventService := services.NewEventService(eventRepo, teamRepo, clock, requestTimeout)
	sportService := services.NewSportService(sportRepo, requestTimeout)
	venueService := services.NewVenueService(venueRepo, requestTimeout)
	teamService := services.NewTeamService(teamRepo, requestTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	catalogController := controllers.NewCatalogController(logger, sportService, venueService, teamService)

	mux := delivery.NewRouter(eventController, catalogController)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}
