package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"sportsevents/config"
	"sportsevents/internal/repository/postgres"
)

func main() {
	file := flag.String("file", "", "YAML seed data file (defaults to the built-in reference data)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	data := postgres.DefaultSeedData()
	if *file != "" {
		if data, err = postgres.LoadSeedFile(*file); err != nil {
			log.Fatalf("load seed file: %v", err)
		}
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := postgres.SeedReferenceData(context.Background(), db, data); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeded reference data: %d sports, %d venues, %d teams",
		len(data.Sports), len(data.Venues), len(data.Teams))
}
