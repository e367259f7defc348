package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedSport, SeedVenue, and SeedTeam describe reference rows to insert.
// Teams reference their sport by code so seed files stay id-free.
type SeedSport struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type SeedVenue struct {
	Name     string `yaml:"name"`
	City     string `yaml:"city"`
	Country  string `yaml:"country"`
	Timezone string `yaml:"timezone"`
	Capacity int    `yaml:"capacity"`
}

type SeedTeam struct {
	SportCode string `yaml:"sport_code"`
	Name      string `yaml:"name"`
	Abbr      string `yaml:"abbr"`
}

// SeedData is the full reference-data set for SeedReferenceData.
type SeedData struct {
	Sports []SeedSport `yaml:"sports"`
	Venues []SeedVenue `yaml:"venues"`
	Teams  []SeedTeam  `yaml:"teams"`
}

// DefaultSeedData returns the built-in reference data set.
func DefaultSeedData() *SeedData {
	return &SeedData{
		Sports: []SeedSport{
			{Code: "soccer", Name: "Soccer"},
			{Code: "basketball", Name: "Basketball"},
			{Code: "tennis", Name: "Tennis"},
		},
		Venues: []SeedVenue{
			{Name: "National Arena", City: "London", Country: "UK", Timezone: "Europe/London", Capacity: 60000},
			{Name: "Downtown Stadium", City: "New York", Country: "USA", Timezone: "America/New_York", Capacity: 45000},
		},
		Teams: []SeedTeam{
			{SportCode: "soccer", Name: "London City FC", Abbr: "LCF"},
			{SportCode: "soccer", Name: "New York United", Abbr: "NYU"},
			{SportCode: "basketball", Name: "Metro Ballers", Abbr: "MBL"},
			{SportCode: "basketball", Name: "Downtown Shooters", Abbr: "DTS"},
			{SportCode: "tennis", Name: "Baseline Smashers", Abbr: "BSM"},
			{SportCode: "tennis", Name: "Court Masters", Abbr: "CM"},
		},
	}
}

// LoadSeedFile reads a YAML seed-data file.
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// SeedReferenceData inserts the given reference rows if they don't exist.
// Safe to run repeatedly; existing rows are left untouched.
func SeedReferenceData(ctx context.Context, db *sql.DB, data *SeedData) error {
	sportIDs, err := seedSports(ctx, db, data.Sports)
	if err != nil {
		return fmt.Errorf("seed sports: %w", err)
	}
	if err := seedVenues(ctx, db, data.Venues); err != nil {
		return fmt.Errorf("seed venues: %w", err)
	}
	if err := seedTeams(ctx, db, data.Teams, sportIDs); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	return nil
}

func seedSports(ctx context.Context, db *sql.DB, sports []SeedSport) (map[string]string, error) {
	for _, s := range sports {
		_, err := db.ExecContext(ctx,
			`INSERT INTO sports (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
			s.Code, s.Name)
		if err != nil {
			return nil, err
		}
	}

	ids := make(map[string]string, len(sports))
	rows, err := db.QueryContext(ctx, `SELECT id, code FROM sports`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id, code string
		if err := rows.Scan(&id, &code); err != nil {
			return nil, err
		}
		ids[code] = id
	}
	return ids, rows.Err()
}

func seedVenues(ctx context.Context, db *sql.DB, venues []SeedVenue) error {
	for _, v := range venues {
		var exists bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM venues WHERE name = $1 AND city = $2)`,
			v.Name, v.City).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO venues (name, city, country, timezone, capacity) VALUES ($1, $2, $3, $4, $5)`,
			v.Name, v.City, v.Country, v.Timezone, v.Capacity)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedTeams(ctx context.Context, db *sql.DB, teams []SeedTeam, sportIDs map[string]string) error {
	for _, t := range teams {
		sportID, ok := sportIDs[t.SportCode]
		if !ok {
			return fmt.Errorf("team %q references unknown sport code %q", t.Name, t.SportCode)
		}
		_, err := db.ExecContext(ctx, `
			INSERT INTO teams (sport_id, name, abbr)
			VALUES ($1, $2, $3)
			ON CONFLICT ON CONSTRAINT uq_teams_sport_id_name DO NOTHING
		`, sportID, t.Name, t.Abbr)
		if err != nil {
			return err
		}
	}
	return nil
}
