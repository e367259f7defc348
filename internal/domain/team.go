package domain

import "context"

// Team belongs to exactly one sport; its name is unique within that sport.
type Team struct {
	ID          string  `json:"id"`
	SportID     string  `json:"sport_id"`
	Name        string  `json:"name"`
	Abbr        *string `json:"abbr,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
}

// TeamRepository defines the interface for team storage
type TeamRepository interface {
	// GetByIDs returns the teams matching the given ids; missing ids are
	// simply absent from the result.
	GetByIDs(ctx context.Context, ids []string) ([]*Team, error)
	// List returns teams ordered by name, optionally filtered by sport.
	List(ctx context.Context, sportID string) ([]*Team, error)
}

// TeamService lists reference teams.
type TeamService interface {
	ListTeams(ctx context.Context, sportID string) ([]*Team, error)
}
