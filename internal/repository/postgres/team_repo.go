package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"sportsevents/internal/domain"
)

type teamRepository struct {
	DB *sql.DB
}

func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &teamRepository{
		DB: db,
	}
}

func (r *teamRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Team, error) {
	if len(ids) == 0 {
		return []*domain.Team{}, nil
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, sport_id, name, abbr, founded_year
		FROM teams
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTeams(rows)
}

func (r *teamRepository) List(ctx context.Context, sportID string) ([]*domain.Team, error) {
	query := `
		SELECT id, sport_id, name, abbr, founded_year
		FROM teams
	`
	var args []interface{}
	if sportID != "" {
		query += ` WHERE sport_id = $1`
		args = append(args, sportID)
	}
	query += ` ORDER BY name`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTeams(rows)
}

func scanTeams(rows *sql.Rows) ([]*domain.Team, error) {
	teams := make([]*domain.Team, 0)
	for rows.Next() {
		t := &domain.Team{}
		var abbrNull sql.NullString
		var foundedNull sql.NullInt64
		if err := rows.Scan(&t.ID, &t.SportID, &t.Name, &abbrNull, &foundedNull); err != nil {
			return nil, err
		}
		if abbrNull.Valid {
			t.Abbr = &abbrNull.String
		}
		if foundedNull.Valid {
			year := int(foundedNull.Int64)
			t.FoundedYear = &year
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
