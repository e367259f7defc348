package postgres

import (
	"context"
	"database/sql"

	"sportsevents/internal/domain"
)

type sportRepository struct {
	DB *sql.DB
}

func NewSportRepository(db *sql.DB) domain.SportRepository {
	return &sportRepository{
		DB: db,
	}
}

func (r *sportRepository) ListAll(ctx context.Context) ([]*domain.Sport, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, code, name FROM sports ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		s := &domain.Sport{}
		if err := rows.Scan(&s.ID, &s.Code, &s.Name); err != nil {
			return nil, err
		}
		sports = append(sports, s)
	}
	return sports, rows.Err()
}
