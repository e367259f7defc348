package postgres

import (
	"context"
	"database/sql"

	"sportsevents/internal/domain"
)

type venueRepository struct {
	DB *sql.DB
}

func NewVenueRepository(db *sql.DB) domain.VenueRepository {
	return &venueRepository{
		DB: db,
	}
}

func (r *venueRepository) ListAll(ctx context.Context) ([]*domain.Venue, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, city, country, timezone, capacity
		FROM venues
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v := &domain.Venue{}
		var cityNull, countryNull sql.NullString
		var capacityNull sql.NullInt64
		if err := rows.Scan(&v.ID, &v.Name, &cityNull, &countryNull, &v.Timezone, &capacityNull); err != nil {
			return nil, err
		}
		if cityNull.Valid {
			v.City = &cityNull.String
		}
		if countryNull.Valid {
			v.Country = &countryNull.String
		}
		if capacityNull.Valid {
			c := int(capacityNull.Int64)
			v.Capacity = &c
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}
