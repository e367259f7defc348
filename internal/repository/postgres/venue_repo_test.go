package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("alphabetical with nullable fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, city, country, timezone, capacity\s+FROM venues\s+ORDER BY name`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "country", "timezone", "capacity"}).
				AddRow("venue-1", "Gran Arena", "Madrid", "ES", "Europe/Madrid", 52000).
				AddRow("venue-2", "Riverside Park", nil, nil, "UTC", nil))

		repo := NewVenueRepository(db)
		venues, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, venues, 2)

		assert.Equal(t, "Gran Arena", venues[0].Name)
		require.NotNil(t, venues[0].City)
		assert.Equal(t, "Madrid", *venues[0].City)
		require.NotNil(t, venues[0].Capacity)
		assert.Equal(t, 52000, *venues[0].Capacity)

		assert.Nil(t, venues[1].City)
		assert.Nil(t, venues[1].Country)
		assert.Nil(t, venues[1].Capacity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, city, country, timezone, capacity`).
			WillReturnError(sql.ErrConnDone)

		repo := NewVenueRepository(db)
		_, err = repo.ListAll(ctx)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
