package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "sport_id", "name", "abbr", "founded_year"})
}

func TestTeamRepository_GetByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input short-circuits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewTeamRepository(db)
		teams, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, teams)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns matching teams only", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM teams\s+WHERE id = ANY\(\$1\)`).
			WithArgs(pq.Array([]string{"team-1", "team-404"})).
			WillReturnRows(teamRows().AddRow("team-1", "sport-1", "London City FC", "LCF", 1905))

		repo := NewTeamRepository(db)
		teams, err := repo.GetByIDs(ctx, []string{"team-1", "team-404"})
		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Equal(t, "London City FC", teams[0].Name)
		require.NotNil(t, teams[0].Abbr)
		assert.Equal(t, "LCF", *teams[0].Abbr)
		require.NotNil(t, teams[0].FoundedYear)
		assert.Equal(t, 1905, *teams[0].FoundedYear)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTeamRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("all teams ordered by name", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM teams\s+ORDER BY name`).
			WillReturnRows(teamRows().
				AddRow("team-2", "sport-1", "Downtown Shooters", nil, nil).
				AddRow("team-1", "sport-1", "London City FC", "LCF", nil))

		repo := NewTeamRepository(db)
		teams, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Nil(t, teams[0].Abbr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered by sport", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM teams\s+WHERE sport_id = \$1 ORDER BY name`).
			WithArgs("sport-1").
			WillReturnRows(teamRows().AddRow("team-1", "sport-1", "London City FC", nil, nil))

		repo := NewTeamRepository(db)
		teams, err := repo.List(ctx, "sport-1")
		require.NoError(t, err)
		require.Len(t, teams, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
