package postgres

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedReferenceData(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	data := &SeedData{
		Sports: []SeedSport{{Code: "soccer", Name: "Soccer"}},
		Venues: []SeedVenue{{Name: "National Arena", City: "London", Country: "UK", Timezone: "Europe/London", Capacity: 60000}},
		Teams:  []SeedTeam{{SportCode: "soccer", Name: "London City FC", Abbr: "LCF"}},
	}

	mock.ExpectExec(`INSERT INTO sports \(code, name\)`).
		WithArgs("soccer", "Soccer").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, code FROM sports`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}).AddRow("sport-1", "soccer"))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("National Arena", "London").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO venues`).
		WithArgs("National Arena", "London", "UK", "Europe/London", 60000).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO teams`).
		WithArgs("sport-1", "London City FC", "LCF").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, SeedReferenceData(context.Background(), db, data))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedReferenceData_SkipsExistingVenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	data := &SeedData{
		Venues: []SeedVenue{{Name: "National Arena", City: "London", Timezone: "Europe/London"}},
	}

	mock.ExpectQuery(`SELECT id, code FROM sports`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("National Arena", "London").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, SeedReferenceData(context.Background(), db, data))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedReferenceData_UnknownSportCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	data := &SeedData{
		Teams: []SeedTeam{{SportCode: "cricket", Name: "Wanderers"}},
	}

	mock.ExpectQuery(`SELECT id, code FROM sports`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}))

	err = SeedReferenceData(context.Background(), db, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cricket")
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sports:
  - code: chess
    name: Chess
teams:
  - sport_code: chess
    name: Kings Club
    abbr: KC
`), 0o600))

	data, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, data.Sports, 1)
	assert.Equal(t, "chess", data.Sports[0].Code)
	require.Len(t, data.Teams, 1)
	assert.Equal(t, "Kings Club", data.Teams[0].Name)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
