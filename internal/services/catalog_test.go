package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsevents/internal/domain"
)

type fakeSportRepo struct {
	sports []*domain.Sport
	err    error
}

func (f *fakeSportRepo) ListAll(ctx context.Context) ([]*domain.Sport, error) {
	return f.sports, f.err
}

func TestSportService_ListSports(t *testing.T) {
	svc := NewSportService(&fakeSportRepo{sports: []*domain.Sport{
		{ID: "s-1", Code: "soccer", Name: "Soccer"},
	}}, time.Second)

	sports, err := svc.ListSports(context.Background())
	require.NoError(t, err)
	require.Len(t, sports, 1)
	assert.Equal(t, "soccer", sports[0].Code)
}

func TestSportService_ListSports_NilBecomesEmpty(t *testing.T) {
	svc := NewSportService(&fakeSportRepo{}, time.Second)
	sports, err := svc.ListSports(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, sports)
	assert.Empty(t, sports)
}

func TestSportService_ListSports_Error(t *testing.T) {
	svc := NewSportService(&fakeSportRepo{err: errors.New("boom")}, time.Second)
	_, err := svc.ListSports(context.Background())
	require.Error(t, err)
}

type fakeVenueRepo struct {
	venues []*domain.Venue
	err    error
}

func (f *fakeVenueRepo) ListAll(ctx context.Context) ([]*domain.Venue, error) {
	return f.venues, f.err
}

func TestVenueService_ListVenues(t *testing.T) {
	svc := NewVenueService(&fakeVenueRepo{venues: []*domain.Venue{
		{ID: "v-1", Name: "Gran Arena", Timezone: "Europe/Madrid"},
	}}, time.Second)

	venues, err := svc.ListVenues(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "Gran Arena", venues[0].Name)
}

func TestVenueService_ListVenues_NilBecomesEmpty(t *testing.T) {
	svc := NewVenueService(&fakeVenueRepo{}, time.Second)
	venues, err := svc.ListVenues(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, venues)
	assert.Empty(t, venues)
}

func TestTeamService_ListTeams(t *testing.T) {
	soccer := &domain.Team{ID: "t-1", SportID: "s-1", Name: "London City FC"}
	hoops := &domain.Team{ID: "t-2", SportID: "s-2", Name: "Metro Ballers"}
	svc := NewTeamService(newFakeTeamRepo(soccer, hoops), time.Second)

	teams, err := svc.ListTeams(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "London City FC", teams[0].Name, "alphabetical by name")

	teams, err = svc.ListTeams(context.Background(), "s-2")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Metro Ballers", teams[0].Name)
}
