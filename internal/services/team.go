package services

import (
	"context"
	"fmt"
	"time"

	"sportsevents/internal/domain"
)

type teamService struct {
	teamRepo       domain.TeamRepository
	contextTimeout time.Duration
}

func NewTeamService(teamRepo domain.TeamRepository, timeout time.Duration) domain.TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		contextTimeout: timeout,
	}
}

// ListTeams returns teams ordered by name. sportID is optional; empty lists
// teams across all sports.
func (s *teamService) ListTeams(ctx context.Context, sportID string) ([]*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	teams, err := s.teamRepo.List(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if teams == nil {
		teams = []*domain.Team{}
	}
	return teams, nil
}
