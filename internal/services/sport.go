package services

import (
	"context"
	"fmt"
	"time"

	"sportsevents/internal/domain"
)

type sportService struct {
	sportRepo      domain.SportRepository
	contextTimeout time.Duration
}

func NewSportService(sportRepo domain.SportRepository, timeout time.Duration) domain.SportService {
	return &sportService{
		sportRepo:      sportRepo,
		contextTimeout: timeout,
	}
}

func (s *sportService) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sports, err := s.sportRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	if sports == nil {
		sports = []*domain.Sport{}
	}
	return sports, nil
}
