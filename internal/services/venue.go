package services

import (
	"context"
	"fmt"
	"time"

	"sportsevents/internal/domain"
)

type venueService struct {
	venueRepo      domain.VenueRepository
	contextTimeout time.Duration
}

func NewVenueService(venueRepo domain.VenueRepository, timeout time.Duration) domain.VenueService {
	return &venueService{
		venueRepo:      venueRepo,
		contextTimeout: timeout,
	}
}

func (s *venueService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.venueRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	if venues == nil {
		venues = []*domain.Venue{}
	}
	return venues, nil
}
