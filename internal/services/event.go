package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"sportsevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	teamRepo       domain.TeamRepository
	clock          clockwork.Clock
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	teamRepo domain.TeamRepository,
	clock clockwork.Clock,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		teamRepo:       teamRepo,
		clock:          clock,
		contextTimeout: timeout,
	}
}

// CreateEvent validates the event and persists it with its participants as one
// atomic unit. Validation runs entirely before the write and short-circuits on
// the first failure; on any validation error nothing is persisted.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateTimeWindow(event.StartsAt, event.EndsAt); err != nil {
		return err
	}
	if err := validateParticipantRoles(event.Participants); err != nil {
		return err
	}
	if len(event.Participants) > 0 {
		if err := s.validateParticipantTeams(ctx, event); err != nil {
			return err
		}
	}

	if event.Status == "" {
		event.Status = domain.StatusScheduled
	}
	now := s.clock.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// ListEvents returns the filtered page. An out-of-range page is an empty
// slice, never an error.
func (s *eventService) ListEvents(ctx context.Context, params domain.EventListParams) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func validateTimeWindow(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return domain.NewValidationError("Event timestamps must be timezone-aware (UTC).")
	}
	if !startsAt.Before(endsAt) {
		return domain.NewValidationError("Event end time must be after start time.")
	}
	return nil
}

// validateParticipantRoles rejects unknown roles and duplicate home/away
// roles. The participant role carries no uniqueness constraint.
func validateParticipantRoles(participants []*domain.EventParticipant) error {
	seen := make(map[domain.ParticipantRole]bool, 2)
	for _, p := range participants {
		role, err := domain.ParseParticipantRole(string(p.Role))
		if err != nil {
			return domain.NewValidationError(fmt.Sprintf("Unknown participant role: %s", p.Role))
		}
		if role != domain.RoleHome && role != domain.RoleAway {
			continue
		}
		if seen[role] {
			return domain.NewValidationError(fmt.Sprintf("Duplicate role detected: %s.", role))
		}
		seen[role] = true
	}
	return nil
}

func (s *eventService) validateParticipantTeams(ctx context.Context, event *domain.Event) error {
	ids := make([]string, 0, len(event.Participants))
	unique := make(map[string]bool, len(event.Participants))
	for _, p := range event.Participants {
		if unique[p.TeamID] {
			return domain.NewValidationError("Duplicate participant teams are not allowed.")
		}
		unique[p.TeamID] = true
		ids = append(ids, p.TeamID)
	}

	teams, err := s.teamRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get participant teams: %w", err)
	}
	if len(teams) != len(ids) {
		return domain.NewValidationError("One or more participant teams do not exist.")
	}
	for _, team := range teams {
		if team.SportID != event.SportID {
			return domain.NewValidationError(fmt.Sprintf("Team '%s' does not belong to the event sport.", team.Name))
		}
	}
	return nil
}
