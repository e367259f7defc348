package domain

import (
	"context"
	"fmt"
	"time"
)

// EventStatus is the lifecycle status of an event. The set is closed;
// unrecognized values are rejected at the boundary, never coerced.
type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusLive      EventStatus = "live"
	StatusFinished  EventStatus = "finished"
	StatusCancelled EventStatus = "cancelled"
)

// ParseEventStatus returns the EventStatus for s, or an error for values
// outside the closed set.
func ParseEventStatus(s string) (EventStatus, error) {
	switch EventStatus(s) {
	case StatusScheduled, StatusLive, StatusFinished, StatusCancelled:
		return EventStatus(s), nil
	}
	return "", fmt.Errorf("unknown event status: %s", s)
}

// ParticipantRole is a team's role in an event. home and away are
// distinguished roles: at most one of each per event. participant may repeat.
type ParticipantRole string

const (
	RoleHome        ParticipantRole = "home"
	RoleAway        ParticipantRole = "away"
	RoleParticipant ParticipantRole = "participant"
)

// ParseParticipantRole returns the ParticipantRole for s, or an error for
// values outside the closed set.
func ParseParticipantRole(s string) (ParticipantRole, error) {
	switch ParticipantRole(s) {
	case RoleHome, RoleAway, RoleParticipant:
		return ParticipantRole(s), nil
	}
	return "", fmt.Errorf("unknown participant role: %s", s)
}

// EventParticipant links a team to an event with a role. Participants have no
// identity outside their event: they are written and deleted with it.
type EventParticipant struct {
	ID       string          `json:"id"`
	EventID  string          `json:"event_id"`
	TeamID   string          `json:"team_id"`
	TeamName string          `json:"team_name,omitempty"`
	Role     ParticipantRole `json:"role"`
}

// Event is a scheduled occurrence tied to a sport, optionally a venue, with a
// time window, a status, and an owned participant list.
type Event struct {
	ID           string              `json:"id"`
	SportID      string              `json:"sport_id"`
	VenueID      *string             `json:"venue_id,omitempty"`
	Title        string              `json:"title"`
	Description  *string             `json:"description,omitempty"`
	StartsAt     time.Time           `json:"starts_at"`
	EndsAt       time.Time           `json:"ends_at"`
	Status       EventStatus         `json:"status"`
	TicketURL    *string             `json:"ticket_url,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Participants []*EventParticipant `json:"participants"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// Create persists the event and its participants as one atomic unit and
	// fills in server-assigned ids. A storage constraint violation is returned
	// as a *ConstraintError and nothing is persisted.
	Create(ctx context.Context, event *Event) error
	// GetByID returns the event with participants hydrated, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns the filtered, ordered, paginated events with participants
	// hydrated. An out-of-range page yields an empty slice, not an error.
	List(ctx context.Context, params EventListParams) ([]*Event, error)
}

// EventService validates and orchestrates event creation and reads.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context, params EventListParams) ([]*Event, error)
}
