package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"sportsevents/internal/domain"
)

// constraintMessages maps schema constraint names to stable human-readable
// causes. This table is the only place that depends on storage-specific
// constraint identifiers; keep it in sync with migrations/0001_core_tables.sql.
var constraintMessages = map[string]string{
	"events_starts_before_ends":                     "Event end time must be after the start time.",
	"fk_events_sport_id_sports":                     "Sport referenced by sport_id does not exist.",
	"fk_events_venue_id_venues":                     "Venue referenced by venue_id does not exist.",
	"fk_event_participants_team_id_teams":           "One or more participant teams do not exist.",
	"uq_event_participants_event_id_team_id":        "Each team can only be added once to an event.",
	"uq_event_participants_event_id_role_home_away": "Only one home and one away participant is allowed per event.",
}

// translateConstraint maps a lib/pq integrity error (SQLSTATE class 23) to a
// *domain.ConstraintError with a translated cause. When the constraint name is
// unavailable it falls back to substring matching on the raw message, and
// finally to a generic cause that still names the constraint when known.
// Non-integrity errors are returned unchanged.
func translateConstraint(err error) error {
	var perr *pq.Error
	if !errors.As(err, &perr) || perr.Code.Class() != "23" {
		return err
	}

	if msg, ok := constraintMessages[perr.Constraint]; ok {
		return &domain.ConstraintError{Constraint: perr.Constraint, Message: msg}
	}

	raw := strings.ToLower(perr.Message + " " + perr.Detail)
	for name, msg := range constraintMessages {
		if strings.Contains(raw, name) {
			return &domain.ConstraintError{Constraint: name, Message: msg}
		}
	}

	if perr.Constraint != "" {
		return &domain.ConstraintError{
			Constraint: perr.Constraint,
			Message:    fmt.Sprintf("Constraint violation (%s) while creating event.", perr.Constraint),
		}
	}
	return &domain.ConstraintError{Message: "Constraint violation while creating event."}
}
