package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"sportsevents/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// Create inserts the event and its participants inside one transaction so a
// constraint violation on any row leaves nothing behind.
func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO events (sport_id, venue_id, title, description, starts_at, ends_at, status, ticket_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		e.SportID, e.VenueID, e.Title, e.Description,
		e.StartsAt, e.EndsAt, string(e.Status), e.TicketURL,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		_ = tx.Rollback()
		return translateConstraint(err)
	}

	for _, p := range e.Participants {
		p.EventID = e.ID
		err := tx.QueryRowContext(ctx,
			`INSERT INTO event_participants (event_id, team_id, role) VALUES ($1, $2, $3) RETURNING id`,
			e.ID, p.TeamID, string(p.Role),
		).Scan(&p.ID)
		if err != nil {
			_ = tx.Rollback()
			return translateConstraint(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return translateConstraint(err)
	}
	return nil
}

const eventColumns = `id, sport_id, venue_id, title, description, starts_at, ends_at, status, ticket_url, created_at, updated_at`

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.hydrateParticipants(ctx, []*domain.Event{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// List applies the filter parameters conjunctively, orders by start time with
// the event id as a deterministic tie-break, and paginates. Returned events
// carry their full participant list.
func (r *eventRepository) List(ctx context.Context, params domain.EventListParams) ([]*domain.Event, error) {
	var conds []string
	var args []interface{}
	n := 1

	if params.SportID != "" {
		conds = append(conds, fmt.Sprintf("sport_id = $%d", n))
		args = append(args, params.SportID)
		n++
	}
	if params.VenueID != "" {
		conds = append(conds, fmt.Sprintf("venue_id = $%d", n))
		args = append(args, params.VenueID)
		n++
	}
	if params.Status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", n))
		args = append(args, string(params.Status))
		n++
	}
	if params.Overlap && params.DateFrom != nil && params.DateTo != nil {
		conds = append(conds, fmt.Sprintf("ends_at >= $%d AND starts_at <= $%d", n, n+1))
		args = append(args, *params.DateFrom, *params.DateTo)
		n += 2
	} else {
		if params.DateFrom != nil {
			conds = append(conds, fmt.Sprintf("starts_at >= $%d", n))
			args = append(args, *params.DateFrom)
			n++
		}
		if params.DateTo != nil {
			conds = append(conds, fmt.Sprintf("starts_at <= $%d", n))
			args = append(args, *params.DateTo)
			n++
		}
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	dir := "ASC"
	if params.OrderDesc {
		dir = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY starts_at %s, id %s", dir, dir)
	if limit := params.Pagination.Limit(); limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", n, n+1)
		args = append(args, limit, params.Pagination.Offset())
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.hydrateParticipants(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

// hydrateParticipants attaches the participant lists (with team names) to the
// given events in one batched query.
func (r *eventRepository) hydrateParticipants(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		e.Participants = make([]*domain.EventParticipant, 0)
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT p.id, p.event_id, p.team_id, t.name, p.role
		FROM event_participants p
		JOIN teams t ON t.id = p.team_id
		WHERE p.event_id = ANY($1)
		ORDER BY p.event_id, p.id
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p := &domain.EventParticipant{}
		var role string
		if err := rows.Scan(&p.ID, &p.EventID, &p.TeamID, &p.TeamName, &role); err != nil {
			return err
		}
		p.Role = domain.ParticipantRole(role)
		if e, ok := byID[p.EventID]; ok {
			e.Participants = append(e.Participants, p)
		}
	}
	return rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var venueNull, descNull, ticketNull sql.NullString
	var status string
	err := row.Scan(
		&e.ID, &e.SportID, &venueNull, &e.Title, &descNull,
		&e.StartsAt, &e.EndsAt, &status, &ticketNull,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	if venueNull.Valid {
		e.VenueID = &venueNull.String
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if ticketNull.Valid {
		e.TicketURL = &ticketNull.String
	}
	return e, nil
}
