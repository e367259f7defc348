package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"sportsevents/internal/delivery/http/helpers"
	"sportsevents/internal/domain"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 10000
	maxTicketURLLen   = 512
)

// ParticipantRequest is one participant entry in a create-event body.
// Role defaults to "participant" when omitted.
type ParticipantRequest struct {
	TeamID string `json:"team_id"`
	Role   string `json:"role"`
}

// CreateEventRequest is the request body for POST /events. Timestamps are
// RFC 3339 strings and must carry a timezone offset.
type CreateEventRequest struct {
	SportID      string               `json:"sport_id"`
	VenueID      *string              `json:"venue_id"`
	Title        string               `json:"title"`
	Description  *string              `json:"description"`
	StartsAt     string               `json:"starts_at"`
	EndsAt       string               `json:"ends_at"`
	Status       string               `json:"status"`
	TicketURL    *string              `json:"ticket_url"`
	Participants []ParticipantRequest `json:"participants"`
}

// Validate implements helpers.Validator. It covers field shape only; the
// cross-field and cross-entity invariants belong to the event service.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.SportID == "" {
		errs = append(errs, "sport_id is required")
	} else if _, err := helpers.ParseUUID(c.SportID, "sport_id"); err != nil {
		errs = append(errs, err.Error())
	}
	if c.VenueID != nil {
		if _, err := helpers.ParseUUID(*c.VenueID, "venue_id"); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if c.Title == "" {
		errs = append(errs, "title is required")
	} else if len(c.Title) > maxTitleLen {
		errs = append(errs, "title must be at most 255 characters")
	}
	if c.Description != nil && len(*c.Description) > maxDescriptionLen {
		errs = append(errs, "description must be at most 10000 characters")
	}
	if c.TicketURL != nil && len(*c.TicketURL) > maxTicketURLLen {
		errs = append(errs, "ticket_url must be at most 512 characters")
	}
	if c.StartsAt == "" {
		errs = append(errs, "starts_at is required")
	}
	if c.EndsAt == "" {
		errs = append(errs, "ends_at is required")
	}
	for _, p := range c.Participants {
		if p.TeamID == "" {
			errs = append(errs, "participant team_id is required")
		} else if _, err := helpers.ParseUUID(p.TeamID, "team_id"); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

// CreateEventSuccessResponse is the success envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope for GET /events (200).
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create an event for a sport, optionally at a venue, with an optional participant list (team id + role). Timestamps must be RFC 3339 with a timezone offset and the start must precede the end. At most one home and one away participant; a team may appear only once.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event; Location header points at it"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed body)"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (storage constraint)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	startsAt, err := parseEventTime(req.StartsAt)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation,
			"Event timestamps must be timezone-aware (UTC).")
		return
	}
	endsAt, err := parseEventTime(req.EndsAt)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation,
			"Event timestamps must be timezone-aware (UTC).")
		return
	}

	status := domain.StatusScheduled
	if req.Status != "" {
		status, err = domain.ParseEventStatus(req.Status)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, err.Error())
			return
		}
	}

	event := &domain.Event{
		SportID:     req.SportID,
		VenueID:     req.VenueID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		Status:      status,
		TicketURL:   req.TicketURL,
	}
	for _, p := range req.Participants {
		role := p.Role
		if role == "" {
			role = string(domain.RoleParticipant)
		}
		event.Participants = append(event.Participants, &domain.EventParticipant{
			TeamID: p.TeamID,
			Role:   domain.ParticipantRole(role),
		})
	}

	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, verr.Message)
			return
		}
		var cerr *domain.ConstraintError
		if errors.As(err, &cerr) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, cerr.Message)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	w.Header().Set("Location", "/api/v1/events/"+event.ID)
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Description Filtered, ordered, paginated event listing. Filters: sport_id, venue_id, status, date_from, date_to (RFC 3339 with offset, bounding the start time). order is asc (default) or desc by start time. An out-of-range page returns an empty array.
// @Tags events
// @Produce json
// @Param sport_id query string false "Filter by sport UUID"
// @Param venue_id query string false "Filter by venue UUID"
// @Param status query string false "Filter by status (scheduled|live|finished|cancelled)"
// @Param date_from query string false "start >= date_from"
// @Param date_to query string false "start <= date_to"
// @Param order query string false "asc or desc (default asc)"
// @Param page query int false "Page number (1-based, default 1)"
// @Param page_size query int false "Items per page (1-100, default 20)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events (possibly empty)"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error (bad filter or pagination params)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params, err := helpers.ParseEventListParams(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, err.Error())
		return
	}
	events, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEventByIDSuccessResponse is the success envelope for GET /events/{eventID} (200).
type GetEventByIDSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Returns the event with its full participant list.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.GetEventByIDSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error (malformed UUID)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.ParseUUID(r.PathValue("eventID"), "eventID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, err.Error())
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Event not found.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// parseEventTime parses an RFC 3339 timestamp. RFC 3339 always carries an
// offset, so a naive timestamp fails here rather than deeper down.
func parseEventTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
