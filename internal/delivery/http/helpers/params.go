package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"sportsevents/internal/domain"
)

// ParseEventListParams reads the event listing filters from the query string:
// sport_id, venue_id, status, date_from, date_to (RFC 3339 with offset),
// order (asc|desc), page, page_size. Invalid values are rejected, not
// defaulted; the returned error message is safe to surface with a 422.
func ParseEventListParams(r *http.Request) (domain.EventListParams, error) {
	q := r.URL.Query()
	var params domain.EventListParams

	sportID, err := parseUUIDParam(q.Get("sport_id"), "sport_id")
	if err != nil {
		return params, err
	}
	params.SportID = sportID

	venueID, err := parseUUIDParam(q.Get("venue_id"), "venue_id")
	if err != nil {
		return params, err
	}
	params.VenueID = venueID

	if s := q.Get("status"); s != "" {
		status, err := domain.ParseEventStatus(s)
		if err != nil {
			return params, err
		}
		params.Status = status
	}

	params.DateFrom, err = parseTimeParam(q.Get("date_from"), "date_from")
	if err != nil {
		return params, err
	}
	params.DateTo, err = parseTimeParam(q.Get("date_to"), "date_to")
	if err != nil {
		return params, err
	}
	if params.DateFrom != nil && params.DateTo != nil && params.DateFrom.After(*params.DateTo) {
		return params, fmt.Errorf("date_from must be <= date_to")
	}

	switch q.Get("order") {
	case "", "asc":
	case "desc":
		params.OrderDesc = true
	default:
		return params, fmt.Errorf("order must be asc or desc")
	}

	page, err := parseIntParam(q.Get("page"), "page", domain.DefaultPage)
	if err != nil {
		return params, err
	}
	pageSize, err := parseIntParam(q.Get("page_size"), "page_size", domain.DefaultPageSize)
	if err != nil {
		return params, err
	}
	params.Pagination, err = domain.NewPagination(page, pageSize, domain.MaxPageSize)
	if err != nil {
		return params, err
	}

	return params, nil
}

// ParseUUID validates an id taken from a path or query parameter.
func ParseUUID(s, name string) (string, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("%s must be a valid UUID", name)
	}
	return s, nil
}

func parseUUIDParam(s, name string) (string, error) {
	if s == "" {
		return "", nil
	}
	return ParseUUID(s, name)
}

func parseTimeParam(s, name string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC 3339 timestamp with timezone offset", name)
	}
	return &t, nil
}

func parseIntParam(s, name string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
