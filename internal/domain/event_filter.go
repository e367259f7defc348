package domain

import "time"

// EventListParams is an immutable query descriptor for event listings. All
// filters are optional and conjunctive; an empty value selects all events.
//
// DateFrom and DateTo bound the event start time by default. With Overlap set
// they instead select events whose [StartsAt, EndsAt] interval intersects
// [DateFrom, DateTo]. The two range semantics are mutually exclusive per query
// and must be chosen explicitly.
type EventListParams struct {
	SportID    string
	VenueID    string
	Status     EventStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	Overlap    bool
	OrderDesc  bool
	Pagination Pagination
}
