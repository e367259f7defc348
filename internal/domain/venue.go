package domain

import "context"

// Venue is a place where events happen. Capacity is optional.
type Venue struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	City     *string `json:"city,omitempty"`
	Country  *string `json:"country,omitempty"`
	Timezone string  `json:"timezone"`
	Capacity *int    `json:"capacity,omitempty"`
}

// VenueRepository defines the interface for venue storage
type VenueRepository interface {
	ListAll(ctx context.Context) ([]*Venue, error)
}

// VenueService lists reference venues.
type VenueService interface {
	ListVenues(ctx context.Context) ([]*Venue, error)
}
