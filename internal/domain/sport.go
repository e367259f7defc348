package domain

import "context"

// Sport is a reference-data sport (e.g. soccer). Code is a stable unique slug.
type Sport struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// SportRepository defines the interface for sport storage
type SportRepository interface {
	ListAll(ctx context.Context) ([]*Sport, error)
}

// SportService lists reference sports.
type SportService interface {
	ListSports(ctx context.Context) ([]*Sport, error)
}
