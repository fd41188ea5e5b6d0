package servicetype

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("service not found")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

// ServiceType is a bookable offering with a fixed duration.
// ResourceIDs is the set of resources able to perform the service;
// a reservation for the service occupies exactly one of them.
type ServiceType struct {
	ID              string
	Name            string
	DurationMinutes int
	ResourceIDs     []string
	CreatedAt       time.Time
}

// Duration returns the service duration as a time.Duration.
func (s *ServiceType) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
