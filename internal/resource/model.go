package resource

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("resource not found")
	ErrEmptyName = errors.New("name cannot be empty")
	ErrNameTaken = errors.New("resource name already in use")
)

// Resource represents an interchangeable bookable unit (e.g. Lift 1, Bay A).
// Its busyness is derived from the reservations referencing it, never stored.
type Resource struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
