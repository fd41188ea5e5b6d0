package reservation

import (
	"net/http"
	"time"

	"github.com/zdzdigital/booky-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "reservation not found")
	ErrSlotConflict     = apperror.New(http.StatusConflict, "slot fully booked")
	ErrNoResources      = apperror.New(http.StatusBadRequest, "no resources configured for service")
	ErrServiceNotFound  = apperror.New(http.StatusBadRequest, "service not found")
	ErrInvalidPeriod    = apperror.New(http.StatusBadRequest, "invalid period filter")
	ErrAlreadyApproved  = apperror.New(http.StatusBadRequest, "reservation approval cannot be revoked")
	ErrInvalidStartTime = apperror.New(http.StatusBadRequest, "start_time must fall on a half hour boundary")
)

// Granularity is the fixed scheduling step for candidate start times.
const Granularity = 30 * time.Minute

// Reservation is a customer's claim on one resource for one time interval.
// EndTime is always StartTime + the service duration, computed server-side.
// A pending (not yet approved) reservation still occupies its resource.
type Reservation struct {
	ID           string
	FullName     string
	Phone        string
	Email        string
	LicensePlate string
	ServiceID    string
	ServiceName  string
	ResourceID   string
	ResourceName string
	StartTime    time.Time
	EndTime      time.Time
	IsStored     bool
	IsApproved   bool
	CreatedAt    time.Time
}

// Slot is a computed availability entry: a candidate start time and the
// number of compatible resources still free for the full service duration.
// Slots are never persisted.
type Slot struct {
	StartTime      time.Time
	AvailableCount int
}

// Period selects a reservation list window relative to "today".
type Period string

const (
	PeriodThreeWeeks Period = "3w"
	PeriodAll        Period = "all"
	PeriodPending    Period = "pending"
	PeriodToday      Period = "today"
	PeriodPast       Period = "past"
)

// Filter defines storage-level list criteria. Time bounds are resolved by
// the service layer so the repository stays clock-free.
type Filter struct {
	StartFrom   *time.Time // inclusive lower bound on start_time
	StartBefore *time.Time // exclusive upper bound on start_time
	PendingOnly bool
	Search      string // case-insensitive substring across contact fields
	Descending  bool
}

// Notifier consumes reservation lifecycle events. Implementations must be
// non-blocking and swallow delivery failures; the caller never waits on them.
type Notifier interface {
	ReservationCreated(r *Reservation)
	ReservationApproved(r *Reservation)
}
