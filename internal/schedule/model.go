package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrHolidayExists    = errors.New("holiday already exists for this date")
	ErrHoursNotFound    = errors.New("business hours entry not found")
	ErrInvalidInterval  = errors.New("open time must be before close time")
	ErrInvalidWeekday   = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidDaysParam = errors.New("days must be a non-negative integer")
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into a TimeOfDay. "24:00"
// is accepted as a close time meaning end of day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	if h == 24 && m == 0 {
		return TimeOfDay(24 * 60), nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// At anchors the time of day onto a calendar date in the given location.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, int(t)/60, int(t)%60, 0, 0, loc)
}

// BusinessHours is one open interval of a weekday. A weekday may carry
// several disjoint entries (e.g. a morning and an afternoon block).
type BusinessHours struct {
	ID        string
	Weekday   int // 0=Monday .. 6=Sunday
	OpenTime  TimeOfDay
	CloseTime TimeOfDay
}

// Interval is an open/close pair within a single day.
type Interval struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// Holiday marks a calendar date as fully blocked.
type Holiday struct {
	ID             string
	Name           string
	Date           time.Time // date component only
	CreatedByID    *string
	CreatedByEmail *string
	CreatedAt      time.Time
}

// WeekdayIndex converts time.Weekday (Sunday=0) to the 0=Monday..6=Sunday
// convention used by business hours rows.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
