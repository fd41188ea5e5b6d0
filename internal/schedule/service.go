package schedule

import (
	"context"
	"strings"
	"time"
)

type CreateHoursRequest struct {
	Weekday   int
	OpenTime  string
	CloseTime string
}

type CreateHolidayRequest struct {
	Name        string
	Date        time.Time
	CreatedByID string
}

// DisabledDates is the computed set of non-bookable dates in a range.
type DisabledDates struct {
	StartDate time.Time
	EndDate   time.Time
	Dates     []time.Time
}

type Service interface {
	// IsBlocked reports whether the date is a holiday.
	IsBlocked(ctx context.Context, date time.Time) (bool, error)
	// OpenIntervals returns the open intervals of the date's weekday,
	// ascending by open time. An empty result means the day is closed.
	OpenIntervals(ctx context.Context, date time.Time) ([]Interval, error)
	// DisabledDates lists every date in [start, start+days] that is a
	// holiday or falls on a weekday without business hours.
	DisabledDates(ctx context.Context, start time.Time, days int) (*DisabledDates, error)

	CreateHours(ctx context.Context, req CreateHoursRequest) (*BusinessHours, error)
	ListHours(ctx context.Context) ([]*BusinessHours, error)
	DeleteHours(ctx context.Context, id string) error

	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (*Holiday, error)
	ListHolidays(ctx context.Context) ([]*Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) IsBlocked(ctx context.Context, date time.Time) (bool, error) {
	return s.repo.HolidayExists(ctx, date)
}

func (s *service) OpenIntervals(ctx context.Context, date time.Time) ([]Interval, error) {
	entries, err := s.repo.ListHoursByWeekday(ctx, WeekdayIndex(date))
	if err != nil {
		return nil, err
	}

	intervals := make([]Interval, len(entries))
	for i, e := range entries {
		intervals[i] = Interval{Open: e.OpenTime, Close: e.CloseTime}
	}
	return intervals, nil
}

func (s *service) DisabledDates(ctx context.Context, start time.Time, days int) (*DisabledDates, error) {
	if days < 0 {
		return nil, ErrInvalidDaysParam
	}

	end := start.AddDate(0, 0, days)

	holidays, err := s.repo.HolidayDatesBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	openWeekdays, err := s.repo.WeekdaysWithHours(ctx)
	if err != nil {
		return nil, err
	}

	result := &DisabledDates{StartDate: start, EndDate: end}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if holidays[d.Format("2006-01-02")] || !openWeekdays[WeekdayIndex(d)] {
			result.Dates = append(result.Dates, d)
		}
	}
	return result, nil
}

func (s *service) CreateHours(ctx context.Context, req CreateHoursRequest) (*BusinessHours, error) {
	if req.Weekday < 0 || req.Weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	openAt, err := ParseTimeOfDay(req.OpenTime)
	if err != nil {
		return nil, ErrInvalidInterval
	}
	closeAt, err := ParseTimeOfDay(req.CloseTime)
	if err != nil {
		return nil, ErrInvalidInterval
	}
	if openAt >= closeAt {
		return nil, ErrInvalidInterval
	}

	bh := &BusinessHours{
		Weekday:   req.Weekday,
		OpenTime:  openAt,
		CloseTime: closeAt,
	}

	if err := s.repo.CreateHours(ctx, bh); err != nil {
		return nil, err
	}
	return bh, nil
}

func (s *service) ListHours(ctx context.Context) ([]*BusinessHours, error) {
	return s.repo.ListHours(ctx)
}

func (s *service) DeleteHours(ctx context.Context, id string) error {
	return s.repo.DeleteHours(ctx, id)
}

func (s *service) CreateHoliday(ctx context.Context, req CreateHolidayRequest) (*Holiday, error) {
	h := &Holiday{
		Name: strings.TrimSpace(req.Name),
		Date: req.Date,
	}
	if req.CreatedByID != "" {
		h.CreatedByID = &req.CreatedByID
	}

	if err := s.repo.CreateHoliday(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) ListHolidays(ctx context.Context) ([]*Holiday, error) {
	return s.repo.ListHolidays(ctx)
}

func (s *service) DeleteHoliday(ctx context.Context, id string) error {
	return s.repo.DeleteHoliday(ctx, id)
}
