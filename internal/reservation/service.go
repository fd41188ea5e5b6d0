package reservation

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zdzdigital/booky-backend/internal/metrics"
	"github.com/zdzdigital/booky-backend/internal/schedule"
	"github.com/zdzdigital/booky-backend/internal/servicetype"
)

type CreateRequest struct {
	FullName     string
	Phone        string
	Email        string
	LicensePlate string
	ServiceID    string
	StartTime    time.Time
	IsStored     bool
}

type UpdateRequest struct {
	FullName     *string
	Phone        *string
	Email        *string
	LicensePlate *string
	IsStored     *bool
	IsApproved   *bool
}

type ListRequest struct {
	Period Period
	Search string
}

type Service interface {
	// Availability computes the bookable slots for a service on a date.
	// A holiday or a day without business hours yields an empty list.
	Availability(ctx context.Context, serviceID string, date time.Time) ([]Slot, error)

	// Create allocates a resource and persists the reservation in one
	// atomic step. Returns ErrSlotConflict when the interval has no free
	// compatible resource.
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)

	// Approve marks the reservation approved. The first transition sends
	// the customer notification; repeat calls succeed without side effects.
	Approve(ctx context.Context, id string) (*Reservation, error)

	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, req ListRequest) ([]*Reservation, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Reservation, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	services servicetype.Service
	schedule schedule.Service
	notifier Notifier
	location *time.Location
	now      func() time.Time
}

func NewService(
	repo Repository,
	services servicetype.Service,
	sched schedule.Service,
	notifier Notifier,
	location *time.Location,
	now func() time.Time,
) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:     repo,
		services: services,
		schedule: sched,
		notifier: notifier,
		location: location,
		now:      now,
	}
}

func (s *service) Availability(ctx context.Context, serviceID string, date time.Time) ([]Slot, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, servicetype.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	// Closed days answer with an empty list before any configuration
	// checks, so a holiday looks the same for every service.
	blocked, err := s.schedule.IsBlocked(ctx, date)
	if err != nil {
		return nil, err
	}
	if blocked {
		return []Slot{}, nil
	}

	intervals, err := s.schedule.OpenIntervals(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return []Slot{}, nil
	}

	if len(svc.ResourceIDs) == 0 {
		return nil, ErrNoResources
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)
	dayEnd := dayStart.AddDate(0, 0, 1)
	reservations, err := s.repo.ListOverlapping(ctx, svc.ResourceIDs, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := ComputeSlots(date, intervals, svc.Duration(), svc.ResourceIDs, reservations, s.now(), s.location)
	if slots == nil {
		slots = []Slot{}
	}
	return slots, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicetype.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if len(svc.ResourceIDs) == 0 {
		return nil, ErrNoResources
	}

	start := req.StartTime.In(s.location)
	if start.IsZero() || start.Minute()%30 != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return nil, ErrInvalidStartTime
	}

	rsv := &Reservation{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		LicensePlate: req.LicensePlate,
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		StartTime:    start,
		EndTime:      start.Add(svc.Duration()),
		IsStored:     req.IsStored,
	}

	// Allocation order matches the availability engine: lowest id wins.
	candidates := append([]string(nil), svc.ResourceIDs...)
	sort.Strings(candidates)

	if err := s.repo.Allocate(ctx, rsv, candidates); err != nil {
		if errors.Is(err, ErrSlotConflict) {
			metrics.IncAllocationConflict()
		}
		return nil, err
	}

	metrics.IncReservationCreated()
	if s.notifier != nil {
		s.notifier.ReservationCreated(rsv)
	}
	return rsv, nil
}

func (s *service) Approve(ctx context.Context, id string) (*Reservation, error) {
	transitioned, err := s.repo.MarkApproved(ctx, id)
	if err != nil {
		return nil, err
	}

	rsv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if transitioned {
		metrics.IncReservationApproved()
		if s.notifier != nil {
			s.notifier.ReservationApproved(rsv)
		}
	}
	return rsv, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, req ListRequest) ([]*Reservation, error) {
	filter, err := s.resolveFilter(req.Period)
	if err != nil {
		return nil, err
	}
	filter.Search = req.Search

	reservations, err := s.repo.List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []*Reservation{}
	}
	return reservations, nil
}

// resolveFilter translates a period keyword into time bounds relative to
// the start of "today" in the configured timezone.
func (s *service) resolveFilter(period Period) (*Filter, error) {
	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	switch period {
	case PeriodThreeWeeks, "":
		from := today
		to := today.AddDate(0, 0, 22)
		return &Filter{StartFrom: &from, StartBefore: &to}, nil
	case PeriodAll:
		from := today
		return &Filter{StartFrom: &from}, nil
	case PeriodPending:
		return &Filter{PendingOnly: true}, nil
	case PeriodToday:
		from := today
		to := today.AddDate(0, 0, 1)
		return &Filter{StartFrom: &from, StartBefore: &to}, nil
	case PeriodPast:
		to := today
		return &Filter{StartBefore: &to, Descending: true}, nil
	default:
		return nil, ErrInvalidPeriod
	}
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Reservation, error) {
	rsv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsApproved != nil {
		if !*req.IsApproved {
			if rsv.IsApproved {
				return nil, ErrAlreadyApproved
			}
		} else if !rsv.IsApproved {
			if _, err := s.Approve(ctx, id); err != nil {
				return nil, err
			}
			rsv.IsApproved = true
		}
	}

	if req.FullName != nil {
		rsv.FullName = *req.FullName
	}
	if req.Phone != nil {
		rsv.Phone = *req.Phone
	}
	if req.Email != nil {
		rsv.Email = *req.Email
	}
	if req.LicensePlate != nil {
		rsv.LicensePlate = *req.LicensePlate
	}
	if req.IsStored != nil {
		rsv.IsStored = *req.IsStored
	}

	if err := s.repo.Update(ctx, rsv); err != nil {
		return nil, err
	}
	return rsv, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("reservation_id", id).Msg("reservation deleted")
	return nil
}
