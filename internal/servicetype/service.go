package servicetype

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name            string
	DurationMinutes int
	ResourceIDs     []string
}

type UpdateRequest struct {
	Name            *string
	DurationMinutes *int
	ResourceIDs     []string // nil leaves the set unchanged
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*ServiceType, error)
	GetByID(ctx context.Context, id string) (*ServiceType, error)
	List(ctx context.Context) ([]*ServiceType, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*ServiceType, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*ServiceType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	st := &ServiceType{
		Name:            strings.TrimSpace(req.Name),
		DurationMinutes: req.DurationMinutes,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}

	if len(req.ResourceIDs) > 0 {
		if err := s.repo.SetResources(ctx, st.ID, req.ResourceIDs); err != nil {
			return nil, err
		}
		st.ResourceIDs = req.ResourceIDs
	}

	return st, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ServiceType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*ServiceType, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*ServiceType, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		st.Name = strings.TrimSpace(*req.Name)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		st.DurationMinutes = *req.DurationMinutes
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}

	if req.ResourceIDs != nil {
		if err := s.repo.SetResources(ctx, st.ID, req.ResourceIDs); err != nil {
			return nil, err
		}
		st.ResourceIDs = req.ResourceIDs
	}

	return st, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
