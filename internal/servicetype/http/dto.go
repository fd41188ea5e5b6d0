package http

import (
	"github.com/zdzdigital/booky-backend/internal/servicetype"
)

type ServiceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	ResourceIDs     []string `json:"resource_ids"`
}

func NewServiceResponse(s *servicetype.ServiceType) ServiceResponse {
	ids := s.ResourceIDs
	if ids == nil {
		ids = []string{}
	}
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		ResourceIDs:     ids,
	}
}

type CreateServiceBody struct {
	Name            string   `json:"name" binding:"required"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,min=1"`
	ResourceIDs     []string `json:"resource_ids" binding:"omitempty,dive,uuid"`
}

type UpdateServiceBody struct {
	Name            *string  `json:"name"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,min=1"`
	ResourceIDs     []string `json:"resource_ids" binding:"omitempty,dive,uuid"`
}
