package http

import (
	"time"

	"github.com/zdzdigital/booky-backend/internal/resource"
)

type ResourceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResourceResponse(r *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}

// ResourceTag is a minimal embed of a resource for nested responses.
type ResourceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateResourceBody struct {
	Name string `json:"name" binding:"required"`
}

type UpdateResourceBody struct {
	Name *string `json:"name"`
}
