package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zdzdigital/booky-backend/internal/pkg/request"
	"github.com/zdzdigital/booky-backend/internal/servicetype"
)

type Handler struct {
	service servicetype.Service
}

func NewHandler(service servicetype.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}

	items := make([]ServiceResponse, len(list))
	for i, s := range list {
		items[i] = NewServiceResponse(s)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, servicetype.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get service"})
		}
		return
	}

	c.JSON(http.StatusOK, NewServiceResponse(s))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateServiceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Create(c.Request.Context(), servicetype.CreateRequest{
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
		ResourceIDs:     body.ResourceIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, servicetype.ErrNameRequired),
			errors.Is(err, servicetype.ErrInvalidDuration):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewServiceResponse(s))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateServiceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Update(c.Request.Context(), uri.ID, servicetype.UpdateRequest{
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
		ResourceIDs:     body.ResourceIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, servicetype.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		case errors.Is(err, servicetype.ErrNameRequired),
			errors.Is(err, servicetype.ErrInvalidDuration):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service"})
		}
		return
	}

	c.JSON(http.StatusOK, NewServiceResponse(s))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, servicetype.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
