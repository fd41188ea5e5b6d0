package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zdzdigital/booky-backend/internal/pkg/request"
	"github.com/zdzdigital/booky-backend/internal/resource"
)

type Handler struct {
	service resource.Service
}

func NewHandler(service resource.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list resources"})
		return
	}

	items := make([]ResourceResponse, len(list))
	for i, r := range list {
		items[i] = NewResourceResponse(r)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, resource.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get resource"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResourceResponse(r))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Create(c.Request.Context(), resource.CreateRequest{Name: body.Name})
	if err != nil {
		switch {
		case errors.Is(err, resource.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, resource.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create resource"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewResourceResponse(r))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Update(c.Request.Context(), uri.ID, resource.UpdateRequest{Name: body.Name})
	if err != nil {
		switch {
		case errors.Is(err, resource.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		case errors.Is(err, resource.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, resource.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update resource"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResourceResponse(r))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, resource.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete resource"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
