package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zdzdigital/booky-backend/internal/pkg/request"
	"github.com/zdzdigital/booky-backend/internal/pkg/response"
	"github.com/zdzdigital/booky-backend/internal/reservation"
)

type Handler struct {
	service  reservation.Service
	location *time.Location
}

func NewHandler(service reservation.Service, location *time.Location) *Handler {
	return &Handler{service: service, location: location}
}

func (h *Handler) Availability(c *gin.Context) {
	var query AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", query.Date, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	slots, err := h.service.Availability(c.Request.Context(), query.Service, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rsv, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		FullName:     body.FullName,
		Phone:        body.Phone,
		Email:        body.Email,
		LicensePlate: body.LicensePlate,
		ServiceID:    body.ServiceID,
		StartTime:    body.StartTime,
		IsStored:     body.IsStored,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(rsv))
}

func (h *Handler) List(c *gin.Context) {
	var query ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	list, err := h.service.List(c.Request.Context(), reservation.ListRequest{
		Period: reservation.Period(query.Period),
		Search: query.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(list))
	for i, r := range list {
		items[i] = NewReservationResponse(r)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	rsv, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(rsv))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rsv, err := h.service.Update(c.Request.Context(), uri.ID, reservation.UpdateRequest{
		FullName:     body.FullName,
		Phone:        body.Phone,
		Email:        body.Email,
		LicensePlate: body.LicensePlate,
		IsStored:     body.IsStored,
		IsApproved:   body.IsApproved,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(rsv))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
