package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zdzdigital/booky-backend/internal/auth"
	"github.com/zdzdigital/booky-backend/internal/pkg/request"
	"github.com/zdzdigital/booky-backend/internal/schedule"
)

// defaultDisabledDatesDays is the default lookahead window of the
// disabled-dates endpoint, matching the booking calendar widget.
const defaultDisabledDatesDays = 90

type Handler struct {
	service  schedule.Service
	location *time.Location
	now      func() time.Time
}

func NewHandler(service schedule.Service, location *time.Location, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{service: service, location: location, now: now}
}

func (h *Handler) ListHours(c *gin.Context) {
	list, err := h.service.ListHours(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list business hours"})
		return
	}

	items := make([]BusinessHoursResponse, len(list))
	for i, bh := range list {
		items[i] = NewBusinessHoursResponse(bh)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateHours(c *gin.Context) {
	var body CreateBusinessHoursBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	bh, err := h.service.CreateHours(c.Request.Context(), schedule.CreateHoursRequest{
		Weekday:   *body.Weekday,
		OpenTime:  body.OpenTime,
		CloseTime: body.CloseTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidWeekday),
			errors.Is(err, schedule.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create business hours"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewBusinessHoursResponse(bh))
}

func (h *Handler) DeleteHours(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.DeleteHours(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrHoursNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "business hours entry not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete business hours"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListHolidays(c *gin.Context) {
	list, err := h.service.ListHolidays(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list holidays"})
		return
	}

	items := make([]HolidayResponse, len(list))
	for i, holiday := range list {
		items[i] = NewHolidayResponse(holiday)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateHoliday(c *gin.Context) {
	var body CreateHolidayBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", body.Date, h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	holiday, err := h.service.CreateHoliday(c.Request.Context(), schedule.CreateHolidayRequest{
		Name:        body.Name,
		Date:        date,
		CreatedByID: auth.GetUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrHolidayExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create holiday"})
		}
		return
	}

	resp := NewHolidayResponse(holiday)
	if resp.CreatedByEmail == nil {
		if email := auth.GetUserEmail(c); email != "" {
			resp.CreatedByEmail = &email
		}
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) DeleteHoliday(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.DeleteHoliday(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrHolidayNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "holiday not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete holiday"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DisabledDates(c *gin.Context) {
	days := defaultDisabledDatesDays
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			// Message kept verbatim for the calendar widget consuming this endpoint.
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Parametar must be an int."})
			return
		}
		days = parsed
	}

	today := h.now().In(h.location)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, h.location)

	result, err := h.service.DisabledDates(c.Request.Context(), today, days)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDaysParam):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Parametar must be an int."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute disabled dates"})
		}
		return
	}

	c.JSON(http.StatusOK, NewDisabledDatesResponse(result))
}
