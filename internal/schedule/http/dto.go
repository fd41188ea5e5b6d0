package http

import (
	"time"

	"github.com/zdzdigital/booky-backend/internal/schedule"
)

type BusinessHoursResponse struct {
	ID        string `json:"id"`
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

func NewBusinessHoursResponse(bh *schedule.BusinessHours) BusinessHoursResponse {
	return BusinessHoursResponse{
		ID:        bh.ID,
		Weekday:   bh.Weekday,
		OpenTime:  bh.OpenTime.String(),
		CloseTime: bh.CloseTime.String(),
	}
}

type CreateBusinessHoursBody struct {
	Weekday   *int   `json:"weekday" binding:"required,min=0,max=6"`
	OpenTime  string `json:"open_time" binding:"required"`
	CloseTime string `json:"close_time" binding:"required"`
}

type HolidayResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Date           string    `json:"date"`
	CreatedByEmail *string   `json:"created_by_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewHolidayResponse(h *schedule.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:             h.ID,
		Name:           h.Name,
		Date:           h.Date.Format("2006-01-02"),
		CreatedByEmail: h.CreatedByEmail,
		CreatedAt:      h.CreatedAt,
	}
}

type CreateHolidayBody struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

type DisabledDatesResponse struct {
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	DisabledDates []string `json:"disabled_dates"`
}

func NewDisabledDatesResponse(d *schedule.DisabledDates) DisabledDatesResponse {
	dates := make([]string, len(d.Dates))
	for i, date := range d.Dates {
		dates[i] = date.Format("2006-01-02")
	}
	return DisabledDatesResponse{
		StartDate:     d.StartDate.Format("2006-01-02"),
		EndDate:       d.EndDate.Format("2006-01-02"),
		DisabledDates: dates,
	}
}
