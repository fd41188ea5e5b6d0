package http

import (
	"time"

	"github.com/zdzdigital/booky-backend/internal/reservation"
)

type ReservationResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	LicensePlate string    `json:"license_plate"`
	ServiceID    string    `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	ResourceID   string    `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	IsStored     bool      `json:"is_stored"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		FullName:     r.FullName,
		Phone:        r.Phone,
		Email:        r.Email,
		LicensePlate: r.LicensePlate,
		ServiceID:    r.ServiceID,
		ServiceName:  r.ServiceName,
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		IsStored:     r.IsStored,
		IsApproved:   r.IsApproved,
		CreatedAt:    r.CreatedAt,
	}
}

type CreateReservationBody struct {
	FullName     string    `json:"full_name" binding:"required"`
	Phone        string    `json:"phone" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
	LicensePlate string    `json:"license_plate" binding:"required"`
	ServiceID    string    `json:"service_id" binding:"required,uuid"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	IsStored     bool      `json:"is_stored"`
}

type UpdateReservationBody struct {
	FullName     *string `json:"full_name" binding:"omitempty,min=1"`
	Phone        *string `json:"phone" binding:"omitempty,min=1"`
	Email        *string `json:"email" binding:"omitempty,email"`
	LicensePlate *string `json:"license_plate" binding:"omitempty,min=1"`
	IsStored     *bool   `json:"is_stored"`
	IsApproved   *bool   `json:"is_approved"`
}

type ListReservationsQuery struct {
	Period string `form:"period"`
	Search string `form:"search"`
}

type AvailabilityQuery struct {
	Service string `form:"service" binding:"required,uuid"`
	Date    string `form:"date" binding:"required,datetime=2006-01-02"`
}

// SlotResponse renders a bookable start time within the requested date.
type SlotResponse struct {
	Time           string `json:"time"`
	AvailableCount int    `json:"available_count"`
}

func NewSlotResponse(s reservation.Slot) SlotResponse {
	return SlotResponse{
		Time:           s.StartTime.Format("15:04"),
		AvailableCount: s.AvailableCount,
	}
}
