package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingService is one treatment line within a booking: the price and
// duration actually charged, and who performed it. ServiceID references the
// catalog and may be empty for ad-hoc lines.
type BookingService struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"bookingId"`
	ServiceID   string    `json:"serviceId,omitempty"`
	Price       int       `json:"price"`    // whole yen, after any discount
	Duration    int       `json:"duration"` // minutes
	StaffMember string    `json:"staffMember,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewBookingService fills construction defaults on a booking line.
func NewBookingService(bs BookingService) BookingService {
	if bs.ID == "" {
		bs.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if bs.CreatedAt.IsZero() {
		bs.CreatedAt = now
	}
	if bs.UpdatedAt.IsZero() {
		bs.UpdatedAt = now
	}
	return bs
}

// PriceString renders the line price in yen.
func (bs *BookingService) PriceString() string {
	return FormatYen(bs.Price)
}

// DurationString renders the line duration as hours and minutes.
func (bs *BookingService) DurationString() string {
	return FormatMinutes(bs.Duration)
}
