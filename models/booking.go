package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a scheduled, completed or cancelled appointment.
// TotalPrice and TotalDuration are the sums over its BookingService lines.
type Booking struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId,omitempty"` // back-reference to Customer, empty for legacy records
	Date          string    `json:"date"`                 // "YYYY-MM-DD"
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	TotalPrice    int       `json:"totalPrice"`    // whole yen
	TotalDuration int       `json:"totalDuration"` // minutes
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Legacy fields carried by records created before service lines existed.
	// CustomerName is the denormalized display fallback when CustomerID is
	// empty; Service is the denormalized treatment label; Price aliases
	// TotalPrice.
	CustomerName string `json:"customerName,omitempty"`
	Service      string `json:"service,omitempty"`
	Price        int    `json:"price,omitempty"`
}

// NewBooking fills construction defaults on a booking. An existing ID and
// timestamps are preserved so records rehydrated from storage are not
// retimestamped.
func NewBooking(b Booking) Booking {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusScheduled
	}
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
	return b
}

// Normalize upcasts a legacy-shaped record to the normalized schema: a
// stored flat price becomes the booking total. Applied at read time only;
// the legacy shape is never written back.
func (b *Booking) Normalize() {
	if b.TotalPrice == 0 && b.Price > 0 {
		b.TotalPrice = b.Price
	}
	b.Price = b.TotalPrice
}

// UpdateStatus transitions the booking and refreshes UpdatedAt.
func (b *Booking) UpdateStatus(status string) {
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
}

// DateTimeString returns the combined "date time" representation.
func (b *Booking) DateTimeString() string {
	return b.Date + " " + b.Time
}

// StatusText returns the display label for the booking status.
func (b *Booking) StatusText() string {
	switch b.Status {
	case StatusScheduled:
		return "Scheduled"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	}
	return b.Status
}

// TotalPriceString renders the booking total in yen.
func (b *Booking) TotalPriceString() string {
	return FormatYen(b.TotalPrice)
}

// TotalDurationString renders the booking duration as hours and minutes.
func (b *Booking) TotalDurationString() string {
	return FormatMinutes(b.TotalDuration)
}
