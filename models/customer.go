package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a client record. Visit statistics are never stored on the
// record; they are computed from the customer's completed bookings with
// ComputeVisitStats so they cannot drift from booking history.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCustomer fills construction defaults on a customer.
func NewCustomer(c Customer) Customer {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	return c
}

// SearchableString joins the fields customer search matches against.
func (c *Customer) SearchableString() string {
	return strings.ToLower(c.Name + " " + c.Phone + " " + c.Email)
}

// Matches reports whether a booking belongs to this customer, either by id
// or, for pre-migration records lacking one, by exact stored-name equality.
func (c *Customer) Matches(b Booking) bool {
	if b.CustomerID != "" {
		return b.CustomerID == c.ID
	}
	return b.CustomerName != "" && b.CustomerName == c.Name
}

// VisitStats is the derived visit aggregation for a customer.
type VisitStats struct {
	VisitCount int    `json:"visitCount"`
	LastVisit  string `json:"lastVisit,omitempty"` // "YYYY-MM-DD", empty when no completed visits
}

// ComputeVisitStats derives visit statistics from a customer's bookings:
// the count of completed bookings and the most recent date among them.
func ComputeVisitStats(bookings []Booking) VisitStats {
	var stats VisitStats
	for _, b := range bookings {
		if b.Status != StatusCompleted {
			continue
		}
		stats.VisitCount++
		if b.Date > stats.LastVisit {
			stats.LastVisit = b.Date
		}
	}
	return stats
}

// LastVisitString returns a display label for the last visit date.
func (v VisitStats) LastVisitString() string {
	if v.LastVisit == "" {
		return "no visits yet"
	}
	return v.LastVisit
}
