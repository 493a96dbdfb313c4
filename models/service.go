package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a catalog offering: a treatment with a default duration and
// base price. Inactive services stay on record but are hidden from the
// booking form.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Duration    int       `json:"duration"`  // minutes
	BasePrice   int       `json:"basePrice"` // whole yen
	Category    string    `json:"category,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewService fills construction defaults on a catalog service. Pass active
// explicitly: a freshly created service defaults to active, but records
// rehydrated from storage keep their stored flag.
func NewService(s Service) Service {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}
	return s
}

// ToggleActive flips the active flag and refreshes UpdatedAt.
func (s *Service) ToggleActive() {
	s.IsActive = !s.IsActive
	s.UpdatedAt = time.Now().UTC()
}

// DurationString renders the treatment time as hours and minutes.
func (s *Service) DurationString() string {
	return FormatMinutes(s.Duration)
}

// PriceString renders the base price in yen.
func (s *Service) PriceString() string {
	return FormatYen(s.BasePrice)
}
