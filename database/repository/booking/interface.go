package bookingRepo

import "salonkit/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking models.Booking) (*models.Booking, error)
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings.
	GetAll() ([]models.Booking, error)
	// Update merges partial fields into an existing booking record.
	Update(id string, fields map[string]any) (*models.Booking, error)
	// Delete removes a booking record by its ID.
	Delete(id string) error
	// GetByDate retrieves bookings on a calendar date ("YYYY-MM-DD").
	GetByDate(date string) ([]models.Booking, error)
	// GetByCustomerID retrieves a customer's bookings.
	GetByCustomerID(customerID string) ([]models.Booking, error)
	// GetByStatus retrieves bookings with the given status.
	GetByStatus(status string) ([]models.Booking, error)
	// GetTodayBookings retrieves today's bookings.
	GetTodayBookings() ([]models.Booking, error)
	// GetTodayRevenue sums today's completed bookings.
	GetTodayRevenue() (int, error)
	// GetTotalRevenue sums all completed bookings.
	GetTotalRevenue() (int, error)
}
