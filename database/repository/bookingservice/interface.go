package bookingServiceRepo

import "salonkit/models"

// BookingServiceRepository defines methods for booking-line data access.
type BookingServiceRepository interface {
	// Create inserts a new booking line.
	Create(line models.BookingService) (*models.BookingService, error)
	// GetByID retrieves a booking line by its unique ID.
	GetByID(id string) (*models.BookingService, error)
	// GetAll retrieves all booking lines.
	GetAll() ([]models.BookingService, error)
	// Update merges partial fields into an existing booking line.
	Update(id string, fields map[string]any) (*models.BookingService, error)
	// Delete removes a booking line by its ID.
	Delete(id string) error
	// GetByBookingID retrieves the lines belonging to a booking.
	GetByBookingID(bookingID string) ([]models.BookingService, error)
	// GetByServiceID retrieves the lines referencing a catalog service.
	GetByServiceID(serviceID string) ([]models.BookingService, error)
	// DeleteByBookingID removes every line belonging to a booking.
	DeleteByBookingID(bookingID string) error
}
