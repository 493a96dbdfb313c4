package booking

import (
	bookingRepo "salonkit/database/repository/booking"
	bookingServiceRepo "salonkit/database/repository/bookingservice"
	catalogRepo "salonkit/database/repository/catalog"
	customerRepo "salonkit/database/repository/customer"
	"salonkit/models"
)

// BookingService orchestrates the booking workflows: creation with nested
// treatment lines, status transitions, and read-side enrichment.
type BookingService interface {
	// CreateBooking runs the creation workflow: resolve the customer,
	// persist the booking shell, persist its treatment lines, write the
	// accumulated totals back, and return the enriched result.
	CreateBooking(input models.BookingInput) (*models.BookingView, error)
	// UpdateBooking merges partial fields into a booking.
	UpdateBooking(id string, fields map[string]any) (*models.Booking, error)
	// UpdateBookingStatus transitions a booking's status. A transition into
	// completed recomputes the linked customer's visit statistics.
	UpdateBookingStatus(id, status string) (*models.Booking, error)
	// DeleteBooking removes a booking and its treatment lines.
	DeleteBooking(id string) error
	// GetBookingByID retrieves one booking with full enrichment.
	GetBookingByID(id string) (*models.BookingView, error)
	// GetAllBookings retrieves every booking with full enrichment: resolved
	// customer, annotated treatment lines, legacy aliases.
	GetAllBookings() ([]models.BookingView, error)
	// GetBookingsByDate retrieves bookings on a date with customer-name
	// resolution only.
	GetBookingsByDate(date string) ([]models.BookingView, error)
	// GetBookingsByCustomer retrieves a customer's bookings with
	// customer-name resolution only.
	GetBookingsByCustomer(customerID string) ([]models.BookingView, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Lines     bookingServiceRepo.BookingServiceRepository
	Customers customerRepo.CustomerRepository
	Catalog   catalogRepo.ServiceRepository
}
