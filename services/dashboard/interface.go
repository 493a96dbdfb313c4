package dashboard

import (
	bookingRepo "salonkit/database/repository/booking"
	customerRepo "salonkit/database/repository/customer"
	productRepo "salonkit/database/repository/product"
	"salonkit/models"
	"salonkit/services/booking"
)

// DashboardService aggregates the day's numbers. Every call recomputes
// from the repositories; nothing is cached.
type DashboardService interface {
	// GetDashboardSummary returns the aggregate snapshot: today's revenue
	// over completed bookings, today's enriched booking list, the customer
	// count and the low-stock count.
	GetDashboardSummary() (*models.DashboardSummary, error)
	// GetTodayBookings retrieves today's bookings with customer names
	// resolved.
	GetTodayBookings() ([]models.BookingView, error)
	// GetLowStockProducts retrieves products at or below their reorder
	// threshold.
	GetLowStockProducts() ([]models.Product, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Bookings   bookingRepo.BookingRepository
	Customers  customerRepo.CustomerRepository
	Products   productRepo.ProductRepository
	BookingSvc booking.BookingService
}
