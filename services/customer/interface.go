package customer

import (
	bookingRepo "salonkit/database/repository/booking"
	customerRepo "salonkit/database/repository/customer"
	"salonkit/models"
)

// CustomerService orchestrates customer CRUD and the read-side enrichment
// that attaches bookings and computed visit statistics.
type CustomerService interface {
	// CreateCustomer inserts a new customer.
	CreateCustomer(input models.CustomerInput) (*models.Customer, error)
	// UpdateCustomer merges partial fields into a customer.
	UpdateCustomer(id string, fields map[string]any) (*models.Customer, error)
	// DeleteCustomer removes a customer record.
	DeleteCustomer(id string) error
	// GetCustomerByID retrieves one customer.
	GetCustomerByID(id string) (*models.Customer, error)
	// GetCustomerByName retrieves a customer by exact case-insensitive name
	// match; nil when absent.
	GetCustomerByName(name string) (*models.Customer, error)
	// GetEnrichedCustomerByID retrieves one customer with attached bookings
	// and computed visit statistics.
	GetEnrichedCustomerByID(id string) (*models.CustomerView, error)
	// GetAllCustomers retrieves every customer enriched with the bookings
	// attached to them and the visit statistics computed from that set.
	GetAllCustomers() ([]models.CustomerView, error)
	// SearchCustomers filters the enriched list by a case-insensitive
	// substring over name, phone and email. A blank query returns the full
	// list.
	SearchCustomers(query string) ([]models.CustomerView, error)
	// CalculateVisitStats recomputes a customer's visit statistics directly
	// from their bookings.
	CalculateVisitStats(customerID string) (models.VisitStats, error)
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo     customerRepo.CustomerRepository
	Bookings bookingRepo.BookingRepository
}
