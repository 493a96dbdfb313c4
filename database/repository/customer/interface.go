package customerRepo

import "salonkit/models"

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// Create inserts a new customer record.
	Create(customer models.Customer) (*models.Customer, error)
	// GetByID retrieves a customer by its unique ID.
	GetByID(id string) (*models.Customer, error)
	// GetAll retrieves all customers.
	GetAll() ([]models.Customer, error)
	// Update merges partial fields into an existing customer record.
	Update(id string, fields map[string]any) (*models.Customer, error)
	// Delete removes a customer record by its ID.
	Delete(id string) error
	// GetByName retrieves a customer by exact case-insensitive name match;
	// returns nil when no customer has that name.
	GetByName(name string) (*models.Customer, error)
	// Search retrieves customers whose name, phone or email contains the
	// query, case-insensitively.
	Search(query string) ([]models.Customer, error)
	// GetTotalCount returns the number of customer records.
	GetTotalCount() (int, error)
}
