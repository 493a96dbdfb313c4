package customer

import (
	"fmt"
	"strings"

	"salonkit/models"
	"salonkit/utils"

	"go.uber.org/zap"
)

// CreateCustomer inserts a new customer.
func (s *DefaultCustomerService) CreateCustomer(input models.CustomerInput) (*models.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("failed to create customer: name is required")
	}
	created, err := s.Repo.Create(models.Customer{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
		Notes: input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return created, nil
}

// UpdateCustomer merges partial fields into a customer.
func (s *DefaultCustomerService) UpdateCustomer(id string, fields map[string]any) (*models.Customer, error) {
	updated, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return updated, nil
}

// DeleteCustomer removes a customer record. Their bookings stay on record;
// display falls back to the denormalized name snapshot.
func (s *DefaultCustomerService) DeleteCustomer(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

// GetCustomerByID retrieves one customer.
func (s *DefaultCustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}
	return c, nil
}

// GetCustomerByName retrieves a customer by exact case-insensitive name.
func (s *DefaultCustomerService) GetCustomerByName(name string) (*models.Customer, error) {
	c, err := s.Repo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by name: %w", err)
	}
	return c, nil
}

// SearchCustomers returns the enriched views for matching customers. A
// blank query is the full list; otherwise the repository matches a
// case-insensitive substring over the customer's searchable fields and the
// hits are enriched with their bookings and visit statistics.
func (s *DefaultCustomerService) SearchCustomers(query string) ([]models.CustomerView, error) {
	logger := utils.GetLogger()

	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetAllCustomers()
	}

	customers, err := s.Repo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	matched := make([]models.CustomerView, 0, len(customers))
	for _, c := range customers {
		matched = append(matched, enrich(c, bookings))
	}
	logger.Debug("SearchCustomers", zap.String("query", query), zap.Int("matches", len(matched)))
	return matched, nil
}
