package customer

import (
	"fmt"
	"sync"

	"salonkit/models"
)

// GetAllCustomers loads all customers and all bookings in parallel, then
// attaches to each customer the bookings matching by id or, for
// pre-migration records, by stored-name equality. Visit statistics are
// computed over that attached set.
func (s *DefaultCustomerService) GetAllCustomers() ([]models.CustomerView, error) {
	var (
		customers []models.Customer
		bookings  []models.Booking
		errs      [2]error
		wg        sync.WaitGroup
	)

	wg.Add(2)
	go func() { defer wg.Done(); customers, errs[0] = s.Repo.GetAll() }()
	go func() { defer wg.Done(); bookings, errs[1] = s.Bookings.GetAll() }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to get all customers: %w", err)
		}
	}

	views := make([]models.CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, enrich(c, bookings))
	}
	return views, nil
}

// GetEnrichedCustomerByID retrieves one customer with attached bookings and
// computed visit statistics.
func (s *DefaultCustomerService) GetEnrichedCustomerByID(id string) (*models.CustomerView, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}
	view := enrich(*c, bookings)
	return &view, nil
}

// CalculateVisitStats recomputes a customer's visit statistics directly
// from their bookings. It must agree with the computation embedded in
// GetAllCustomers for the same customer.
func (s *DefaultCustomerService) CalculateVisitStats(customerID string) (models.VisitStats, error) {
	c, err := s.Repo.GetByID(customerID)
	if err != nil {
		return models.VisitStats{}, fmt.Errorf("failed to calculate visit stats: %w", err)
	}
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return models.VisitStats{}, fmt.Errorf("failed to calculate visit stats: %w", err)
	}
	return models.ComputeVisitStats(attach(*c, bookings)), nil
}

// enrich builds the view for one customer against the full booking list.
func enrich(c models.Customer, bookings []models.Booking) models.CustomerView {
	attached := attach(c, bookings)
	return models.CustomerView{
		Customer:   c,
		VisitStats: models.ComputeVisitStats(attached),
		Bookings:   attached,
	}
}

// attach selects the bookings belonging to a customer, by id or by the
// legacy name fallback.
func attach(c models.Customer, bookings []models.Booking) []models.Booking {
	var attached []models.Booking
	for _, b := range bookings {
		if c.Matches(b) {
			attached = append(attached, b)
		}
	}
	return attached
}
