package booking

import (
	"errors"
	"fmt"
	"sync"

	"salonkit/database"
	"salonkit/models"
)

// GetAllBookings retrieves every booking with full enrichment. The four
// collection reads are independent, so they fan out concurrently and join
// in memory.
func (s *DefaultBookingService) GetAllBookings() ([]models.BookingView, error) {
	var (
		bookings  []models.Booking
		customers []models.Customer
		lines     []models.BookingService
		catalog   []models.Service
		errs      [4]error
		wg        sync.WaitGroup
	)

	wg.Add(4)
	go func() { defer wg.Done(); bookings, errs[0] = s.Repo.GetAll() }()
	go func() { defer wg.Done(); customers, errs[1] = s.Customers.GetAll() }()
	go func() { defer wg.Done(); lines, errs[2] = s.Lines.GetAll() }()
	go func() { defer wg.Done(); catalog, errs[3] = s.Catalog.GetAll() }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to get all bookings: %w", err)
		}
	}

	customersByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		customersByID[c.ID] = c
	}
	linesByBooking := make(map[string][]models.BookingService, len(lines))
	for _, line := range lines {
		linesByBooking[line.BookingID] = append(linesByBooking[line.BookingID], line)
	}
	catalogByID := make(map[string]models.Service, len(catalog))
	for _, svc := range catalog {
		catalogByID[svc.ID] = svc
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		for _, line := range linesByBooking[b.ID] {
			annotated := models.BookingServiceView{BookingService: line}
			if svc, ok := catalogByID[line.ServiceID]; ok {
				annotated.ServiceName = svc.Name
				annotated.ServiceDescription = svc.Description
			}
			view.Services = append(view.Services, annotated)
		}
		var customer *models.Customer
		if c, ok := customersByID[b.CustomerID]; ok {
			customer = &c
		}
		view.ResolveCustomerName(customer)
		view.ResolveServiceLabel()
		views = append(views, view)
	}
	return views, nil
}

// GetBookingByID retrieves one booking with full enrichment: resolved
// customer, annotated treatment lines, legacy aliases.
func (s *DefaultBookingService) GetBookingByID(id string) (*models.BookingView, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	view := models.BookingView{Booking: *b}

	lines, err := s.Lines.GetByBookingID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	for _, line := range lines {
		annotated := models.BookingServiceView{BookingService: line}
		if line.ServiceID != "" {
			svc, err := s.Catalog.GetByID(line.ServiceID)
			if err != nil && !errors.Is(err, database.ErrNotFound) {
				return nil, fmt.Errorf("failed to get booking: %w", err)
			}
			if svc != nil {
				annotated.ServiceName = svc.Name
				annotated.ServiceDescription = svc.Description
			}
		}
		view.Services = append(view.Services, annotated)
	}

	customer, err := s.resolveCustomer(b.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	view.ResolveCustomerName(customer)
	view.ResolveServiceLabel()
	return &view, nil
}

// GetBookingsByDate retrieves bookings on a date with the lighter
// customer-name-only resolution.
func (s *DefaultBookingService) GetBookingsByDate(date string) ([]models.BookingView, error) {
	bookings, err := s.Repo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings by date: %w", err)
	}
	return s.resolveNames(bookings)
}

// GetBookingsByCustomer retrieves a customer's bookings with the lighter
// customer-name-only resolution.
func (s *DefaultBookingService) GetBookingsByCustomer(customerID string) ([]models.BookingView, error) {
	bookings, err := s.Repo.GetByCustomerID(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings by customer: %w", err)
	}
	return s.resolveNames(bookings)
}

// resolveNames attaches resolved customer names without loading treatment
// lines or the catalog.
func (s *DefaultBookingService) resolveNames(bookings []models.Booking) ([]models.BookingView, error) {
	customers, err := s.Customers.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer names: %w", err)
	}
	customersByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		customersByID[c.ID] = c
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		var customer *models.Customer
		if c, ok := customersByID[b.CustomerID]; ok {
			customer = &c
		}
		view.ResolveCustomerName(customer)
		view.ResolveServiceLabel()
		views = append(views, view)
	}
	return views, nil
}

// resolveCustomer fetches a booking's customer, tolerating records whose
// customer was deleted.
func (s *DefaultBookingService) resolveCustomer(customerID string) (*models.Customer, error) {
	if customerID == "" {
		return nil, nil
	}
	customer, err := s.Customers.GetByID(customerID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}
