package dashboard

import (
	"fmt"
	"sync"
	"time"

	"salonkit/models"
)

// GetDashboardSummary computes the snapshot. The four aggregates are
// independent reads, so they fan out concurrently.
func (s *DefaultDashboardService) GetDashboardSummary() (*models.DashboardSummary, error) {
	var (
		todayRevenue  int
		todayBookings []models.BookingView
		customerCount int
		lowStockCount int
		errs          [4]error
		wg            sync.WaitGroup
	)

	wg.Add(4)
	go func() { defer wg.Done(); todayRevenue, errs[0] = s.Bookings.GetTodayRevenue() }()
	go func() { defer wg.Done(); todayBookings, errs[1] = s.GetTodayBookings() }()
	go func() { defer wg.Done(); customerCount, errs[2] = s.Customers.GetTotalCount() }()
	go func() { defer wg.Done(); lowStockCount, errs[3] = s.Products.GetLowStockCount() }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
		}
	}

	return &models.DashboardSummary{
		TodayRevenue:      todayRevenue,
		TodayBookingCount: len(todayBookings),
		TodayBookings:     todayBookings,
		TotalCustomers:    customerCount,
		LowStockCount:     lowStockCount,
	}, nil
}

// GetTodayBookings retrieves today's bookings with customer names resolved.
func (s *DefaultDashboardService) GetTodayBookings() ([]models.BookingView, error) {
	today := time.Now().Format(models.DateLayout)
	views, err := s.BookingSvc.GetBookingsByDate(today)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's bookings: %w", err)
	}
	return views, nil
}

// GetLowStockProducts retrieves products at or below their reorder
// threshold.
func (s *DefaultDashboardService) GetLowStockProducts() ([]models.Product, error) {
	products, err := s.Products.GetLowStock()
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock products: %w", err)
	}
	return products, nil
}
