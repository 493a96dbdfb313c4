package bookingRepo

import (
	"fmt"
	"time"

	"salonkit/models"
)

// filterBookings runs a predicate over the raw collection and rehydrates
// the matches. Query filters operate on stored fields, not derived ones.
func (r *KVBookingRepo) filterBookings(desc string, pred func(map[string]any) bool) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Filter(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings %s: %w", desc, err)
	}
	return rehydrateAll(records)
}

// GetByDate retrieves bookings on a calendar date.
func (r *KVBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	return r.filterBookings("by date", func(rec map[string]any) bool {
		return rec["date"] == date
	})
}

// GetByCustomerID retrieves a customer's bookings.
func (r *KVBookingRepo) GetByCustomerID(customerID string) ([]models.Booking, error) {
	return r.filterBookings("by customer", func(rec map[string]any) bool {
		return rec["customerId"] == customerID
	})
}

// GetByStatus retrieves bookings with the given status.
func (r *KVBookingRepo) GetByStatus(status string) ([]models.Booking, error) {
	return r.filterBookings("by status", func(rec map[string]any) bool {
		return rec["status"] == status
	})
}

// GetTodayBookings retrieves today's bookings.
func (r *KVBookingRepo) GetTodayBookings() ([]models.Booking, error) {
	return r.GetByDate(time.Now().Format(models.DateLayout))
}

// GetTodayRevenue sums the totals of today's completed bookings. Selection
// is by date first, then filtered to completed status.
func (r *KVBookingRepo) GetTodayRevenue() (int, error) {
	bookings, err := r.GetTodayBookings()
	if err != nil {
		return 0, err
	}
	return sumCompleted(bookings), nil
}

// GetTotalRevenue sums the totals of all completed bookings.
func (r *KVBookingRepo) GetTotalRevenue() (int, error) {
	bookings, err := r.GetAll()
	if err != nil {
		return 0, err
	}
	return sumCompleted(bookings), nil
}

func sumCompleted(bookings []models.Booking) int {
	total := 0
	for _, b := range bookings {
		if b.Status == models.StatusCompleted {
			total += b.TotalPrice
		}
	}
	return total
}
