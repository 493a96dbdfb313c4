package booking

import (
	"fmt"

	"salonkit/models"
	"salonkit/utils"

	"go.uber.org/zap"
)

// UpdateBooking merges partial fields into a booking. A new total is
// mirrored onto the stored price alias so the read-time upcast never
// re-promotes a stale legacy value.
func (s *DefaultBookingService) UpdateBooking(id string, fields map[string]any) (*models.Booking, error) {
	if total, ok := fields["totalPrice"]; ok {
		fields["price"] = total
	}
	updated, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return updated, nil
}

// UpdateBookingStatus transitions a booking's status. On a transition into
// completed, the linked customer's visit statistics are recomputed from
// booking history; they are derived values, never stored counters.
func (s *DefaultBookingService) UpdateBookingStatus(id, status string) (*models.Booking, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	oldStatus := existing.Status

	updated, err := s.Repo.Update(id, map[string]any{"status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	if status == models.StatusCompleted && oldStatus != models.StatusCompleted && updated.CustomerID != "" {
		bookings, err := s.Repo.GetByCustomerID(updated.CustomerID)
		if err != nil {
			logger.Warn("Failed to refresh customer visit stats", zap.String("customerID", updated.CustomerID), zap.Error(err))
			return updated, nil
		}
		stats := models.ComputeVisitStats(bookings)
		logger.Info("Customer visit stats refreshed",
			zap.String("customerID", updated.CustomerID),
			zap.Int("visitCount", stats.VisitCount),
			zap.String("lastVisit", stats.LastVisit))
	}
	return updated, nil
}

// DeleteBooking removes a booking and cascades to its treatment lines, so
// no orphaned lines survive the booking they belong to.
func (s *DefaultBookingService) DeleteBooking(id string) error {
	if err := s.Lines.DeleteByBookingID(id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}
