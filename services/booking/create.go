package booking

import (
	"fmt"

	"salonkit/models"
	"salonkit/utils"

	"go.uber.org/zap"
)

// legacyDefaultDuration is assumed for flat-shaped bookings that carry a
// price but no treatment lines.
const legacyDefaultDuration = 60

// CreateBooking runs the multi-step creation workflow. The sequence is not
// atomic at the storage layer, so any failure after the shell is persisted
// triggers compensation: already-created lines and the shell are deleted.
func (s *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.BookingView, error) {
	logger := utils.GetLogger()
	logger.Debug("CreateBooking called", zap.Any("input", input))

	// Resolve the customer id: an explicit id wins; a bare legacy name
	// adopts the id of the matching customer record when one exists.
	customerID := input.CustomerID
	if customerID == "" && input.CustomerName != "" {
		found, err := s.Customers.GetByName(input.CustomerName)
		if err != nil {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
		if found != nil {
			customerID = found.ID
		}
	}

	// Persist the booking shell with zeroed totals; CustomerName rides
	// along as the denormalized display fallback.
	shell := models.Booking{
		CustomerID:   customerID,
		CustomerName: input.CustomerName,
		Date:         input.Date,
		Time:         input.Time,
		Notes:        input.Notes,
	}
	created, err := s.Repo.Create(shell)
	if err != nil {
		logger.Error("Failed to create booking shell", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	switch {
	case len(input.Services) > 0:
		if err := s.createLines(created.ID, input.Services); err != nil {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
	case input.Price != nil:
		// Legacy flat path: the price becomes the total and the treatment
		// label is kept denormalized; no lines are created. The stored
		// price alias is written in lockstep so the read-time upcast
		// never sees a stale value.
		fields := map[string]any{
			"totalPrice":    *input.Price,
			"totalDuration": legacyDefaultDuration,
			"price":         *input.Price,
			"service":       input.Service,
		}
		if _, err := s.Repo.Update(created.ID, fields); err != nil {
			s.rollback(created.ID)
			logger.Error("Failed to set legacy booking totals", zap.String("bookingID", created.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
	}

	view, err := s.GetBookingByID(created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	logger.Debug("CreateBooking success", zap.String("bookingID", created.ID))
	return view, nil
}

// createLines persists the treatment lines for a new booking and writes the
// accumulated totals back onto it. On any failure the booking and its
// already-created lines are compensated away.
func (s *DefaultBookingService) createLines(bookingID string, lines []models.BookingLineInput) error {
	logger := utils.GetLogger()

	totalPrice, totalDuration := 0, 0
	for _, line := range lines {
		_, err := s.Lines.Create(models.BookingService{
			BookingID:   bookingID,
			ServiceID:   line.ServiceID,
			Price:       line.Price,
			Duration:    line.Duration,
			StaffMember: line.StaffMember,
			Notes:       line.Notes,
		})
		if err != nil {
			logger.Error("Failed to create booking line", zap.String("bookingID", bookingID), zap.Error(err))
			s.rollback(bookingID)
			return err
		}
		totalPrice += line.Price
		totalDuration += line.Duration
	}

	fields := map[string]any{
		"totalPrice":    totalPrice,
		"totalDuration": totalDuration,
		"price":         totalPrice,
	}
	if _, err := s.Repo.Update(bookingID, fields); err != nil {
		logger.Error("Failed to update booking totals", zap.String("bookingID", bookingID), zap.Error(err))
		s.rollback(bookingID)
		return err
	}
	return nil
}

// rollback compensates a failed creation workflow: delete the lines created
// so far, then the booking shell. Compensation failures are logged, not
// surfaced; the original error is what the caller needs.
func (s *DefaultBookingService) rollback(bookingID string) {
	logger := utils.GetLogger()
	if err := s.Lines.DeleteByBookingID(bookingID); err != nil {
		logger.Warn("Rollback failed to delete booking lines", zap.String("bookingID", bookingID), zap.Error(err))
	}
	if err := s.Repo.Delete(bookingID); err != nil {
		logger.Warn("Rollback failed to delete booking shell", zap.String("bookingID", bookingID), zap.Error(err))
	}
}
