package bookingServiceRepo

import (
	"context"
	"fmt"
	"time"

	"salonkit/database"
	"salonkit/models"
)

const collectionName = "bookingServices"

// KVBookingServiceRepo implements BookingServiceRepository on the key-value
// storage adapter.
type KVBookingServiceRepo struct {
	coll *database.Collection
}

// NewKVBookingServiceRepo creates a new instance of
// BookingServiceRepository over the given store.
func NewKVBookingServiceRepo(store database.Store) BookingServiceRepository {
	return &KVBookingServiceRepo{coll: database.NewCollection(store, collectionName)}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func rehydrate(record map[string]any) (models.BookingService, error) {
	var line models.BookingService
	if err := database.Decode(record, &line); err != nil {
		return line, fmt.Errorf("failed to decode booking line: %w", err)
	}
	return models.NewBookingService(line), nil
}

func rehydrateAll(records []map[string]any) ([]models.BookingService, error) {
	lines := make([]models.BookingService, 0, len(records))
	for _, record := range records {
		line, err := rehydrate(record)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Create inserts a new booking line.
func (r *KVBookingServiceRepo) Create(line models.BookingService) (*models.BookingService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	line = models.NewBookingService(line)
	if err := r.coll.Append(ctx, line); err != nil {
		return nil, fmt.Errorf("failed to create booking line: %w", err)
	}
	return &line, nil
}

// GetByID retrieves a booking line by its unique ID.
func (r *KVBookingServiceRepo) GetByID(id string) (*models.BookingService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Find(ctx, func(rec map[string]any) bool {
		return rec["id"] == id
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking line with id %s: %w", id, err)
	}
	line, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// GetAll retrieves all booking lines.
func (r *KVBookingServiceRepo) GetAll() ([]models.BookingService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve booking lines: %w", err)
	}
	return rehydrateAll(records)
}

// Update merges partial fields into an existing booking line.
func (r *KVBookingServiceRepo) Update(id string, fields map[string]any) (*models.BookingService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking line with id %s: %w", id, err)
	}
	line, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Delete removes a booking line by its ID.
func (r *KVBookingServiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if err := r.coll.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking line with id %s: %w", id, err)
	}
	return nil
}

// GetByBookingID retrieves the lines belonging to a booking.
func (r *KVBookingServiceRepo) GetByBookingID(bookingID string) ([]models.BookingService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Filter(ctx, func(rec map[string]any) bool {
		return rec["bookingId"] == bookingID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for booking %s: %w", bookingID, err)
	}
	return rehydrateAll(records)
}

// GetByServiceID retrieves the lines referencing a catalog service.
func (r *KVBookingServiceRepo) GetByServiceID(serviceID string) ([]models.BookingService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Filter(ctx, func(rec map[string]any) bool {
		return rec["serviceId"] == serviceID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for service %s: %w", serviceID, err)
	}
	return rehydrateAll(records)
}

// DeleteByBookingID removes every line belonging to a booking. Removing
// zero lines is not an error; a booking may have none.
func (r *KVBookingServiceRepo) DeleteByBookingID(bookingID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	kept, err := r.coll.Filter(ctx, func(rec map[string]any) bool {
		return rec["bookingId"] != bookingID
	})
	if err != nil {
		return fmt.Errorf("failed to retrieve lines for booking %s: %w", bookingID, err)
	}
	if err := r.coll.SetRecords(ctx, kept); err != nil {
		return fmt.Errorf("failed to delete lines for booking %s: %w", bookingID, err)
	}
	return nil
}
