package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"salonkit/database"
	"salonkit/models"
)

const collectionName = "bookings"

// KVBookingRepo implements BookingRepository on the key-value storage
// adapter.
type KVBookingRepo struct {
	coll *database.Collection
}

// NewKVBookingRepo creates a new instance of BookingRepository over the
// given store.
func NewKVBookingRepo(store database.Store) BookingRepository {
	return &KVBookingRepo{coll: database.NewCollection(store, collectionName)}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// rehydrate turns a raw record into a booking entity, backfilling defaults
// and upcasting legacy-shaped records.
func rehydrate(record map[string]any) (models.Booking, error) {
	var b models.Booking
	if err := database.Decode(record, &b); err != nil {
		return b, fmt.Errorf("failed to decode booking: %w", err)
	}
	b = models.NewBooking(b)
	b.Normalize()
	return b, nil
}

func rehydrateAll(records []map[string]any) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0, len(records))
	for _, record := range records {
		b, err := rehydrate(record)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// Create inserts a new booking record.
func (r *KVBookingRepo) Create(booking models.Booking) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking = models.NewBooking(booking)
	if err := r.coll.Append(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, nil
}

// GetByID retrieves a booking by its unique ID.
func (r *KVBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Find(ctx, func(rec map[string]any) bool {
		return rec["id"] == id
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	b, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetAll retrieves all bookings.
func (r *KVBookingRepo) GetAll() ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	records, err := r.coll.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return rehydrateAll(records)
}

// Update merges partial fields into an existing booking record.
func (r *KVBookingRepo) Update(id string, fields map[string]any) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record, err := r.coll.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	b, err := rehydrate(record)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes a booking record by its ID.
func (r *KVBookingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if err := r.coll.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return nil
}
