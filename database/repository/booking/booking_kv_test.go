package bookingRepo

import (
	"context"
	"testing"
	"time"

	"salonkit/database"
	"salonkit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() (BookingRepository, database.Store) {
	store := database.NewMemoryStore()
	return NewKVBookingRepo(store), store
}

func TestCreateAndGetBooking(t *testing.T) {
	repo, _ := newTestRepo()

	created, err := repo.Create(models.Booking{Date: "2025-07-01", Time: "10:00"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusScheduled, created.Status)

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "2025-07-01", fetched.Date)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestLegacyRecordUpcast(t *testing.T) {
	repo, store := newTestRepo()

	// Seed a pre-migration record: flat price, denormalized name, no lines.
	coll := database.NewCollection(store, collectionName)
	require.NoError(t, coll.Append(context.Background(), map[string]any{
		"id":           "legacy-1",
		"date":         "2024-12-01",
		"time":         "14:00",
		"status":       "completed",
		"customerName": "Sato",
		"service":      "Cut",
		"price":        3000,
	}))

	b, err := repo.GetByID("legacy-1")
	require.NoError(t, err)
	assert.Equal(t, 3000, b.TotalPrice, "flat price is upcast to the total")
	assert.Equal(t, 3000, b.Price)
	assert.Equal(t, "Sato", b.CustomerName)
	assert.Empty(t, b.CustomerID)
}

func TestBookingQueries(t *testing.T) {
	repo, _ := newTestRepo()
	today := time.Now().Format(models.DateLayout)

	mustCreate := func(b models.Booking) models.Booking {
		created, err := repo.Create(b)
		require.NoError(t, err)
		return *created
	}

	mustCreate(models.Booking{Date: today, Time: "10:00", Status: models.StatusCompleted, TotalPrice: 5000, CustomerID: "c1"})
	mustCreate(models.Booking{Date: today, Time: "13:00", Status: models.StatusScheduled, TotalPrice: 8000, CustomerID: "c1"})
	mustCreate(models.Booking{Date: "2025-01-15", Time: "11:00", Status: models.StatusCompleted, TotalPrice: 4000, CustomerID: "c2"})
	mustCreate(models.Booking{Date: today, Time: "15:00", Status: models.StatusCancelled, TotalPrice: 9000, CustomerID: "c2"})

	t.Run("by date", func(t *testing.T) {
		got, err := repo.GetByDate(today)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("by customer", func(t *testing.T) {
		got, err := repo.GetByCustomerID("c1")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("by status", func(t *testing.T) {
		got, err := repo.GetByStatus(models.StatusCompleted)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("today revenue counts only completed", func(t *testing.T) {
		revenue, err := repo.GetTodayRevenue()
		require.NoError(t, err)
		assert.Equal(t, 5000, revenue)
	})

	t.Run("total revenue spans all dates", func(t *testing.T) {
		revenue, err := repo.GetTotalRevenue()
		require.NoError(t, err)
		assert.Equal(t, 9000, revenue)
	})
}

func TestUpdateAndDeleteBooking(t *testing.T) {
	repo, _ := newTestRepo()
	created, err := repo.Create(models.Booking{Date: "2025-07-01", Time: "10:00"})
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, map[string]any{"totalPrice": 6000, "totalDuration": 45})
	require.NoError(t, err)
	assert.Equal(t, 6000, updated.TotalPrice)
	assert.Equal(t, 45, updated.TotalDuration)
	assert.Equal(t, "2025-07-01", updated.Date, "unmentioned fields survive")

	require.NoError(t, repo.Delete(created.ID))
	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(created.ID), database.ErrNotFound)
}
