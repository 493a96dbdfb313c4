package dashboard

import (
	"testing"
	"time"

	"salonkit/database"
	bookingRepoPkg "salonkit/database/repository/booking"
	bookingServiceRepoPkg "salonkit/database/repository/bookingservice"
	catalogRepoPkg "salonkit/database/repository/catalog"
	customerRepoPkg "salonkit/database/repository/customer"
	productRepoPkg "salonkit/database/repository/product"
	"salonkit/models"
	"salonkit/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultDashboardService {
	store := database.NewMemoryStore()
	bookings := bookingRepoPkg.NewKVBookingRepo(store)
	customers := customerRepoPkg.NewKVCustomerRepo(store)
	products := productRepoPkg.NewKVProductRepo(store)
	bookingSvc := &booking.DefaultBookingService{
		Repo:      bookings,
		Lines:     bookingServiceRepoPkg.NewKVBookingServiceRepo(store),
		Customers: customers,
		Catalog:   catalogRepoPkg.NewKVServiceRepo(store),
	}
	return &DefaultDashboardService{
		Bookings:   bookings,
		Customers:  customers,
		Products:   products,
		BookingSvc: bookingSvc,
	}
}

func TestGetDashboardSummary(t *testing.T) {
	svc := newTestService()
	today := time.Now().Format(models.DateLayout)

	tanaka, err := svc.Customers.Create(models.Customer{Name: "Tanaka"})
	require.NoError(t, err)
	_, err = svc.Customers.Create(models.Customer{Name: "Sato"})
	require.NoError(t, err)

	mustBook := func(b models.Booking) {
		_, err := svc.Bookings.Create(b)
		require.NoError(t, err)
	}
	mustBook(models.Booking{CustomerID: tanaka.ID, Date: today, Time: "10:00", Status: models.StatusCompleted, TotalPrice: 5000})
	mustBook(models.Booking{CustomerID: tanaka.ID, Date: today, Time: "13:00", Status: models.StatusScheduled, TotalPrice: 8000})
	mustBook(models.Booking{CustomerID: tanaka.ID, Date: today, Time: "15:00", Status: models.StatusCancelled, TotalPrice: 9000})
	mustBook(models.Booking{CustomerID: tanaka.ID, Date: "2024-01-01", Status: models.StatusCompleted, TotalPrice: 4000})

	mustProduct := func(p models.Product) {
		_, err := svc.Products.Create(p)
		require.NoError(t, err)
	}
	mustProduct(models.Product{Name: "Shampoo", CurrentStock: 10, MinStock: 3})
	mustProduct(models.Product{Name: "Bleach", CurrentStock: 1, MinStock: 2})

	summary, err := svc.GetDashboardSummary()
	require.NoError(t, err)

	assert.Equal(t, 5000, summary.TodayRevenue, "only today's completed bookings count")
	assert.Equal(t, 3, summary.TodayBookingCount, "the day's list spans all statuses")
	assert.Equal(t, 2, summary.TotalCustomers)
	assert.Equal(t, 1, summary.LowStockCount)

	require.Len(t, summary.TodayBookings, 3)
	assert.Equal(t, "Tanaka", summary.TodayBookings[0].CustomerName)
}

func TestGetDashboardSummaryEmpty(t *testing.T) {
	svc := newTestService()

	summary, err := svc.GetDashboardSummary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TodayRevenue)
	assert.Equal(t, 0, summary.TodayBookingCount)
	assert.Empty(t, summary.TodayBookings)
	assert.Equal(t, 0, summary.TotalCustomers)
	assert.Equal(t, 0, summary.LowStockCount)
}
