package store

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
	"salonkit/services/catalog"
	"salonkit/services/customer"
	"salonkit/services/dashboard"
	"salonkit/services/inventory"
	"salonkit/services/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures reported events for assertions.
type recordingSink struct {
	events []telemetry.Event
}

func (r *recordingSink) Report(event telemetry.Event) {
	r.events = append(r.events, event)
}

func newTestStore() (*AppStore, *recordingSink) {
	kv := database.NewMemoryStore()
	bookings := bookingRepoPkg.NewKVBookingRepo(kv)
	lines := bookingServiceRepoPkg.NewKVBookingServiceRepo(kv)
	custRepo := customerRepoPkg.NewKVCustomerRepo(kv)
	prodRepo := productRepoPkg.NewKVProductRepo(kv)
	svcRepo := catalogRepoPkg.NewKVServiceRepo(kv)

	bookingSvc := &booking.DefaultBookingService{
		Repo: bookings, Lines: lines, Customers: custRepo, Catalog: svcRepo,
	}
	customerSvc := &customer.DefaultCustomerService{Repo: custRepo, Bookings: bookings}
	inventorySvc := &inventory.DefaultInventoryService{Repo: prodRepo}
	catalogSvc := &catalog.DefaultCatalogService{Repo: svcRepo}
	dashboardSvc := &dashboard.DefaultDashboardService{
		Bookings: bookings, Customers: custRepo, Products: prodRepo, BookingSvc: bookingSvc,
	}

	sink := &recordingSink{}
	return New(bookingSvc, customerSvc, inventorySvc, catalogSvc, dashboardSvc, sink), sink
}

func TestStoreBookingFlow(t *testing.T) {
	s, sink := newTestStore()
	today := time.Now().Format(models.DateLayout)

	created, err := s.CreateCustomer(models.CustomerInput{Name: "Tanaka"})
	require.NoError(t, err)

	view, err := s.CreateBooking(models.BookingInput{
		CustomerID: created.ID,
		Date:       today,
		Time:       "10:00",
		Services:   []models.BookingLineInput{{ServiceID: "s1", Price: 5000, Duration: 50}},
	})
	require.NoError(t, err)

	state := s.Snapshot()
	require.Len(t, state.Bookings, 1)
	assert.Equal(t, 5000, state.Bookings[0].TotalPrice)
	assert.False(t, state.BookingLoading)
	assert.Empty(t, state.BookingError)
	assert.Empty(t, sink.events)

	t.Run("completion refreshes dependents", func(t *testing.T) {
		_, err := s.UpdateBookingStatus(view.ID, models.StatusCompleted)
		require.NoError(t, err)

		state := s.Snapshot()
		require.Len(t, state.Customers, 1)
		assert.Equal(t, 1, state.Customers[0].VisitCount)
		require.NotNil(t, state.Dashboard)
		assert.Equal(t, 5000, state.Dashboard.TodayRevenue)
	})

	t.Run("delete removes from state", func(t *testing.T) {
		require.NoError(t, s.DeleteBooking(view.ID))
		state := s.Snapshot()
		assert.Empty(t, state.Bookings)
		assert.Equal(t, 0, state.Dashboard.TodayRevenue)
	})
}

func TestStoreErrorSetsFlagAndReports(t *testing.T) {
	s, sink := newTestStore()

	_, err := s.UpdateBookingStatus("missing", models.StatusCompleted)
	require.Error(t, err)

	state := s.Snapshot()
	assert.False(t, state.BookingLoading)
	assert.NotEmpty(t, state.BookingError)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "custom-error", sink.events[0].Type)
	assert.Equal(t, "updateBookingStatus", sink.events[0].Context["action"])
}

func TestStoreSearchCustomers(t *testing.T) {
	s, _ := newTestStore()

	_, err := s.CreateCustomer(models.CustomerInput{Name: "Tanaka"})
	require.NoError(t, err)
	_, err = s.CreateCustomer(models.CustomerInput{Name: "Sato"})
	require.NoError(t, err)

	s.SearchCustomers("tan")
	state := s.Snapshot()
	require.Len(t, state.Customers, 1)
	assert.Equal(t, "Tanaka", state.Customers[0].Name)

	s.SearchCustomers("")
	assert.Len(t, s.Snapshot().Customers, 2)
}

func TestStoreInventoryAndCatalog(t *testing.T) {
	s, _ := newTestStore()

	product, err := s.CreateProduct(models.ProductInput{Name: "Shampoo", CurrentStock: 5, MinStock: 2})
	require.NoError(t, err)

	_, err = s.AdjustStock(product.ID, -4)
	require.NoError(t, err)
	state := s.Snapshot()
	require.Len(t, state.Products, 1)
	assert.Equal(t, 1, state.Products[0].CurrentStock)
	require.NotNil(t, state.Dashboard)
	assert.Equal(t, 1, state.Dashboard.LowStockCount, "dashboard reflects the new stock level")

	service, err := s.CreateService(models.ServiceInput{Name: "Cut"})
	require.NoError(t, err)
	toggled, err := s.ToggleServiceActive(service.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	state = s.Snapshot()
	require.Len(t, state.Services, 1)
	assert.False(t, state.Services[0].IsActive)
}
