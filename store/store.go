// Package store is the view-model layer: it holds the loaded lists and the
// per-domain loading/error flags the screens render from, and it invokes
// the use-case services. All state lives behind one lock; screens read a
// consistent snapshot.
package store

import (
	"sync"

	"salonkit/models"
	"salonkit/services/booking"
	"salonkit/services/catalog"
	"salonkit/services/customer"
	"salonkit/services/dashboard"
	"salonkit/services/inventory"
	"salonkit/services/telemetry"
)

// State is the renderable application state.
type State struct {
	Bookings       []models.BookingView
	BookingLoading bool
	BookingError   string

	Customers       []models.CustomerView
	CustomerLoading bool
	CustomerError   string

	Products       []models.Product
	ProductLoading bool
	ProductError   string

	Services       []models.Service
	ServiceLoading bool
	ServiceError   string

	Dashboard        *models.DashboardSummary
	DashboardLoading bool
	DashboardError   string
}

// AppStore wires the use-case services to the UI state.
type AppStore struct {
	Bookings  booking.BookingService
	Customers customer.CustomerService
	Inventory inventory.InventoryService
	Catalog   catalog.CatalogService
	Dashboard dashboard.DashboardService
	Telemetry telemetry.Sink

	mu    sync.RWMutex
	state State
}

// New creates an AppStore over the given services.
func New(
	bookings booking.BookingService,
	customers customer.CustomerService,
	inv inventory.InventoryService,
	cat catalog.CatalogService,
	dash dashboard.DashboardService,
	sink telemetry.Sink,
) *AppStore {
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	return &AppStore{
		Bookings:  bookings,
		Customers: customers,
		Inventory: inv,
		Catalog:   cat,
		Dashboard: dash,
		Telemetry: sink,
	}
}

// Snapshot returns a copy of the current state. Slices share backing
// arrays with the store; treat them as read-only.
func (s *AppStore) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *AppStore) setState(mutate func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.state)
}

// report forwards a failed action to the telemetry sink.
func (s *AppStore) report(action string, err error) {
	s.Telemetry.Report(telemetry.Error(action, err, nil))
}
