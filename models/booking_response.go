package models

import "strings"

// BookingServiceView is a booking line annotated with the catalog entry it
// references, resolved at read time and never persisted.
type BookingServiceView struct {
	BookingService
	ServiceName        string `json:"serviceName,omitempty"`
	ServiceDescription string `json:"serviceDescription,omitempty"`
}

// BookingView is a booking enriched for display: the resolved customer, its
// annotated service lines, and the legacy aliases filled in. The embedded
// booking's CustomerName/Service/Price hold the resolved display values.
type BookingView struct {
	Booking
	Customer *Customer            `json:"customer,omitempty"`
	Services []BookingServiceView `json:"services,omitempty"`
}

// ResolveCustomerName sets the display name on the view: the customer
// record is authoritative, the denormalized snapshot is the fallback, and
// an unresolvable booking shows the unknown-customer label.
func (v *BookingView) ResolveCustomerName(customer *Customer) {
	v.Customer = customer
	switch {
	case customer != nil:
		v.CustomerName = customer.Name
	case v.CustomerName != "":
		// keep the denormalized snapshot
	default:
		v.CustomerName = UnknownCustomerLabel
	}
}

// ResolveServiceLabel sets the legacy service alias: the comma-joined line
// names, else the booking notes, else the no-treatment label.
func (v *BookingView) ResolveServiceLabel() {
	names := make([]string, 0, len(v.Services))
	for _, line := range v.Services {
		if line.ServiceName != "" {
			names = append(names, line.ServiceName)
		}
	}
	switch {
	case len(names) > 0:
		v.Service = strings.Join(names, ", ")
	case v.Service != "":
		// keep the denormalized label
	case v.Notes != "":
		v.Service = v.Notes
	default:
		v.Service = NoTreatmentLabel
	}
}

// CustomerView is a customer enriched with the bookings attached to them
// and the visit statistics computed from that set.
type CustomerView struct {
	Customer
	VisitStats
	Bookings []Booking `json:"bookings,omitempty"`
}

// DashboardSummary is the aggregate snapshot shown on the dashboard.
// Recomputed from the repositories on every call; nothing is cached.
type DashboardSummary struct {
	TodayRevenue      int           `json:"todayRevenue"`
	TodayBookingCount int           `json:"todayBookingCount"`
	TodayBookings     []BookingView `json:"todayBookings"`
	TotalCustomers    int           `json:"totalCustomers"`
	LowStockCount     int           `json:"lowStockCount"`
}
