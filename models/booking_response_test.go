package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCustomerName(t *testing.T) {
	t.Run("customer record is authoritative", func(t *testing.T) {
		v := BookingView{Booking: Booking{CustomerName: "old snapshot"}}
		v.ResolveCustomerName(&Customer{ID: "c1", Name: "Tanaka"})
		assert.Equal(t, "Tanaka", v.CustomerName)
		assert.Equal(t, "c1", v.Customer.ID)
	})

	t.Run("denormalized snapshot is the fallback", func(t *testing.T) {
		v := BookingView{Booking: Booking{CustomerName: "Sato"}}
		v.ResolveCustomerName(nil)
		assert.Equal(t, "Sato", v.CustomerName)
		assert.Nil(t, v.Customer)
	})

	t.Run("unresolvable booking shows the label", func(t *testing.T) {
		v := BookingView{}
		v.ResolveCustomerName(nil)
		assert.Equal(t, UnknownCustomerLabel, v.CustomerName)
	})
}

func TestResolveServiceLabel(t *testing.T) {
	t.Run("line names are joined", func(t *testing.T) {
		v := BookingView{Services: []BookingServiceView{
			{ServiceName: "Cut"},
			{ServiceName: "Color"},
		}}
		v.ResolveServiceLabel()
		assert.Equal(t, "Cut, Color", v.Service)
	})

	t.Run("denormalized label is kept for legacy records", func(t *testing.T) {
		v := BookingView{Booking: Booking{Service: "Perm"}}
		v.ResolveServiceLabel()
		assert.Equal(t, "Perm", v.Service)
	})

	t.Run("notes are the next fallback", func(t *testing.T) {
		v := BookingView{Booking: Booking{Notes: "walk-in"}}
		v.ResolveServiceLabel()
		assert.Equal(t, "walk-in", v.Service)
	})

	t.Run("nothing resolvable shows the label", func(t *testing.T) {
		v := BookingView{}
		v.ResolveServiceLabel()
		assert.Equal(t, NoTreatmentLabel, v.Service)
	})
}
