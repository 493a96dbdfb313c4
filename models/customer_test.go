package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerMatches(t *testing.T) {
	c := Customer{ID: "c1", Name: "Tanaka"}

	t.Run("id match wins when the booking carries one", func(t *testing.T) {
		assert.True(t, c.Matches(Booking{CustomerID: "c1"}))
		assert.False(t, c.Matches(Booking{CustomerID: "c2", CustomerName: "Tanaka"}))
	})

	t.Run("legacy records fall back to exact name equality", func(t *testing.T) {
		assert.True(t, c.Matches(Booking{CustomerName: "Tanaka"}))
		assert.False(t, c.Matches(Booking{CustomerName: "tanaka"}))
		assert.False(t, c.Matches(Booking{}))
	})
}

func TestComputeVisitStats(t *testing.T) {
	bookings := []Booking{
		{Status: StatusCompleted, Date: "2025-06-01"},
		{Status: StatusCompleted, Date: "2025-07-15"},
		{Status: StatusScheduled, Date: "2025-08-01"},
		{Status: StatusCancelled, Date: "2025-09-01"},
	}

	stats := ComputeVisitStats(bookings)
	assert.Equal(t, 2, stats.VisitCount)
	assert.Equal(t, "2025-07-15", stats.LastVisit)

	t.Run("no completed visits", func(t *testing.T) {
		stats := ComputeVisitStats([]Booking{{Status: StatusScheduled, Date: "2025-08-01"}})
		assert.Equal(t, 0, stats.VisitCount)
		assert.Empty(t, stats.LastVisit)
		assert.Equal(t, "no visits yet", stats.LastVisitString())
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, VisitStats{}, ComputeVisitStats(nil))
	})
}

func TestCustomerSearchableString(t *testing.T) {
	c := Customer{Name: "Tanaka Yuki", Phone: "090-1234-5678", Email: "Yuki@Example.com"}
	assert.Equal(t, "tanaka yuki 090-1234-5678 yuki@example.com", c.SearchableString())
}
