package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingDefaults(t *testing.T) {
	b := NewBooking(Booking{Date: "2025-07-01", Time: "10:00"})

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusScheduled, b.Status)
	assert.False(t, b.CreatedAt.IsZero())
	assert.False(t, b.UpdatedAt.IsZero())

	t.Run("existing identity is preserved", func(t *testing.T) {
		again := NewBooking(b)
		assert.Equal(t, b.ID, again.ID)
		assert.Equal(t, b.CreatedAt, again.CreatedAt)
	})
}

func TestBookingNormalize(t *testing.T) {
	t.Run("legacy flat price becomes the total", func(t *testing.T) {
		b := Booking{Price: 3000}
		b.Normalize()
		assert.Equal(t, 3000, b.TotalPrice)
		assert.Equal(t, 3000, b.Price)
	})

	t.Run("existing total wins over the alias", func(t *testing.T) {
		b := Booking{TotalPrice: 5000, Price: 3000}
		b.Normalize()
		assert.Equal(t, 5000, b.TotalPrice)
		assert.Equal(t, 5000, b.Price)
	})

	t.Run("zero stays zero", func(t *testing.T) {
		b := Booking{}
		b.Normalize()
		assert.Equal(t, 0, b.TotalPrice)
		assert.Equal(t, 0, b.Price)
	})
}

func TestBookingDisplayStrings(t *testing.T) {
	b := Booking{Date: "2025-07-01", Time: "10:00", Status: StatusScheduled, TotalPrice: 5000, TotalDuration: 90}

	assert.Equal(t, "2025-07-01 10:00", b.DateTimeString())
	assert.Equal(t, "Scheduled", b.StatusText())
	assert.Equal(t, "¥5,000", b.TotalPriceString())
	assert.Equal(t, "1h 30m", b.TotalDurationString())

	b.Status = "no-show"
	assert.Equal(t, "no-show", b.StatusText())
}

func TestFormatYen(t *testing.T) {
	assert.Equal(t, "¥0", FormatYen(0))
	assert.Equal(t, "¥500", FormatYen(500))
	assert.Equal(t, "¥5,000", FormatYen(5000))
	assert.Equal(t, "¥1,234,567", FormatYen(1234567))
	assert.Equal(t, "-¥1,500", FormatYen(-1500))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}
