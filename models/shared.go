package models

import (
	"fmt"
	"strconv"
)

// Booking status values.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DateLayout is the calendar-date format used on bookings ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// Display fallbacks for records that cannot be resolved.
const (
	UnknownCustomerLabel = "unknown customer"
	NoTreatmentLabel     = "no treatment"
)

// FormatYen renders an amount in whole yen with comma grouping, e.g. "¥5,000".
// Yen has no subunit, so amounts are plain integers.
func FormatYen(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.Itoa(amount)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + "¥" + s
}

// FormatMinutes renders a duration in minutes as "1h 30m", "2h" or "45m".
func FormatMinutes(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		if mins > 0 {
			return fmt.Sprintf("%dh %dm", hours, mins)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", mins)
}
