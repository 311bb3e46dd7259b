package booking

import (
	"time"

	"github.com/beautyparlour/parlour-api/internal/httperr"
)

// Accepted appointment-time layouts. Clients usually send a naive ISO-8601
// timestamp; an explicit offset is honored when present.
var appointmentLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseAppointmentTime parses an ISO-8601 timestamp; naive timestamps are
// taken as UTC.
func ParseAppointmentTime(s string) (time.Time, error) {
	for _, layout := range appointmentLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, httperr.ErrBusinessf("invalid_datetime", "Invalid datetime format. Use ISO format.")
}
