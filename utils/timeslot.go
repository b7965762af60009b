package utils

import (
	"time"
)

// Layout yang diterima untuk time_slot: RFC3339 penuh atau bentuk tanpa
// zona waktu seperti "2025-09-10T18:00:00" (dianggap UTC).
var timeSlotLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimeSlot -> parse string ISO-8601 menjadi time.Time dalam UTC.
// Slot dibandingkan dengan kesamaan nilai persis, jadi semua slot
// dinormalisasi ke UTC sebelum disimpan.
func ParseTimeSlot(value string) (time.Time, error) {
	for _, layout := range timeSlotLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, Validationf("invalid time_slot %q: expected an ISO-8601 date-time", value)
}
