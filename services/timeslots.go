// services/timeslots.go
package services

import (
	"os"
	"strconv"
	"strings"
)

// TimeSlot is one bookable time-of-day label with a fixed table layout. The
// same slot set applies to every calendar date.
type TimeSlot struct {
	Label         string `json:"time"`
	Tables        int    `json:"tables"`
	SeatsPerTable int    `json:"seatsPerTable"`
}

// TotalSeats returns the seat capacity of the slot.
func (s TimeSlot) TotalSeats() int {
	return s.Tables * s.SeatsPerTable
}

// TimeSlotCatalog is the read-only slot configuration used by the
// availability engine. It is immutable at request time.
type TimeSlotCatalog struct {
	Slots        []TimeSlot
	MaxPartySize int
}

// Find returns the slot with the given label.
func (c TimeSlotCatalog) Find(label string) (TimeSlot, bool) {
	for _, s := range c.Slots {
		if s.Label == label {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// Labels returns all slot labels in catalog order.
func (c TimeSlotCatalog) Labels() []string {
	labels := make([]string, 0, len(c.Slots))
	for _, s := range c.Slots {
		labels = append(labels, s.Label)
	}
	return labels
}

// DefaultTimeSlotCatalog returns the dinner-service catalog used when no
// environment overrides are set: 17:00 to 21:30 every half hour, five
// four-seat tables per slot, bookings capped at 8 guests.
func DefaultTimeSlotCatalog() TimeSlotCatalog {
	labels := []string{
		"17:00", "17:30", "18:00", "18:30", "19:00",
		"19:30", "20:00", "20:30", "21:00", "21:30",
	}
	slots := make([]TimeSlot, 0, len(labels))
	for _, l := range labels {
		slots = append(slots, TimeSlot{Label: l, Tables: 5, SeatsPerTable: 4})
	}
	return TimeSlotCatalog{Slots: slots, MaxPartySize: 8}
}

// LoadTimeSlotCatalog builds the catalog from environment variables, falling
// back to defaults per value:
//
//	RESERVATION_SLOTS           comma-separated labels, e.g. "18:00,18:30"
//	RESERVATION_TABLES_PER_SLOT tables available at each slot
//	RESERVATION_SEATS_PER_TABLE seats per table
//	RESERVATION_MAX_PARTY_SIZE  maximum guests per booking
func LoadTimeSlotCatalog() TimeSlotCatalog {
	catalog := DefaultTimeSlotCatalog()

	tables := envInt("RESERVATION_TABLES_PER_SLOT", 5)
	seats := envInt("RESERVATION_SEATS_PER_TABLE", 4)

	if raw := os.Getenv("RESERVATION_SLOTS"); raw != "" {
		var slots []TimeSlot
		for _, label := range strings.Split(raw, ",") {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			slots = append(slots, TimeSlot{Label: label, Tables: tables, SeatsPerTable: seats})
		}
		if len(slots) > 0 {
			catalog.Slots = slots
		}
	} else if tables != 5 || seats != 4 {
		for i := range catalog.Slots {
			catalog.Slots[i].Tables = tables
			catalog.Slots[i].SeatsPerTable = seats
		}
	}

	catalog.MaxPartySize = envInt("RESERVATION_MAX_PARTY_SIZE", catalog.MaxPartySize)
	return catalog
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
