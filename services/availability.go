// services/availability.go
package services

import (
	"time"

	"restobook-backend/models"
	"restobook-backend/utils"
)

// SlotAvailability is the per-slot result of an availability computation.
type SlotAvailability struct {
	Time              string `json:"time"`
	IsAvailable       bool   `json:"isAvailable"`
	AvailableTables   int    `json:"availableTables"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// AvailabilityResult lists every configured slot with its remaining capacity
// for one calendar date and party size.
type AvailabilityResult struct {
	Date         time.Time          `json:"date"`
	Guests       int                `json:"guests"`
	Availability []SlotAvailability `json:"availability"`
	AllTimeSlots []string           `json:"allTimeSlots"`
}

// ComputeAvailability derives per-slot remaining capacity for the given date
// by combining the slot catalog with the supplied reservations. Only pending
// and confirmed bookings consume seats; cancelled and completed ones do not.
// A partial table counts as a whole table: the number of tables in use is the
// consumed seat count divided by seats-per-table, rounded up.
//
// The function is a pure read. Reservations for other dates are ignored, so
// callers may pass an unfiltered list. With no reservations on the date every
// slot reports full capacity.
func ComputeAvailability(catalog TimeSlotCatalog, reservations []models.Reservation, date time.Time, partySize int) AvailabilityResult {
	day := utils.BeginningOfDayUTC(date)

	consumed := make(map[string]int, len(catalog.Slots))
	for _, r := range reservations {
		if !models.ConsumesCapacity(r.Status) {
			continue
		}
		if !utils.BeginningOfDayUTC(r.Date).Equal(day) {
			continue
		}
		consumed[r.Time] += r.PartySize
	}

	result := AvailabilityResult{
		Date:         day,
		Guests:       partySize,
		Availability: make([]SlotAvailability, 0, len(catalog.Slots)),
		AllTimeSlots: catalog.Labels(),
	}

	for _, slot := range catalog.Slots {
		used := consumed[slot.Label]

		result.Availability = append(result.Availability, SlotAvailability{
			Time:              slot.Label,
			IsAvailable:       SlotCanSeat(slot, used, partySize),
			AvailableTables:   SlotFreeTables(slot, used),
			RemainingCapacity: slot.TotalSeats() - used,
		})
	}

	return result
}

// SlotFreeTables returns how many of the slot's tables are still free given
// the seats already consumed. A partially occupied table counts as in use.
func SlotFreeTables(slot TimeSlot, used int) int {
	tablesInUse := 0
	if slot.SeatsPerTable > 0 {
		tablesInUse = (used + slot.SeatsPerTable - 1) / slot.SeatsPerTable
	}
	free := slot.Tables - tablesInUse
	if free < 0 {
		free = 0
	}
	return free
}

// SlotCanSeat reports whether a party fits in the slot given the seats
// already consumed: the remaining seats must cover the party and at least
// one table must be free. The booking path and the availability endpoint
// share this predicate, so a slot reported unavailable cannot be booked.
func SlotCanSeat(slot TimeSlot, used, partySize int) bool {
	return slot.TotalSeats()-used >= partySize && SlotFreeTables(slot, used) > 0
}

// SlotRemainingCapacity returns the remaining seats for a single slot on the
// given date, using the same counting rules as ComputeAvailability. The
// second return value is false when the slot is not in the catalog.
func SlotRemainingCapacity(catalog TimeSlotCatalog, reservations []models.Reservation, date time.Time, slotLabel string) (int, bool) {
	slot, ok := catalog.Find(slotLabel)
	if !ok {
		return 0, false
	}
	day := utils.BeginningOfDayUTC(date)
	used := 0
	for _, r := range reservations {
		if r.Time != slot.Label || !models.ConsumesCapacity(r.Status) {
			continue
		}
		if !utils.BeginningOfDayUTC(r.Date).Equal(day) {
			continue
		}
		used += r.PartySize
	}
	return slot.TotalSeats() - used, true
}
