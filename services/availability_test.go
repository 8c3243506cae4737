package services

import (
	"testing"
	"time"

	"restobook-backend/models"
)

func testCatalog() TimeSlotCatalog {
	return TimeSlotCatalog{
		Slots: []TimeSlot{
			{Label: "18:00", Tables: 5, SeatsPerTable: 4},
			{Label: "19:00", Tables: 5, SeatsPerTable: 4},
		},
		MaxPartySize: 8,
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func slotByTime(t *testing.T, result AvailabilityResult, label string) SlotAvailability {
	t.Helper()
	for _, s := range result.Availability {
		if s.Time == label {
			return s
		}
	}
	t.Fatalf("slot %q missing from result", label)
	return SlotAvailability{}
}

func TestComputeAvailabilityEmptyReservations(t *testing.T) {
	result := ComputeAvailability(testCatalog(), nil, day("2024-03-25"), 2)

	if len(result.Availability) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(result.Availability))
	}
	if len(result.AllTimeSlots) != 2 {
		t.Fatalf("expected 2 slot labels, got %d", len(result.AllTimeSlots))
	}
	for _, s := range result.Availability {
		if !s.IsAvailable {
			t.Errorf("slot %s should be available on an empty date", s.Time)
		}
		if s.RemainingCapacity != 20 {
			t.Errorf("slot %s remaining = %d, want 20", s.Time, s.RemainingCapacity)
		}
		if s.AvailableTables != 5 {
			t.Errorf("slot %s tables = %d, want 5", s.Time, s.AvailableTables)
		}
	}
}

func TestComputeAvailabilityConsumption(t *testing.T) {
	cases := []struct {
		name          string
		reservations  []models.Reservation
		guests        int
		wantRemaining int
		wantTables    int
		wantAvailable bool
	}{
		{
			name: "pendingConsumes",
			reservations: []models.Reservation{
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 4, Status: models.ReservationPending},
			},
			guests:        4,
			wantRemaining: 16,
			wantTables:    4,
			wantAvailable: true,
		},
		{
			name: "confirmedConsumes",
			reservations: []models.Reservation{
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 6, Status: models.ReservationConfirmed},
			},
			guests:        2,
			wantRemaining: 14,
			wantTables:    3, // 6 guests occupy two 4-seat tables
			wantAvailable: true,
		},
		{
			name: "cancelledIgnored",
			reservations: []models.Reservation{
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 8, Status: models.ReservationCancelled},
			},
			guests:        2,
			wantRemaining: 20,
			wantTables:    5,
			wantAvailable: true,
		},
		{
			name: "completedIgnored",
			reservations: []models.Reservation{
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 8, Status: models.ReservationCompleted},
			},
			guests:        2,
			wantRemaining: 20,
			wantTables:    5,
			wantAvailable: true,
		},
		{
			name: "otherDateIgnored",
			reservations: []models.Reservation{
				{Date: day("2024-03-26"), Time: "18:00", PartySize: 8, Status: models.ReservationConfirmed},
			},
			guests:        2,
			wantRemaining: 20,
			wantTables:    5,
			wantAvailable: true,
		},
		{
			name: "rejectAgainstRemainingNotGross",
			reservations: []models.Reservation{
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 4, Status: models.ReservationPending},
			},
			guests:        18, // fits gross capacity 20, not remaining 16
			wantRemaining: 16,
			wantTables:    4,
			wantAvailable: false,
		},
		{
			name: "noFreeTableRejectsSmallParty",
			reservations: []models.Reservation{
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 8, Status: models.ReservationConfirmed},
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 8, Status: models.ReservationPending},
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 1, Status: models.ReservationConfirmed},
			},
			guests:        2, // 3 seats remain but all 5 tables are occupied
			wantRemaining: 3,
			wantTables:    0,
			wantAvailable: false,
		},
		{
			name: "fullSlot",
			reservations: []models.Reservation{
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 8, Status: models.ReservationConfirmed},
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 8, Status: models.ReservationPending},
				{Date: day("2024-03-25"), Time: "18:00", PartySize: 4, Status: models.ReservationConfirmed},
			},
			guests:        1,
			wantRemaining: 0,
			wantTables:    0,
			wantAvailable: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ComputeAvailability(testCatalog(), tc.reservations, day("2024-03-25"), tc.guests)
			slot := slotByTime(t, result, "18:00")

			if slot.RemainingCapacity != tc.wantRemaining {
				t.Errorf("remaining = %d, want %d", slot.RemainingCapacity, tc.wantRemaining)
			}
			if slot.AvailableTables != tc.wantTables {
				t.Errorf("tables = %d, want %d", slot.AvailableTables, tc.wantTables)
			}
			if slot.IsAvailable != tc.wantAvailable {
				t.Errorf("isAvailable = %v, want %v", slot.IsAvailable, tc.wantAvailable)
			}
		})
	}
}

func TestComputeAvailabilityPartialTableRoundsUp(t *testing.T) {
	// A single guest still occupies a whole table.
	reservations := []models.Reservation{
		{Date: day("2024-03-25"), Time: "19:00", PartySize: 1, Status: models.ReservationConfirmed},
	}
	result := ComputeAvailability(testCatalog(), reservations, day("2024-03-25"), 2)
	slot := slotByTime(t, result, "19:00")

	if slot.AvailableTables != 4 {
		t.Errorf("tables = %d, want 4", slot.AvailableTables)
	}
	if slot.RemainingCapacity != 19 {
		t.Errorf("remaining = %d, want 19", slot.RemainingCapacity)
	}
}

func TestComputeAvailabilityDecrementsByPartySize(t *testing.T) {
	var reservations []models.Reservation
	expected := 20
	for i := 0; i < 4; i++ {
		reservations = append(reservations, models.Reservation{
			Date: day("2024-03-25"), Time: "18:00", PartySize: 3, Status: models.ReservationPending,
		})
		expected -= 3

		result := ComputeAvailability(testCatalog(), reservations, day("2024-03-25"), 2)
		slot := slotByTime(t, result, "18:00")
		if slot.RemainingCapacity != expected {
			t.Fatalf("after %d bookings remaining = %d, want %d", i+1, slot.RemainingCapacity, expected)
		}
	}
}

func TestComputeAvailabilityNoConfiguredSlots(t *testing.T) {
	result := ComputeAvailability(TimeSlotCatalog{MaxPartySize: 8}, nil, day("2024-03-25"), 2)
	if len(result.Availability) != 0 {
		t.Fatalf("expected no slots, got %d", len(result.Availability))
	}
	if len(result.AllTimeSlots) != 0 {
		t.Fatalf("expected no labels, got %d", len(result.AllTimeSlots))
	}
}

func TestSlotCanSeat(t *testing.T) {
	slot := TimeSlot{Label: "18:00", Tables: 5, SeatsPerTable: 4}

	cases := []struct {
		name      string
		used      int
		partySize int
		want      bool
	}{
		{name: "emptySlot", used: 0, partySize: 8, want: true},
		{name: "exactRemaining", used: 16, partySize: 4, want: true},
		{name: "overRemaining", used: 16, partySize: 5, want: false},
		{name: "seatsLeftButNoTable", used: 17, partySize: 2, want: false},
		{name: "fullSlot", used: 20, partySize: 1, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SlotCanSeat(slot, tc.used, tc.partySize); got != tc.want {
				t.Errorf("SlotCanSeat(used=%d, party=%d) = %v, want %v", tc.used, tc.partySize, got, tc.want)
			}
		})
	}
}

func TestSlotRemainingCapacity(t *testing.T) {
	reservations := []models.Reservation{
		{Date: day("2024-03-25"), Time: "18:00", PartySize: 4, Status: models.ReservationPending},
		{Date: day("2024-03-25"), Time: "18:00", PartySize: 3, Status: models.ReservationCancelled},
	}

	remaining, ok := SlotRemainingCapacity(testCatalog(), reservations, day("2024-03-25"), "18:00")
	if !ok {
		t.Fatal("expected slot to be found")
	}
	if remaining != 16 {
		t.Errorf("remaining = %d, want 16", remaining)
	}

	if _, ok := SlotRemainingCapacity(testCatalog(), reservations, day("2024-03-25"), "23:00"); ok {
		t.Error("expected unknown slot to report not found")
	}
}
