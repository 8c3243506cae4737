package services

import "testing"

func TestDefaultTimeSlotCatalog(t *testing.T) {
	catalog := DefaultTimeSlotCatalog()

	if len(catalog.Slots) != 10 {
		t.Fatalf("expected 10 default slots, got %d", len(catalog.Slots))
	}
	if catalog.MaxPartySize != 8 {
		t.Errorf("MaxPartySize = %d, want 8", catalog.MaxPartySize)
	}
	for _, s := range catalog.Slots {
		if s.TotalSeats() != 20 {
			t.Errorf("slot %s seats = %d, want 20", s.Label, s.TotalSeats())
		}
	}
}

func TestTimeSlotCatalogFind(t *testing.T) {
	catalog := DefaultTimeSlotCatalog()

	if _, ok := catalog.Find("19:00"); !ok {
		t.Error("expected 19:00 to be in the default catalog")
	}
	if _, ok := catalog.Find("03:00"); ok {
		t.Error("03:00 should not be a bookable slot")
	}
}

func TestLoadTimeSlotCatalogFromEnv(t *testing.T) {
	t.Setenv("RESERVATION_SLOTS", "12:00, 12:30 ,13:00")
	t.Setenv("RESERVATION_TABLES_PER_SLOT", "3")
	t.Setenv("RESERVATION_SEATS_PER_TABLE", "6")
	t.Setenv("RESERVATION_MAX_PARTY_SIZE", "10")

	catalog := LoadTimeSlotCatalog()

	if len(catalog.Slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(catalog.Slots))
	}
	if catalog.Slots[1].Label != "12:30" {
		t.Errorf("labels not trimmed: got %q", catalog.Slots[1].Label)
	}
	if catalog.Slots[0].TotalSeats() != 18 {
		t.Errorf("TotalSeats = %d, want 18", catalog.Slots[0].TotalSeats())
	}
	if catalog.MaxPartySize != 10 {
		t.Errorf("MaxPartySize = %d, want 10", catalog.MaxPartySize)
	}
}

func TestLoadTimeSlotCatalogIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("RESERVATION_MAX_PARTY_SIZE", "not-a-number")

	catalog := LoadTimeSlotCatalog()
	if catalog.MaxPartySize != 8 {
		t.Errorf("MaxPartySize = %d, want default 8", catalog.MaxPartySize)
	}
}
