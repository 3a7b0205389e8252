package storage

import (
	"testing"
	"time"

	"clinicflash-backend/models"
)

func TestAvailableSlotsClosedOnSunday(t *testing.T) {
	store := NewBookingStore(NewMemoryKV())

	slots, err := store.AvailableSlots("2025-06-08", 30) // Sunday
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on the closed day, got %d", len(slots))
	}
}

func TestAvailableSlotsFollowBusinessHours(t *testing.T) {
	store := NewBookingStore(NewMemoryKV())

	// Monday 11:00-20:00, 30 min steps: 11:00 .. 19:30
	slots, err := store.AvailableSlots("2025-06-09", 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if slots[0].Time != "11:00" || slots[len(slots)-1].Time != "19:30" {
		t.Errorf("slot range %s..%s", slots[0].Time, slots[len(slots)-1].Time)
	}

	// Thursday runs to 21:00.
	thursday, err := store.AvailableSlots("2025-06-12", 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(thursday) != 20 {
		t.Errorf("expected 20 Thursday slots, got %d", len(thursday))
	}
}

func TestAvailableSlotsMarkOverlaps(t *testing.T) {
	store := NewBookingStore(NewMemoryKV())

	if err := store.Add(models.Booking{
		ID:       "BK1",
		Date:     "2025-06-09",
		Time:     "14:00",
		Duration: 60,
		Status:   models.BookingConfirmed,
	}); err != nil {
		t.Fatal(err)
	}

	slots, err := store.AvailableSlots("2025-06-09", 30)
	if err != nil {
		t.Fatal(err)
	}
	bySlot := make(map[string]bool, len(slots))
	for _, s := range slots {
		bySlot[s.Time] = s.Available
	}

	for _, blocked := range []string{"14:00", "14:30"} {
		if bySlot[blocked] {
			t.Errorf("slot %s should be blocked by the 60 min booking", blocked)
		}
	}
	// A 30 min request ending at 14:00 still fits.
	if !bySlot["13:30"] {
		t.Error("13:30 should stay available")
	}
	if !bySlot["15:00"] {
		t.Error("15:00 should stay available")
	}
}

func TestCancelledBookingFreesSlot(t *testing.T) {
	store := NewBookingStore(NewMemoryKV())

	if err := store.Add(models.Booking{
		ID:       "BK1",
		Date:     "2025-06-09",
		Time:     "14:00",
		Duration: 30,
		Status:   models.BookingCancelled,
	}); err != nil {
		t.Fatal(err)
	}

	slots, err := store.AvailableSlots("2025-06-09", 30)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range slots {
		if s.Time == "14:00" && !s.Available {
			t.Error("cancelled booking should not block the slot")
		}
	}
}

func TestGenerateBookingID(t *testing.T) {
	store := NewBookingStore(NewMemoryKV())
	store.now = func() time.Time { return time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC) }

	id := store.GenerateBookingID()
	if len(id) < 3 || id[:2] != "BK" {
		t.Errorf("unexpected booking id %q", id)
	}
}
