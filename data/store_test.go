package data

import (
	"testing"
	"time"

	"clinicflash-backend/models"
)

func TestFindCustomerByPatientNumberNormalizes(t *testing.T) {
	store := NewStore()

	for _, input := range []string{"SBC-123456", "sbc-123456", "  SBC-123456  "} {
		customer, ok := store.FindCustomerByPatientNumber(input)
		if !ok {
			t.Errorf("lookup failed for %q", input)
			continue
		}
		if customer.ID != "cust-001" {
			t.Errorf("lookup %q returned %s", input, customer.ID)
		}
	}

	if _, ok := store.FindCustomerByPatientNumber("SBC-000000"); ok {
		t.Error("unknown patient number should not resolve")
	}
}

func TestCustomerHistoryMergesAndDedupes(t *testing.T) {
	store := NewStore()

	// cust-001 references hist-001..004, which live in the shared table.
	history := store.CustomerHistoryByID("cust-001")
	if len(history) != 4 {
		t.Fatalf("expected 4 records, got %d", len(history))
	}

	seen := make(map[string]bool)
	for i, h := range history {
		if seen[h.ID] {
			t.Errorf("duplicate record %s", h.ID)
		}
		seen[h.ID] = true
		if i > 0 && history[i-1].Date < h.Date {
			t.Error("history not sorted newest first")
		}
	}
	if history[0].ID != "hist-004" {
		t.Errorf("newest record = %s, want hist-004", history[0].ID)
	}
}

func TestTreatmentIntervalCheck(t *testing.T) {
	store := NewStore()

	// The newest shared record is 2025-04-08.
	early := store.CheckTreatmentInterval(time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC))
	if !early.IsWarning || early.DaysSinceLast != 10 {
		t.Errorf("10 days after: %+v", early)
	}

	late := store.CheckTreatmentInterval(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))
	if late.IsWarning {
		t.Errorf("42 days after should not warn: %+v", late)
	}
	if !late.HasHistory {
		t.Error("hasHistory flag missing")
	}
}

func TestTravelTimeDefaultsForUnknownStations(t *testing.T) {
	if got := TravelTime("異世界", "新宿"); got != 60 {
		t.Errorf("unknown pair travel time = %d, want 60", got)
	}
	if got := TravelTime("池袋", "新宿"); got >= 60 {
		t.Errorf("known pair should be under the default, got %d", got)
	}
}

func TestNearbyAvailabilitySortedAndHomePreferred(t *testing.T) {
	store := NewStore()
	store.SetHomeAndWorkStation("新宿", "渋谷")

	clinics := store.NearbyClinicAvailability()
	if len(clinics) == 0 {
		t.Fatal("expected nearby clinics for central stations")
	}
	for i, clinic := range clinics {
		if i > 0 && clinics[i-1].TravelTime > clinic.TravelTime {
			t.Error("clinics not sorted by travel time")
		}
		if len(clinic.AvailableSlots) == 0 {
			t.Errorf("clinic %s listed without open slots", clinic.ClinicID)
		}
		for _, slot := range clinic.AvailableSlots {
			if !slot.Available {
				t.Errorf("clinic %s carries an unavailable slot", clinic.ClinicID)
			}
		}
		// Home in range always wins over work.
		if TravelTime("新宿", clinic.Station) <= 60 && clinic.TravelFrom != "home" {
			t.Errorf("clinic %s reachable from home but attributed to %s", clinic.ClinicID, clinic.TravelFrom)
		}
	}
}

func TestUpdateTreatmentNotesAndFeedback(t *testing.T) {
	store := NewStore()

	if !store.UpdateTreatmentNotes("hist-001", "経過良好") {
		t.Fatal("notes update failed")
	}
	if store.UpdateTreatmentNotes("hist-none", "x") {
		t.Error("unknown record should not update")
	}

	fb := models.TreatmentFeedback{SatisfactionRating: 5, Comment: "満足です"}
	if !store.SaveTreatmentFeedback("hist-001", fb) {
		t.Fatal("feedback save failed")
	}

	history := store.CustomerHistoryByID("cust-001")
	for _, h := range history {
		if h.ID == "hist-001" {
			if h.Notes != "経過良好" {
				t.Errorf("notes = %q", h.Notes)
			}
			if h.Feedback == nil || h.Feedback.SatisfactionRating != 5 {
				t.Errorf("feedback not persisted: %+v", h.Feedback)
			}
		}
	}
}

func TestUnusedCoursesAndExpiringPoints(t *testing.T) {
	store := NewStore()

	unused := store.UnusedCourses()
	if len(unused) != 1 || unused[0].RemainingSessions != 2 {
		t.Errorf("unexpected unused courses: %+v", unused)
	}

	if _, ok := store.FindReferralByCode("sbc-taro-2024"); !ok {
		t.Error("referral code lookup should be case-insensitive")
	}
}

func TestFAQLookupSkipsEngineKeywords(t *testing.T) {
	if _, ok := FindFAQByKeyword("施術は痛いですか"); !ok {
		t.Error("pain question should hit the FAQ")
	}
	// Engine-owned topics stay out of the FAQ table.
	if _, ok := FindFAQByKeyword("料金を教えて"); ok {
		t.Error("price questions belong to the reply engine, not the FAQ")
	}
}
