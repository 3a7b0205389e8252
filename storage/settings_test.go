package storage

import (
	"testing"
	"time"

	"clinicflash-backend/models"
)

func TestSettingsLoadReturnsDefaults(t *testing.T) {
	store := NewSettingsStore(NewMemoryKV())

	settings, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !settings.BookingReminder.Enabled || !settings.CourseReminder.Enabled {
		t.Errorf("defaults disabled: %+v", settings)
	}
	if settings.CampaignNotification.Enabled {
		t.Error("campaigns should default off")
	}
	if settings.CourseReminder.IntervalDays != 90 {
		t.Errorf("interval = %d, want 90", settings.CourseReminder.IntervalDays)
	}
}

func TestSettingsPartialRecordMergesOverDefaults(t *testing.T) {
	kv := NewMemoryKV()
	store := NewSettingsStore(kv)

	// An older client only persisted the booking section.
	if err := kv.Set(KeyNotificationSettings, []byte(`{"bookingReminder":{"enabled":false,"timing":"3hours_before","channels":[]}}`)); err != nil {
		t.Fatal(err)
	}

	settings, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.BookingReminder.Enabled {
		t.Error("stored section not applied")
	}
	if settings.CourseReminder.IntervalDays != 90 {
		t.Error("missing section should fall back to defaults")
	}
}

func TestSettingsSectionUpdateKeepsSiblings(t *testing.T) {
	store := NewSettingsStore(NewMemoryKV())
	store.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }

	if err := store.UpdateCourseReminder(models.CourseReminderSettings{
		Enabled:      true,
		IntervalDays: 60,
	}); err != nil {
		t.Fatal(err)
	}

	settings, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.CourseReminder.IntervalDays != 60 {
		t.Errorf("interval = %d, want 60", settings.CourseReminder.IntervalDays)
	}
	if !settings.BookingReminder.Enabled {
		t.Error("sibling section lost on update")
	}
	if settings.UpdatedAt == "" {
		t.Error("UpdatedAt not stamped")
	}
}

func TestSettingsReset(t *testing.T) {
	store := NewSettingsStore(NewMemoryKV())

	if err := store.UpdateCampaignNotification(models.CampaignNotificationSettings{Enabled: true, Frequency: "all"}); err != nil {
		t.Fatal(err)
	}
	settings, err := store.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if settings.CampaignNotification.Enabled {
		t.Error("reset kept a modified value")
	}
}
