package services

import (
	"strings"
	"testing"
	"time"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/storage"
)

func newTestReminderService() (*ReminderService, *storage.SettingsStore) {
	settings := storage.NewSettingsStore(storage.NewMemoryKV())
	svc := NewReminderService(nil, data.NewStore(), settings)
	return svc, settings
}

func TestPendingCourseReminderAfterInterval(t *testing.T) {
	svc, _ := newTestReminderService()

	// course-001 last ran 2024-10-20; 92 days later crosses the 90 day
	// default interval.
	svc.now = func() time.Time { return time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC) }

	reminder, ok := svc.PendingCourseReminder("cust-001")
	if !ok {
		t.Fatal("expected a pending reminder")
	}
	if reminder.CourseID != "course-001" || reminder.RemainingSessions != 2 {
		t.Errorf("unexpected reminder: %+v", reminder)
	}
	if reminder.MonthsElapsed != 3 {
		t.Errorf("months elapsed = %d, want 3", reminder.MonthsElapsed)
	}
	if !strings.Contains(reminder.Message, "約3ヶ月") || !strings.Contains(reminder.Message, "残り2回") {
		t.Errorf("message = %q", reminder.Message)
	}
}

func TestPendingCourseReminderWithinInterval(t *testing.T) {
	svc, _ := newTestReminderService()

	// 42 days after the last treatment, under the 90 day threshold.
	svc.now = func() time.Time { return time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC) }

	if _, ok := svc.PendingCourseReminder("cust-001"); ok {
		t.Error("reminder fired before the interval elapsed")
	}
}

func TestPendingCourseReminderDisabled(t *testing.T) {
	svc, settings := newTestReminderService()
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }

	if err := settings.UpdateCourseReminder(models.CourseReminderSettings{Enabled: false}); err != nil {
		t.Fatal(err)
	}
	if _, ok := svc.PendingCourseReminder("cust-001"); ok {
		t.Error("disabled settings should suppress reminders")
	}
}

func TestPendingCourseReminderNoCourses(t *testing.T) {
	svc, _ := newTestReminderService()
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }

	// cust-003 pays per visit and holds no contracts.
	if _, ok := svc.PendingCourseReminder("cust-003"); ok {
		t.Error("customer without courses should not remind")
	}
}

func TestPendingCourseReminderCustomInterval(t *testing.T) {
	svc, settings := newTestReminderService()
	svc.now = func() time.Time { return time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC) }

	if err := settings.UpdateCourseReminder(models.CourseReminderSettings{
		Enabled:      true,
		IntervalDays: 30,
	}); err != nil {
		t.Fatal(err)
	}

	reminder, ok := svc.PendingCourseReminder("cust-001")
	if !ok {
		t.Fatal("30 day interval should fire at 42 days")
	}
	if reminder.MonthsElapsed != 1 {
		t.Errorf("months elapsed = %d, want 1", reminder.MonthsElapsed)
	}
}
