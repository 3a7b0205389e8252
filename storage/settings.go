// storage/settings.go
package storage

import (
	"encoding/json"
	"time"

	"clinicflash-backend/models"
)

// SettingsStore persists notification preferences under
// clinic_notification_settings.
type SettingsStore struct {
	kv  KV
	now func() time.Time
}

func NewSettingsStore(kv KV) *SettingsStore {
	return &SettingsStore{kv: kv, now: time.Now}
}

// Save stamps UpdatedAt and writes the record.
func (s *SettingsStore) Save(settings models.NotificationSettings) error {
	settings.UpdatedAt = s.now().Format(time.RFC3339)
	return setJSON(s.kv, KeyNotificationSettings, settings)
}

// Load deep-merges the stored record over the defaults so settings saved
// by an older client still pick up newly added fields.
func (s *SettingsStore) Load() (models.NotificationSettings, error) {
	defaults := models.DefaultNotificationSettings()

	raw, ok, err := s.kv.Get(KeyNotificationSettings)
	if err != nil || !ok {
		return defaults, err
	}

	var stored struct {
		BookingReminder      *models.BookingReminderSettings      `json:"bookingReminder"`
		CampaignNotification *models.CampaignNotificationSettings `json:"campaignNotification"`
		CourseReminder       *models.CourseReminderSettings       `json:"courseReminder"`
		UpdatedAt            string                               `json:"updatedAt"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return defaults, nil
	}

	merged := defaults
	if stored.BookingReminder != nil {
		merged.BookingReminder = *stored.BookingReminder
	}
	if stored.CampaignNotification != nil {
		merged.CampaignNotification = *stored.CampaignNotification
	}
	if stored.CourseReminder != nil {
		merged.CourseReminder = *stored.CourseReminder
	}
	merged.UpdatedAt = stored.UpdatedAt
	return merged, nil
}

// Reset writes and returns the defaults.
func (s *SettingsStore) Reset() (models.NotificationSettings, error) {
	defaults := models.DefaultNotificationSettings()
	if err := s.Save(defaults); err != nil {
		return models.NotificationSettings{}, err
	}
	return defaults, nil
}

func (s *SettingsStore) UpdateBookingReminder(settings models.BookingReminderSettings) error {
	current, err := s.Load()
	if err != nil {
		return err
	}
	current.BookingReminder = settings
	return s.Save(current)
}

func (s *SettingsStore) UpdateCampaignNotification(settings models.CampaignNotificationSettings) error {
	current, err := s.Load()
	if err != nil {
		return err
	}
	current.CampaignNotification = settings
	return s.Save(current)
}

func (s *SettingsStore) UpdateCourseReminder(settings models.CourseReminderSettings) error {
	current, err := s.Load()
	if err != nil {
		return err
	}
	current.CourseReminder = settings
	return s.Save(current)
}

// CourseReminderIntervalDays is the configured nudge threshold.
func (s *SettingsStore) CourseReminderIntervalDays() int {
	settings, err := s.Load()
	if err != nil {
		return models.DefaultNotificationSettings().CourseReminder.IntervalDays
	}
	return settings.CourseReminder.IntervalDays
}
