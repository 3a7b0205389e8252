package models

// ReminderTiming is when a booking reminder fires relative to the visit.
type ReminderTiming string

const (
	TimingNone         ReminderTiming = "none"
	TimingSameDay      ReminderTiming = "same_day"
	TimingOneDayBefore ReminderTiming = "one_day_before"
	TimingThreeDays    ReminderTiming = "three_days"
	TimingOneWeek      ReminderTiming = "one_week"
)

// NotificationChannel is a delivery channel for reminders.
type NotificationChannel string

const (
	ChannelApp   NotificationChannel = "app"
	ChannelEmail NotificationChannel = "email"
	ChannelPush  NotificationChannel = "push"
)

// CampaignCategory classifies marketing notifications.
type CampaignCategory string

const (
	CampaignDiscount   CampaignCategory = "discount"
	CampaignNewMenu    CampaignCategory = "new_menu"
	CampaignSeasonal   CampaignCategory = "seasonal"
	CampaignMemberOnly CampaignCategory = "member_only"
)

// BookingReminderSettings configures visit reminders.
type BookingReminderSettings struct {
	Enabled  bool                  `json:"enabled"`
	Timing   ReminderTiming        `json:"timing"`
	Channels []NotificationChannel `json:"channels"`
}

// CampaignNotificationSettings configures marketing notifications.
type CampaignNotificationSettings struct {
	Enabled    bool               `json:"enabled"`
	Categories []CampaignCategory `json:"categories"`
	Frequency  string             `json:"frequency"` // all, weekly, monthly
}

// CourseReminderSettings configures the unused-course nudge.
type CourseReminderSettings struct {
	Enabled              bool `json:"enabled"`
	IntervalDays         int  `json:"intervalDays"`
	ReminderBeforeExpiry int  `json:"reminderBeforeExpiry"`
}

// NotificationSettings is the full per-customer notification record,
// persisted under clinic_notification_settings.
type NotificationSettings struct {
	BookingReminder      BookingReminderSettings      `json:"bookingReminder"`
	CampaignNotification CampaignNotificationSettings `json:"campaignNotification"`
	CourseReminder       CourseReminderSettings       `json:"courseReminder"`
	UpdatedAt            string                       `json:"updatedAt"`
}

// DefaultNotificationSettings returns the out-of-box notification record.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		BookingReminder: BookingReminderSettings{
			Enabled:  true,
			Timing:   TimingOneDayBefore,
			Channels: []NotificationChannel{ChannelApp},
		},
		CampaignNotification: CampaignNotificationSettings{
			Enabled:    false,
			Categories: []CampaignCategory{},
			Frequency:  "weekly",
		},
		CourseReminder: CourseReminderSettings{
			Enabled:              true,
			IntervalDays:         90,
			ReminderBeforeExpiry: 30,
		},
	}
}
