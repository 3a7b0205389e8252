// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/storage"
)

// ReminderService nudges customers whose course has sat unused past the
// configured interval, both as an in-chat message and via Twilio.
type ReminderService struct {
	db       *gorm.DB
	store    *data.Store
	settings *storage.SettingsStore
	client   *twilio.RestClient
	now      func() time.Time
}

func NewReminderService(db *gorm.DB, store *data.Store, settings *storage.SettingsStore) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db:       db,
		store:    store,
		settings: settings,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		now: time.Now,
	}
}

// CourseReminder is one pending in-chat nudge.
type CourseReminder struct {
	CourseID          string `json:"courseId"`
	CourseName        string `json:"courseName"`
	RemainingSessions int    `json:"remainingSessions"`
	MonthsElapsed     int    `json:"monthsElapsed"`
	Message           string `json:"message"`
}

// PendingCourseReminder returns the reminder for the first unused course
// whose last treatment is at least the configured interval ago. Courses
// without a recorded treatment never remind. Disabled settings suppress
// everything.
func (s *ReminderService) PendingCourseReminder(customerID string) (CourseReminder, bool) {
	settings, err := s.settings.Load()
	if err != nil || !settings.CourseReminder.Enabled {
		return CourseReminder{}, false
	}
	intervalDays := settings.CourseReminder.IntervalDays
	if intervalDays <= 0 {
		intervalDays = 90
	}

	for _, course := range s.store.CustomerUnusedCourses(customerID) {
		if course.LastTreatmentDate == "" {
			continue
		}
		lastDate, err := time.Parse("2006-01-02", course.LastTreatmentDate)
		if err != nil {
			continue
		}
		diffDays := int(s.now().Sub(lastDate).Hours() / 24)
		if diffDays < intervalDays {
			continue
		}

		months := diffDays / 30
		return CourseReminder{
			CourseID:          course.ID,
			CourseName:        course.CourseName,
			RemainingSessions: course.RemainingSessions,
			MonthsElapsed:     months,
			Message: fmt.Sprintf(`🔔 前回の%sの施術から約%dヶ月が経過しました。

残り%d回の施術がございます。
次回のご予約はいかがでしょうか？`, course.CourseName, months, course.RemainingSessions),
		}, true // 最初の1件のみ
	}
	return CourseReminder{}, false
}

// ReminderQuickReplies are the choices shown under an in-chat reminder.
func ReminderQuickReplies() []string {
	return []string{"予約する", "後で検討する"}
}

// StartScheduler runs the outbound reminder batch daily at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders delivers one message per customer with a pending
// course reminder.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	for _, customer := range s.store.AllCustomers() {
		reminder, ok := s.PendingCourseReminder(customer.ID)
		if !ok {
			continue
		}
		s.sendReminder(customer, reminder)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) sendReminder(customer models.Customer, reminder CourseReminder) {
	message := fmt.Sprintf("%s様\n\n%s", customer.Name, reminder.Message)

	// WhatsApp for E.164 numbers, SMS otherwise
	channel := "sms"
	to := customer.Phone
	if strings.HasPrefix(customer.Phone, "+") {
		to = "whatsapp:" + customer.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", customer.Phone)
	}

	if s.db == nil {
		return
	}
	reminderLog := models.ReminderLog{
		CustomerID:   customer.ID,
		CourseID:     reminder.CourseID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       s.now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
	}
}
