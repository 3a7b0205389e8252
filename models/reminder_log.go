package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records one course-reminder delivery attempt.
type ReminderLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID   string    `gorm:"type:varchar(64);index;not null"`
	CourseID     string    `gorm:"type:varchar(64);index"`
	Message      string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string    `gorm:"type:text"`
	Channel      string    `gorm:"type:varchar(20)"` // whatsapp, sms
	SentAt       time.Time
	gorm.Model
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
