package models

import (
	"time"

	"clinicflash-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser is a staff account for the admin views.
type AdminUser struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`

	Role string `gorm:"type:varchar(20);not null"` // 'owner' or 'staff'

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *AdminUser) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
