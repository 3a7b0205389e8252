// data/clinic.go
package data

import (
	"time"

	"clinicflash-backend/models"
	"clinicflash-backend/utils"
)

// ClinicInfo holds the single clinic this deployment serves.
var ClinicInfo = models.ClinicInfo{
	Name:    "SBC Men's Flash",
	Address: "東京都新宿区西新宿1-1-1 新宿ビル3F",
	Phone:   "0120-XXX-XXX",
	BusinessHours: []models.BusinessHours{
		{DayOfWeek: 0, Open: "", Close: "", IsClosed: true}, // 日曜定休
		{DayOfWeek: 1, Open: "11:00", Close: "20:00", IsClosed: false},
		{DayOfWeek: 2, Open: "11:00", Close: "20:00", IsClosed: false},
		{DayOfWeek: 3, Open: "11:00", Close: "20:00", IsClosed: false},
		{DayOfWeek: 4, Open: "11:00", Close: "21:00", IsClosed: false}, // 木曜は21時まで
		{DayOfWeek: 5, Open: "11:00", Close: "20:00", IsClosed: false},
		{DayOfWeek: 6, Open: "10:00", Close: "19:00", IsClosed: false}, // 土曜は10時から
	},
	SlotDuration: 30,
}

const BusinessHoursText = `【営業時間】
月〜金：11:00〜20:00
木曜日：11:00〜21:00（夜間営業）
土曜日：10:00〜19:00

【定休日】
日曜日・祝日`

func IsClinicOpen(date time.Time) bool {
	hours := ClinicInfo.BusinessHours[int(date.Weekday())]
	return !hours.IsClosed
}

func BusinessHoursForDate(date time.Time) (open, close string, ok bool) {
	hours := ClinicInfo.BusinessHours[int(date.Weekday())]
	if hours.IsClosed {
		return "", "", false
	}
	return hours.Open, hours.Close, true
}

// FormatDateJapanese renders "M月D日（曜）" from a YYYY-MM-DD string.
func FormatDateJapanese(dateStr string) string {
	return utils.FormatDateJapanese(dateStr)
}
