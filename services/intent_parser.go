// services/intent_parser.go
package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
)

// ParsedIntent is the coarse reading of one free-text message.
type ParsedIntent struct {
	Type models.IntentType     `json:"type"`
	Menu *models.TreatmentMenu `json:"menu,omitempty"`
	Date string                `json:"date,omitempty"` // YYYY-MM-DD
	Time string                `json:"time,omitempty"` // HH:mm
}

var intentPatterns = []struct {
	intentType models.IntentType
	patterns   []string
}{
	{models.IntentBookingRequest, []string{"予約", "よやく", "取りたい", "行きたい", "受けたい", "申し込み"}},
	{models.IntentMenuInquiry, []string{"メニュー", "施術", "コース", "何がある", "できること", "一覧"}},
	{models.IntentPriceInquiry, []string{"料金", "値段", "いくら", "価格", "費用", "金額"}},
	{models.IntentHoursInquiry, []string{"営業", "時間", "何時", "いつ", "休み", "定休", "開いて"}},
	{models.IntentGreeting, []string{"こんにちは", "はじめまして", "初めまして", "おはよう", "こんばんは", "ありがとう"}},
	{models.IntentConfirmation, []string{"はい", "いいえ", "お願い", "確定", "キャンセル", "やめ", "ok", "オーケー"}},
}

var (
	nextWeekdayRe = regexp.MustCompile(`来週の?(月|火|水|木|金|土|日)`)
	monthDayRe    = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)
	freeTimeRe    = regexp.MustCompile(`(\d{1,2})[:時](\d{0,2})?`)
)

// ParseIntent classifies a message and pulls out any menu, date and
// time it mentions. First pattern group to match wins.
func ParseIntent(input string, now time.Time) ParsedIntent {
	lower := strings.ToLower(input)

	intentType := models.IntentUnknown
	for _, group := range intentPatterns {
		matched := false
		for _, p := range group.patterns {
			if strings.Contains(lower, p) {
				matched = true
				break
			}
		}
		if matched {
			intentType = group.intentType
			break
		}
	}

	parsed := ParsedIntent{
		Type: intentType,
		Date: extractDate(input, now),
		Time: extractTime(input),
	}
	if menu, ok := data.FindMenuByKeyword(input); ok {
		parsed.Menu = &menu
	}
	return parsed
}

func extractDate(input string, now time.Time) string {
	if strings.Contains(input, "明後日") {
		return now.AddDate(0, 0, 2).Format("2006-01-02")
	}
	if strings.Contains(input, "明日") {
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}
	if strings.Contains(input, "今日") {
		return now.Format("2006-01-02")
	}

	// 「来週の月曜」
	if m := nextWeekdayRe.FindStringSubmatch(input); m != nil {
		dayMap := map[string]int{"日": 0, "月": 1, "火": 2, "水": 3, "木": 4, "金": 5, "土": 6}
		targetDay := dayMap[m[1]]
		daysAhead := 7 - int(now.Weekday()) + targetDay
		return now.AddDate(0, 0, daysAhead).Format("2006-01-02")
	}

	// 「12月15日」。過去の日付なら来年。
	if m := monthDayRe.FindStringSubmatch(input); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		date := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
		if date.Before(now) {
			date = date.AddDate(1, 0, 0)
		}
		return date.Format("2006-01-02")
	}

	return ""
}

func extractTime(input string) string {
	m := freeTimeRe.FindStringSubmatch(input)
	if m == nil {
		return ""
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	// 午後3時 → 15:00
	if strings.Contains(input, "午後") && hour < 12 {
		hour += 12
	}

	if hour < 0 || hour > 23 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
