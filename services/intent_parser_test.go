package services

import (
	"testing"
	"time"

	"clinicflash-backend/models"
)

var parserNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) // Tuesday

func TestParseIntentTypes(t *testing.T) {
	tests := []struct {
		input string
		want  models.IntentType
	}{
		{"予約を取りたいです", models.IntentBookingRequest},
		{"メニューを教えて", models.IntentMenuInquiry},
		{"いくらですか", models.IntentPriceInquiry},
		{"何時まで開いてますか", models.IntentHoursInquiry},
		{"こんにちは", models.IntentGreeting},
		{"はい", models.IntentConfirmation},
		{"うーん", models.IntentUnknown},
	}
	for _, tt := range tests {
		got := ParseIntent(tt.input, parserNow)
		if got.Type != tt.want {
			t.Errorf("ParseIntent(%q).Type = %s, want %s", tt.input, got.Type, tt.want)
		}
	}
}

func TestParseIntentBookingWinsOverPrice(t *testing.T) {
	// First matching group wins; booking is checked before price.
	got := ParseIntent("予約したいんですが料金は？", parserNow)
	if got.Type != models.IntentBookingRequest {
		t.Errorf("Type = %s, want booking_request", got.Type)
	}
}

func TestExtractRelativeDates(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"今日予約できますか", "2025-06-10"},
		{"明日の午後", "2025-06-11"},
		{"明後日はどうですか", "2025-06-12"},
	}
	for _, tt := range tests {
		got := ParseIntent(tt.input, parserNow)
		if got.Date != tt.want {
			t.Errorf("ParseIntent(%q).Date = %q, want %q", tt.input, got.Date, tt.want)
		}
	}
}

func TestExtractNextWeekday(t *testing.T) {
	// Tuesday + (7 - 2 + 1) = next Monday 2025-06-16
	got := ParseIntent("来週の月曜に行きたい", parserNow)
	if got.Date != "2025-06-16" {
		t.Errorf("Date = %q, want 2025-06-16", got.Date)
	}
}

func TestExtractMonthDayRollsToNextYear(t *testing.T) {
	got := ParseIntent("12月15日に予約", parserNow)
	if got.Date != "2025-12-15" {
		t.Errorf("future date = %q, want 2025-12-15", got.Date)
	}

	past := ParseIntent("1月15日に予約", parserNow)
	if past.Date != "2026-01-15" {
		t.Errorf("past date = %q, want 2026-01-15", past.Date)
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"14:30でお願いします", "14:30"},
		{"15時に行きます", "15:00"},
		{"午後3時はどうですか", "15:00"},
		{"午後1時30分", "13:30"},
	}
	for _, tt := range tests {
		got := ParseIntent(tt.input, parserNow)
		if got.Time != tt.want {
			t.Errorf("ParseIntent(%q).Time = %q, want %q", tt.input, got.Time, tt.want)
		}
	}
}

func TestParseIntentFindsMenu(t *testing.T) {
	// The lookup matches when a menu name or description contains the
	// whole input, so only short fragments resolve to a menu.
	got := ParseIntent("三部位", parserNow)
	if got.Menu == nil {
		t.Fatal("expected menu match for 三部位")
	}
	if got.Menu.Category != models.CategoryBeard {
		t.Errorf("menu category = %s", got.Menu.Category)
	}

	sentence := ParseIntent("三部位を予約したい", parserNow)
	if sentence.Menu != nil {
		t.Errorf("full sentence should not resolve to a menu, got %s", sentence.Menu.ID)
	}
}
