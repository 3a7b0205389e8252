// services/events.go
package services

import (
	"regexp"
	"strings"
)

// The chat client encodes button taps as structured tokens inside the
// message text (e.g. 近隣クリニック予約_<clinic>_<time>). parseEvent turns
// those tokens into typed events so the reply engine can dispatch on
// them before any free-text keyword matching runs.

type event interface{ isEvent() }

type nearbyClinicBookingEvent struct {
	ClinicID string
	Time     string
}

type addressCompleteEvent struct {
	HomeStation string
	WorkStation string
}

// timeSelectedEvent fires on "11:00でお願いします" style messages.
type timeSelectedEvent struct {
	Time string // "ご指定の時間" when no clock value was present
}

type anesthesiaChosenEvent struct {
	Time           string
	WithAnesthesia bool
}

type bookingApprovedEvent struct{}

type bookingEditRequestedEvent struct{}

type customerFormSubmittedEvent struct {
	Name  string
	Phone string
}

type paymentCompletedEvent struct{}

type payOnSiteEvent struct{}

type fullSlotSelectedEvent struct {
	Time string
}

type waitlistRequestedEvent struct {
	Time string
}

type waitlistAnesthesiaChosenEvent struct {
	Time           string
	WithAnesthesia bool
}

type waitlistApprovedEvent struct{}

type changeTimeEvent struct{}

type todayAvailabilityEvent struct{}

// dateChosenEvent covers calendar picks ("2月5日（水）を予約") and the
// relative date buttons.
type dateChosenEvent struct{}

func (nearbyClinicBookingEvent) isEvent()      {}
func (addressCompleteEvent) isEvent()          {}
func (timeSelectedEvent) isEvent()             {}
func (anesthesiaChosenEvent) isEvent()         {}
func (bookingApprovedEvent) isEvent()          {}
func (bookingEditRequestedEvent) isEvent()     {}
func (customerFormSubmittedEvent) isEvent()    {}
func (paymentCompletedEvent) isEvent()         {}
func (payOnSiteEvent) isEvent()                {}
func (fullSlotSelectedEvent) isEvent()         {}
func (waitlistRequestedEvent) isEvent()        {}
func (waitlistAnesthesiaChosenEvent) isEvent() {}
func (waitlistApprovedEvent) isEvent()         {}
func (changeTimeEvent) isEvent()               {}
func (todayAvailabilityEvent) isEvent()        {}
func (dateChosenEvent) isEvent()               {}

var (
	nearbyBookingRe = regexp.MustCompile(`近隣クリニック予約_([^_]+)_(\d{1,2}:\d{2})`)
	addressRe       = regexp.MustCompile(`住所入力完了_([^_]+)_?(.*)`)
	clockRe         = regexp.MustCompile(`(\d{1,2}:\d{2})`)
	fullSlotRe      = regexp.MustCompile(`満席時間選択_(\d{1,2}:\d{2})`)
	waitlistRe      = regexp.MustCompile(`キャンセル待ち登録_(\d{1,2}:\d{2})`)
	kanjiDateRe     = regexp.MustCompile(`\d{1,2}月\d{1,2}日`)
)

func containsAny(input string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(input, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// parseEvent checks the structured tokens in resumption order: flows
// already in progress win over anything a fresh message could start.
func parseEvent(input string) (event, bool) {
	if strings.Contains(input, "近隣クリニック予約_") {
		if m := nearbyBookingRe.FindStringSubmatch(input); m != nil {
			return nearbyClinicBookingEvent{ClinicID: m[1], Time: m[2]}, true
		}
	}

	if strings.Contains(input, "住所入力完了_") {
		if m := addressRe.FindStringSubmatch(input); m != nil {
			return addressCompleteEvent{HomeStation: m[1], WorkStation: m[2]}, true
		}
	}

	if containsAny(input, "でお願いします", ":00で", ":30で") {
		selected := "ご指定の時間"
		if m := clockRe.FindStringSubmatch(input); m != nil {
			selected = m[1]
		}
		return timeSelectedEvent{Time: selected}, true
	}

	if containsAny(input, "予約確定_麻酔あり", "予約確定_麻酔なし") {
		selected := ""
		if m := clockRe.FindStringSubmatch(input); m != nil {
			selected = m[1]
		}
		return anesthesiaChosenEvent{
			Time:           selected,
			WithAnesthesia: strings.Contains(input, "麻酔あり"),
		}, true
	}

	if containsAny(input, "この内容で予約確定") {
		return bookingApprovedEvent{}, true
	}

	if containsAny(input, "別の情報で予約") {
		return bookingEditRequestedEvent{}, true
	}

	if containsAny(input, "顧客情報入力完了_") {
		parts := strings.Split(input, "_")
		name, phone := "お客様", ""
		if len(parts) > 1 && parts[1] != "" {
			name = parts[1]
		}
		if len(parts) > 2 {
			phone = parts[2]
		}
		return customerFormSubmittedEvent{Name: name, Phone: phone}, true
	}

	if containsAny(input, "決済完了") {
		return paymentCompletedEvent{}, true
	}

	if containsAny(input, "当日支払い") {
		return payOnSiteEvent{}, true
	}

	if containsAny(input, "満席時間選択_") {
		selected := "ご指定の時間"
		if m := fullSlotRe.FindStringSubmatch(input); m != nil {
			selected = m[1]
		}
		return fullSlotSelectedEvent{Time: selected}, true
	}

	if containsAny(input, "キャンセル待ち登録_") {
		selected := ""
		if m := waitlistRe.FindStringSubmatch(input); m != nil {
			selected = m[1]
		}
		return waitlistRequestedEvent{Time: selected}, true
	}

	if containsAny(input, "キャンセル待ち確定_麻酔あり", "キャンセル待ち確定_麻酔なし") {
		selected := ""
		if m := clockRe.FindStringSubmatch(input); m != nil {
			selected = m[1]
		}
		return waitlistAnesthesiaChosenEvent{
			Time:           selected,
			WithAnesthesia: strings.Contains(input, "麻酔あり"),
		}, true
	}

	if containsAny(input, "キャンセル待ち登録確定") {
		return waitlistApprovedEvent{}, true
	}

	if containsAny(input, "別の時間を選びたい") {
		return changeTimeEvent{}, true
	}

	if containsAny(input, "今日の空き時間を見たい") {
		return todayAvailabilityEvent{}, true
	}

	if kanjiDateRe.MatchString(input) ||
		containsAny(input, "明日の空き時間を見たい", "明後日の空き時間を見たい", "今週末の空き時間を見たい", "今週末の") {
		return dateChosenEvent{}, true
	}

	return nil, false
}
