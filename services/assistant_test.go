package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"clinicflash-backend/data"
)

// 2025-05-20 is 42 days after the newest seeded treatment (2025-04-08),
// safely past the 28-day interval.
var calmDay = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func newTestAssistant(now time.Time) (*Assistant, *data.Store) {
	store := data.NewStore()
	return &Assistant{
		store: store,
		now:   func() time.Time { return now },
	}, store
}

func TestGreeting(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("こんにちは")
	if !strings.Contains(reply.Content, "ようこそ") {
		t.Errorf("greeting reply missing welcome text: %q", reply.Content)
	}
}

func TestBookingRequestListsMenusWithUnusedCourse(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("予約したい")

	if reply.ShowIntervalWarning {
		t.Error("no interval warning expected 42 days after the last treatment")
	}
	if !strings.Contains(reply.Content, "未消化のコースがあります") {
		t.Errorf("unused course note missing: %q", reply.Content)
	}
	// 1 unused course option prepended to the 7 base areas
	if len(reply.MenuOptions) != 8 {
		t.Fatalf("expected 8 menu options, got %d", len(reply.MenuOptions))
	}
	if reply.MenuOptions[0].Value != "未消化コースを消化" {
		t.Errorf("unused course option not first: %+v", reply.MenuOptions[0])
	}
	if reply.MenuOptions[1].ID != "three" {
		t.Errorf("expected three as first base option, got %s", reply.MenuOptions[1].ID)
	}
}

func TestBookingRequestIntervalWarning(t *testing.T) {
	soon := time.Date(2025, 4, 18, 10, 0, 0, 0, time.UTC) // 10 days after
	a, _ := newTestAssistant(soon)
	reply := a.GenerateReply("予約したい")

	if !reply.ShowIntervalWarning {
		t.Fatal("expected interval warning 10 days after the last treatment")
	}
	if !strings.Contains(reply.Content, "前回の施術から10日です") {
		t.Errorf("warning text missing day count: %q", reply.Content)
	}
}

func TestReserveButtonPrependsUnusedCourse(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("予約する")

	if len(reply.MenuOptions) != 8 {
		t.Fatalf("expected 8 menu options, got %d", len(reply.MenuOptions))
	}
	if !strings.Contains(reply.MenuOptions[0].Label, "残り2回") {
		t.Errorf("unused course label missing remaining count: %q", reply.MenuOptions[0].Label)
	}
}

func TestConsiderLaterQuickReplies(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("後で検討する")

	want := []string{"予約したい", "料金を見たい", "営業時間は？"}
	if len(reply.QuickReplies) != len(want) {
		t.Fatalf("expected %d quick replies, got %d", len(want), len(reply.QuickReplies))
	}
	for i, qr := range want {
		if reply.QuickReplies[i] != qr {
			t.Errorf("quick reply %d = %q, want %q", i, reply.QuickReplies[i], qr)
		}
	}
}

func TestThreeAreaPrices(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("三部位の料金は？")

	if len(reply.MenuOptions) != 3 {
		t.Fatalf("expected 3 course options, got %d", len(reply.MenuOptions))
	}
	prices := map[string]string{
		"three_1": "¥9,800",
		"three_3": "¥26,400（1回あたり¥8,800）",
		"three_6": "¥48,000（1回あたり¥8,000）",
	}
	for _, opt := range reply.MenuOptions {
		if want := prices[opt.ID]; opt.Price != want {
			t.Errorf("option %s price = %q, want %q", opt.ID, opt.Price, want)
		}
	}
}

func TestTimeSelectionEchoesTime(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("11:30でお願いします")

	if len(reply.MenuOptions) != 2 {
		t.Fatalf("expected 2 anesthesia options, got %d", len(reply.MenuOptions))
	}
	if reply.MenuOptions[0].Value != "11:30予約確定_麻酔あり" {
		t.Errorf("with-anesthesia value = %q", reply.MenuOptions[0].Value)
	}
	if reply.MenuOptions[1].Value != "11:30予約確定_麻酔なし" {
		t.Errorf("without-anesthesia value = %q", reply.MenuOptions[1].Value)
	}
}

func TestAnesthesiaChoiceSetsPrice(t *testing.T) {
	a, _ := newTestAssistant(calmDay)

	withReply := a.GenerateReply("11:00予約確定_麻酔あり")
	if withReply.ShowCustomerConfirm == nil {
		t.Fatal("expected booking confirmation")
	}
	if withReply.ShowCustomerConfirm.Price != 12800 {
		t.Errorf("with anesthesia price = %d, want 12800", withReply.ShowCustomerConfirm.Price)
	}
	if !withReply.ShowCustomerConfirm.WithAnesthesia {
		t.Error("withAnesthesia flag not set")
	}
	if withReply.ShowCustomerConfirm.Time != "11:00" {
		t.Errorf("time = %q, want 11:00", withReply.ShowCustomerConfirm.Time)
	}

	withoutReply := a.GenerateReply("11:00予約確定_麻酔なし")
	if withoutReply.ShowCustomerConfirm == nil {
		t.Fatal("expected booking confirmation")
	}
	if withoutReply.ShowCustomerConfirm.Price != 9800 {
		t.Errorf("without anesthesia price = %d, want 9800", withoutReply.ShowCustomerConfirm.Price)
	}
}

func TestDateButtonsShowSlotGrid(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	for _, input := range []string{"明日の空き時間を見たい", "明後日の空き時間を見たい", "2月5日（水）を予約"} {
		reply := a.GenerateReply(input)
		if len(reply.TimeSlots) != 12 {
			t.Errorf("%q: expected 12 slots, got %d", input, len(reply.TimeSlots))
		}
	}
}

func TestFullSlotWaitlistFlow(t *testing.T) {
	a, _ := newTestAssistant(calmDay)

	full := a.GenerateReply("満席時間選択_12:00")
	if len(full.MenuOptions) != 2 || full.MenuOptions[0].Value != "キャンセル待ち登録_12:00" {
		t.Fatalf("unexpected full-slot options: %+v", full.MenuOptions)
	}

	waitlist := a.GenerateReply("キャンセル待ち登録_12:00")
	if len(waitlist.MenuOptions) != 2 || waitlist.MenuOptions[0].Value != "12:00キャンセル待ち確定_麻酔あり" {
		t.Fatalf("unexpected waitlist options: %+v", waitlist.MenuOptions)
	}

	confirm := a.GenerateReply("12:00キャンセル待ち確定_麻酔あり")
	if confirm.ShowWaitlistConfirm == nil {
		t.Fatal("expected waitlist confirmation")
	}
	if confirm.ShowWaitlistConfirm.Time != "12:00" || !confirm.ShowWaitlistConfirm.WithAnesthesia {
		t.Errorf("unexpected waitlist entry: %+v", confirm.ShowWaitlistConfirm)
	}
	if confirm.ShowWaitlistConfirm.Position != 1 {
		t.Errorf("position = %d, want 1", confirm.ShowWaitlistConfirm.Position)
	}

	done := a.GenerateReply("キャンセル待ち登録確定")
	if !strings.Contains(done.Content, "待機番号") {
		t.Errorf("waitlist completion missing number: %q", done.Content)
	}
}

func TestTodayAvailability(t *testing.T) {
	a, store := newTestAssistant(calmDay)

	// Seeded address (池袋) puts several branches in range.
	withAddress := a.GenerateReply("今日の空き時間を見たい")
	if len(withAddress.ShowNearbyClinicSlots) == 0 {
		t.Fatal("expected nearby clinic slots for the seeded address")
	}
	for i := 1; i < len(withAddress.ShowNearbyClinicSlots); i++ {
		if withAddress.ShowNearbyClinicSlots[i].TravelTime < withAddress.ShowNearbyClinicSlots[i-1].TravelTime {
			t.Error("nearby clinics not sorted by travel time")
		}
	}

	store.SetHomeAndWorkStation("", "")
	withoutAddress := a.GenerateReply("今日の空き時間を見たい")
	if !withoutAddress.ShowAddressForm {
		t.Error("expected address form when no station is stored")
	}
}

func TestNearbyClinicBookingToken(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("近隣クリニック予約_clinic-shibuya_15:00")

	if len(reply.MenuOptions) != 2 {
		t.Fatalf("expected 2 anesthesia options, got %d", len(reply.MenuOptions))
	}
	if reply.MenuOptions[0].Value != "15:00予約確定_麻酔あり_clinic-shibuya" {
		t.Errorf("value = %q", reply.MenuOptions[0].Value)
	}
}

func TestPriceListKeyword(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("料金一覧")
	if !strings.Contains(reply.Content, "【ヒゲ脱毛 料金表】") {
		t.Errorf("price list missing header: %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "¥96,000") {
		t.Errorf("price list missing all-area 6-course price: %q", reply.Content)
	}
}

func TestBusinessHoursKeyword(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("営業時間は？")
	if !strings.Contains(reply.Content, "木曜") {
		t.Errorf("hours reply missing Thursday note: %q", reply.Content)
	}
}

func TestFallback(t *testing.T) {
	a, _ := newTestAssistant(calmDay)
	reply := a.GenerateReply("zzz unknown zzz")
	if !strings.Contains(reply.Content, "理解できませんでした") {
		t.Errorf("fallback not returned: %q", reply.Content)
	}
}

func TestSendMessageHonorsContext(t *testing.T) {
	store := data.NewStore()
	a := NewAssistant(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.SendMessage(ctx, nil); err == nil {
		t.Error("expected context error from cancelled send")
	}
}
