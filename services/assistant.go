// services/assistant.go
package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
)

// Reply is one assistant turn: the text plus whichever affordances the
// client should render beneath it.
type Reply struct {
	Content               string                      `json:"content"`
	QuickReplies          []string                    `json:"quickReplies,omitempty"`
	TimeSlots             []models.TimeSlot           `json:"timeSlots,omitempty"`
	MenuOptions           []models.MenuOption         `json:"menuOptions,omitempty"`
	ShowCalendar          bool                        `json:"showCalendar,omitempty"`
	ShowCustomerConfirm   *models.BookingConfirmation `json:"showCustomerConfirm,omitempty"`
	ShowPayment           *models.BookingConfirmation `json:"showPayment,omitempty"`
	ShowCustomerForm      bool                        `json:"showCustomerForm,omitempty"`
	ShowWaitlistConfirm   *models.WaitlistEntry       `json:"showWaitlistConfirm,omitempty"`
	ShowIntervalWarning   bool                        `json:"showIntervalWarning,omitempty"`
	ShowNearbyClinicSlots []models.ClinicAvailability `json:"showNearbyClinicSlots,omitempty"`
	ShowAddressForm       bool                        `json:"showAddressForm,omitempty"`
}

// Placeholder identity attached to bookings until per-session customer
// resolution lands. Matches the seeded SBC太郎 record.
var sampleCustomer = struct {
	CustomerID    string
	CustomerName  string
	CustomerPhone string
}{
	CustomerID:    "SBC-123456",
	CustomerName:  "SBC太郎",
	CustomerPhone: "090-1111-1111",
}

const sampleMenu = "ヒゲ脱毛 三部位 1回"
const sampleBasePrice = 9800

// Assistant is the scripted reservation counterpart. Replies are a pure
// function of the latest message; the only state it touches lives in
// the injected dataset store.
type Assistant struct {
	store *data.Store
	now   func() time.Time
	rng   *rand.Rand
	delay bool
}

func NewAssistant(store *data.Store) *Assistant {
	return &Assistant{
		store: store,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		delay: true,
	}
}

// SendMessage answers the newest message in the conversation after a
// short think delay. It never fails; unrecognized input gets the help
// fallback.
func (a *Assistant) SendMessage(ctx context.Context, messages []models.ChatMessage) (Reply, error) {
	input := ""
	if len(messages) > 0 {
		input = messages[len(messages)-1].Content
	}

	if a.delay {
		wait := time.Duration(300+a.rng.Intn(500)) * time.Millisecond
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return Reply{}, ctx.Err()
		}
	}

	return a.GenerateReply(input), nil
}

// GenerateReply maps one input to one reply. Structured flow tokens are
// handled first, then the keyword rules in priority order.
func (a *Assistant) GenerateReply(input string) Reply {
	input = strings.ToLower(input)

	if ev, ok := parseEvent(input); ok {
		return a.handleEvent(ev)
	}

	return a.handleKeywords(input)
}

func (a *Assistant) handleEvent(ev event) Reply {
	switch e := ev.(type) {
	case nearbyClinicBookingEvent:
		clinicName := a.store.NearbyClinicName(e.ClinicID)
		return Reply{
			Content: fmt.Sprintf(`%s
%sですね。

強力麻酔クリームはご利用になりますか？
痛みが心配な方におすすめです。`, clinicName, e.Time),
			MenuOptions: []models.MenuOption{
				{ID: "with_anesthesia", Label: "麻酔クリームあり", Value: fmt.Sprintf("%s予約確定_麻酔あり_%s", e.Time, e.ClinicID), Price: "+¥3,000"},
				{ID: "without_anesthesia", Label: "麻酔クリームなし", Value: fmt.Sprintf("%s予約確定_麻酔なし_%s", e.Time, e.ClinicID)},
			},
		}

	case addressCompleteEvent:
		a.store.SetHomeAndWorkStation(e.HomeStation, e.WorkStation)

		nearbySlots := a.store.NearbyClinicAvailability()
		if len(nearbySlots) == 0 {
			return Reply{
				Content: fmt.Sprintf(`申し訳ございません。
%s駅周辺（1時間圏内）で本日空きのあるクリニックが見つかりませんでした。

明日以降の日程をご検討いただけますか？`, e.HomeStation),
				ShowCalendar: true,
			}
		}

		workSuffix := ""
		if e.WorkStation != "" {
			workSuffix = fmt.Sprintf("・%s駅", e.WorkStation)
		}
		return Reply{
			Content: fmt.Sprintf(`%s駅%s周辺で、本日空きのあるクリニックをお調べしました！

ご都合の良いクリニック・時間をお選びください。`, e.HomeStation, workSuffix),
			ShowNearbyClinicSlots: nearbySlots,
		}

	case timeSelectedEvent:
		return Reply{
			Content: fmt.Sprintf(`%sですね。

強力麻酔クリームはご利用になりますか？
痛みが心配な方におすすめです。`, e.Time),
			MenuOptions: []models.MenuOption{
				{ID: "with_anesthesia", Label: "麻酔クリームあり", Value: e.Time + "予約確定_麻酔あり", Price: "+¥3,000"},
				{ID: "without_anesthesia", Label: "麻酔クリームなし", Value: e.Time + "予約確定_麻酔なし"},
			},
		}

	case anesthesiaChosenEvent:
		price := sampleBasePrice
		if e.WithAnesthesia {
			price += data.AnesthesiaPrice
		}
		return Reply{
			Content: "ご予約内容の確認です。",
			ShowCustomerConfirm: &models.BookingConfirmation{
				CustomerID:     sampleCustomer.CustomerID,
				CustomerName:   sampleCustomer.CustomerName,
				CustomerPhone:  sampleCustomer.CustomerPhone,
				Date:           "本日",
				Time:           e.Time,
				Menu:           sampleMenu,
				Price:          price,
				WithAnesthesia: e.WithAnesthesia,
			},
		}

	case bookingApprovedEvent:
		return Reply{
			Content: "ご予約が確定しました！",
			ShowPayment: &models.BookingConfirmation{
				CustomerID:     sampleCustomer.CustomerID,
				CustomerName:   sampleCustomer.CustomerName,
				CustomerPhone:  sampleCustomer.CustomerPhone,
				Date:           "本日",
				Time:           "11:00",
				Menu:           sampleMenu,
				Price:          sampleBasePrice,
				WithAnesthesia: false,
			},
		}

	case bookingEditRequestedEvent:
		return Reply{
			Content:          "お客様情報を入力してください。",
			ShowCustomerForm: true,
		}

	case customerFormSubmittedEvent:
		return Reply{
			Content: "ご予約が確定しました！",
			ShowPayment: &models.BookingConfirmation{
				CustomerID:     "NEW-" + a.timestampSuffix(6),
				CustomerName:   e.Name,
				CustomerPhone:  e.Phone,
				Date:           "本日",
				Time:           "11:00",
				Menu:           sampleMenu,
				Price:          sampleBasePrice,
				WithAnesthesia: false,
			},
		}

	case paymentCompletedEvent:
		return Reply{
			Content: fmt.Sprintf(`✅ お支払いが完了しました！

ご予約・お支払いありがとうございます。

【予約番号】
RES-%s

当日は予約時間の5分前までにご来院ください。
ご不明な点がございましたら、このチャットでお気軽にお問い合わせください。

%s
💬 チャットサポート対応中`, a.timestampSuffix(8), data.ClinicInfo.Name),
		}

	case payOnSiteEvent:
		return Reply{
			Content: fmt.Sprintf(`✅ ご予約が完了しました！

【予約番号】
RES-%s

お支払いは当日、ご来院時にお願いいたします。

当日は予約時間の5分前までにご来院ください。
ご不明な点がございましたら、このチャットでお気軽にお問い合わせください。

%s
💬 チャットサポート対応中`, a.timestampSuffix(8), data.ClinicInfo.Name),
		}

	case fullSlotSelectedEvent:
		return Reply{
			Content: fmt.Sprintf(`申し訳ございません。
%sは現在満席です。

キャンセル待ちに登録されますか？
空きが出次第、お電話にてご連絡いたします。`, e.Time),
			MenuOptions: []models.MenuOption{
				{ID: "waitlist", Label: "⏳ キャンセル待ちに登録", Value: "キャンセル待ち登録_" + e.Time},
				{ID: "other_time", Label: "🔄 別の時間を選ぶ", Value: "別の時間を選びたい"},
			},
		}

	case waitlistRequestedEvent:
		return Reply{
			Content: fmt.Sprintf(`%sのキャンセル待ちですね。

強力麻酔クリームはご利用になりますか？
痛みが心配な方におすすめです。`, e.Time),
			MenuOptions: []models.MenuOption{
				{ID: "with_anesthesia", Label: "麻酔クリームあり", Value: e.Time + "キャンセル待ち確定_麻酔あり", Price: "+¥3,000"},
				{ID: "without_anesthesia", Label: "麻酔クリームなし", Value: e.Time + "キャンセル待ち確定_麻酔なし"},
			},
		}

	case waitlistAnesthesiaChosenEvent:
		return Reply{
			Content: "キャンセル待ち登録内容の確認です。",
			ShowWaitlistConfirm: &models.WaitlistEntry{
				ID:             "WL-" + a.timestampSuffix(8),
				CustomerID:     sampleCustomer.CustomerID,
				CustomerName:   sampleCustomer.CustomerName,
				CustomerPhone:  sampleCustomer.CustomerPhone,
				Date:           "本日",
				Time:           e.Time,
				Menu:           sampleMenu,
				Position:       1,
				WithAnesthesia: e.WithAnesthesia,
			},
		}

	case waitlistApprovedEvent:
		return Reply{
			Content: fmt.Sprintf(`✅ キャンセル待ち登録が完了しました！

【待機番号】
WL-%s

【待機順位】
#1番目

キャンセルが発生次第、このチャットでご連絡いたします。
通知にお気をつけください。

%s
💬 チャットサポート対応中`, a.timestampSuffix(8), data.ClinicInfo.Name),
		}

	case changeTimeEvent:
		return Reply{
			Content: `改めて空き時間をお選びください。
黄色の「待」マークは満席ですが、キャンセル待ち登録が可能です。`,
			TimeSlots: standardTimeSlots(),
		}

	case todayAvailabilityEvent:
		return a.handleTodayAvailability()

	case dateChosenEvent:
		return Reply{
			Content: `ご希望の日程ですね。

その日の空き状況です。
ご希望の時間をタップしてください。`,
			TimeSlots: standardTimeSlots(),
		}
	}

	return a.fallback()
}

func (a *Assistant) handleTodayAvailability() Reply {
	addr := a.store.CustomerAddress()

	if addr.HomeStation != "" {
		nearbySlots := a.store.NearbyClinicAvailability()

		if len(nearbySlots) == 0 {
			return Reply{
				Content: fmt.Sprintf(`本日の当院（%s）の空き状況です。

ご希望の時間をタップしてください。`, data.ClinicInfo.Name),
				TimeSlots: homeClinicTodaySlots(),
			}
		}

		workSuffix := ""
		if addr.WorkStation != "" {
			workSuffix = fmt.Sprintf("・%s駅", addr.WorkStation)
		}
		return Reply{
			Content: fmt.Sprintf(`本日の予約ですね！

%s駅%s周辺で空きのあるクリニックをお調べしました。

ご都合の良いクリニック・時間をお選びください。`, addr.HomeStation, workSuffix),
			ShowNearbyClinicSlots: nearbySlots,
		}
	}

	return Reply{
		Content: `本日の予約ですね！

当院以外にも、お近くのクリニックの空き状況をお調べできます。
最寄り駅を教えていただけますか？`,
		ShowAddressForm: true,
	}
}

func (a *Assistant) handleKeywords(input string) Reply {
	// 挨拶
	if containsAny(input, "こんにちは", "はじめまして", "初めまして", "おはよう", "こんばんは") {
		return Reply{
			Content: fmt.Sprintf(`こんにちは！%sへようこそ。

男性専門のヒゲ脱毛クリニックです。

【できること】
・ご予約のご案内
・料金・部位のご案内
・痛み・効果などのご質問

お気軽にお尋ねください！`, data.ClinicInfo.Name),
		}
	}

	// コース確定 → 日時選択へ。部位選択より先に見る。
	if containsAny(input, "コースで予約", "で予約", "1回で予約", "3回コースで予約", "6回コースで予約") {
		return Reply{
			Content: `承知いたしました！

ご希望の日程をお選びください。
カレンダーから日付を選ぶこともできます。

※強力麻酔クリーム（+¥3,000/回）もご利用いただけます。`,
			MenuOptions:  dateOptions(),
			ShowCalendar: true,
		}
	}

	// 未消化コースの消化
	if containsAny(input, "未消化コースを消化", "コース消化") {
		return Reply{
			Content: `未消化コースの予約ですね！
追加料金なしでご利用いただけます。

ご希望の日程をお選びください。
カレンダーから日付を選ぶこともできます。

※強力麻酔クリーム（+¥3,000/回）もご利用いただけます。`,
			MenuOptions:  dateOptions(),
			ShowCalendar: true,
		}
	}

	// リマインダーからの「予約する」ボタン
	if input == "予約する" {
		menuOptions := baseMenuOptions()
		if unused := a.store.UnusedCourses(); len(unused) > 0 {
			menuOptions = append(unusedCourseOptions(unused), menuOptions...)
		}
		return Reply{
			Content: `ありがとうございます！

それでは、メニューをお選びください。`,
			MenuOptions: menuOptions,
		}
	}

	// 「後で検討する」ボタン
	if input == "後で検討する" {
		return Reply{
			Content: `かしこまりました。

ご都合の良い時にいつでもお声がけください。
下のボタンからもご予約いただけます。`,
			QuickReplies: []string{"予約したい", "料金を見たい", "営業時間は？"},
		}
	}

	// 予約したい → 部位選択へ。施術間隔と未消化コースを確認。
	if containsAny(input, "予約したい", "よやくしたい", "取りたい", "行きたい", "受けたい", "申し込み") {
		intervalCheck := a.store.CheckTreatmentInterval(a.now())

		menuOptions := baseMenuOptions()
		unusedCourseMessage := ""
		if unused := a.store.UnusedCourses(); len(unused) > 0 {
			menuOptions = append(unusedCourseOptions(unused), menuOptions...)
			unusedCourseMessage = "\n🎫 未消化のコースがあります！\n追加料金なしでご利用いただけます。\n"
		}

		if intervalCheck.IsWarning && intervalCheck.HasHistory {
			return Reply{
				Content: fmt.Sprintf(`ご予約ですね。ありがとうございます！%s

⚠️ 前回の施術から%d日です。
効果を最大限に発揮するため、4週間（28日）以上の間隔をおすすめしております。

それでもご予約を続ける場合は、メニューをお選びください。`, unusedCourseMessage, intervalCheck.DaysSinceLast),
				MenuOptions:         menuOptions,
				ShowIntervalWarning: true,
			}
		}

		return Reply{
			Content: fmt.Sprintf(`ご予約ですね。ありがとうございます！%s

メニューをお選びください。`, unusedCourseMessage),
			MenuOptions: menuOptions,
		}
	}

	// 三部位
	if containsAny(input, "三部位", "3部位", "鼻下", "アゴ", "あご") {
		return Reply{
			Content: `三部位（鼻下・アゴ・アゴ下）ですね。
一番人気のエリアです！

コース回数をお選びください。`,
			MenuOptions: []models.MenuOption{
				{ID: "three_1", Label: "1回", Value: "三部位1回コースで予約", Price: "¥9,800"},
				{ID: "three_3", Label: "3回コース", Value: "三部位3回コースで予約", Price: "¥26,400（1回あたり¥8,800）"},
				{ID: "three_6", Label: "6回コース ← おすすめ", Value: "三部位6回コースで予約", Price: "¥48,000（1回あたり¥8,000）"},
			},
		}
	}

	// 全部位
	if containsAny(input, "全部位", "全部", "フル", "ぜんぶ") {
		return Reply{
			Content: `全部位（三部位+もみあげ・頬+首）ですね。
顔全体をしっかり脱毛したい方におすすめです！

コース回数をお選びください。`,
			MenuOptions: []models.MenuOption{
				{ID: "all_1", Label: "1回", Value: "全部位1回コースで予約", Price: "¥19,800"},
				{ID: "all_3", Label: "3回コース", Value: "全部位3回コースで予約", Price: "¥53,400（1回あたり¥17,800）"},
				{ID: "all_6", Label: "6回コース ← 最もお得", Value: "全部位6回コースで予約", Price: "¥96,000（1回あたり¥16,000）"},
			},
		}
	}

	// もみあげ・頬
	if containsAny(input, "もみあげ", "頬", "ほほ") {
		return Reply{
			Content: `もみあげ・頬エリアですね。

コース回数をお選びください。
※三部位とセットの「三部位+もみあげ・頬」もおすすめです。`,
			MenuOptions: []models.MenuOption{
				{ID: "cheek_1", Label: "1回", Value: "もみあげ・頬1回で予約", Price: "¥8,800"},
				{ID: "cheek_3", Label: "3回コース", Value: "もみあげ・頬3回コースで予約", Price: "¥23,400"},
				{ID: "cheek_6", Label: "6回コース", Value: "もみあげ・頬6回コースで予約", Price: "¥42,000"},
			},
		}
	}

	// 首
	if containsAny(input, "首", "くび") {
		return Reply{
			Content: `首エリアですね。
襟元の清潔感がアップします。

コース回数をお選びください。
※三部位とセットの「三部位+首」もおすすめです。`,
			MenuOptions: []models.MenuOption{
				{ID: "neck_1", Label: "1回", Value: "首1回で予約", Price: "¥6,800"},
				{ID: "neck_3", Label: "3回コース", Value: "首3回コースで予約", Price: "¥18,000"},
				{ID: "neck_6", Label: "6回コース", Value: "首6回コースで予約", Price: "¥32,400"},
			},
		}
	}

	// 料金一覧
	if containsAny(input, "料金一覧", "価格一覧", "メニュー一覧", "全部の料金") {
		return Reply{Content: data.PriceListText()}
	}

	// 料金全般
	if containsAny(input, "料金", "値段", "いくら", "価格") {
		var lines []string
		for _, m := range data.PopularMenus() {
			lines = append(lines, fmt.Sprintf("・%s：%s",
				strings.Replace(m.Name, "ヒゲ脱毛 ", "", 1),
				data.FormatPrice(m.Price, m.PriceNote)))
		}
		return Reply{
			Content: fmt.Sprintf(`【人気コースの料金】

%s

「料金一覧」で全部位・全コースの料金をご確認いただけます。
強力麻酔クリームは+¥3,000/回です。`, strings.Join(lines, "\n")),
		}
	}

	// 麻酔について
	if containsAny(input, "麻酔", "痛くない", "痛み軽減") {
		return Reply{
			Content: `強力麻酔クリームをご用意しております。

【強力麻酔クリーム】
料金：¥3,000/回
効果：施術の痛みを大幅に軽減

施術の30分前に塗布します。
痛みが心配な方には特におすすめです。

予約時に「麻酔あり」とお伝えください。`,
		}
	}

	// 回数・効果
	if containsAny(input, "何回", "効果", "回数", "どのくらい") {
		return Reply{
			Content: `【効果の目安】

・1回：お試しに最適。効果を実感。
・3回：ヒゲが薄くなり、髭剃りが楽に。
・6回：しっかり効果を実感。1回あたり最安値。

個人差はありますが、3回目あたりから
「髭剃りの頻度が減った」と実感される方が多いです。

しっかり効果を出したい方には6回コースがおすすめです！`,
		}
	}

	// 営業時間
	if containsAny(input, "営業時間", "何時から", "何時まで", "休み", "定休") {
		return Reply{
			Content: fmt.Sprintf(`%s

木曜は21時まで営業しているので、
お仕事帰りにも通いやすいですよ！

ご予約をご希望の場合は、ご希望の日時をお伝えください。`, data.BusinessHoursText),
		}
	}

	// アクセス・場所
	if containsAny(input, "場所", "どこ", "アクセス", "住所", "行き方") {
		return Reply{
			Content: fmt.Sprintf(`【アクセス】
%s

JR新宿駅西口より徒歩5分です。

💬 ご不明な点はこのチャットでお気軽にどうぞ！`, data.ClinicInfo.Address),
		}
	}

	// FAQ検索
	if faq, ok := data.FindFAQByKeyword(input); ok {
		return Reply{Content: faq.Answer}
	}

	// 肯定的な返事
	if containsAny(input, "はい", "お願い", "それで", "いい", "ok", "オーケー", "確定") {
		return Reply{
			Content: `承知いたしました！

ご希望の日程をお選びください。
カレンダーから日付を選ぶこともできます。`,
			MenuOptions:  dateOptions(),
			ShowCalendar: true,
		}
	}

	// カウンセリング
	if containsAny(input, "カウンセリング", "相談", "初めて", "初回") {
		return Reply{
			Content: `無料カウンセリングのご予約ですね！

肌質やヒゲの状態を確認し、
最適なプランをご提案いたします。
当日施術も可能です。

ご希望の日程をお選びください。
カレンダーから日付を選ぶこともできます。`,
			MenuOptions:  dateOptions(),
			ShowCalendar: true,
		}
	}

	return a.fallback()
}

func (a *Assistant) fallback() Reply {
	return Reply{
		Content: `申し訳ございません、ご質問の内容を理解できませんでした。

以下のようにお尋ねください：
・「予約したい」→ ご予約のご案内
・「料金を教えて」→ 料金のご案内
・「三部位の料金」→ 部位別料金
・「麻酔について」→ 麻酔のご案内
・「何回で効果出る？」→ 効果の目安

他にご不明な点がございましたら、このチャットでお気軽にお尋ねください！`,
	}
}

// timestampSuffix returns the last n decimal digits of the clock in
// milliseconds, used for display-only reservation numbers.
func (a *Assistant) timestampSuffix(n int) string {
	s := fmt.Sprintf("%d", a.now().UnixMilli())
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return s
}

func dateOptions() []models.MenuOption {
	return []models.MenuOption{
		{ID: "today", Label: "今日", Value: "今日の空き時間を見たい"},
		{ID: "tomorrow", Label: "明日", Value: "明日の空き時間を見たい"},
		{ID: "day_after", Label: "明後日", Value: "明後日の空き時間を見たい"},
		{ID: "this_weekend", Label: "今週末", Value: "今週末の空き時間を見たい"},
	}
}

func baseMenuOptions() []models.MenuOption {
	return []models.MenuOption{
		{ID: "three", Label: "三部位（鼻下・アゴ・アゴ下）", Value: "三部位を希望", Price: "¥9,800〜 ← 一番人気！"},
		{ID: "cheek", Label: "もみあげ・頬", Value: "もみあげ・頬を希望", Price: "¥8,800〜"},
		{ID: "neck", Label: "首", Value: "首を希望", Price: "¥6,800〜"},
		{ID: "three_cheek", Label: "三部位 + もみあげ・頬", Value: "三部位+もみあげ・頬を希望", Price: "¥16,800〜"},
		{ID: "three_neck", Label: "三部位 + 首", Value: "三部位+首を希望", Price: "¥14,800〜"},
		{ID: "cheek_neck", Label: "もみあげ・頬 + 首", Value: "もみあげ・頬+首を希望", Price: "¥13,800〜"},
		{ID: "all", Label: "全部位", Value: "全部位を希望", Price: "¥19,800〜 ← しっかり脱毛"},
	}
}

func unusedCourseOptions(courses []models.CourseContract) []models.MenuOption {
	options := make([]models.MenuOption, 0, len(courses))
	for i, course := range courses {
		options = append(options, models.MenuOption{
			ID:    fmt.Sprintf("unused_%d", i),
			Label: fmt.Sprintf("🎫 %s（残り%d回）", course.CourseName, course.RemainingSessions),
			Value: "未消化コースを消化",
			Price: "← おすすめ！追加料金なし",
		})
	}
	return options
}

func standardTimeSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{Time: "11:00", Available: true},
		{Time: "11:30", Available: true},
		{Time: "12:00", Available: false},
		{Time: "12:30", Available: true},
		{Time: "14:00", Available: true},
		{Time: "14:30", Available: false},
		{Time: "15:00", Available: true},
		{Time: "15:30", Available: true},
		{Time: "17:00", Available: true},
		{Time: "17:30", Available: true},
		{Time: "18:00", Available: false},
		{Time: "18:30", Available: true},
	}
}

func homeClinicTodaySlots() []models.TimeSlot {
	return []models.TimeSlot{
		{Time: "11:00", Available: true},
		{Time: "11:30", Available: false},
		{Time: "12:00", Available: false},
		{Time: "14:00", Available: true},
		{Time: "15:00", Available: false},
		{Time: "17:00", Available: true},
	}
}
