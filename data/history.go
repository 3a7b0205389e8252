// data/history.go
package data

import "clinicflash-backend/models"

// Shared course contract (SBC太郎's active course).
var CourseContracts = []models.CourseContract{
	{
		ID:                "course-001",
		CourseName:        "ヒゲ脱毛 三部位 6回コース",
		TotalSessions:     6,
		UsedSessions:      4,
		RemainingSessions: 2,
		StartDate:         "2025-01-15",
		ExpiryDate:        "2026-01-14",
	},
}

// Shared treatment history table.
var TreatmentHistorySeed = []models.TreatmentHistory{
	{
		ID:             "hist-001",
		Date:           "2025-01-15",
		Menu:           "ヒゲ脱毛 三部位 6回コース（1回目）",
		Price:          48000,
		WithAnesthesia: true,
		Notes:          "初回施術。肌の状態良好。",
	},
	{
		ID:             "hist-002",
		Date:           "2025-02-12",
		Menu:           "ヒゲ脱毛 三部位 6回コース（2回目）",
		Price:          0, // コース内なので追加料金なし
		WithAnesthesia: true,
		Notes:          "順調に効果が出ている。",
	},
	{
		ID:             "hist-003",
		Date:           "2025-03-10",
		Menu:           "ヒゲ脱毛 三部位 6回コース（3回目）",
		Price:          0,
		WithAnesthesia: false,
		Notes:          "痛みに慣れてきたので麻酔なしで施術。",
	},
	{
		ID:             "hist-004",
		Date:           "2025-04-08",
		Menu:           "ヒゲ脱毛 三部位 6回コース（4回目）",
		Price:          0,
		WithAnesthesia: false,
		Notes:          "ヒゲが目に見えて薄くなってきた。",
	},
}

// DowntimeCaution is one post-treatment care instruction.
type DowntimeCaution struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DowntimeSymptom describes an expected post-treatment symptom.
type DowntimeSymptom struct {
	Symptom  string `json:"symptom"`
	Duration string `json:"duration"`
	Advice   string `json:"advice"`
}

// DowntimeGuide is the full aftercare sheet shown with the history view.
type DowntimeGuide struct {
	Title            string            `json:"title"`
	Period           string            `json:"period"`
	Cautions         []DowntimeCaution `json:"cautions"`
	Symptoms         []DowntimeSymptom `json:"symptoms"`
	EmergencyContact string            `json:"emergencyContact"`
}

var DowntimeCare = DowntimeGuide{
	Title:  "施術後のダウンタイムについて",
	Period: "施術後1週間程度",
	Cautions: []DowntimeCaution{
		{
			Icon:        "🚫",
			Title:       "激しい運動",
			Description: "施術当日は激しい運動をお控えください。翌日からは軽い運動であれば問題ありません。",
		},
		{
			Icon:        "🍺",
			Title:       "飲酒",
			Description: "施術当日のアルコール摂取はお控えください。血行が良くなり、赤みや腫れが出やすくなります。",
		},
		{
			Icon:        "🛁",
			Title:       "長時間の入浴",
			Description: "施術当日は長時間の入浴やサウナはお控えください。シャワーは問題ありません。",
		},
		{
			Icon:        "☀️",
			Title:       "日焼け",
			Description: "施術後1週間は特に日焼けにご注意ください。外出時は日焼け止めの使用をおすすめします。",
		},
		{
			Icon:        "💧",
			Title:       "保湿ケア",
			Description: "施術後は肌が乾燥しやすくなります。化粧水や乳液でしっかり保湿してください。",
		},
		{
			Icon:        "🪒",
			Title:       "髭剃り",
			Description: "施術当日の髭剃りはお控えください。翌日以降、肌に違和感がなければ通常通り髭剃りできます。",
		},
	},
	Symptoms: []DowntimeSymptom{
		{
			Symptom:  "赤み・ほてり",
			Duration: "数時間〜1日程度",
			Advice:   "冷たいタオルで冷やすと和らぎます",
		},
		{
			Symptom:  "軽い腫れ",
			Duration: "1〜2日程度",
			Advice:   "自然に引きますのでご安心ください",
		},
		{
			Symptom:  "毛穴の黒ずみ",
			Duration: "1〜2週間程度",
			Advice:   "毛が抜け落ちる過程で発生します。無理に引き抜かないでください",
		},
	},
	EmergencyContact: "症状が長引く場合や、強い痛みがある場合はすぐにご連絡ください。",
}
