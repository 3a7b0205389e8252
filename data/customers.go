// data/customers.go
package data

import "clinicflash-backend/models"

// Seed customers (5件).
var Customers = []models.Customer{
	{
		ID:            "cust-001",
		PatientNumber: "SBC-123456",
		Name:          "SBC太郎",
		NameKana:      "エスビーシータロウ",
		Gender:        "male",
		BirthDate:     "1990-05-15",
		Age:           34,
		Address: models.CustomerAddress{
			PostalCode:  "160-0023",
			Prefecture:  "東京都",
			City:        "新宿区",
			Street:      "西新宿1-1-1",
			Building:    "新宿ビル5F",
			HomeStation: "池袋",
			WorkStation: "品川",
		},
		Phone:       "090-1111-1111",
		Email:       "taro@example.com",
		FirstVisit:  models.VisitRecord{Date: "2024-10-15", ClinicID: "clinic-shinjuku"},
		LastVisit:   models.VisitRecord{Date: "2025-01-14", ClinicID: "clinic-ikebukuro"},
		ContractIDs: []string{"course-001"},
		HistoryIDs:  []string{"hist-001", "hist-002", "hist-003", "hist-004"},
		CreatedAt:   "2024-10-15T00:00:00Z",
		UpdatedAt:   "2025-01-14T00:00:00Z",
	},
	{
		ID:            "cust-002",
		PatientNumber: "SBC-234567",
		Name:          "山田一郎",
		NameKana:      "ヤマダイチロウ",
		Gender:        "male",
		BirthDate:     "1996-08-22",
		Age:           28,
		Address: models.CustomerAddress{
			PostalCode:  "150-0002",
			Prefecture:  "東京都",
			City:        "渋谷区",
			Street:      "渋谷2-3-4",
			HomeStation: "渋谷",
			WorkStation: "新宿",
		},
		Phone:       "090-2222-2222",
		Email:       "yamada@example.com",
		FirstVisit:  models.VisitRecord{Date: "2024-09-01", ClinicID: "clinic-shibuya"},
		LastVisit:   models.VisitRecord{Date: "2025-01-20", ClinicID: "clinic-shibuya"},
		ContractIDs: []string{"course-002"},
		HistoryIDs:  []string{"hist-005", "hist-006"},
		CreatedAt:   "2024-09-01T00:00:00Z",
		UpdatedAt:   "2025-01-20T00:00:00Z",
	},
	{
		ID:            "cust-003",
		PatientNumber: "SBC-345678",
		Name:          "鈴木健太",
		NameKana:      "スズキケンタ",
		Gender:        "male",
		BirthDate:     "1982-03-10",
		Age:           42,
		Address: models.CustomerAddress{
			PostalCode:  "171-0022",
			Prefecture:  "東京都",
			City:        "豊島区",
			Street:      "南池袋1-2-3",
			HomeStation: "池袋",
		},
		Phone:       "090-3333-3333",
		Email:       "suzuki@example.com",
		FirstVisit:  models.VisitRecord{Date: "2024-11-20", ClinicID: "clinic-ikebukuro"},
		LastVisit:   models.VisitRecord{Date: "2025-01-05", ClinicID: "clinic-ikebukuro"},
		ContractIDs: []string{}, // 都度払い
		HistoryIDs:  []string{"hist-007", "hist-008"},
		CreatedAt:   "2024-11-20T00:00:00Z",
		UpdatedAt:   "2025-01-05T00:00:00Z",
	},
	{
		ID:            "cust-004",
		PatientNumber: "SBC-456789",
		Name:          "田中誠",
		NameKana:      "タナカマコト",
		Gender:        "male",
		BirthDate:     "1993-12-01",
		Age:           31,
		Address: models.CustomerAddress{
			PostalCode:  "104-0061",
			Prefecture:  "東京都",
			City:        "中央区",
			Street:      "銀座3-4-5",
			Building:    "銀座タワー10F",
			HomeStation: "銀座",
			WorkStation: "東京",
		},
		Phone:       "090-4444-4444",
		Email:       "tanaka@example.com",
		FirstVisit:  models.VisitRecord{Date: "2024-06-15", ClinicID: "clinic-shinjuku"},
		LastVisit:   models.VisitRecord{Date: "2024-12-10", ClinicID: "clinic-shinjuku"},
		ContractIDs: []string{"course-003"}, // 完了済み
		HistoryIDs:  []string{"hist-009", "hist-010", "hist-011"},
		CreatedAt:   "2024-06-15T00:00:00Z",
		UpdatedAt:   "2024-12-10T00:00:00Z",
	},
	{
		ID:            "cust-005",
		PatientNumber: "SBC-567890",
		Name:          "佐藤大輔",
		NameKana:      "サトウダイスケ",
		Gender:        "male",
		BirthDate:     "1999-07-25",
		Age:           25,
		Address: models.CustomerAddress{
			PostalCode:  "141-0021",
			Prefecture:  "東京都",
			City:        "品川区",
			Street:      "上大崎2-5-6",
			HomeStation: "目黒",
			WorkStation: "渋谷",
		},
		Phone:       "090-5555-5555",
		Email:       "sato@example.com",
		FirstVisit:  models.VisitRecord{Date: "2025-01-25", ClinicID: "clinic-shibuya"},
		LastVisit:   models.VisitRecord{Date: "2025-01-25", ClinicID: "clinic-shibuya"},
		ContractIDs: []string{"course-004"}, // 新規契約
		HistoryIDs:  []string{}, // まだ施術なし
		CreatedAt:   "2025-01-25T00:00:00Z",
		UpdatedAt:   "2025-01-25T00:00:00Z",
	},
}

// Seed course contracts.
var CustomerContracts = []models.CourseContract{
	{
		ID:                "course-001",
		CourseName:        "ヒゲ脱毛 三部位 6回コース",
		TotalSessions:     6,
		UsedSessions:      4,
		RemainingSessions: 2,
		StartDate:         "2024-10-15",
		ExpiryDate:        "2025-10-14",
		LastTreatmentDate: "2024-10-20",
	},
	{
		ID:                "course-002",
		CourseName:        "ヒゲ脱毛 全部位 6回コース",
		TotalSessions:     6,
		UsedSessions:      2,
		RemainingSessions: 4,
		StartDate:         "2024-09-01",
		ExpiryDate:        "2025-08-31",
		LastTreatmentDate: "2025-01-20",
	},
	{
		ID:                "course-003",
		CourseName:        "ヒゲ脱毛 三部位 3回コース",
		TotalSessions:     3,
		UsedSessions:      3,
		RemainingSessions: 0, // 完了
		StartDate:         "2024-06-15",
		ExpiryDate:        "2025-06-14",
		LastTreatmentDate: "2024-12-10",
	},
	{
		ID:                "course-004",
		CourseName:        "ヒゲ脱毛 三部位 6回コース",
		TotalSessions:     6,
		UsedSessions:      0,
		RemainingSessions: 6, // 新規
		StartDate:         "2025-01-25",
		ExpiryDate:        "2026-01-24",
	},
}

// Seed per-customer treatment history. SBC太郎's rows live in the shared
// history table, so his IDs are absent here.
var CustomerHistory = []models.TreatmentHistory{
	// 山田一郎 (cust-002)
	{
		ID:             "hist-005",
		Date:           "2024-09-01",
		Menu:           "ヒゲ脱毛 全部位 6回コース（1回目）",
		Price:          96000,
		WithAnesthesia: true,
		Notes:          "初回カウンセリング後に施術。",
		ClinicName:     "渋谷院",
		LaserType:      "アレキサンドライト",
		NurseName:      "佐藤 花子",
		Feedback: &models.TreatmentFeedback{
			SatisfactionRating: 4,
			HasLeakage:         false,
			Comment:            "スタッフの説明が丁寧でした。",
			CreatedAt:          "2024-09-02T10:00:00Z",
		},
	},
	{
		ID:             "hist-006",
		Date:           "2025-01-20",
		Menu:           "ヒゲ脱毛 全部位 6回コース（2回目）",
		Price:          0,
		WithAnesthesia: true,
		Notes:          "効果を実感している。",
		ClinicName:     "渋谷院",
		LaserType:      "アレキサンドライト",
		NurseName:      "佐藤 花子",
	},

	// 鈴木健太 (cust-003) 都度払い
	{
		ID:             "hist-007",
		Date:           "2024-11-20",
		Menu:           "ヒゲ脱毛 三部位 1回",
		Price:          9800,
		WithAnesthesia: false,
		Notes:          "初回お試し。",
		ClinicName:     "池袋院",
		LaserType:      "ダイオード",
		NurseName:      "鈴木 真理",
		Feedback: &models.TreatmentFeedback{
			SatisfactionRating: 5,
			HasLeakage:         false,
			Comment:            "思ったより痛くなかった。",
			CreatedAt:          "2024-11-21T15:00:00Z",
		},
	},
	{
		ID:             "hist-008",
		Date:           "2025-01-05",
		Menu:           "ヒゲ脱毛 三部位 1回",
		Price:          9800,
		WithAnesthesia: false,
		Notes:          "2回目。ヒゲが薄くなってきた。",
		ClinicName:     "池袋院",
		LaserType:      "ダイオード",
		NurseName:      "鈴木 真理",
		Feedback: &models.TreatmentFeedback{
			SatisfactionRating: 4,
			HasLeakage:         false,
			Comment:            "効果が出てきて嬉しい。",
			CreatedAt:          "2025-01-06T12:00:00Z",
		},
	},

	// 田中誠 (cust-004) コース完了済み
	{
		ID:             "hist-009",
		Date:           "2024-06-15",
		Menu:           "ヒゲ脱毛 三部位 3回コース（1回目）",
		Price:          26400,
		WithAnesthesia: true,
		Notes:          "初回施術。",
		ClinicName:     "新宿院",
		LaserType:      "YAG",
		NurseName:      "田中 美咲",
		Feedback: &models.TreatmentFeedback{
			SatisfactionRating: 4,
			HasLeakage:         false,
			Comment:            "麻酔があって楽でした。",
			CreatedAt:          "2024-06-16T10:00:00Z",
		},
	},
	{
		ID:             "hist-010",
		Date:           "2024-09-10",
		Menu:           "ヒゲ脱毛 三部位 3回コース（2回目）",
		Price:          0,
		WithAnesthesia: true,
		Notes:          "順調に効果が出ている。",
		ClinicName:     "新宿院",
		LaserType:      "YAG",
		NurseName:      "田中 美咲",
		Feedback: &models.TreatmentFeedback{
			SatisfactionRating: 5,
			HasLeakage:         false,
			Comment:            "明らかに減ってきた！",
			CreatedAt:          "2024-09-11T14:00:00Z",
		},
	},
	{
		ID:             "hist-011",
		Date:           "2024-12-10",
		Menu:           "ヒゲ脱毛 三部位 3回コース（3回目）",
		Price:          0,
		WithAnesthesia: false,
		Notes:          "最終回。満足の結果。",
		ClinicName:     "新宿院",
		LaserType:      "YAG",
		NurseName:      "田中 美咲",
		Feedback: &models.TreatmentFeedback{
			SatisfactionRating: 5,
			HasLeakage:         false,
			Comment:            "とても満足しています。ありがとうございました！",
			CreatedAt:          "2024-12-11T09:00:00Z",
		},
	},
}

var clinicNames = map[string]string{
	"clinic-shinjuku":  "新宿院",
	"clinic-shibuya":   "渋谷院",
	"clinic-ikebukuro": "池袋院",
}

// ClinicNameByID maps an internal clinic id to its display name. Unknown
// ids pass through unchanged.
func ClinicNameByID(clinicID string) string {
	if name, ok := clinicNames[clinicID]; ok {
		return name
	}
	return clinicID
}
