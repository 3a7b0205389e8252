// data/points.go
package data

import "clinicflash-backend/models"

// Seed points ledgers.
var CustomerPointsSeed = []models.CustomerPoints{
	{
		CustomerID:    "cust-001", // SBC太郎
		CurrentPoints: 450,
		TotalEarned:   500,
		TotalUsed:     50,
		ExpiringPoints: []models.ExpiringPoints{
			{Points: 100, ExpiryDate: "2025-03-31"},
			{Points: 150, ExpiryDate: "2025-06-30"},
		},
		History: []models.PointTransaction{
			{ID: "pt-001", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2024/10/15）", CreatedAt: "2024-10-15T10:00:00Z"},
			{ID: "pt-002", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2024/11/10）", CreatedAt: "2024-11-10T14:00:00Z"},
			{ID: "pt-003", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2024/12/08）", CreatedAt: "2024-12-08T11:00:00Z"},
			{ID: "pt-004", Type: models.PointUse, Points: 50, Description: "麻酔クリーム半額割引", CreatedAt: "2024-12-08T11:30:00Z"},
			{ID: "pt-005", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2025/01/14）", CreatedAt: "2025-01-14T15:00:00Z"},
			{ID: "pt-006", Type: models.PointEarn, Points: 100, Description: "口コミ投稿ボーナス", CreatedAt: "2025-01-20T09:00:00Z"},
		},
	},
	{
		CustomerID:    "cust-002", // 山田一郎
		CurrentPoints: 300,
		TotalEarned:   300,
		TotalUsed:     0,
		ExpiringPoints: []models.ExpiringPoints{
			{Points: 100, ExpiryDate: "2025-09-30"},
		},
		History: []models.PointTransaction{
			{ID: "pt-007", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2024/09/01）", CreatedAt: "2024-09-01T10:00:00Z"},
			{ID: "pt-008", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2025/01/20）", CreatedAt: "2025-01-20T14:00:00Z"},
			{ID: "pt-009", Type: models.PointEarn, Points: 100, Description: "友達紹介ボーナス", CreatedAt: "2025-01-25T10:00:00Z"},
		},
	},
	{
		CustomerID:     "cust-003", // 鈴木健太
		CurrentPoints:  200,
		TotalEarned:    200,
		TotalUsed:      0,
		ExpiringPoints: []models.ExpiringPoints{},
		History: []models.PointTransaction{
			{ID: "pt-010", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2024/11/20）", CreatedAt: "2024-11-20T13:00:00Z"},
			{ID: "pt-011", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2025/01/05）", CreatedAt: "2025-01-05T16:00:00Z"},
		},
	},
	{
		CustomerID:    "cust-004", // 田中誠
		CurrentPoints: 350,
		TotalEarned:   400,
		TotalUsed:     50,
		ExpiringPoints: []models.ExpiringPoints{
			{Points: 100, ExpiryDate: "2025-06-30"},
		},
		History: []models.PointTransaction{
			{ID: "pt-012", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2024/06/15）", CreatedAt: "2024-06-15T11:00:00Z"},
			{ID: "pt-013", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2024/09/10）", CreatedAt: "2024-09-10T14:00:00Z"},
			{ID: "pt-014", Type: models.PointEarn, Points: 100, Description: "来店ポイント（2024/12/10）", CreatedAt: "2024-12-10T10:00:00Z"},
			{ID: "pt-015", Type: models.PointUse, Points: 50, Description: "ドリンクサービス", CreatedAt: "2024-12-10T10:30:00Z"},
			{ID: "pt-016", Type: models.PointEarn, Points: 100, Description: "コース完了ボーナス", CreatedAt: "2024-12-10T11:00:00Z"},
		},
	},
	{
		CustomerID:     "cust-005", // 佐藤大輔
		CurrentPoints:  300,
		TotalEarned:    300,
		TotalUsed:      0,
		ExpiringPoints: []models.ExpiringPoints{},
		History: []models.PointTransaction{
			{ID: "pt-017", Type: models.PointEarn, Points: 300, Description: "新規契約ボーナス", CreatedAt: "2025-01-25T12:00:00Z"},
		},
	},
}

// Coupon catalogue.
var Coupons = []models.Coupon{
	{
		ID:            "coupon-001",
		Code:          "WELCOME10",
		Name:          "初回10%OFFクーポン",
		Description:   "初めてのご来院で全メニュー10%OFF",
		DiscountType:  models.DiscountPercent,
		DiscountValue: 10,
		ExpiryDate:    "2025-12-31",
		Conditions:    "初回来院の方限定。他クーポンとの併用不可。",
	},
	{
		ID:              "coupon-002",
		Code:            "ANESTHESIA",
		Name:            "麻酔クリーム無料クーポン",
		Description:     "麻酔クリーム（通常¥3,000）が無料",
		DiscountType:    models.DiscountFixed,
		DiscountValue:   3000,
		ExpiryDate:      "2025-06-30",
		Conditions:      "1回の施術につき1回のみ使用可能。",
		ApplicableMenus: []string{"麻酔クリーム"},
	},
	{
		ID:            "coupon-003",
		Code:          "SUMMER1000",
		Name:          "1,000円OFFクーポン",
		Description:   "ご利用金額から1,000円OFF",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 1000,
		MinPurchase:   5000,
		ExpiryDate:    "2025-08-31",
		Conditions:    "5,000円以上のご利用で適用。",
	},
	{
		ID:            "coupon-004",
		Code:          "FRIEND500",
		Name:          "友達紹介クーポン",
		Description:   "友達紹介で500円OFF",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 500,
		ExpiryDate:    "2025-12-31",
		Conditions:    "紹介された方限定。初回来院時のみ使用可能。",
	},
	{
		ID:            "coupon-005",
		Code:          "BIRTHDAY",
		Name:          "お誕生日20%OFFクーポン",
		Description:   "お誕生月にご来院で全メニュー20%OFF",
		DiscountType:  models.DiscountPercent,
		DiscountValue: 20,
		ExpiryDate:    "2025-12-31",
		Conditions:    "お誕生月のみ有効。他クーポンとの併用不可。",
	},
}

// Coupon ownership per customer.
var CustomerCoupons = map[string][]string{
	"cust-001": {"coupon-002", "coupon-003"}, // SBC太郎
	"cust-002": {"coupon-001", "coupon-003"}, // 山田一郎
	"cust-003": {"coupon-003", "coupon-005"}, // 鈴木健太
	"cust-004": {"coupon-002"},               // 田中誠
	"cust-005": {"coupon-001", "coupon-004"}, // 佐藤大輔
}

// Seed referral programs.
var ReferralPrograms = []models.ReferralProgram{
	{
		CustomerID:    "cust-001", // SBC太郎
		ReferralCode:  "SBC-TARO-2024",
		ReferredCount: 2,
		EarnedPoints:  1000,
		Referrals: []models.ReferralRecord{
			{
				ID:                   "ref-001",
				ReferredCustomerID:   "cust-003",
				ReferredCustomerName: "鈴木 健太",
				ReferredAt:           "2024-11-15T10:00:00Z",
				PointsEarned:         500,
				Status:               models.ReferralCompleted,
			},
			{
				ID:                   "ref-002",
				ReferredCustomerID:   "cust-005",
				ReferredCustomerName: "佐藤 大輔",
				ReferredAt:           "2025-01-20T14:00:00Z",
				PointsEarned:         500,
				Status:               models.ReferralCompleted,
			},
		},
	},
	{
		CustomerID:    "cust-002", // 山田一郎
		ReferralCode:  "YMD-ICHIRO-2024",
		ReferredCount: 1,
		EarnedPoints:  500,
		Referrals: []models.ReferralRecord{
			{
				ID:                   "ref-003",
				ReferredCustomerID:   "guest-001",
				ReferredCustomerName: "高橋 翔太",
				ReferredAt:           "2025-01-25T11:00:00Z",
				PointsEarned:         500,
				Status:               models.ReferralPending, // まだ来店していない
			},
		},
	},
	{
		CustomerID:   "cust-003",
		ReferralCode: "SZK-KENTA-2024",
		Referrals:    []models.ReferralRecord{},
	},
	{
		CustomerID:   "cust-004",
		ReferralCode: "TNK-MAKOTO-2024",
		Referrals:    []models.ReferralRecord{},
	},
	{
		CustomerID:   "cust-005",
		ReferralCode: "STO-DAISUKE-2025",
		Referrals:    []models.ReferralRecord{},
	},
}
