// data/nearbyclinics.go
package data

import "clinicflash-backend/models"

// Branch clinics with their today-only slot fixtures.
var NearbyClinics = []models.NearbyClinic{
	{
		ID:      "clinic-shinjuku",
		Name:    "SBC Men's Flash 新宿西口院",
		Address: "東京都新宿区西新宿1-1-1 新宿ビル3F",
		Station: "新宿",
		TodaySlots: []models.TimeSlot{
			{Time: "11:00", Available: true},
			{Time: "11:30", Available: false},
			{Time: "12:00", Available: false},
			{Time: "14:00", Available: true},
			{Time: "15:00", Available: false},
			{Time: "17:00", Available: true},
		},
	},
	{
		ID:      "clinic-ikebukuro",
		Name:    "SBC Men's Flash 池袋東口院",
		Address: "東京都豊島区東池袋1-2-3 池袋ビル5F",
		Station: "池袋",
		TodaySlots: []models.TimeSlot{
			{Time: "11:00", Available: false},
			{Time: "11:30", Available: true},
			{Time: "12:00", Available: true},
			{Time: "14:00", Available: false},
			{Time: "15:00", Available: true},
			{Time: "17:00", Available: true},
			{Time: "18:00", Available: true},
		},
	},
	{
		ID:      "clinic-shibuya",
		Name:    "SBC Men's Flash 渋谷道玄坂院",
		Address: "東京都渋谷区道玄坂2-3-4 渋谷ビル4F",
		Station: "渋谷",
		TodaySlots: []models.TimeSlot{
			{Time: "11:00", Available: true},
			{Time: "12:00", Available: true},
			{Time: "13:00", Available: false},
			{Time: "14:00", Available: true},
			{Time: "16:00", Available: false},
			{Time: "17:00", Available: true},
		},
	},
	{
		ID:      "clinic-shinagawa",
		Name:    "SBC Men's Flash 品川港南口院",
		Address: "東京都港区港南2-4-5 品川ビル6F",
		Station: "品川",
		TodaySlots: []models.TimeSlot{
			{Time: "11:00", Available: false},
			{Time: "11:30", Available: false},
			{Time: "12:00", Available: true},
			{Time: "14:00", Available: true},
			{Time: "15:00", Available: true},
			{Time: "16:00", Available: true},
		},
	},
	{
		ID:      "clinic-ueno",
		Name:    "SBC Men's Flash 上野駅前院",
		Address: "東京都台東区上野7-8-9 上野ビル3F",
		Station: "上野",
		TodaySlots: []models.TimeSlot{
			{Time: "11:00", Available: true},
			{Time: "12:00", Available: false},
			{Time: "13:00", Available: true},
			{Time: "14:00", Available: true},
			{Time: "17:00", Available: true},
			{Time: "18:00", Available: false},
		},
	},
	{
		ID:      "clinic-yokohama",
		Name:    "SBC Men's Flash 横浜西口院",
		Address: "神奈川県横浜市西区南幸1-2-3 横浜ビル4F",
		Station: "横浜",
		TodaySlots: []models.TimeSlot{
			{Time: "11:00", Available: true},
			{Time: "11:30", Available: true},
			{Time: "12:00", Available: false},
			{Time: "14:00", Available: false},
			{Time: "15:00", Available: true},
			{Time: "16:00", Available: true},
			{Time: "17:00", Available: true},
		},
	},
	{
		ID:      "clinic-omiya",
		Name:    "SBC Men's Flash 大宮駅前院",
		Address: "埼玉県さいたま市大宮区桜木町1-2-3 大宮ビル5F",
		Station: "大宮",
		TodaySlots: []models.TimeSlot{
			{Time: "11:00", Available: false},
			{Time: "12:00", Available: true},
			{Time: "13:00", Available: true},
			{Time: "14:00", Available: true},
			{Time: "15:00", Available: false},
			{Time: "17:00", Available: true},
		},
	},
	{
		ID:      "clinic-chiba",
		Name:    "SBC Men's Flash 千葉駅前院",
		Address: "千葉県千葉市中央区新町1-2-3 千葉ビル3F",
		Station: "千葉",
		TodaySlots: []models.TimeSlot{
			{Time: "11:00", Available: true},
			{Time: "11:30", Available: true},
			{Time: "13:00", Available: true},
			{Time: "14:00", Available: false},
			{Time: "16:00", Available: true},
			{Time: "17:00", Available: false},
		},
	},
}

// Station-to-station travel minutes. Unknown pairs default to 60.
var travelTimeMap = map[string]map[string]int{
	"新宿":   {"新宿": 0, "池袋": 8, "渋谷": 5, "品川": 20, "上野": 25, "横浜": 35, "大宮": 35, "千葉": 45},
	"池袋":   {"新宿": 8, "池袋": 0, "渋谷": 15, "品川": 25, "上野": 18, "横浜": 40, "大宮": 25, "千葉": 50},
	"渋谷":   {"新宿": 5, "池袋": 15, "渋谷": 0, "品川": 15, "上野": 28, "横浜": 25, "大宮": 40, "千葉": 55},
	"品川":   {"新宿": 20, "池袋": 25, "渋谷": 15, "品川": 0, "上野": 22, "横浜": 18, "大宮": 45, "千葉": 35},
	"上野":   {"新宿": 25, "池袋": 18, "渋谷": 28, "品川": 22, "上野": 0, "横浜": 40, "大宮": 25, "千葉": 40},
	"横浜":   {"新宿": 35, "池袋": 40, "渋谷": 25, "品川": 18, "上野": 40, "横浜": 0, "大宮": 60, "千葉": 55},
	"大宮":   {"新宿": 35, "池袋": 25, "渋谷": 40, "品川": 45, "上野": 25, "横浜": 60, "大宮": 0, "千葉": 70},
	"千葉":   {"新宿": 45, "池袋": 50, "渋谷": 55, "品川": 35, "上野": 40, "横浜": 55, "大宮": 70, "千葉": 0},
	"東京":   {"新宿": 15, "池袋": 20, "渋谷": 20, "品川": 10, "上野": 8, "横浜": 25, "大宮": 30, "千葉": 35},
	"秋葉原":  {"新宿": 20, "池袋": 22, "渋谷": 25, "品川": 15, "上野": 5, "横浜": 35, "大宮": 35, "千葉": 35},
	"恵比寿":  {"新宿": 10, "池袋": 18, "渋谷": 3, "品川": 12, "上野": 30, "横浜": 22, "大宮": 42, "千葉": 50},
	"目黒":   {"新宿": 12, "池袋": 20, "渋谷": 5, "品川": 10, "上野": 30, "横浜": 20, "大宮": 45, "千葉": 45},
	"六本木":  {"新宿": 15, "池袋": 22, "渋谷": 10, "品川": 18, "上野": 28, "横浜": 30, "大宮": 45, "千葉": 50},
	"赤坂":   {"新宿": 18, "池袋": 25, "渋谷": 12, "品川": 15, "上野": 25, "横浜": 32, "大宮": 45, "千葉": 48},
	"錦糸町":  {"新宿": 28, "池袋": 30, "渋谷": 32, "品川": 22, "上野": 12, "横浜": 40, "大宮": 40, "千葉": 25},
	"船橋":   {"新宿": 40, "池袋": 45, "渋谷": 48, "品川": 30, "上野": 35, "横浜": 50, "大宮": 60, "千葉": 15},
	"川崎":   {"新宿": 25, "池袋": 32, "渋谷": 20, "品川": 8, "上野": 30, "横浜": 10, "大宮": 50, "千葉": 42},
	"武蔵小杉": {"新宿": 20, "池袋": 28, "渋谷": 12, "品川": 12, "上野": 35, "横浜": 12, "大宮": 48, "千葉": 45},
	"立川":   {"新宿": 30, "池袋": 38, "渋谷": 35, "品川": 45, "上野": 50, "横浜": 55, "大宮": 55, "千葉": 70},
	"吉祥寺":  {"新宿": 18, "池袋": 25, "渋谷": 20, "品川": 35, "上野": 40, "横浜": 45, "大宮": 45, "千葉": 60},
	"町田":   {"新宿": 35, "池袋": 45, "渋谷": 30, "品川": 35, "上野": 50, "横浜": 25, "大宮": 60, "千葉": 70},
}

const defaultTravelTime = 60

// TravelTime returns minutes between stations, 60 when the pair is unknown.
func TravelTime(fromStation, toStation string) int {
	if fromTimes, ok := travelTimeMap[fromStation]; ok {
		if t, ok := fromTimes[toStation]; ok {
			return t
		}
	}
	return defaultTravelTime
}
