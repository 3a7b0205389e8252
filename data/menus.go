// data/menus.go
package data

import (
	"fmt"
	"sort"
	"strings"

	"clinicflash-backend/models"
)

// Treatment areas.
const (
	AreaThree      = "three"       // 三部位（鼻下・アゴ・アゴ下）
	AreaCheek      = "cheek"       // もみあげ・頬
	AreaNeck       = "neck"        // 首
	AreaThreeCheek = "three_cheek" // 三部位 + もみあげ・頬
	AreaThreeNeck  = "three_neck"  // 三部位 + 首
	AreaCheekNeck  = "cheek_neck"  // もみあげ・頬 + 首
	AreaAll        = "all"         // 全部位
)

// AreaOrder fixes menu and price-list ordering.
var AreaOrder = []string{AreaThree, AreaCheek, AreaNeck, AreaThreeCheek, AreaThreeNeck, AreaCheekNeck, AreaAll}

var AreaLabels = map[string]string{
	AreaThree:      "三部位（鼻下・アゴ・アゴ下）",
	AreaCheek:      "もみあげ・頬",
	AreaNeck:       "首",
	AreaThreeCheek: "三部位 + もみあげ・頬",
	AreaThreeNeck:  "三部位 + 首",
	AreaCheekNeck:  "もみあげ・頬 + 首",
	AreaAll:        "全部位",
}

// 料金表（税込）
var PriceTable = map[string]map[int]int{
	AreaThree:      {1: 9800, 3: 26400, 6: 48000},
	AreaCheek:      {1: 8800, 3: 23400, 6: 42000},
	AreaNeck:       {1: 6800, 3: 18000, 6: 32400},
	AreaThreeCheek: {1: 16800, 3: 45000, 6: 81000},
	AreaThreeNeck:  {1: 14800, 3: 39600, 6: 72000},
	AreaCheekNeck:  {1: 13800, 3: 36900, 6: 66600},
	AreaAll:        {1: 19800, 3: 53400, 6: 96000},
}

// 施術時間（分）
var durationTable = map[string]int{
	AreaThree:      20,
	AreaCheek:      15,
	AreaNeck:       10,
	AreaThreeCheek: 30,
	AreaThreeNeck:  25,
	AreaCheekNeck:  20,
	AreaAll:        35,
}

const AnesthesiaPrice = 3000

var areaDescriptions = map[string]string{
	AreaThree:      "鼻下・アゴ・アゴ下の基本3部位。最も人気のエリアです。",
	AreaCheek:      "もみあげから頬にかけてのエリア。顔全体をスッキリ見せます。",
	AreaNeck:       "首周りのヒゲを処理。襟元の清潔感がアップします。",
	AreaThreeCheek: "三部位に加え、もみあげ・頬もカバー。広範囲をケア。",
	AreaThreeNeck:  "三部位と首を同時に施術。首元までスッキリ。",
	AreaCheekNeck:  "もみあげ・頬と首のセット。サイドから首までケア。",
	AreaAll:        "顔全体のヒゲを徹底的に脱毛。最もお得なフルセット。",
}

func menuDescription(area string, course int) string {
	var courseDesc string
	switch course {
	case 1:
		courseDesc = "お試しにおすすめ。"
	case 3:
		courseDesc = "効果を実感できる回数。"
	default:
		courseDesc = "しっかり効果を出したい方に。1回あたり最安値。"
	}
	return areaDescriptions[area] + " " + courseDesc
}

func generateMenus() []models.TreatmentMenu {
	var menus []models.TreatmentMenu

	for _, area := range AreaOrder {
		for _, course := range []int{1, 3, 6} {
			courseLabel := "1回"
			priceNote := ""
			if course > 1 {
				courseLabel = fmt.Sprintf("%d回コース", course)
				priceNote = fmt.Sprintf("%d回分総額", course)
			}
			isPopular := (area == AreaThree || area == AreaAll) && course == 6

			menus = append(menus, models.TreatmentMenu{
				ID:          fmt.Sprintf("beard-%s-%d", area, course),
				Name:        fmt.Sprintf("ヒゲ脱毛 %s %s", AreaLabels[area], courseLabel),
				Category:    models.CategoryBeard,
				Description: menuDescription(area, course),
				Duration:    durationTable[area],
				Price:       PriceTable[area][course],
				PriceNote:   priceNote,
				IsPopular:   isPopular,
			})
		}
	}

	// 麻酔オプション
	menus = append(menus, models.TreatmentMenu{
		ID:          "option-anesthesia",
		Name:        "強力麻酔クリーム",
		Category:    models.CategoryOption,
		Description: "痛みを大幅に軽減する麻酔クリームです。施術の30分前に塗布します。",
		Duration:    0,
		Price:       AnesthesiaPrice,
		PriceNote:   "1回あたり",
	})

	// カウンセリング
	menus = append(menus, models.TreatmentMenu{
		ID:          "cons-001",
		Name:        "無料カウンセリング",
		Category:    models.CategoryConsultation,
		Description: "肌質やヒゲの状態を確認し、最適なプランをご提案します。",
		Duration:    30,
		Price:       0,
		PriceNote:   "無料",
	})

	return menus
}

var TreatmentMenus = generateMenus()

var CategoryLabels = map[models.TreatmentCategory]string{
	models.CategoryBeard:        "ヒゲ脱毛",
	models.CategoryOption:       "オプション",
	models.CategoryConsultation: "カウンセリング",
}

func PopularMenus() []models.TreatmentMenu {
	var out []models.TreatmentMenu
	for _, m := range TreatmentMenus {
		if m.IsPopular {
			out = append(out, m)
		}
	}
	return out
}

func MenuByID(id string) (models.TreatmentMenu, bool) {
	for _, m := range TreatmentMenus {
		if m.ID == id {
			return m, true
		}
	}
	return models.TreatmentMenu{}, false
}

func MenusByCategory(category models.TreatmentCategory) []models.TreatmentMenu {
	var out []models.TreatmentMenu
	for _, m := range TreatmentMenus {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

func BeardMenus() []models.TreatmentMenu {
	return MenusByCategory(models.CategoryBeard)
}

func FindMenuByKeyword(keyword string) (models.TreatmentMenu, bool) {
	lower := strings.ToLower(keyword)
	for _, m := range TreatmentMenus {
		if strings.Contains(strings.ToLower(m.Name), lower) ||
			strings.Contains(strings.ToLower(m.Description), lower) {
			return m, true
		}
	}
	return models.TreatmentMenu{}, false
}

// FormatPrice renders a tax-included price with a thousands separator,
// e.g. "¥9,800" or "¥26,400（3回分総額）". Zero yen shows the note or 無料.
func FormatPrice(price int, note string) string {
	if price == 0 {
		if note != "" {
			return note
		}
		return "無料"
	}
	formatted := formatYen(price)
	if note != "" {
		return fmt.Sprintf("¥%s（%s）", formatted, note)
	}
	return "¥" + formatted
}

func formatYen(n int) string {
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}

// PriceListByArea returns course/price rows for one area in course order.
func PriceListByArea(area string) []struct {
	Course int `json:"course"`
	Price  int `json:"price"`
} {
	prices, ok := PriceTable[area]
	if !ok {
		return nil
	}
	courses := make([]int, 0, len(prices))
	for c := range prices {
		courses = append(courses, c)
	}
	sort.Ints(courses)
	out := make([]struct {
		Course int `json:"course"`
		Price  int `json:"price"`
	}, 0, len(courses))
	for _, c := range courses {
		out = append(out, struct {
			Course int `json:"course"`
			Price  int `json:"price"`
		}{c, prices[c]})
	}
	return out
}

// PriceListText builds the full price table shown by the assistant.
func PriceListText() string {
	lines := []string{"【ヒゲ脱毛 料金表】"}

	for _, area := range AreaOrder {
		prices := PriceTable[area]
		var priceParts []string
		for _, c := range []int{1, 3, 6} {
			priceParts = append(priceParts, fmt.Sprintf("%d回:¥%s", c, formatYen(prices[c])))
		}
		lines = append(lines, AreaLabels[area])
		lines = append(lines, "  "+strings.Join(priceParts, " / "))
	}

	lines = append(lines, "")
	lines = append(lines, "※強力麻酔クリーム：+¥3,000/回")

	return strings.Join(lines, "\n")
}
