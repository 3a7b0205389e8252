// data/faq.go
package data

import "strings"

// FAQItem is one question/answer pair searched by keyword.
type FAQItem struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

var FAQData = []FAQItem{
	{
		ID:       "faq-001",
		Question: "施術は痛いですか？",
		Answer:   "輪ゴムで弾かれる程度の痛みと表現される方が多いです。痛みが心配な方には強力麻酔クリーム（+¥3,000/回）をご用意しております。施術の30分前に塗布することで痛みを大幅に軽減できます。",
		Keywords: []string{"痛い", "いたい", "痛そう"},
	},
	{
		ID:       "faq-002",
		Question: "予約のキャンセルはできますか？",
		Answer:   "前日までのご連絡であればキャンセル料はかかりません。当日キャンセルの場合はコース1回分の消化、または施術料金の50%を頂戴いたします。このチャットまたはお電話でご連絡ください。",
		Keywords: []string{"キャンセル", "きゃんせる", "やめたい", "変更したい"},
	},
	{
		ID:       "faq-003",
		Question: "支払い方法は何がありますか？",
		Answer:   "現金、各種クレジットカード、QRコード決済（PayPay・LINE Pay）、医療ローンがご利用いただけます。コースは分割払いも可能です。オンライン決済にも対応しております。",
		Keywords: []string{"支払い", "支払", "クレジット", "カード", "分割", "ローン"},
	},
	{
		ID:       "faq-004",
		Question: "施術前に髭を剃ってくるべきですか？",
		Answer:   "施術前日の夜または当日の朝に髭剃りをお願いしております。剃り残しがある場合は当院でシェービングいたします（無料）。毛抜きでの処理は2週間前からお控えください。",
		Keywords: []string{"剃って", "剃る", "シェービング", "毛抜き"},
	},
	{
		ID:       "faq-005",
		Question: "日焼けしていても施術できますか？",
		Answer:   "強い日焼け直後は施術をお断りする場合があります。レーザーが黒い色素に反応するため、火傷のリスクが高まるためです。日焼けから2週間以上あけてのご来院をおすすめします。",
		Keywords: []string{"日焼け", "ひやけ"},
	},
	{
		ID:       "faq-006",
		Question: "施術後に気をつけることはありますか？",
		Answer:   "施術当日は激しい運動・飲酒・長時間の入浴をお控えください。また施術後1週間は日焼けに注意し、化粧水などでしっかり保湿してください。赤みやほてりは数時間〜1日程度で落ち着きます。",
		Keywords: []string{"施術後", "アフターケア", "ダウンタイム", "赤み", "腫れ"},
	},
	{
		ID:       "faq-007",
		Question: "未成年でも施術を受けられますか？",
		Answer:   "18歳以上の方は保護者の同意書があればご契約いただけます。20歳以上の方は同意書不要です。同意書は公式サイトからダウンロードいただけます。",
		Keywords: []string{"未成年", "高校生", "同意書", "何歳"},
	},
	{
		ID:       "faq-008",
		Question: "女性スタッフに見られるのが恥ずかしいのですが",
		Answer:   "当院は男性専門クリニックのため、ご来院されるのは男性のお客様のみです。施術は男性看護師をご指名いただくことも可能ですので、ご予約時にお申し付けください。",
		Keywords: []string{"恥ずかしい", "女性スタッフ", "男性スタッフ", "指名"},
	},
}

// FindFAQByKeyword returns the first FAQ whose keyword appears in the
// input. Matching is case-insensitive substring containment.
func FindFAQByKeyword(input string) (FAQItem, bool) {
	lower := strings.ToLower(input)
	for _, faq := range FAQData {
		for _, kw := range faq.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return faq, true
			}
		}
	}
	return FAQItem{}, false
}
