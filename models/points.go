package models

// PointTransactionType is the kind of a ledger entry.
type PointTransactionType string

const (
	PointEarn   PointTransactionType = "earn"
	PointUse    PointTransactionType = "use"
	PointExpire PointTransactionType = "expire"
)

// PointTransaction is one append-only ledger entry.
type PointTransaction struct {
	ID          string               `json:"id"`
	Type        PointTransactionType `json:"type"`
	Points      int                  `json:"points"`
	Description string               `json:"description"`
	CreatedAt   string               `json:"createdAt"`
}

// ExpiringPoints is a tranche of points with an expiry date.
type ExpiringPoints struct {
	Points     int    `json:"points"`
	ExpiryDate string `json:"expiryDate"`
}

// CustomerPoints holds the running balance plus the transaction history.
// CurrentPoints must equal TotalEarned - TotalUsed; mutations go through the
// storage layer which re-checks that invariant against the ledger.
type CustomerPoints struct {
	CustomerID     string             `json:"customerId"`
	CurrentPoints  int                `json:"currentPoints"`
	TotalEarned    int                `json:"totalEarned"`
	TotalUsed      int                `json:"totalUsed"`
	ExpiringPoints []ExpiringPoints   `json:"expiringPoints"`
	History        []PointTransaction `json:"history"`
}

// DiscountType distinguishes percentage from fixed-amount coupons.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Coupon is one redeemable discount.
type Coupon struct {
	ID              string       `json:"id"`
	Code            string       `json:"code"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	DiscountType    DiscountType `json:"discountType"`
	DiscountValue   int          `json:"discountValue"`
	MinPurchase     int          `json:"minPurchase,omitempty"`
	ExpiryDate      string       `json:"expiryDate"`
	IsUsed          bool         `json:"isUsed"`
	Conditions      string       `json:"conditions,omitempty"`
	ApplicableMenus []string     `json:"applicableMenus,omitempty"`
}

// ReferralStatus tracks whether a referred friend has visited yet.
type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralCompleted ReferralStatus = "completed"
)

// ReferralRecord is one referred friend.
type ReferralRecord struct {
	ID                   string         `json:"id"`
	ReferredCustomerID   string         `json:"referredCustomerId"`
	ReferredCustomerName string         `json:"referredCustomerName"`
	ReferredAt           string         `json:"referredAt"`
	PointsEarned         int            `json:"pointsEarned"`
	Status               ReferralStatus `json:"status"`
}

// ReferralProgram is one customer's referral state.
type ReferralProgram struct {
	CustomerID    string           `json:"customerId"`
	ReferralCode  string           `json:"referralCode"`
	ReferredCount int              `json:"referredCount"`
	EarnedPoints  int              `json:"earnedPoints"`
	Referrals     []ReferralRecord `json:"referrals"`
}

// Points program constants.
const (
	PointsPerVisit      = 100
	PointValueYen       = 1
	PointsExpiryMonths  = 12
	ReferralBonusPoints = 500
	RefereeBonusPoints  = 300
)

// DefaultCustomerPoints returns the empty points record for a customer with
// no dummy data and nothing stored yet.
func DefaultCustomerPoints(customerID string) CustomerPoints {
	return CustomerPoints{
		CustomerID:     customerID,
		ExpiringPoints: []ExpiringPoints{},
		History:        []PointTransaction{},
	}
}

// DefaultReferralProgram returns an empty referral record.
func DefaultReferralProgram(customerID, code string) ReferralProgram {
	return ReferralProgram{
		CustomerID:   customerID,
		ReferralCode: code,
		Referrals:    []ReferralRecord{},
	}
}
