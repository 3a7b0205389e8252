// storage/points.go
package storage

import (
	"fmt"
	"strings"
	"time"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
)

// PointsStore layers mutable point/coupon/referral state over the
// seeded dataset. Seeded customers read from the dataset; everyone else
// starts from the stored (or empty) record.
type PointsStore struct {
	kv    KV
	store *data.Store
	now   func() time.Time
}

func NewPointsStore(kv KV, store *data.Store) *PointsStore {
	return &PointsStore{kv: kv, store: store, now: time.Now}
}

// ========== ポイント ==========

// LoadPoints returns the customer's points record, preferring the seeded
// dataset, then stored state, then an empty record.
func (s *PointsStore) LoadPoints(customerID string) (models.CustomerPoints, error) {
	if seeded, ok := s.store.CustomerPoints(customerID); ok {
		return seeded, nil
	}

	all, err := s.loadStoredPoints()
	if err != nil {
		return models.CustomerPoints{}, err
	}
	if p, ok := all[customerID]; ok {
		return p, nil
	}
	return models.DefaultCustomerPoints(customerID), nil
}

func (s *PointsStore) loadStoredPoints() (map[string]models.CustomerPoints, error) {
	all := make(map[string]models.CustomerPoints)
	if _, err := getJSON(s.kv, KeyCustomerPoints, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// SavePoints validates the balance against the ledger before writing.
func (s *PointsStore) SavePoints(points models.CustomerPoints) error {
	if err := checkBalance(points); err != nil {
		return err
	}
	all, err := s.loadStoredPoints()
	if err != nil {
		return err
	}
	all[points.CustomerID] = points
	return setJSON(s.kv, KeyCustomerPoints, all)
}

// checkBalance folds the ledger and compares it with the running totals.
func checkBalance(points models.CustomerPoints) error {
	earned, used := 0, 0
	for _, tx := range points.History {
		switch tx.Type {
		case models.PointEarn:
			earned += tx.Points
		case models.PointUse, models.PointExpire:
			used += tx.Points
		}
	}
	if points.CurrentPoints != earned-used {
		return fmt.Errorf("points balance %d does not match ledger (earned %d, used %d)",
			points.CurrentPoints, earned, used)
	}
	if points.TotalEarned != earned || points.TotalUsed != used {
		return fmt.Errorf("points totals do not match ledger")
	}
	return nil
}

// UsePoints deducts points, appending a ledger entry. Insufficient
// balance returns false.
func (s *PointsStore) UsePoints(customerID string, points int, description string) (bool, error) {
	record, err := s.LoadPoints(customerID)
	if err != nil {
		return false, err
	}
	if record.CurrentPoints < points {
		return false, nil
	}

	record.CurrentPoints -= points
	record.TotalUsed += points
	record.History = append([]models.PointTransaction{{
		ID:          fmt.Sprintf("pt-%d", s.now().UnixMilli()),
		Type:        models.PointUse,
		Points:      points,
		Description: description,
		CreatedAt:   s.now().Format(time.RFC3339),
	}}, record.History...)

	if err := s.SavePoints(record); err != nil {
		return false, err
	}
	return true, nil
}

// EarnPoints credits points with a 12-month expiring tranche.
func (s *PointsStore) EarnPoints(customerID string, points int, description string) error {
	record, err := s.LoadPoints(customerID)
	if err != nil {
		return err
	}

	record.CurrentPoints += points
	record.TotalEarned += points
	record.History = append([]models.PointTransaction{{
		ID:          fmt.Sprintf("pt-%d", s.now().UnixMilli()),
		Type:        models.PointEarn,
		Points:      points,
		Description: description,
		CreatedAt:   s.now().Format(time.RFC3339),
	}}, record.History...)

	expiry := s.now().AddDate(0, models.PointsExpiryMonths, 0)
	record.ExpiringPoints = append(record.ExpiringPoints, models.ExpiringPoints{
		Points:     points,
		ExpiryDate: expiry.Format("2006-01-02"),
	})

	return s.SavePoints(record)
}

// ExpiringWarning surfaces the first tranche expiring within 30 days.
func (s *PointsStore) ExpiringWarning(customerID string) (models.ExpiringPoints, bool) {
	return s.store.ExpiringPointsWarning(customerID, s.now())
}

// ========== クーポン ==========

// LoadCoupons filters the customer's coupons down to unused ones.
func (s *PointsStore) LoadCoupons(customerID string) ([]models.Coupon, error) {
	coupons := s.store.CustomerCoupons(customerID)
	used, err := s.loadUsedCoupons()
	if err != nil {
		return nil, err
	}
	usedSet := make(map[string]bool)
	for _, id := range used[customerID] {
		usedSet[id] = true
	}
	kept := coupons[:0]
	for _, c := range coupons {
		if !usedSet[c.ID] {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

func (s *PointsStore) loadUsedCoupons() (map[string][]string, error) {
	used := make(map[string][]string)
	if _, err := getJSON(s.kv, KeyCouponsUsed, &used); err != nil {
		return nil, err
	}
	return used, nil
}

// UseCoupon marks a coupon consumed; a second use returns false.
func (s *PointsStore) UseCoupon(customerID, couponID string) (bool, error) {
	used, err := s.loadUsedCoupons()
	if err != nil {
		return false, err
	}
	for _, id := range used[customerID] {
		if id == couponID {
			return false, nil
		}
	}
	used[customerID] = append(used[customerID], couponID)
	if err := setJSON(s.kv, KeyCouponsUsed, used); err != nil {
		return false, err
	}
	return true, nil
}

func (s *PointsStore) IsCouponUsed(customerID, couponID string) (bool, error) {
	used, err := s.loadUsedCoupons()
	if err != nil {
		return false, err
	}
	for _, id := range used[customerID] {
		if id == couponID {
			return true, nil
		}
	}
	return false, nil
}

// ========== 友達紹介 ==========

// LoadReferral returns the seeded program or mints one with a fresh
// referral code.
func (s *PointsStore) LoadReferral(customerID string) models.ReferralProgram {
	if seeded, ok := s.store.CustomerReferral(customerID); ok {
		return seeded
	}
	return models.DefaultReferralProgram(customerID, s.GenerateReferralCode(customerID))
}

// GenerateReferralCode builds SBC-<customer>-<base36 time suffix>.
func (s *PointsStore) GenerateReferralCode(customerID string) string {
	prefix := strings.ToUpper(strings.TrimPrefix(customerID, "cust-"))
	ts := strings.ToUpper(formatBase36(s.now().UnixMilli()))
	if len(ts) > 4 {
		ts = ts[len(ts)-4:]
	}
	return fmt.Sprintf("SBC-%s-%s", prefix, ts)
}

func formatBase36(n int64) string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	if n == 0 {
		return "0"
	}
	var out []byte
	for n > 0 {
		out = append([]byte{digits[n%36]}, out...)
		n /= 36
	}
	return string(out)
}
