package storage

import (
	"strings"
	"testing"
	"time"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
)

func newTestPointsStore() *PointsStore {
	store := NewPointsStore(NewMemoryKV(), data.NewStore())
	tick := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return store
}

func TestLoadPointsPrefersSeeds(t *testing.T) {
	store := newTestPointsStore()

	points, err := store.LoadPoints("cust-001")
	if err != nil {
		t.Fatal(err)
	}
	if points.CurrentPoints == 0 || len(points.History) == 0 {
		t.Errorf("seeded customer should have points: %+v", points)
	}

	fresh, err := store.LoadPoints("cust-999")
	if err != nil {
		t.Fatal(err)
	}
	if fresh.CurrentPoints != 0 || fresh.TotalEarned != 0 {
		t.Errorf("unknown customer should start empty: %+v", fresh)
	}
}

func TestSavePointsRejectsLedgerDrift(t *testing.T) {
	store := newTestPointsStore()

	bad := models.CustomerPoints{
		CustomerID:    "cust-999",
		CurrentPoints: 500, // ledger says otherwise
		TotalEarned:   100,
		TotalUsed:     0,
		History: []models.PointTransaction{
			{ID: "pt-x", Type: models.PointEarn, Points: 100},
		},
	}
	err := store.SavePoints(bad)
	if err == nil {
		t.Fatal("expected balance mismatch error")
	}
	if !strings.Contains(err.Error(), "ledger") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEarnAndUsePoints(t *testing.T) {
	store := newTestPointsStore()

	if err := store.EarnPoints("cust-999", 300, "ご来院ポイント"); err != nil {
		t.Fatal(err)
	}
	points, _ := store.LoadPoints("cust-999")
	if points.CurrentPoints != 300 || points.TotalEarned != 300 {
		t.Fatalf("after earn: %+v", points)
	}
	if len(points.ExpiringPoints) != 1 {
		t.Fatalf("expected one expiring tranche, got %d", len(points.ExpiringPoints))
	}

	ok, err := store.UsePoints("cust-999", 100, "ポイント利用")
	if err != nil || !ok {
		t.Fatalf("use failed: ok=%v err=%v", ok, err)
	}
	points, _ = store.LoadPoints("cust-999")
	if points.CurrentPoints != 200 || points.TotalUsed != 100 {
		t.Fatalf("after use: %+v", points)
	}
	// Newest transaction first.
	if points.History[0].Type != models.PointUse {
		t.Errorf("latest transaction = %s, want use", points.History[0].Type)
	}
}

func TestUsePointsInsufficientBalance(t *testing.T) {
	store := newTestPointsStore()

	ok, err := store.UsePoints("cust-999", 50, "ポイント利用")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("use should fail with zero balance")
	}
}

func TestCouponSingleUse(t *testing.T) {
	store := newTestPointsStore()

	coupons, err := store.LoadCoupons("cust-001")
	if err != nil {
		t.Fatal(err)
	}
	if len(coupons) == 0 {
		t.Fatal("seeded customer should own coupons")
	}
	target := coupons[0].ID

	ok, err := store.UseCoupon("cust-001", target)
	if err != nil || !ok {
		t.Fatalf("first use failed: ok=%v err=%v", ok, err)
	}

	ok, err = store.UseCoupon("cust-001", target)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("second use should be rejected")
	}

	remaining, _ := store.LoadCoupons("cust-001")
	for _, c := range remaining {
		if c.ID == target {
			t.Error("used coupon still listed")
		}
	}
}

func TestReferralCodeGeneration(t *testing.T) {
	store := newTestPointsStore()

	seeded := store.LoadReferral("cust-001")
	if seeded.ReferralCode == "" {
		t.Error("seeded referral should carry a code")
	}

	minted := store.LoadReferral("cust-999")
	if !strings.HasPrefix(minted.ReferralCode, "SBC-999-") {
		t.Errorf("minted code = %q", minted.ReferralCode)
	}
}
