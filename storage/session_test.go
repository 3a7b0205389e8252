package storage

import (
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	store := NewSessionStore(NewMemoryKV())

	if store.IsAuthenticated() {
		t.Fatal("fresh store should not be authenticated")
	}

	session, err := store.Create("cust-001", "SBC-123456", "SBC太郎")
	if err != nil {
		t.Fatal(err)
	}
	if !session.IsAuthenticated {
		t.Error("created session not flagged authenticated")
	}

	loaded, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("load failed: ok=%v err=%v", ok, err)
	}
	if loaded.CustomerID != "cust-001" || loaded.PatientNumber != "SBC-123456" {
		t.Errorf("unexpected session: %+v", loaded)
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Error("session survived clear")
	}
}

func TestSessionExpiresAfter24Hours(t *testing.T) {
	store := NewSessionStore(NewMemoryKV())

	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return created }
	if _, err := store.Create("cust-001", "SBC-123456", "SBC太郎"); err != nil {
		t.Fatal(err)
	}

	// 23 hours later the session still loads.
	store.now = func() time.Time { return created.Add(23 * time.Hour) }
	if _, ok, _ := store.Load(); !ok {
		t.Fatal("session expired too early")
	}

	// 25 hours later it is gone and the record is cleared.
	store.now = func() time.Time { return created.Add(25 * time.Hour) }
	if _, ok, _ := store.Load(); ok {
		t.Fatal("session should be expired")
	}
	if _, found, _ := store.kv.Get(KeyCustomerSession); found {
		t.Error("expired session not cleared from storage")
	}
}

func TestRememberedPatientNumber(t *testing.T) {
	store := NewSessionStore(NewMemoryKV())

	if _, ok, _ := store.LoadRememberedPatientNumber(); ok {
		t.Fatal("nothing should be remembered initially")
	}

	if err := store.SaveRememberedPatientNumber("SBC-123456"); err != nil {
		t.Fatal(err)
	}
	number, ok, err := store.LoadRememberedPatientNumber()
	if err != nil || !ok {
		t.Fatalf("load failed: ok=%v err=%v", ok, err)
	}
	if number != "SBC-123456" {
		t.Errorf("remembered number = %q", number)
	}

	if err := store.ClearRememberedPatientNumber(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.LoadRememberedPatientNumber(); ok {
		t.Error("number survived clear")
	}
}
