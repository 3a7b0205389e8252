package storage

import (
	"fmt"
	"testing"
	"time"
)

func newTestPhraseStore() *PhraseStore {
	store := NewPhraseStore(NewMemoryKV())
	tick := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return store
}

func TestPhrasesStartWithDefaults(t *testing.T) {
	store := newTestPhraseStore()

	phrases, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(phrases) != 5 {
		t.Fatalf("expected 5 default phrases, got %d", len(phrases))
	}
	if phrases[0].Text != "予約したいです" {
		t.Errorf("first default = %q", phrases[0].Text)
	}
}

func TestSaveDuplicateBumpsUsage(t *testing.T) {
	store := newTestPhraseStore()

	first, err := store.Save("よろしくお願いします")
	if err != nil {
		t.Fatal(err)
	}
	if first.UsageCount != 1 {
		t.Errorf("new phrase usage = %d, want 1", first.UsageCount)
	}

	second, err := store.Save("よろしくお願いします")
	if err != nil {
		t.Fatal(err)
	}
	if second.UsageCount != 2 {
		t.Errorf("duplicate usage = %d, want 2", second.UsageCount)
	}
	if second.ID != first.ID {
		t.Error("duplicate save created a new phrase")
	}

	phrases, _ := store.Load()
	if len(phrases) != 6 {
		t.Errorf("expected 6 phrases, got %d", len(phrases))
	}
}

func TestPhraseCapEvictsLeastUsed(t *testing.T) {
	store := newTestPhraseStore()

	// Make one phrase heavily used so it survives eviction.
	if _, err := store.Save("大事なフレーズ"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if _, err := store.Save("大事なフレーズ"); err != nil {
			t.Fatal(err)
		}
	}

	// Fill past the cap with one-shot phrases. A fresh save sorts ahead
	// of equal-usage entries, so it always survives its own eviction.
	for i := 0; i < 8; i++ {
		if _, err := store.Save(fmt.Sprintf("その場のフレーズ%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	phrases, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(phrases) != MaxSavedPhrases {
		t.Fatalf("expected %d phrases after eviction, got %d", MaxSavedPhrases, len(phrases))
	}

	found := false
	for _, p := range phrases {
		if p.Text == "大事なフレーズ" {
			found = true
			break
		}
	}
	if !found {
		t.Error("heavily used phrase was evicted")
	}
}

func TestIncrementUsageAndOrder(t *testing.T) {
	store := newTestPhraseStore()

	phrases, _ := store.Load()
	target := phrases[len(phrases)-1]
	for i := 0; i < 3; i++ {
		if err := store.IncrementUsage(target.ID); err != nil {
			t.Fatal(err)
		}
	}

	ordered, err := store.OrderedByUsage()
	if err != nil {
		t.Fatal(err)
	}
	if ordered[0].ID != target.ID {
		t.Errorf("most used phrase not first: got %s", ordered[0].Text)
	}
}

func TestDeleteAndReset(t *testing.T) {
	store := newTestPhraseStore()

	phrases, _ := store.Load()
	if err := store.Delete(phrases[0].ID); err != nil {
		t.Fatal(err)
	}
	after, _ := store.Load()
	if len(after) != len(phrases)-1 {
		t.Errorf("delete left %d phrases, want %d", len(after), len(phrases)-1)
	}

	if err := store.Reset(); err != nil {
		t.Fatal(err)
	}
	reset, _ := store.Load()
	if len(reset) != 5 {
		t.Errorf("reset left %d phrases, want 5 defaults", len(reset))
	}
}
