package storage

import (
	"fmt"
	"testing"

	"clinicflash-backend/models"
)

func TestChatHistoryTrimsToCap(t *testing.T) {
	store := NewChatStore(NewMemoryKV())

	var messages []models.ChatMessage
	for i := 0; i < 70; i++ {
		messages = append(messages, models.ChatMessage{
			ID:      fmt.Sprintf("msg-%d", i),
			Role:    models.RoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
	}
	if err := store.SaveHistory(messages); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != MaxChatHistory {
		t.Fatalf("history length = %d, want %d", len(loaded), MaxChatHistory)
	}
	// The newest messages survive.
	if loaded[0].ID != "msg-20" || loaded[len(loaded)-1].ID != "msg-69" {
		t.Errorf("wrong window kept: first=%s last=%s", loaded[0].ID, loaded[len(loaded)-1].ID)
	}
}

func TestChatHistoryEmptyByDefault(t *testing.T) {
	store := NewChatStore(NewMemoryKV())
	loaded, err := store.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty history, got %d messages", len(loaded))
	}
}

func TestChatAppendAndClear(t *testing.T) {
	store := NewChatStore(NewMemoryKV())

	if err := store.Append(models.ChatMessage{ID: "a"}, models.ChatMessage{ID: "b"}); err != nil {
		t.Fatal(err)
	}
	loaded, _ := store.LoadHistory()
	if len(loaded) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(loaded))
	}

	if err := store.ClearHistory(); err != nil {
		t.Fatal(err)
	}
	loaded, _ = store.LoadHistory()
	if len(loaded) != 0 {
		t.Errorf("expected cleared history, got %d messages", len(loaded))
	}
}
