// storage/chat.go
package storage

import "clinicflash-backend/models"

// MaxChatHistory caps the persisted chat log at the most recent entries.
const MaxChatHistory = 50

// ChatStore persists the conversation log under clinic_chat_history.
type ChatStore struct {
	kv KV
}

func NewChatStore(kv KV) *ChatStore {
	return &ChatStore{kv: kv}
}

// SaveHistory writes the log, keeping only the newest 50 messages.
func (s *ChatStore) SaveHistory(messages []models.ChatMessage) error {
	if len(messages) > MaxChatHistory {
		messages = messages[len(messages)-MaxChatHistory:]
	}
	return setJSON(s.kv, KeyChatHistory, messages)
}

func (s *ChatStore) LoadHistory() ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	ok, err := getJSON(s.kv, KeyChatHistory, &messages)
	if err != nil || !ok {
		return []models.ChatMessage{}, err
	}
	return messages, nil
}

// Append adds messages to the stored log and re-trims.
func (s *ChatStore) Append(messages ...models.ChatMessage) error {
	history, err := s.LoadHistory()
	if err != nil {
		return err
	}
	return s.SaveHistory(append(history, messages...))
}

func (s *ChatStore) ClearHistory() error {
	return s.kv.Delete(KeyChatHistory)
}
