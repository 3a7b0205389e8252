package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/services"
	"clinicflash-backend/storage"

	"github.com/gin-gonic/gin"
)

func newChatTestRouter(t *testing.T) (*gin.Engine, *storage.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := storage.NewMemoryKV()
	store := data.NewStore()
	sessions := storage.NewSessionStore(kv)
	ctl := &ChatController{
		Assistant: services.NewAssistant(store),
		Chat:      storage.NewChatStore(kv),
		Sessions:  sessions,
		Store:     store,
		Reminders: services.NewReminderService(nil, store, storage.NewSettingsStore(kv)),
	}

	r := gin.New()
	r.GET("/api/chat/init", ctl.Init)
	r.POST("/api/chat/messages", ctl.SendMessage)
	r.GET("/api/chat/history", ctl.GetHistory)
	r.DELETE("/api/chat/history", ctl.ClearHistory)
	return r, sessions
}

func chatInitMessages(t *testing.T, r *gin.Engine, path string) []models.ChatMessage {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp.Messages
}

func TestChatInitRequestsPatientNumber(t *testing.T) {
	r, _ := newChatTestRouter(t)

	messages := chatInitMessages(t, r, "/api/chat/init")
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].ID != "auth-request" || !messages[0].ShowPatientNumberInput {
		t.Errorf("unexpected opening message: %+v", messages[0])
	}
	if !strings.Contains(messages[0].Content, "診察券番号") {
		t.Errorf("content = %q", messages[0].Content)
	}
}

func TestChatInitGuestWelcome(t *testing.T) {
	r, _ := newChatTestRouter(t)

	messages := chatInitMessages(t, r, "/api/chat/init?guest=true")
	if len(messages) != 1 || messages[0].ID != "welcome-guest" {
		t.Fatalf("unexpected messages: %+v", messages)
	}
	if !strings.Contains(messages[0].Content, "初めてのご来院ですね") {
		t.Errorf("content = %q", messages[0].Content)
	}
	if len(messages[0].QuickReplies) != 3 {
		t.Errorf("quick replies = %v", messages[0].QuickReplies)
	}
}

func TestChatInitAuthenticatedWelcome(t *testing.T) {
	r, sessions := newChatTestRouter(t)

	if _, err := sessions.Create("cust-001", "SBC-123456", "SBC太郎"); err != nil {
		t.Fatal(err)
	}

	messages := chatInitMessages(t, r, "/api/chat/init")
	if len(messages) == 0 || messages[0].ID != "welcome-auth" {
		t.Fatalf("unexpected messages: %+v", messages)
	}
	if !strings.Contains(messages[0].Content, "SBC太郎様") {
		t.Errorf("content = %q", messages[0].Content)
	}
	if !strings.Contains(messages[0].Content, "未消化のコース") {
		t.Errorf("unused course count missing: %q", messages[0].Content)
	}

	// course-001 last ran 2024-10-20, well past the 90 day default, so
	// the nudge rides along with the welcome.
	if len(messages) != 2 {
		t.Fatalf("expected welcome plus reminder, got %d messages", len(messages))
	}
	if !messages[1].IsReminder || !strings.Contains(messages[1].Content, "残り2回") {
		t.Errorf("unexpected reminder message: %+v", messages[1])
	}
}

func TestSendMessagePersistsBothTurns(t *testing.T) {
	r, _ := newChatTestRouter(t)

	w := postJSON(t, r, "/api/chat/messages", gin.H{"content": "営業時間を教えて"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		UserMessage      models.ChatMessage `json:"userMessage"`
		AssistantMessage models.ChatMessage `json:"assistantMessage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.UserMessage.Role != models.RoleUser {
		t.Errorf("user role = %q", resp.UserMessage.Role)
	}
	if !strings.Contains(resp.AssistantMessage.Content, "営業時間") {
		t.Errorf("assistant content = %q", resp.AssistantMessage.Content)
	}

	hw := httptest.NewRecorder()
	r.ServeHTTP(hw, httptest.NewRequest(http.MethodGet, "/api/chat/history", nil))
	var hist struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	if err := json.Unmarshal(hw.Body.Bytes(), &hist); err != nil {
		t.Fatal(err)
	}
	if len(hist.Messages) != 2 {
		t.Errorf("history length = %d, want 2", len(hist.Messages))
	}

	dw := httptest.NewRecorder()
	r.ServeHTTP(dw, httptest.NewRequest(http.MethodDelete, "/api/chat/history", nil))
	if dw.Code != http.StatusOK {
		t.Fatalf("clear = %d", dw.Code)
	}
}
