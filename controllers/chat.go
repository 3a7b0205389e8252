package controllers

import (
	"fmt"
	"net/http"
	"time"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/services"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Assistant *services.Assistant
	Chat      *storage.ChatStore
	Sessions  *storage.SessionStore
	Store     *data.Store
	Reminders *services.ReminderService
}

type SendMessageInput struct {
	Content string `json:"content" binding:"required"`
}

type ParseIntentInput struct {
	Content string `json:"content" binding:"required"`
}

// Init builds the opening messages for a fresh chat: the patient-number
// prompt for anonymous visitors, the personalized welcome plus any
// pending course reminder for an authenticated session.
func (ctl *ChatController) Init(c *gin.Context) {
	session, authenticated, err := ctl.Sessions.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load session")
		return
	}

	guest := c.Query("guest") == "true"

	var messages []models.ChatMessage
	switch {
	case authenticated:
		messages = append(messages, ctl.authenticatedWelcome(session))
		if reminder, ok := ctl.Reminders.PendingCourseReminder(session.CustomerID); ok {
			messages = append(messages, models.ChatMessage{
				ID:           fmt.Sprintf("reminder-%s", reminder.CourseID),
				Role:         models.RoleAssistant,
				Content:      reminder.Message,
				Timestamp:    time.Now().Format(time.RFC3339),
				QuickReplies: services.ReminderQuickReplies(),
				IsReminder:   true,
			})
		}
	case guest:
		messages = append(messages, models.ChatMessage{
			ID:   "welcome-guest",
			Role: models.RoleAssistant,
			Content: fmt.Sprintf(`%sの予約アシスタントです。

初めてのご来院ですね！
男性専門のヒゲ脱毛クリニックです。

ご予約や料金について、お気軽にお尋ねください！`, data.ClinicInfo.Name),
			Timestamp:    time.Now().Format(time.RFC3339),
			QuickReplies: []string{"三部位の料金は？", "痛みはある？", "カウンセリング予約"},
		})
	default:
		messages = append(messages, models.ChatMessage{
			ID:   "auth-request",
			Role: models.RoleAssistant,
			Content: fmt.Sprintf(`こんにちは！%sの予約アシスタントです。

お客様情報を確認させていただきます。
診察券番号をご入力ください。`, data.ClinicInfo.Name),
			Timestamp:              time.Now().Format(time.RFC3339),
			ShowPatientNumberInput: true,
		})
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (ctl *ChatController) authenticatedWelcome(session models.CustomerSession) models.ChatMessage {
	content := fmt.Sprintf(`%s様、こんにちは！
%sの予約アシスタントです。

いつもご利用ありがとうございます。
ご予約や料金について、お気軽にお尋ねください！`, session.CustomerName, data.ClinicInfo.Name)

	if n := len(ctl.Store.CustomerUnusedCourses(session.CustomerID)); n > 0 {
		content += fmt.Sprintf(`

🎫 未消化のコースが%d件ございます。`, n)
	}

	return models.ChatMessage{
		ID:           "welcome-auth",
		Role:         models.RoleAssistant,
		Content:      content,
		Timestamp:    time.Now().Format(time.RFC3339),
		QuickReplies: []string{"予約したい", "料金を見たい", "営業時間は？"},
	}
}

// SendMessage appends the user turn, runs the reply engine and appends
// the assistant turn. Engine failure substitutes the fixed apology so
// the conversation never dead-ends.
func (ctl *ChatController) SendMessage(c *gin.Context) {
	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	now := time.Now()
	userMessage := models.ChatMessage{
		ID:        fmt.Sprintf("msg-%d", now.UnixMilli()),
		Role:      models.RoleUser,
		Content:   input.Content,
		Timestamp: now.Format(time.RFC3339),
	}

	history, err := ctl.Chat.LoadHistory()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load chat history")
		return
	}
	history = append(history, userMessage)

	reply, err := ctl.Assistant.SendMessage(c.Request.Context(), history)
	assistantMessage := models.ChatMessage{
		ID:        fmt.Sprintf("msg-%d", time.Now().UnixMilli()),
		Role:      models.RoleAssistant,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err != nil {
		assistantMessage.Content = "申し訳ございません。エラーが発生しました。もう一度お試しください。"
	} else {
		assistantMessage.Content = reply.Content
		assistantMessage.QuickReplies = reply.QuickReplies
		assistantMessage.TimeSlots = reply.TimeSlots
		assistantMessage.MenuOptions = reply.MenuOptions
		assistantMessage.ShowCalendar = reply.ShowCalendar
		assistantMessage.ShowCustomerConfirm = reply.ShowCustomerConfirm
		assistantMessage.ShowPayment = reply.ShowPayment
		assistantMessage.ShowCustomerForm = reply.ShowCustomerForm
		assistantMessage.ShowWaitlistConfirm = reply.ShowWaitlistConfirm
		assistantMessage.ShowIntervalWarning = reply.ShowIntervalWarning
		assistantMessage.ShowNearbyClinicSlots = reply.ShowNearbyClinicSlots
		assistantMessage.ShowAddressForm = reply.ShowAddressForm
	}

	history = append(history, assistantMessage)
	if err := ctl.Chat.SaveHistory(history); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save chat history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userMessage":      userMessage,
		"assistantMessage": assistantMessage,
	})
}

func (ctl *ChatController) GetHistory(c *gin.Context) {
	history, err := ctl.Chat.LoadHistory()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load chat history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": history})
}

func (ctl *ChatController) ClearHistory(c *gin.Context) {
	if err := ctl.Chat.ClearHistory(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear chat history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "History cleared"})
}

// GetReminder exposes the course-reminder check for the active session.
func (ctl *ChatController) GetReminder(c *gin.Context) {
	session, authenticated, err := ctl.Sessions.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if !authenticated {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}

	reminder, ok := ctl.Reminders.PendingCourseReminder(session.CustomerID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"pending": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending":      true,
		"reminder":     reminder,
		"quickReplies": services.ReminderQuickReplies(),
	})
}

// ParseIntent is a diagnostic endpoint for the auxiliary classifier. It
// is not part of the reply path.
func (ctl *ChatController) ParseIntent(c *gin.Context) {
	var input ParseIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, services.ParseIntent(input.Content, time.Now()))
}
