package controllers

import (
	"net/http"

	"clinicflash-backend/models"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Settings *storage.SettingsStore
}

func (ctl *SettingsController) GetSettings(c *gin.Context) {
	settings, err := ctl.Settings.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ctl *SettingsController) UpdateSettings(c *gin.Context) {
	var input models.NotificationSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ctl.Settings.Save(input); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	settings, err := ctl.Settings.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ResetSettings restores the defaults and returns them.
func (ctl *SettingsController) ResetSettings(c *gin.Context) {
	settings, err := ctl.Settings.Reset()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ctl *SettingsController) UpdateBookingReminder(c *gin.Context) {
	var input models.BookingReminderSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ctl.Settings.UpdateBookingReminder(input); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking reminder updated"})
}

func (ctl *SettingsController) UpdateCampaignNotification(c *gin.Context) {
	var input models.CampaignNotificationSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ctl.Settings.UpdateCampaignNotification(input); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign notification updated"})
}

func (ctl *SettingsController) UpdateCourseReminder(c *gin.Context) {
	var input models.CourseReminderSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.IntervalDays < 0 || input.ReminderBeforeExpiry < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Interval values must not be negative")
		return
	}
	if err := ctl.Settings.UpdateCourseReminder(input); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course reminder updated"})
}
