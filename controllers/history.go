package controllers

import (
	"net/http"
	"time"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	Store    *data.Store
	Sessions *storage.SessionStore
}

type UpdateNotesInput struct {
	Notes string `json:"notes"`
}

type FeedbackInput struct {
	SatisfactionRating int    `json:"satisfactionRating" binding:"required,min=1,max=5"`
	HasLeakage         bool   `json:"hasLeakage"`
	LeakageDetail      string `json:"leakageDetail"`
	Comment            string `json:"comment"`
}

// customerID resolves the acting customer from the stored session.
func (ctl *HistoryController) customerID(c *gin.Context) (string, bool) {
	session, ok, err := ctl.Sessions.Load()
	if err != nil || !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return "", false
	}
	return session.CustomerID, true
}

// GetHistory returns the customer's merged treatment history, newest
// first.
func (ctl *HistoryController) GetHistory(c *gin.Context) {
	customerID, ok := ctl.customerID(c)
	if !ok {
		return
	}
	history := ctl.Store.CustomerHistoryByID(customerID)
	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	})
}

func (ctl *HistoryController) UpdateNotes(c *gin.Context) {
	var input UpdateNotesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !ctl.Store.UpdateTreatmentNotes(c.Param("id"), input.Notes) {
		utils.RespondWithError(c, http.StatusNotFound, "Treatment record not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notes updated"})
}

func (ctl *HistoryController) SaveFeedback(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	feedback := models.TreatmentFeedback{
		SatisfactionRating: input.SatisfactionRating,
		HasLeakage:         input.HasLeakage,
		LeakageDetail:      input.LeakageDetail,
		Comment:            input.Comment,
		CreatedAt:          time.Now().Format(time.RFC3339),
	}
	if !ctl.Store.SaveTreatmentFeedback(c.Param("id"), feedback) {
		utils.RespondWithError(c, http.StatusNotFound, "Treatment record not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback saved", "feedback": feedback})
}

// GetContracts returns the customer's course contracts plus the unused
// subset.
func (ctl *HistoryController) GetContracts(c *gin.Context) {
	customerID, ok := ctl.customerID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contracts": ctl.Store.CustomerContracts(customerID),
		"unused":    ctl.Store.CustomerUnusedCourses(customerID),
	})
}

// GetIntervalCheck reports whether enough days have passed since the
// last treatment for a safe next visit.
func (ctl *HistoryController) GetIntervalCheck(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.CheckTreatmentInterval(time.Now()))
}
