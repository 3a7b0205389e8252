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

type DashboardController struct {
	Store    *data.Store
	Sessions *storage.SessionStore
	Bookings *storage.BookingStore
	Points   *storage.PointsStore
	Settings *storage.SettingsStore
}

// GetDashboard aggregates the customer's standing: course progress,
// upcoming bookings, treatment summary, points and the recommended next
// visit date derived from the reminder interval.
func (ctl *DashboardController) GetDashboard(c *gin.Context) {
	session, ok, err := ctl.Sessions.Load()
	if err != nil || !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}

	contracts := ctl.Store.CustomerContracts(session.CustomerID)
	history := ctl.Store.CustomerHistoryByID(session.CustomerID)

	type courseProgress struct {
		CourseID          string  `json:"courseId"`
		CourseName        string  `json:"courseName"`
		TotalSessions     int     `json:"totalSessions"`
		UsedSessions      int     `json:"usedSessions"`
		RemainingSessions int     `json:"remainingSessions"`
		ProgressRate      float64 `json:"progressRate"`
		ExpiryDate        string  `json:"expiryDate"`
	}
	progress := make([]courseProgress, 0, len(contracts))
	for _, contract := range contracts {
		rate := 0.0
		if contract.TotalSessions > 0 {
			rate = float64(contract.UsedSessions) / float64(contract.TotalSessions)
		}
		progress = append(progress, courseProgress{
			CourseID:          contract.ID,
			CourseName:        contract.CourseName,
			TotalSessions:     contract.TotalSessions,
			UsedSessions:      contract.UsedSessions,
			RemainingSessions: contract.RemainingSessions,
			ProgressRate:      rate,
			ExpiryDate:        contract.ExpiryDate,
		})
	}

	bookings, err := ctl.Bookings.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	today := time.Now().Format("2006-01-02")
	upcoming := bookings[:0]
	for _, b := range bookings {
		if b.Status != models.BookingCancelled && b.Date >= today {
			upcoming = append(upcoming, b)
		}
	}

	points, err := ctl.Points.LoadPoints(session.CustomerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load points")
		return
	}

	// Next recommended visit: interval days after the newest treatment.
	var recommendedNext string
	if len(history) > 0 {
		if last, err := time.Parse("2006-01-02", history[0].Date); err == nil {
			interval := ctl.Settings.CourseReminderIntervalDays()
			recommendedNext = last.AddDate(0, 0, interval).Format("2006-01-02")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": gin.H{
			"id":            session.CustomerID,
			"patientNumber": session.PatientNumber,
			"name":          session.CustomerName,
		},
		"courseProgress":   progress,
		"upcomingBookings": upcoming,
		"treatmentCount":   len(history),
		"recentHistory":    recentHistory(history, 3),
		"points": gin.H{
			"currentPoints": points.CurrentPoints,
			"totalEarned":   points.TotalEarned,
		},
		"recommendedNextVisit": recommendedNext,
		"intervalCheck":        ctl.Store.CheckTreatmentInterval(time.Now()),
	})
}

func recentHistory(history []models.TreatmentHistory, n int) []models.TreatmentHistory {
	if len(history) < n {
		return history
	}
	return history[:n]
}
