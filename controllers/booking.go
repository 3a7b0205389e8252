package controllers

import (
	"net/http"
	"time"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/services"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *storage.BookingStore
	Payments *services.PaymentService
}

type CreateBookingInput struct {
	MenuID       string `json:"menuId" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:mm
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	IsFirstVisit bool   `json:"isFirstVisit"`
}

type CheckoutInput struct {
	BookingID      string `json:"bookingId" binding:"required"`
	WithAnesthesia bool   `json:"withAnesthesia"`
}

func (ctl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctl.Bookings.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetSlots computes availability for one day from the business hours
// and the stored bookings.
func (ctl *BookingController) GetSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	duration := data.ClinicInfo.SlotDuration
	if menuID := c.Query("menuId"); menuID != "" {
		menu, ok := data.MenuByID(menuID)
		if !ok {
			utils.RespondWithError(c, http.StatusNotFound, "Menu not found")
			return
		}
		duration = menu.Duration
	}

	slots, err := ctl.Bookings.AvailableSlots(dateStr, duration)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}

func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	menu, ok := data.MenuByID(input.MenuID)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Menu not found")
		return
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	if !data.IsClinicOpen(date) {
		utils.RespondWithError(c, http.StatusConflict, "定休日のためご予約いただけません")
		return
	}
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	slots, err := ctl.Bookings.AvailableSlots(input.Date, menu.Duration)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute slots")
		return
	}
	available := false
	for _, slot := range slots {
		if slot.Time == input.Time && slot.Available {
			available = true
			break
		}
	}
	if !available {
		utils.RespondWithError(c, http.StatusConflict, "ご指定の時間は満席です")
		return
	}

	booking := models.Booking{
		ID:       ctl.Bookings.GenerateBookingID(),
		MenuID:   menu.ID,
		MenuName: menu.Name,
		Date:     input.Date,
		Time:     input.Time,
		Duration: menu.Duration,
		Customer: models.CustomerInfo{
			Name:         input.Name,
			Phone:        input.Phone,
			IsFirstVisit: input.IsFirstVisit,
		},
		Status:    models.BookingConfirmed,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := ctl.Bookings.Add(booking); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save booking")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (ctl *BookingController) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")

	bookings, err := ctl.Bookings.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	for i := range bookings {
		if bookings[i].ID == bookingID {
			bookings[i].Status = models.BookingCancelled
			if err := ctl.Bookings.Save(bookings); err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save bookings")
				return
			}
			c.JSON(http.StatusOK, bookings[i])
			return
		}
	}
	utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
}

// Checkout opens a Midtrans Snap transaction for an existing booking.
// Returns 503 when no server key is configured; the in-chat simulated
// payment flow remains available in that case.
func (ctl *BookingController) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !ctl.Payments.Enabled() {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Online payment is not configured")
		return
	}

	bookings, err := ctl.Bookings.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	var booking *models.Booking
	for i := range bookings {
		if bookings[i].ID == input.BookingID {
			booking = &bookings[i]
			break
		}
	}
	if booking == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	menu, ok := data.MenuByID(booking.MenuID)
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Booking references unknown menu")
		return
	}

	result, err := ctl.Payments.CreateCheckout(*booking, menu, input.WithAnesthesia)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// PaymentNotify is the Midtrans webhook. A paid status confirms the
// booking, a failed one cancels it.
func (ctl *BookingController) PaymentNotify(c *gin.Context) {
	var notification services.MidtransNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid notification payload")
		return
	}

	bookings, err := ctl.Bookings.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	for i := range bookings {
		if bookings[i].ID != notification.OrderID {
			continue
		}
		switch notification.PaymentStatus() {
		case "paid":
			bookings[i].Status = models.BookingConfirmed
		case "failed":
			bookings[i].Status = models.BookingCancelled
		}
		if err := ctl.Bookings.Save(bookings); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save bookings")
			return
		}
		c.JSON(http.StatusOK, gin.H{"orderId": notification.OrderID, "status": string(bookings[i].Status)})
		return
	}
	utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
}
