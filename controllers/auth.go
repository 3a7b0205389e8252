package controllers

import (
	"errors"
	"net/http"
	"time"

	"clinicflash-backend/config"
	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Store    *data.Store
	Sessions *storage.SessionStore
}

type PatientLoginInput struct {
	PatientNumber string `json:"patientNumber" binding:"required"`
	RememberMe    bool   `json:"rememberMe"`
}

type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PatientLogin authenticates by clinic card number. The errors stay in
// Japanese because the chat client renders them verbatim.
func (ctl *AuthController) PatientLogin(c *gin.Context) {
	var input PatientLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePatientNumber(input.PatientNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, utils.PatientNumberFormatError)
		return
	}

	customer, ok := ctl.Store.FindCustomerByPatientNumber(input.PatientNumber)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "診察券番号が見つかりません。再度ご確認ください。")
		return
	}

	session, err := ctl.Sessions.Create(customer.ID, customer.PatientNumber, customer.Name)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	if input.RememberMe {
		if err := ctl.Sessions.SaveRememberedPatientNumber(customer.PatientNumber); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remember patient number")
			return
		}
	}

	token, err := utils.GenerateCustomerToken(customer.ID, customer.PatientNumber)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"session": session,
		"customer": gin.H{
			"id":            customer.ID,
			"patientNumber": customer.PatientNumber,
			"name":          customer.Name,
		},
	})
}

// Me returns the active session, if any.
func (ctl *AuthController) Me(c *gin.Context) {
	session, ok, err := ctl.Sessions.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (ctl *AuthController) Logout(c *gin.Context) {
	if err := ctl.Sessions.Clear(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ctl *AuthController) GetRememberedPatientNumber(c *gin.Context) {
	number, ok, err := ctl.Sessions.LoadRememberedPatientNumber()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load remembered patient number")
		return
	}
	c.JSON(http.StatusOK, gin.H{"patientNumber": number, "remembered": ok})
}

func (ctl *AuthController) ClearRememberedPatientNumber(c *gin.Context) {
	if err := ctl.Sessions.ClearRememberedPatientNumber(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear remembered patient number")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cleared"})
}

// AdminLogin authenticates staff against the AdminUser table. Admin
// accounts only exist in the database, so DB-less mode rejects the
// login outright instead of panicking on the nil handle.
func (ctl *AuthController) AdminLogin(c *gin.Context) {
	if config.DB == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Admin login requires a configured database")
		return
	}

	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.AdminUser
	result := config.DB.Where("email = ? AND is_active = ?", input.Email, true).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateAdminToken(user.ID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
