package controllers

import (
	"net/http"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

type PointsController struct {
	Points   *storage.PointsStore
	Store    *data.Store
	Sessions *storage.SessionStore
}

type UsePointsInput struct {
	Points      int    `json:"points" binding:"required,min=1"`
	Description string `json:"description"`
}

type EarnPointsInput struct {
	Points      int    `json:"points" binding:"required,min=1"`
	Description string `json:"description"`
}

func (ctl *PointsController) customerID(c *gin.Context) (string, bool) {
	session, ok, err := ctl.Sessions.Load()
	if err != nil || !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return "", false
	}
	return session.CustomerID, true
}

func (ctl *PointsController) GetPoints(c *gin.Context) {
	customerID, ok := ctl.customerID(c)
	if !ok {
		return
	}
	points, err := ctl.Points.LoadPoints(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load points")
		return
	}
	c.JSON(http.StatusOK, points)
}

func (ctl *PointsController) UsePoints(c *gin.Context) {
	customerID, ok := ctl.customerID(c)
	if !ok {
		return
	}
	var input UsePointsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Description == "" {
		input.Description = "ポイント利用"
	}

	used, err := ctl.Points.UsePoints(customerID, input.Points, input.Description)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to use points")
		return
	}
	if !used {
		utils.RespondWithError(c, http.StatusConflict, "ポイントが不足しています")
		return
	}

	points, err := ctl.Points.LoadPoints(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load points")
		return
	}
	c.JSON(http.StatusOK, points)
}

func (ctl *PointsController) EarnPoints(c *gin.Context) {
	customerID, ok := ctl.customerID(c)
	if !ok {
		return
	}
	var input EarnPointsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Description == "" {
		input.Description = "ご来院ポイント"
	}

	if err := ctl.Points.EarnPoints(customerID, input.Points, input.Description); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to earn points")
		return
	}

	points, err := ctl.Points.LoadPoints(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load points")
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetExpiringPoints surfaces the first tranche expiring within 30 days.
func (ctl *PointsController) GetExpiringPoints(c *gin.Context) {
	customerID, ok := ctl.customerID(c)
	if !ok {
		return
	}
	warning, has := ctl.Points.ExpiringWarning(customerID)
	if !has {
		c.JSON(http.StatusOK, gin.H{"expiring": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expiring": true, "points": warning})
}

func (ctl *PointsController) GetCoupons(c *gin.Context) {
	customerID, ok := ctl.customerID(c)
	if !ok {
		return
	}
	coupons, err := ctl.Points.LoadCoupons(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load coupons")
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

// UseCoupon consumes a coupon once; the second attempt conflicts.
func (ctl *PointsController) UseCoupon(c *gin.Context) {
	customerID, ok := ctl.customerID(c)
	if !ok {
		return
	}
	used, err := ctl.Points.UseCoupon(customerID, c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to use coupon")
		return
	}
	if !used {
		utils.RespondWithError(c, http.StatusConflict, "このクーポンは既に使用されています")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon used"})
}

func (ctl *PointsController) GetReferral(c *gin.Context) {
	customerID, ok := ctl.customerID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctl.Points.LoadReferral(customerID))
}

// LookupReferralCode resolves a referral code to its owning program,
// with the bonus amounts both sides receive.
func (ctl *PointsController) LookupReferralCode(c *gin.Context) {
	program, ok := ctl.Store.FindReferralByCode(c.Param("code"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "紹介コードが見つかりません")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"referral":      program,
		"referrerBonus": models.ReferralBonusPoints,
		"refereeBonus":  models.RefereeBonusPoints,
	})
}
