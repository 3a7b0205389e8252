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

type ClinicController struct {
	Store    *data.Store
	Sessions *storage.SessionStore
}

type UpdateAddressInput struct {
	HomeStation string `json:"homeStation" binding:"required"`
	WorkStation string `json:"workStation"`
}

func (ctl *ClinicController) GetClinicInfo(c *gin.Context) {
	c.JSON(http.StatusOK, data.ClinicInfo)
}

// GetHours returns the weekly schedule plus, when ?date= is given, the
// concrete opening hours for that day.
func (ctl *ClinicController) GetHours(c *gin.Context) {
	resp := gin.H{
		"businessHours": data.ClinicInfo.BusinessHours,
		"text":          data.BusinessHoursText,
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		open, close, ok := data.BusinessHoursForDate(date)
		resp["date"] = dateStr
		resp["isOpen"] = ok
		if ok {
			resp["open"] = open
			resp["close"] = close
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetNearbyClinics returns branch availability filtered by the stored
// customer address (travel time within 60 minutes, sorted ascending).
func (ctl *ClinicController) GetNearbyClinics(c *gin.Context) {
	if c.Query("all") == "true" {
		c.JSON(http.StatusOK, gin.H{"clinics": ctl.Store.NearbyClinicList()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clinics": ctl.Store.NearbyClinicAvailability()})
}

func (ctl *ClinicController) GetClinicSlots(c *gin.Context) {
	slots := ctl.Store.ClinicSlots(c.Param("id"))
	if slots == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Clinic not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (ctl *ClinicController) GetAddress(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.CustomerAddress())
}

// UpdateAddress sets the home and work stations used for nearby-clinic
// matching. An empty work station clears it.
func (ctl *ClinicController) UpdateAddress(c *gin.Context) {
	var input UpdateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	ctl.Store.SetHomeAndWorkStation(input.HomeStation, input.WorkStation)
	c.JSON(http.StatusOK, ctl.Store.CustomerAddress())
}

// UpdateFullAddress applies a partial update to the stored address.
func (ctl *ClinicController) UpdateFullAddress(c *gin.Context) {
	var input models.CustomerAddress
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	ctl.Store.UpdateCustomerAddress(input)
	c.JSON(http.StatusOK, ctl.Store.CustomerAddress())
}

// GetDowntimeCare returns the post-treatment care guide.
func (ctl *ClinicController) GetDowntimeCare(c *gin.Context) {
	c.JSON(http.StatusOK, data.DowntimeCare)
}
