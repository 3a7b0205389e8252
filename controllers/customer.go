package controllers

import (
	"net/http"

	"clinicflash-backend/data"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

// Admin-facing customer views. All routes here sit behind the admin
// middleware.
type CustomerController struct {
	Store    *data.Store
	Bookings *storage.BookingStore
	Points   *storage.PointsStore
}

// GetCustomers lists or searches the customer master.
func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		c.JSON(http.StatusOK, gin.H{"customers": ctl.Store.SearchCustomers(query)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": ctl.Store.AllCustomers()})
}

// GetCustomer returns one customer with merged history, contracts and
// points.
func (ctl *CustomerController) GetCustomer(c *gin.Context) {
	customer, ok := ctl.Store.FindCustomerByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	points, err := ctl.Points.LoadPoints(customer.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load points")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":  customer,
		"history":   ctl.Store.CustomerHistoryByID(customer.ID),
		"contracts": ctl.Store.CustomerContracts(customer.ID),
		"points":    points,
		"coupons":   ctl.Store.CustomerCoupons(customer.ID),
	})
}

// GetReservations lists all stored bookings for the admin view.
func (ctl *CustomerController) GetReservations(c *gin.Context) {
	bookings, err := ctl.Bookings.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": bookings})
}
