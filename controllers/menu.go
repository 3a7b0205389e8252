package controllers

import (
	"net/http"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct{}

// GetMenus lists treatment menus, optionally filtered by category.
func (ctl *MenuController) GetMenus(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		menus := data.MenusByCategory(models.TreatmentCategory(category))
		c.JSON(http.StatusOK, gin.H{"menus": menus})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": data.TreatmentMenus})
}

func (ctl *MenuController) GetPopularMenus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menus": data.PopularMenus()})
}

func (ctl *MenuController) GetMenu(c *gin.Context) {
	menu, ok := data.MenuByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Menu not found")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GetPriceList returns the chat-formatted price list text plus the raw
// per-area table.
func (ctl *MenuController) GetPriceList(c *gin.Context) {
	table := make(map[string]interface{}, len(data.AreaOrder))
	for _, area := range data.AreaOrder {
		table[area] = gin.H{
			"label":  data.AreaLabels[area],
			"prices": data.PriceTable[area],
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"text":            data.PriceListText(),
		"table":           table,
		"anesthesiaPrice": data.AnesthesiaPrice,
	})
}
