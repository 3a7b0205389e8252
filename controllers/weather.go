package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

// WeatherController proxies the Open-Meteo forecast and geocoding APIs
// so the browser never calls them cross-origin.
type WeatherController struct {
	Client *http.Client
}

func NewWeatherController() *WeatherController {
	return &WeatherController{
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetForecast fetches current conditions and the daily forecast for a
// coordinate pair.
func (ctl *WeatherController) GetForecast(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}
	timezone := c.DefaultQuery("timezone", "Asia/Tokyo")

	endpoint := fmt.Sprintf(
		"https://api.open-meteo.com/v1/forecast?latitude=%s&longitude=%s&current=temperature_2m,weather_code,wind_speed_10m,relative_humidity_2m&daily=weather_code,temperature_2m_max,temperature_2m_min&timezone=%s",
		url.QueryEscape(lat), url.QueryEscape(lon), url.QueryEscape(timezone))

	ctl.proxy(c, endpoint)
}

// Geocode resolves a city name to coordinates.
func (ctl *WeatherController) Geocode(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "name query parameter is required")
		return
	}

	endpoint := fmt.Sprintf(
		"https://geocoding-api.open-meteo.com/v1/search?name=%s&count=1&language=ja",
		url.QueryEscape(name))

	ctl.proxy(c, endpoint)
}

func (ctl *WeatherController) proxy(c *gin.Context, endpoint string) {
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build upstream request")
		return
	}

	resp, err := ctl.Client.Do(req)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Weather service is unavailable")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.RespondWithError(c, http.StatusBadGateway, fmt.Sprintf("Weather service returned %d", resp.StatusCode))
		return
	}

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Invalid weather service response")
		return
	}
	c.JSON(http.StatusOK, payload)
}
