package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (a *API) PlacesHandler(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter q"})
		return
	}

	locations := a.Geo.SearchLocations(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (a *API) WeatherHandler(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter city"})
		return
	}

	snapshot := a.Weather.CurrentWeather(c.Request.Context(), city)
	c.JSON(http.StatusOK, snapshot)
}
