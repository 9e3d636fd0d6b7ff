package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"soultravel/services"
)

type FlightSearchResponse struct {
	Flights []services.FlightResult `json:"flights"`
}

func (a *API) SearchFlightsHandler(c *gin.Context) {
	var params services.FlightSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	params.From = strings.ToUpper(strings.TrimSpace(params.From))
	params.To = strings.ToUpper(strings.TrimSpace(params.To))

	if len(params.From) != 3 || len(params.To) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Airport codes must be exactly 3 characters (e.g. JNB, LHR)"})
		return
	}

	if _, err := time.Parse("2006-01-02", params.DepartDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid departure date format. Use YYYY-MM-DD"})
		return
	}
	if params.ReturnDate != "" {
		if _, err := time.Parse("2006-01-02", params.ReturnDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid return date format. Use YYYY-MM-DD"})
			return
		}
	}

	if params.Adults <= 0 {
		params.Adults = 1
	}
	if params.Class == "" {
		params.Class = "economy"
	}

	flights := a.Amadeus.SearchFlights(c.Request.Context(), params)
	c.JSON(http.StatusOK, FlightSearchResponse{Flights: flights})
}

func (a *API) AirportsHandler(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		c.JSON(http.StatusOK, gin.H{"airports": []services.AirportSuggestion{}})
		return
	}

	airports := a.Amadeus.AirportSuggestions(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"airports": airports})
}
