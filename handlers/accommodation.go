package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"soultravel/services"
)

type AccommodationSearchResponse struct {
	Accommodations []services.AccommodationResult `json:"accommodations"`
}

func (a *API) SearchAccommodationHandler(c *gin.Context) {
	var params services.AccommodationSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	checkIn, err := time.Parse("2006-01-02", params.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-in date format. Use YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", params.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-out date format. Use YYYY-MM-DD"})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out date must be after check-in date"})
		return
	}

	if params.Guests <= 0 {
		params.Guests = 2
	}
	if params.Rooms <= 0 {
		params.Rooms = 1
	}

	accommodations := a.Booking.SearchHotels(c.Request.Context(), params)
	c.JSON(http.StatusOK, AccommodationSearchResponse{Accommodations: accommodations})
}
