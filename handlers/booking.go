package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"soultravel/catalog"
	"soultravel/currency"
	"soultravel/services"
	"soultravel/store"
)

type pricedPackage struct {
	catalog.Package
	DisplayPrice string `json:"display_price"`
}

func (a *API) PackagesHandler(c *gin.Context) {
	code := displayCurrency(c)

	out := make([]pricedPackage, 0, len(catalog.Packages))
	for _, p := range catalog.Packages {
		out = append(out, pricedPackage{
			Package:      p,
			DisplayPrice: currency.FormatPrice(p.Price, code),
		})
	}
	c.JSON(http.StatusOK, gin.H{"packages": out})
}

type CreateBookingRequest struct {
	TravelerName string            `json:"traveler_name"`
	Destination  string            `json:"destination" binding:"required"`
	StartDate    string            `json:"start_date" binding:"required"`
	EndDate      string            `json:"end_date" binding:"required"`
	Travelers    store.Travelers   `json:"travelers"`
	Preferences  store.Preferences `json:"preferences"`
	Currency     string            `json:"currency"`
}

func (a *API) CreateBookingHandler(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format. Use YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format. Use YYYY-MM-DD"})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
		return
	}

	if req.Travelers.Adults <= 0 {
		req.Travelers.Adults = 2
	}
	if req.Currency == "" {
		req.Currency = "ZAR"
	}

	booking := store.Booking{
		ID:           uuid.New().String(),
		TravelerName: req.TravelerName,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Travelers:    req.Travelers,
		Preferences:  req.Preferences,
		Currency:     req.Currency,
		Status:       store.StatusPending,
		CreatedAt:    time.Now(),
	}
	a.Bookings.Create(booking)

	a.Logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("destination", booking.Destination))

	c.JSON(http.StatusCreated, booking)
}

func (a *API) GetBookingHandler(c *gin.Context) {
	booking, err := a.Bookings.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

type ConfirmBookingRequest struct {
	PackageID int `json:"package_id" binding:"required"`
}

func (a *API) ConfirmBookingHandler(c *gin.Context) {
	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, ok := catalog.PackageByID(req.PackageID); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown package"})
		return
	}

	booking, err := a.Bookings.Confirm(c.Param("id"), req.PackageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking"})
		return
	}

	a.Logger.Info("booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.Int("package_id", booking.PackageID))

	c.JSON(http.StatusOK, booking)
}

func (a *API) ConfirmationHandler(c *gin.Context) {
	booking, err := a.Bookings.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.Status != store.StatusConfirmed {
		c.JSON(http.StatusConflict, gin.H{"error": "Booking has not been confirmed"})
		return
	}

	pkg, ok := catalog.PackageByID(booking.PackageID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booked package no longer exists"})
		return
	}

	pdfBytes, err := services.ConfirmationPDF(services.ConfirmationData{
		BookingID:    booking.ID,
		TravelerName: booking.TravelerName,
		Destination:  booking.Destination,
		StartDate:    booking.StartDate,
		EndDate:      booking.EndDate,
		Adults:       booking.Travelers.Adults,
		Children:     booking.Travelers.Children,
		Infants:      booking.Travelers.Infants,
		PackageTitle: pkg.Title,
		PackageItems: pkg.Includes,
		Duration:     pkg.Duration,
		PriceZAR:     pkg.Price,
		CurrencyCode: booking.Currency,
	})
	if err != nil {
		a.Logger.Error("confirmation PDF failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate confirmation"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=soultravel-confirmation.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
