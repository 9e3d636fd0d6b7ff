package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soultravel/services"
	"soultravel/store"
)

// API bundles the adapter clients and the booking store behind the route
// handlers. Everything is constructor-injected so tests can swap in fake
// backends.
type API struct {
	Amadeus  *services.AmadeusClient
	Booking  *services.BookingClient
	Geo      *services.GeocodingClient
	Weather  *services.WeatherClient
	Bookings *store.BookingStore
	Logger   *zap.Logger
}

func New(amadeus *services.AmadeusClient, booking *services.BookingClient,
	geo *services.GeocodingClient, weather *services.WeatherClient,
	bookings *store.BookingStore, logger *zap.Logger) *API {
	return &API{
		Amadeus:  amadeus,
		Booking:  booking,
		Geo:      geo,
		Weather:  weather,
		Bookings: bookings,
		Logger:   logger,
	}
}

// Register mounts all routes under /api.
func (a *API) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", a.HealthHandler)

		api.POST("/flights/search", a.SearchFlightsHandler)
		api.GET("/flights/airports", a.AirportsHandler)

		api.POST("/accommodation/search", a.SearchAccommodationHandler)

		api.GET("/places/search", a.PlacesHandler)
		api.GET("/weather", a.WeatherHandler)

		api.GET("/tourism", a.TourismHandler)
		api.GET("/transport", a.TransportHandler)
		api.GET("/entertainment", a.EntertainmentHandler)
		api.GET("/support/services", a.SupportHandler)
		api.GET("/connect/posts", a.PostsHandler)
		api.GET("/connect/travelers", a.TravelBuddiesHandler)
		api.GET("/map/locations", a.MapLocationsHandler)
		api.GET("/currencies", a.CurrenciesHandler)

		api.GET("/booking/packages", a.PackagesHandler)
		api.POST("/booking", a.CreateBookingHandler)
		api.GET("/booking/:id", a.GetBookingHandler)
		api.POST("/booking/:id/confirm", a.ConfirmBookingHandler)
		api.GET("/booking/:id/confirmation", a.ConfirmationHandler)
	}
}

func (a *API) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "Soul Travel API",
	})
}
