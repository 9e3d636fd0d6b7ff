package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soultravel/catalog"
	"soultravel/currency"
)

// displayCurrency picks the render currency for price fields. Catalog prices
// are stored in ZAR; the converter formats them at response time.
func displayCurrency(c *gin.Context) string {
	code := c.Query("currency")
	if code == "" {
		return "ZAR"
	}
	return code
}

type pricedAttraction struct {
	catalog.Attraction
	DisplayPrice string `json:"display_price"`
}

func (a *API) TourismHandler(c *gin.Context) {
	code := displayCurrency(c)
	attractions := catalog.FilterAttractions(c.Query("category"), c.Query("region"))

	out := make([]pricedAttraction, 0, len(attractions))
	for _, attraction := range attractions {
		out = append(out, pricedAttraction{
			Attraction:   attraction,
			DisplayPrice: currency.FormatPrice(attraction.Price, code),
		})
	}
	c.JSON(http.StatusOK, gin.H{"attractions": out})
}

type pricedTransport struct {
	catalog.TransportOption
	DisplayPrice string `json:"display_price"`
}

func (a *API) TransportHandler(c *gin.Context) {
	code := displayCurrency(c)
	options := catalog.FilterTransport(c.Query("type"))

	out := make([]pricedTransport, 0, len(options))
	for _, option := range options {
		out = append(out, pricedTransport{
			TransportOption: option,
			DisplayPrice:    currency.FormatPrice(option.Price, code),
		})
	}
	c.JSON(http.StatusOK, gin.H{"transport": out})
}

type pricedEvent struct {
	catalog.Event
	DisplayPrice string `json:"display_price"`
}

func (a *API) EntertainmentHandler(c *gin.Context) {
	code := displayCurrency(c)
	events := catalog.FilterEvents(c.Query("category"), c.Query("city"))

	out := make([]pricedEvent, 0, len(events))
	for _, event := range events {
		out = append(out, pricedEvent{
			Event:        event,
			DisplayPrice: currency.FormatPrice(event.Price, code),
		})
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

func (a *API) SupportHandler(c *gin.Context) {
	services := catalog.FilterServices(c.Query("category"), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (a *API) PostsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": catalog.Posts})
}

func (a *API) TravelBuddiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"travelers": catalog.TravelBuddies})
}

func (a *API) MapLocationsHandler(c *gin.Context) {
	locations := catalog.FilterMapLocations(c.Query("type"), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (a *API) CurrenciesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": currency.Currencies})
}
