package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyjourney/booking/internal/domain"
)

// Catalog is the read-only lookup surface of the mock data tables.
type Catalog interface {
	ListAirports() []domain.Airport
	ListFlights() []domain.Flight
	FlightsWithClass(class domain.CabinClass) []domain.Flight
	FlightByID(id string) (*domain.Flight, error)
}

type CatalogHandler struct {
	catalog Catalog
}

func NewCatalogHandler(catalog Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports", h.listAirports)
	router.GET("/flights", h.listFlights)
	router.GET("/flights/:id", h.getFlight)
}

func (h *CatalogHandler) listAirports(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListAirports())
}

func (h *CatalogHandler) listFlights(c *gin.Context) {
	if raw, ok := c.GetQuery("cabin"); ok {
		cabin := domain.CabinClass(raw)
		if !cabin.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown cabin class"})
			return
		}
		c.JSON(http.StatusOK, h.catalog.FlightsWithClass(cabin))
		return
	}
	c.JSON(http.StatusOK, h.catalog.ListFlights())
}

func (h *CatalogHandler) getFlight(c *gin.Context) {
	flight, err := h.catalog.FlightByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}
