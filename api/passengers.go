package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyjourney/booking/internal/domain"
	"github.com/skyjourney/booking/internal/service/passengers"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
}

type initializePassengersRequest struct {
	Counts domain.PassengerCounts `json:"counts"`
}

type setPassengerFieldRequest struct {
	Records []domain.Passenger `json:"records"`
	Index   int                `json:"index"`
	Field   string             `json:"field"`
	Value   string             `json:"value"`
}

type validatePassengersRequest struct {
	State domain.BookingState `json:"state"`
}

func NewPassengerHandler(service passengers.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("/passengers/initialize", h.initialize)
	router.POST("/passengers/field", h.setField)
	router.POST("/passengers/validate", h.validateAll)
}

func (h *PassengerHandler) initialize(c *gin.Context) {
	var req initializePassengersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": h.service.Initialize(req.Counts)})
}

func (h *PassengerHandler) setField(c *gin.Context) {
	var req setPassengerFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.service.SetField(req.Records, req.Index, req.Field, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// validateAll surfaces one aggregate error for the whole form, matching the
// passenger page's single toast.
func (h *PassengerHandler) validateAll(c *gin.Context) {
	var req validatePassengersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.ValidateAll(req.State.Passengers); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": req.State})
}
