package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyjourney/booking/internal/domain"
	"github.com/skyjourney/booking/internal/service/selection"
)

type SelectionHandler struct {
	service selection.SelectionUseCase
}

type selectFareRequest struct {
	State    domain.BookingState `json:"state"`
	FlightID string              `json:"flightId"`
	FareType string              `json:"fareType"`
	Leg      domain.LegType      `json:"legType"`
}

type clearSelectionRequest struct {
	State domain.BookingState `json:"state"`
	Leg   domain.LegType      `json:"legType"`
}

type setCabinRequest struct {
	State domain.BookingState `json:"state"`
	Class domain.CabinClass   `json:"cabinClass"`
}

type selectionResponse struct {
	State      domain.BookingState `json:"state"`
	TotalPrice int64               `json:"totalPrice"`
	IsComplete bool                `json:"isComplete"`
}

func NewSelectionHandler(service selection.SelectionUseCase) *SelectionHandler {
	return &SelectionHandler{service: service}
}

func (h *SelectionHandler) Register(router *gin.RouterGroup) {
	router.POST("/selection/fare", h.selectFare)
	router.POST("/selection/clear", h.clearSelection)
	router.POST("/selection/cabin", h.setCabinClass)
}

func (h *SelectionHandler) selectFare(c *gin.Context) {
	var req selectFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.SelectFare(req.State, selection.SelectFareInput{
		FlightID: req.FlightID,
		FareType: req.FareType,
		Leg:      req.Leg,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.respond(state))
}

func (h *SelectionHandler) clearSelection(c *gin.Context) {
	var req clearSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.ClearSelection(req.State, req.Leg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.respond(state))
}

func (h *SelectionHandler) setCabinClass(c *gin.Context) {
	var req setCabinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.SetCabinClass(req.State, req.Class)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.respond(state))
}

func (h *SelectionHandler) respond(state domain.BookingState) selectionResponse {
	return selectionResponse{
		State:      state,
		TotalPrice: h.service.TotalPrice(state),
		IsComplete: h.service.IsComplete(state),
	}
}
