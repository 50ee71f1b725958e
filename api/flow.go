package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyjourney/booking/internal/domain"
	"github.com/skyjourney/booking/internal/service/flow"
)

type FlowHandler struct {
	service flow.FlowUseCase
}

type advanceRequest struct {
	Entry   flow.EntryMode      `json:"entry"`
	Current string              `json:"current"`
	State   domain.BookingState `json:"state"`
}

type navigateRequest struct {
	Entry   flow.EntryMode      `json:"entry"`
	Current string              `json:"current"`
	Target  string              `json:"target"`
	State   domain.BookingState `json:"state"`
}

type flowResponse struct {
	Step  flow.Step           `json:"step"`
	State domain.BookingState `json:"state"`
}

func NewFlowHandler(service flow.FlowUseCase) *FlowHandler {
	return &FlowHandler{service: service}
}

func (h *FlowHandler) Register(router *gin.RouterGroup) {
	router.GET("/flow/steps", h.steps)
	router.POST("/flow/advance", h.advance)
	router.POST("/flow/navigate", h.navigate)
}

func (h *FlowHandler) steps(c *gin.Context) {
	entry := flow.EntryMode(c.DefaultQuery("entry", string(flow.EntrySearch)))
	current := c.Query("current")

	steps, err := h.service.Steps(entry, current)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, steps)
}

func (h *FlowHandler) advance(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Entry == "" {
		req.Entry = flow.EntrySearch
	}

	step, err := h.service.Advance(req.Entry, req.Current, req.State)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, flow.ErrUnknownStep) || errors.Is(err, flow.ErrUnknownEntryMode) || errors.Is(err, flow.ErrLastStep) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flowResponse{Step: step, State: req.State})
}

func (h *FlowHandler) navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Entry == "" {
		req.Entry = flow.EntrySearch
	}

	step, err := h.service.Navigate(req.Entry, req.Current, req.Target, req.State)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, flow.ErrStepUpcoming) {
			// Upcoming steps are rendered disabled; jumping ahead is refused,
			// never executed.
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	// Back-navigation re-supplies the accumulated payload untouched.
	c.JSON(http.StatusOK, flowResponse{Step: step, State: req.State})
}
