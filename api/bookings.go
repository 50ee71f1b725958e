package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyjourney/booking/internal/domain"
	"github.com/skyjourney/booking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type applyAncillariesRequest struct {
	State       domain.BookingState `json:"state"`
	Ancillaries []string            `json:"ancillaries"`
}

type paymentRequest struct {
	State  domain.BookingState  `json:"state"`
	Option domain.PaymentOption `json:"option"`
}

type summaryRequest struct {
	State domain.BookingState `json:"state"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/options", h.listAncillaries)
	router.POST("/options", h.applyAncillaries)
	router.GET("/payment/options", h.paymentOptions)
	router.POST("/payment", h.pay)
	router.POST("/confirmation", h.confirmation)
}

func (h *BookingHandler) listAncillaries(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Ancillaries())
}

func (h *BookingHandler) applyAncillaries(c *gin.Context) {
	var req applyAncillariesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The options page renders from defaults when entered directly.
	state := req.State.Merge(domain.FallbackState())

	state, err := h.service.ApplyAncillaries(state, req.Ancillaries)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *BookingHandler) paymentOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.PaymentOptions())
}

func (h *BookingHandler) pay(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.Confirm(req.State, req.Option)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// confirmation renders a summary of whatever payload it is handed. A missing
// body or empty state still renders, from the shared fallback.
func (h *BookingHandler) confirmation(c *gin.Context) {
	var req summaryRequest
	if c.Request.Body != nil {
		// Direct navigation sends no payload; ignore decode failures.
		_ = c.ShouldBindJSON(&req)
	}

	c.JSON(http.StatusOK, h.service.Summary(req.State))
}
