package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyjourney/booking/internal/domain"
	"github.com/skyjourney/booking/internal/service/search"
)

type SearchHandler struct {
	service search.SearchUseCase
}

type searchRequest struct {
	domain.SearchParams
	CabinClass domain.CabinClass `json:"cabinClass"`
}

type searchResponse struct {
	SearchParams domain.SearchParams `json:"searchParams"`
	CabinClass   domain.CabinClass   `json:"cabinClass"`
	Outbound     []domain.Flight     `json:"outbound"`
	Inbound      []domain.Flight     `json:"inbound"`
}

type adjustCountsRequest struct {
	Counts   domain.PassengerCounts `json:"counts"`
	Category domain.PassengerType   `json:"category"`
	Delta    int                    `json:"delta"`
}

type adjustCountsResponse struct {
	Counts domain.PassengerCounts `json:"counts"`
	Total  int                    `json:"total"`
}

func NewSearchHandler(service search.SearchUseCase) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) Register(router *gin.RouterGroup) {
	router.POST("/search", h.search)
	router.POST("/search/passengers", h.adjustCounts)
}

func (h *SearchHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CabinClass == "" {
		req.CabinClass = domain.CabinEconomy
	}

	results, err := h.service.Search(c.Request.Context(), req.SearchParams, req.CabinClass)
	if err != nil {
		var validationErrs search.ValidationErrors
		if errors.As(err, &validationErrs) {
			// One entry per offending field so the form can flag each one.
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  validationErrs.Error(),
				"errors": validationErrs,
				"fields": validationErrs.Fields(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, searchResponse{
		SearchParams: req.SearchParams,
		CabinClass:   req.CabinClass,
		Outbound:     results.Outbound,
		Inbound:      results.Inbound,
	})
}

func (h *SearchHandler) adjustCounts(c *gin.Context) {
	var req adjustCountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counts, total, err := h.service.AdjustCounts(req.Counts, req.Category, req.Delta)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, adjustCountsResponse{Counts: counts, Total: total})
}
