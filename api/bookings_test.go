package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skyjourney/booking/internal/domain"
	"github.com/skyjourney/booking/internal/service/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReference struct{}

func (stubReference) Digits(n int) string { return "123456"[:n] }

func newBookingHandler() *BookingHandler {
	service := booking.NewBookingService(stubReference{}, booking.WithIDGenerator(func() string { return "booking-1" }))
	return NewBookingHandler(service)
}

func TestBookingHandler_pay(t *testing.T) {
	handler := newBookingHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := paymentRequest{
		State: domain.BookingState{
			SearchParams: &domain.SearchParams{
				DepartureCode: "DXB", ArrivalCode: "LHR",
				DepartureDate: "2025-05-08", ReturnDate: "2025-05-15",
				Passengers: 1, TripType: domain.TripRoundTrip,
			},
			SelectedOutbound: &domain.SelectedFlight{FlightID: "SJ101", FareType: "Flex", Price: 1600, Leg: domain.LegOutbound},
			SelectedInbound:  &domain.SelectedFlight{FlightID: "SJ202", FareType: "Flex", Price: 460, Leg: domain.LegInbound},
			TotalPrice:       2060,
		},
		Option: domain.PaymentFull,
	}
	body, _ := json.Marshal(req)
	c.Request = httptest.NewRequest("POST", "/payment", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.pay(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		State domain.BookingState `json:"state"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "SJ123456", response.State.BookingReference)
	assert.Equal(t, "booking-1", response.State.BookingID)
	assert.Equal(t, int64(2060), response.State.TotalPrice)
}

func TestBookingHandler_pay_InvalidOption(t *testing.T) {
	handler := newBookingHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(paymentRequest{Option: "barter"})
	c.Request = httptest.NewRequest("POST", "/payment", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.pay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_confirmation_NoPayload(t *testing.T) {
	handler := newBookingHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/confirmation", bytes.NewReader(nil))

	handler.confirmation(c)

	assert.Equal(t, http.StatusOK, w.Code, "direct navigation still renders")

	var summary booking.Summary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	require.NoError(t, err)
	assert.Equal(t, "DXB", summary.SearchParams.DepartureCode)
	assert.Equal(t, int64(2060), summary.TotalPrice)
	assert.Regexp(t, regexp.MustCompile(`^SJ\d{6}$`), summary.BookingReference)
}

func TestBookingHandler_listAncillaries(t *testing.T) {
	handler := newBookingHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/options", nil)

	handler.listAncillaries(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var ancillaries []domain.Ancillary
	err := json.Unmarshal(w.Body.Bytes(), &ancillaries)
	require.NoError(t, err)
	assert.Len(t, ancillaries, 4)
}

func TestBookingHandler_applyAncillaries(t *testing.T) {
	handler := newBookingHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(applyAncillariesRequest{Ancillaries: []string{"baggage"}})
	c.Request = httptest.NewRequest("POST", "/options", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.applyAncillaries(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		State domain.BookingState `json:"state"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	// Empty payload fell back to the default round trip before pricing.
	assert.Equal(t, int64(2060+230), response.State.TotalPrice)
	assert.Equal(t, []string{"baggage"}, response.State.Ancillaries)
}
