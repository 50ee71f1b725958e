package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skyjourney/booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalog is a mock implementation of the Catalog lookup surface
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListAirports() []domain.Airport {
	args := m.Called()
	return args.Get(0).([]domain.Airport)
}

func (m *MockCatalog) ListFlights() []domain.Flight {
	args := m.Called()
	return args.Get(0).([]domain.Flight)
}

func (m *MockCatalog) FlightsWithClass(class domain.CabinClass) []domain.Flight {
	args := m.Called(class)
	return args.Get(0).([]domain.Flight)
}

func (m *MockCatalog) FlightByID(id string) (*domain.Flight, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestCatalogHandler_listAirports(t *testing.T) {
	mockCatalog := &MockCatalog{}
	handler := NewCatalogHandler(mockCatalog)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/airports", nil)

	airports := []domain.Airport{
		{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "United Arab Emirates"},
		{Code: "LHR", Name: "London Heathrow", City: "London", Country: "United Kingdom"},
	}
	mockCatalog.On("ListAirports").Return(airports)

	handler.listAirports(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Airport
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, airports, response)

	mockCatalog.AssertExpectations(t)
}

func TestCatalogHandler_listFlights_CabinFilter(t *testing.T) {
	mockCatalog := &MockCatalog{}
	handler := NewCatalogHandler(mockCatalog)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights?cabin=business", nil)

	flights := []domain.Flight{{ID: "SJ101", Aircraft: "Airbus A380-800"}}
	mockCatalog.On("FlightsWithClass", domain.CabinBusiness).Return(flights)

	handler.listFlights(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Flight
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, flights, response)

	mockCatalog.AssertExpectations(t)
}

func TestCatalogHandler_listFlights_UnknownCabin(t *testing.T) {
	mockCatalog := &MockCatalog{}
	handler := NewCatalogHandler(mockCatalog)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights?cabin=deluxe", nil)

	handler.listFlights(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCatalog.AssertNotCalled(t, "FlightsWithClass", mock.Anything)
}

func TestCatalogHandler_getFlight(t *testing.T) {
	mockCatalog := &MockCatalog{}
	handler := NewCatalogHandler(mockCatalog)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "SJ101"}}
	c.Request = httptest.NewRequest("GET", "/flights/SJ101", nil)

	flight := &domain.Flight{ID: "SJ101", Aircraft: "Airbus A380-800"}
	mockCatalog.On("FlightByID", "SJ101").Return(flight, nil)

	handler.getFlight(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.Flight
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "SJ101", response.ID)

	mockCatalog.AssertExpectations(t)
}

func TestCatalogHandler_getFlight_NotFound(t *testing.T) {
	mockCatalog := &MockCatalog{}
	handler := NewCatalogHandler(mockCatalog)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "SJ999"}}
	c.Request = httptest.NewRequest("GET", "/flights/SJ999", nil)

	mockCatalog.On("FlightByID", "SJ999").Return(nil, errors.New("unknown flight id \"SJ999\""))

	handler.getFlight(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockCatalog.AssertExpectations(t)
}
