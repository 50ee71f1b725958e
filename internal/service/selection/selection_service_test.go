package selection

import (
	"testing"

	"github.com/skyjourney/booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) FlightByID(id string) (*domain.Flight, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func outboundFlight() *domain.Flight {
	return &domain.Flight{
		ID: "SJ101",
		Classes: map[domain.CabinClass]domain.CabinOffering{
			domain.CabinEconomy: {
				Duration: "7h 5m",
				Fares: []domain.FareOption{
					{FareType: "Saver", Price: 1220},
					{FareType: "Flex", Price: 1600},
				},
			},
		},
	}
}

func inboundFlight() *domain.Flight {
	return &domain.Flight{
		ID: "SJ202",
		Classes: map[domain.CabinClass]domain.CabinOffering{
			domain.CabinEconomy: {
				Duration: "6h 55m",
				Fares:    []domain.FareOption{{FareType: "Flex", Price: 460}},
			},
		},
	}
}

func roundTripState() domain.BookingState {
	return domain.BookingState{
		SearchParams: &domain.SearchParams{
			DepartureCode: "DXB",
			ArrivalCode:   "LHR",
			DepartureDate: "2025-05-08",
			ReturnDate:    "2025-05-15",
			Passengers:    1,
			TripType:      domain.TripRoundTrip,
		},
		CabinClass: domain.CabinEconomy,
	}
}

func TestSelectFare_RoundTripScenario(t *testing.T) {
	mockCatalog := &MockCatalog{}
	mockCatalog.On("FlightByID", "SJ101").Return(outboundFlight(), nil)
	mockCatalog.On("FlightByID", "SJ202").Return(inboundFlight(), nil)

	service := NewSelectionService(mockCatalog)
	state := roundTripState()

	state, err := service.SelectFare(state, SelectFareInput{FlightID: "SJ101", FareType: "Flex", Leg: domain.LegOutbound})
	require.NoError(t, err)
	assert.Equal(t, int64(1600), state.TotalPrice)
	assert.False(t, service.IsComplete(state), "round trip with only outbound is incomplete")

	state, err = service.SelectFare(state, SelectFareInput{FlightID: "SJ202", FareType: "Flex", Leg: domain.LegInbound})
	require.NoError(t, err)
	assert.Equal(t, int64(2060), state.TotalPrice)
	assert.True(t, service.IsComplete(state))

	mockCatalog.AssertExpectations(t)
}

func TestSelectFare_LastWriteWinsPerLeg(t *testing.T) {
	mockCatalog := &MockCatalog{}
	mockCatalog.On("FlightByID", "SJ101").Return(outboundFlight(), nil)

	service := NewSelectionService(mockCatalog)
	state := roundTripState()

	state, err := service.SelectFare(state, SelectFareInput{FlightID: "SJ101", FareType: "Saver", Leg: domain.LegOutbound})
	require.NoError(t, err)
	state, err = service.SelectFare(state, SelectFareInput{FlightID: "SJ101", FareType: "Flex", Leg: domain.LegOutbound})
	require.NoError(t, err)

	assert.Equal(t, "Flex", state.SelectedOutbound.FareType)
	assert.Equal(t, int64(1600), state.TotalPrice)
	assert.Nil(t, state.SelectedInbound)
}

func TestSelectFare_UnknownFareInClass(t *testing.T) {
	mockCatalog := &MockCatalog{}
	mockCatalog.On("FlightByID", "SJ101").Return(outboundFlight(), nil)

	service := NewSelectionService(mockCatalog)
	state := roundTripState()
	state.CabinClass = domain.CabinFirst

	_, err := service.SelectFare(state, SelectFareInput{FlightID: "SJ101", FareType: "Flex", Leg: domain.LegOutbound})
	assert.Error(t, err)
}

func TestSetCabinClass_ClearsBothSelections(t *testing.T) {
	mockCatalog := &MockCatalog{}
	mockCatalog.On("FlightByID", "SJ101").Return(outboundFlight(), nil)
	mockCatalog.On("FlightByID", "SJ202").Return(inboundFlight(), nil)

	service := NewSelectionService(mockCatalog)
	state := roundTripState()

	state, err := service.SelectFare(state, SelectFareInput{FlightID: "SJ101", FareType: "Flex", Leg: domain.LegOutbound})
	require.NoError(t, err)
	state, err = service.SelectFare(state, SelectFareInput{FlightID: "SJ202", FareType: "Flex", Leg: domain.LegInbound})
	require.NoError(t, err)

	state, err = service.SetCabinClass(state, domain.CabinBusiness)
	require.NoError(t, err)

	assert.Nil(t, state.SelectedOutbound)
	assert.Nil(t, state.SelectedInbound)
	assert.Equal(t, int64(0), state.TotalPrice)
	assert.False(t, service.IsComplete(state))
}

func TestClearSelection(t *testing.T) {
	mockCatalog := &MockCatalog{}
	mockCatalog.On("FlightByID", "SJ101").Return(outboundFlight(), nil)

	service := NewSelectionService(mockCatalog)
	state := roundTripState()

	state, err := service.SelectFare(state, SelectFareInput{FlightID: "SJ101", FareType: "Flex", Leg: domain.LegOutbound})
	require.NoError(t, err)

	state, err = service.ClearSelection(state, domain.LegOutbound)
	require.NoError(t, err)
	assert.Nil(t, state.SelectedOutbound)
	assert.Equal(t, int64(0), state.TotalPrice)

	_, err = service.ClearSelection(state, "sideways")
	assert.ErrorIs(t, err, ErrUnknownLeg)
}

func TestIsComplete_OneWayWithoutSelection(t *testing.T) {
	service := NewSelectionService(&MockCatalog{})

	state := roundTripState()
	state.SearchParams.TripType = domain.TripOneWay

	assert.False(t, service.IsComplete(state))
	assert.Equal(t, int64(0), service.TotalPrice(state))
}

func TestIsComplete_MultiCityNeverCompletes(t *testing.T) {
	mockCatalog := &MockCatalog{}
	mockCatalog.On("FlightByID", "SJ101").Return(outboundFlight(), nil)

	service := NewSelectionService(mockCatalog)
	state := roundTripState()
	state.SearchParams.TripType = domain.TripMultiCity

	state, err := service.SelectFare(state, SelectFareInput{FlightID: "SJ101", FareType: "Flex", Leg: domain.LegOutbound})
	require.NoError(t, err)
	assert.False(t, service.IsComplete(state))
}
