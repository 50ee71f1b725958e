// Package selection keeps the per-leg fare choices of the results step and
// derives the running total and completeness from them.
package selection

import (
	"errors"
	"fmt"

	"github.com/skyjourney/booking/internal/domain"
)

var (
	ErrUnknownLeg   = errors.New("unknown leg type")
	ErrUnknownClass = errors.New("unknown cabin class")
)

type SelectionUseCase interface {
	SelectFare(state domain.BookingState, input SelectFareInput) (domain.BookingState, error)
	ClearSelection(state domain.BookingState, leg domain.LegType) (domain.BookingState, error)
	SetCabinClass(state domain.BookingState, class domain.CabinClass) (domain.BookingState, error)
	TotalPrice(state domain.BookingState) int64
	IsComplete(state domain.BookingState) bool
}

type Catalog interface {
	FlightByID(id string) (*domain.Flight, error)
}

type SelectFareInput struct {
	FlightID string         `json:"flightId"`
	FareType string         `json:"fareType"`
	Leg      domain.LegType `json:"legType"`
}

type SelectionService struct {
	catalog Catalog
}

func NewSelectionService(catalog Catalog) *SelectionService {
	return &SelectionService{catalog: catalog}
}

// SelectFare overwrites the current selection for the input's leg. The fare
// is looked up in the state's cabin class so the stored price can never
// disagree with the catalog.
func (s *SelectionService) SelectFare(state domain.BookingState, input SelectFareInput) (domain.BookingState, error) {
	class := state.CabinClass
	if class == "" {
		class = domain.CabinEconomy
		state.CabinClass = class
	}

	flight, err := s.catalog.FlightByID(input.FlightID)
	if err != nil {
		return state, err
	}
	fare, ok := flight.Fare(class, input.FareType)
	if !ok {
		return state, fmt.Errorf("flight %s has no %q fare in %s", input.FlightID, input.FareType, class)
	}

	selected := &domain.SelectedFlight{
		FlightID: input.FlightID,
		Class:    class,
		FareType: input.FareType,
		Price:    fare.Price,
		Leg:      input.Leg,
	}

	switch input.Leg {
	case domain.LegOutbound:
		state.SelectedOutbound = selected
	case domain.LegInbound:
		state.SelectedInbound = selected
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownLeg, input.Leg)
	}

	state.TotalPrice = s.TotalPrice(state)
	return state, nil
}

func (s *SelectionService) ClearSelection(state domain.BookingState, leg domain.LegType) (domain.BookingState, error) {
	switch leg {
	case domain.LegOutbound:
		state.SelectedOutbound = nil
	case domain.LegInbound:
		state.SelectedInbound = nil
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownLeg, leg)
	}
	state.TotalPrice = s.TotalPrice(state)
	return state, nil
}

// SetCabinClass switches the cabin class and invalidates both selections:
// fares are class-scoped, so neither leg's choice survives the switch.
func (s *SelectionService) SetCabinClass(state domain.BookingState, class domain.CabinClass) (domain.BookingState, error) {
	if !class.Valid() {
		return state, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	state.CabinClass = class
	state.SelectedOutbound = nil
	state.SelectedInbound = nil
	state.TotalPrice = 0
	return state, nil
}

// TotalPrice sums the present legs; an absent leg contributes 0.
func (s *SelectionService) TotalPrice(state domain.BookingState) int64 {
	return state.FareTotal()
}

// IsComplete reports whether the selection satisfies the trip type. A
// multi-city trip is never complete: nothing downstream implements it.
func (s *SelectionService) IsComplete(state domain.BookingState) bool {
	tripType := domain.TripRoundTrip
	if state.SearchParams != nil {
		tripType = state.SearchParams.TripType
	}
	switch tripType {
	case domain.TripOneWay:
		return state.SelectedOutbound != nil
	case domain.TripRoundTrip:
		return state.SelectedOutbound != nil && state.SelectedInbound != nil
	}
	return false
}

var _ SelectionUseCase = (*SelectionService)(nil)
