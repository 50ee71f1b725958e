// Package catalog holds the read-only airport and flight tables the booking
// flow searches against. Both tables are decoded once at startup and never
// refreshed or mutated.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/skyjourney/booking/internal/domain"
)

//go:embed data/airports.json
var airportsJSON []byte

//go:embed data/flights.json
var flightsJSON []byte

type airportTable struct {
	Airports []domain.Airport `json:"airports"`
}

type flightTable struct {
	Flights []domain.Flight `json:"flights"`
}

type Store struct {
	airports       []domain.Airport
	flights        []domain.Flight
	airportsByCode map[string]domain.Airport
	flightsByID    map[string]domain.Flight
}

// New builds a store from the embedded tables.
func New() (*Store, error) {
	return build(airportsJSON, flightsJSON)
}

// NewFromFiles builds a store from JSON files on disk, overriding the
// embedded tables.
func NewFromFiles(airportsPath, flightsPath string) (*Store, error) {
	airports, err := os.ReadFile(airportsPath)
	if err != nil {
		return nil, fmt.Errorf("read airports table: %w", err)
	}
	flights, err := os.ReadFile(flightsPath)
	if err != nil {
		return nil, fmt.Errorf("read flights table: %w", err)
	}
	return build(airports, flights)
}

func build(airportsData, flightsData []byte) (*Store, error) {
	var at airportTable
	if err := json.Unmarshal(airportsData, &at); err != nil {
		return nil, fmt.Errorf("parse airports table: %w", err)
	}
	var ft flightTable
	if err := json.Unmarshal(flightsData, &ft); err != nil {
		return nil, fmt.Errorf("parse flights table: %w", err)
	}

	s := &Store{
		airports:       at.Airports,
		flights:        ft.Flights,
		airportsByCode: make(map[string]domain.Airport, len(at.Airports)),
		flightsByID:    make(map[string]domain.Flight, len(ft.Flights)),
	}
	for _, a := range at.Airports {
		if _, exists := s.airportsByCode[a.Code]; exists {
			return nil, fmt.Errorf("duplicate airport code %q", a.Code)
		}
		s.airportsByCode[a.Code] = a
	}
	for _, f := range ft.Flights {
		if _, exists := s.flightsByID[f.ID]; exists {
			return nil, fmt.Errorf("duplicate flight id %q", f.ID)
		}
		if _, ok := s.airportsByCode[f.DepartureCode]; !ok {
			return nil, fmt.Errorf("flight %q departs from unknown airport %q", f.ID, f.DepartureCode)
		}
		if _, ok := s.airportsByCode[f.ArrivalCode]; !ok {
			return nil, fmt.Errorf("flight %q arrives at unknown airport %q", f.ID, f.ArrivalCode)
		}
		if len(f.Classes) == 0 {
			return nil, fmt.Errorf("flight %q has no cabin classes", f.ID)
		}
		for class, offering := range f.Classes {
			if len(offering.Fares) == 0 {
				return nil, fmt.Errorf("flight %q class %q has no fares", f.ID, class)
			}
		}
		s.flightsByID[f.ID] = f
	}
	return s, nil
}

func (s *Store) ListAirports() []domain.Airport {
	out := make([]domain.Airport, len(s.airports))
	copy(out, s.airports)
	return out
}

func (s *Store) AirportByCode(code string) (*domain.Airport, error) {
	a, ok := s.airportsByCode[code]
	if !ok {
		return nil, fmt.Errorf("unknown airport code %q", code)
	}
	return &a, nil
}

func (s *Store) ListFlights() []domain.Flight {
	out := make([]domain.Flight, len(s.flights))
	copy(out, s.flights)
	return out
}

func (s *Store) FlightByID(id string) (*domain.Flight, error) {
	f, ok := s.flightsByID[id]
	if !ok {
		return nil, fmt.Errorf("unknown flight id %q", id)
	}
	return &f, nil
}

// FlightsByRoute returns flights flying the given direction.
func (s *Store) FlightsByRoute(departureCode, arrivalCode string) []domain.Flight {
	var out []domain.Flight
	for _, f := range s.flights {
		if f.DepartureCode == departureCode && f.ArrivalCode == arrivalCode {
			out = append(out, f)
		}
	}
	return out
}

// FlightsWithClass returns flights that sell the given cabin class.
func (s *Store) FlightsWithClass(class domain.CabinClass) []domain.Flight {
	var out []domain.Flight
	for _, f := range s.flights {
		if _, ok := f.Classes[class]; ok {
			out = append(out, f)
		}
	}
	return out
}
