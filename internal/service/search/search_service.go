package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/skyjourney/booking/internal/domain"
)

const (
	maxTotalPassengers = 9
	maxChildren        = 8
	maxInfants         = 1
)

var ErrUnknownCategory = errors.New("unknown passenger category")

type SearchUseCase interface {
	Validate(params domain.SearchParams) ValidationErrors
	AdjustCounts(counts domain.PassengerCounts, category domain.PassengerType, delta int) (domain.PassengerCounts, int, error)
	Search(ctx context.Context, params domain.SearchParams, cabin domain.CabinClass) (SearchResults, error)
}

// SearchResults holds the flights available for each direction of a trip.
// Inbound is empty for a one-way search.
type SearchResults struct {
	Outbound []domain.Flight `json:"outbound"`
	Inbound  []domain.Flight `json:"inbound"`
}

type Catalog interface {
	FlightsByRoute(departureCode, arrivalCode string) []domain.Flight
	AirportByCode(code string) (*domain.Airport, error)
}

type FlightCache interface {
	Get(key string) (SearchResults, bool)
	Set(key string, results SearchResults)
}

type SearchService struct {
	catalog  Catalog
	cache    FlightCache
	validate *validator.Validate
}

func NewSearchService(catalog Catalog, cache FlightCache) *SearchService {
	return &SearchService{
		catalog:  catalog,
		cache:    cache,
		validate: validator.New(),
	}
}

// Validate checks a search submission and returns one error per offending
// field. A nil result means the params are ready to search with.
func (s *SearchService) Validate(params domain.SearchParams) ValidationErrors {
	var errs ValidationErrors

	if err := s.validate.Struct(params); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fe := range fieldErrors {
				errs = append(errs, ValidationError{Field: fieldName(fe.Field()), Message: fieldMessage(fe)})
			}
		} else {
			errs = append(errs, ValidationError{Field: "searchParams", Message: err.Error()})
		}
	}

	if params.TripType != "" && !params.TripType.Valid() {
		errs = append(errs, ValidationError{Field: "tripType", Message: "unknown trip type"})
	}
	// Offered in the form, implemented nowhere downstream.
	if params.TripType == domain.TripMultiCity {
		errs = append(errs, ValidationError{Field: "tripType", Message: "multi-city is not available"})
	}

	if params.DepartureCode != "" {
		if _, err := s.catalog.AirportByCode(params.DepartureCode); err != nil {
			errs = append(errs, ValidationError{Field: "departureCode", Message: "unknown airport"})
		}
	}
	if params.ArrivalCode != "" && params.ArrivalCode != params.DepartureCode {
		if _, err := s.catalog.AirportByCode(params.ArrivalCode); err != nil {
			errs = append(errs, ValidationError{Field: "arrivalCode", Message: "unknown airport"})
		}
	}

	departure, departureOK := parseDate(params.DepartureDate)
	if params.DepartureDate != "" && !departureOK {
		errs = append(errs, ValidationError{Field: "departureDate", Message: "invalid date"})
	}

	if params.TripType == domain.TripRoundTrip {
		if params.ReturnDate == "" {
			errs = append(errs, ValidationError{Field: "returnDate", Message: "return date is required for a round trip"})
		} else if ret, ok := parseDate(params.ReturnDate); !ok {
			errs = append(errs, ValidationError{Field: "returnDate", Message: "invalid date"})
		} else if departureOK && ret.Before(departure) {
			errs = append(errs, ValidationError{Field: "returnDate", Message: "return date is before departure date"})
		}
	}

	if counts := params.PassengerCounts; counts != (domain.PassengerCounts{}) {
		if err := checkCounts(counts); err != nil {
			errs = append(errs, ValidationError{Field: "passengerCounts", Message: err.Error()})
		} else if counts.Total() != params.Passengers {
			errs = append(errs, ValidationError{Field: "passengers", Message: "passenger total does not match the breakdown"})
		}
	}

	return errs
}

// AdjustCounts applies a single increment or decrement to one category and
// re-derives the total. The returned counts and total always agree.
func (s *SearchService) AdjustCounts(counts domain.PassengerCounts, category domain.PassengerType, delta int) (domain.PassengerCounts, int, error) {
	next := counts
	switch category {
	case domain.PassengerAdult:
		next.Adult += delta
	case domain.PassengerChild:
		next.Child += delta
	case domain.PassengerInfant:
		next.Infant += delta
	default:
		return counts, counts.Total(), fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if err := checkCounts(next); err != nil {
		return counts, counts.Total(), err
	}
	return next, next.Total(), nil
}

// Search returns the flights flying the requested route that sell the
// requested cabin, read through the results cache. An empty cabin defaults
// to economy. Inbound flights are looked up only for a round trip.
func (s *SearchService) Search(ctx context.Context, params domain.SearchParams, cabin domain.CabinClass) (SearchResults, error) {
	if cabin == "" {
		cabin = domain.CabinEconomy
	}
	if !cabin.Valid() {
		return SearchResults{}, ValidationErrors{{Field: "cabinClass", Message: "unknown cabin class"}}
	}
	if errs := s.Validate(params); errs != nil {
		return SearchResults{}, errs
	}

	key := searchKey(params, cabin)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}

	results := SearchResults{
		Outbound: filterByCabin(s.catalog.FlightsByRoute(params.DepartureCode, params.ArrivalCode), cabin),
	}
	if params.TripType == domain.TripRoundTrip {
		results.Inbound = filterByCabin(s.catalog.FlightsByRoute(params.ArrivalCode, params.DepartureCode), cabin)
	}
	if s.cache != nil {
		s.cache.Set(key, results)
	}
	return results, nil
}

func filterByCabin(flights []domain.Flight, cabin domain.CabinClass) []domain.Flight {
	var out []domain.Flight
	for _, f := range flights {
		if _, ok := f.Classes[cabin]; ok {
			out = append(out, f)
		}
	}
	return out
}

func checkCounts(c domain.PassengerCounts) error {
	if c.Adult < 1 {
		return errors.New("at least one adult is required")
	}
	if c.Child < 0 || c.Child > maxChildren {
		return fmt.Errorf("children must be between 0 and %d", maxChildren)
	}
	if c.Infant < 0 || c.Infant > maxInfants {
		return fmt.Errorf("at most %d infant is allowed", maxInfants)
	}
	if c.Total() > maxTotalPassengers {
		return fmt.Errorf("at most %d passengers are allowed", maxTotalPassengers)
	}
	return nil
}

func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(domain.DateLayout, value)
	return t, err == nil
}

func searchKey(p domain.SearchParams, cabin domain.CabinClass) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s:%s", p.DepartureCode, p.ArrivalCode, p.DepartureDate, p.ReturnDate, p.TripType, cabin)
}

func fieldName(structField string) string {
	switch structField {
	case "DepartureCode":
		return "departureCode"
	case "ArrivalCode":
		return "arrivalCode"
	case "DepartureDate":
		return "departureDate"
	case "ReturnDate":
		return "returnDate"
	case "Passengers":
		return "passengers"
	case "TripType":
		return "tripType"
	}
	return structField
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return "must be a 3-letter airport code"
	case "nefield":
		return "must differ from the departure airport"
	case "min":
		return "at least 1 passenger is required"
	case "max":
		return fmt.Sprintf("at most %d passengers are allowed", maxTotalPassengers)
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}

var _ SearchUseCase = (*SearchService)(nil)
