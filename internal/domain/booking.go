package domain

type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
	TripMultiCity TripType = "multi-city"
)

func (t TripType) Valid() bool {
	switch t {
	case TripOneWay, TripRoundTrip, TripMultiCity:
		return true
	}
	return false
}

type LegType string

const (
	LegOutbound LegType = "outbound"
	LegInbound  LegType = "inbound"
)

// DateLayout is the wire format for all calendar dates in the flow.
const DateLayout = "2006-01-02"

type PassengerCounts struct {
	Adult  int `json:"adult"`
	Child  int `json:"child"`
	Infant int `json:"infant"`
}

func (c PassengerCounts) Total() int {
	return c.Adult + c.Child + c.Infant
}

// SearchParams is created once at search submission and threaded forward
// unchanged through the rest of the flow.
type SearchParams struct {
	DepartureCode   string          `json:"departureCode" validate:"required,len=3"`
	ArrivalCode     string          `json:"arrivalCode" validate:"required,len=3,nefield=DepartureCode"`
	DepartureDate   string          `json:"departureDate" validate:"required"`
	ReturnDate      string          `json:"returnDate,omitempty"`
	Passengers      int             `json:"passengers" validate:"min=1,max=9"`
	TripType        TripType        `json:"tripType" validate:"required"`
	PassengerCounts PassengerCounts `json:"passengerCounts"`
}

// SelectedFlight is replaced wholesale on re-selection, never mutated.
type SelectedFlight struct {
	FlightID string     `json:"flightId"`
	Class    CabinClass `json:"class"`
	FareType string     `json:"fareType"`
	Price    int64      `json:"price"`
	Leg      LegType    `json:"legType"`
}

type PassengerType string

const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

type Passenger struct {
	Type           PassengerType `json:"type"`
	Title          string        `json:"title,omitempty"`
	FirstName      string        `json:"firstName" validate:"required"`
	LastName       string        `json:"lastName" validate:"required"`
	Nationality    string        `json:"nationality" validate:"required"`
	DateOfBirth    string        `json:"dateOfBirth" validate:"required"`
	PassportNumber string        `json:"passportNumber" validate:"required"`
	PassportExpiry string        `json:"passportExpiry" validate:"required"`
	Email          string        `json:"email,omitempty"`
	Phone          string        `json:"phone,omitempty"`
}

type Ancillary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	PriceLabel  string `json:"priceLabel"`
}

type PaymentOption string

const (
	PaymentFull      PaymentOption = "full"
	PaymentCashMiles PaymentOption = "cash-miles"
	PaymentHold      PaymentOption = "hold"
)

func (p PaymentOption) Valid() bool {
	switch p {
	case PaymentFull, PaymentCashMiles, PaymentHold:
		return true
	}
	return false
}

// BookingState is the navigation payload threaded through every step of the
// flow. Every field is optional on input: any step can be entered directly,
// so consumers fill gaps from FallbackState before acting.
type BookingState struct {
	SearchParams     *SearchParams   `json:"searchParams,omitempty"`
	CabinClass       CabinClass      `json:"cabinClass,omitempty"`
	SelectedOutbound *SelectedFlight `json:"selectedOutbound,omitempty"`
	SelectedInbound  *SelectedFlight `json:"selectedInbound,omitempty"`
	TotalPrice       int64           `json:"totalPrice"`
	Passengers       []Passenger     `json:"passengers,omitempty"`
	Ancillaries      []string        `json:"ancillaries,omitempty"`
	PaymentOption    PaymentOption   `json:"paymentOption,omitempty"`
	BookingID        string          `json:"bookingId,omitempty"`
	BookingReference string          `json:"bookingReference,omitempty"`
}

// FallbackState is the shared default every step renders from when the
// payload is missing or partial: a one-adult DXB to LHR round trip with both
// economy Flex legs selected.
func FallbackState() BookingState {
	return BookingState{
		SearchParams: &SearchParams{
			DepartureCode:   "DXB",
			ArrivalCode:     "LHR",
			DepartureDate:   "2025-05-08",
			ReturnDate:      "2025-05-15",
			Passengers:      1,
			TripType:        TripRoundTrip,
			PassengerCounts: PassengerCounts{Adult: 1},
		},
		CabinClass:       CabinEconomy,
		SelectedOutbound: &SelectedFlight{FlightID: "SJ101", Class: CabinEconomy, FareType: "Flex", Price: 1600, Leg: LegOutbound},
		SelectedInbound:  &SelectedFlight{FlightID: "SJ202", Class: CabinEconomy, FareType: "Flex", Price: 460, Leg: LegInbound},
		TotalPrice:       2060,
	}
}

// FareTotal sums the prices of the selected legs. Ancillary extras are
// priced by the booking service on top of this.
func (s BookingState) FareTotal() int64 {
	var price int64
	if s.SelectedOutbound != nil {
		price += s.SelectedOutbound.Price
	}
	if s.SelectedInbound != nil {
		price += s.SelectedInbound.Price
	}
	return price
}

// Merge fills the gaps in s from the fallback and returns the result.
// Present fields always win over defaults. A zero TotalPrice is re-derived
// from the selected fares only; callers that price ancillaries add those
// afterwards.
func (s BookingState) Merge(fallback BookingState) BookingState {
	if s.SearchParams == nil {
		s.SearchParams = fallback.SearchParams
	}
	if s.CabinClass == "" {
		s.CabinClass = fallback.CabinClass
	}
	if s.SelectedOutbound == nil && s.SelectedInbound == nil {
		s.SelectedOutbound = fallback.SelectedOutbound
		s.SelectedInbound = fallback.SelectedInbound
	}
	if s.TotalPrice == 0 {
		s.TotalPrice = s.FareTotal()
	}
	return s
}
