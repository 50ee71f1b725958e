package domain

type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premiumEconomy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

func (c CabinClass) Valid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	}
	return false
}

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// FareOption is a priced bundle of conditions within one cabin class of a flight.
type FareOption struct {
	FareType      string `json:"fareType"`
	Price         int64  `json:"price"`
	Baggage       string `json:"baggage"`
	CabinBaggage  string `json:"cabinBaggage"`
	SeatSelection string `json:"seatSelection"`
	ChangeFee     string `json:"changeFee"`
	RefundFee     string `json:"refundFee"`
	SkywardsMiles int64  `json:"skywardsMiles"`
}

type CabinOffering struct {
	Duration string       `json:"duration"`
	Fares    []FareOption `json:"fares"`
}

type Flight struct {
	ID            string                       `json:"id"`
	DepartureCode string                       `json:"departureCode"`
	ArrivalCode   string                       `json:"arrivalCode"`
	DepartureTime string                       `json:"departureTime"`
	ArrivalTime   string                       `json:"arrivalTime"`
	Aircraft      string                       `json:"aircraft"`
	StopType      string                       `json:"stopType"`
	Classes       map[CabinClass]CabinOffering `json:"classes"`
}

// Fare returns the fare option with the given type in the given cabin class.
func (f *Flight) Fare(class CabinClass, fareType string) (FareOption, bool) {
	offering, ok := f.Classes[class]
	if !ok {
		return FareOption{}, false
	}
	for _, fare := range offering.Fares {
		if fare.FareType == fareType {
			return fare, true
		}
	}
	return FareOption{}, false
}
