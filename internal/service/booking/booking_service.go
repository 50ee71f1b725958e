package booking

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skyjourney/booking/internal/domain"
)

const referencePrefix = "SJ"

var ErrInvalidPaymentOption = errors.New("invalid payment option")

type BookingUseCase interface {
	Ancillaries() []domain.Ancillary
	ApplyAncillaries(state domain.BookingState, ids []string) (domain.BookingState, error)
	PaymentOptions() []PaymentOptionInfo
	Confirm(state domain.BookingState, option domain.PaymentOption) (domain.BookingState, error)
	Summary(state domain.BookingState) Summary
}

// ReferenceSource supplies the digits of a booking reference. Injected so
// the generator is deterministic under a test double.
type ReferenceSource interface {
	Digits(n int) string
}

type randomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomReferenceSource() ReferenceSource {
	return &randomSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *randomSource) Digits(n int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, n)
	for i := range out {
		out[i] = byte('0' + s.rng.Intn(10))
	}
	return string(out)
}

type PaymentOptionInfo struct {
	ID          domain.PaymentOption `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
}

// Summary is the static confirmation view of a finished booking.
type Summary struct {
	BookingReference string                 `json:"bookingReference"`
	BookingID        string                 `json:"bookingId"`
	SearchParams     domain.SearchParams    `json:"searchParams"`
	Outbound         *domain.SelectedFlight `json:"outbound,omitempty"`
	Inbound          *domain.SelectedFlight `json:"inbound,omitempty"`
	Passengers       []domain.Passenger     `json:"passengers,omitempty"`
	TotalPrice       int64                  `json:"totalPrice"`
}

type BookingServiceOption func(*BookingService)

// WithIDGenerator overrides the internal booking id generator.
func WithIDGenerator(gen func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.newID = gen
	}
}

type BookingService struct {
	reference ReferenceSource
	newID     func() string
}

func NewBookingService(reference ReferenceSource, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		reference: reference,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Ancillaries lists the optional extras offered between passengers and
// payment. Prices are flat per booking, as on the options page.
func (s *BookingService) Ancillaries() []domain.Ancillary {
	return []domain.Ancillary{
		{ID: "upgrade", Title: "Upgrade flights", Description: "Premium Economy Flex Plus", Price: 2900, PriceLabel: "From AED"},
		{ID: "seats", Title: "Choose seats", Description: "For a Regular seat", Price: 0, PriceLabel: "Complimentary"},
		{ID: "baggage", Title: "Add additional baggage", Description: "For an additional 5 kg", Price: 230, PriceLabel: "From AED"},
		{ID: "insurance", Title: "Add travel insurance plan", Description: "For standard travel insurance", Price: 87, PriceLabel: "AED"},
	}
}

// ApplyAncillaries replaces the state's ancillary choices and re-derives the
// total from the fare prices plus the chosen extras.
func (s *BookingService) ApplyAncillaries(state domain.BookingState, ids []string) (domain.BookingState, error) {
	byID := make(map[string]domain.Ancillary)
	for _, a := range s.Ancillaries() {
		byID[a.ID] = a
	}

	var extras int64
	chosen := make([]string, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok {
			return state, fmt.Errorf("unknown ancillary %q", id)
		}
		extras += a.Price
		chosen = append(chosen, id)
	}

	state.Ancillaries = chosen
	state.TotalPrice = state.FareTotal() + extras
	return state, nil
}

func (s *BookingService) PaymentOptions() []PaymentOptionInfo {
	return []PaymentOptionInfo{
		{ID: domain.PaymentFull, Title: "In full", Description: "Pay in full, using your preferred payment method"},
		{ID: domain.PaymentCashMiles, Title: "Cash+Miles", Description: "Use Skywards Miles to reduce the total price"},
		{ID: domain.PaymentHold, Title: "Hold Your Fare", Description: "Need more time to decide? Hold your fare for 72 hours"},
	}
}

// Confirm finalizes the booking: it records the payment option and stamps
// the state with an internal booking id and the customer-facing reference.
// A missing or partial payload is filled from the shared fallback so the
// confirmation always renders.
func (s *BookingService) Confirm(state domain.BookingState, option domain.PaymentOption) (domain.BookingState, error) {
	if !option.Valid() {
		return state, fmt.Errorf("%w: %q", ErrInvalidPaymentOption, option)
	}

	state = s.reprice(state.Merge(domain.FallbackState()))
	state.PaymentOption = option
	state.BookingID = s.newID()
	state.BookingReference = referencePrefix + s.reference.Digits(6)
	return state, nil
}

// Summary renders whatever state it is handed, falling back to the shared
// defaults when the payload is absent. A state without a reference gets a
// fresh one, mirroring direct navigation to the confirmation page.
func (s *BookingService) Summary(state domain.BookingState) Summary {
	state = s.reprice(state.Merge(domain.FallbackState()))
	if state.BookingReference == "" {
		state.BookingReference = referencePrefix + s.reference.Digits(6)
	}
	return Summary{
		BookingReference: state.BookingReference,
		BookingID:        state.BookingID,
		SearchParams:     *state.SearchParams,
		Outbound:         state.SelectedOutbound,
		Inbound:          state.SelectedInbound,
		Passengers:       state.Passengers,
		TotalPrice:       state.TotalPrice,
	}
}

// reprice re-derives the total from the selected fares plus any ancillaries
// already on the state. Merge only restores the fare portion, so extras
// chosen on the options page are priced back in here.
func (s *BookingService) reprice(state domain.BookingState) domain.BookingState {
	byID := make(map[string]domain.Ancillary)
	for _, a := range s.Ancillaries() {
		byID[a.ID] = a
	}
	var extras int64
	for _, id := range state.Ancillaries {
		extras += byID[id].Price
	}
	state.TotalPrice = state.FareTotal() + extras
	return state
}

var _ BookingUseCase = (*BookingService)(nil)
