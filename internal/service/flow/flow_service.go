// Package flow sequences the booking steps. The sequencer never stores
// progress itself: statuses are derived from the current step, and the
// BookingState payload the client threads through is the canonical state.
package flow

import (
	"errors"
	"fmt"

	"github.com/skyjourney/booking/internal/domain"
	"github.com/skyjourney/booking/internal/service/search"
)

type StepStatus string

const (
	StatusComplete StepStatus = "complete"
	StatusCurrent  StepStatus = "current"
	StatusUpcoming StepStatus = "upcoming"
)

// EntryMode selects which step list applies: a booking started from the
// search form carries the full list, one entered straight at the results
// page carries the shorter page-local list.
type EntryMode string

const (
	EntrySearch  EntryMode = "search"
	EntryResults EntryMode = "results"
)

type Step struct {
	Name   string     `json:"name"`
	Path   string     `json:"path"`
	Status StepStatus `json:"status"`
}

var (
	ErrUnknownEntryMode = errors.New("unknown entry mode")
	ErrUnknownStep      = errors.New("unknown step")
	ErrStepUpcoming     = errors.New("step is still upcoming")
	ErrLastStep         = errors.New("already at the last step")
)

var stepLists = map[EntryMode][]Step{
	EntrySearch: {
		{Name: "Search", Path: "/"},
		{Name: "Results", Path: "/search-results"},
		{Name: "Passengers", Path: "/passengers"},
		{Name: "Options", Path: "/options"},
		{Name: "Payment", Path: "/payment"},
		{Name: "Confirmation", Path: "/confirmation"},
	},
	EntryResults: {
		{Name: "Flights", Path: "/search-results"},
		{Name: "Passengers", Path: "/passengers"},
		{Name: "Options", Path: "/options"},
		{Name: "Payment", Path: "/payment"},
	},
}

type FlowUseCase interface {
	Steps(entry EntryMode, current string) ([]Step, error)
	Advance(entry EntryMode, current string, state domain.BookingState) (Step, error)
	Navigate(entry EntryMode, current, target string, state domain.BookingState) (Step, error)
}

type SearchValidator interface {
	Validate(params domain.SearchParams) search.ValidationErrors
}

type SelectionChecker interface {
	IsComplete(state domain.BookingState) bool
}

type PassengerValidator interface {
	ValidateAll(records []domain.Passenger) error
}

type FlowService struct {
	search     SearchValidator
	selection  SelectionChecker
	passengers PassengerValidator
}

func NewFlowService(search SearchValidator, selection SelectionChecker, passengers PassengerValidator) *FlowService {
	return &FlowService{search: search, selection: selection, passengers: passengers}
}

// Steps returns the step list for the entry mode with statuses derived from
// the current step: everything before it is complete, everything after it
// upcoming.
func (s *FlowService) Steps(entry EntryMode, current string) ([]Step, error) {
	list, currentIdx, err := resolve(entry, current)
	if err != nil {
		return nil, err
	}
	out := make([]Step, len(list))
	for i, step := range list {
		step.Status = StatusUpcoming
		if i < currentIdx {
			step.Status = StatusComplete
		} else if i == currentIdx {
			step.Status = StatusCurrent
		}
		out[i] = step
	}
	return out, nil
}

// Advance moves to the next step if the current step's own gate passes.
func (s *FlowService) Advance(entry EntryMode, current string, state domain.BookingState) (Step, error) {
	list, currentIdx, err := resolve(entry, current)
	if err != nil {
		return Step{}, err
	}
	if currentIdx == len(list)-1 {
		return Step{}, ErrLastStep
	}
	if err := s.gate(list[currentIdx].Name, state); err != nil {
		return Step{}, err
	}
	next := list[currentIdx+1]
	next.Status = StatusCurrent
	return next, nil
}

// Navigate jumps to a completed step (or stays on the current one). Jumping
// ahead to an upcoming step is refused; the caller renders it disabled.
func (s *FlowService) Navigate(entry EntryMode, current, target string, state domain.BookingState) (Step, error) {
	list, currentIdx, err := resolve(entry, current)
	if err != nil {
		return Step{}, err
	}
	targetIdx := indexOf(list, target)
	if targetIdx < 0 {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, target)
	}
	if targetIdx > currentIdx {
		return Step{}, fmt.Errorf("%w: %q", ErrStepUpcoming, target)
	}
	step := list[targetIdx]
	step.Status = StatusCurrent
	return step, nil
}

// gate runs the validation owned by the step being left. Steps without a
// continue-gate (options, the search landing of the short list) pass freely.
func (s *FlowService) gate(stepName string, state domain.BookingState) error {
	switch stepName {
	case "Search":
		if state.SearchParams == nil {
			return errors.New("search parameters are missing")
		}
		if errs := s.search.Validate(*state.SearchParams); errs != nil {
			return errs
		}
	case "Results", "Flights":
		if !s.selection.IsComplete(state) {
			return errors.New("flight selection is incomplete")
		}
	case "Passengers":
		expected := 1
		if state.SearchParams != nil {
			expected = state.SearchParams.Passengers
		}
		if len(state.Passengers) != expected {
			return fmt.Errorf("expected %d passenger records, got %d", expected, len(state.Passengers))
		}
		if err := s.passengers.ValidateAll(state.Passengers); err != nil {
			return err
		}
	case "Payment":
		if !state.PaymentOption.Valid() {
			return errors.New("a payment option must be chosen")
		}
	}
	return nil
}

func resolve(entry EntryMode, current string) ([]Step, int, error) {
	list, ok := stepLists[entry]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownEntryMode, entry)
	}
	idx := indexOf(list, current)
	if idx < 0 {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownStep, current)
	}
	return list, idx, nil
}

func indexOf(list []Step, name string) int {
	for i, step := range list {
		if step.Name == name {
			return i
		}
	}
	return -1
}

var _ FlowUseCase = (*FlowService)(nil)
