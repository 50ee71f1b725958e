// Package passengers collects and validates one detail record per traveller.
package passengers

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/skyjourney/booking/internal/domain"
)

// maxAge bounds a plausible date of birth.
const maxAge = 120

var (
	ErrIndexOutOfRange = errors.New("passenger index out of range")
	ErrUnknownField    = errors.New("unknown passenger field")
)

type PassengerUseCase interface {
	Initialize(counts domain.PassengerCounts) []domain.Passenger
	SetField(records []domain.Passenger, index int, field, value string) ([]domain.Passenger, error)
	ValidateAll(records []domain.Passenger) error
}

type PassengerService struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewPassengerService() *PassengerService {
	return &PassengerService{
		validate: validator.New(),
		now:      time.Now,
	}
}

// Initialize returns blank records typed per category, adults first.
func (s *PassengerService) Initialize(counts domain.PassengerCounts) []domain.Passenger {
	records := make([]domain.Passenger, 0, counts.Total())
	for i := 0; i < counts.Adult; i++ {
		records = append(records, domain.Passenger{Type: domain.PassengerAdult})
	}
	for i := 0; i < counts.Child; i++ {
		records = append(records, domain.Passenger{Type: domain.PassengerChild})
	}
	for i := 0; i < counts.Infant; i++ {
		records = append(records, domain.Passenger{Type: domain.PassengerInfant})
	}
	return records
}

// SetField updates one field of one passenger, leaving every other record
// untouched, and returns the updated slice.
func (s *PassengerService) SetField(records []domain.Passenger, index int, field, value string) ([]domain.Passenger, error) {
	if index < 0 || index >= len(records) {
		return records, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	out := make([]domain.Passenger, len(records))
	copy(out, records)

	p := &out[index]
	switch field {
	case "title":
		p.Title = value
	case "firstName":
		p.FirstName = value
	case "lastName":
		p.LastName = value
	case "nationality":
		p.Nationality = value
	case "dateOfBirth":
		p.DateOfBirth = value
	case "passportNumber":
		p.PassportNumber = value
	case "passportExpiry":
		p.PassportExpiry = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	default:
		return records, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}

// ValidateAll checks every record and reports a single aggregate error for
// the whole form, as the passenger page surfaces one toast, not per-field
// highlights.
func (s *PassengerService) ValidateAll(records []domain.Passenger) error {
	if len(records) == 0 {
		return errors.New("no passenger records")
	}

	today := truncateToDay(s.now())
	oldest := today.AddDate(-maxAge, 0, 0)

	for i, p := range records {
		if err := s.validate.Struct(p); err != nil {
			return fmt.Errorf("passenger %d is incomplete", i+1)
		}

		dob, err := time.Parse(domain.DateLayout, p.DateOfBirth)
		if err != nil {
			return fmt.Errorf("passenger %d has an invalid date of birth", i+1)
		}
		if dob.After(today) || dob.Before(oldest) {
			return fmt.Errorf("passenger %d has an implausible date of birth", i+1)
		}

		expiry, err := time.Parse(domain.DateLayout, p.PassportExpiry)
		if err != nil {
			return fmt.Errorf("passenger %d has an invalid passport expiry date", i+1)
		}
		if expiry.Before(today) {
			return fmt.Errorf("passenger %d has an expired passport", i+1)
		}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var _ PassengerUseCase = (*PassengerService)(nil)
