package reservation

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"ranch-booking/internal/pkg/dates"
)

var (
	ErrMissingName    = errors.New("guest name is required")
	ErrInvalidEmail   = errors.New("a valid email is required")
	ErrMissingPhone   = errors.New("phone is required")
	ErrInvalidGuests  = errors.New("guest count must be at least 1")
	ErrMissingDate    = errors.New("reservation date is required")
	ErrInvalidStayEnd = errors.New("end date must be after start date")
)

type Contact struct {
	name  string
	email string
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Contact{}, ErrMissingName
	}
	if _, err := mail.ParseAddress(email); err != nil || strings.ContainsAny(email, "<> ") {
		return Contact{}, ErrInvalidEmail
	}
	if phone == "" {
		return Contact{}, ErrMissingPhone
	}
	return Contact{name: name, email: email, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

type Guests struct {
	count int
}

func NewGuests(n int) (Guests, error) {
	if n < 1 {
		return Guests{}, ErrInvalidGuests
	}
	return Guests{count: n}, nil
}

// CoerceGuests is the lenient reading used when summing stored usage: any
// count below one is taken as one guest.
func CoerceGuests(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (g Guests) Count() int { return g.count }

// Stay is the booked date and, for multi-night bookings, the checkout date.
type Stay struct {
	date    time.Time
	endDate *time.Time
}

func NewStay(date time.Time, endDate *time.Time) (Stay, error) {
	if date.IsZero() {
		return Stay{}, ErrMissingDate
	}
	date = dates.Normalize(date)
	if endDate == nil {
		return Stay{date: date}, nil
	}
	end := dates.Normalize(*endDate)
	if !end.After(date) {
		return Stay{}, ErrInvalidStayEnd
	}
	return Stay{date: date, endDate: &end}, nil
}

func (s Stay) Date() time.Time     { return s.date }
func (s Stay) EndDate() *time.Time { return s.endDate }

// NightCount is the number of dates the stay occupies.
func (s Stay) NightCount() int {
	if s.endDate == nil {
		return 1
	}
	// Unix seconds rather than Sub: a Duration saturates past ~292 years.
	return int((s.endDate.Unix() - s.date.Unix()) / 86400)
}

// Nights lists every date the stay occupies.
func (s Stay) Nights() []time.Time {
	nights, err := dates.Nights(s.date, s.endDate)
	if err != nil {
		return []time.Time{s.date}
	}
	return nights
}

// RestoreContact rebuilds a stored contact without validating it again.
func RestoreContact(name, email, phone string) Contact {
	return Contact{name: name, email: email, phone: phone}
}

// RestoreGuests rebuilds a stored guest count, reading anything below one as
// one guest.
func RestoreGuests(n int) Guests {
	return Guests{count: CoerceGuests(n)}
}

// RestoreStay rebuilds a stored stay. An end date that is not after the start
// date is dropped.
func RestoreStay(date time.Time, endDate *time.Time) Stay {
	date = dates.Normalize(date)
	if endDate == nil {
		return Stay{date: date}
	}
	end := dates.Normalize(*endDate)
	if !end.After(date) {
		return Stay{date: date}
	}
	return Stay{date: date, endDate: &end}
}
