package reservation

import (
	"ranch-booking/internal/pkg/clock"
)

// Draft carries unvalidated booking input.
type Draft struct {
	Name    string
	Email   string
	Phone   string
	Guests  int
	Message string
	Stay    Stay
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// NewPending builds a reservation as the public intake stores it.
func (f *Factory) NewPending(d Draft, svc ServiceRef, slot *SlotRef) (*Reservation, error) {
	return f.NewWithStatus(d, svc, slot, StatusPending)
}

func (f *Factory) NewWithStatus(d Draft, svc ServiceRef, slot *SlotRef, status Status) (*Reservation, error) {
	contact, err := NewContact(d.Name, d.Email, d.Phone)
	if err != nil {
		return nil, err
	}
	guests, err := NewGuests(d.Guests)
	if err != nil {
		return nil, err
	}
	if d.Stay.Date().IsZero() {
		return nil, ErrMissingDate
	}
	return NewReservation(contact, guests, d.Message, svc, d.Stay, slot, status, f.Clock.Now())
}
