package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// ServiceRef is the service snapshot a reservation keeps. Name and price are
// copied so later catalog edits do not rewrite history.
type ServiceRef struct {
	ID    int64
	Name  string
	Price int64
}

type SlotRef struct {
	ID   int64
	Time string
}

type Reservation struct {
	id        uuid.UUID
	contact   Contact
	guests    Guests
	message   string
	service   ServiceRef
	stay      Stay
	slot      *SlotRef
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(
	contact Contact,
	guests Guests,
	message string,
	svc ServiceRef,
	stay Stay,
	slot *SlotRef,
	status Status,
	now time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:        uuid.New(),
		contact:   contact,
		guests:    guests,
		message:   message,
		service:   svc,
		stay:      stay,
		slot:      slot,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	contact Contact,
	guests Guests,
	message string,
	svc ServiceRef,
	stay Stay,
	slot *SlotRef,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		contact:   contact,
		guests:    guests,
		message:   message,
		service:   svc,
		stay:      stay,
		slot:      slot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// TransitionTo moves the reservation to next. Cancelling a cancelled
// reservation succeeds without change; changed reports whether anything
// needs to be persisted.
func (r *Reservation) TransitionTo(next Status, now time.Time) (changed bool, err error) {
	if !next.IsValid() {
		return false, ErrInvalidStatus
	}
	if r.status == StatusCancelled && next == StatusCancelled {
		return false, nil
	}
	if !r.status.CanTransitionTo(next) {
		return false, ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return true, nil
}

func (r *Reservation) ConsumesCapacity() bool {
	return r.status.ConsumesCapacity()
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Contact() Contact     { return r.contact }
func (r *Reservation) Guests() Guests       { return r.guests }
func (r *Reservation) Message() string      { return r.message }
func (r *Reservation) Service() ServiceRef  { return r.service }
func (r *Reservation) Stay() Stay           { return r.stay }
func (r *Reservation) Slot() *SlotRef       { return r.slot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
