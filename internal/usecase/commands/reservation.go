package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"time"

	"ranch-booking/internal/domain/availability"
	"ranch-booking/internal/domain/reservation"
	"ranch-booking/internal/pkg/clock"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReservationInput is a booking request after transport decoding.
type ReservationInput struct {
	Name      string
	Email     string
	Phone     string
	Guests    int
	Message   string
	ServiceID int64
	Date      time.Time
	// EndDate is the checkout day of a multi-night stay. Only pooled
	// services use it.
	EndDate *time.Time
	SlotID  *int64
}

type ReservationCommands interface {
	// Accept is the public intake: the reservation is always stored pending.
	Accept(ctx context.Context, in ReservationInput) (uuid.UUID, error)
	// CreateByAdmin stores a reservation with any initial status. Statuses
	// that consume capacity pass the same gate as Accept.
	CreateByAdmin(ctx context.Context, in ReservationInput, status reservation.Status) (uuid.UUID, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, next reservation.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow         shared.UnitOfWork
	factory     *reservation.Factory
	clock       clock.Clock
	openNominal int
	maxNights   int
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock, cfg config.Config) ReservationCommands {
	return &reservationCommandsImpl{
		uow:         uow,
		factory:     factory,
		clock:       clk,
		openNominal: cfg.Booking.OpenServiceAvailability,
		maxNights:   cfg.Booking.MaxStayNights,
	}
}

func (c *reservationCommandsImpl) Accept(ctx context.Context, in ReservationInput) (uuid.UUID, error) {
	return c.place(ctx, in, reservation.StatusPending, true)
}

func (c *reservationCommandsImpl) CreateByAdmin(ctx context.Context, in ReservationInput, status reservation.Status) (uuid.UUID, error) {
	if !status.IsValid() {
		return uuid.Nil, classify(reservation.ErrInvalidStatus)
	}
	return c.place(ctx, in, status, false)
}

// place runs the admission under the capacity-key locks: recompute, check,
// insert and enqueue all happen in one transaction.
func (c *reservationCommandsImpl) place(ctx context.Context, in ReservationInput, status reservation.Status, public bool) (uuid.UUID, error) {
	var createdID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := tx.Reads().ServiceByID(ctx, in.ServiceID)
		if err != nil {
			return err
		}
		if public && !svc.IsActive() {
			return ErrServiceInactive
		}

		endDate := in.EndDate
		if !svc.IsPooled() {
			endDate = nil
		}
		stay, err := reservation.NewStay(in.Date, endDate)
		if err != nil {
			return err
		}
		if c.maxNights > 0 && stay.NightCount() > c.maxNights {
			return ErrRangeTooLong
		}
		nights := stay.Nights()
		spec := shared.SpecOf(svc)

		if status.ConsumesCapacity() {
			if err := tx.Locks().Acquire(ctx, tx.DB(), availability.LockKeys(spec, nights)); err != nil {
				return err
			}
		}

		state, err := shared.LoadCapacity(ctx, tx.Reads(), spec, nights[0], nights[len(nights)-1], c.openNominal)
		if err != nil {
			return err
		}

		var slot *reservation.SlotRef
		if svc.IsSlotBased() {
			slot, err = resolveSlot(state.SlotsOn(stay.Date()), in.SlotID)
			if err != nil {
				return err
			}
		}

		draft := reservation.Draft{
			Name:    in.Name,
			Email:   in.Email,
			Phone:   in.Phone,
			Guests:  in.Guests,
			Message: in.Message,
			Stay:    stay,
		}
		ref := reservation.ServiceRef{ID: svc.ID(), Name: svc.Name(), Price: svc.Price()}
		res, err := c.factory.NewWithStatus(draft, ref, slot, status)
		if err != nil {
			return err
		}

		if res.ConsumesCapacity() {
			var slotID *int64
			if slot != nil {
				slotID = &slot.ID
			}
			if _, err := availability.Admit(state.Input(stay.Date(), slotID), nights, res.Guests().Count()); err != nil {
				return err
			}
		}

		var poolID *string
		if svc.IsPooled() {
			poolID = svc.PoolID()
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res, poolID); err != nil {
			return err
		}
		if err := enqueueReservationEvent(ctx, tx, shared.TopicReservationCreated, res, "", c.clock.Now()); err != nil {
			return err
		}

		createdID = res.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, classify(err)
	}
	return createdID, nil
}

// resolveSlot picks the slot a slot-based booking uses. A date with a single
// slot selects it implicitly; a date without slots is left to the capacity
// check, which reports it as full.
func resolveSlot(daySlots []availability.SlotSpec, requested *int64) (*reservation.SlotRef, error) {
	if requested != nil {
		for _, s := range daySlots {
			if s.ID == *requested {
				return &reservation.SlotRef{ID: s.ID, Time: s.Time}, nil
			}
		}
		return nil, ErrSlotNotOnDate
	}

	switch len(daySlots) {
	case 0:
		return nil, nil
	case 1:
		return &reservation.SlotRef{ID: daySlots[0].ID, Time: daySlots[0].Time}, nil
	default:
		return nil, ErrSlotRequired
	}
}

func (c *reservationCommandsImpl) TransitionStatus(ctx context.Context, id uuid.UUID, next reservation.Status) error {
	if !next.IsValid() {
		return classify(reservation.ErrInvalidStatus)
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		previous := res.Status()
		changed, err := res.TransitionTo(next, c.clock.Now())
		if err != nil {
			return errs.Wrapf(err, "%s to %s", previous, next)
		}
		if !changed {
			return nil
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return err
		}
		return enqueueReservationEvent(ctx, tx, shared.TopicReservationStatusChanged, res, previous, c.clock.Now())
	})
	return classify(err)
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, tx.DB(), id)
	})
	return classify(err)
}

// ReservationEvent is the outbox payload for reservation topics.
type ReservationEvent struct {
	ReservationID  uuid.UUID `json:"reservationId"`
	ServiceID      int64     `json:"serviceId"`
	ServiceName    string    `json:"serviceName"`
	Date           string    `json:"date"`
	EndDate        *string   `json:"endDate,omitempty"`
	TimeSlotTime   *string   `json:"timeSlotTime,omitempty"`
	Guests         int       `json:"guests"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func enqueueReservationEvent(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation, previous reservation.Status, now time.Time) error {
	event := ReservationEvent{
		ReservationID:  res.ID(),
		ServiceID:      res.Service().ID,
		ServiceName:    res.Service().Name,
		Date:           dates.Format(res.Stay().Date()),
		Guests:         res.Guests().Count(),
		Name:           res.Contact().Name(),
		Email:          res.Contact().Email(),
		Status:         res.Status().String(),
		PreviousStatus: previous.String(),
		OccurredAt:     now,
	}
	if end := res.Stay().EndDate(); end != nil {
		s := dates.Format(*end)
		event.EndDate = &s
	}
	if slot := res.Slot(); slot != nil {
		t := slot.Time
		event.TimeSlotTime = &t
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindReservation, topic, payload, now)
}
