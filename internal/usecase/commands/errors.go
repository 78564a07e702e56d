package commands

import (
	"errors"

	"ranch-booking/internal/domain/availability"
	"ranch-booking/internal/domain/gallery"
	"ranch-booking/internal/domain/reservation"
	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/infra"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/pkg/errs"
)

var (
	ErrServiceInactive = errs.New("service is not accepting bookings")
	ErrSlotRequired    = errs.New("a time slot must be chosen for this date")
	ErrSlotNotOnDate   = errs.New("time slot is not offered on the requested date")
	ErrUnknownPool     = errs.New("resource pool does not exist")
	ErrRangeTooLong    = errs.New("date range is too long")
	ErrEmptyTimes      = errs.New("at least one slot time is required")
)

var malformed = []error{
	reservation.ErrMissingName,
	reservation.ErrInvalidEmail,
	reservation.ErrMissingPhone,
	reservation.ErrInvalidGuests,
	reservation.ErrMissingDate,
	reservation.ErrInvalidStayEnd,
	reservation.ErrInvalidStatus,
	service.ErrEmptyName,
	service.ErrNegativePrice,
	service.ErrInvalidMode,
	service.ErrPoolRequired,
	service.ErrPoolNotAllowed,
	ridingslot.ErrMissingDate,
	ridingslot.ErrInvalidTime,
	ridingslot.ErrNegativeCapacity,
	gallery.ErrMissingSource,
	gallery.ErrUnsupportedFormat,
	dates.ErrInvalidDate,
	dates.ErrInvalidRange,
	ErrServiceInactive,
	ErrSlotRequired,
	ErrSlotNotOnDate,
	ErrUnknownPool,
	ErrRangeTooLong,
	ErrEmptyTimes,
}

var taxonomy = []error{
	errs.ErrNotFound,
	errs.ErrCapacityExceeded,
	errs.ErrInvalidTransition,
	errs.ErrMalformedInput,
	errs.ErrConflict,
	errs.ErrUnauthorized,
}

// classify marks err with the taxonomy error handlers map to HTTP statuses.
// Errors that already carry a mark pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, t := range taxonomy {
		if errs.Is(err, t) {
			return err
		}
	}

	switch {
	case errors.Is(err, availability.ErrCapacityExceeded), errors.Is(err, availability.ErrNoSlots):
		return errs.Mark(err, errs.ErrCapacityExceeded)
	case errors.Is(err, reservation.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated), infra.IsKind(err, infra.KindCheckViolated):
		return errs.Mark(err, errs.ErrMalformedInput)
	}

	for _, m := range malformed {
		if errs.Is(err, m) {
			return errs.Mark(err, errs.ErrMalformedInput)
		}
	}
	return err
}
