package queries

import (
	"ranch-booking/internal/domain/availability"
	"ranch-booking/internal/infra"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/pkg/errs"
)

var (
	ErrInvalidCursor = errs.New("invalid pagination cursor")
	ErrRangeTooLong  = errs.New("date range is too long")
)

// classify marks read-side failures the way handlers expect.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case errs.Is(err, ErrInvalidCursor), errs.Is(err, ErrRangeTooLong),
		errs.Is(err, dates.ErrInvalidRange), errs.Is(err, dates.ErrInvalidDate):
		return errs.Mark(err, errs.ErrMalformedInput)
	case errs.Is(err, availability.ErrPoolMissing):
		return errs.Mark(err, errs.ErrNotFound)
	default:
		return err
	}
}
