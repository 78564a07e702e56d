package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"time"

	"ranch-booking/internal/domain/availability"
	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/usecase/shared"
)

type AvailabilityQueries interface {
	ForDate(ctx context.Context, serviceID int64, date time.Time, slotID *int64) (*AvailabilityView, error)
	// SlotsForDate lists every slot on the date with its remaining units.
	SlotsForDate(ctx context.Context, date time.Time) ([]*SlotAvailabilityView, error)
	// Calendar computes availability for each day from `from` to `to`.
	Calendar(ctx context.Context, serviceID int64, from, to time.Time) ([]*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow         shared.UnitOfWork
	openNominal int
	maxDays     int
}

func NewAvailabilityQueries(uow shared.UnitOfWork, cfg config.Config) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:         uow,
		openNominal: cfg.Booking.OpenServiceAvailability,
		maxDays:     cfg.Booking.MaxCalendarDays,
	}
}

func (q *availabilityQueriesImpl) ForDate(ctx context.Context, serviceID int64, date time.Time, slotID *int64) (*AvailabilityView, error) {
	var view *AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		svc, err := reads.ServiceByID(ctx, serviceID)
		if err != nil {
			return err
		}
		spec := shared.SpecOf(svc)
		if !svc.IsSlotBased() {
			slotID = nil
		}
		state, err := shared.LoadCapacity(ctx, reads, spec, date, date, q.openNominal)
		if err != nil {
			return err
		}
		view = toAvailabilityView(availability.Compute(state.Input(date, slotID)))
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return view, nil
}

func (q *availabilityQueriesImpl) SlotsForDate(ctx context.Context, date time.Time) ([]*SlotAvailabilityView, error) {
	var views []*SlotAvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		// Slot usage does not depend on which slot-based service booked it.
		spec := availability.ServiceSpec{Mode: service.ModeSlot}
		state, err := shared.LoadCapacity(ctx, reads, spec, date, date, q.openNominal)
		if err != nil {
			return err
		}

		times := make(map[int64]string)
		for _, s := range state.SlotsOn(date) {
			times[s.ID] = s.Time
		}

		results := availability.PerSlot(state.Input(date, nil))
		views = make([]*SlotAvailabilityView, 0, len(results))
		for _, r := range results {
			views = append(views, &SlotAvailabilityView{
				SlotID:      *r.SlotID,
				Date:        r.Date,
				Time:        times[*r.SlotID],
				Capacity:    r.Capacity,
				Booked:      r.Consumed,
				Available:   r.Available,
				FullyBooked: r.FullyBooked,
			})
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return views, nil
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, serviceID int64, from, to time.Time) ([]*AvailabilityView, error) {
	days := dates.Span(from, to)
	if len(days) == 0 {
		return nil, classify(dates.ErrInvalidRange)
	}
	if q.maxDays > 0 && len(days) > q.maxDays {
		return nil, classify(ErrRangeTooLong)
	}

	var views []*AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		svc, err := reads.ServiceByID(ctx, serviceID)
		if err != nil {
			return err
		}
		state, err := shared.LoadCapacity(ctx, reads, shared.SpecOf(svc), days[0], days[len(days)-1], q.openNominal)
		if err != nil {
			return err
		}
		views = make([]*AvailabilityView, 0, len(days))
		for _, day := range days {
			views = append(views, toAvailabilityView(availability.Compute(state.Input(day, nil))))
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return views, nil
}

func toAvailabilityView(r availability.Result) *AvailabilityView {
	return &AvailabilityView{
		Date:        r.Date,
		ServiceID:   r.ServiceID,
		SlotID:      r.SlotID,
		Mode:        r.Mode.String(),
		Capacity:    r.Capacity,
		Consumed:    r.Consumed,
		Available:   r.Available,
		HasSlots:    r.HasSlots,
		FullyBooked: r.FullyBooked,
	}
}
