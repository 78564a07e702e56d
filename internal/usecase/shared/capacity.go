package shared

import (
	"context"
	"time"

	"ranch-booking/internal/domain/availability"
	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/pkg/errs"
)

// CapacityState is the stored state behind availability for one service over
// an inclusive date range.
type CapacityState struct {
	spec        availability.ServiceSpec
	pool        *availability.PoolSpec
	slots       map[string][]availability.SlotSpec
	bookings    []availability.Booking
	openNominal int
}

func SpecOf(svc *service.Service) availability.ServiceSpec {
	return availability.ServiceSpec{
		ID:     svc.ID(),
		Mode:   svc.Mode(),
		PoolID: svc.PoolID(),
	}
}

// LoadCapacity reads only what the service's capacity mode needs: slots and
// bookings for slot services, the pool and its bookings for pooled ones and
// nothing for open services.
func LoadCapacity(ctx context.Context, r CapacityReader, spec availability.ServiceSpec, from, to time.Time, openNominal int) (*CapacityState, error) {
	state := &CapacityState{
		spec:        spec,
		slots:       map[string][]availability.SlotSpec{},
		openNominal: openNominal,
	}

	switch spec.Mode {
	case service.ModeSlot:
		slots, err := r.SlotsBetween(ctx, from, to)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			key := dates.Format(s.Date())
			state.slots[key] = append(state.slots[key], SlotSpecOf(s))
		}
		state.bookings, err = r.OccupyingBookings(ctx, from, to)
		if err != nil {
			return nil, err
		}
	case service.ModePool:
		if spec.PoolID == nil {
			return nil, errs.Wrap(availability.ErrPoolMissing, "service has no pool")
		}
		pool, err := r.PoolByID(ctx, *spec.PoolID)
		if err != nil {
			return nil, err
		}
		state.pool = &availability.PoolSpec{ID: pool.ID(), Capacity: pool.Capacity()}
		state.bookings, err = r.PoolBookings(ctx, pool.ID(), from, to)
		if err != nil {
			return nil, err
		}
	}

	return state, nil
}

func SlotSpecOf(s *ridingslot.Slot) availability.SlotSpec {
	return availability.SlotSpec{ID: s.ID(), Time: s.Time(), Capacity: s.Capacity()}
}

func (s *CapacityState) Spec() availability.ServiceSpec { return s.spec }

func (s *CapacityState) SlotsOn(date time.Time) []availability.SlotSpec {
	return s.slots[dates.Format(date)]
}

// Input assembles the engine input for date, optionally narrowed to a slot.
func (s *CapacityState) Input(date time.Time, slotID *int64) availability.Input {
	return availability.Input{
		Date:        date,
		Service:     s.spec,
		SlotID:      slotID,
		Slots:       s.SlotsOn(date),
		Pool:        s.pool,
		Bookings:    s.bookings,
		OpenNominal: s.openNominal,
	}
}
