// Package availability decides how many booking units remain for a date and
// whether a request fits. It never reads storage: callers load the slots,
// pool and consuming bookings for a capacity key and pass them in.
package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"ranch-booking/internal/domain/reservation"
	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/pkg/dates"
)

var (
	ErrCapacityExceeded = errors.New("requested units exceed remaining availability")
	ErrNoSlots          = errors.New("no riding slots offered on this date")
	ErrPoolMissing      = errors.New("service pool is not defined")
)

// DefaultOpenAvailability is reported for services without a capacity model.
const DefaultOpenAvailability = 3

type ServiceSpec struct {
	ID     int64
	Mode   service.CapacityMode
	PoolID *string
}

type SlotSpec struct {
	ID       int64
	Time     string
	Capacity int
}

type PoolSpec struct {
	ID       string
	Capacity int
}

// Booking is the slice of a stored reservation the engine needs.
type Booking struct {
	ServiceID int64
	Date      time.Time
	EndDate   *time.Time
	SlotID    *int64
	Guests    int
	Status    reservation.Status
}

// Occupies reports whether the booking holds the given date. Multi-night
// stays hold every night up to, but not including, their end date.
func (b Booking) Occupies(date time.Time) bool {
	date = dates.Normalize(date)
	start := dates.Normalize(b.Date)
	if b.EndDate == nil {
		return start.Equal(date)
	}
	return !date.Before(start) && date.Before(dates.Normalize(*b.EndDate))
}

type Input struct {
	Date    time.Time
	Service ServiceSpec
	// SlotID narrows a slot-based computation to one slot.
	SlotID *int64
	// Slots are the riding slots defined on Date.
	Slots []SlotSpec
	// Pool is the resource pool a pooled service maps onto.
	Pool *PoolSpec
	// Bookings may include unrelated or cancelled rows; they are filtered here.
	Bookings []Booking
	// OpenNominal overrides DefaultOpenAvailability when positive.
	OpenNominal int
}

type Result struct {
	Date        time.Time
	ServiceID   int64
	SlotID      *int64
	Mode        service.CapacityMode
	Capacity    int
	Consumed    int
	Available   int
	HasSlots    bool
	FullyBooked bool
}

// Compute derives availability for one date from the live reservation set.
func Compute(in Input) Result {
	res := Result{
		Date:      dates.Normalize(in.Date),
		ServiceID: in.Service.ID,
		SlotID:    in.SlotID,
		Mode:      in.Service.Mode,
	}

	switch in.Service.Mode {
	case service.ModeSlot:
		computeSlot(in, &res)
	case service.ModePool:
		computePool(in, &res)
	default:
		nominal := in.OpenNominal
		if nominal <= 0 {
			nominal = DefaultOpenAvailability
		}
		res.Capacity = nominal
		res.Available = nominal
		return res
	}

	res.Available = max(0, res.Capacity-res.Consumed)
	res.FullyBooked = res.Available == 0 && (res.Mode != service.ModeSlot || res.HasSlots)
	return res
}

func computeSlot(in Input, res *Result) {
	res.HasSlots = len(in.Slots) > 0
	if !res.HasSlots {
		return
	}

	daySlots := make(map[int64]struct{}, len(in.Slots))
	for _, s := range in.Slots {
		daySlots[s.ID] = struct{}{}
		if in.SlotID == nil || *in.SlotID == s.ID {
			res.Capacity += s.Capacity
		}
	}

	for _, b := range in.Bookings {
		if !b.Status.ConsumesCapacity() || !b.Occupies(res.Date) {
			continue
		}
		if !countsTowardSlots(b, in.Service.ID, in.SlotID, daySlots) {
			continue
		}
		res.Consumed += reservation.CoerceGuests(b.Guests)
	}
}

// countsTowardSlots: with a slot chosen only bookings on that slot count.
// For the whole day every booking of this service counts, including ones
// whose slot has since been deleted, plus other services' bookings on the
// day's slots.
func countsTowardSlots(b Booking, serviceID int64, slotID *int64, daySlots map[int64]struct{}) bool {
	if slotID != nil {
		return b.SlotID != nil && *b.SlotID == *slotID
	}
	if b.ServiceID == serviceID {
		return true
	}
	if b.SlotID == nil {
		return false
	}
	_, ok := daySlots[*b.SlotID]
	return ok
}

// Pooled services take one whole unit per booking regardless of guests; the
// caller passes bookings of every service mapped onto the pool.
func computePool(in Input, res *Result) {
	if in.Pool == nil {
		return
	}
	res.Capacity = in.Pool.Capacity
	for _, b := range in.Bookings {
		if b.Status.ConsumesCapacity() && b.Occupies(res.Date) {
			res.Consumed++
		}
	}
}

// Units is what a request consumes from Compute's Available figure.
func Units(mode service.CapacityMode, guests int) int {
	if mode == service.ModePool {
		return 1
	}
	return reservation.CoerceGuests(guests)
}

// Admit checks that a request for guests fits on every night. For slot and
// open services nights holds a single date.
func Admit(in Input, nights []time.Time, guests int) ([]Result, error) {
	if len(nights) == 0 {
		nights = []time.Time{in.Date}
	}
	if in.Service.Mode == service.ModePool && in.Pool == nil {
		return nil, ErrPoolMissing
	}

	need := Units(in.Service.Mode, guests)
	results := make([]Result, 0, len(nights))
	for _, night := range nights {
		step := in
		step.Date = night
		r := Compute(step)
		results = append(results, r)

		switch in.Service.Mode {
		case service.ModeOpen:
			continue
		case service.ModeSlot:
			if !r.HasSlots {
				return results, ErrNoSlots
			}
		}
		if need > r.Available {
			return results, fmt.Errorf("%w: %s has %d left, %d requested",
				ErrCapacityExceeded, dates.Format(r.Date), r.Available, need)
		}
	}
	return results, nil
}

// PerSlot computes availability for each slot on the date, ordered by time.
func PerSlot(in Input) []Result {
	slots := append([]SlotSpec(nil), in.Slots...)
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Time == slots[j].Time {
			return slots[i].ID < slots[j].ID
		}
		return slots[i].Time < slots[j].Time
	})

	out := make([]Result, 0, len(slots))
	for _, s := range slots {
		step := in
		id := s.ID
		step.SlotID = &id
		out = append(out, Compute(step))
	}
	return out
}
