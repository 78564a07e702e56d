package availability

import (
	"fmt"
	"time"

	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/pkg/dates"
)

// LockKeys names the capacity keys an admission must hold, in a stable order
// so concurrent multi-night bookings acquire them without deadlocking.
//
//	slot:<date>             every slot-based booking on the date
//	pool:<pool id>:<date>   one per night
//
// Slot bookings share a per-date key because a whole-day request and a
// single-slot request draw on the same slot capacity.
// Open services need no serialization and get no keys.
func LockKeys(svc ServiceSpec, nights []time.Time) []string {
	switch svc.Mode {
	case service.ModeSlot:
		if len(nights) == 0 {
			return nil
		}
		return []string{fmt.Sprintf("slot:%s", dates.Format(nights[0]))}
	case service.ModePool:
		if svc.PoolID == nil {
			return nil
		}
		keys := make([]string, 0, len(nights))
		for _, n := range nights {
			keys = append(keys, fmt.Sprintf("pool:%s:%s", *svc.PoolID, dates.Format(n)))
		}
		return keys
	default:
		return nil
	}
}
