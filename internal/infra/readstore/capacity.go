package readstore

import (
	"context"
	"time"

	"ranch-booking/internal/domain/availability"
	"ranch-booking/internal/domain/reservation"
	"ranch-booking/internal/domain/resourcepool"
	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/infra"
	"ranch-booking/internal/infra/repository/converter"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CapacityQueries interface {
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Services, error)
	GetResourcePool(ctx context.Context, db sqlc.DBTX, id string) (sqlc.ResourcePools, error)
	GetRidingSlot(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RidingSlots, error)
	ListRidingSlotsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRidingSlotsInRangeParams) ([]sqlc.RidingSlots, error)
	ListOccupyingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupyingReservationsParams) ([]sqlc.Reservations, error)
	ListOccupyingPoolReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupyingPoolReservationsParams) ([]sqlc.Reservations, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
}

// CapacityReadStore serves command-side reads. Bound to a transaction it
// sees that transaction's snapshot; bound to the pool it reads committed
// state.
type CapacityReadStore struct {
	queries CapacityQueries
	db      sqlc.DBTX
}

func NewCapacityReadStore(queries CapacityQueries, db sqlc.DBTX) *CapacityReadStore {
	return &CapacityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CapacityReadStore) ServiceByID(ctx context.Context, id int64) (*service.Service, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *CapacityReadStore) PoolByID(ctx context.Context, id string) (*resourcepool.Pool, error) {
	row, err := r.queries.GetResourcePool(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get resource pool", err)
	}
	return converter.PoolFromRow(row), nil
}

func (r *CapacityReadStore) SlotByID(ctx context.Context, id int64) (*ridingslot.Slot, error) {
	row, err := r.queries.GetRidingSlot(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get riding slot", err)
	}
	return converter.SlotFromRow(row), nil
}

func (r *CapacityReadStore) SlotsBetween(ctx context.Context, from, to time.Time) ([]*ridingslot.Slot, error) {
	rows, err := r.queries.ListRidingSlotsInRange(ctx, r.db, sqlc.ListRidingSlotsInRangeParams{
		From: pgconv.DateToPgtype(from),
		To:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list riding slots", err)
	}
	return converter.SlotsFromRows(rows), nil
}

func (r *CapacityReadStore) OccupyingBookings(ctx context.Context, from, to time.Time) ([]availability.Booking, error) {
	rows, err := r.queries.ListOccupyingReservations(ctx, r.db, sqlc.ListOccupyingReservationsParams{
		Statuses: reservation.ConsumingStatuses(),
		From:     pgconv.DateToPgtype(from),
		To:       pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupying reservations", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *CapacityReadStore) PoolBookings(ctx context.Context, poolID string, from, to time.Time) ([]availability.Booking, error) {
	rows, err := r.queries.ListOccupyingPoolReservations(ctx, r.db, sqlc.ListOccupyingPoolReservationsParams{
		PoolID:   poolID,
		Statuses: reservation.ConsumingStatuses(),
		From:     pgconv.DateToPgtype(from),
		To:       pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pool reservations", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *CapacityReadStore) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}
