package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/slot.go -package=repositorymock

import (
	"context"

	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/infra"
	"ranch-booking/internal/infra/repository/converter"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/clock"
	"ranch-booking/internal/pkg/pgconv"
)

type SlotWriteQueries interface {
	CreateRidingSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRidingSlotParams) (sqlc.RidingSlots, error)
	CreateRidingSlotIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRidingSlotParams) (int64, error)
	DeleteRidingSlot(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	clock   clock.Clock
}

func NewSlotRepository(queries SlotWriteQueries, clk clock.Clock) *SlotRepository {
	return &SlotRepository{queries: queries, clock: clk}
}

func (r *SlotRepository) params(slot *ridingslot.Slot) sqlc.CreateRidingSlotParams {
	return sqlc.CreateRidingSlotParams{
		Date:      pgconv.DateToPgtype(slot.Date()),
		Time:      slot.Time(),
		Capacity:  pgconv.IntToInt32(slot.Capacity()),
		CreatedAt: pgconv.TimeToPgtype(r.clock.Now()),
	}
}

func (r *SlotRepository) Create(ctx context.Context, tx sqlc.DBTX, slot *ridingslot.Slot) (*ridingslot.Slot, error) {
	row, err := r.queries.CreateRidingSlot(ctx, tx, r.params(slot))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create riding slot", err)
	}
	return converter.SlotFromRow(row), nil
}

func (r *SlotRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, slot *ridingslot.Slot) (bool, error) {
	affected, err := r.queries.CreateRidingSlotIfAbsent(ctx, tx, r.params(slot))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create riding slot", err)
	}
	return affected > 0, nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteRidingSlot(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete riding slot", err)
	}
	if affected == 0 {
		return infra.NotFound("riding slot not found")
	}
	return nil
}
