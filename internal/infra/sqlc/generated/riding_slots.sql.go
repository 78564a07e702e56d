// source: riding_slots.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const slotColumns = `id, date, time, capacity, created_at`

func scanSlot(row interface{ Scan(...any) error }) (RidingSlots, error) {
	var i RidingSlots
	err := row.Scan(
		&i.ID,
		&i.Date,
		&i.Time,
		&i.Capacity,
		&i.CreatedAt,
	)
	return i, err
}

func collectSlots(rows pgx.Rows) ([]RidingSlots, error) {
	defer rows.Close()
	items := []RidingSlots{}
	for rows.Next() {
		i, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getRidingSlot = `-- name: GetRidingSlot :one
SELECT ` + slotColumns + `
FROM riding_slots
WHERE id = $1
`

func (q *Queries) GetRidingSlot(ctx context.Context, db DBTX, id int64) (RidingSlots, error) {
	return scanSlot(db.QueryRow(ctx, getRidingSlot, id))
}

const listRidingSlotsInRange = `-- name: ListRidingSlotsInRange :many
SELECT ` + slotColumns + `
FROM riding_slots
WHERE ($1::date IS NULL OR date >= $1)
  AND ($2::date IS NULL OR date <= $2)
ORDER BY date, time
`

type ListRidingSlotsInRangeParams struct {
	From pgtype.Date `json:"from"`
	To   pgtype.Date `json:"to"`
}

// ListRidingSlotsInRange treats a null bound as open.
func (q *Queries) ListRidingSlotsInRange(ctx context.Context, db DBTX, arg ListRidingSlotsInRangeParams) ([]RidingSlots, error) {
	rows, err := db.Query(ctx, listRidingSlotsInRange, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return collectSlots(rows)
}

const createRidingSlot = `-- name: CreateRidingSlot :one
INSERT INTO riding_slots (date, time, capacity, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + slotColumns

type CreateRidingSlotParams struct {
	Date      pgtype.Date        `json:"date"`
	Time      string             `json:"time"`
	Capacity  int32              `json:"capacity"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateRidingSlot(ctx context.Context, db DBTX, arg CreateRidingSlotParams) (RidingSlots, error) {
	return scanSlot(db.QueryRow(ctx, createRidingSlot,
		arg.Date,
		arg.Time,
		arg.Capacity,
		arg.CreatedAt,
	))
}

const createRidingSlotIfAbsent = `-- name: CreateRidingSlotIfAbsent :execrows
INSERT INTO riding_slots (date, time, capacity, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (date, time) DO NOTHING
`

func (q *Queries) CreateRidingSlotIfAbsent(ctx context.Context, db DBTX, arg CreateRidingSlotParams) (int64, error) {
	result, err := db.Exec(ctx, createRidingSlotIfAbsent,
		arg.Date,
		arg.Time,
		arg.Capacity,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteRidingSlot = `-- name: DeleteRidingSlot :execrows
DELETE FROM riding_slots WHERE id = $1
`

func (q *Queries) DeleteRidingSlot(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteRidingSlot, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
