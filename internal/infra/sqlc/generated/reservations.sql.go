// source: reservations.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, name, email, phone, guests, message, service_id, service_name, service_price, date, end_date, time_slot_id, time_slot_time, pool_id, status, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Guests,
		&i.Message,
		&i.ServiceID,
		&i.ServiceName,
		&i.ServicePrice,
		&i.Date,
		&i.EndDate,
		&i.TimeSlotID,
		&i.TimeSlotTime,
		&i.PoolID,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectReservations(rows pgx.Rows) ([]Reservations, error) {
	defer rows.Close()
	items := []Reservations{}
	for rows.Next() {
		i, err := scanReservation(rows)
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

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (
    id, name, email, phone, guests, message,
    service_id, service_name, service_price,
    date, end_date, time_slot_id, time_slot_time, pool_id,
    status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
RETURNING ` + reservationColumns

type CreateReservationParams struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Guests       int32              `json:"guests"`
	Message      string             `json:"message"`
	ServiceID    int64              `json:"service_id"`
	ServiceName  string             `json:"service_name"`
	ServicePrice int64              `json:"service_price"`
	Date         pgtype.Date        `json:"date"`
	EndDate      pgtype.Date        `json:"end_date"`
	TimeSlotID   pgtype.Int8        `json:"time_slot_id"`
	TimeSlotTime pgtype.Text        `json:"time_slot_time"`
	PoolID       pgtype.Text        `json:"pool_id"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Guests,
		arg.Message,
		arg.ServiceID,
		arg.ServiceName,
		arg.ServicePrice,
		arg.Date,
		arg.EndDate,
		arg.TimeSlotID,
		arg.TimeSlotTime,
		arg.PoolID,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	))
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const getReservationForUpdate = `-- name: GetReservationForUpdate :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationForUpdate, id))
}

const updateReservationStatus = `-- name: UpdateReservationStatus :execrows
UPDATE reservations
SET status = $2,
    updated_at = $3
WHERE id = $1
`

type UpdateReservationStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// A booking occupies [date, end_date) when it has an end date and the single
// day date otherwise.
const listOccupyingReservations = `-- name: ListOccupyingReservations :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE status = ANY($1::text[])
  AND date <= $3
  AND COALESCE(end_date, date + 1) > $2
ORDER BY date, created_at
`

type ListOccupyingReservationsParams struct {
	Statuses []string    `json:"statuses"`
	From     pgtype.Date `json:"from"`
	To       pgtype.Date `json:"to"`
}

// ListOccupyingReservations returns bookings in one of the given statuses
// that occupy at least one day of the inclusive range [From, To].
func (q *Queries) ListOccupyingReservations(ctx context.Context, db DBTX, arg ListOccupyingReservationsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listOccupyingReservations, arg.Statuses, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const listOccupyingPoolReservations = `-- name: ListOccupyingPoolReservations :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE pool_id = $1
  AND status = ANY($2::text[])
  AND date <= $4
  AND COALESCE(end_date, date + 1) > $3
ORDER BY date, created_at
`

type ListOccupyingPoolReservationsParams struct {
	PoolID   string      `json:"pool_id"`
	Statuses []string    `json:"statuses"`
	From     pgtype.Date `json:"from"`
	To       pgtype.Date `json:"to"`
}

func (q *Queries) ListOccupyingPoolReservations(ctx context.Context, db DBTX, arg ListOccupyingPoolReservationsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listOccupyingPoolReservations, arg.PoolID, arg.Statuses, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

// Newest first, keyset on (created_at, id). A null filter matches all rows.
const listReservations = `-- name: ListReservations :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::bigint IS NULL OR service_id = $2)
  AND ($3::date IS NULL OR date >= $3)
  AND ($4::date IS NULL OR date <= $4)
  AND ($5::timestamptz IS NULL OR (created_at, id) < ($5, $6::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $7
`

type ListReservationsParams struct {
	Status         pgtype.Text        `json:"status"`
	ServiceID      pgtype.Int8        `json:"service_id"`
	DateFrom       pgtype.Date        `json:"date_from"`
	DateTo         pgtype.Date        `json:"date_to"`
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservations,
		arg.Status,
		arg.ServiceID,
		arg.DateFrom,
		arg.DateTo,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const countReservations = `-- name: CountReservations :one
SELECT count(*) FROM reservations
WHERE ($1::text IS NULL OR status = $1)
`

func (q *Queries) CountReservations(ctx context.Context, db DBTX, status pgtype.Text) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countReservations, status).Scan(&count)
	return count, err
}

const sumRevenue = `-- name: SumRevenue :one
SELECT COALESCE(sum(service_price), 0)::bigint
FROM reservations
WHERE status = $1
  AND date >= $2
  AND date <= $3
`

type SumRevenueParams struct {
	Status string      `json:"status"`
	From   pgtype.Date `json:"from"`
	To     pgtype.Date `json:"to"`
}

func (q *Queries) SumRevenue(ctx context.Context, db DBTX, arg SumRevenueParams) (int64, error) {
	var total int64
	err := db.QueryRow(ctx, sumRevenue, arg.Status, arg.From, arg.To).Scan(&total)
	return total, err
}
