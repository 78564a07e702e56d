// source: services.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const serviceColumns = `id, name, description, duration, price, capacity_mode, pool_id, active, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (Services, error) {
	var i Services
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Duration,
		&i.Price,
		&i.CapacityMode,
		&i.PoolID,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getServiceByID = `-- name: GetServiceByID :one
SELECT ` + serviceColumns + `
FROM services
WHERE id = $1
`

func (q *Queries) GetServiceByID(ctx context.Context, db DBTX, id int64) (Services, error) {
	return scanService(db.QueryRow(ctx, getServiceByID, id))
}

const listServices = `-- name: ListServices :many
SELECT ` + serviceColumns + `
FROM services
WHERE ($1::boolean IS NULL OR active = $1)
ORDER BY id
`

func (q *Queries) ListServices(ctx context.Context, db DBTX, active pgtype.Bool) ([]Services, error) {
	rows, err := db.Query(ctx, listServices, active)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Services{}
	for rows.Next() {
		i, err := scanService(rows)
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

const createService = `-- name: CreateService :one
INSERT INTO services (name, description, duration, price, capacity_mode, pool_id, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + serviceColumns

type CreateServiceParams struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Duration     string             `json:"duration"`
	Price        int64              `json:"price"`
	CapacityMode string             `json:"capacity_mode"`
	PoolID       pgtype.Text        `json:"pool_id"`
	Active       bool               `json:"active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateService(ctx context.Context, db DBTX, arg CreateServiceParams) (Services, error) {
	return scanService(db.QueryRow(ctx, createService,
		arg.Name,
		arg.Description,
		arg.Duration,
		arg.Price,
		arg.CapacityMode,
		arg.PoolID,
		arg.Active,
		arg.CreatedAt,
	))
}

const updateService = `-- name: UpdateService :one
UPDATE services
SET name = $2,
    description = $3,
    duration = $4,
    price = $5,
    capacity_mode = $6,
    pool_id = $7,
    active = $8,
    updated_at = $9
WHERE id = $1
RETURNING ` + serviceColumns

type UpdateServiceParams struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Duration     string             `json:"duration"`
	Price        int64              `json:"price"`
	CapacityMode string             `json:"capacity_mode"`
	PoolID       pgtype.Text        `json:"pool_id"`
	Active       bool               `json:"active"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateService(ctx context.Context, db DBTX, arg UpdateServiceParams) (Services, error) {
	return scanService(db.QueryRow(ctx, updateService,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Duration,
		arg.Price,
		arg.CapacityMode,
		arg.PoolID,
		arg.Active,
		arg.UpdatedAt,
	))
}

const deleteService = `-- name: DeleteService :execrows
DELETE FROM services WHERE id = $1
`

func (q *Queries) DeleteService(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteService, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countActiveServices = `-- name: CountActiveServices :one
SELECT count(*) FROM services WHERE active
`

func (q *Queries) CountActiveServices(ctx context.Context, db DBTX) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countActiveServices).Scan(&count)
	return count, err
}
