// source: resource_pools.sql

package sqlc

import (
	"context"
)

const getResourcePool = `-- name: GetResourcePool :one
SELECT id, name, capacity, created_at
FROM resource_pools
WHERE id = $1
`

func (q *Queries) GetResourcePool(ctx context.Context, db DBTX, id string) (ResourcePools, error) {
	var i ResourcePools
	err := db.QueryRow(ctx, getResourcePool, id).Scan(
		&i.ID,
		&i.Name,
		&i.Capacity,
		&i.CreatedAt,
	)
	return i, err
}

const listResourcePools = `-- name: ListResourcePools :many
SELECT id, name, capacity, created_at
FROM resource_pools
ORDER BY id
`

func (q *Queries) ListResourcePools(ctx context.Context, db DBTX) ([]ResourcePools, error) {
	rows, err := db.Query(ctx, listResourcePools)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ResourcePools{}
	for rows.Next() {
		var i ResourcePools
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Capacity,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
