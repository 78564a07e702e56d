// source: images.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const imageColumns = `id, src, title, alt, category, visible, sort_order, created_at`

func scanImage(row interface{ Scan(...any) error }) (Images, error) {
	var i Images
	err := row.Scan(
		&i.ID,
		&i.Src,
		&i.Title,
		&i.Alt,
		&i.Category,
		&i.Visible,
		&i.SortOrder,
		&i.CreatedAt,
	)
	return i, err
}

const getImage = `-- name: GetImage :one
SELECT ` + imageColumns + `
FROM images
WHERE id = $1
`

func (q *Queries) GetImage(ctx context.Context, db DBTX, id int64) (Images, error) {
	return scanImage(db.QueryRow(ctx, getImage, id))
}

const listImages = `-- name: ListImages :many
SELECT ` + imageColumns + `
FROM images
WHERE ($1::text IS NULL OR category = $1)
  AND ($2::boolean IS NULL OR visible = $2)
ORDER BY sort_order, id
`

type ListImagesParams struct {
	Category pgtype.Text `json:"category"`
	Visible  pgtype.Bool `json:"visible"`
}

func (q *Queries) ListImages(ctx context.Context, db DBTX, arg ListImagesParams) ([]Images, error) {
	rows, err := db.Query(ctx, listImages, arg.Category, arg.Visible)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Images{}
	for rows.Next() {
		i, err := scanImage(rows)
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

const nextImageSortOrder = `-- name: NextImageSortOrder :one
SELECT (COALESCE(max(sort_order), 0) + 1)::integer FROM images
`

func (q *Queries) NextImageSortOrder(ctx context.Context, db DBTX) (int32, error) {
	var next int32
	err := db.QueryRow(ctx, nextImageSortOrder).Scan(&next)
	return next, err
}

const createImage = `-- name: CreateImage :one
INSERT INTO images (src, title, alt, category, visible, sort_order, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + imageColumns

type CreateImageParams struct {
	Src       string             `json:"src"`
	Title     string             `json:"title"`
	Alt       string             `json:"alt"`
	Category  string             `json:"category"`
	Visible   bool               `json:"visible"`
	SortOrder int32              `json:"sort_order"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateImage(ctx context.Context, db DBTX, arg CreateImageParams) (Images, error) {
	return scanImage(db.QueryRow(ctx, createImage,
		arg.Src,
		arg.Title,
		arg.Alt,
		arg.Category,
		arg.Visible,
		arg.SortOrder,
		arg.CreatedAt,
	))
}

const updateImage = `-- name: UpdateImage :one
UPDATE images
SET title = $2,
    alt = $3,
    category = $4,
    visible = $5,
    sort_order = $6
WHERE id = $1
RETURNING ` + imageColumns

type UpdateImageParams struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Alt       string `json:"alt"`
	Category  string `json:"category"`
	Visible   bool   `json:"visible"`
	SortOrder int32  `json:"sort_order"`
}

func (q *Queries) UpdateImage(ctx context.Context, db DBTX, arg UpdateImageParams) (Images, error) {
	return scanImage(db.QueryRow(ctx, updateImage,
		arg.ID,
		arg.Title,
		arg.Alt,
		arg.Category,
		arg.Visible,
		arg.SortOrder,
	))
}

const deleteImage = `-- name: DeleteImage :one
DELETE FROM images
WHERE id = $1
RETURNING ` + imageColumns

// DeleteImage returns the removed row so the caller can drop the stored file.
func (q *Queries) DeleteImage(ctx context.Context, db DBTX, id int64) (Images, error) {
	return scanImage(db.QueryRow(ctx, deleteImage, id))
}
