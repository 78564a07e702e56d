package repository

import (
	"context"

	"ranch-booking/internal/domain/gallery"
	"ranch-booking/internal/infra"
	"ranch-booking/internal/infra/repository/converter"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/clock"
	"ranch-booking/internal/pkg/pgconv"
)

type ImageWriteQueries interface {
	NextImageSortOrder(ctx context.Context, db sqlc.DBTX) (int32, error)
	CreateImage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateImageParams) (sqlc.Images, error)
	GetImage(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Images, error)
	UpdateImage(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateImageParams) (sqlc.Images, error)
	DeleteImage(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Images, error)
}

type ImageRepository struct {
	queries ImageWriteQueries
	clock   clock.Clock
}

func NewImageRepository(queries ImageWriteQueries, clk clock.Clock) *ImageRepository {
	return &ImageRepository{queries: queries, clock: clk}
}

func (r *ImageRepository) NextSortOrder(ctx context.Context, tx sqlc.DBTX) (int, error) {
	next, err := r.queries.NextImageSortOrder(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read image sort order", err)
	}
	return int(next), nil
}

func (r *ImageRepository) Create(ctx context.Context, tx sqlc.DBTX, img *gallery.Image) (*gallery.Image, error) {
	row, err := r.queries.CreateImage(ctx, tx, sqlc.CreateImageParams{
		Src:       img.Src(),
		Title:     img.Title(),
		Alt:       img.Alt(),
		Category:  img.Category(),
		Visible:   img.Visible(),
		SortOrder: pgconv.IntToInt32(img.SortOrder()),
		CreatedAt: pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create image", err)
	}
	return converter.ImageFromRow(row), nil
}

func (r *ImageRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*gallery.Image, error) {
	row, err := r.queries.GetImage(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load image", err)
	}
	return converter.ImageFromRow(row), nil
}

func (r *ImageRepository) Update(ctx context.Context, tx sqlc.DBTX, img *gallery.Image) (*gallery.Image, error) {
	row, err := r.queries.UpdateImage(ctx, tx, sqlc.UpdateImageParams{
		ID:        img.ID(),
		Title:     img.Title(),
		Alt:       img.Alt(),
		Category:  img.Category(),
		Visible:   img.Visible(),
		SortOrder: pgconv.IntToInt32(img.SortOrder()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update image", err)
	}
	return converter.ImageFromRow(row), nil
}

func (r *ImageRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) (*gallery.Image, error) {
	row, err := r.queries.DeleteImage(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete image", err)
	}
	return converter.ImageFromRow(row), nil
}
