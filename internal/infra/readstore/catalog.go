package readstore

import (
	"context"
	"time"

	"ranch-booking/internal/infra"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/pgconv"
	"ranch-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ServiceViewQueries interface {
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Services, error)
	ListServices(ctx context.Context, db sqlc.DBTX, active pgtype.Bool) ([]sqlc.Services, error)
}

type ServiceReadStore struct {
	queries ServiceViewQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceViewQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{queries: queries, db: db}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id int64) (*queries.ServiceView, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get service view", err)
	}
	return toServiceView(row), nil
}

func (r *ServiceReadStore) List(ctx context.Context, active *bool) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServices(ctx, r.db, pgconv.BoolPtrToPgtype(active))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	items := make([]*queries.ServiceView, 0, len(rows))
	for _, row := range rows {
		items = append(items, toServiceView(row))
	}
	return items, nil
}

func toServiceView(row sqlc.Services) *queries.ServiceView {
	return &queries.ServiceView{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		Duration:     row.Duration,
		Price:        row.Price,
		CapacityMode: row.CapacityMode,
		PoolID:       pgconv.StringPtrFromPgtype(row.PoolID),
		Active:       row.Active,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

type SlotViewQueries interface {
	ListRidingSlotsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRidingSlotsInRangeParams) ([]sqlc.RidingSlots, error)
}

type SlotReadStore struct {
	queries SlotViewQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotViewQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{queries: queries, db: db}
}

func (r *SlotReadStore) List(ctx context.Context, from, to *time.Time) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListRidingSlotsInRange(ctx, r.db, sqlc.ListRidingSlotsInRangeParams{
		From: pgconv.DatePtrToPgtype(from),
		To:   pgconv.DatePtrToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list riding slots", err)
	}
	items := make([]*queries.SlotView, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.SlotView{
			ID:       row.ID,
			Date:     pgconv.DateFromPgtype(row.Date),
			Time:     row.Time,
			Capacity: int(row.Capacity),
		})
	}
	return items, nil
}

type ImageViewQueries interface {
	ListImages(ctx context.Context, db sqlc.DBTX, arg sqlc.ListImagesParams) ([]sqlc.Images, error)
}

type ImageReadStore struct {
	queries ImageViewQueries
	db      sqlc.DBTX
}

func NewImageReadStore(queries ImageViewQueries, db sqlc.DBTX) *ImageReadStore {
	return &ImageReadStore{queries: queries, db: db}
}

func (r *ImageReadStore) List(ctx context.Context, category *string, visible *bool) ([]*queries.ImageView, error) {
	rows, err := r.queries.ListImages(ctx, r.db, sqlc.ListImagesParams{
		Category: pgconv.StringPtrToPgtype(category),
		Visible:  pgconv.BoolPtrToPgtype(visible),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list images", err)
	}
	items := make([]*queries.ImageView, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.ImageView{
			ID:        row.ID,
			Src:       row.Src,
			Title:     row.Title,
			Alt:       row.Alt,
			Category:  row.Category,
			Visible:   row.Visible,
			SortOrder: int(row.SortOrder),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}
