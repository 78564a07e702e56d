package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

import (
	"context"
	"time"
)

type ServiceQueries interface {
	GetByID(ctx context.Context, id int64) (*ServiceView, error)
	List(ctx context.Context, active *bool) ([]*ServiceView, error)
}

type ServiceViewRepo interface {
	FindByID(ctx context.Context, id int64) (*ServiceView, error)
	List(ctx context.Context, active *bool) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	repo ServiceViewRepo
}

func NewServiceQueries(repo ServiceViewRepo) ServiceQueries {
	return &serviceQueriesImpl{repo: repo}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id int64) (*ServiceView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return view, nil
}

func (q *serviceQueriesImpl) List(ctx context.Context, active *bool) ([]*ServiceView, error) {
	views, err := q.repo.List(ctx, active)
	return views, classify(err)
}

type SlotQueries interface {
	// List returns slots between from and to inclusive; nil bounds are open.
	List(ctx context.Context, from, to *time.Time) ([]*SlotView, error)
}

type SlotViewRepo interface {
	List(ctx context.Context, from, to *time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	repo SlotViewRepo
}

func NewSlotQueries(repo SlotViewRepo) SlotQueries {
	return &slotQueriesImpl{repo: repo}
}

func (q *slotQueriesImpl) List(ctx context.Context, from, to *time.Time) ([]*SlotView, error) {
	views, err := q.repo.List(ctx, from, to)
	return views, classify(err)
}

type ImageQueries interface {
	List(ctx context.Context, category *string, visible *bool) ([]*ImageView, error)
}

type ImageViewRepo interface {
	List(ctx context.Context, category *string, visible *bool) ([]*ImageView, error)
}

type imageQueriesImpl struct {
	repo ImageViewRepo
}

func NewImageQueries(repo ImageViewRepo) ImageQueries {
	return &imageQueriesImpl{repo: repo}
}

func (q *imageQueriesImpl) List(ctx context.Context, category *string, visible *bool) ([]*ImageView, error) {
	views, err := q.repo.List(ctx, category, visible)
	return views, classify(err)
}
