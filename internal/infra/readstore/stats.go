package readstore

import (
	"context"
	"time"

	"ranch-booking/internal/infra"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type StatsQueries interface {
	CountReservations(ctx context.Context, db sqlc.DBTX, status pgtype.Text) (int64, error)
	CountActiveServices(ctx context.Context, db sqlc.DBTX) (int64, error)
	SumRevenue(ctx context.Context, db sqlc.DBTX, arg sqlc.SumRevenueParams) (int64, error)
}

type StatsReadStore struct {
	queries StatsQueries
	db      sqlc.DBTX
}

func NewStatsReadStore(queries StatsQueries, db sqlc.DBTX) *StatsReadStore {
	return &StatsReadStore{queries: queries, db: db}
}

// CountReservations counts every reservation when status is nil.
func (r *StatsReadStore) CountReservations(ctx context.Context, status *string) (int64, error) {
	n, err := r.queries.CountReservations(ctx, r.db, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return n, nil
}

func (r *StatsReadStore) CountActiveServices(ctx context.Context) (int64, error) {
	n, err := r.queries.CountActiveServices(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active services", err)
	}
	return n, nil
}

func (r *StatsReadStore) Revenue(ctx context.Context, status string, from, to time.Time) (int64, error) {
	total, err := r.queries.SumRevenue(ctx, r.db, sqlc.SumRevenueParams{
		Status: status,
		From:   pgconv.DateToPgtype(from),
		To:     pgconv.DateToPgtype(to),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum revenue", err)
	}
	return total, nil
}
