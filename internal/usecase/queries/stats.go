package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/stats.go -package=queriesmock

import (
	"context"
	"time"

	"ranch-booking/internal/domain/reservation"
	"ranch-booking/internal/pkg/clock"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/dates"
)

type StatsQueries interface {
	Dashboard(ctx context.Context) (*DashboardView, error)
}

type StatsRepo interface {
	CountReservations(ctx context.Context, status *string) (int64, error)
	CountActiveServices(ctx context.Context) (int64, error)
	Revenue(ctx context.Context, status string, from, to time.Time) (int64, error)
}

type statsQueriesImpl struct {
	repo  StatsRepo
	clock clock.Clock
	loc   *time.Location
}

func NewStatsQueries(repo StatsRepo, clk clock.Clock, cfg config.Config) StatsQueries {
	return &statsQueriesImpl{repo: repo, clock: clk, loc: cfg.Booking.Location()}
}

// Dashboard reports revenue of confirmed reservations dated in the current
// calendar month.
func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	total, err := q.repo.CountReservations(ctx, nil)
	if err != nil {
		return nil, classify(err)
	}
	pendingStatus := reservation.StatusPending.String()
	pending, err := q.repo.CountReservations(ctx, &pendingStatus)
	if err != nil {
		return nil, classify(err)
	}
	active, err := q.repo.CountActiveServices(ctx)
	if err != nil {
		return nil, classify(err)
	}

	first, last := dates.MonthBounds(clock.Today(q.clock, q.loc))
	revenue, err := q.repo.Revenue(ctx, reservation.StatusConfirmed.String(), first, last)
	if err != nil {
		return nil, classify(err)
	}

	return &DashboardView{
		TotalReservations:   total,
		PendingReservations: pending,
		ActiveServices:      active,
		MonthlyRevenue:      revenue,
	}, nil
}
