package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"

	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// List pages through reservations newest first. The returned cursor is nil
	// on the last page.
	List(ctx context.Context, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, after *Keyset, limit int32) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var keyset *Keyset
	if after != nil && after.After != "" {
		createdAt, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, classify(errs.Mark(err, ErrInvalidCursor))
		}
		keyset = &Keyset{CreatedAt: createdAt, ID: id}
	}

	// One extra row tells whether another page exists
	rows, err := q.repo.List(ctx, filter, keyset, pgconv.IntToInt32(limit+1))
	if err != nil {
		return nil, nil, classify(err)
	}
	if len(rows) <= limit {
		return rows, nil, nil
	}

	page := rows[:limit]
	last := page[len(page)-1]
	return page, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
