//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"ranch-booking/internal/infra"
	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/usecase/queries"
	"ranch-booking/tests/common/builder"
	queriesmock "ranch-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func viewsAt(n int, start time.Time) []*queries.ReservationView {
	views := make([]*queries.ReservationView, 0, n)
	for i := range n {
		v := builder.NewReservationBuilder().BuildView()
		v.CreatedAt = start.Add(-time.Duration(i) * time.Minute)
		views = append(views, v)
	}
	return views
}

func TestReservationQueries_List(t *testing.T) {
	start := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first page returns a cursor when more rows exist", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		q := queries.NewReservationQueries(repo)

		rows := viewsAt(3, start)
		repo.EXPECT().List(gomock.Any(), queries.ReservationFilter{}, (*queries.Keyset)(nil), int32(3)).Return(rows, nil)

		page, next, err := q.List(context.Background(), queries.ReservationFilter{}, nil, 2)

		require.NoError(t, err)
		assert.Len(t, page, 2)
		require.NotNil(t, next)

		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(createdAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		q := queries.NewReservationQueries(repo)

		rows := viewsAt(1, start)
		after := &queries.Cursor{After: queries.EncodeAfterCursor(start, uuid.New())}
		repo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil()), int32(21)).Return(rows, nil)

		page, next, err := q.List(context.Background(), queries.ReservationFilter{}, after, 0)

		require.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Nil(t, next)
	})

	t.Run("limit is capped", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		q := queries.NewReservationQueries(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), int32(queries.MaxListLimit+1)).Return(nil, nil)

		_, _, err := q.List(context.Background(), queries.ReservationFilter{}, nil, 10_000)
		require.NoError(t, err)
	})

	t.Run("garbage cursor is malformed input", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		q := queries.NewReservationQueries(repo)

		_, _, err := q.List(context.Background(), queries.ReservationFilter{}, &queries.Cursor{After: "###"}, 10)

		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		assert.True(t, errs.Is(err, errs.ErrMalformedInput))
	})
}

func TestReservationQueries_GetByID(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		view := builder.NewReservationBuilder().BuildView()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		got, err := queries.NewReservationQueries(repo).GetByID(context.Background(), id)

		require.NoError(t, err)
		assert.Same(t, view, got)
	})

	t.Run("missing", func(t *testing.T) {
		repo := queriesmock.NewMockReservationViewRepo(gomock.NewController(t))
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.NotFound("reservation"))

		_, err := queries.NewReservationQueries(repo).GetByID(context.Background(), id)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
