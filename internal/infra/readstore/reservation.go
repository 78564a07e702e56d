package readstore

import (
	"context"

	"ranch-booking/internal/infra"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/pgconv"
	"ranch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation view", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter, after *queries.Keyset, limit int32) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationsParams{
		Status:    pgconv.StringPtrToPgtype(filter.Status),
		ServiceID: pgconv.Int8PtrToPgtype(filter.ServiceID),
		DateFrom:  pgconv.DatePtrToPgtype(filter.From),
		DateTo:    pgconv.DatePtrToPgtype(filter.To),
		Limit:     limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgtype.UUID{Bytes: after.ID, Valid: true}
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	items := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		items = append(items, toReservationView(row))
	}
	return items, nil
}

func toReservationView(row sqlc.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Phone:        row.Phone,
		Guests:       int(row.Guests),
		Message:      row.Message,
		ServiceID:    row.ServiceID,
		ServiceName:  row.ServiceName,
		ServicePrice: row.ServicePrice,
		Date:         pgconv.DateFromPgtype(row.Date),
		EndDate:      pgconv.DatePtrFromPgtype(row.EndDate),
		TimeSlotID:   pgconv.Int8PtrFromPgtype(row.TimeSlotID),
		TimeSlotTime: pgconv.StringPtrFromPgtype(row.TimeSlotTime),
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
