package converter

import (
	"ranch-booking/internal/domain/availability"
	"ranch-booking/internal/domain/reservation"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation, poolID *string) sqlc.CreateReservationParams {
	contact := res.Contact()
	svc := res.Service()
	stay := res.Stay()

	params := sqlc.CreateReservationParams{
		ID:           res.ID(),
		Name:         contact.Name(),
		Email:        contact.Email(),
		Phone:        contact.Phone(),
		Guests:       pgconv.IntToInt32(res.Guests().Count()),
		Message:      res.Message(),
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		ServicePrice: svc.Price,
		Date:         pgconv.DateToPgtype(stay.Date()),
		EndDate:      pgconv.DatePtrToPgtype(stay.EndDate()),
		PoolID:       pgconv.StringPtrToPgtype(poolID),
		Status:       res.Status().String(),
		CreatedAt:    pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(res.UpdatedAt()),
	}

	if slot := res.Slot(); slot != nil {
		params.TimeSlotID = pgtype.Int8{Int64: slot.ID, Valid: true}
		params.TimeSlotTime = pgtype.Text{String: slot.Time, Valid: true}
	}

	return params
}

func ReservationFromRow(row sqlc.Reservations) *reservation.Reservation {
	var slot *reservation.SlotRef
	if row.TimeSlotID.Valid {
		slot = &reservation.SlotRef{
			ID:   row.TimeSlotID.Int64,
			Time: pgconv.StringFromPgtype(row.TimeSlotTime),
		}
	}

	return reservation.ReconstructReservation(
		row.ID,
		reservation.RestoreContact(row.Name, row.Email, row.Phone),
		reservation.RestoreGuests(int(row.Guests)),
		row.Message,
		reservation.ServiceRef{ID: row.ServiceID, Name: row.ServiceName, Price: row.ServicePrice},
		reservation.RestoreStay(pgconv.DateFromPgtype(row.Date), pgconv.DatePtrFromPgtype(row.EndDate)),
		slot,
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BookingFromRow(row sqlc.Reservations) availability.Booking {
	return availability.Booking{
		ServiceID: row.ServiceID,
		Date:      pgconv.DateFromPgtype(row.Date),
		EndDate:   pgconv.DatePtrFromPgtype(row.EndDate),
		SlotID:    pgconv.Int8PtrFromPgtype(row.TimeSlotID),
		Guests:    int(row.Guests),
		Status:    reservation.Status(row.Status),
	}
}

func BookingsFromRows(rows []sqlc.Reservations) []availability.Booking {
	out := make([]availability.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookingFromRow(row))
	}
	return out
}
