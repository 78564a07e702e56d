//go:build unit || e2e

package builder

import (
	"time"

	"ranch-booking/internal/domain/reservation"
	reqdto "ranch-booking/internal/handler/dto/request"
	"ranch-booking/internal/pkg/clock"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	Guests       int
	Message      string
	ServiceID    int64
	ServiceName  string
	ServicePrice int64
	Date         time.Time
	EndDate      *time.Time
	SlotID       *int64
	SlotTime     *string
	Status       reservation.Status
	Now          time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:           uuid.New(),
		Name:         "Ana Souza",
		Email:        "ana@example.com",
		Phone:        "+55 11 91234-5678",
		Guests:       2,
		Message:      "First time riding",
		ServiceID:    1,
		ServiceName:  "Trail Ride",
		ServicePrice: 15000,
		Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Status:       reservation.StatusPending,
		Now:          time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithSlot(id int64, tod string) *ReservationBuilder {
	b.SlotID = &id
	b.SlotTime = &tod
	return b
}

func (b *ReservationBuilder) WithEndDate(end time.Time) *ReservationBuilder {
	b.EndDate = &end
	return b
}

func (b *ReservationBuilder) ServiceRef() reservation.ServiceRef {
	return reservation.ServiceRef{ID: b.ServiceID, Name: b.ServiceName, Price: b.ServicePrice}
}

func (b *ReservationBuilder) SlotRef() *reservation.SlotRef {
	if b.SlotID == nil {
		return nil
	}
	ref := &reservation.SlotRef{ID: *b.SlotID}
	if b.SlotTime != nil {
		ref.Time = *b.SlotTime
	}
	return ref
}

// BuildDomain runs the factory, so validation applies.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.NewStay(b.Date, b.EndDate)
	if err != nil {
		return nil, err
	}
	f := reservation.NewFactory(clock.NewMockClock(b.Now))
	return f.NewWithStatus(reservation.Draft{
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Guests:  b.Guests,
		Message: b.Message,
		Stay:    stay,
	}, b.ServiceRef(), b.SlotRef(), b.Status)
}

// BuildReconstructed skips validation, like a repository load.
func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID,
		reservation.RestoreContact(b.Name, b.Email, b.Phone),
		reservation.RestoreGuests(b.Guests),
		b.Message,
		b.ServiceRef(),
		reservation.RestoreStay(b.Date, b.EndDate),
		b.SlotRef(),
		b.Status,
		b.Now, b.Now,
	)
}

func (b *ReservationBuilder) BuildInput() commands.ReservationInput {
	return commands.ReservationInput{
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Guests:    b.Guests,
		Message:   b.Message,
		ServiceID: b.ServiceID,
		Date:      b.Date,
		EndDate:   b.EndDate,
		SlotID:    b.SlotID,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	guests := reqdto.GuestCount(b.Guests)
	req := reqdto.CreateReservationRequest{
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Guests:     &guests,
		Message:    b.Message,
		ServiceID:  b.ServiceID,
		Date:       dates.Format(b.Date),
		TimeSlotID: b.SlotID,
	}
	if b.EndDate != nil {
		end := dates.Format(*b.EndDate)
		req.EndDate = &end
	}
	return req
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		Guests:       b.Guests,
		Message:      b.Message,
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		ServicePrice: b.ServicePrice,
		Date:         b.Date,
		EndDate:      b.EndDate,
		TimeSlotID:   b.SlotID,
		TimeSlotTime: b.SlotTime,
		Status:       string(b.Status),
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}
