package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"ranch-booking/internal/domain/reservation"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/internal/usecase/queries"
)

// GuestCount accepts a JSON number or a numeric string. A non-numeric string
// reads as one guest; an explicit number is kept so values below one are
// rejected downstream.
type GuestCount int

func (g *GuestCount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*g = 1
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			n = 1
		}
		*g = GuestCount(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*g = GuestCount(n)
	return nil
}

type CreateReservationRequest struct {
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Guests     *GuestCount `json:"guests,omitempty" swaggertype:"integer"`
	Message    string      `json:"message"`
	ServiceID  int64       `json:"serviceId" binding:"required"`
	Date       string      `json:"date" binding:"required"`
	EndDate    *string     `json:"endDate,omitempty"`
	TimeSlotID *int64      `json:"timeSlotId,omitempty"`
}

func (r CreateReservationRequest) ToInput() (commands.ReservationInput, error) {
	date, err := dates.Parse(r.Date)
	if err != nil {
		return commands.ReservationInput{}, err
	}

	var endDate *time.Time
	if r.EndDate != nil && strings.TrimSpace(*r.EndDate) != "" {
		end, err := dates.Parse(*r.EndDate)
		if err != nil {
			return commands.ReservationInput{}, err
		}
		endDate = &end
	}

	guests := 1
	if r.Guests != nil {
		guests = int(*r.Guests)
	}

	return commands.ReservationInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Guests:    guests,
		Message:   r.Message,
		ServiceID: r.ServiceID,
		Date:      date,
		EndDate:   endDate,
		SlotID:    r.TimeSlotID,
	}, nil
}

// AdminCreateReservationRequest lets the back office pick the initial status.
type AdminCreateReservationRequest struct {
	CreateReservationRequest
	Status string `json:"status"`
}

func (r AdminCreateReservationRequest) GetStatus() reservation.Status {
	if r.Status == "" {
		return reservation.StatusPending
	}
	return reservation.Status(r.Status)
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListReservationsQuery struct {
	Status    string `form:"status"`
	ServiceID *int64 `form:"serviceId"`
	From      string `form:"from"`
	To        string `form:"to"`
	Limit     int    `form:"limit"`
	After     string `form:"after"`
}

func (q ListReservationsQuery) ToFilter() (queries.ReservationFilter, error) {
	filter := queries.ReservationFilter{ServiceID: q.ServiceID}
	if q.Status != "" {
		status := q.Status
		filter.Status = &status
	}
	from, err := optionalDate(q.From)
	if err != nil {
		return filter, err
	}
	to, err := optionalDate(q.To)
	if err != nil {
		return filter, err
	}
	filter.From, filter.To = from, to
	return filter, nil
}

func (q ListReservationsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := dates.Parse(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
