package response

import (
	"time"

	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Guests       int       `json:"guests"`
	Message      string    `json:"message"`
	ServiceID    int64     `json:"serviceId"`
	ServiceName  string    `json:"serviceName"`
	ServicePrice int64     `json:"servicePrice"`
	Date         string    `json:"date"`
	EndDate      *string   `json:"endDate"`
	TimeSlotID   *int64    `json:"timeSlotId"`
	TimeSlotTime *string   `json:"timeSlotTime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		Phone:        v.Phone,
		Guests:       v.Guests,
		Message:      v.Message,
		ServiceID:    v.ServiceID,
		ServiceName:  v.ServiceName,
		ServicePrice: v.ServicePrice,
		Date:         dates.Format(v.Date),
		EndDate:      formatDatePtr(v.EndDate),
		TimeSlotID:   v.TimeSlotID,
		TimeSlotTime: v.TimeSlotTime,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromReservationList(items []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	res := &ReservationListResponse{Items: make([]*ReservationResponse, len(items))}
	for i, v := range items {
		res.Items[i] = FromReservationView(v)
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := dates.Format(*t)
	return &s
}
