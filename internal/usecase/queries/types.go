package queries

import (
	"time"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Guests       int        `json:"guests"`
	Message      string     `json:"message"`
	ServiceID    int64      `json:"service_id"`
	ServiceName  string     `json:"service_name"`
	ServicePrice int64      `json:"service_price"`
	Date         time.Time  `json:"date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	TimeSlotID   *int64     `json:"time_slot_id,omitempty"`
	TimeSlotTime *string    `json:"time_slot_time,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ReservationFilter narrows admin listings; nil fields match everything.
type ReservationFilter struct {
	Status    *string
	ServiceID *int64
	From      *time.Time
	To        *time.Time
}

// Keyset is the decoded position of an after cursor.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type ServiceView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Duration     string    `json:"duration"`
	Price        int64     `json:"price"`
	CapacityMode string    `json:"capacity_mode"`
	PoolID       *string   `json:"pool_id,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SlotView struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Capacity int       `json:"capacity"`
}

type ImageView struct {
	ID        int64     `json:"id"`
	Src       string    `json:"src"`
	Title     string    `json:"title"`
	Alt       string    `json:"alt"`
	Category  string    `json:"category"`
	Visible   bool      `json:"visible"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type AvailabilityView struct {
	Date        time.Time `json:"date"`
	ServiceID   int64     `json:"service_id"`
	SlotID      *int64    `json:"slot_id,omitempty"`
	Mode        string    `json:"mode"`
	Capacity    int       `json:"capacity"`
	Consumed    int       `json:"consumed"`
	Available   int       `json:"available"`
	HasSlots    bool      `json:"has_slots"`
	FullyBooked bool      `json:"fully_booked"`
}

type SlotAvailabilityView struct {
	SlotID      int64     `json:"slot_id"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Capacity    int       `json:"capacity"`
	Booked      int       `json:"booked"`
	Available   int       `json:"available"`
	FullyBooked bool      `json:"fully_booked"`
}

type DashboardView struct {
	TotalReservations   int64 `json:"total_reservations"`
	PendingReservations int64 `json:"pending_reservations"`
	ActiveServices      int64 `json:"active_services"`
	MonthlyRevenue      int64 `json:"monthly_revenue"`
}
