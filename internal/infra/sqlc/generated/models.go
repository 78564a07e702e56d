package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourcePools struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Capacity  int32              `json:"capacity"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Services struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Duration     string             `json:"duration"`
	Price        int64              `json:"price"`
	CapacityMode string             `json:"capacity_mode"`
	PoolID       pgtype.Text        `json:"pool_id"`
	Active       bool               `json:"active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type RidingSlots struct {
	ID        int64              `json:"id"`
	Date      pgtype.Date        `json:"date"`
	Time      string             `json:"time"`
	Capacity  int32              `json:"capacity"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Reservations struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Guests       int32              `json:"guests"`
	Message      string             `json:"message"`
	ServiceID    int64              `json:"service_id"`
	ServiceName  string             `json:"service_name"`
	ServicePrice int64              `json:"service_price"`
	Date         pgtype.Date        `json:"date"`
	EndDate      pgtype.Date        `json:"end_date"`
	TimeSlotID   pgtype.Int8        `json:"time_slot_id"`
	TimeSlotTime pgtype.Text        `json:"time_slot_time"`
	PoolID       pgtype.Text        `json:"pool_id"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Images struct {
	ID        int64              `json:"id"`
	Src       string             `json:"src"`
	Title     string             `json:"title"`
	Alt       string             `json:"alt"`
	Category  string             `json:"category"`
	Visible   bool               `json:"visible"`
	SortOrder int32              `json:"sort_order"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	Status    string             `json:"status"`
	Attempts  int32              `json:"attempts"`
	LastError pgtype.Text        `json:"last_error"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
