package shared

import (
	"time"

	"github.com/google/uuid"
)

// NotificationJob is an outbox row claimed for delivery.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
	RunAt    time.Time
}

const (
	NotificationKindReservation = "reservation"

	TopicReservationCreated       = "reservation.created"
	TopicReservationStatusChanged = "reservation.status_changed"
)
