package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"ranch-booking/internal/domain/availability"
	"ranch-booking/internal/domain/gallery"
	"ranch-booking/internal/domain/reservation"
	"ranch-booking/internal/domain/resourcepool"
	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/domain/service"
	sqlc "ranch-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Services() ServiceRepository
	Slots() SlotRepository
	Images() ImageRepository
	Notifications() NotificationRepository
	Locks() LockRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads the write-side state commands validate against. Inside
// a Tx they see the transaction's snapshot.
type CommandReads interface {
	CapacityReader
	SlotByID(ctx context.Context, id int64) (*ridingslot.Slot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

// CapacityReader is everything needed to evaluate availability.
type CapacityReader interface {
	ServiceByID(ctx context.Context, id int64) (*service.Service, error)
	PoolByID(ctx context.Context, id string) (*resourcepool.Pool, error)
	SlotsBetween(ctx context.Context, from, to time.Time) ([]*ridingslot.Slot, error)
	// OccupyingBookings returns pending and confirmed bookings holding any
	// day in [from, to].
	OccupyingBookings(ctx context.Context, from, to time.Time) ([]availability.Booking, error)
	PoolBookings(ctx context.Context, poolID string, from, to time.Time) ([]availability.Booking, error)
}

type ReservationRepository interface {
	// Create stores res. poolID is the pool the booked service drew on, if any.
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation, poolID *string) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, svc *service.Service) (*service.Service, error)
	Update(ctx context.Context, tx sqlc.DBTX, svc *service.Service) (*service.Service, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type SlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, slot *ridingslot.Slot) (*ridingslot.Slot, error)
	// CreateIfAbsent reports false when the (date, time) pair already exists.
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, slot *ridingslot.Slot) (bool, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type ImageRepository interface {
	NextSortOrder(ctx context.Context, tx sqlc.DBTX) (int, error)
	Create(ctx context.Context, tx sqlc.DBTX, img *gallery.Image) (*gallery.Image, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*gallery.Image, error)
	Update(ctx context.Context, tx sqlc.DBTX, img *gallery.Image) (*gallery.Image, error)
	// Delete returns the removed image so its file can be dropped.
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) (*gallery.Image, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, runAt, now time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, now time.Time) error
}

type LockRepository interface {
	// Acquire takes transaction-scoped advisory locks on keys in sorted order.
	Acquire(ctx context.Context, tx sqlc.DBTX, keys []string) error
}
