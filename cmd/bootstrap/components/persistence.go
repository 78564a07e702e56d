package components

import (
	"ranch-booking/internal/infra/readstore"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/infra/storage"
	"ranch-booking/internal/infra/uow"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Write-side repositories are built per transaction inside the unit of work.
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			NewFileStore,
			fx.As(new(commands.FileStore)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Service
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceViewQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceViewRepo)),
		),
		// Riding slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotViewQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotViewRepo)),
		),
		// Image
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ImageViewQueries)),
		),
		fx.Annotate(
			readstore.NewImageReadStore,
			fx.As(new(queries.ImageViewRepo)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsRepo)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewFileStore(cfg config.Config) (*storage.LocalStore, error) {
	return storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.URLPrefix)
}
