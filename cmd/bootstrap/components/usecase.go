package components

import (
	"ranch-booking/internal/domain/reservation"
	"ranch-booking/internal/pkg/clock"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewServiceCommands,
		commands.NewSlotCommands,
		commands.NewImageCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewServiceQueries,
		queries.NewSlotQueries,
		queries.NewImageQueries,
		queries.NewStatsQueries,
	),
)
