package components

import (
	"ranch-booking/internal/handler"
	"ranch-booking/internal/handler/api"
	"ranch-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewServiceHandler,
		api.NewSlotHandler,
		api.NewImageHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Service      *api.ServiceHandler
	Slot         *api.SlotHandler
	Image        *api.ImageHandler
	Stats        *api.StatsHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Reservation:  p.Reservation,
		Availability: p.Availability,
		Service:      p.Service,
		Slot:         p.Slot,
		Image:        p.Image,
		Stats:        p.Stats,
	}
}
