package components

import (
	"context"

	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewOutboxRelay,
	),
	fx.Invoke(startOutboxRelay),
)

func startOutboxRelay(lc fx.Lifecycle, cfg config.Config, relay *worker.OutboxRelay) {
	if !cfg.Outbox.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return nil
		},
	})
}
