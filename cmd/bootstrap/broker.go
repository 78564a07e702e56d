package bootstrap

import (
	"context"
	"log/slog"

	"ranch-booking/internal/infra/broker"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/worker"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

type closablePublisher interface {
	worker.Publisher
	Close() error
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config) worker.Publisher {
	var pub closablePublisher
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, outbox messages will only be logged")
		pub = broker.NewLogPublisher()
	} else {
		pub = broker.NewAMQPPublisher(cfg.AMQP.URL)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
