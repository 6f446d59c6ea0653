package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/anandpatel/cafewala/internal/config"
)

// Module wires the notification publisher for fx graphs.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) (Publisher, error) {
	if p.Config.RabbitMQURL == "" {
		p.Logger.Info("messaging disabled, notifications will be dropped")
		return NoopPublisher{}, nil
	}
	return NewAMQPPublisher(p.Config.RabbitMQURL, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
}
