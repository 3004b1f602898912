package memory

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/manafood/internal/domain/repository"
)

// Module wires in-memory storage and its repository adapter.
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

func registerLifecycle(lc fx.Lifecycle, storage *Storage, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("discarding logged orders", slog.Int("count", storage.Len()))
			storage.Close()
			return nil
		},
	})
}
