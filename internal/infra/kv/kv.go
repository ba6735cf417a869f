// Package kv wires the configured key-value store driver into the
// application container.
package kv

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"brewhub/config"
	"brewhub/internal/domain/lifecycle"
	"brewhub/internal/domain/repository"
	"brewhub/internal/errors"
	"brewhub/internal/infra/kv/memory"
	"brewhub/internal/infra/kv/redisstore"
)

// Params collects the dependencies for the store constructor.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// New builds the key-value store named by store.driver and closes it when
// the application stops.
func New(params Params) (repository.KVStore, error) {
	var (
		store repository.KVStore
		err   error
	)

	switch params.Config.Store.Driver {
	case "", "memory":
		store = memory.New()
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		store, err = redisstore.New(ctx, params.Config)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown store driver: %s", params.Config.Store.Driver)
	}

	params.Logger.Info("key-value store ready", slog.String("driver", params.Config.Store.Driver))

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
