package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"brewhub/config"
	"brewhub/internal/delivery"
	"brewhub/internal/delivery/http"
	"brewhub/internal/delivery/http/middleware"
	"brewhub/internal/delivery/http/router/handler"
	"brewhub/internal/infra/kv"
	logs "brewhub/internal/infra/log"
	"brewhub/internal/infra/schedule"
	"brewhub/internal/infra/snapshot"
	"brewhub/internal/store"
	"brewhub/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectStore(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startStores,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		kv.New,
		snapshot.NewBucket,
		newScheduler,
	)
}

// newScheduler creates the reply-echo scheduler and cancels every pending
// task on shutdown
func newScheduler(lc fx.Lifecycle) *schedule.Scheduler {
	scheduler := schedule.New()

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return scheduler.Close()
		},
	})

	return scheduler
}

func injectStore() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewCartLedger,
			store.NewOrderBook,
			store.NewInbox,
			store.NewInventoryTracker,
			store.NewActivityLog,
			store.NewWatcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewInboxService,
			impl.NewAdminService,
			impl.NewActivityService,
			impl.NewInventoryService,
			impl.NewSnapshotService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAdminMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewInboxHandler,
			handler.NewAdminHandler,
			handler.NewInventoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type startStoresParams struct {
	fx.In
	fx.Lifecycle

	Cart       *store.CartLedger
	Orders     *store.OrderBook
	Inbox      *store.Inbox
	Tracker    *store.InventoryTracker
	Activities *store.ActivityLog
	Watcher    *store.Watcher
}

// startStores rehydrates every state container and starts the change watcher
func startStores(params startStoresParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Cart.Load(ctx); err != nil {
				return err
			}
			if err := params.Orders.Load(ctx); err != nil {
				return err
			}
			if err := params.Inbox.Load(ctx); err != nil {
				return err
			}
			if err := params.Tracker.Load(ctx); err != nil {
				return err
			}
			if err := params.Activities.Load(ctx); err != nil {
				return err
			}

			return params.Watcher.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			params.Watcher.Stop()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
