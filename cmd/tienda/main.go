package main

import (
	"context"
	"log/slog"
	"os"

	"tienda/config"
	"tienda/internal/delivery"
	"tienda/internal/delivery/api"
	"tienda/internal/delivery/api/middleware"
	"tienda/internal/delivery/api/router/handler"
	"tienda/internal/infra/auth/clerk"
	logs "tienda/internal/infra/log"
	"tienda/internal/infra/media"
	"tienda/internal/infra/persistence/postgres"
	"tienda/internal/infra/pubsub"
	"tienda/internal/infra/qrcode"
	"tienda/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCategoryRepository,
			postgres.NewColeccionRepository,
			postgres.NewProductRepository,
			postgres.NewFeaturedRepository,
			postgres.NewCuponRepository,
			postgres.NewSettingRepository,
			postgres.NewAgenciaRepository,
			postgres.NewFotosRepository,
			postgres.NewOrderRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clerk.NewIdentityProvider,
			pubsub.NewEventPublisher,
			media.NewMediaStorage,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCategoryService,
			impl.NewColeccionService,
			impl.NewProductService,
			impl.NewFeaturedService,
			impl.NewCuponService,
			impl.NewStoreConfigService,
			impl.NewOrderService,
			impl.NewUserService,
			impl.NewInventoryService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCategoryHandler,
			handler.NewColeccionHandler,
			handler.NewProductHandler,
			handler.NewCuponHandler,
			handler.NewStoreConfigHandler,
			handler.NewOrderHandler,
			handler.NewInventoryHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
