package main

import (
	"context"
	"log/slog"
	"os"

	"snackbasket/config"
	"snackbasket/internal/delivery"
	"snackbasket/internal/delivery/api"
	"snackbasket/internal/delivery/api/middleware"
	"snackbasket/internal/delivery/api/router/handler"
	"snackbasket/internal/infra/auth"
	"snackbasket/internal/infra/auth/google"
	"snackbasket/internal/infra/geocode"
	logs "snackbasket/internal/infra/log"
	"snackbasket/internal/infra/persistence/postgres"
	"snackbasket/internal/infra/qrcode"
	"snackbasket/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewShopRepository,
			postgres.NewSKURepository,
			postgres.NewOrderRepository,
			postgres.NewReturnOrderRepository,
			postgres.NewDeliveryRepository,
			postgres.NewSurveyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewIdentityProvider,
			geocode.NewNominatimClient,
			qrcode.NewLabelService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewShopService,
			impl.NewOrderService,
			impl.NewDeliveryService,
			impl.NewSurveyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewShopHandler,
			handler.NewOrderHandler,
			handler.NewDeliveryHandler,
			handler.NewSurveyHandler,
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
