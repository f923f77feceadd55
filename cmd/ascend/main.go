package main

import (
	"context"
	"log/slog"
	"os"

	"ascend/config"
	"ascend/internal/delivery"
	"ascend/internal/delivery/http"
	"ascend/internal/delivery/http/middleware"
	"ascend/internal/delivery/http/router/handler"
	"ascend/internal/infra/ai"
	firebaseauth "ascend/internal/infra/auth/firebase"
	logs "ascend/internal/infra/log"
	"ascend/internal/infra/persistence/firestore"
	"ascend/internal/infra/pubsub"
	"ascend/internal/state"
	"ascend/internal/usecase/impl"

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
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewTransactionManager,
			state.NewManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebaseauth.NewIdentityVerifier,
			pubsub.NewEventPublisher,
			ai.NewTextService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewHabitService,
			impl.NewGoalService,
			impl.NewSleepService,
			impl.NewEraService,
			impl.NewSkillService,
			impl.NewProgressionService,
			impl.NewInsightService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewHabitHandler,
			handler.NewGoalHandler,
			handler.NewSleepHandler,
			handler.NewEraHandler,
			handler.NewSkillHandler,
			handler.NewProgressionHandler,
			handler.NewInsightHandler,
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
