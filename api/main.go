package api

import (
	"context"
	"fmt"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/tidepool-org/glucolog/config"
	"github.com/tidepool-org/glucolog/dashboard"
	"github.com/tidepool-org/glucolog/errors"
	"github.com/tidepool-org/glucolog/journal"
	"github.com/tidepool-org/glucolog/logger"
	"github.com/tidepool-org/glucolog/readings"
	"github.com/tidepool-org/glucolog/reports"
	"github.com/tidepool-org/glucolog/store"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewConfig() (*config.Config, error) {
	cfg := config.New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	address := fmt.Sprintf(":%d", cfg.HttpPort)
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(address); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, log *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(echozap.ZapLogger(log))

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

// Dependencies is the full DI graph of the service. CLI tools reuse it to
// run one-shot commands against the same wiring.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Sugar,
			NewConfig,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			readings.NewRepository,
			readings.NewService,
			journal.NewRepository,
			journal.NewService,
			dashboard.NewService,
			reports.NewService,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	deps := append(Dependencies(), fx.Invoke(SetReady), fx.Invoke(Start))
	fx.New(deps...).Run()
}
