package main

import (
	"context"
	"net/http"
	"strings"

	"cloud.google.com/go/firestore"
	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/api"
	v1 "github.com/captainwycliffe/farmbetter-user-management-system/internal/api/v1"
	apivalidator "github.com/captainwycliffe/farmbetter-user-management-system/internal/api/validator"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/config"
	middleware "github.com/captainwycliffe/farmbetter-user-management-system/internal/error"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/graph"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/metrics"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/ratelimit"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/repository"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/service"
	fsclient "github.com/captainwycliffe/farmbetter-user-management-system/pkg/firestore"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewFirestoreClient,

			repository.NewUserRepository,
			repository.NewMessageRepository,
			NewRateLimiter,
			NewValidator,
			metrics.NewMetrics,

			service.NewUserService,
			service.NewWebhookService,

			v1.NewHandler,
			graph.NewHandler,
			NewFiberApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, graphql http.Handler, cfg *config.Config,
	m *metrics.Metrics, client *firestore.Client, logger *zap.Logger, lc fx.Lifecycle) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	api.SetupRoutes(app, handler, graphql)

	port := cfg.API.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting HTTP server", zap.String("port", port))
			go app.Listen(port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return client.Close()
		},
	})
}

func NewFirestoreClient(cfg *config.Config, logger *zap.Logger) (*firestore.Client, error) {
	return fsclient.NewClient(context.Background(), fsclient.Config{
		ProjectID:   cfg.Firebase.ProjectID,
		PrivateKey:  cfg.Firebase.PrivateKey,
		ClientEmail: cfg.Firebase.ClientEmail,
	}, logger)
}

func NewRateLimiter(cfg *config.Config) ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.Limit, cfg.RateLimit.Window)
}

func NewValidator() *apivalidator.XValidator {
	return apivalidator.NewXValidator(gpvalidator.New())
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
}
