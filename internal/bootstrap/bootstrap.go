package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/communiteer/welcomehub/internal/app/controllers"
	appRoutes "github.com/communiteer/welcomehub/internal/app/routes"
	appServices "github.com/communiteer/welcomehub/internal/app/services"
	"github.com/communiteer/welcomehub/internal/config"
	appMiddleware "github.com/communiteer/welcomehub/internal/middleware"
	"github.com/communiteer/welcomehub/internal/pkg/helpers"
	"github.com/communiteer/welcomehub/internal/pkg/logger"
	"github.com/communiteer/welcomehub/internal/pkg/tracing"
	"github.com/communiteer/welcomehub/internal/pkg/webhook"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SubmissionService    appServices.SubmissionService // Interface type
	SubmissionController *appControllers.SubmissionController
	HealthController     *appControllers.HealthController
	Webhook              webhook.Client
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads .env, the configuration file and the
// environment, then initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := config.LoadDotEnv(); err != nil {
		logger.Error().Err(err).Msg("Failed to load .env file")
		return nil, zerolog.Logger{}, err
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err // Return zero logger and the error
	}

	lgr := SetupLogger(cfg)
	return cfg, lgr, nil
}

// SetupLogger configures the global logger from cfg and returns it.
func SetupLogger(cfg *config.Config) zerolog.Logger {
	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")

	if !cfg.CheckinConfigured() {
		lgr.Warn().Msg("GOOGLE_SHEETS_WEBHOOK_URL is not set; /checkin will answer with a configuration error")
	}
	if !cfg.EoiConfigured() {
		lgr.Warn().Msg("GOOGLE_SHEETS_EOI_WEBHOOK_URL is not set; /eoi will answer with a configuration error")
	}
	return lgr
}

// SetupTracing installs the OpenTelemetry provider described by cfg.
func SetupTracing(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (func(context.Context) error, error) {
	shutdown, err := tracing.Setup(ctx, tracing.Options{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to set up tracing")
		return shutdown, err
	}
	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint != "" {
		lgr.Info().Str("endpoint", cfg.Tracing.Endpoint).Msg("Tracing enabled")
	}
	return shutdown, nil
}

// BuildDependencies initializes the webhook client, services and controllers.
// A nil client builds the default HTTP webhook client.
func BuildDependencies(cfg *config.Config, client webhook.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Webhook = client
	if deps.Webhook == nil {
		deps.Webhook = webhook.NewClient(helpers.ParseDuration(cfg.Webhooks.Timeout, webhook.DefaultTimeout))
	}

	deps.SubmissionService = appServices.NewSubmissionService(appServices.SubmissionConfig{
		CheckinURL:   cfg.Webhooks.CheckinURL,
		EoiURL:       cfg.Webhooks.EoiURL,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}, deps.Webhook, lgr)

	deps.SubmissionController = appControllers.NewSubmissionController(deps.SubmissionService)
	deps.HealthController = appControllers.NewHealthController()

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Tracing(),
		appMiddleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.SubmissionController, deps.HealthController)

	return router
}

// Timeouts returns the configured server read and write timeouts.
func Timeouts(cfg *config.Config) (read, write time.Duration) {
	return helpers.ParseDuration(cfg.Server.ReadTimeout, 10*time.Second),
		helpers.ParseDuration(cfg.Server.WriteTimeout, 20*time.Second)
}
