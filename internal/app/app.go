package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labfi/labfi-api/config"
	"github.com/labfi/labfi-api/internal/interfaces"
	"github.com/labfi/labfi-api/internal/middleware"
	"github.com/labfi/labfi-api/internal/practicaservice"
	"github.com/labfi/labfi-api/internal/routes"
	"github.com/labfi/labfi-api/internal/server"
	"github.com/labfi/labfi-api/internal/userservice"
	"github.com/labfi/labfi-api/pkg/databases/mongo"
	"github.com/labfi/labfi-api/pkg/databases/postgres"
	"github.com/labfi/labfi-api/pkg/metrics"
	"github.com/labfi/labfi-api/pkg/zerolog"

	mongoPracticaRepo "github.com/labfi/labfi-api/internal/practicarepo/mongo"
	postgresPracticaRepo "github.com/labfi/labfi-api/internal/practicarepo/postgres"
	mongoUserRepo "github.com/labfi/labfi-api/internal/userrepo/mongo"
	postgresUserRepo "github.com/labfi/labfi-api/internal/userrepo/postgres"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// signup rate limit: 5 registrations per second, bursts of 10
const (
	SignupRateLimit = rate.Limit(5)
	SignupRateBurst = 10
)

// App represents the main application, containing server and configuration.
// It initializes with a config file, validates settings, and manages routes.
type App struct {
	Server interfaces.Server
	Config *config.ServiceConfig
	Logger interfaces.Logger
}

// NewApp creates and configures a new App instance.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("validation error: %s", errors)
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	serverInstance := server.NewServer(cfg.Host, cfg.Port, logger)
	app.Server = serverInstance

	metricsInstance := app.initializeMetrics()

	dbClient, err := app.initializeDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database client: %v", err)
	}

	practicaRepo, userRepo, err := app.initializeRepositories(dbClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %v", err)
	}

	practicaService := practicaservice.NewPracticaService(practicaRepo, logger)
	userService := userservice.NewUserService(userRepo, practicaRepo, logger)

	route := routes.NewRoute(metricsInstance, practicaService, userService, logger, validator)

	metricsHandler := promhttp.HandlerFor(
		metricsInstance.GetRegistry(),
		promhttp.HandlerOpts{})

	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	if err := app.Server.AddRoute(routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add metrics route: %v", err)
	}

	requestID := middleware.RequestIDMiddleware(logger, metricsInstance, routes.HTTPRequestsTotal)
	rateLimit := middleware.RateLimitMiddleware(rate.NewLimiter(SignupRateLimit, SignupRateBurst))

	handlers := map[string]http.HandlerFunc{
		routes.ListPracticasRouteAPI:  route.ListPracticas,
		routes.GetPracticaRouteAPI:    route.GetPractica,
		routes.CreatePracticaRouteAPI: route.CreatePractica,
		routes.DeletePracticaRouteAPI: route.DeletePractica,
		routes.TogglePracticaRouteAPI: route.TogglePractica,
		routes.ListUsersRouteAPI:      route.ListUsers,
	}
	for pattern, handler := range handlers {
		if err := app.Server.AddRoute(pattern, requestID(handler).ServeHTTP); err != nil {
			return nil, fmt.Errorf("failed to add route %s: %v", pattern, err)
		}
	}

	// registration additionally passes through the rate limiter
	signupHandler := requestID(rateLimit(http.HandlerFunc(route.Signup)))
	if err := app.Server.AddRoute(routes.SignupRouteAPI, signupHandler.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add signup route: %v", err)
	}

	return app, nil
}

func (app *App) Run() error {
	if err := app.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}

	return nil
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)

	appMetrics.RegisterCounterVec(routes.HTTPRequestsTotal, routes.HTTPRequestsTotalHelp,
		[]string{"method", "path"})

	appMetrics.RegisterCounter(routes.PracticaRequestsTotal, routes.PracticaRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.PracticaErrorsTotal, routes.PracticaErrorsTotalHelp)
	appMetrics.RegisterCounter(routes.PracticaCreatedTotal, routes.PracticaCreatedTotalHelp)
	appMetrics.RegisterCounter(routes.PracticaDeletedTotal, routes.PracticaDeletedTotalHelp)
	appMetrics.RegisterCounter(routes.PracticaToggledTotal, routes.PracticaToggledTotalHelp)
	appMetrics.RegisterHistogram(
		routes.PracticaDurationSeconds,
		routes.PracticaDurationSecondsHelp,
		routes.PracticaDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.SignupRequestsTotal, routes.SignupRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.SignupSuccessTotal, routes.SignupSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.SignupErrorsTotal, routes.SignupErrorsTotalHelp)
	appMetrics.RegisterCounter(routes.UserListRequestsTotal, routes.UserListRequestsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.SignupDurationSeconds,
		routes.SignupDurationSecondsHelp,
		routes.SignupDurationSecondsBuckets)

	return appMetrics
}

func (app *App) initializeDBClient() (interfaces.DBClient, error) {
	switch app.Config.Database.Type {
	case "mongo":
		dbClient, err := mongo.NewMongoDB(&app.Config.Database.MongoDB, app.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB client: %v", err)
		}

		if err = dbClient.Connect(context.Background(), app.Config.Database.MongoDB.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
		}
		return dbClient, nil

	case "postgres":
		opts := app.Config.Database.Postgres.Options
		dbClient := postgres.NewPostgresDatabaseClient(opts.MaxOpenConns, opts.MaxIdleConns, opts.ConnMaxLifetime)

		if err := dbClient.Connect(context.Background(), app.Config.Database.Postgres.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %v", err)
		}
		return dbClient, nil

	default:
		return nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}
}

func (app *App) initializeRepositories(dbClient interfaces.DBClient) (interfaces.PracticaRepository, interfaces.UserRepository, error) {
	var practicaRepo interfaces.PracticaRepository
	var userRepo interfaces.UserRepository
	var err error

	switch app.Config.Database.Type {
	case "mongo":
		practicaRepo, err = mongoPracticaRepo.NewMongoPracticaRepository(dbClient)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize MongoDB practica repository: %v", err)
		}
		userRepo, err = mongoUserRepo.NewMongoUserRepository(dbClient)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize MongoDB user repository: %v", err)
		}

	case "postgres":
		practicaRepo, err = postgresPracticaRepo.NewPostgresPracticaRepository(dbClient)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize PostgreSQL practica repository: %v", err)
		}
		userRepo, err = postgresUserRepo.NewPostgresUserRepository(dbClient)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize PostgreSQL user repository: %v", err)
		}

	default:
		return nil, nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	// Ensure schema and indices, including the unique username index that
	// backs duplicate registration rejection under races.
	if err = practicaRepo.EnsureIndices(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure practica indices: %v", err)
	}
	if err = userRepo.EnsureIndices(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure user indices: %v", err)
	}

	return practicaRepo, userRepo, nil
}
