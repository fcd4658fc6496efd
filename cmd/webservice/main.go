package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/aevohorology/storefront-service/config"
	"github.com/aevohorology/storefront-service/internal/cache"
	"github.com/aevohorology/storefront-service/internal/controller"
	"github.com/aevohorology/storefront-service/internal/infrastructure/authwatch"
	circuitbreaker "github.com/aevohorology/storefront-service/internal/infrastructure/circuit-breaker"
	"github.com/aevohorology/storefront-service/internal/infrastructure/database/postgres"
	messagequeue "github.com/aevohorology/storefront-service/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/aevohorology/storefront-service/internal/infrastructure/payment-gateway"
	"github.com/aevohorology/storefront-service/internal/infrastructure/tracing"
	localmiddleware "github.com/aevohorology/storefront-service/internal/middleware"
	"github.com/aevohorology/storefront-service/internal/repository"
	"github.com/aevohorology/storefront-service/internal/service"
	"github.com/aevohorology/storefront-service/internal/store"
	"github.com/aevohorology/storefront-service/pkg/response"
	"github.com/aevohorology/storefront-service/pkg/utils"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	cacheDir := conf.CacheDir
	if cacheDir == "" {
		cacheDir = "./cache"
	}

	snapshots, err := cache.CreateNewSnapshotStore(cacheDir)
	if err != nil {
		panic(err)
	}

	configValid := remoteConfigValid(conf)
	if !configValid {
		log.Warn().Msg("remote configuration is invalid, running from local state only")
	}

	authRepo := repository.CreateNewRestAuthRepository(conf)
	remoteRepo := buildRemoteRepository(conf, configValid)

	var publisher store.EventPublisher
	if conf.KafkaConfig.BrokerAddress != "" {
		kafkaProducer := messagequeue.CreateKafkaProducer(conf)
		publisher = messagequeue.CreateNewEventPublisher(kafkaProducer)
	}

	dataStore := store.CreateNewStore(remoteRepo, authRepo, snapshots, publisher, configValid)
	dataStore.Load()
	defer dataStore.Close()

	var notifier service.SessionNotifier
	if configValid {
		watcher, err := authwatch.CreateNewWatcher(authRepo, time.Duration(conf.RemoteConfig.SessionPollSeconds)*time.Second)
		if err != nil {
			panic(err)
		}

		dataStore.ConsumeAuthEvents(watcher.Events())
		watcher.Start()
		go watcher.Poll()
		notifier = watcher

		defer func() {
			if err := watcher.Shutdown(); err != nil {
				log.Error().Err(err).Msg("Failed to shut down session watcher")
			}
		}()
	}

	// One refresh after startup; never polled.
	go dataStore.Refresh(context.Background())

	traceProvider, err := tracing.InitTracing(conf.TracingConfig.CollectorHost)
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("storefront-service")

	e := echo.New()
	g := e.Group("/api/v1")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", conf.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	midtransClient := paymentgateway.CreateMidtransClient(conf)

	svc := service.CreateNewStorefrontService(dataStore, authRepo, midtransClient, notifier, conf)
	controller.CreateStorefrontController(g, svc, localmiddleware.AdminOnly(dataStore))

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", conf.ServicePort)))
}

// remoteConfigValid is the structural credential check: the REST driver
// needs a JWT-shaped service key, the postgres driver a reachable-looking
// DSN. No network call happens here.
func remoteConfigValid(conf *config.Config) bool {
	switch conf.RemoteConfig.Driver {
	case "postgres":
		return conf.PostgreSQLConfig.DBHost != "" && conf.PostgreSQLConfig.DBName != ""
	default:
		return conf.RemoteConfig.BaseURL != "" && utils.IsJWTShaped(conf.RemoteConfig.ServiceKey)
	}
}

func buildRemoteRepository(conf *config.Config, configValid bool) repository.RemoteRepository {
	if configValid && conf.RemoteConfig.Driver == "postgres" {
		db, err := postgres.GetDBInstance(conf.PostgreSQLConfig.DBUsername, conf.PostgreSQLConfig.DBPassword,
			conf.PostgreSQLConfig.DBHost, conf.PostgreSQLConfig.DBPort, conf.PostgreSQLConfig.DBName)
		if err != nil {
			panic(err)
		}

		return repository.CreateNewPostgresRemoteRepository(db)
	}

	cb := circuitbreaker.CreateCircuitBreaker("storefront-service")
	return repository.CreateNewRestRemoteRepository(conf, cb)
}
