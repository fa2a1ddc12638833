package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-booking-service/internal/app/config"
	"github.com/ijalalfrz/flight-booking-service/internal/app/dto"
	"github.com/ijalalfrz/flight-booking-service/internal/app/endpoints"
	"github.com/ijalalfrz/flight-booking-service/internal/app/service"
	"github.com/ijalalfrz/flight-booking-service/internal/app/transport"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/booking"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/bookingid"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/flightapi"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/logger"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// @title           Flight Booking Service API
// @version         0.0.1
// @description     flight-booking-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	dbPool := mustInitDB(ctx, &cfg)
	defer dbPool.Close()

	endpts := makeEndpoints(ctx, &cfg, dbPool)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func mustInitDB(ctx context.Context, cfg *config.Config) *pgxpool.Pool {
	poolCfg, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse db dsn", slog.String("error", err.Error()))
		panic(err)
	}

	poolCfg.MaxConns = int32(cfg.DB.MaxOpenConnections)
	poolCfg.MaxConnLifetime = cfg.DB.MaxConnectionLifetime
	poolCfg.MaxConnIdleTime = cfg.DB.MaxConnectionIdleTime

	dbPool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to db", slog.String("error", err.Error()))
		panic(err)
	}

	if err := repository.RunMigrations(ctx, dbPool); err != nil {
		slog.ErrorContext(ctx, "failed to run migrations", slog.String("error", err.Error()))
		panic(err)
	}

	return dbPool
}

func makeEndpoints(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	if err := booking.ValidatePaxTypeCodes(); err != nil {
		slog.ErrorContext(ctx, "invalid passenger type table", slog.String("error", err.Error()))
		panic(err)
	}

	catalogClient := initCatalogClient(cfg, redisClient)

	bookingRepo := repository.NewBookingRepository(dbPool)
	idGenerator := bookingid.NewGenerator(bookingRepo)

	searchService := service.NewSearchService(catalogClient)
	bookingService := service.NewBookingService(catalogClient, bookingRepo, idGenerator)

	// init service endpoint
	return endpoints.Endpoints{
		FlightEndpoint:  endpoints.MakeFlightEndpoint(searchService),
		BookingEndpoint: endpoints.MakeBookingEndpoint(bookingService),
	}
}

func initCatalogClient(cfg *config.Config, redisClient *redis.Client) *flightapi.Client {
	limiter := redis_rate.NewLimiter(redisClient)

	return flightapi.NewClient(flightapi.ClientConfig{
		SearchAPIURL: cfg.FlightAPI.SearchAPIURL,
		Timeout:      cfg.FlightAPI.Timeout,
		RateLimitRPS: cfg.FlightAPI.RateLimitRPS,
		Limiter:      limiter,
	})
}
