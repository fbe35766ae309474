package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airreserve/api"
	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/bootstrap"
	"github.com/Domenick1991/airreserve/internal/cache"
	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/Domenick1991/airreserve/internal/logger"
	"github.com/Domenick1991/airreserve/internal/repository"
	"github.com/Domenick1991/airreserve/internal/service/flights"
	"github.com/Domenick1991/airreserve/internal/service/reservation"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		zlog.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		zlog.Fatal("migrate schema", zap.Error(err))
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		zlog.Warn("kafka not reachable, events will fail until it is", zap.Error(err))
	}

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	flightService := flights.NewFlightService(flightRepo, redisCache, zlog)
	reservationService := reservation.NewReservationService(
		bookingRepo,
		flightRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingEventsTopic,
		zlog,
		reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := flightService.EnsureSeedData(ctx); err != nil {
		zlog.Fatal("seed flights", zap.Error(err))
	}

	flightHandler := api.NewFlightHandler(flightService)
	bookingHandler := api.NewBookingHandler(reservationService)

	if err := bootstrap.Run(ctx, cfg, flightHandler, bookingHandler, zlog); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}
