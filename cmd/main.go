package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"mesa-placements/internal/adapter/cache"
	"mesa-placements/internal/adapter/events"
	httpadapter "mesa-placements/internal/adapter/http"
	"mesa-placements/internal/adapter/memory"
	"mesa-placements/internal/adapter/postgres"
	"mesa-placements/internal/adapter/usecase"
	"mesa-placements/internal/auth"
	"mesa-placements/internal/config"
	"mesa-placements/internal/core/domain"
	"mesa-placements/internal/core/port"
	"mesa-placements/internal/db"
	"mesa-placements/internal/metrics"
)

// main is the entry point of the placement service. It loads configuration,
// wires the selected store with the optional Redis cache and Kafka
// publisher, then starts the HTTP server. On receiving a termination signal
// it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		catalog  port.PlacementCatalog
		pricing  port.RegionalPricingTable
		bookings port.BookingStore
	)
	switch cfg.StoreDriver {
	case config.StorePostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
			logger.Info("catalog seeded")
		}
		catalog = postgres.NewCatalog(pool)
		pricing = postgres.NewPricingTable(pool)
		bookings = postgres.NewBookingStore(pool)
	case config.StoreMemory:
		memCatalog, memPricing := memory.NewCatalog(), memory.NewPricingTable()
		if err = memory.Seed(memCatalog, memPricing); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		catalog, pricing, bookings = memCatalog, memPricing, memory.NewBookingStore(memCatalog)
		logger.Warn("using in-memory store, data is lost on restart")
	default:
		logger.Error("unknown store driver", slog.String("driver", cfg.StoreDriver))
		return
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	opts := []usecase.Option{
		usecase.WithPolicy(domain.OccupancyPolicy{PendingOccupies: cfg.Booking.PendingOccupies}),
		usecase.WithMetrics(m),
		usecase.WithLogger(logger),
	}

	if cfg.Redis.Enabled() {
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		opts = append(opts, usecase.WithCache(cache.NewAvailabilityCache(client, cfg.Redis.TTL)))
	}

	if cfg.Kafka.Enabled() {
		publisher, err := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.WriteTimeout)
		if err != nil {
			logger.Error("kafka publisher error", slog.Any("error", err))
			return
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("kafka publisher close error", slog.Any("error", err))
			}
		}()
		opts = append(opts, usecase.WithEvents(publisher))
	} else {
		opts = append(opts, usecase.WithEvents(memory.NewEventLog(logger)))
	}

	svc := usecase.NewBookingUseCase(catalog, pricing, bookings, opts...)
	tokens := auth.NewJWTService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	handler := httpadapter.NewHandler(svc, tokens, logger, httpadapter.Options{
		Metrics:        m,
		Gatherer:       prometheus.DefaultGatherer,
		TrackingRPS:    cfg.Tracking.RPS,
		TrackingBurst:  cfg.Tracking.Burst,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.StoreDriver),
			slog.Bool("pending_occupies", cfg.Booking.PendingOccupies))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
