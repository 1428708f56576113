package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/laundrify/backoffice/internal/api"
	"github.com/laundrify/backoffice/internal/broker"
	"github.com/laundrify/backoffice/internal/repository"
	"github.com/laundrify/backoffice/internal/service"
	"github.com/laundrify/backoffice/pkg/config"
	"github.com/laundrify/backoffice/pkg/job"
	"github.com/laundrify/backoffice/pkg/logger"
	"github.com/laundrify/backoffice/pkg/postgres"
)

const (
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	users := repository.NewUserRepository(pool)
	tokens := repository.NewTokenRepository(pool)
	customers := repository.NewCustomerRepository(pool)
	prices := repository.NewPriceRepository(pool)
	orders := repository.NewOrderRepository(pool)
	stats := repository.NewStatsRepository(pool)

	producer := broker.NewProducer(l, cfg.KafkaBrokers, cfg.KafkaOrdersTopic)
	defer producer.Close()

	s := service.New(cfg, users, tokens, customers, prices, orders, stats, producer)

	jobs := job.NewRunner().
		Register("delete expired tokens", cfg.TokenCleanupInterval, s.DeleteExpiredTokens)
	jobs.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTPPort)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
