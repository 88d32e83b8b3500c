package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nirvixtech/nirvix-tracker/config"
	"github.com/nirvixtech/nirvix-tracker/internal/bootstrap"
	"github.com/nirvixtech/nirvix-tracker/internal/notify"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/dispatcher"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/mailer"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/queue"
	"github.com/nirvixtech/nirvix-tracker/internal/storage/postgres"
	"github.com/nirvixtech/nirvix-tracker/internal/team"
	upcomingrepo "github.com/nirvixtech/nirvix-tracker/internal/upcoming/repository"
	upcomingsvc "github.com/nirvixtech/nirvix-tracker/internal/upcoming/service"
)

const serviceName = "nirvix-tracker"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: bootstrap.DSN(&cfg.Database)})
	if err != nil {
		logger.Error("database unavailable", "error", err)
		return
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		logger.Error("schema migration failed", "error", err)
		return
	}
	if err := upcomingrepo.NewRepo(pool).SeedSequence(ctx); err != nil {
		logger.Error("code sequence seed failed", "error", err)
		return
	}

	teamRepo := team.NewRepo(pool)
	disp := dispatcher.New(teamRepo, mailer.NewSMTP(cfg.SMTP), cfg.App.DashboardURL, logger)

	var notifier upcomingsvc.Notifier
	if cfg.Redis.Addr != "" {
		rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis unavailable", "error", err)
			return
		}
		defer rdb.Close()

		q := queue.New(rdb)
		notifier = notify.NewQueueNotifier(q)
		go queue.NewConsumer(q, disp, logger).Run(ctx)
		logger.Info("assignment notifications queued via redis", "addr", cfg.Redis.Addr)
	} else {
		notifier = notify.NewInlineNotifier(disp, logger)
		logger.Info("assignment notifications dispatched in-process")
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.App.CORSOrigins,
		DB:          pool,
		Logger:      logger,
		Notifier:    notifier,
		Dispatcher:  disp,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server started", "port", cfg.Server.Port, "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
