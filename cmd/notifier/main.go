package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/nirvixtech/nirvix-tracker/config"
	"github.com/nirvixtech/nirvix-tracker/internal/bootstrap"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/dispatcher"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/mailer"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/queue"
	"github.com/nirvixtech/nirvix-tracker/internal/team"
)

// Standalone queue consumer. Runs alongside the API when assignment email
// volume warrants a dedicated process; requires REDIS_ADDR.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Redis.Addr == "" {
		log.Fatal("REDIS_ADDR is required for the notifier")
	}

	logger := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: bootstrap.DSN(&cfg.Database)})
	if err != nil {
		logger.Error("database unavailable", "error", err)
		return
	}
	defer pool.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis unavailable", "error", err)
		return
	}
	defer rdb.Close()

	disp := dispatcher.New(team.NewRepo(pool), mailer.NewSMTP(cfg.SMTP), cfg.App.DashboardURL, logger)
	queue.NewConsumer(queue.New(rdb), disp, logger).Run(ctx)
}
