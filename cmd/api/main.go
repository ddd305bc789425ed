package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/layer-stack/config"
	"github.com/GoSim-25-26J-441/layer-stack/internal/bootstrap"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/audit"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/events"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/repository"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if rdb != nil {
		defer rdb.Close()
		redisPub := events.NewRedisPublisher(rdb, cfg.Redis.Channel, logger.Named("events"))
		defer func() {
			cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := redisPub.Close(cctx); err != nil {
				logger.Warn("pending events not delivered", zap.Error(err))
			}
		}()
		publisher = redisPub
		logger.Info("change events enabled", zap.String("addr", cfg.Redis.Addr), zap.String("channel", cfg.Redis.Channel))
	}

	store := repository.NewProjectStore(domain.SampleProject())
	svc := service.NewProjectService(store, publisher, logger.Named("project"))

	if cfg.Audit.Schedule != "" {
		scheduler, err := audit.NewScheduler(cfg.Audit.Schedule, svc, logger.Named("audit"))
		if err != nil {
			logger.Fatal("audit scheduler", zap.Error(err))
		}
		scheduler.Start()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			scheduler.Stop(sctx)
		}()
	}

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		Service:        svc,
		Redis:          rdb,
		Logger:         logger.Named("http"),
	})
	if err != nil {
		logger.Fatal("router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
