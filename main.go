package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/encoder"
	"github.com/cristianadrielbraun/qrstudio/internal/generator"
	"github.com/cristianadrielbraun/qrstudio/internal/handlers"
	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/internal/logo"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		panic(err)
	}

	if err := logger.Init(logger.Config{
		Debug:        cfg.Settings.Debug,
		TimeLocation: cfg.Location(),
		LogToFile:    cfg.Settings.LogToFile,
		LogsDir:      cfg.Settings.LogsDir,
	}); err != nil {
		panic(err)
	}
	log := logger.Log
	defer func() { _ = log.Sync() }()

	enc, err := encoder.New(cfg.QR.Encoder)
	if err != nil {
		log.Fatalw("invalid qr.encoder", "error", err)
	}

	cache, closeCache := logoCache(cfg, log)
	defer closeCache()

	svc := generator.NewService(generator.Config{
		Encoder: enc,
		Logos: logo.NewLoader(logo.Options{
			Dir:      cfg.Logo.Dir,
			Timeout:  cfg.Logo.Timeout,
			MaxBytes: cfg.Logo.MaxBytes,
			Cache:    cache,

			AllowPrivateHosts: cfg.Logo.AllowPrivateHosts,
		}),
		LogoCoverage: cfg.Logo.Coverage,
		Verify:       cfg.QR.Verify,
		MaxSessions:  cfg.Preview.MaxSessions,
	})

	gin.SetMode(cfg.Server.Mode)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handlers.New(svc).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("qrstudio listening", "addr", srv.Addr, "encoder", cfg.QR.Encoder)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server stopped", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("shutdown", "error", err)
	}
}

// logoCache picks redis when an address is configured, otherwise an
// in-process cache.
func logoCache(cfg *config.Config, log *logger.Logger) (logo.Cache, func()) {
	c := cfg.Logo.Cache
	if c.Redis.Addr == "" {
		return logo.NewMemoryCache(c.TTL, c.MaxEntries), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, using in-memory logo cache", "addr", c.Redis.Addr, "error", err)
		_ = client.Close()
		return logo.NewMemoryCache(c.TTL, c.MaxEntries), func() {}
	}
	log.Infow("logo cache backed by redis", "addr", c.Redis.Addr)
	return logo.NewRedisCache(client, c.TTL), func() { _ = client.Close() }
}
