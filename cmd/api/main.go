package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-graph/api/router"
	"content-graph/app"
	"content-graph/config"
	"content-graph/db"
	"content-graph/eventbus"
	"content-graph/events/dispatcher"
)

// @title           Content Graph API
// @version         1.0
// @description     Internal link governance: link health, linking scans and content clusters
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging.Level)
	log := config.WithService("api")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx); err != nil {
		log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	a := app.New(ctx, cfg, db.Database())

	if cfg.Dispatch.Mode == config.DispatchKafka {
		brokers, err := eventbus.GetBrokers()
		if err != nil {
			log.Errorf("kafka dispatch requires brokers: %v", err)
			os.Exit(1)
		}
		if err := eventbus.EnsureTopics(brokers, eventbus.TopicJobEvents, cfg.Dispatch.Partitions); err != nil {
			log.Errorf("failed to ensure eventbus topics: %v", err)
		}
		bus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			log.Errorf("failed to create event bus: %v", err)
			os.Exit(1)
		}
		defer bus.Close()

		d := dispatcher.NewEventDispatcher(bus, "api")
		a.Scans.SetDispatcher(d)
		a.Clusters.SetDispatcher(d)
	}
	log.Infof("dispatch mode: %s", cfg.Dispatch.Mode)

	r := router.New(router.Services{
		LinkHealth:      a.LinkHealth,
		Scans:           a.Scans,
		Clusters:        a.Clusters,
		DefaultMinLinks: cfg.LinkHealth.MinLinks,
		Ping:            db.Ping,
		AllowedOrigins:  cfg.HTTP.AllowedOrigins,
	})

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: r}
	go func() {
		log.Infof("api listening on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http server error: %v", err)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
	case <-ctx.Done():
	}
	log.Info("shutting down api server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
	log.Info("api server stopped")
}
