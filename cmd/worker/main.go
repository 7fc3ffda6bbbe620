package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"content-graph/app"
	"content-graph/cmd/worker/event/handler"
	"content-graph/config"
	"content-graph/db"
	"content-graph/eventbus"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB 초기화
	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	// EventBus 초기화 및 토픽 보장
	brokers, err := eventbus.GetBrokers()
	if err != nil {
		config.Logger.Errorf("failed to resolve kafka brokers: %v", err)
		os.Exit(1)
	}
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicJobEvents, cfg.Dispatch.Partitions); err != nil {
		config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	// worker 는 받은 요청을 직접 실행하므로 디스패처를 설정하지 않는다.
	a := app.New(ctx, cfg, db.Database())
	eventHandler := handler.NewEventHandlers(a.Scans, a.Clusters)

	groupID := eventbus.GetGroupID()

	config.Logger.Info("starting worker service with eventbus...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := bus.Subscribe(ctx, groupID, eventbus.TopicJobEvents, eventHandler.Handle); err != nil && !errors.Is(err, context.Canceled) {
			config.Logger.Errorf("eventbus subscribe error: %v", err)
			cancel()
		}
	}()

	select {
	case <-sigChan:
	case <-ctx.Done():
	}
	config.Logger.Info("received shutdown signal, shutting down worker service...")

	cancel()
	wg.Wait()

	config.Logger.Info("worker service stopped")
}
