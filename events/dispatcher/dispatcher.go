package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"content-graph/eventbus"
	"content-graph/events"
	"content-graph/generation"
	"content-graph/models"
)

// EventDispatcher 는 스캔 실행과 클러스터 생성을 이벤트로 발행한다.
// scan.Dispatcher 와 cluster.Dispatcher 를 모두 구현한다.
type EventDispatcher struct {
	bus    eventbus.EventBus
	topic  eventbus.Topic
	source string
	now    func() time.Time
}

// NewEventDispatcher 새로운 이벤트 디스패처 생성
func NewEventDispatcher(bus eventbus.EventBus, source string) *EventDispatcher {
	return &EventDispatcher{
		bus:    bus,
		topic:  eventbus.TopicJobEvents,
		source: source,
		now:    time.Now,
	}
}

func (d *EventDispatcher) base(t events.EventType) events.BaseEvent {
	return events.BaseEvent{
		ID:        uuid.New().String(),
		Type:      t,
		Timestamp: d.now(),
		Source:    d.source,
		Version:   "1.0",
	}
}

func (d *EventDispatcher) publish(ctx context.Context, base events.BaseEvent, payload any) error {
	evt, err := eventbus.NewJSONEvent(base.ID, string(base.Type), payload, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return d.bus.Publish(ctx, d.topic.Base(), evt)
}

// DispatchScan scan.requested 이벤트 발행
func (d *EventDispatcher) DispatchScan(ctx context.Context, runID string, refs []models.ContentRef) error {
	e := events.ScanRequestedEvent{
		BaseEvent: d.base(events.ScanRequested),
		ScanRunID: runID,
		Refs:      refs,
	}
	return d.publish(ctx, e.BaseEvent, e)
}

// DispatchGeneration cluster.generation_requested 이벤트 발행
func (d *EventDispatcher) DispatchGeneration(ctx context.Context, clusterID string, b generation.ClusterBrief) error {
	e := events.ClusterGenerationRequestedEvent{
		BaseEvent:      d.base(events.ClusterGenerationRequested),
		ClusterID:      clusterID,
		ClusterTopic:   b.ClusterTopic,
		TargetAudience: b.TargetAudience,
		PrimaryKeyword: b.PrimaryKeyword,
		Language:       b.Language,
	}
	return d.publish(ctx, e.BaseEvent, e)
}
