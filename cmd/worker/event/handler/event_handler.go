package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gookit/slog"

	"content-graph/cluster"
	"content-graph/config"
	"content-graph/eventbus"
	"content-graph/events"
	"content-graph/generation"
	"content-graph/models"
	"content-graph/repositories"
	"content-graph/scan"
)

type ScanExecutor interface {
	Execute(ctx context.Context, runID string, refs []models.ContentRef) error
}

type ClusterGenerator interface {
	Generate(ctx context.Context, clusterID string, b generation.ClusterBrief) error
}

type EventHandlers struct {
	scans    ScanExecutor
	clusters ClusterGenerator
}

func NewEventHandlers(scans ScanExecutor, clusters ClusterGenerator) *EventHandlers {
	return &EventHandlers{scans: scans, clusters: clusters}
}

// Handle 은 이벤트 타입을 먼저 읽고 알맞은 핸들러로 보낸다.
// 봉투에 타입이 없으면 페이로드에서 읽는다. 알 수 없는 타입은 무시(커밋)한다.
func (h *EventHandlers) Handle(ctx context.Context, ev eventbus.Event) error {
	typ := events.EventType(ev.Type)
	if typ == "" {
		var err error
		if typ, err = events.PeekType(ev.Payload); err != nil {
			return err
		}
	}
	switch typ {
	case events.ScanRequested:
		v, err := eventbus.DecodePayload[events.ScanRequestedEvent](ev)
		if err != nil {
			return err
		}
		return h.HandleScanRequested(ctx, &v)
	case events.ClusterGenerationRequested:
		v, err := eventbus.DecodePayload[events.ClusterGenerationRequestedEvent](ev)
		if err != nil {
			return err
		}
		return h.HandleClusterGenerationRequested(ctx, &v)
	default:
		config.Logger.Debugf("ignoring event type %q", typ)
		return nil
	}
}

func (h *EventHandlers) HandleScanRequested(ctx context.Context, event *events.ScanRequestedEvent) error {
	log := config.Logger.WithFields(slog.M{"scan_run_id": event.ScanRunID, "event_id": event.ID})
	log.Infof("handling scan request: %d items", len(event.Refs))

	err := h.scans.Execute(ctx, event.ScanRunID, event.Refs)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, scan.ErrRunNotExecutable), errors.Is(err, repositories.ErrNotFound):
		// 재전달되었거나 이미 삭제된 run
		log.Warnf("scan request dropped: %v", err)
		return nil
	default:
		return fmt.Errorf("execute scan %s: %w", event.ScanRunID, err)
	}
}

func (h *EventHandlers) HandleClusterGenerationRequested(ctx context.Context, event *events.ClusterGenerationRequestedEvent) error {
	log := config.Logger.WithFields(slog.M{"cluster_id": event.ClusterID, "event_id": event.ID})
	log.Infof("handling cluster generation request: %s", event.ClusterTopic)

	brief := generation.ClusterBrief{
		ClusterTopic:   event.ClusterTopic,
		TargetAudience: event.TargetAudience,
		PrimaryKeyword: event.PrimaryKeyword,
		Language:       event.Language,
	}
	err := h.clusters.Generate(ctx, event.ClusterID, brief)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cluster.ErrInvalidTransition), errors.Is(err, repositories.ErrNotFound):
		log.Warnf("generation request dropped: %v", err)
		return nil
	case generation.KindOf(err) != "":
		// 클러스터는 이미 failed 로 기록되었다. 재시도해도 pending 이 아니므로 거부된다.
		log.Errorf("cluster generation failed: %v", err)
		return nil
	default:
		return fmt.Errorf("generate cluster %s: %w", event.ClusterID, err)
	}
}
