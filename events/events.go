package events

import (
	"encoding/json"
	"fmt"
	"time"

	"content-graph/models"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	ScanRequested              EventType = "scan.requested"
	ClusterGenerationRequested EventType = "cluster.generation_requested"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// ScanRequestedEvent 는 이미 생성된 scan run 의 실행을 worker 에 맡긴다.
// Refs 는 Start 시점에 확정된 스캔 대상이다.
type ScanRequestedEvent struct {
	BaseEvent
	ScanRunID string              `json:"scan_run_id"`
	Refs      []models.ContentRef `json:"refs"`
}

// ClusterGenerationRequestedEvent 클러스터 초안 생성 요청
type ClusterGenerationRequestedEvent struct {
	BaseEvent
	ClusterID      string `json:"cluster_id"`
	ClusterTopic   string `json:"cluster_topic"`
	TargetAudience string `json:"target_audience,omitempty"`
	PrimaryKeyword string `json:"primary_keyword,omitempty"`
	Language       string `json:"language"`
}

// PeekType 은 페이로드에서 이벤트 타입만 읽는다.
func PeekType(payload []byte) (EventType, error) {
	var peek struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(payload, &peek); err != nil {
		return "", fmt.Errorf("이벤트 타입 파싱 실패: %w", err)
	}
	return peek.Type, nil
}
