package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RetryDelays 는 작업 이벤트의 재시도 간격이다 (1-based 재시도 횟수 순).
// 생성 작업은 분당 쿼터에 걸리므로 두 번째부터는 1분 이상 쉰다.
// 재시도 토픽 이름이 이 값으로 만들어지므로 바꾸면 토픽도 새로 생긴다.
var RetryDelays = []time.Duration{
	15 * time.Second,
	1 * time.Minute,
	5 * time.Minute,
}

// Topic names a job topic and derives its retry and dead-letter topics,
// e.g. content-graph.jobs.events, content-graph.jobs.events.retry.1m0s and
// content-graph.jobs.events.dlq.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

func (t Topic) retryName(delay time.Duration) string {
	return fmt.Sprintf("%s.retry.%s", t.base, delay)
}

// GetRetryTopics 는 RetryDelays 순서대로 재시도 토픽 이름을 돌려준다.
func (t Topic) GetRetryTopics() []string {
	topics := make([]string, len(RetryDelays))
	for i, delay := range RetryDelays {
		topics[i] = t.retryName(delay)
	}
	return topics
}

// GetRetryTopic returns the topic for the retryCount-th retry (1-based).
func (t Topic) GetRetryTopic(retryCount int) (string, error) {
	if retryCount <= 0 || retryCount > len(RetryDelays) {
		return "", ErrMaxRetryExceeded
	}
	return t.retryName(RetryDelays[retryCount-1]), nil
}

// Event is the Kafka envelope around one job request. Type mirrors the
// payload's event type so consumers can route without decoding the payload;
// Retry counts the redeliveries so far.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	Retry     int             `json:"retry"`
	MaxRetry  int             `json:"max_retry"`
	LastError string          `json:"last_error,omitempty"`
}

// EventHandler 가 에러를 반환하면 이벤트는 재시도 토픽(또는 DLQ)으로 간다.
type EventHandler func(ctx context.Context, event Event) error

type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	// Subscribe 는 기본 토픽을 소비하며 handler 를 호출한다.
	Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error
	// StartRetryReinjector 는 지연이 지난 재시도 이벤트를 기본 토픽으로 되돌린다.
	StartRetryReinjector(ctx context.Context, groupID string, topic Topic) error
	Close()
}

var ErrMaxRetryExceeded = errors.New("작업 이벤트 재시도 한도 초과")

var ErrRetryScheduleFailed = errors.New("작업 이벤트 재시도/DLQ 발행 실패")
