package eventbus

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewJSONEvent encodes payload into a job event envelope. An empty id gets a
// fresh UUID; maxRetry outside 1..len(RetryDelays) means every retry.
func NewJSONEvent(id, eventType string, payload any, maxRetry int) (Event, error) {
	if maxRetry <= 0 || maxRetry > len(RetryDelays) {
		maxRetry = len(RetryDelays)
	}
	if id == "" {
		id = uuid.New().String()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("%s 이벤트 payload 인코딩 실패: %w", eventType, err)
	}
	return Event{
		ID:       id,
		Type:     eventType,
		Payload:  b,
		MaxRetry: maxRetry,
	}, nil
}

// DecodePayload 는 Event.Payload 를 T 로 디코딩한다.
func DecodePayload[T any](evt Event) (T, error) {
	var out T
	if err := json.Unmarshal(evt.Payload, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("event %s (%s) payload 디코딩 실패: %w", evt.ID, evt.Type, err)
	}
	return out, nil
}
