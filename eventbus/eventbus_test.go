package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-graph/config"
)

func TestRetryTopicNamesRoundTrip(t *testing.T) {
	topic := NewTopic("jobs")

	retryTopics := topic.GetRetryTopics()
	require.Len(t, retryTopics, len(RetryDelays))

	for i, delay := range RetryDelays {
		name, err := topic.GetRetryTopic(i + 1)
		require.NoError(t, err)
		assert.Equal(t, retryTopics[i], name)

		parsed, ok := ParseRetryDelayFromTopicName(name)
		require.True(t, ok, name)
		assert.Equal(t, delay, parsed)
	}

	assert.Equal(t, "jobs.dlq", topic.DLQ())
}

func TestGetRetryTopicOutOfRange(t *testing.T) {
	topic := NewTopic("jobs")

	_, err := topic.GetRetryTopic(0)
	assert.ErrorIs(t, err, ErrMaxRetryExceeded)

	_, err = topic.GetRetryTopic(len(RetryDelays) + 1)
	assert.ErrorIs(t, err, ErrMaxRetryExceeded)
}

func TestParseRetryDelayFromTopicName_Rejects(t *testing.T) {
	cases := []string{
		"jobs",
		"jobs.retry.",
		"jobs.retry.abc",
		"jobs.retry.7s", // RetryDelays 에 없음
		"jobs.dlq",
	}
	for _, name := range cases {
		_, ok := ParseRetryDelayFromTopicName(name)
		assert.False(t, ok, name)
	}
}

func TestNewJSONEvent(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	evt, err := NewJSONEvent("", "scan.requested", payload{Name: "a"}, 99)
	require.NoError(t, err)
	assert.Len(t, evt.ID, 36)
	assert.Equal(t, "scan.requested", evt.Type)
	assert.Equal(t, len(RetryDelays), evt.MaxRetry)
	assert.Zero(t, evt.Retry)

	got, err := DecodePayload[payload](evt)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)

	evt, err = NewJSONEvent("fixed", "", payload{}, 2)
	require.NoError(t, err)
	assert.Equal(t, "fixed", evt.ID)
	assert.Equal(t, 2, evt.MaxRetry)
}

func TestJobTopicNames(t *testing.T) {
	assert.Equal(t, []string{
		"content-graph.jobs.events.retry.15s",
		"content-graph.jobs.events.retry.1m0s",
		"content-graph.jobs.events.retry.5m0s",
	}, TopicJobEvents.GetRetryTopics())
	assert.Equal(t, "content-graph.jobs.events.dlq", TopicJobEvents.DLQ())
}

func TestDecodePayload_Invalid(t *testing.T) {
	_, err := DecodePayload[map[string]int](Event{ID: "e1", Payload: []byte(`{"a":"x"}`)})
	assert.Error(t, err)
}

func TestClampWait(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, clampWait(time.Minute))
	assert.Equal(t, 50*time.Millisecond, clampWait(time.Millisecond))
	assert.Equal(t, 200*time.Millisecond, clampWait(200*time.Millisecond))
}

func TestGetBrokersFromConfig(t *testing.T) {
	config.Set(config.AppConfig{})
	_, err := GetBrokers()
	assert.ErrorIs(t, err, ErrBrokersNotConfigured)

	config.Set(config.AppConfig{Dispatch: config.DispatchConfig{Brokers: "k1:9092", GroupID: "g"}})
	b, err := GetBrokers()
	require.NoError(t, err)
	assert.Equal(t, "k1:9092", b)
	assert.Equal(t, "g", GetGroupID())
}

func TestTopicSpecs(t *testing.T) {
	specs := topicSpecs(TopicJobEvents, 3)
	require.Len(t, specs, len(RetryDelays)+2)

	assert.Equal(t, "content-graph.jobs.events", specs[0].Topic)
	assert.Equal(t, 3, specs[0].NumPartitions)
	assert.Empty(t, specs[0].Config)

	for i, name := range TopicJobEvents.GetRetryTopics() {
		s := specs[i+1]
		assert.Equal(t, name, s.Topic)
		assert.Equal(t, 3, s.NumPartitions)
		assert.Equal(t, "86400000", s.Config["retention.ms"])
	}

	dlq := specs[len(specs)-1]
	assert.Equal(t, "content-graph.jobs.events.dlq", dlq.Topic)
	assert.Equal(t, 1, dlq.NumPartitions)

	assert.Equal(t, 1, topicSpecs(TopicJobEvents, 0)[0].NumPartitions)
}
