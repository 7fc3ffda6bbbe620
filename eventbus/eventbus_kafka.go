package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gookit/slog"

	"content-graph/config"
	"content-graph/metrics"
)

// KafkaEventBus는 confluent-kafka-go 라이브러리를 사용한 EventBus 구현체입니다.
type KafkaEventBus struct {
	Producer *kafka.Producer
	Brokers  string
}

// NewKafkaEventBus는 Kafka Producer를 초기화합니다.
func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("kafka Producer 생성 실패: %w", err)
	}

	// 전달 보고서 등 Producer 이벤트 처리
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					config.Logger.Errorf("메시지 전달 실패 %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				config.Logger.Errorf("Kafka 오류: %v", ev)
			}
		}
	}()

	return &KafkaEventBus{
		Producer: p,
		Brokers:  brokers,
	}, nil
}

// Close는 남은 메시지를 플러시하고 Producer를 종료합니다.
func (k *KafkaEventBus) Close() {
	if k.Producer == nil {
		return
	}
	if remaining := k.Producer.Flush(5000); remaining > 0 {
		config.Logger.Warnf("플러시 후에도 %d개의 메시지가 남아 있습니다.", remaining)
	}
	k.Producer.Close()
	config.Logger.Info("Kafka Producer 종료.")
}

// Publish는 지정된 토픽에 이벤트를 발행하고 전달 보고서를 기다립니다.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	err := k.publish(ctx, topic, event)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.EventsPublished.WithLabelValues(topic, status).Inc()
	return err
}

func (k *KafkaEventBus) publish(ctx context.Context, topic string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("이벤트 마샬링 실패: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = k.Producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("메시지 발행 실패: %w", err)
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("예상하지 못한 전달 보고서: %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("메시지 전달 실패: %w", m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (k *KafkaEventBus) newConsumer(groupID string, topics []string) (*kafka.Consumer, error) {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":             k.Brokers,
		"group.id":                      groupID,
		"auto.offset.reset":             "earliest",
		"enable.auto.commit":            false, // 재시도 로직을 위해 수동 커밋
		"partition.assignment.strategy": "range",
	})
	if err != nil {
		return nil, fmt.Errorf("kafka Consumer 생성 실패: %w", err)
	}
	if err := c.SubscribeTopics(topics, nil); err != nil {
		c.Close()
		return nil, fmt.Errorf("토픽 구독 실패 %v: %w", topics, err)
	}
	return c, nil
}

// readMessage 는 타임아웃을 (nil, nil) 로 돌려준다. 치명적 오류만 error 로 반환한다.
func readMessage(c *kafka.Consumer) (*kafka.Message, error) {
	msg, err := c.ReadMessage(100 * time.Millisecond)
	if err == nil {
		return msg, nil
	}
	var kerr kafka.Error
	if errors.As(err, &kerr) {
		if kerr.Code() == kafka.ErrTimedOut {
			return nil, nil
		}
		if kerr.IsFatal() {
			return nil, err
		}
	}
	config.Logger.Errorf("ReadMessage 오류: %v", err)
	time.Sleep(500 * time.Millisecond)
	return nil, nil
}

// Subscribe는 기본 토픽을 구독하고 핸들러를 실행합니다.
// 핸들러가 실패하면 다음 재시도 토픽으로, 재시도가 소진되면 DLQ 로 보냅니다.
func (k *KafkaEventBus) Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error {
	c, err := k.newConsumer(groupID, []string{topic.Base()})
	if err != nil {
		return err
	}
	defer c.Close()

	config.Logger.Infof("메인 컨슈머 (%s) 시작됨. 구독 토픽: %s", groupID, topic.Base())

	for {
		select {
		case <-ctx.Done():
			config.Logger.Info("메인 컨슈머 종료 중.")
			return ctx.Err()
		default:
		}

		msg, err := readMessage(c)
		if err != nil {
			return fmt.Errorf("메인 컨슈머 치명적 오류: %w", err)
		}
		if msg == nil {
			continue
		}

		var evt Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			config.Logger.Errorf("토픽 %s의 이벤트 페이로드 오류: %v. 메시지를 건너뛰고 커밋합니다.", topic.Base(), err)
			metrics.EventsHandled.WithLabelValues(topic.Base(), "dropped").Inc()
			c.CommitMessage(msg)
			continue
		}
		if evt.MaxRetry <= 0 || evt.MaxRetry > len(RetryDelays) {
			evt.MaxRetry = len(RetryDelays)
		}

		log := config.Logger.WithFields(slog.M{"event_id": evt.ID, "event_type": evt.Type, "topic": topic.Base(), "retry": evt.Retry})
		log.Debugf("이벤트 처리 시작")

		if herr := handler(ctx, evt); herr != nil {
			if !k.scheduleRetry(ctx, topic, evt, herr) {
				// 재시도/DLQ 발행 실패: 커밋하지 않고 재처리한다.
				continue
			}
		} else {
			metrics.EventsHandled.WithLabelValues(topic.Base(), "ok").Inc()
		}

		if _, err := c.CommitMessage(msg); err != nil {
			log.Errorf("오프셋 커밋 오류: %v", err)
		}
	}
}

// scheduleRetry 는 실패한 이벤트를 다음 재시도 토픽이나 DLQ 로 보낸다.
// 발행에 성공하면 true 를 반환한다.
func (k *KafkaEventBus) scheduleRetry(ctx context.Context, topic Topic, evt Event, cause error) bool {
	log := config.Logger.WithFields(slog.M{"event_id": evt.ID, "topic": topic.Base()})
	evt.LastError = cause.Error()

	next := evt.Retry + 1
	target, err := topic.GetRetryTopic(next)
	outcome := "retry"
	switch {
	case errors.Is(err, ErrMaxRetryExceeded) || next > evt.MaxRetry:
		target = topic.DLQ()
		outcome = "dlq"
		log.Errorf("최대 재시도 횟수 초과. DLQ %s로 전송. 최종 오류: %v", target, cause)
	case err != nil:
		log.Errorf("재시도 토픽 결정 중 오류: %v", err)
		return false
	default:
		evt.Retry = next
		log.Warnf("이벤트 처리 실패 (%v). 재시도 %d/%d를 토픽 %s에 예약.", cause, evt.Retry, evt.MaxRetry, target)
	}

	if err := k.Publish(ctx, target, evt); err != nil {
		log.Errorf("%v: %s 발행 실패: %v", ErrRetryScheduleFailed, target, err)
		return false
	}
	metrics.EventsHandled.WithLabelValues(topic.Base(), outcome).Inc()
	return true
}

// StartRetryReinjector는 모든 재시도 토픽을 구독하고, 지연 시간이 지난 메시지를
// 기본 토픽으로 재발행합니다.
func (k *KafkaEventBus) StartRetryReinjector(ctx context.Context, groupID string, topic Topic) error {
	retryTopics := topic.GetRetryTopics()
	c, err := k.newConsumer(groupID, retryTopics)
	if err != nil {
		return fmt.Errorf("재시도 재주입기 생성 실패: %w", err)
	}
	defer c.Close()

	config.Logger.Infof("재시도 재주입 컨슈머 (%s) 시작됨. 구독 토픽: %s", groupID, strings.Join(retryTopics, ", "))

	for {
		select {
		case <-ctx.Done():
			config.Logger.Info("재시도 재주입 컨슈머 종료 중.")
			return ctx.Err()
		default:
		}

		msg, err := readMessage(c)
		if err != nil {
			return fmt.Errorf("재시도 재주입 컨슈머 치명적 오류: %w", err)
		}
		if msg == nil {
			continue
		}

		topicName := *msg.TopicPartition.Topic
		delay, ok := ParseRetryDelayFromTopicName(topicName)
		if !ok {
			config.Logger.Errorf("재시도 토픽 이름 파싱 실패: %s. 메시지를 건너뛰고 커밋합니다.", topicName)
			c.CommitMessage(msg)
			continue
		}

		if wait := time.Until(msg.Timestamp.Add(delay)); wait > 0 {
			// 컨슈머 전체를 오래 막지 않도록 짧게만 대기하고, 커밋 없이 다시 읽는다.
			time.Sleep(clampWait(wait))
			if err := c.Seek(msg.TopicPartition, 0); err != nil {
				config.Logger.Errorf("재시도 메시지 재탐색 실패: %v", err)
			}
			continue
		}

		var evt Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			config.Logger.Errorf("재시도 토픽 %s의 이벤트 페이로드 오류: %v. 메시지를 건너뛰고 커밋합니다.", topicName, err)
			c.CommitMessage(msg)
			continue
		}

		config.Logger.Infof("이벤트 %s를 %s에서 %s로 재주입. (재시도: %d)", evt.ID, topicName, topic.Base(), evt.Retry)
		if err := k.Publish(ctx, topic.Base(), evt); err != nil {
			config.Logger.Errorf("이벤트 %s 재주입 실패: %v. 오프셋 커밋 안함.", evt.ID, err)
			continue
		}
		if _, err := c.CommitMessage(msg); err != nil {
			config.Logger.Errorf("재주입 후 커밋 오류: %v", err)
		}
	}
}

func clampWait(d time.Duration) time.Duration {
	switch {
	case d > 500*time.Millisecond:
		return 500 * time.Millisecond
	case d < 50*time.Millisecond:
		return 50 * time.Millisecond
	}
	return d
}
