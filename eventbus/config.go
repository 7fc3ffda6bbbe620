package eventbus

import (
	"errors"

	"content-graph/config"
)

var ErrBrokersNotConfigured = errors.New("kafka brokers not configured (dispatch.brokers or KAFKA_BOOTSTRAP_SERVERS)")

// GetBrokers 는 dispatch.brokers 설정(KAFKA_BOOTSTRAP_SERVERS 로 덮어쓰기 가능)을 반환한다.
func GetBrokers() (string, error) {
	v := config.GetConfig().Dispatch.Brokers
	if v == "" {
		return "", ErrBrokersNotConfigured
	}
	return v, nil
}

// GetGroupID 는 컨슈머 그룹 ID 를 반환한다. 기본값은 content-graph-worker.
func GetGroupID() string {
	return config.GetConfig().Dispatch.GroupID
}
