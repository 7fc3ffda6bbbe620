package eventbus

import (
	"strings"
	"time"
)

// ParseRetryDelayFromTopicName는 재시도 토픽 이름에서 지연 시간을 추출합니다.
// 형식: "<base>.retry.<duration>" (GetRetryTopic 이 만드는 이름, 예: ".retry.1m0s")
// RetryDelays 에 없는 지연 시간은 거부합니다.
func ParseRetryDelayFromTopicName(name string) (time.Duration, bool) {
	idx := strings.LastIndex(name, ".retry.")
	if idx == -1 || idx+7 >= len(name) {
		return 0, false
	}
	d, err := time.ParseDuration(name[idx+7:])
	if err != nil {
		return 0, false
	}
	for _, known := range RetryDelays {
		if known == d {
			return d, true
		}
	}
	return 0, false
}
