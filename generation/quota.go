package generation

import (
	"context"
	"sync"
	"time"

	"content-graph/config"
)

// QuotaLimiter 는 생성용 LLM 호출에 대한 분당/일일 한도를 관리한다.
// 인스턴스 하나를 전제로 인메모리로 동작하며 재시작하면 카운터가 초기화된다.
type QuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewQuotaLimiter 는 generation.quota 설정으로 limiter 를 만든다.
// 0 이하 값은 해당 방향의 제한을 두지 않는다.
func NewQuotaLimiter(q config.QuotaConfig) *QuotaLimiter {
	requestsPerDay := q.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	var interval time.Duration
	if q.RequestsPerMinute > 0 {
		interval = time.Minute / time.Duration(q.RequestsPerMinute)
	}

	return &QuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        time.Now,
	}
}

// WaitAndReserve 는 호출 전에 분당/일일 한도를 적용한다.
//   - 일일 한도 초과: (false, nil). 호출자는 모델 호출을 하지 않아야 한다.
//   - 컨텍스트 취소: (false, ctx.Err())
func (l *QuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	if l == nil {
		return true, nil
	}
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		l.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
