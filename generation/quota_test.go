package generation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-graph/config"
)

func TestQuotaLimiterDailyCap(t *testing.T) {
	day := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := NewQuotaLimiter(config.QuotaConfig{RequestsPerDay: 2})
	l.now = func() time.Time { return day }

	for i := 0; i < 2; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	day = day.Add(24 * time.Hour)
	ok, err = l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok, "counter resets on a new day")
}

func TestQuotaLimiterHonoursContextWhileWaiting(t *testing.T) {
	l := NewQuotaLimiter(config.QuotaConfig{RequestsPerMinute: 1})

	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok, err = l.WaitAndReserve(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNilLimiterAllowsEverything(t *testing.T) {
	var l *QuotaLimiter
	ok, err := l.WaitAndReserve(context.Background())
	assert.NoError(t, err)
	assert.True(t, ok)
}
