package cluster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-graph/models"
)

// scriptedGetter 는 호출마다 다음 상태를 돌려준다.
type scriptedGetter struct {
	statuses []models.ClusterStatus
	calls    int
}

func (g *scriptedGetter) Get(_ context.Context, id string) (*models.Cluster, error) {
	i := g.calls
	if i >= len(g.statuses) {
		i = len(g.statuses) - 1
	}
	g.calls++
	return &models.Cluster{ID: id, Status: g.statuses[i]}, nil
}

func TestWaitWhileGeneratingStopsOnTerminalStatus(t *testing.T) {
	g := &scriptedGetter{statuses: []models.ClusterStatus{
		models.ClusterPending, models.ClusterGenerating, models.ClusterGenerating, models.ClusterReview,
	}}
	c, err := WaitWhileGenerating(context.Background(), g, "c1", time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, models.ClusterReview, c.Status)
	assert.Equal(t, 4, g.calls)
}

func TestWaitWhileGeneratingReturnsImmediatelyWhenDone(t *testing.T) {
	g := &scriptedGetter{statuses: []models.ClusterStatus{models.ClusterFailed}}
	c, err := WaitWhileGenerating(context.Background(), g, "c1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, models.ClusterFailed, c.Status)
	assert.Equal(t, 1, g.calls)
}

func TestWaitWhileGeneratingHonoursContext(t *testing.T) {
	g := &scriptedGetter{statuses: []models.ClusterStatus{models.ClusterGenerating}}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c, err := WaitWhileGenerating(ctx, g, "c1", 5*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, models.ClusterGenerating, c.Status)
}

func TestPollNonPositiveIntervalUsesDefault(t *testing.T) {
	g := &scriptedGetter{statuses: []models.ClusterStatus{models.ClusterReview}}

	for _, interval := range []time.Duration{0, -time.Second} {
		got, err := WaitWhileGenerating(context.Background(), g, "c1", interval)
		require.NoError(t, err)
		assert.Equal(t, models.ClusterReview, got.Status)
	}
	assert.Equal(t, 2, g.calls)
}
