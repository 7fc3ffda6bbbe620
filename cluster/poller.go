package cluster

import (
	"context"
	"time"

	"content-graph/models"
)

// DefaultPollInterval 은 interval 이 0 이하일 때 쓰인다.
const DefaultPollInterval = time.Second

type ClusterGetter interface {
	Get(ctx context.Context, id string) (*models.Cluster, error)
}

// Poll calls fetch every interval until done returns true for its result,
// fetch fails, or ctx ends. The first fetch happens immediately.
func Poll[T any](ctx context.Context, interval time.Duration, fetch func(context.Context) (T, error), done func(T) bool) (T, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		v, err := fetch(ctx)
		if err != nil || done(v) {
			return v, err
		}
		select {
		case <-ctx.Done():
			return v, ctx.Err()
		case <-ticker.C:
		}
	}
}

// WaitWhileGenerating polls the cluster until its status leaves generating.
// A pending cluster is waited on too, since generation has not started yet.
func WaitWhileGenerating(ctx context.Context, getter ClusterGetter, id string, interval time.Duration) (*models.Cluster, error) {
	return Poll(ctx, interval,
		func(ctx context.Context) (*models.Cluster, error) { return getter.Get(ctx, id) },
		func(c *models.Cluster) bool {
			return c.Status != models.ClusterGenerating && c.Status != models.ClusterPending
		},
	)
}
