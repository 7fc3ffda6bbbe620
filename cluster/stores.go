package cluster

import (
	"context"

	"content-graph/generation"
	"content-graph/models"
)

type ClusterStore interface {
	Insert(ctx context.Context, c *models.Cluster) error
	Get(ctx context.Context, id string) (*models.Cluster, error)
	List(ctx context.Context, limit int64) ([]models.Cluster, error)
	TransitionStatus(ctx context.Context, id string, from []models.ClusterStatus, to models.ClusterStatus, errMsg string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type ItemStore interface {
	InsertMany(ctx context.Context, items []*models.ClusterItem) error
	Get(ctx context.Context, id string) (*models.ClusterItem, error)
	ListByCluster(ctx context.Context, clusterID string) ([]models.ClusterItem, error)
	TransitionStatus(ctx context.Context, id string, from, to models.ClusterItemStatus) (bool, error)
	UpdateFields(ctx context.Context, id string, updates map[string]any) (bool, error)
	MarkPublished(ctx context.Context, id string, kind models.ContentKind, contentID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// ContentWriter 는 게시 시 새 콘텐츠 노드를 만드는 저장소다.
type ContentWriter interface {
	Insert(ctx context.Context, n *models.ContentNode) error
	Delete(ctx context.Context, kind models.ContentKind, id string) error
}

// DraftGenerator produces the drafts of a cluster.
type DraftGenerator interface {
	GenerateClusterDrafts(ctx context.Context, clusterID string, b generation.ClusterBrief) ([]generation.Draft, error)
}

// Dispatcher hands a generation request to whatever executes it.
type Dispatcher interface {
	DispatchGeneration(ctx context.Context, clusterID string, b generation.ClusterBrief) error
}

type Stores struct {
	Clusters ClusterStore
	Items    ItemStore
	Contents ContentWriter
}
