package linkgraph

import (
	"context"
	"fmt"

	"content-graph/metrics"
	"content-graph/models"
	"content-graph/repositories"
)

type ContentLister interface {
	List(ctx context.Context, kind models.ContentKind, f repositories.ContentFilter) ([]models.ContentNode, error)
}

type EdgeLister interface {
	List(ctx context.Context, f repositories.EdgeFilter) ([]models.LinkEdge, error)
}

// Snapshot is a point-in-time read of every node and edge.
type Snapshot struct {
	Nodes []models.ContentNode
	Edges []models.LinkEdge
}

// LoadSnapshot reads all content kinds and all edges. It is re-read for every
// analysis; there is no cache to invalidate.
func LoadSnapshot(ctx context.Context, contents ContentLister, edges EdgeLister) (*Snapshot, error) {
	snap := &Snapshot{}
	for _, kind := range models.AllContentKinds {
		nodes, err := contents.List(ctx, kind, repositories.ContentFilter{})
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", kind, err)
		}
		snap.Nodes = append(snap.Nodes, nodes...)
	}
	all, err := edges.List(ctx, repositories.EdgeFilter{})
	if err != nil {
		return nil, fmt.Errorf("list link edges: %w", err)
	}
	snap.Edges = all
	return snap, nil
}

// Service loads a fresh snapshot and analyzes it.
type Service struct {
	contents ContentLister
	edges    EdgeLister
}

func NewService(contents ContentLister, edges EdgeLister) *Service {
	return &Service{contents: contents, edges: edges}
}

func (s *Service) Health(ctx context.Context, minLinks int) (Result, error) {
	snap, err := LoadSnapshot(ctx, s.contents, s.edges)
	if err != nil {
		return Result{}, err
	}
	res := Analyze(snap.Nodes, snap.Edges, minLinks)
	metrics.LinkHealthScore.Set(float64(res.Report.HealthScore))
	metrics.OrphanedContent.Set(float64(res.Report.OrphanedContent))
	return res, nil
}
