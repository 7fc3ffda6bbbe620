package scan

import (
	"context"
	"time"

	"content-graph/models"
	"content-graph/repositories"
)

type ContentStore interface {
	List(ctx context.Context, kind models.ContentKind, f repositories.ContentFilter) ([]models.ContentNode, error)
	Get(ctx context.Context, kind models.ContentKind, id string) (*models.ContentNode, error)
	UpdateFields(ctx context.Context, kind models.ContentKind, id string, updates map[string]any) error
}

type EdgeStore interface {
	List(ctx context.Context, f repositories.EdgeFilter) ([]models.LinkEdge, error)
	Insert(ctx context.Context, e *models.LinkEdge) error
}

type AuthorityStore interface {
	List(ctx context.Context) ([]models.AuthoritySource, error)
}

type RunStore interface {
	Insert(ctx context.Context, run *models.ScanRun) error
	Get(ctx context.Context, id string) (*models.ScanRun, error)
	List(ctx context.Context, limit int64) ([]models.ScanRun, error)
	SetTotal(ctx context.Context, id string, total int) error
	IncrementProcessed(ctx context.Context, id string) error
	Finish(ctx context.Context, id string, status models.ScanStatus, errMsg string, at time.Time) error
	ExistsRunning(ctx context.Context) (bool, error)
	ListRunningBefore(ctx context.Context, cutoff time.Time) ([]models.ScanRun, error)
	Delete(ctx context.Context, id string) error
}

type ItemStore interface {
	Insert(ctx context.Context, item *models.ScanItem) error
	Get(ctx context.Context, id string) (*models.ScanItem, error)
	ListByRun(ctx context.Context, runID string) ([]models.ScanItem, error)
	MarkApplied(ctx context.Context, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}

// Stores 는 스캔이 사용하는 저장소 묶음이다.
type Stores struct {
	Contents    ContentStore
	Edges       EdgeStore
	Authorities AuthorityStore
	Runs        RunStore
	Items       ItemStore
}
