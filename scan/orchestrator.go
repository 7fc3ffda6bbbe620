// Package scan runs link scans over the content graph: it snapshots the
// eligible population, records one ScanItem of suggestions per node and, in
// auto_apply mode, writes the suggested edges back.
package scan

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gookit/slog"

	"content-graph/config"
	"content-graph/metrics"
	"content-graph/models"
	"content-graph/repositories"
	"content-graph/suggest"
)

// Request 는 스캔 시작 요청이다. MaxExternalLinks 가 nil 이면 설정 기본값을 쓴다.
type Request struct {
	Mode             models.ScanMode
	ContentTypes     []models.ContentKind
	TopicFilter      *string
	MaxExternalLinks *int
}

// Dispatcher hands a started run to whatever executes it.
type Dispatcher interface {
	DispatchScan(ctx context.Context, runID string, refs []models.ContentRef) error
}

type Options struct {
	// Exclusive 가 true 이면 running 스캔이 있는 동안 새 스캔을 거부한다.
	Exclusive               bool
	DefaultMaxExternalLinks int
	// StaleAfter 보다 오래 running 인 run 은 실행자가 사라진 것으로 보고 failed 로 닫는다.
	// 0 이면 정리하지 않는다.
	StaleAfter time.Duration
}

type Orchestrator struct {
	stores     Stores
	opts       Options
	dispatcher Dispatcher
	clock      func() time.Time

	// startMu 는 같은 프로세스 안에서 배타 검사와 run 생성을 묶는다.
	startMu sync.Mutex
}

func NewOrchestrator(stores Stores, opts Options) *Orchestrator {
	if opts.DefaultMaxExternalLinks <= 0 {
		opts.DefaultMaxExternalLinks = 2
	}
	return &Orchestrator{stores: stores, opts: opts}
}

// SetDispatcher 를 호출하지 않으면 Start 는 분리된 고루틴에서 Execute 를 실행한다.
func (o *Orchestrator) SetDispatcher(d Dispatcher) {
	o.dispatcher = d
}

func (o *Orchestrator) validate(req Request) (*models.ScanRun, error) {
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, req.Mode)
	}
	if len(req.ContentTypes) == 0 {
		return nil, fmt.Errorf("%w: content_types is empty", ErrInvalidRequest)
	}
	var kinds []models.ContentKind
	for _, k := range req.ContentTypes {
		if !slices.Contains(models.ScannableKinds, k) {
			return nil, fmt.Errorf("%w: content type %q cannot be scanned", ErrInvalidRequest, k)
		}
		if !slices.Contains(kinds, k) {
			kinds = append(kinds, k)
		}
	}

	max := o.opts.DefaultMaxExternalLinks
	if req.MaxExternalLinks != nil {
		max = *req.MaxExternalLinks
	}
	if max < 1 || max > suggest.MaxExternalLinks {
		return nil, fmt.Errorf("%w: max_external_links must be between 1 and %d", ErrInvalidRequest, suggest.MaxExternalLinks)
	}

	var topic *string
	if req.TopicFilter != nil && *req.TopicFilter != "" {
		t := *req.TopicFilter
		topic = &t
	}

	return &models.ScanRun{
		Status:           models.ScanRunning,
		Mode:             req.Mode,
		ContentTypes:     kinds,
		TopicFilter:      topic,
		MaxExternalLinks: max,
		StartedAt:        o.now(),
	}, nil
}

// Start records a running ScanRun, snapshots its population and dispatches
// it for execution. The returned run carries TotalItems.
func (o *Orchestrator) Start(ctx context.Context, req Request) (*models.ScanRun, error) {
	run, err := o.validate(req)
	if err != nil {
		return nil, err
	}

	if err := o.insertRun(ctx, run); err != nil {
		return nil, err
	}
	metrics.ScanRunsStarted.WithLabelValues(string(run.Mode)).Inc()

	log := config.Logger.WithFields(slog.M{"scan_run_id": run.ID, "mode": run.Mode})

	refs, err := o.population(ctx, run)
	if err != nil {
		o.fail(ctx, run, err)
		return nil, err
	}
	if err := o.stores.Runs.SetTotal(ctx, run.ID, len(refs)); err != nil {
		o.fail(ctx, run, err)
		return nil, err
	}
	run.TotalItems = len(refs)
	log.Infof("scan started: %d items", run.TotalItems)

	if o.dispatcher != nil {
		if err := o.dispatcher.DispatchScan(ctx, run.ID, refs); err != nil {
			err = fmt.Errorf("dispatch scan: %w", err)
			o.fail(ctx, run, err)
			return nil, err
		}
		return run, nil
	}

	go func(ctx context.Context) {
		if err := o.Execute(ctx, run.ID, refs); err != nil {
			log.Errorf("scan execution failed: %v", err)
		}
	}(context.WithoutCancel(ctx))
	return run, nil
}

func (o *Orchestrator) insertRun(ctx context.Context, run *models.ScanRun) error {
	if !o.opts.Exclusive {
		return o.stores.Runs.Insert(ctx, run)
	}

	o.startMu.Lock()
	defer o.startMu.Unlock()
	if _, err := o.FailStale(ctx); err != nil {
		return err
	}
	running, err := o.stores.Runs.ExistsRunning(ctx)
	if err != nil {
		return err
	}
	if running {
		return ErrScanInProgress
	}
	return o.stores.Runs.Insert(ctx, run)
}

// population 은 content_types 와 topic_filter 에 맞는 게시된 노드 목록이다.
func (o *Orchestrator) population(ctx context.Context, run *models.ScanRun) ([]models.ContentRef, error) {
	refs := make([]models.ContentRef, 0)
	for _, kind := range run.ContentTypes {
		nodes, err := o.stores.Contents.List(ctx, kind, repositories.ContentFilter{
			TopicID:       run.TopicFilter,
			PublishedOnly: true,
		})
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", kind, err)
		}
		for _, n := range nodes {
			refs = append(refs, n.Ref())
		}
	}
	return refs, nil
}

// Execute processes the snapshotted refs of a run in order and finishes it.
// Only a running run that has not processed anything yet is executed, so a
// redelivered request is refused with ErrRunNotExecutable.
func (o *Orchestrator) Execute(ctx context.Context, runID string, refs []models.ContentRef) error {
	run, err := o.stores.Runs.Get(ctx, runID)
	if err != nil {
		return err
	}
	if run.Status != models.ScanRunning || run.ProcessedItems > 0 {
		if o.isStale(run) {
			o.fail(ctx, run, o.abandoned())
		}
		return fmt.Errorf("%w: %s is %s with %d processed", ErrRunNotExecutable, run.ID, run.Status, run.ProcessedItems)
	}

	log := config.Logger.WithFields(slog.M{"scan_run_id": run.ID, "mode": run.Mode})
	if err := o.process(ctx, run, refs); err != nil {
		log.Errorf("scan failed: %v", err)
		o.fail(ctx, run, err)
		return err
	}

	if err := o.stores.Runs.Finish(ctx, run.ID, models.ScanCompleted, "", o.now()); err != nil {
		return err
	}
	metrics.ScanRunsFinished.WithLabelValues(string(run.Mode), string(models.ScanCompleted)).Inc()
	log.Infof("scan completed: %d items", len(refs))
	return nil
}

func (o *Orchestrator) process(ctx context.Context, run *models.ScanRun, refs []models.ContentRef) error {
	var nodes []models.ContentNode
	for _, kind := range models.AllContentKinds {
		list, err := o.stores.Contents.List(ctx, kind, repositories.ContentFilter{})
		if err != nil {
			return fmt.Errorf("list %s: %w", kind, err)
		}
		nodes = append(nodes, list...)
	}
	edges, err := o.stores.Edges.List(ctx, repositories.EdgeFilter{})
	if err != nil {
		return fmt.Errorf("list link edges: %w", err)
	}
	sources, err := o.stores.Authorities.List(ctx)
	if err != nil {
		return fmt.Errorf("list authority sources: %w", err)
	}

	byRef := make(map[models.ContentRef]int, len(nodes))
	for i, n := range nodes {
		byRef[n.Ref()] = i
	}

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}

		i, ok := byRef[ref]
		if !ok {
			// 스냅샷 이후 삭제된 노드. 진행률만 올린다.
			config.Logger.WithFields(slog.M{"scan_run_id": run.ID, "content_id": ref.ID}).
				Warnf("%s vanished before processing", ref.Kind)
		} else if err := o.processNode(ctx, run, nodes[i], nodes, edges, sources); err != nil {
			return err
		}

		if err := o.stores.Runs.IncrementProcessed(ctx, run.ID); err != nil {
			return fmt.Errorf("increment processed: %w", err)
		}
		metrics.ScanItemsProcessed.WithLabelValues(string(ref.Kind)).Inc()
	}
	return nil
}

func (o *Orchestrator) processNode(ctx context.Context, run *models.ScanRun, node models.ContentNode, nodes []models.ContentNode, edges []models.LinkEdge, sources []models.AuthoritySource) error {
	s := suggest.Suggest(node, nodes, edges, sources, run.MaxExternalLinks)

	item := &models.ScanItem{
		ScanRunID:             run.ID,
		ContentType:           node.Kind,
		ContentID:             node.ID,
		ContentTitle:          node.Title,
		PillarPageSuggestion:  s.PillarPage,
		RelatedPostSuggestion: s.RelatedPost,
		FAQSuggestion:         s.FAQ,
		ExternalCitations:     s.ExternalCitations,
		InternalLinksAdded:    s.InternalLinksAdded,
		ExternalLinksAdded:    s.ExternalLinksAdded,
		Warnings:              s.Warnings,
		CreatedAt:             o.now(),
	}
	if item.Warnings == nil {
		item.Warnings = []string{}
	}
	if err := o.stores.Items.Insert(ctx, item); err != nil {
		return fmt.Errorf("insert scan item for %s %s: %w", node.Kind, node.ID, err)
	}

	if run.Mode != models.ScanAutoApply {
		return nil
	}
	if _, err := o.applyItem(ctx, item, "auto_apply"); err != nil {
		return err
	}
	if _, err := o.stores.Items.MarkApplied(ctx, item.ID, o.now()); err != nil {
		return fmt.Errorf("mark scan item %s applied: %w", item.ID, err)
	}
	return nil
}

func (o *Orchestrator) isStale(run *models.ScanRun) bool {
	return o.opts.StaleAfter > 0 && run.Status == models.ScanRunning &&
		run.StartedAt.Before(o.now().Add(-o.opts.StaleAfter))
}

func (o *Orchestrator) abandoned() error {
	return fmt.Errorf("%w: still running after %s", ErrRunAbandoned, o.opts.StaleAfter)
}

// FailStale closes running runs older than StaleAfter as failed, e.g. after
// a worker died mid-run and its redelivered request was refused. A worker
// that is in fact still alive keeps writing items but can no longer finish
// the run.
func (o *Orchestrator) FailStale(ctx context.Context) (int, error) {
	if o.opts.StaleAfter <= 0 {
		return 0, nil
	}
	runs, err := o.stores.Runs.ListRunningBefore(ctx, o.now().Add(-o.opts.StaleAfter))
	if err != nil {
		return 0, fmt.Errorf("list stale scan runs: %w", err)
	}
	for i := range runs {
		config.Logger.WithFields(slog.M{"scan_run_id": runs[i].ID}).
			Warnf("closing abandoned scan (%d/%d processed)", runs[i].ProcessedItems, runs[i].TotalItems)
		o.fail(ctx, &runs[i], o.abandoned())
	}
	return len(runs), nil
}

// fail 은 run 을 failed 로 닫는다. 이미 쓰인 항목과 간선은 되돌리지 않는다.
func (o *Orchestrator) fail(ctx context.Context, run *models.ScanRun, cause error) {
	ctx = context.WithoutCancel(ctx)
	if err := o.stores.Runs.Finish(ctx, run.ID, models.ScanFailed, cause.Error(), o.now()); err != nil {
		config.Logger.WithFields(slog.M{"scan_run_id": run.ID}).Errorf("failed to mark scan failed: %v", err)
		return
	}
	metrics.ScanRunsFinished.WithLabelValues(string(run.Mode), string(models.ScanFailed)).Inc()
}

func (o *Orchestrator) Get(ctx context.Context, id string) (*models.ScanRun, error) {
	return o.stores.Runs.Get(ctx, id)
}

// List 는 최근 run 부터 반환한다.
func (o *Orchestrator) List(ctx context.Context, limit int64) ([]models.ScanRun, error) {
	return o.stores.Runs.List(ctx, limit)
}

func (o *Orchestrator) Items(ctx context.Context, runID string) ([]models.ScanItem, error) {
	if _, err := o.stores.Runs.Get(ctx, runID); err != nil {
		return nil, err
	}
	return o.stores.Items.ListByRun(ctx, runID)
}

// DeleteRun deletes a finished run: items one by one, then the run.
func (o *Orchestrator) DeleteRun(ctx context.Context, id string) error {
	run, err := o.stores.Runs.Get(ctx, id)
	if err != nil {
		return err
	}
	if run.Status == models.ScanRunning {
		return ErrRunRunning
	}
	items, err := o.stores.Items.ListByRun(ctx, id)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := o.stores.Items.Delete(ctx, it.ID); err != nil {
			return fmt.Errorf("delete scan item %s: %w", it.ID, err)
		}
	}
	return o.stores.Runs.Delete(ctx, id)
}
