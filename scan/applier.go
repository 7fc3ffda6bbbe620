package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/gookit/slog"

	"content-graph/config"
	"content-graph/metrics"
	"content-graph/models"
	"content-graph/repositories"
)

// applyResult 는 항목 하나를 적용한 결과다.
type applyResult struct {
	EdgesInserted int
	BodyUpdated   bool
}

// applyItem writes the item's content suggestions as active edges and appends
// the Related Resources section to the source body. An active edge with the
// same source and target is never inserted twice, and the section is only
// appended once.
func (o *Orchestrator) applyItem(ctx context.Context, item *models.ScanItem, source string) (applyResult, error) {
	var res applyResult

	node, err := o.stores.Contents.Get(ctx, item.ContentType, item.ContentID)
	if err != nil {
		return res, fmt.Errorf("load %s %s: %w", item.ContentType, item.ContentID, err)
	}

	if item.ContentType.SupportsLinks() {
		n, err := o.insertEdges(ctx, node.Ref(), item)
		if err != nil {
			return res, err
		}
		res.EdgesInserted = n
	}

	body, changed := AppendRelatedResources(node.Body, item)
	if changed {
		if err := o.stores.Contents.UpdateFields(ctx, node.Kind, node.ID, map[string]any{"body": body}); err != nil {
			return res, fmt.Errorf("update body of %s %s: %w", node.Kind, node.ID, err)
		}
		res.BodyUpdated = true
	}

	if res.EdgesInserted > 0 {
		metrics.LinksApplied.WithLabelValues(source).Add(float64(res.EdgesInserted))
	}
	return res, nil
}

func (o *Orchestrator) insertEdges(ctx context.Context, src models.ContentRef, item *models.ScanItem) (int, error) {
	existing, err := o.stores.Edges.List(ctx, repositories.EdgeFilter{Source: &src})
	if err != nil {
		return 0, fmt.Errorf("list edges of %s %s: %w", src.Kind, src.ID, err)
	}

	maxSort := 0
	linked := make(map[models.ContentRef]bool, len(existing))
	for _, e := range existing {
		if e.SortOrder > maxSort {
			maxSort = e.SortOrder
		}
		if e.IsActive {
			linked[e.Target()] = true
		}
	}

	inserted := 0
	for _, ls := range []*models.LinkSuggestion{item.RelatedPostSuggestion, item.FAQSuggestion} {
		if ls == nil || !ls.Kind.SupportsLinks() {
			continue
		}
		target := models.ContentRef{Kind: ls.Kind, ID: ls.ID}
		if target == src || linked[target] {
			continue
		}
		maxSort++
		edge := &models.LinkEdge{
			SourceKind: src.Kind,
			SourceID:   src.ID,
			TargetKind: target.Kind,
			TargetID:   target.ID,
			LinkText:   ls.AnchorText,
			SortOrder:  maxSort,
			IsActive:   true,
			CreatedAt:  o.now(),
		}
		if err := o.stores.Edges.Insert(ctx, edge); err != nil {
			return inserted, fmt.Errorf("insert edge %s/%s -> %s/%s: %w", src.Kind, src.ID, target.Kind, target.ID, err)
		}
		linked[target] = true
		inserted++
	}
	return inserted, nil
}

// ApplyItems applies report-only suggestions of a run. An empty itemIDs
// selects every unapplied item of the run. Already applied items and items
// of other runs are skipped. It returns how many items were applied.
func (o *Orchestrator) ApplyItems(ctx context.Context, runID string, itemIDs []string) (int, error) {
	if _, err := o.stores.Runs.Get(ctx, runID); err != nil {
		return 0, err
	}

	var items []models.ScanItem
	if len(itemIDs) == 0 {
		all, err := o.stores.Items.ListByRun(ctx, runID)
		if err != nil {
			return 0, err
		}
		items = all
	} else {
		for _, id := range itemIDs {
			it, err := o.stores.Items.Get(ctx, id)
			if err != nil {
				return 0, fmt.Errorf("scan item %s: %w", id, err)
			}
			items = append(items, *it)
		}
	}

	log := config.Logger.WithFields(slog.M{"scan_run_id": runID})
	applied := 0
	for i := range items {
		it := &items[i]
		if it.ScanRunID != runID || it.Applied {
			continue
		}
		// 적용 중 실패하면 applied 로 표시하지 않는다. 재시도해도 간선 중복은 생기지 않는다.
		if _, err := o.applyItem(ctx, it, "bulk_apply"); err != nil {
			return applied, err
		}
		ok, err := o.stores.Items.MarkApplied(ctx, it.ID, o.now())
		if err != nil {
			return applied, err
		}
		if ok {
			applied++
		}
	}
	log.Infof("bulk apply finished: %d items applied", applied)
	return applied, nil
}

func (o *Orchestrator) now() time.Time {
	if o.clock != nil {
		return o.clock()
	}
	return time.Now()
}
