// Package linkgraph computes link health metrics over a content snapshot.
package linkgraph

import (
	"math"

	"content-graph/models"
)

// LinkHealthStat is the derived health of one live node. Never persisted.
type LinkHealthStat struct {
	NodeID         string             `json:"node_id"`
	Kind           models.ContentKind `json:"kind"`
	Title          string             `json:"title"`
	Slug           string             `json:"slug"`
	IncomingLinks  int                `json:"incoming_links"`
	OutgoingLinks  int                `json:"outgoing_links"`
	IsOrphan       bool               `json:"is_orphan"`
	BelowThreshold bool               `json:"below_threshold"`
}

// Report 는 전체 노드에 대한 집계다.
// OrphanedContent 와 BelowThreshold 는 서로 겹치지 않는다: 고아 노드는
// BelowThreshold 에 다시 세지 않는다.
type Report struct {
	TotalContent    int     `json:"total_content"`
	OrphanedContent int     `json:"orphaned_content"`
	BelowThreshold  int     `json:"below_threshold"`
	AverageLinks    float64 `json:"average_links"`
	HealthScore     int     `json:"health_score"`
}

type Result struct {
	Stats               []LinkHealthStat `json:"stats"`
	Report              Report           `json:"report"`
	Orphaned            []LinkHealthStat `json:"orphaned"`
	BelowThresholdItems []LinkHealthStat `json:"below_threshold_items"`
}

// Analyze computes per-node and aggregate link health.
//
// Only live nodes (published, or active for topics) are reported and only
// active edges are counted. Kinds the edge schema cannot reference are
// always reported as orphaned and below threshold.
func Analyze(nodes []models.ContentNode, edges []models.LinkEdge, minLinks int) Result {
	incoming := make(map[models.ContentRef]int)
	outgoing := make(map[models.ContentRef]int)
	for _, e := range edges {
		if !e.IsActive {
			continue
		}
		incoming[e.Target()]++
		outgoing[e.Source()]++
	}

	res := Result{
		Stats:               make([]LinkHealthStat, 0, len(nodes)),
		Orphaned:            make([]LinkHealthStat, 0),
		BelowThresholdItems: make([]LinkHealthStat, 0),
	}

	totalIncoming := 0
	for _, n := range nodes {
		if !n.Live() {
			continue
		}
		st := LinkHealthStat{
			NodeID: n.ID,
			Kind:   n.Kind,
			Title:  n.Title,
			Slug:   n.Slug,
		}
		if n.Kind.SupportsLinks() {
			st.IncomingLinks = incoming[n.Ref()]
			st.OutgoingLinks = outgoing[n.Ref()]
			st.IsOrphan = st.IncomingLinks == 0
			st.BelowThreshold = st.IncomingLinks < minLinks
		} else {
			st.IsOrphan = true
			st.BelowThreshold = true
		}

		totalIncoming += st.IncomingLinks
		res.Stats = append(res.Stats, st)
		switch {
		case st.IsOrphan:
			res.Orphaned = append(res.Orphaned, st)
		case st.BelowThreshold:
			res.BelowThresholdItems = append(res.BelowThresholdItems, st)
		}
	}

	res.Report = buildReport(len(res.Stats), len(res.Orphaned), len(res.BelowThresholdItems), totalIncoming)
	return res
}

func buildReport(total, orphaned, below, totalIncoming int) Report {
	r := Report{
		TotalContent:    total,
		OrphanedContent: orphaned,
		BelowThreshold:  below,
		HealthScore:     100,
	}
	if total == 0 {
		return r
	}

	r.AverageLinks = math.Round(float64(totalIncoming)/float64(total)*10) / 10

	orphanPercent := float64(orphaned) / float64(total) * 100
	belowPercent := float64(below) / float64(total) * 100
	score := 100 - (orphanPercent*0.6 + belowPercent*0.4)
	r.HealthScore = int(math.Round(math.Max(0, score)))
	return r
}
