package linkgraph

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-graph/models"
	"content-graph/repositories/memory"
)

func blog(id string, published bool) models.ContentNode {
	return models.ContentNode{ID: id, Kind: models.KindBlogPost, Title: "Post " + id, Slug: "post-" + id, IsPublished: published}
}

func edge(src, dst models.ContentNode, active bool) models.LinkEdge {
	return models.LinkEdge{
		SourceKind: src.Kind, SourceID: src.ID,
		TargetKind: dst.Kind, TargetID: dst.ID,
		IsActive: active,
	}
}

func statByID(t *testing.T, res Result, id string) LinkHealthStat {
	t.Helper()
	for _, st := range res.Stats {
		if st.NodeID == id {
			return st
		}
	}
	t.Fatalf("no stat for %s", id)
	return LinkHealthStat{}
}

func TestAnalyzeTwoPostsOneLink(t *testing.T) {
	a, b := blog("A", true), blog("B", true)
	res := Analyze([]models.ContentNode{a, b}, []models.LinkEdge{edge(a, b, true)}, 1)

	sa := statByID(t, res, "A")
	assert.Equal(t, 0, sa.IncomingLinks)
	assert.Equal(t, 1, sa.OutgoingLinks)
	assert.True(t, sa.IsOrphan)

	sb := statByID(t, res, "B")
	assert.Equal(t, 1, sb.IncomingLinks)
	assert.False(t, sb.IsOrphan)
	assert.False(t, sb.BelowThreshold)

	assert.True(t, sa.BelowThreshold)

	assert.Equal(t, 2, res.Report.TotalContent)
	assert.Equal(t, 1, res.Report.OrphanedContent)
	assert.Equal(t, 0, res.Report.BelowThreshold)
	assert.Equal(t, 0.5, res.Report.AverageLinks)
	assert.Equal(t, 70, res.Report.HealthScore)
	require.Len(t, res.Orphaned, 1)
	assert.Equal(t, "A", res.Orphaned[0].NodeID)
}

func TestAnalyzeBelowThresholdExcludesOrphans(t *testing.T) {
	a, b, c := blog("A", true), blog("B", true), blog("C", true)
	// B has one incoming link, C none, minLinks=2 puts B below threshold
	res := Analyze([]models.ContentNode{a, b, c}, []models.LinkEdge{edge(a, b, true), edge(b, a, true)}, 2)

	assert.Equal(t, 1, res.Report.OrphanedContent)
	assert.Equal(t, 2, res.Report.BelowThreshold)
	require.Len(t, res.BelowThresholdItems, 2)
	assert.Equal(t, "A", res.BelowThresholdItems[0].NodeID)
	assert.Equal(t, "B", res.BelowThresholdItems[1].NodeID)
	// 100 - (33.33*0.6 + 66.67*0.4) = 53.33
	assert.Equal(t, 53, res.Report.HealthScore)
	assert.Equal(t, 0.7, res.Report.AverageLinks)
}

func TestAnalyzeEmptySnapshotIsFullyHealthy(t *testing.T) {
	res := Analyze(nil, nil, 3)
	assert.Equal(t, 0, res.Report.TotalContent)
	assert.Equal(t, 100, res.Report.HealthScore)
	assert.Equal(t, 0.0, res.Report.AverageLinks)
	assert.Empty(t, res.Stats)
}

func TestAnalyzeIgnoresInactiveEdgesAndUnpublishedNodes(t *testing.T) {
	a, b, draft := blog("A", true), blog("B", true), blog("D", false)
	res := Analyze(
		[]models.ContentNode{a, b, draft},
		[]models.LinkEdge{edge(a, b, false), edge(draft, a, true)},
		1,
	)
	require.Len(t, res.Stats, 2)
	assert.Equal(t, 1, statByID(t, res, "A").IncomingLinks)
	assert.Equal(t, 0, statByID(t, res, "B").IncomingLinks)
	assert.True(t, statByID(t, res, "B").IsOrphan)
}

func TestAnalyzeQAPagesAreAlwaysFlagged(t *testing.T) {
	qa := models.ContentNode{ID: "Q", Kind: models.KindQAPage, Title: "Q", IsPublished: true}
	a := blog("A", true)
	// even an edge pointing at the qa page does not count
	res := Analyze([]models.ContentNode{a, qa}, []models.LinkEdge{edge(a, qa, true)}, 0)

	st := statByID(t, res, "Q")
	assert.Equal(t, 0, st.IncomingLinks)
	assert.Equal(t, 0, st.OutgoingLinks)
	assert.True(t, st.IsOrphan)
	assert.True(t, st.BelowThreshold)
}

func TestAnalyzeTopicsUseIsActive(t *testing.T) {
	topic := models.ContentNode{ID: "T", Kind: models.KindTopic, Title: "Topic", IsActive: true}
	hidden := models.ContentNode{ID: "H", Kind: models.KindTopic, Title: "Hidden", IsPublished: true}
	res := Analyze([]models.ContentNode{topic, hidden}, nil, 1)
	require.Len(t, res.Stats, 1)
	assert.Equal(t, "T", res.Stats[0].NodeID)
}

func TestAnalyzeOrphanIffNoIncoming(t *testing.T) {
	nodes := []models.ContentNode{blog("1", true), blog("2", true), blog("3", true), blog("4", true)}
	edges := []models.LinkEdge{
		edge(nodes[0], nodes[1], true),
		edge(nodes[1], nodes[2], true),
		edge(nodes[2], nodes[1], true),
	}
	for _, minLinks := range []int{0, 1, 2, 5} {
		res := Analyze(nodes, edges, minLinks)
		assert.GreaterOrEqual(t, res.Report.HealthScore, 0)
		assert.LessOrEqual(t, res.Report.HealthScore, 100)
		for _, st := range res.Stats {
			assert.Equal(t, st.IncomingLinks == 0, st.IsOrphan, "node %s", st.NodeID)
			assert.Equal(t, st.IncomingLinks < minLinks, st.BelowThreshold, "node %s", st.NodeID)
		}
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	nodes := []models.ContentNode{blog("1", true), blog("2", true), blog("3", true)}
	edges := []models.LinkEdge{edge(nodes[0], nodes[1], true), edge(nodes[2], nodes[1], true)}

	first, err := json.Marshal(Analyze(nodes, edges, 2))
	require.NoError(t, err)
	second, err := json.Marshal(Analyze(nodes, edges, 2))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestServiceHealthReadsEveryKind(t *testing.T) {
	a, b := blog("A", true), blog("B", true)
	faq := models.ContentNode{ID: "F", Kind: models.KindFAQ, Title: "Why?", IsPublished: true}
	contents := memory.NewContents(a, b, faq)
	edges := memory.NewEdges(edge(a, faq, true))

	res, err := NewService(contents, edges).Health(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Report.TotalContent)
	assert.Equal(t, 1, statByID(t, res, "F").IncomingLinks)
}
