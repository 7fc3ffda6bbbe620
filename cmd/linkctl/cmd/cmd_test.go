package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-graph/linkgraph"
	"content-graph/models"
)

func TestBuildScanRequest(t *testing.T) {
	req := buildScanRequest("auto_apply", []string{"blog_post", " faq ", ""}, "t1", 3, true)
	assert.Equal(t, models.ScanAutoApply, req.Mode)
	assert.Equal(t, []models.ContentKind{models.KindBlogPost, models.KindFAQ}, req.ContentTypes)
	require.NotNil(t, req.TopicFilter)
	assert.Equal(t, "t1", *req.TopicFilter)
	require.NotNil(t, req.MaxExternalLinks)
	assert.Equal(t, 3, *req.MaxExternalLinks)

	req = buildScanRequest("report_only", nil, "", 0, false)
	assert.Nil(t, req.TopicFilter)
	assert.Nil(t, req.MaxExternalLinks)
}

type recordingExecutor struct {
	runID string
	err   error
}

func (e *recordingExecutor) Execute(_ context.Context, runID string, _ []models.ContentRef) error {
	e.runID = runID
	return e.err
}

func TestInlineScansSwallowsExecutionError(t *testing.T) {
	exec := &recordingExecutor{err: errors.New("boom")}
	d := inlineScans{exec: exec}

	assert.NoError(t, d.DispatchScan(context.Background(), "run-1", nil))
	assert.Equal(t, "run-1", exec.runID)
}

func TestPrintHealth(t *testing.T) {
	res := linkgraph.Result{
		Report: linkgraph.Report{TotalContent: 3, OrphanedContent: 2, HealthScore: 50, AverageLinks: 0.33},
		Orphaned: []linkgraph.LinkHealthStat{
			{Kind: models.KindBlogPost, Title: "A"},
			{Kind: models.KindFAQ, Title: "B"},
		},
	}
	var buf bytes.Buffer
	printHealth(&buf, res, 1, 1)

	out := buf.String()
	assert.Contains(t, out, "50/100")
	assert.Contains(t, out, "[##########..........]")
	assert.Contains(t, out, "Orphaned (2)")
	assert.Contains(t, out, "... 1 more")
	assert.NotContains(t, out, "Below threshold")
}

func TestPrintCluster(t *testing.T) {
	var buf bytes.Buffer
	printCluster(&buf, &models.Cluster{ID: "c1", ClusterTopic: "Visas", Status: models.ClusterFailed, ErrorMessage: "generation quota_exhausted"},
		[]models.ClusterItem{{Status: models.ItemDraft, FunnelStage: models.FunnelTOFU, ContentType: models.ClusterGuide, Title: "Intro"}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"Visas"`)
	assert.Contains(t, lines[1], "quota_exhausted")
	assert.Contains(t, lines[2], "Intro")
}
