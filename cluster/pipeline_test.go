package cluster

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-graph/generation"
	"content-graph/models"
	"content-graph/repositories"
	"content-graph/repositories/memory"
)

type fakeGenerator struct {
	drafts []generation.Draft
	err    error
	calls  int
}

func (g *fakeGenerator) GenerateClusterDrafts(_ context.Context, _ string, _ generation.ClusterBrief) ([]generation.Draft, error) {
	g.calls++
	return g.drafts, g.err
}

// syncDispatcher 는 같은 고루틴에서 생성을 실행한다.
type syncDispatcher struct{ p *Pipeline }

func (d syncDispatcher) DispatchGeneration(ctx context.Context, id string, b generation.ClusterBrief) error {
	_ = d.p.Generate(ctx, id, b)
	return nil
}

type fixture struct {
	clusters *memory.Clusters
	items    *memory.ClusterItems
	contents *memory.Contents
	gen      *fakeGenerator
	p        *Pipeline
}

func newFixture(gen *fakeGenerator) *fixture {
	f := &fixture{
		clusters: memory.NewClusters(),
		items:    memory.NewClusterItems(),
		contents: memory.NewContents(),
		gen:      gen,
	}
	f.p = NewPipeline(Stores{Clusters: f.clusters, Items: f.items, Contents: f.contents}, gen)
	f.p.SetDispatcher(syncDispatcher{p: f.p})
	return f
}

func sixDrafts() []generation.Draft {
	var out []generation.Draft
	for i, stage := range []string{"tofu", "TOFU", "MOFU", "MOFU", "BOFU", "BOFU"} {
		out = append(out, generation.Draft{
			FunnelStage: stage,
			Title:       fmt.Sprintf("Article %d", i),
			Content:     "body",
			MetaTitle:   "meta",
		})
	}
	return out
}

func topic() *string { t := "topic-1"; return &t }

func TestCreateGeneratesDraftsForReview(t *testing.T) {
	f := newFixture(&fakeGenerator{drafts: sixDrafts()})

	c, err := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep", TopicID: topic()})
	require.NoError(t, err)

	got, err := f.p.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClusterReview, got.Status)
	assert.Equal(t, "en", got.Language)

	items, err := f.p.Items(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, items, 6)
	for i, it := range items {
		assert.Equal(t, models.ItemDraft, it.Status)
		assert.Equal(t, i, it.SortOrder)
	}
	assert.Equal(t, models.FunnelTOFU, items[0].FunnelStage)
	assert.Equal(t, models.ClusterExplainer, items[0].ContentType)
	assert.Equal(t, models.ClusterComparison, items[2].ContentType)
	assert.Equal(t, models.ClusterDecision, items[5].ContentType)
	assert.Equal(t, "article-0", items[0].Slug)
}

func TestDraftContentTypeIsNormalised(t *testing.T) {
	drafts := sixDrafts()
	drafts[0].ContentType = " Guide "
	f := newFixture(&fakeGenerator{drafts: drafts})

	c, err := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})
	require.NoError(t, err)
	items, err := f.p.Items(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, models.ClusterGuide, items[0].ContentType)
}

func TestInvalidDraftValuesFailGeneration(t *testing.T) {
	cases := map[string]func(d *generation.Draft){
		"stage":        func(d *generation.Draft) { d.FunnelStage = "awareness" },
		"content type": func(d *generation.Draft) { d.ContentType = "blog_post" },
		"title":        func(d *generation.Draft) { d.Title = "  " },
	}
	for name, mutate := range cases {
		drafts := sixDrafts()
		mutate(&drafts[3])
		f := newFixture(&fakeGenerator{drafts: drafts})

		c, err := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})
		require.NoError(t, err, name)

		got, _ := f.p.Get(context.Background(), c.ID)
		assert.Equal(t, models.ClusterFailed, got.Status, name)
		assert.Contains(t, got.ErrorMessage, "malformed_output", name)
		assert.Contains(t, got.ErrorMessage, "draft 3", name)
		items, _ := f.items.ListByCluster(context.Background(), c.ID)
		assert.Empty(t, items, name)
	}
}

func TestDraftsToItemsReportsMalformedKind(t *testing.T) {
	_, err := draftsToItems("c1", []generation.Draft{{FunnelStage: "AWARENESS", Title: "X"}})
	require.Error(t, err)
	assert.Equal(t, generation.KindMalformedOutput, generation.KindOf(err))
}

func TestGenerationQuotaFailureLeavesNoItems(t *testing.T) {
	f := newFixture(&fakeGenerator{err: &generation.Error{Kind: generation.KindQuotaExhausted, Message: "daily generation quota exhausted"}})

	c, err := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})
	require.NoError(t, err)

	got, _ := f.p.Get(context.Background(), c.ID)
	assert.Equal(t, models.ClusterFailed, got.Status)
	assert.Contains(t, got.ErrorMessage, "quota_exhausted")
	items, _ := f.items.ListByCluster(context.Background(), c.ID)
	assert.Empty(t, items)
}

func TestGenerateRefusesNonPendingCluster(t *testing.T) {
	f := newFixture(&fakeGenerator{drafts: sixDrafts()})
	c, err := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})
	require.NoError(t, err)

	err = f.p.Generate(context.Background(), c.ID, generation.ClusterBrief{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 1, f.gen.calls)

	err = f.p.Trigger(context.Background(), c.ID, generation.ClusterBrief{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCreateRequiresTopic(t *testing.T) {
	f := newFixture(&fakeGenerator{})
	_, err := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "  "})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestReviewTransitions(t *testing.T) {
	f := newFixture(&fakeGenerator{drafts: sixDrafts()})
	c, _ := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})
	items, _ := f.p.Items(context.Background(), c.ID)

	it, err := f.p.Approve(context.Background(), items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemApproved, it.Status)

	_, err = f.p.Discard(context.Background(), items[0].ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	it, err = f.p.Discard(context.Background(), items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemDiscarded, it.Status)

	_, err = f.p.Approve(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateItemKeepsStatus(t *testing.T) {
	f := newFixture(&fakeGenerator{drafts: sixDrafts()})
	c, _ := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})
	items, _ := f.p.Items(context.Background(), c.ID)
	_, err := f.p.Approve(context.Background(), items[0].ID)
	require.NoError(t, err)

	title := "Better title"
	faqs := []models.ClusterFAQ{{Question: "q", Answer: "a"}}
	it, err := f.p.UpdateItem(context.Background(), items[0].ID, ItemUpdate{Title: &title, FAQs: &faqs})
	require.NoError(t, err)
	assert.Equal(t, "Better title", it.Title)
	assert.Equal(t, faqs, it.FAQs)
	assert.Equal(t, models.ItemApproved, it.Status)

	_, err = f.p.UpdateItem(context.Background(), items[0].ID, ItemUpdate{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestPublishApprovedItems(t *testing.T) {
	f := newFixture(&fakeGenerator{drafts: sixDrafts()})
	c, _ := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep", TopicID: topic()})
	items, _ := f.p.Items(context.Background(), c.ID)
	for _, it := range items[:2] {
		_, err := f.p.Approve(context.Background(), it.ID)
		require.NoError(t, err)
	}

	n, err := f.p.Publish(context.Background(), c.ID, "blog")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, f.contents.Count(models.KindBlogPost))

	nodes, _ := f.contents.List(context.Background(), models.KindBlogPost, repositories.ContentFilter{})
	for _, node := range nodes {
		assert.False(t, node.IsPublished)
		require.NotNil(t, node.TopicID)
		assert.Equal(t, "topic-1", *node.TopicID)
	}

	after, _ := f.p.Items(context.Background(), c.ID)
	for _, it := range after[:2] {
		assert.Equal(t, models.ItemPublished, it.Status)
		assert.Equal(t, models.KindBlogPost, it.PublishedContentType)
		assert.NotEmpty(t, it.PublishedContentID)
	}
	for _, it := range after[2:] {
		assert.Equal(t, models.ItemDraft, it.Status)
	}

	got, _ := f.p.Get(context.Background(), c.ID)
	assert.Equal(t, models.ClusterCompleted, got.Status)

	// 두 번째 게시는 새 노드를 만들지 않는다
	_, err = f.p.Publish(context.Background(), c.ID, "blog_post")
	assert.ErrorIs(t, err, ErrNoApprovedItems)
	assert.Equal(t, 2, f.contents.Count(models.KindBlogPost))

	// 완료 후 추가 승인분은 게시할 수 있다
	_, err = f.p.Approve(context.Background(), after[2].ID)
	require.NoError(t, err)
	n, err = f.p.Publish(context.Background(), c.ID, "qa_page")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, f.contents.Count(models.KindQAPage))
}

func TestPublishWithoutApprovalsFails(t *testing.T) {
	f := newFixture(&fakeGenerator{drafts: sixDrafts()})
	c, _ := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})

	_, err := f.p.Publish(context.Background(), c.ID, "blog")
	assert.ErrorIs(t, err, ErrNoApprovedItems)
	got, _ := f.p.Get(context.Background(), c.ID)
	assert.Equal(t, models.ClusterReview, got.Status)

	_, err = f.p.Publish(context.Background(), c.ID, "faq")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestPublishInsertFailureStops(t *testing.T) {
	f := newFixture(&fakeGenerator{drafts: sixDrafts()})
	c, _ := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})
	items, _ := f.p.Items(context.Background(), c.ID)
	_, _ = f.p.Approve(context.Background(), items[0].ID)
	f.contents.FailOn = func(op string, _ models.ContentKind, _ string) error {
		if op == "insert" {
			return errors.New("disk full")
		}
		return nil
	}

	_, err := f.p.Publish(context.Background(), c.ID, "blog")
	require.Error(t, err)
	it, _ := f.items.Get(context.Background(), items[0].ID)
	assert.Equal(t, models.ItemApproved, it.Status)
}

// lostRaceItems 는 MarkPublished 가 항상 경합에서 진 것처럼 동작한다.
type lostRaceItems struct{ *memory.ClusterItems }

func (lostRaceItems) MarkPublished(context.Context, string, models.ContentKind, string) (bool, error) {
	return false, nil
}

func TestPublishCompensatesLostRace(t *testing.T) {
	f := newFixture(&fakeGenerator{drafts: sixDrafts()})
	c, _ := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})
	items, _ := f.p.Items(context.Background(), c.ID)
	_, _ = f.p.Approve(context.Background(), items[0].ID)

	p := NewPipeline(Stores{Clusters: f.clusters, Items: lostRaceItems{f.items}, Contents: f.contents}, f.gen)
	n, err := p.Publish(context.Background(), c.ID, "blog")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, f.contents.Count(models.KindBlogPost))
}

func TestDeleteCascades(t *testing.T) {
	f := newFixture(&fakeGenerator{drafts: sixDrafts()})
	c, _ := f.p.Create(context.Background(), CreateRequest{ClusterTopic: "Sleep"})

	require.NoError(t, f.p.Delete(context.Background(), c.ID))
	_, err := f.p.Get(context.Background(), c.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	items, _ := f.items.ListByCluster(context.Background(), c.ID)
	assert.Empty(t, items)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "what-is-sleep-apnea", Slugify("What is Sleep Apnea?"))
	assert.Equal(t, "a-b", Slugify("  A -- B  "))
	assert.Equal(t, "", Slugify("!!"))
}
