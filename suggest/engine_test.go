package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-graph/models"
)

func strPtr(s string) *string { return &s }

func node(kind models.ContentKind, id, topic string, published bool) models.ContentNode {
	n := models.ContentNode{ID: id, Kind: kind, Title: "T " + id, Slug: "s-" + id, IsPublished: published}
	if topic != "" {
		n.TopicID = strPtr(topic)
	}
	return n
}

func TestSuggestReportOnlyLonelyBlogPost(t *testing.T) {
	post := node(models.KindBlogPost, "p1", "t1", true)
	others := []models.ContentNode{
		post,
		node(models.KindBlogPost, "p2", "t2", true),
		node(models.KindFAQ, "f1", "t2", true),
	}

	got := Suggest(post, others, nil, nil, 2)

	require.NotNil(t, got.PillarPage)
	assert.Equal(t, "/programs", got.PillarPage.URL)
	assert.Nil(t, got.RelatedPost)
	assert.Nil(t, got.FAQ)
	assert.Equal(t, []string{WarnNoRelatedPost, WarnNoRelatedFAQ}, got.Warnings)
	assert.Equal(t, 1, got.InternalLinksAdded)
	assert.Equal(t, 0, got.ExternalLinksAdded)
	assert.Empty(t, got.ExternalCitations)
}

func TestSuggestPicksFirstPublishedSameTopicMatch(t *testing.T) {
	post := node(models.KindBlogPost, "p1", "t1", true)
	all := []models.ContentNode{
		post,
		node(models.KindBlogPost, "draft", "t1", false),
		node(models.KindBlogPost, "p2", "t1", true),
		node(models.KindBlogPost, "p3", "t1", true),
		node(models.KindFAQ, "f1", "t1", true),
	}

	got := Suggest(post, all, nil, nil, 0)

	require.NotNil(t, got.RelatedPost)
	assert.Equal(t, "p2", got.RelatedPost.ID)
	assert.Equal(t, "/blog/s-p2", got.RelatedPost.URL)
	require.NotNil(t, got.FAQ)
	assert.Equal(t, "f1", got.FAQ.ID)
	assert.Equal(t, "/faqs#s-f1", got.FAQ.URL)
	assert.Empty(t, got.Warnings)
	assert.Equal(t, 3, got.InternalLinksAdded)
	assert.Len(t, got.ContentTargets(), 2)
}

func TestSuggestFAQUsesSiblingFAQAndCrossKindPost(t *testing.T) {
	faq := node(models.KindFAQ, "f1", "t1", true)
	all := []models.ContentNode{
		faq,
		node(models.KindFAQ, "f2", "t1", true),
		node(models.KindBlogPost, "p1", "t1", true),
	}

	got := Suggest(faq, all, nil, nil, 2)

	require.NotNil(t, got.PillarPage)
	assert.NotEqual(t, PillarFAQs.ID, got.PillarPage.ID)
	require.NotNil(t, got.FAQ)
	assert.Equal(t, "f2", got.FAQ.ID)
	require.NotNil(t, got.RelatedPost)
	assert.Equal(t, "p1", got.RelatedPost.ID)
}

func TestSuggestNodeWithoutTopicGetsNoRelated(t *testing.T) {
	post := node(models.KindBlogPost, "p1", "", true)
	all := []models.ContentNode{post, node(models.KindBlogPost, "p2", "", true)}

	got := Suggest(post, all, nil, nil, 2)
	assert.Nil(t, got.RelatedPost)
	assert.Len(t, got.Warnings, 2)
}

func TestPillarNeverPointsAtOwnSection(t *testing.T) {
	for _, kind := range models.ScannableKinds {
		p, ok := PillarFor(kind)
		require.True(t, ok, kind)
		assert.NotEqual(t, kind, p.Section, kind)
	}
	_, ok := PillarFor(models.KindTopic)
	assert.False(t, ok)
}

func TestPillarIsFirstPreference(t *testing.T) {
	for _, kind := range models.ScannableKinds {
		p, _ := PillarFor(kind)
		assert.Equal(t, pillarPreference[kind][0], p, kind)
	}
	p, _ := PillarFor(models.KindFAQ)
	assert.Equal(t, PillarAbout, p)
}

func sources() []models.AuthoritySource {
	return []models.AuthoritySource{
		{ID: "s1", Name: "Sec One", Domain: "s1.org", TrustTier: models.TierSecondary, IsActive: true},
		{ID: "p1", Name: "Prim One", Domain: "p1.gov", TrustTier: models.TierPrimary, IsActive: true},
		{ID: "p-off", Name: "Prim Off", Domain: "off.gov", TrustTier: models.TierPrimary, IsActive: false},
		{ID: "s2", Name: "Sec Two", Domain: "s2.org", URL: "https://s2.org/ref", TrustTier: models.TierSecondary, IsActive: true},
		{ID: "p2", Name: "Prim Two", Domain: "p2.gov", TrustTier: models.TierPrimary, IsActive: true},
		{ID: "p3", Name: "Prim Three", Domain: "p3.gov", TrustTier: models.TierPrimary, IsActive: true},
	}
}

func ids(cs []models.ExternalCitation) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.SourceID)
	}
	return out
}

func TestSelectCitationsTwoTierFill(t *testing.T) {
	cases := []struct {
		max  int
		want []string
	}{
		{0, []string{}},
		{1, []string{"p1"}},
		{2, []string{"p1", "p2"}},
		{3, []string{"p1", "p2", "s1"}},
	}
	for _, tc := range cases {
		got := SelectCitations(sources(), tc.max)
		assert.Equal(t, tc.want, ids(got), "max=%d", tc.max)
		assert.LessOrEqual(t, len(got), tc.max)
	}
}

func TestSelectCitationsFillsFromSecondaryWhenPrimaryShort(t *testing.T) {
	src := []models.AuthoritySource{
		{ID: "p1", Name: "P", Domain: "p.gov", TrustTier: models.TierPrimary, IsActive: true},
		{ID: "s2", Name: "S", Domain: "s.org", URL: "https://s.org/ref", TrustTier: models.TierSecondary, IsActive: true},
	}
	got := SelectCitations(src, 3)
	require.Len(t, got, 2)
	assert.Equal(t, "https://p.gov", got[0].URL)
	assert.Equal(t, "https://s.org/ref", got[1].URL)
}

func TestSelectCitationsNeverSkipsPrimaryForSecondary(t *testing.T) {
	// Primary 가 max 이하로 존재하면 모두 선택되어야 한다.
	src := sources()[:2]
	for max := 1; max <= MaxExternalLinks; max++ {
		got := SelectCitations(src, max)
		assert.Equal(t, "p1", got[0].SourceID, "max=%d", max)
	}
}

func TestSuggestIsDeterministic(t *testing.T) {
	post := node(models.KindQAPage, "q1", "t1", true)
	all := []models.ContentNode{
		post,
		node(models.KindBlogPost, "p1", "t1", true),
		node(models.KindFAQ, "f1", "t1", true),
	}
	a := Suggest(post, all, nil, sources(), 2)
	b := Suggest(post, all, nil, sources(), 2)
	assert.Equal(t, a, b)
	assert.Equal(t, 3, a.InternalLinksAdded)
	assert.Equal(t, 2, a.ExternalLinksAdded)
}
