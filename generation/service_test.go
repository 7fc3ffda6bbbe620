package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"content-graph/config"
	"content-graph/repositories/memory"
)

type fakeModel struct {
	text  string
	err   error
	calls int
}

func (m *fakeModel) Complete(_ context.Context, _, _ string) (*Completion, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &Completion{Text: m.text, ModelName: "fake", InputTokens: 3, OutputTokens: 5, TotalTokens: 8}, nil
}

func TestGenerateClusterDraftsParsesFencedOutput(t *testing.T) {
	model := &fakeModel{text: "```json\n[{\"funnel_stage\":\"TOFU\",\"content_type\":\"guide\",\"title\":\"What is X\",\"slug\":\"what-is-x\",\"faqs\":[{\"question\":\"q\",\"answer\":\"a\"}]}]\n```"}
	logs := &memory.AILogs{}
	svc := NewService(model, nil, logs)

	drafts, err := svc.GenerateClusterDrafts(context.Background(), "c1", ClusterBrief{ClusterTopic: "X"})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "what-is-x", drafts[0].Slug)
	assert.Equal(t, "q", drafts[0].FAQs[0].Question)

	require.Len(t, logs.Logs, 1)
	assert.Equal(t, PurposeClusterDrafts, logs.Logs[0].Purpose)
	assert.Equal(t, "c1", logs.Logs[0].ReferenceID)
	assert.Equal(t, int64(8), logs.Logs[0].TotalTokens)
	assert.Nil(t, logs.Logs[0].ErrorMessage)
}

func TestGenerateClusterDraftsAcceptsSingleObject(t *testing.T) {
	model := &fakeModel{text: `{"funnel_stage":"TOFU","content_type":"guide","title":"One","content":"body","faqs":[{"question":"q","answer":"a"}]}`}
	svc := NewService(model, nil, &memory.AILogs{})

	drafts, err := svc.GenerateClusterDrafts(context.Background(), "c1", ClusterBrief{ClusterTopic: "X"})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "One", drafts[0].Title)
	assert.Equal(t, "body", drafts[0].Content)
	assert.Equal(t, "guide", drafts[0].ContentType)
	require.Len(t, drafts[0].FAQs, 1)
}

func TestGenerateClassifiesUpstreamError(t *testing.T) {
	model := &fakeModel{err: &genai.APIError{Code: 429}}
	logs := &memory.AILogs{}
	svc := NewService(model, nil, logs)

	_, err := svc.GenerateClusterDrafts(context.Background(), "c1", ClusterBrief{})
	require.Error(t, err)
	assert.Equal(t, KindRateLimited, KindOf(err))
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, string(KindRateLimited), logs.Logs[0].ErrorKind)
}

func TestGenerateQuotaExhaustedSkipsModel(t *testing.T) {
	model := &fakeModel{text: "[]"}
	limiter := NewQuotaLimiter(config.QuotaConfig{RequestsPerDay: 1})
	svc := NewService(model, limiter, nil)

	_, err := svc.GenerateClusterDrafts(context.Background(), "c1", ClusterBrief{})
	assert.Equal(t, KindMalformedOutput, KindOf(err), "empty array is malformed")

	_, err = svc.GenerateClusterDrafts(context.Background(), "c2", ClusterBrief{})
	assert.Equal(t, KindQuotaExhausted, KindOf(err))
	assert.Equal(t, 1, model.calls)
}

func TestClusterPromptsIncludeBrief(t *testing.T) {
	system, user := ClusterPrompts(ClusterBrief{ClusterTopic: "Solar", TargetAudience: "homeowners", PrimaryKeyword: "solar panels"})
	assert.Contains(t, system, "JSON array")
	assert.Contains(t, system, `"comparison"`)
	assert.NotContains(t, system, "blog_post")
	assert.Contains(t, user, "Cluster topic: Solar")
	assert.Contains(t, user, "Language: en")
}

func TestUnavailableModelFailsEveryCall(t *testing.T) {
	svc := NewService(NewUnavailableModel(assert.AnError), nil, nil)

	_, err := svc.GenerateClusterDrafts(context.Background(), "c1", ClusterBrief{ClusterTopic: "X"})
	require.Error(t, err)
	assert.Equal(t, KindUpstreamUnavailable, KindOf(err))
	assert.ErrorIs(t, err, assert.AnError)
}
