package generation

import (
	"context"
	"fmt"
	"strings"

	"content-graph/models"
)

const PurposeClusterDrafts = "cluster_drafts"

// ClusterBrief 는 클러스터 생성 요청 입력이다.
type ClusterBrief struct {
	ClusterTopic   string
	TargetAudience string
	PrimaryKeyword string
	Language       string
}

// Draft is one generated cluster article as returned by the model.
type Draft struct {
	FunnelStage       string              `json:"funnel_stage"`
	ContentType       string              `json:"content_type"`
	Title             string              `json:"title"`
	Slug              string              `json:"slug"`
	Content           string              `json:"content"`
	SpeakableAnswer   string              `json:"speakable_answer"`
	MetaTitle         string              `json:"meta_title"`
	MetaDescription   string              `json:"meta_description"`
	FAQs              []models.ClusterFAQ `json:"faqs"`
	InternalLinks     []DraftLink         `json:"internal_links"`
	ExternalCitations []DraftLink         `json:"external_citations"`
}

type DraftLink struct {
	AnchorText string `json:"anchor_text"`
	URL        string `json:"url"`
	Source     string `json:"source,omitempty"`
}

var CLUSTER_SYSTEM_INSTRUCTION = fmt.Sprintf(`
You are a content strategist writing a topic cluster for a website.
Given a cluster topic, a target audience, a primary keyword and a language,
produce 6 articles covering the buyer journey: 2 TOFU, 2 MOFU and 2 BOFU.

The response MUST be a JSON array. Each element is an object with keys:
  funnel_stage: one of "TOFU", "MOFU", "BOFU"
  content_type: one of %q, %q, %q, %q
  title, slug (lowercase, hyphen separated), content (markdown),
  speakable_answer (one or two sentences suitable for voice assistants),
  meta_title (at most 60 characters), meta_description (at most 160 characters),
  faqs: array of {question, answer}
  internal_links: array of {anchor_text, url}
  external_citations: array of {anchor_text, url, source}

Additional constraints:
- Write every text field in the requested language.
- You MUST NOT wrap the JSON output in a markdown code block.
- The response should contain ONLY the raw JSON array.
`,
	models.ClusterGuide, models.ClusterExplainer, models.ClusterComparison, models.ClusterDecision)

// ClusterPrompts builds the system and user prompts for a cluster brief.
func ClusterPrompts(b ClusterBrief) (string, string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cluster topic: %s\n", b.ClusterTopic)
	fmt.Fprintf(&sb, "Target audience: %s\n", b.TargetAudience)
	fmt.Fprintf(&sb, "Primary keyword: %s\n", b.PrimaryKeyword)
	lang := b.Language
	if lang == "" {
		lang = "en"
	}
	fmt.Fprintf(&sb, "Language: %s\n", lang)
	return CLUSTER_SYSTEM_INSTRUCTION, sb.String()
}

// GenerateClusterDrafts asks the model for the cluster's drafts and parses
// them with the repair chain. A single object is one draft; an empty array is
// malformed output.
func (s *Service) GenerateClusterDrafts(ctx context.Context, clusterID string, b ClusterBrief) ([]Draft, error) {
	system, user := ClusterPrompts(b)
	text, err := s.Generate(ctx, PurposeClusterDrafts, clusterID, system, user)
	if err != nil {
		return nil, err
	}

	drafts, err := DecodeItems[Draft](text)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, &Error{Kind: KindMalformedOutput, Message: "model returned no drafts"}
	}
	return drafts, nil
}
