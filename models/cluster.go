package models

import (
	"strings"
	"time"
)

type ClusterStatus string

const (
	ClusterPending    ClusterStatus = "pending"
	ClusterGenerating ClusterStatus = "generating"
	ClusterReview     ClusterStatus = "review"
	ClusterCompleted  ClusterStatus = "completed"
	ClusterFailed     ClusterStatus = "failed"
)

// Cluster is a themed generation request.
// Collection: clusters
type Cluster struct {
	ID             string        `bson:"_id" json:"id"`
	ClusterTopic   string        `bson:"cluster_topic" json:"cluster_topic"`
	TargetAudience string        `bson:"target_audience" json:"target_audience"`
	PrimaryKeyword string        `bson:"primary_keyword" json:"primary_keyword"`
	Language       string        `bson:"language" json:"language"`
	TopicID        *string       `bson:"topic_id,omitempty" json:"topic_id,omitempty"`
	Status         ClusterStatus `bson:"status" json:"status"`
	ErrorMessage   string        `bson:"error_message,omitempty" json:"error_message,omitempty"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at"`
}

type FunnelStage string

const (
	FunnelTOFU FunnelStage = "TOFU"
	FunnelMOFU FunnelStage = "MOFU"
	FunnelBOFU FunnelStage = "BOFU"
)

// ParseFunnelStage 는 대소문자와 공백을 무시하고 TOFU/MOFU/BOFU 만 받는다.
func ParseFunnelStage(s string) (FunnelStage, bool) {
	switch st := FunnelStage(strings.ToUpper(strings.TrimSpace(s))); st {
	case FunnelTOFU, FunnelMOFU, FunnelBOFU:
		return st, true
	}
	return "", false
}

// ClusterContentType is the editorial format of a cluster draft. It is not a
// ContentKind: the kind is chosen only when the item is published.
type ClusterContentType string

const (
	ClusterGuide      ClusterContentType = "guide"
	ClusterExplainer  ClusterContentType = "explainer"
	ClusterComparison ClusterContentType = "comparison"
	ClusterDecision   ClusterContentType = "decision"
)

var ClusterContentTypes = []ClusterContentType{ClusterGuide, ClusterExplainer, ClusterComparison, ClusterDecision}

// ParseClusterContentType 는 대소문자와 공백을 무시한다.
func ParseClusterContentType(s string) (ClusterContentType, bool) {
	ct := ClusterContentType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ClusterContentTypes {
		if ct == known {
			return ct, true
		}
	}
	return "", false
}

// DefaultContentType 은 형식이 빠진 초안에 단계별로 붙이는 형식이다.
func (f FunnelStage) DefaultContentType() ClusterContentType {
	switch f {
	case FunnelMOFU:
		return ClusterComparison
	case FunnelBOFU:
		return ClusterDecision
	}
	return ClusterExplainer
}

type ClusterItemStatus string

const (
	ItemDraft     ClusterItemStatus = "draft"
	ItemApproved  ClusterItemStatus = "approved"
	ItemDiscarded ClusterItemStatus = "discarded"
	ItemPublished ClusterItemStatus = "published"
)

// ClusterFAQ 는 초안에 딸린 FAQ 한 쌍이다.
type ClusterFAQ struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

// ClusterLink 는 생성 모델이 제안한 링크다. 파이프라인은 그대로 전달만 한다.
type ClusterLink struct {
	AnchorText string `bson:"anchor_text" json:"anchor_text"`
	URL        string `bson:"url" json:"url"`
	Source     string `bson:"source,omitempty" json:"source,omitempty"`
}

// ClusterItem is one generated draft belonging to a Cluster.
// Collection: cluster_items
type ClusterItem struct {
	ID                   string             `bson:"_id" json:"id"`
	ClusterID            string             `bson:"cluster_id" json:"cluster_id"`
	FunnelStage          FunnelStage        `bson:"funnel_stage" json:"funnel_stage"`
	ContentType          ClusterContentType `bson:"content_type" json:"content_type"`
	Title                string             `bson:"title" json:"title"`
	Slug                 string             `bson:"slug" json:"slug"`
	Content              string             `bson:"content" json:"content"`
	SpeakableAnswer      string             `bson:"speakable_answer" json:"speakable_answer"`
	MetaTitle            string             `bson:"meta_title" json:"meta_title"`
	MetaDescription      string             `bson:"meta_description" json:"meta_description"`
	FAQs                 []ClusterFAQ       `bson:"faqs" json:"faqs"`
	InternalLinks        []ClusterLink      `bson:"internal_links" json:"internal_links"`
	ExternalCitations    []ClusterLink      `bson:"external_citations" json:"external_citations"`
	Status               ClusterItemStatus  `bson:"status" json:"status"`
	PublishedContentType ContentKind        `bson:"published_content_type,omitempty" json:"published_content_type,omitempty"`
	PublishedContentID   string             `bson:"published_content_id,omitempty" json:"published_content_id,omitempty"`
	SortOrder            int                `bson:"sort_order" json:"sort_order"`
	CreatedAt            time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updated_at"`
}
