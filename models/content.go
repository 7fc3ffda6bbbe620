package models

import (
	"time"
)

// ContentKind 는 링크 그래프의 노드 종류다.
type ContentKind string

const (
	KindBlogPost ContentKind = "blog_post"
	KindFAQ      ContentKind = "faq"
	KindQAPage   ContentKind = "qa_page"
	KindTopic    ContentKind = "topic"
)

// AllContentKinds 는 저장소가 다루는 노드 종류 전체다 (컬렉션 순회 순서).
var AllContentKinds = []ContentKind{KindBlogPost, KindFAQ, KindQAPage, KindTopic}

// ScannableKinds 는 링크 스캔 대상이 될 수 있는 종류다.
var ScannableKinds = []ContentKind{KindBlogPost, KindFAQ, KindQAPage}

func (k ContentKind) Valid() bool {
	switch k {
	case KindBlogPost, KindFAQ, KindQAPage, KindTopic:
		return true
	}
	return false
}

// SupportsLinks reports whether the edge schema can reference this kind.
// qa_page has no link columns yet.
func (k ContentKind) SupportsLinks() bool {
	return k == KindBlogPost || k == KindFAQ || k == KindTopic
}

// Collection 은 종류별 Mongo 컬렉션 이름을 반환한다.
func (k ContentKind) Collection() string {
	switch k {
	case KindBlogPost:
		return "blog_posts"
	case KindFAQ:
		return "faqs"
	case KindQAPage:
		return "qa_pages"
	case KindTopic:
		return "topics"
	}
	return ""
}

// ContentNode represents a unit of published or draft content.
// Collections: blog_posts, faqs, qa_pages, topics
//
// Title holds the article title, the FAQ question or the topic name.
// Body holds the article content or the FAQ answer.
type ContentNode struct {
	ID              string      `bson:"_id" json:"id"`
	Kind            ContentKind `bson:"kind" json:"kind"`
	Title           string      `bson:"title" json:"title"`
	Slug            string      `bson:"slug" json:"slug"`
	Body            string      `bson:"body" json:"body"`
	TopicID         *string     `bson:"topic_id,omitempty" json:"topic_id,omitempty"`
	IsPublished     bool        `bson:"is_published" json:"is_published"`
	IsActive        bool        `bson:"is_active" json:"is_active"`
	MetaTitle       string      `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription string      `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	SpeakableAnswer string      `bson:"speakable_answer,omitempty" json:"speakable_answer,omitempty"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updated_at"`
}

// Live reports whether the node counts as published content.
// Topics use is_active instead of is_published.
func (n ContentNode) Live() bool {
	if n.Kind == KindTopic {
		return n.IsActive
	}
	return n.IsPublished
}

// InTopic reports whether the node belongs to the given topic.
// A node without topic never matches.
func (n ContentNode) InTopic(topicID *string) bool {
	if n.TopicID == nil || topicID == nil {
		return false
	}
	return *n.TopicID == *topicID
}

// ContentRef 는 (kind, id) 로 노드를 가리키는 경량 참조다.
type ContentRef struct {
	Kind ContentKind `bson:"kind" json:"kind"`
	ID   string      `bson:"id" json:"id"`
}

func (n ContentNode) Ref() ContentRef {
	return ContentRef{Kind: n.Kind, ID: n.ID}
}
