package models

import "time"

type ScanStatus string

const (
	ScanPending   ScanStatus = "pending"
	ScanRunning   ScanStatus = "running"
	ScanCompleted ScanStatus = "completed"
	ScanFailed    ScanStatus = "failed"
)

func (s ScanStatus) Terminal() bool {
	return s == ScanCompleted || s == ScanFailed
}

type ScanMode string

const (
	ScanReportOnly ScanMode = "report_only"
	ScanAutoApply  ScanMode = "auto_apply"
)

func (m ScanMode) Valid() bool {
	return m == ScanReportOnly || m == ScanAutoApply
}

// ScanRun is one execution of the linking scan batch job.
// Collection: scan_runs
type ScanRun struct {
	ID               string        `bson:"_id" json:"id"`
	Status           ScanStatus    `bson:"status" json:"status"`
	Mode             ScanMode      `bson:"mode" json:"mode"`
	ContentTypes     []ContentKind `bson:"content_types" json:"content_types"`
	TopicFilter      *string       `bson:"topic_filter,omitempty" json:"topic_filter,omitempty"`
	MaxExternalLinks int           `bson:"max_external_links" json:"max_external_links"`
	TotalItems       int           `bson:"total_items" json:"total_items"`
	ProcessedItems   int           `bson:"processed_items" json:"processed_items"`
	ErrorMessage     string        `bson:"error_message,omitempty" json:"error_message,omitempty"`
	StartedAt        time.Time     `bson:"started_at" json:"started_at"`
	CompletedAt      *time.Time    `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// LinkSuggestion 은 내부 링크 제안 하나다.
type LinkSuggestion struct {
	ID         string      `bson:"id" json:"id"`
	Kind       ContentKind `bson:"kind,omitempty" json:"kind,omitempty"`
	Title      string      `bson:"title" json:"title"`
	Slug       string      `bson:"slug" json:"slug"`
	AnchorText string      `bson:"anchor_text" json:"anchor_text"`
	URL        string      `bson:"url" json:"url"`
}

// ExternalCitation 은 외부 인용 제안 하나다.
type ExternalCitation struct {
	SourceID   string `bson:"source_id" json:"source_id"`
	SourceName string `bson:"source_name" json:"source_name"`
	Domain     string `bson:"domain" json:"domain"`
	AnchorText string `bson:"anchor_text" json:"anchor_text"`
	URL        string `bson:"url" json:"url"`
}

// ScanItem is one content node's result within a ScanRun.
// Collection: scan_items
type ScanItem struct {
	ID                    string             `bson:"_id" json:"id"`
	ScanRunID             string             `bson:"scan_run_id" json:"scan_run_id"`
	ContentType           ContentKind        `bson:"content_type" json:"content_type"`
	ContentID             string             `bson:"content_id" json:"content_id"`
	ContentTitle          string             `bson:"content_title" json:"content_title"`
	PillarPageSuggestion  *LinkSuggestion    `bson:"pillar_page_suggestion,omitempty" json:"pillar_page_suggestion"`
	RelatedPostSuggestion *LinkSuggestion    `bson:"related_post_suggestion,omitempty" json:"related_post_suggestion"`
	FAQSuggestion         *LinkSuggestion    `bson:"faq_suggestion,omitempty" json:"faq_suggestion"`
	ExternalCitations     []ExternalCitation `bson:"external_citations" json:"external_citations"`
	InternalLinksAdded    int                `bson:"internal_links_added" json:"internal_links_added"`
	ExternalLinksAdded    int                `bson:"external_links_added" json:"external_links_added"`
	Warnings              []string           `bson:"warnings" json:"warnings"`
	Applied               bool               `bson:"applied" json:"applied"`
	AppliedAt             *time.Time         `bson:"applied_at,omitempty" json:"applied_at,omitempty"`
	CreatedAt             time.Time          `bson:"created_at" json:"created_at"`
}
