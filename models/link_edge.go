package models

import "time"

// LinkEdge is a directed reference between two content nodes.
// Collection: content_links
//
// Inactive edges are kept for audit and excluded from every metric.
type LinkEdge struct {
	ID         string      `bson:"_id" json:"id"`
	SourceKind ContentKind `bson:"source_kind" json:"source_kind"`
	SourceID   string      `bson:"source_id" json:"source_id"`
	TargetKind ContentKind `bson:"target_kind" json:"target_kind"`
	TargetID   string      `bson:"target_id" json:"target_id"`
	LinkText   string      `bson:"link_text,omitempty" json:"link_text,omitempty"`
	SortOrder  int         `bson:"sort_order" json:"sort_order"`
	IsActive   bool        `bson:"is_active" json:"is_active"`
	CreatedAt  time.Time   `bson:"created_at" json:"created_at"`
}

func (e LinkEdge) Source() ContentRef { return ContentRef{Kind: e.SourceKind, ID: e.SourceID} }
func (e LinkEdge) Target() ContentRef { return ContentRef{Kind: e.TargetKind, ID: e.TargetID} }
