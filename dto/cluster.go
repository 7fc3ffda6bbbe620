package dto

import (
	"content-graph/cluster"
	"content-graph/generation"
	"content-graph/models"
)

type CreateClusterRequestDTO struct {
	ClusterTopic   string  `json:"clusterTopic" binding:"required" example:"Student visas"`
	TargetAudience string  `json:"targetAudience"`
	PrimaryKeyword string  `json:"primaryKeyword"`
	Language       string  `json:"language" example:"en"`
	TopicID        *string `json:"topicId,omitempty"`
}

func (r CreateClusterRequestDTO) ToRequest() cluster.CreateRequest {
	return cluster.CreateRequest{
		ClusterTopic:   r.ClusterTopic,
		TargetAudience: r.TargetAudience,
		PrimaryKeyword: r.PrimaryKeyword,
		Language:       r.Language,
		TopicID:        r.TopicID,
	}
}

// GenerateClusterRequestDTO 는 pending 클러스터의 생성을 다시 요청한다.
// 비어 있는 brief 필드는 저장된 클러스터 값으로 채워진다.
type GenerateClusterRequestDTO struct {
	ClusterID      string `json:"clusterId" binding:"required"`
	ClusterTopic   string `json:"clusterTopic"`
	TargetAudience string `json:"targetAudience"`
	PrimaryKeyword string `json:"primaryKeyword"`
	Language       string `json:"language"`
}

func (r GenerateClusterRequestDTO) Brief() generation.ClusterBrief {
	return generation.ClusterBrief{
		ClusterTopic:   r.ClusterTopic,
		TargetAudience: r.TargetAudience,
		PrimaryKeyword: r.PrimaryKeyword,
		Language:       r.Language,
	}
}

// UpdateClusterItemRequestDTO 는 보낸 필드만 갱신한다.
type UpdateClusterItemRequestDTO struct {
	Title             *string               `json:"title,omitempty"`
	Slug              *string               `json:"slug,omitempty"`
	Content           *string               `json:"content,omitempty"`
	SpeakableAnswer   *string               `json:"speakable_answer,omitempty"`
	MetaTitle         *string               `json:"meta_title,omitempty"`
	MetaDescription   *string               `json:"meta_description,omitempty"`
	FAQs              *[]models.ClusterFAQ  `json:"faqs,omitempty"`
	InternalLinks     *[]models.ClusterLink `json:"internal_links,omitempty"`
	ExternalCitations *[]models.ClusterLink `json:"external_citations,omitempty"`
	SortOrder         *int                  `json:"sort_order,omitempty"`
}

func (r UpdateClusterItemRequestDTO) ToUpdate() cluster.ItemUpdate {
	return cluster.ItemUpdate{
		Title:             r.Title,
		Slug:              r.Slug,
		Content:           r.Content,
		SpeakableAnswer:   r.SpeakableAnswer,
		MetaTitle:         r.MetaTitle,
		MetaDescription:   r.MetaDescription,
		FAQs:              r.FAQs,
		InternalLinks:     r.InternalLinks,
		ExternalCitations: r.ExternalCitations,
		SortOrder:         r.SortOrder,
	}
}

type PublishClusterRequestDTO struct {
	ContentType string `json:"content_type" binding:"required" example:"blog_post"`
}

type PublishClusterResponseDTO struct {
	Published int `json:"published"`
}
