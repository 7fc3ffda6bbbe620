package dto

import (
	"content-graph/models"
	"content-graph/scan"
)

// StartScanRequestDTO 는 스캔 시작 요청이다.
// max_external_links 를 생략하면 서버 설정의 기본값을 쓴다.
type StartScanRequestDTO struct {
	Mode             string   `json:"mode" example:"report_only"`
	ContentTypes     []string `json:"content_types" example:"blog_post,faq"`
	TopicFilter      *string  `json:"topic_filter,omitempty"`
	MaxExternalLinks *int     `json:"max_external_links,omitempty" example:"2" minimum:"1" maximum:"3"`
}

func (r StartScanRequestDTO) ToRequest() scan.Request {
	kinds := make([]models.ContentKind, 0, len(r.ContentTypes))
	for _, t := range r.ContentTypes {
		kinds = append(kinds, models.ContentKind(t))
	}
	return scan.Request{
		Mode:             models.ScanMode(r.Mode),
		ContentTypes:     kinds,
		TopicFilter:      r.TopicFilter,
		MaxExternalLinks: r.MaxExternalLinks,
	}
}

type StartScanResponseDTO struct {
	ScanRunID string `json:"scan_run_id"`
}

// ApplyScanItemsRequestDTO 의 item_ids 가 비어 있으면 run 의 모든 미적용 항목을 적용한다.
type ApplyScanItemsRequestDTO struct {
	ItemIDs []string `json:"item_ids"`
}

type ApplyScanItemsResponseDTO struct {
	Applied int `json:"applied"`
}
