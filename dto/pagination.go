package dto

import (
	"content-graph/linkgraph"
	"content-graph/models"
)

// swagger 가 제네릭을 다루지 못하므로 목록 응답은 타입마다 정의한다.

// ScanRunListDTO is the list response for scan runs (most recent first).
type ScanRunListDTO struct {
	Data  []models.ScanRun `json:"data"`
	Total int              `json:"total"`
}

type ScanItemListDTO struct {
	Data  []models.ScanItem `json:"data"`
	Total int               `json:"total"`
}

type ClusterListDTO struct {
	Data  []models.Cluster `json:"data"`
	Total int              `json:"total"`
}

type ClusterItemListDTO struct {
	Data  []models.ClusterItem `json:"data"`
	Total int                  `json:"total"`
}

// LinkHealthDTO 는 링크 건강도 분석 결과다.
type LinkHealthDTO = linkgraph.Result
