// Package app wires repositories, generation and the domain services from config.
package app

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"content-graph/cluster"
	"content-graph/config"
	"content-graph/generation"
	"content-graph/linkgraph"
	"content-graph/repositories"
	"content-graph/scan"
)

type App struct {
	LinkHealth *linkgraph.Service
	Scans      *scan.Orchestrator
	Clusters   *cluster.Pipeline
	Generation *generation.Service
}

// New 는 Mongo 저장소 위에 서비스들을 만든다. 디스패처는 호출자가 설정한다.
// Gemini 클라이언트를 만들 수 없으면 생성 호출만 upstream_unavailable 로 실패한다.
func New(ctx context.Context, cfg config.AppConfig, database *mongo.Database) *App {
	contents := repositories.NewContentRepository(database)
	edges := repositories.NewLinkEdgeRepository(database)

	var model generation.Model
	gm, err := generation.NewGeminiModel(ctx, cfg.Generation)
	if err != nil {
		config.Logger.Warnf("generation model unavailable: %v", err)
		model = generation.NewUnavailableModel(err)
	} else {
		model = gm
	}
	gen := generation.NewService(
		model,
		generation.NewQuotaLimiter(cfg.Generation.Quota),
		repositories.NewAILogRepository(database),
	)

	scans := scan.NewOrchestrator(scan.Stores{
		Contents:    contents,
		Edges:       edges,
		Authorities: repositories.NewAuthoritySourceRepository(database),
		Runs:        repositories.NewScanRunRepository(database),
		Items:       repositories.NewScanItemRepository(database),
	}, scan.Options{
		Exclusive:               cfg.Scan.Exclusive,
		DefaultMaxExternalLinks: cfg.Scan.DefaultMaxExternalLinks,
		StaleAfter:              cfg.Scan.StaleAfter,
	})

	clusters := cluster.NewPipeline(cluster.Stores{
		Clusters: repositories.NewClusterRepository(database),
		Items:    repositories.NewClusterItemRepository(database),
		Contents: contents,
	}, gen)

	return &App{
		LinkHealth: linkgraph.NewService(contents, edges),
		Scans:      scans,
		Clusters:   clusters,
		Generation: gen,
	}
}
