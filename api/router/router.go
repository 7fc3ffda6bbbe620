package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"content-graph/api/handlers"
	"content-graph/api/middleware"
	"content-graph/cluster"
	_ "content-graph/docs"
	"content-graph/linkgraph"
	"content-graph/scan"
)

// Services 는 라우터가 노출하는 도메인 서비스 묶음이다.
type Services struct {
	LinkHealth      *linkgraph.Service
	Scans           *scan.Orchestrator
	Clusters        *cluster.Pipeline
	DefaultMinLinks int

	// Ping 은 /health 에서 저장소 연결을 확인한다. nil 이면 항상 ok.
	Ping func(ctx context.Context) error

	AllowedOrigins []string
}

func New(s Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.CORS(s.AllowedOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if s.Ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := s.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/link-health", handlers.LinkHealthHandler(s.LinkHealth, s.DefaultMinLinks))

		api.POST("/scans", handlers.StartScanHandler(s.Scans))
		api.GET("/scans", handlers.ListScansHandler(s.Scans))
		api.GET("/scans/:id", handlers.GetScanHandler(s.Scans))
		api.GET("/scans/:id/items", handlers.ListScanItemsHandler(s.Scans))
		api.POST("/scans/:id/apply", handlers.ApplyScanItemsHandler(s.Scans))
		api.DELETE("/scans/:id", handlers.DeleteScanHandler(s.Scans))

		api.POST("/clusters", handlers.CreateClusterHandler(s.Clusters))
		api.POST("/clusters/generate", handlers.GenerateClusterHandler(s.Clusters))
		api.GET("/clusters", handlers.ListClustersHandler(s.Clusters))
		api.GET("/clusters/:id", handlers.GetClusterHandler(s.Clusters))
		api.GET("/clusters/:id/items", handlers.ListClusterItemsHandler(s.Clusters))
		api.POST("/clusters/:id/publish", handlers.PublishClusterHandler(s.Clusters))
		api.DELETE("/clusters/:id", handlers.DeleteClusterHandler(s.Clusters))

		api.POST("/cluster-items/:id/approve", handlers.ApproveClusterItemHandler(s.Clusters))
		api.POST("/cluster-items/:id/discard", handlers.DiscardClusterItemHandler(s.Clusters))
		api.PATCH("/cluster-items/:id", handlers.UpdateClusterItemHandler(s.Clusters))
	}

	return r
}
