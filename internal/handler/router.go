package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/anyulbade/card-rewards-gateway/internal/mcp"
	"github.com/anyulbade/card-rewards-gateway/internal/middleware"
	"github.com/anyulbade/card-rewards-gateway/internal/service"
)

type RouterConfig struct {
	Server       *mcp.Server
	Registry     *mcp.Registry
	Health       *service.HealthService
	Gatherer     prometheus.Gatherer // nil disables /metrics
	Tracer       trace.Tracer        // nil disables request spans
	MaxBodyBytes int64
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	if cfg.Tracer != nil {
		router.Use(middleware.Tracing(cfg.Tracer))
	}
	router.Use(middleware.Logger(log.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := NewHealthHandler(cfg.Health)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	mcpHandler := NewMCPHandler(cfg.Server, cfg.MaxBodyBytes)
	router.POST("/mcp", mcpHandler.Handle)

	toolsHandler := NewToolsHandler(cfg.Registry, cfg.MaxBodyBytes)
	router.GET("/tools", toolsHandler.List)
	router.POST("/tools/:name", toolsHandler.Invoke)

	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	return router
}
