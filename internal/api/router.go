package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vialtrack/route-optimizer-go/internal/config"
	"github.com/vialtrack/route-optimizer-go/internal/database"
	"github.com/vialtrack/route-optimizer-go/internal/handler"
	"github.com/vialtrack/route-optimizer-go/internal/middleware"
	"github.com/vialtrack/route-optimizer-go/internal/optimizer"
	"github.com/vialtrack/route-optimizer-go/internal/repository"
	"github.com/vialtrack/route-optimizer-go/internal/service"
)

// SetupRouter wires repositories, services and handlers into a gin engine.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Route Optimizer API is running",
		})
	})

	pipeline := optimizer.NewPipeline()
	pipeline.MinDistance = cfg.MinDistanceM
	pipeline.AngleThreshold = cfg.AngleThresholdDeg
	pipeline.Backtrack.Threshold = cfg.BacktrackThresholdM

	runRepo := repository.NewRunRepository(database.GetDB())
	routeService := service.NewRouteService(runRepo, pipeline)
	routeHandler := handler.NewRouteHandler(routeService)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))
	{
		routes := api.Group("/routes")
		{
			routes.POST("/optimize", routeHandler.Optimize)
			routes.POST("/validate", routeHandler.Validate)
		}

		runs := api.Group("/runs")
		{
			runs.GET("", routeHandler.ListRuns)
			runs.GET("/:id", routeHandler.GetRun)
			runs.GET("/:id/map", routeHandler.GetRunMap)
		}
	}

	return r
}
