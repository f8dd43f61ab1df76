package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vialtrack/route-optimizer-go/internal/models"
	"github.com/vialtrack/route-optimizer-go/internal/optimizer"
	"github.com/vialtrack/route-optimizer-go/internal/service"
	"github.com/vialtrack/route-optimizer-go/pkg/response"
)

// RouteHandler handles HTTP requests for route optimization
type RouteHandler struct {
	routeService *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeService *service.RouteService) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
	}
}

// Optimize handles POST /api/v1/routes/optimize
func (h *RouteHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.routeService.OptimizeRoute(req.Name, req.Tracks, req.Level)
	if err != nil {
		switch {
		case errors.Is(err, optimizer.ErrInvalidLevel):
			response.BadRequest(c, err.Error())
		case errors.Is(err, optimizer.ErrEmptyInput):
			response.BadRequest(c, "No track points supplied")
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.Success(c, result)
}

// Validate handles POST /api/v1/routes/validate
func (h *RouteHandler) Validate(c *gin.Context) {
	var req models.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	report := h.routeService.ValidateTracks(req.Original, req.Optimized)
	response.Success(c, report)
}

// ListRuns handles GET /api/v1/runs
func (h *RouteHandler) ListRuns(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	runs, err := h.routeService.ListRuns(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, runs)
}

// GetRun handles GET /api/v1/runs/:id
func (h *RouteHandler) GetRun(c *gin.Context) {
	run, err := h.routeService.GetRun(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRunNotFound) {
			response.NotFound(c, "Optimization run not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, run)
}

// GetRunMap handles GET /api/v1/runs/:id/map
func (h *RouteHandler) GetRunMap(c *gin.Context) {
	html, err := h.routeService.RenderRunMap(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRunNotFound) {
			response.NotFound(c, "Optimization run not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
