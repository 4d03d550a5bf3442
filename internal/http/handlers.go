package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/algotutor/backend/internal/logging"
	"github.com/algotutor/backend/internal/middleware"
	"github.com/algotutor/backend/internal/monitoring"
	"github.com/algotutor/backend/internal/presets"
	"github.com/algotutor/backend/internal/service"
	"github.com/algotutor/backend/internal/types"
)

// Version is the backend version reported by the root endpoint.
const Version = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	presets  *presets.Store
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(
	registry *service.Registry,
	presetStore *presets.Store,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
) *Handlers {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Handlers{
		registry: registry,
		presets:  presetStore,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "AlgoTutor Backend (Go)",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	snap := h.metrics.GetSnapshot()

	avgDuration := 0.0
	if snap.RequestCount > 0 {
		avgDuration = snap.TotalDuration / float64(snap.RequestCount)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"presets":          gin.H{"loaded": h.presets.Count()},
		"metrics": gin.H{
			"total_requests":       snap.TotalRequests,
			"total_errors":         snap.TotalErrors,
			"avg_duration_seconds": avgDuration,
			"uptime_seconds":       h.metrics.UptimeSeconds(),
		},
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		if !validCategory(cat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + categoryStr})
			return
		}
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices finds services relevant to a free-text question
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query cannot be empty"})
		return
	}

	services := h.registry.Discover(req.Query, 5)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.execute(c, req.ToolID, req.Params)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListPresets lists all loaded exercise presets
func (h *Handlers) ListPresets(c *gin.Context) {
	list := h.presets.List()
	c.JSON(http.StatusOK, gin.H{
		"presets": list,
		"count":   len(list),
	})
}

// GetPreset returns a single preset by ID
func (h *Handlers) GetPreset(c *gin.Context) {
	id := c.Param("id")

	p, ok := h.presets.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found: " + id})
		return
	}

	c.JSON(http.StatusOK, p)
}

// ExecutePreset runs a preset's tool with its stored parameters
func (h *Handlers) ExecutePreset(c *gin.Context) {
	id := c.Param("id")

	p, ok := h.presets.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found: " + id})
		return
	}

	result, err := h.execute(c, p.ToolID, p.Params)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"preset": p.ID,
		"result": result,
	})
}

// execute dispatches a tool call through the registry with request context
// attached, recording tool metrics on the way out.
func (h *Handlers) execute(c *gin.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	requestID := middleware.GetRequestID(c)
	clientIP := c.ClientIP()

	appCtx := &types.Context{}
	if requestID != "" {
		appCtx.RequestID = &requestID
	}
	if clientIP != "" {
		appCtx.ClientIP = &clientIP
	}

	start := time.Now()
	result, err := h.registry.Execute(c.Request.Context(), toolID, params, appCtx)
	elapsed := time.Since(start)

	svc, tool := splitToolID(toolID)
	switch {
	case err != nil:
		h.metrics.RecordToolCall(svc, tool, "error", elapsed)
		h.metrics.RecordToolError(svc, tool, "dispatch")
		h.logger.Warn("tool dispatch failed",
			zap.String("tool_id", toolID),
			zap.Error(err))
		return nil, err
	case !result.Success:
		h.metrics.RecordToolCall(svc, tool, "failure", elapsed)
		h.metrics.RecordToolError(svc, tool, "execution")
	default:
		h.metrics.RecordToolCall(svc, tool, "success", elapsed)
	}

	h.logger.Debug("tool executed",
		zap.String("tool_id", toolID),
		zap.Bool("success", result.Success),
		zap.Duration("duration", elapsed))

	return result, nil
}

func splitToolID(toolID string) (service, tool string) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return toolID, ""
	}
	return parts[0], parts[1]
}

func validCategory(cat types.Category) bool {
	switch cat {
	case types.CategoryConversion, types.CategorySets, types.CategorySearching, types.CategorySorting:
		return true
	}
	return false
}
