package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/algotutor/backend/internal/logging"
	"github.com/algotutor/backend/internal/monitoring"
	"github.com/algotutor/backend/internal/presets"
	"github.com/algotutor/backend/internal/service"
	"github.com/algotutor/backend/internal/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Playback pacing bounds. Clients may request slower or faster step
// delivery; anything outside these bounds is clamped.
const (
	defaultStepDelay = 100 * time.Millisecond
	maxStepDelay     = 2 * time.Second
)

// Handler manages WebSocket connections for step-by-step trace playback
type Handler struct {
	registry *service.Registry
	presets  *presets.Store
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(
	registry *service.Registry,
	presetStore *presets.Store,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Handler{
		registry: registry,
		presets:  presetStore,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	reqCtx := c.Request.Context()

	h.send(conn, map[string]interface{}{
		"type":    "system",
		"message": "Connected to AlgoTutor Backend (Go)",
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			break
		}

		var msg types.WSMessage
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			h.sendError(conn, "malformed message")
			continue
		}

		h.metrics.RecordWSMessage("in", msg.Type)

		switch msg.Type {
		case "execute":
			h.handleExecute(conn, reqCtx, msg.ToolID, msg.Params, msg.DelayMS)
		case "preset":
			h.handlePreset(conn, reqCtx, msg)
		case "ping":
			h.send(conn, map[string]interface{}{"type": "pong"})
		default:
			h.sendError(conn, "unknown message type")
		}
	}
}

// handleExecute runs a tool once and plays its trace back one step at a
// time, mirroring the paced line-by-line reveal of a classroom walkthrough.
func (h *Handler) handleExecute(conn *websocket.Conn, reqCtx context.Context, toolID string, params map[string]interface{}, delayMS int) {
	if toolID == "" {
		h.sendError(conn, "tool_id is required")
		return
	}

	ctx, cancel := context.WithTimeout(reqCtx, 30*time.Second)
	defer cancel()

	result, err := h.registry.Execute(ctx, toolID, params, nil)
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}
	if !result.Success {
		errMsg := "execution failed"
		if result.Error != nil {
			errMsg = *result.Error
		}
		h.sendError(conn, errMsg)
		return
	}

	h.send(conn, map[string]interface{}{
		"type":      "playback_start",
		"tool_id":   toolID,
		"steps":     len(extractSteps(result)),
		"timestamp": time.Now().Unix(),
	})

	delay := stepDelay(delayMS)
	for i, line := range extractSteps(result) {
		select {
		case <-ctx.Done():
			h.sendError(conn, "playback cancelled")
			return
		case <-time.After(delay):
		}

		if err := h.send(conn, map[string]interface{}{
			"type":      "step",
			"index":     i,
			"content":   line,
			"timestamp": time.Now().Unix(),
		}); err != nil {
			return
		}
	}

	h.send(conn, map[string]interface{}{
		"type":      "result",
		"tool_id":   toolID,
		"data":      result.Data,
		"timestamp": time.Now().Unix(),
	})

	h.send(conn, map[string]interface{}{
		"type":      "complete",
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) handlePreset(conn *websocket.Conn, reqCtx context.Context, msg types.WSMessage) {
	p, ok := h.presets.Get(msg.PresetID)
	if !ok {
		h.sendError(conn, "preset not found: "+msg.PresetID)
		return
	}

	h.handleExecute(conn, reqCtx, p.ToolID, p.Params, msg.DelayMS)
}

// extractSteps pulls the rendered trace lines out of a tool result.
func extractSteps(result *types.Result) []string {
	if result == nil || result.Data == nil {
		return nil
	}

	switch steps := result.Data["steps"].(type) {
	case []string:
		return steps
	case []interface{}:
		out := make([]string, 0, len(steps))
		for _, s := range steps {
			if str, ok := s.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

func stepDelay(delayMS int) time.Duration {
	if delayMS <= 0 {
		return defaultStepDelay
	}
	d := time.Duration(delayMS) * time.Millisecond
	if d > maxStepDelay {
		return maxStepDelay
	}
	return d
}

func (h *Handler) send(conn *websocket.Conn, data interface{}) error {
	payload, err := sonic.Marshal(data)
	if err != nil {
		return err
	}

	if m, ok := data.(map[string]interface{}); ok {
		if t, ok := m["type"].(string); ok {
			h.metrics.RecordWSMessage("out", t)
		}
	}

	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (h *Handler) sendError(conn *websocket.Conn, msg string) error {
	return h.send(conn, map[string]interface{}{
		"type":      "error",
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
