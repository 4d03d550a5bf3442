package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algotutor/backend/internal/logging"
	"github.com/algotutor/backend/internal/monitoring"
	"github.com/algotutor/backend/internal/presets"
	"github.com/algotutor/backend/internal/providers"
	"github.com/algotutor/backend/internal/service"
)

var testMetrics = monitoring.NewMetrics()

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(providers.NewSorting()))
	require.NoError(t, registry.Register(providers.NewSearching()))

	store := presets.NewStore(logging.NewDefault())
	store.Add(presets.Preset{
		ID:     "sort-demo",
		ToolID: "sort.bubble",
		Params: map[string]interface{}{"array": "2, 1"},
	})

	handler := NewHandler(registry, store, testMetrics, logging.NewDefault())

	router := gin.New()
	router.GET("/stream", handler.HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	conn.SetReadDeadline(time.Now().Add(10 * time.Second))

	// Welcome message arrives first.
	var welcome map[string]interface{}
	require.NoError(t, conn.ReadJSON(&welcome))
	require.Equal(t, "system", welcome["type"])

	return conn
}

// collect reads messages until a terminal type ("complete" or "error") is seen.
func collect(t *testing.T, conn *websocket.Conn) []map[string]interface{} {
	t.Helper()

	var msgs []map[string]interface{}
	for {
		var msg map[string]interface{}
		require.NoError(t, conn.ReadJSON(&msg))
		msgs = append(msgs, msg)
		if msg["type"] == "complete" || msg["type"] == "error" {
			return msgs
		}
	}
}

func TestPing(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "ping"}))

	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "pong", msg["type"])
}

func TestExecutePlayback(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":     "execute",
		"tool_id":  "sort.bubble",
		"params":   map[string]interface{}{"array": "3, 1, 2"},
		"delay_ms": 1,
	}))

	msgs := collect(t, conn)
	require.NotEmpty(t, msgs)

	assert.Equal(t, "playback_start", msgs[0]["type"])

	var steps []string
	var sawResult bool
	for _, msg := range msgs[1:] {
		switch msg["type"] {
		case "step":
			steps = append(steps, msg["content"].(string))
		case "result":
			sawResult = true
			data := msg["data"].(map[string]interface{})
			assert.Equal(t, []interface{}{"1", "2", "3"}, data["result"])
		}
	}

	require.NotEmpty(t, steps)
	assert.Equal(t, "Starting array: [3, 1, 2]", steps[0])
	assert.Equal(t, "Final sorted array: [1, 2, 3]", steps[len(steps)-1])
	assert.True(t, sawResult)
	assert.Equal(t, "complete", msgs[len(msgs)-1]["type"])
}

func TestPresetPlayback(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":      "preset",
		"preset_id": "sort-demo",
		"delay_ms":  1,
	}))

	msgs := collect(t, conn)
	assert.Equal(t, "playback_start", msgs[0]["type"])
	assert.Equal(t, "complete", msgs[len(msgs)-1]["type"])
}

func TestExecuteErrors(t *testing.T) {
	conn := dialTestServer(t)

	t.Run("missing tool_id", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "execute"}))

		var msg map[string]interface{}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "error", msg["type"])
	})

	t.Run("unknown preset", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(map[string]interface{}{
			"type":      "preset",
			"preset_id": "nope",
		}))

		var msg map[string]interface{}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "error", msg["type"])
	})

	t.Run("unknown message type", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "mystery"}))

		var msg map[string]interface{}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "error", msg["type"])
	})

	t.Run("execution failure", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(map[string]interface{}{
			"type":    "execute",
			"tool_id": "sort.bubble",
			"params":  map[string]interface{}{"array": ""},
		}))

		var msg map[string]interface{}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "error", msg["type"])
	})
}
