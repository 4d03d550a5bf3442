package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algotutor/backend/internal/logging"
	"github.com/algotutor/backend/internal/monitoring"
	"github.com/algotutor/backend/internal/presets"
	"github.com/algotutor/backend/internal/providers"
	"github.com/algotutor/backend/internal/service"
)

var testMetrics = monitoring.NewMetrics()

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(providers.NewRadix()))
	require.NoError(t, registry.Register(providers.NewSets()))
	require.NoError(t, registry.Register(providers.NewSearching()))
	require.NoError(t, registry.Register(providers.NewSorting()))

	store := presets.NewStore(logging.NewDefault())
	store.Add(presets.Preset{
		ID:     "sort-bubble-classic",
		Title:  "Bubble Sort",
		ToolID: "sort.bubble",
		Params: map[string]interface{}{"array": "3, 1, 2"},
	})

	handlers := NewHandlers(registry, store, testMetrics, logging.NewDefault())

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.GET("/presets", handlers.ListPresets)
	router.GET("/presets/:id", handlers.GetPreset)
	router.POST("/presets/:id/execute", handlers.ExecutePreset)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestRoot(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "online", body["status"])
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "service_registry")
	assert.Contains(t, body, "metrics")
}

func TestListServices(t *testing.T) {
	router := setupRouter(t)

	t.Run("all services", func(t *testing.T) {
		w, body := doJSON(t, router, "GET", "/services", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		services := body["services"].([]interface{})
		assert.Len(t, services, 4)
	})

	t.Run("filtered by category", func(t *testing.T) {
		w, body := doJSON(t, router, "GET", "/services?category=sorting", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		services := body["services"].([]interface{})
		require.Len(t, services, 1)
		first := services[0].(map[string]interface{})
		assert.Equal(t, "sort", first["id"])
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		w, _ := doJSON(t, router, "GET", "/services?category=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDiscoverServices(t *testing.T) {
	router := setupRouter(t)

	t.Run("finds sorting for sort question", func(t *testing.T) {
		w, body := doJSON(t, router, "POST", "/services/discover", map[string]interface{}{
			"query": "how does bubble sort work",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		services := body["services"].([]interface{})
		require.NotEmpty(t, services)
		first := services[0].(map[string]interface{})
		assert.Equal(t, "sort", first["id"])
	})

	t.Run("empty query rejected", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/services/discover", map[string]interface{}{
			"query": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing query rejected", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/services/discover", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExecuteService(t *testing.T) {
	router := setupRouter(t)

	t.Run("successful execution", func(t *testing.T) {
		w, body := doJSON(t, router, "POST", "/services/execute", map[string]interface{}{
			"tool_id": "radix.convert",
			"params": map[string]interface{}{
				"value":     "255",
				"from_base": 10,
				"to_base":   16,
			},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "FF", data["result"])
	})

	t.Run("provider failure returns 200 with error", func(t *testing.T) {
		w, body := doJSON(t, router, "POST", "/services/execute", map[string]interface{}{
			"tool_id": "radix.convert",
			"params": map[string]interface{}{
				"value":     "zz",
				"from_base": 10,
				"to_base":   16,
			},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["error"])
	})

	t.Run("unknown service", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/services/execute", map[string]interface{}{
			"tool_id": "nothing.here",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing tool_id rejected", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/services/execute", map[string]interface{}{
			"params": map[string]interface{}{},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPresets(t *testing.T) {
	router := setupRouter(t)

	t.Run("list", func(t *testing.T) {
		w, body := doJSON(t, router, "GET", "/presets", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("get by id", func(t *testing.T) {
		w, body := doJSON(t, router, "GET", "/presets/sort-bubble-classic", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sort.bubble", body["tool_id"])
	})

	t.Run("get absent", func(t *testing.T) {
		w, _ := doJSON(t, router, "GET", "/presets/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("execute preset", func(t *testing.T) {
		w, body := doJSON(t, router, "POST", "/presets/sort-bubble-classic/execute", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sort-bubble-classic", body["preset"])

		result := body["result"].(map[string]interface{})
		assert.Equal(t, true, result["success"])

		data := result["data"].(map[string]interface{})
		assert.Equal(t, []interface{}{"1", "2", "3"}, data["result"])
	})

	t.Run("execute absent preset", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/presets/nope/execute", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
