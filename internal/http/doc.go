// Package http provides HTTP handlers and routing for the AlgoTutor REST API.
//
// This package implements all HTTP endpoints using the Gin framework, including
// health checks, service discovery, tool execution, and exercise presets.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//   - Presets: /presets, /presets/:id, /presets/:id/execute
//
// Features:
//   - JSON request/response handling
//   - Proper HTTP status codes
//   - Error response formatting
//   - Per-tool execution metrics
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, presetStore, metrics, logger)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
