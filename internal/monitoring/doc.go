// Package monitoring provides Prometheus metrics for the AlgoTutor backend.
//
// Metric Categories:
//   - HTTP: Request counts, durations by method/path/status
//   - Tools: Execution counts, durations, and errors by service/tool
//   - WebSocket: Active connections and message counts
//   - System: Uptime
//
// The collector also maintains a lightweight in-memory snapshot consumed
// by the JSON health endpoint, so basic stats are available without
// scraping the Prometheus text format.
//
// Example Usage:
//
//	metrics := monitoring.NewMetrics()
//	router.Use(monitoring.Instrument(metrics))
//	metrics.RecordToolCall("sort", "bubble", "success", elapsed)
package monitoring
