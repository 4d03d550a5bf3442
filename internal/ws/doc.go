// Package ws provides WebSocket handling for real-time trace playback.
//
// This package implements WebSocket communication for streaming algorithm
// traces step by step, so a frontend can animate a walkthrough one line
// at a time the way a classroom whiteboard fills in.
//
// Features:
//   - Paced step delivery with client-controlled delay
//   - Preset playback by ID
//   - Automatic connection upgrade from HTTP
//   - Context-based cancellation
//   - Connection and message metrics
//
// Message Types (Client → Server):
//   - execute: Run a tool and stream its trace
//   - preset: Run a stored preset and stream its trace
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - system: Connection established
//   - playback_start: Trace playback beginning, includes step count
//   - step: One rendered trace line
//   - result: Full execution result after playback
//   - complete: Operation finished
//   - error: Error occurred
//
// Example Usage:
//
//	handler := ws.NewHandler(registry, presetStore, metrics, logger)
//	router.GET("/stream", handler.HandleConnection)
package ws
