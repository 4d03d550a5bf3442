// Package main is the entry point for the AlgoTutor backend server.
//
// AlgoTutor is an interactive teaching tool for foundational computer
// science topics. The backend exposes four algorithm families as services
// that return full step-by-step traces alongside their results:
//
//   - radix: Number base conversion (binary, octal, decimal, hexadecimal)
//   - sets: Set algebra on comma-separated token lists
//   - search: Linear and binary search with comparison traces
//   - sort: Bubble, selection, and insertion sort with pass traces
//
// The server provides:
//   - REST API for service discovery and tool execution
//   - WebSocket streaming for paced trace playback
//   - TOML-based exercise presets
//   - Prometheus metrics, rate limiting, structured logging
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -presets ./presets
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
