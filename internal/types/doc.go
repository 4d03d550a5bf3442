// Package types provides shared data structures for the AlgoTutor backend.
//
// Core Types:
//   - Service: Algorithm service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - DiscoverRequest: Service discovery by free-text question
//   - WSMessage: WebSocket trace playback
package types
