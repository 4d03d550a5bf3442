// Package service provides the registry that catalogs the algorithm
// providers.
//
// The registry maintains the set of registered providers and handles
// discovery, tool execution, and relevance scoring for student questions.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Discovery Algorithm:
//   - Keyword matching in name/description
//   - Capability matching
//   - Category bonus for exact matches
//   - Score-based ranking
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(radixProvider)
//	services := registry.Discover("convert binary to decimal", 5)
//	result, err := registry.Execute(ctx, "radix.convert", params, appCtx)
package service
