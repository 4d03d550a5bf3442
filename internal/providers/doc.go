// Package providers implements the algorithm service providers for the
// AlgoTutor backend.
//
// Each provider wraps one pure algorithm family from internal/algo behind
// the standardized tool interface: it parses raw text parameters, invokes
// the core, and renders the (result, trace) pair into a Result envelope.
//
// Available Providers:
//   - Radix: Base conversion between binary, octal, decimal, hexadecimal
//   - Sets: Union, intersection, difference, cardinality
//   - Searching: Linear and binary search with comparison traces
//   - Sorting: Bubble, selection, and insertion sort with pass traces
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	sort := providers.NewSorting()
//	result, err := sort.Execute(ctx, "sort.bubble", params, appCtx)
package providers
