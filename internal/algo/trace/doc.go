// Package trace defines the structured execution trace shared by the
// algorithm packages.
//
// Algorithms record each comparison, swap, or probe as a small typed step
// rather than a display string, so tests can make exact structural
// assertions while callers render the same human-readable narration the
// students see.
//
// Example Usage:
//
//	tr := trace.New()
//	tr.Append(someStep{Index: 3, Value: "23"})
//	for _, line := range tr.Lines() {
//	    fmt.Println(line)
//	}
package trace
