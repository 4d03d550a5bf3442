package searching

import (
	"fmt"

	"github.com/algotutor/backend/internal/algo/seq"
	"github.com/algotutor/backend/internal/algo/trace"
)

// NotFound is the sentinel index for a search that missed.
const NotFound = -1

// CompareStep records one linear-search element comparison.
type CompareStep struct {
	Index  int
	Value  string
	Target string
	Match  bool
}

// Render implements trace.Step.
func (s CompareStep) Render() string {
	relation := "≠"
	if s.Match {
		relation = "="
	}
	return fmt.Sprintf("Checking index %d: %s %s %s", s.Index, s.Value, relation, s.Target)
}

// FoundStep records a successful match.
type FoundStep struct {
	Index int
}

// Render implements trace.Step.
func (s FoundStep) Render() string {
	return fmt.Sprintf("✓ Found at index %d!", s.Index)
}

// NotFoundStep records an exhausted search.
type NotFoundStep struct{}

// Render implements trace.Step.
func (NotFoundStep) Render() string {
	return "✗ Target not found in array"
}

// ProbeStep records one binary-search midpoint probe.
type ProbeStep struct {
	Step  int
	Index int
	Value string
}

// Render implements trace.Step.
func (s ProbeStep) Render() string {
	return fmt.Sprintf("Step %d: Checking middle element at index %d = %s", s.Step, s.Index, s.Value)
}

// NarrowStep records which half binary search retains after a mismatch.
type NarrowStep struct {
	Value       string
	Target      string
	RightHalf   bool
	Left, Right int
}

// Render implements trace.Step.
func (s NarrowStep) Render() string {
	if s.RightHalf {
		return fmt.Sprintf("  %s < %s, searching right half [%d..%d]", s.Value, s.Target, s.Left, s.Right)
	}
	return fmt.Sprintf("  %s > %s, searching left half [%d..%d]", s.Value, s.Target, s.Left, s.Right)
}

// Linear scans the sequence left to right, recording one comparison step
// per element. It returns on the first match without scanning further.
// The sequence is never mutated.
func Linear(s *seq.Sequence, target seq.Target) (int, *trace.Trace) {
	tr := trace.New()
	for i := 0; i < s.Len(); i++ {
		match := s.CompareTarget(i, target) == 0
		tr.Append(CompareStep{Index: i, Value: s.Value(i), Target: target.String(), Match: match})
		if match {
			tr.Append(FoundStep{Index: i})
			return i, tr
		}
	}
	tr.Append(NotFoundStep{})
	return NotFound, tr
}

// Binary bisects a non-decreasing sequence. Sortedness is the caller's
// responsibility; unsorted input yields incorrect results, not an error.
// The sequence is never mutated.
func Binary(s *seq.Sequence, target seq.Target) (int, *trace.Trace) {
	tr := trace.New()
	left, right := 0, s.Len()-1

	for step := 1; left <= right; step++ {
		// Indices are non-negative, so truncating division is floor here.
		mid := (left + right) / 2
		tr.Append(ProbeStep{Step: step, Index: mid, Value: s.Value(mid)})

		switch cmp := s.CompareTarget(mid, target); {
		case cmp == 0:
			tr.Append(FoundStep{Index: mid})
			return mid, tr
		case cmp < 0:
			left = mid + 1
			tr.Append(NarrowStep{
				Value:     s.Value(mid),
				Target:    target.String(),
				RightHalf: true,
				Left:      left,
				Right:     right,
			})
		default:
			right = mid - 1
			tr.Append(NarrowStep{
				Value:  s.Value(mid),
				Target: target.String(),
				Left:   left,
				Right:  right,
			})
		}
	}

	tr.Append(NotFoundStep{})
	return NotFound, tr
}
