package sorting

import (
	"fmt"

	"github.com/algotutor/backend/internal/algo/seq"
	"github.com/algotutor/backend/internal/algo/trace"
)

// StartStep opens every sort trace with the starting array.
type StartStep struct {
	Array string
}

// Render implements trace.Step.
func (s StartStep) Render() string {
	return fmt.Sprintf("Starting array: %s", s.Array)
}

// FinalStep closes every sort trace with the final array.
type FinalStep struct {
	Array string
}

// Render implements trace.Step.
func (s FinalStep) Render() string {
	return fmt.Sprintf("Final sorted array: %s", s.Array)
}

// PassStep marks the start of a bubble-sort pass.
type PassStep struct {
	Pass int
}

// Render implements trace.Step.
func (s PassStep) Render() string {
	return fmt.Sprintf("Pass %d:", s.Pass)
}

// SwapStep records one adjacent bubble-sort swap and the resulting array.
type SwapStep struct {
	Larger  string
	Smaller string
	Array   string
}

// Render implements trace.Step.
func (s SwapStep) Render() string {
	return fmt.Sprintf("  Swapped %s and %s: %s", s.Larger, s.Smaller, s.Array)
}

// NoSwapStep records a bubble-sort pass with zero swaps, which ends the sort.
type NoSwapStep struct{}

// Render implements trace.Step.
func (NoSwapStep) Render() string {
	return "  No swaps needed, array is sorted"
}

// FindMinStep records one selection-sort scan intent.
type FindMinStep struct {
	Pass int
	From int
	To   int
}

// Render implements trace.Step.
func (s FindMinStep) Render() string {
	return fmt.Sprintf("Pass %d: Finding minimum from index %d to %d", s.Pass, s.From, s.To)
}

// SelectSwapStep records a selection-sort swap and the resulting array.
type SelectSwapStep struct {
	Min       string
	Displaced string
	Array     string
}

// Render implements trace.Step.
func (s SelectSwapStep) Render() string {
	return fmt.Sprintf("  Swapped %s (min) with %s: %s", s.Min, s.Displaced, s.Array)
}

// InPlaceStep records an element that needed no movement.
type InPlaceStep struct {
	Value string
}

// Render implements trace.Step.
func (s InPlaceStep) Render() string {
	return fmt.Sprintf("  %s is already in correct position", s.Value)
}

// KeyStep marks the start of an insertion-sort pass for one key.
type KeyStep struct {
	Pass int
	Key  string
}

// Render implements trace.Step.
func (s KeyStep) Render() string {
	return fmt.Sprintf("Pass %d: Inserting %s into sorted portion", s.Pass, s.Key)
}

// ShiftStep records one rightward insertion-sort shift and the array state.
type ShiftStep struct {
	Value string
	Array string
}

// Render implements trace.Step.
func (s ShiftStep) Render() string {
	return fmt.Sprintf("  Shifted %s to the right: %s", s.Value, s.Array)
}

// InsertStep records the key landing in its final slot.
type InsertStep struct {
	Key      string
	Position int
	Array    string
}

// Render implements trace.Step.
func (s InsertStep) Render() string {
	return fmt.Sprintf("  Inserted %s at position %d: %s", s.Key, s.Position, s.Array)
}

// Bubble sorts a private copy with adjacent-swap passes over a shrinking
// window. A pass with zero swaps terminates the sort early.
func Bubble(s *seq.Sequence) (*seq.Sequence, *trace.Trace) {
	arr := s.Clone()
	n := arr.Len()
	tr := trace.New()
	tr.Append(StartStep{Array: arr.Format()})

	for i := 0; i < n; i++ {
		swapped := false
		tr.Append(PassStep{Pass: i + 1})
		for j := 0; j < n-i-1; j++ {
			if arr.Compare(j, j+1) > 0 {
				arr.Swap(j, j+1)
				swapped = true
				tr.Append(SwapStep{
					Larger:  arr.Value(j + 1),
					Smaller: arr.Value(j),
					Array:   arr.Format(),
				})
			}
		}
		if !swapped {
			tr.Append(NoSwapStep{})
			break
		}
	}

	tr.Append(FinalStep{Array: arr.Format()})
	return arr, tr
}

// Selection sorts a private copy by repeatedly selecting the minimum of
// the unsorted suffix. The scan itself is recorded as one intent step per
// pass, not per comparison.
func Selection(s *seq.Sequence) (*seq.Sequence, *trace.Trace) {
	arr := s.Clone()
	n := arr.Len()
	tr := trace.New()
	tr.Append(StartStep{Array: arr.Format()})

	for i := 0; i < n; i++ {
		tr.Append(FindMinStep{Pass: i + 1, From: i, To: n - 1})

		minIdx := i
		for j := i + 1; j < n; j++ {
			if arr.Compare(j, minIdx) < 0 {
				minIdx = j
			}
		}

		if minIdx != i {
			arr.Swap(i, minIdx)
			tr.Append(SelectSwapStep{
				Min:       arr.Value(i),
				Displaced: arr.Value(minIdx),
				Array:     arr.Format(),
			})
		} else {
			tr.Append(InPlaceStep{Value: arr.Value(i)})
		}
	}

	tr.Append(FinalStep{Array: arr.Format()})
	return arr, tr
}

// Insertion sorts a private copy by shifting larger predecessors rightward
// one slot at a time before placing each key.
func Insertion(s *seq.Sequence) (*seq.Sequence, *trace.Trace) {
	arr := s.Clone()
	n := arr.Len()
	tr := trace.New()
	tr.Append(StartStep{Array: arr.Format()})

	for i := 1; i < n; i++ {
		key := arr.Value(i)
		tr.Append(KeyStep{Pass: i, Key: key})

		// Bubble the key leftward one adjacent swap at a time; each swap
		// is one rightward shift of a larger predecessor.
		j := i
		for j > 0 && arr.Compare(j-1, j) > 0 {
			shifted := arr.Value(j - 1)
			arr.Swap(j-1, j)
			j--
			tr.Append(ShiftStep{Value: shifted, Array: arr.Format()})
		}

		if j != i {
			tr.Append(InsertStep{Key: key, Position: j, Array: arr.Format()})
		} else {
			tr.Append(InPlaceStep{Value: key})
		}
	}

	tr.Append(FinalStep{Array: arr.Format()})
	return arr, tr
}
