package seq

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Errors reported while parsing sequences and targets.
var (
	ErrEmpty         = errors.New("sequence has no elements")
	ErrInvalidTarget = errors.New("invalid target")
)

// Kind discriminates how a whole sequence compares its elements.
// It is decided once at parse time, never per pair.
type Kind int

const (
	// Numeric sequences compare by integer value.
	Numeric Kind = iota
	// Textual sequences compare lexicographically.
	Textual
)

// String returns the kind's display name.
func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "textual"
}

type element struct {
	num  int64
	text string
}

// Sequence is an ordered list of elements sharing a single comparison,
// numeric if every element parsed as an integer, textual otherwise.
type Sequence struct {
	kind  Kind
	elems []element
}

// Target is a search target coerced to a sequence's element kind.
type Target struct {
	kind Kind
	num  int64
	text string
}

// Parse splits a comma-separated literal into a sequence. Elements are
// trimmed and empty elements dropped. If every element parses as an
// integer the sequence is numeric; a single failure makes the whole
// sequence textual.
func Parse(literal string) (*Sequence, error) {
	var tokens []string
	for _, part := range strings.Split(literal, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}

	elems := make([]element, len(tokens))
	kind := Numeric
	for i, token := range tokens {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			kind = Textual
			break
		}
		elems[i] = element{num: n, text: token}
	}
	if kind == Textual {
		for i, token := range tokens {
			elems[i] = element{text: token}
		}
	}

	return &Sequence{kind: kind, elems: elems}, nil
}

// FromInts builds a numeric sequence directly from integer values.
func FromInts(values ...int64) *Sequence {
	elems := make([]element, len(values))
	for i, v := range values {
		elems[i] = element{num: v, text: strconv.FormatInt(v, 10)}
	}
	return &Sequence{kind: Numeric, elems: elems}
}

// ParseTarget coerces a scalar literal to the sequence's kind. A target
// that cannot be parsed as an integer against a numeric sequence is an
// error, since numeric comparison would be meaningless.
func (s *Sequence) ParseTarget(literal string) (Target, error) {
	token := strings.TrimSpace(literal)
	if token == "" {
		return Target{}, fmt.Errorf("%w: empty value", ErrInvalidTarget)
	}
	if s.kind == Textual {
		return Target{kind: Textual, text: token}, nil
	}
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q is not numeric but the array is", ErrInvalidTarget, token)
	}
	return Target{kind: Numeric, num: n, text: token}, nil
}

// Kind returns the sequence's comparison kind.
func (s *Sequence) Kind() Kind {
	return s.kind
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	return len(s.elems)
}

// Value returns the display text of the element at i.
func (s *Sequence) Value(i int) string {
	e := s.elems[i]
	if s.kind == Numeric {
		return strconv.FormatInt(e.num, 10)
	}
	return e.text
}

// Values returns the display text of every element, in order.
func (s *Sequence) Values() []string {
	values := make([]string, len(s.elems))
	for i := range s.elems {
		values[i] = s.Value(i)
	}
	return values
}

// Compare orders the elements at i and j using the sequence's kind,
// returning -1, 0, or 1.
func (s *Sequence) Compare(i, j int) int {
	if s.kind == Numeric {
		return compareInt(s.elems[i].num, s.elems[j].num)
	}
	return strings.Compare(s.elems[i].text, s.elems[j].text)
}

// Less reports whether the element at i orders before the element at j.
func (s *Sequence) Less(i, j int) bool {
	return s.Compare(i, j) < 0
}

// Swap exchanges the elements at i and j.
func (s *Sequence) Swap(i, j int) {
	s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
}

// CompareTarget orders the element at i against the target.
func (s *Sequence) CompareTarget(i int, t Target) int {
	if s.kind == Numeric {
		return compareInt(s.elems[i].num, t.num)
	}
	return strings.Compare(s.elems[i].text, t.text)
}

// Clone returns an independent copy sharing no element storage.
func (s *Sequence) Clone() *Sequence {
	elems := make([]element, len(s.elems))
	copy(elems, s.elems)
	return &Sequence{kind: s.kind, elems: elems}
}

// Sorted returns a non-decreasing copy of the sequence.
func (s *Sequence) Sorted() *Sequence {
	out := s.Clone()
	sort.SliceStable(out.elems, func(i, j int) bool { return out.Less(i, j) })
	return out
}

// Format renders the whole sequence as "[a, b, c]" for trace lines.
func (s *Sequence) Format() string {
	return "[" + strings.Join(s.Values(), ", ") + "]"
}

// String returns the target's display text.
func (t Target) String() string {
	return t.text
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
