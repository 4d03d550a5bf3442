package sets

import (
	"sort"
	"strings"
)

// Set is an unordered collection of unique tokens. Tokens are opaque
// trimmed strings; numeric-looking tokens are not coerced to numbers.
type Set map[string]struct{}

// Parse builds a set from a comma-separated literal. Elements are trimmed,
// empty elements are dropped, and duplicates collapse silently.
func Parse(literal string) Set {
	s := Set{}
	for _, part := range strings.Split(literal, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		s[token] = struct{}{}
	}
	return s
}

// New builds a set from individual tokens, applying the same trimming
// rules as Parse.
func New(tokens ...string) Set {
	s := Set{}
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		s[token] = struct{}{}
	}
	return s
}

// Union returns a fresh set with every token present in a or b.
func Union(a, b Set) Set {
	out := make(Set, len(a)+len(b))
	for token := range a {
		out[token] = struct{}{}
	}
	for token := range b {
		out[token] = struct{}{}
	}
	return out
}

// Intersection returns a fresh set with the tokens present in both a and b.
func Intersection(a, b Set) Set {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	out := Set{}
	for token := range small {
		if _, ok := large[token]; ok {
			out[token] = struct{}{}
		}
	}
	return out
}

// Difference returns a fresh set with the tokens in a that are not in b.
// The operation is order-sensitive: Difference(a, b) != Difference(b, a).
func Difference(a, b Set) Set {
	out := Set{}
	for token := range a {
		if _, ok := b[token]; !ok {
			out[token] = struct{}{}
		}
	}
	return out
}

// Cardinality returns the number of distinct tokens in the set.
func Cardinality(a Set) int {
	return len(a)
}

// Contains reports whether the set holds the given token.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Equal reports whether both sets hold exactly the same tokens.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for token := range s {
		if _, ok := other[token]; !ok {
			return false
		}
	}
	return true
}

// Values returns the tokens sorted lexicographically for stable display.
func (s Set) Values() []string {
	values := make([]string, 0, len(s))
	for token := range s {
		values = append(values, token)
	}
	sort.Strings(values)
	return values
}
