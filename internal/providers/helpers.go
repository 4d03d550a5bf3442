package providers

import (
	"github.com/algotutor/backend/internal/providers/radix"
	"github.com/algotutor/backend/internal/providers/searching"
	"github.com/algotutor/backend/internal/providers/sets"
	"github.com/algotutor/backend/internal/providers/sorting"
)

// NewRadix creates the number systems provider
func NewRadix() *radix.Provider {
	return radix.NewProvider()
}

// NewSets creates the set operations provider
func NewSets() *sets.Provider {
	return sets.NewProvider()
}

// NewSearching creates the searching algorithms provider
func NewSearching() *searching.Provider {
	return searching.NewProvider()
}

// NewSorting creates the sorting algorithms provider
func NewSorting() *sorting.Provider {
	return sorting.NewProvider()
}
