package searching

import (
	"context"
	"fmt"

	"github.com/algotutor/backend/internal/algo/searching"
	"github.com/algotutor/backend/internal/algo/seq"
	"github.com/algotutor/backend/internal/providers/common"
	"github.com/algotutor/backend/internal/types"
)

// Provider exposes linear and binary search as service tools
type Provider struct{}

// NewProvider creates a searching provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns the searching service definition
func (p *Provider) Definition() types.Service {
	searchParams := []types.Parameter{
		{Name: "array", Type: "string", Description: "Comma-separated elements to search", Required: true},
		{Name: "target", Type: "string", Description: "Value to search for", Required: true},
	}

	return types.Service{
		ID:           "search",
		Name:         "Searching Algorithms",
		Description:  "Linear and binary search with step-by-step traces",
		Category:     types.CategorySearching,
		Capabilities: []string{"linear search", "binary search", "find element"},
		Tools: []types.Tool{
			{
				ID:          "search.linear",
				Name:        "Linear Search",
				Description: "Scan left to right, comparing every element until the target is found",
				Parameters:  searchParams,
				Returns:     "object",
			},
			{
				ID:          "search.binary",
				Name:        "Binary Search",
				Description: "Repeatedly halve a sorted array around its middle element",
				Parameters:  searchParams,
				Returns:     "object",
			},
		},
	}
}

// Execute runs a search tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	arrayLiteral, ok := common.GetString(params, "array")
	if !ok {
		return common.Failure("array parameter required")
	}
	targetLiteral, ok := common.GetString(params, "target")
	if !ok {
		return common.Failure("target parameter required")
	}

	sequence, err := seq.Parse(arrayLiteral)
	if err != nil {
		return common.Failure(err.Error())
	}
	target, err := sequence.ParseTarget(targetLiteral)
	if err != nil {
		return common.Failure(err.Error())
	}

	switch toolID {
	case "search.linear":
		index, tr := searching.Linear(sequence, target)
		return common.Success(map[string]interface{}{
			"index":  index,
			"found":  index != searching.NotFound,
			"array":  sequence.Values(),
			"target": target.String(),
			"steps":  tr.Lines(),
		})
	case "search.binary":
		// Binary search requires a non-decreasing sequence; the caller
		// sorts, the engine does not verify.
		sorted := sequence.Sorted()
		index, tr := searching.Binary(sorted, target)
		return common.Success(map[string]interface{}{
			"index":        index,
			"found":        index != searching.NotFound,
			"array":        sequence.Values(),
			"sorted_array": sorted.Values(),
			"target":       target.String(),
			"steps":        tr.Lines(),
		})
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
