package sorting

import (
	"context"
	"fmt"

	"github.com/algotutor/backend/internal/algo/seq"
	"github.com/algotutor/backend/internal/algo/sorting"
	"github.com/algotutor/backend/internal/algo/trace"
	"github.com/algotutor/backend/internal/providers/common"
	"github.com/algotutor/backend/internal/types"
)

// Provider exposes the three teaching sorts as service tools
type Provider struct{}

// NewProvider creates a sorting provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns the sorting service definition
func (p *Provider) Definition() types.Service {
	arrayParam := []types.Parameter{
		{Name: "array", Type: "string", Description: "Comma-separated elements to sort", Required: true},
	}

	return types.Service{
		ID:           "sort",
		Name:         "Sorting Algorithms",
		Description:  "Bubble, selection, and insertion sort with pass-by-pass traces",
		Category:     types.CategorySorting,
		Capabilities: []string{"bubble sort", "selection sort", "insertion sort", "order elements"},
		Tools: []types.Tool{
			{
				ID:          "sort.bubble",
				Name:        "Bubble Sort",
				Description: "Repeatedly swap adjacent out-of-order elements, stopping after a clean pass",
				Parameters:  arrayParam,
				Returns:     "object",
			},
			{
				ID:          "sort.selection",
				Name:        "Selection Sort",
				Description: "Select the minimum of the unsorted suffix into each position",
				Parameters:  arrayParam,
				Returns:     "object",
			},
			{
				ID:          "sort.insertion",
				Name:        "Insertion Sort",
				Description: "Insert each element into the sorted prefix, shifting larger elements right",
				Parameters:  arrayParam,
				Returns:     "object",
			},
		},
	}
}

// Execute runs a sort tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	arrayLiteral, ok := common.GetString(params, "array")
	if !ok {
		return common.Failure("array parameter required")
	}

	sequence, err := seq.Parse(arrayLiteral)
	if err != nil {
		return common.Failure(err.Error())
	}

	var sortFn func(*seq.Sequence) (*seq.Sequence, *trace.Trace)
	switch toolID {
	case "sort.bubble":
		sortFn = sorting.Bubble
	case "sort.selection":
		sortFn = sorting.Selection
	case "sort.insertion":
		sortFn = sorting.Insertion
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}

	sorted, tr := sortFn(sequence)
	return common.Success(map[string]interface{}{
		"result": sorted.Values(),
		"array":  sequence.Values(),
		"steps":  tr.Lines(),
	})
}
