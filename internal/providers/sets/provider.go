package sets

import (
	"context"
	"fmt"

	"github.com/algotutor/backend/internal/algo/sets"
	"github.com/algotutor/backend/internal/providers/common"
	"github.com/algotutor/backend/internal/types"
)

// Provider exposes set algebra as service tools
type Provider struct{}

// NewProvider creates a set algebra provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns the set algebra service definition
func (p *Provider) Definition() types.Service {
	binaryParams := []types.Parameter{
		{Name: "a", Type: "string", Description: "Comma-separated elements of set A", Required: true},
		{Name: "b", Type: "string", Description: "Comma-separated elements of set B", Required: false},
	}

	return types.Service{
		ID:           "sets",
		Name:         "Set Operations",
		Description:  "Union, intersection, difference, and cardinality over sets",
		Category:     types.CategorySets,
		Capabilities: []string{"union", "intersection", "difference", "cardinality"},
		Tools: []types.Tool{
			{
				ID:          "sets.union",
				Name:        "Union",
				Description: "All elements present in A or B (A ∪ B)",
				Parameters:  binaryParams,
				Returns:     "array",
			},
			{
				ID:          "sets.intersection",
				Name:        "Intersection",
				Description: "Elements present in both A and B (A ∩ B)",
				Parameters:  binaryParams,
				Returns:     "array",
			},
			{
				ID:          "sets.difference",
				Name:        "Difference",
				Description: "Elements in A that are not in B (A - B)",
				Parameters:  binaryParams,
				Returns:     "array",
			},
			{
				ID:          "sets.cardinality",
				Name:        "Cardinality",
				Description: "Number of distinct elements in A (|A|), and |B| when given",
				Parameters:  binaryParams,
				Returns:     "number",
			},
		},
	}
}

// Execute runs a set operation tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	aLiteral, ok := common.GetString(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	// B is optional and may be empty.
	bLiteral, _ := common.GetRawString(params, "b")

	a := sets.Parse(aLiteral)
	b := sets.Parse(bLiteral)

	switch toolID {
	case "sets.union":
		return setResult(sets.Union(a, b))
	case "sets.intersection":
		return setResult(sets.Intersection(a, b))
	case "sets.difference":
		return setResult(sets.Difference(a, b))
	case "sets.cardinality":
		data := map[string]interface{}{
			"result": sets.Cardinality(a),
			"a":      a.Values(),
		}
		if sets.Cardinality(b) > 0 {
			data["b_cardinality"] = sets.Cardinality(b)
			data["b"] = b.Values()
		}
		return common.Success(data)
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func setResult(s sets.Set) (*types.Result, error) {
	return common.Success(map[string]interface{}{
		"result":      s.Values(),
		"cardinality": sets.Cardinality(s),
	})
}
