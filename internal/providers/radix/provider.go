package radix

import (
	"context"
	"fmt"
	"strconv"

	"github.com/algotutor/backend/internal/algo/radix"
	"github.com/algotutor/backend/internal/providers/common"
	"github.com/algotutor/backend/internal/types"
)

// Provider exposes number system conversion as service tools
type Provider struct{}

// NewProvider creates a radix conversion provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns the conversion service definition
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:           "radix",
		Name:         "Number Systems",
		Description:  "Convert numbers between binary, octal, decimal, and hexadecimal",
		Category:     types.CategoryConversion,
		Capabilities: []string{"binary", "octal", "decimal", "hexadecimal", "base conversion"},
		Tools: []types.Tool{
			{
				ID:          "radix.convert",
				Name:        "Convert Base",
				Description: "Convert a number literal from one base to another",
				Parameters: []types.Parameter{
					{Name: "value", Type: "string", Description: "Number literal to convert", Required: true},
					{Name: "from_base", Type: "number", Description: "Source base (2, 8, 10, or 16)", Required: true},
					{Name: "to_base", Type: "number", Description: "Target base (2, 8, 10, or 16)", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "radix.convertAll",
				Name:        "Convert to All Bases",
				Description: "Convert a number literal to every other supported base",
				Parameters: []types.Parameter{
					{Name: "value", Type: "string", Description: "Number literal to convert", Required: true},
					{Name: "from_base", Type: "number", Description: "Source base (2, 8, 10, or 16)", Required: true},
				},
				Returns: "object",
			},
		},
	}
}

// Execute runs a conversion tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "radix.convert":
		return p.convert(params)
	case "radix.convertAll":
		return p.convertAll(params)
	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) convert(params map[string]interface{}) (*types.Result, error) {
	value, ok := common.GetString(params, "value")
	if !ok {
		return common.Failure("value parameter required")
	}
	fromBase, ok := common.GetInt(params, "from_base")
	if !ok {
		return common.Failure("from_base parameter required")
	}
	toBase, ok := common.GetInt(params, "to_base")
	if !ok {
		return common.Failure("to_base parameter required")
	}

	result, err := radix.Convert(value, fromBase, toBase)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"result":    result,
		"value":     value,
		"from_base": fromBase,
		"to_base":   toBase,
	})
}

func (p *Provider) convertAll(params map[string]interface{}) (*types.Result, error) {
	value, ok := common.GetString(params, "value")
	if !ok {
		return common.Failure("value parameter required")
	}
	fromBase, ok := common.GetInt(params, "from_base")
	if !ok {
		return common.Failure("from_base parameter required")
	}

	all, err := radix.ConvertAll(value, fromBase)
	if err != nil {
		return common.Failure(err.Error())
	}

	conversions := make(map[string]interface{}, len(all))
	for base, text := range all {
		conversions[strconv.Itoa(base)] = text
	}

	return common.Success(map[string]interface{}{
		"conversions": conversions,
		"value":       value,
		"from_base":   fromBase,
	})
}
