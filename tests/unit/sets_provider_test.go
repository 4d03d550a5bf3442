package unit

import (
	"context"
	"testing"

	"github.com/algotutor/backend/internal/providers"
	"github.com/algotutor/backend/tests/helpers/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetsProvider(t *testing.T) {
	setsProvider := providers.NewSets()
	ctx := context.Background()

	t.Run("Definition", func(t *testing.T) {
		def := setsProvider.Definition()
		assert.Equal(t, "sets", def.ID)
		assert.Len(t, def.Tools, 4)
	})

	t.Run("Union", func(t *testing.T) {
		result, err := setsProvider.Execute(ctx, "sets.union", map[string]interface{}{
			"a": "apple, banana, cherry",
			"b": "banana, cherry, date",
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, []string{"apple", "banana", "cherry", "date"}, result.Data["result"])
		assert.Equal(t, 4, result.Data["cardinality"])
	})

	t.Run("Intersection", func(t *testing.T) {
		result, err := setsProvider.Execute(ctx, "sets.intersection", map[string]interface{}{
			"a": "apple, banana, cherry",
			"b": "banana, cherry, date",
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, []string{"banana", "cherry"}, result.Data["result"])
	})

	t.Run("Difference", func(t *testing.T) {
		result, err := setsProvider.Execute(ctx, "sets.difference", map[string]interface{}{
			"a": "apple, banana, cherry",
			"b": "banana, cherry, date",
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, []string{"apple"}, result.Data["result"])
	})

	t.Run("Cardinality", func(t *testing.T) {
		t.Run("With both operands", func(t *testing.T) {
			result, err := setsProvider.Execute(ctx, "sets.cardinality", map[string]interface{}{
				"a": "x, y, z",
				"b": "x, y",
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 3, result.Data["result"])
			assert.Equal(t, 2, result.Data["b_cardinality"])
		})

		t.Run("A only", func(t *testing.T) {
			result, err := setsProvider.Execute(ctx, "sets.cardinality", map[string]interface{}{
				"a": "x, y, z",
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 3, result.Data["result"])
			assert.NotContains(t, result.Data, "b_cardinality")
		})
	})

	t.Run("Duplicates collapse", func(t *testing.T) {
		result, err := setsProvider.Execute(ctx, "sets.union", map[string]interface{}{
			"a": "a, a, b, b",
			"b": "",
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, []string{"a", "b"}, result.Data["result"])
		assert.Equal(t, 2, result.Data["cardinality"])
	})

	t.Run("Empty B operand", func(t *testing.T) {
		result, err := setsProvider.Execute(ctx, "sets.difference", map[string]interface{}{
			"a": "p, q",
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, []string{"p", "q"}, result.Data["result"])
	})

	t.Run("Missing A operand", func(t *testing.T) {
		result, err := setsProvider.Execute(ctx, "sets.union", map[string]interface{}{
			"b": "x",
		}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})
}
