package unit

import (
	"context"
	"testing"

	"github.com/algotutor/backend/internal/providers"
	"github.com/algotutor/backend/tests/helpers/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchingProvider(t *testing.T) {
	searchProvider := providers.NewSearching()
	ctx := context.Background()

	t.Run("Definition", func(t *testing.T) {
		def := searchProvider.Definition()
		assert.Equal(t, "search", def.ID)
		assert.Len(t, def.Tools, 2)
	})

	t.Run("Linear", func(t *testing.T) {
		t.Run("Target present", func(t *testing.T) {
			result, err := searchProvider.Execute(ctx, "search.linear", map[string]interface{}{
				"array":  "2, 5, 8, 12, 16, 23, 38, 45, 56",
				"target": "23",
			}, nil)
			require.NoError(t, err)
			testutil.AssertDataField(t, result, "index", 5)
			testutil.AssertDataField(t, result, "found", true)

			steps := testutil.Steps(t, result)
			require.Len(t, steps, 7)
			assert.Equal(t, "Checking index 0: 2 ≠ 23", steps[0])
			assert.Equal(t, "Checking index 5: 23 = 23", steps[5])
			assert.Equal(t, "✓ Found at index 5!", steps[6])
		})

		t.Run("Target absent", func(t *testing.T) {
			result, err := searchProvider.Execute(ctx, "search.linear", map[string]interface{}{
				"array":  "2, 5, 8",
				"target": "7",
			}, nil)
			require.NoError(t, err)
			testutil.AssertDataField(t, result, "index", -1)
			testutil.AssertDataField(t, result, "found", false)

			steps := testutil.Steps(t, result)
			assert.Equal(t, "✗ Target not found in array", steps[len(steps)-1])
		})

		t.Run("Textual elements", func(t *testing.T) {
			result, err := searchProvider.Execute(ctx, "search.linear", map[string]interface{}{
				"array":  "pear, apple, mango",
				"target": "apple",
			}, nil)
			require.NoError(t, err)
			testutil.AssertDataField(t, result, "index", 1)
		})
	})

	t.Run("Binary", func(t *testing.T) {
		t.Run("Target present in sorted array", func(t *testing.T) {
			result, err := searchProvider.Execute(ctx, "search.binary", map[string]interface{}{
				"array":  "2, 5, 8, 12, 16, 23, 38, 45, 56",
				"target": "23",
			}, nil)
			require.NoError(t, err)
			testutil.AssertDataField(t, result, "index", 5)
			testutil.AssertDataField(t, result, "found", true)

			steps := testutil.Steps(t, result)
			assert.Equal(t, "Step 1: Checking middle element at index 4 = 16", steps[0])
			assert.Equal(t, "  16 < 23, searching right half [5..8]", steps[1])
		})

		t.Run("Unsorted input is sorted first", func(t *testing.T) {
			result, err := searchProvider.Execute(ctx, "search.binary", map[string]interface{}{
				"array":  "56, 2, 23, 8, 45",
				"target": "23",
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, []string{"2", "8", "23", "45", "56"}, result.Data["sorted_array"])
			testutil.AssertDataField(t, result, "index", 2)
		})

		t.Run("Target absent", func(t *testing.T) {
			result, err := searchProvider.Execute(ctx, "search.binary", map[string]interface{}{
				"array":  "2, 5, 8, 12",
				"target": "7",
			}, nil)
			require.NoError(t, err)
			testutil.AssertDataField(t, result, "found", false)
		})
	})

	t.Run("Validation", func(t *testing.T) {
		t.Run("Empty array", func(t *testing.T) {
			result, err := searchProvider.Execute(ctx, "search.linear", map[string]interface{}{
				"array":  " , ,",
				"target": "1",
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Non-numeric target against numeric array", func(t *testing.T) {
			result, err := searchProvider.Execute(ctx, "search.linear", map[string]interface{}{
				"array":  "1, 2, 3",
				"target": "banana",
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Missing target", func(t *testing.T) {
			result, err := searchProvider.Execute(ctx, "search.binary", map[string]interface{}{
				"array": "1, 2, 3",
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})
	})
}
