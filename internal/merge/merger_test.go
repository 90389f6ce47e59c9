package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
)

func TestMerge(t *testing.T) {
	inputs := []record.Input{
		{Value: []any{
			map[string]any{"general": map[string]any{"model": "A"}},
			map[string]any{"general": map[string]any{"model": "B"}},
		}, FileName: "list.json"},
		{Value: map[string]any{"general": map[string]any{"model": "C"}}, FileName: "single.json"},
		{Value: []any{"not an object", float64(42)}, FileName: "junk.json"},
	}

	merged, skipped := Merge(inputs)

	require.Len(t, merged, 3)
	assert.Equal(t, "A", merged[0].ModelName())
	assert.Equal(t, "B", merged[1].ModelName())
	assert.Equal(t, "C", merged[2].ModelName())
	assert.Equal(t, 2, skipped)
}

func TestMergeEmpty(t *testing.T) {
	merged, skipped := Merge(nil)

	assert.Empty(t, merged)
	assert.Zero(t, skipped)
}
