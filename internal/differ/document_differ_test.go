package differ

import (
	"testing"

	"github.com/aleister1102/gamewatch/internal/snapshot"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentDiffer_AdditionRemovalModification(t *testing.T) {
	differ := NewDocumentDiffer(zerolog.Nop())

	previous := snapshot.Document{
		"a": {"value": float64(1)},
		"b": {"value": float64(2)},
	}
	current := snapshot.Document{
		"a": {"value": float64(1)},
		"b": {"value": float64(3)},
		"c": {"value": float64(4)},
	}

	result := differ.Diff(previous, current)

	require.False(t, result.IsEmpty())
	assert.Len(t, result.Added, 1)
	assert.Contains(t, result.Added, "c")
	assert.Empty(t, result.Removed)

	require.Contains(t, result.Modified, "b")
	change := result.Modified["b"]["value"]
	assert.Equal(t, float64(2), change.Old)
	assert.Equal(t, float64(3), change.New)

	assert.NotContains(t, result.Modified, "a")
}

func TestDocumentDiffer_Removal(t *testing.T) {
	differ := NewDocumentDiffer(zerolog.Nop())

	previous := snapshot.Document{"gone": {"name": "Old Item"}}
	current := snapshot.Document{}

	result := differ.Diff(previous, current)

	assert.Contains(t, result.Removed, "gone")
	assert.Empty(t, result.Added)
	assert.Empty(t, result.Modified)
}

func TestDocumentDiffer_FieldAppearsAndDisappears(t *testing.T) {
	differ := NewDocumentDiffer(zerolog.Nop())

	previous := snapshot.Document{"x": {"old_field": "v"}}
	current := snapshot.Document{"x": {"new_field": "w"}}

	result := differ.Diff(previous, current)

	require.Contains(t, result.Modified, "x")
	changes := result.Modified["x"]
	assert.Equal(t, FieldChange{Old: "v", New: nil}, changes["old_field"])
	assert.Equal(t, FieldChange{Old: nil, New: "w"}, changes["new_field"])
}

func TestDocumentDiffer_EmptyBaseline_AllAdditions(t *testing.T) {
	differ := NewDocumentDiffer(zerolog.Nop())

	current := snapshot.Document{
		"a": {"value": float64(1)},
		"b": {"value": float64(2)},
	}

	result := differ.Diff(snapshot.Document{}, current)

	assert.Len(t, result.Added, 2)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Modified)
}

func TestDocumentDiffer_Identical_EmptyResult(t *testing.T) {
	differ := NewDocumentDiffer(zerolog.Nop())

	doc := snapshot.Document{"a": {"value": "same", "nested": []any{"x", "y"}}}

	result := differ.Diff(doc, doc)
	assert.True(t, result.IsEmpty())
}
