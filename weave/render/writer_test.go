package render

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypertech/loreweave/weave"
)

func resultWithEntities(shape weave.Shape, names ...string) *weave.Result {
	result := &weave.Result{RunID: "test-run", Shape: shape, Mode: weave.ModeBasic}
	for _, name := range names {
		result.Documents = append(result.Documents, weave.Document{
			Entity: name,
			Template: &weave.Template{Entries: []weave.Entry{
				{Key: "uuid", Value: weave.Token("<UUID>")},
			}},
		})
	}
	return result
}

func TestWriteSheetsOneFilePerEntity(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("Entity%d", i)
	}
	result := resultWithEntities(weave.ShapeSheets, names...)

	dir := t.TempDir()
	w := &Writer{Format: FormatYAML, Dir: dir}

	paths, err := w.WriteSheets(result)
	require.NoError(t, err)
	require.Len(t, paths, 10)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

func TestWriteSheetsSnakeCaseNames(t *testing.T) {
	result := resultWithEntities(weave.ShapeSheets, "CharacterSheet", "ItemCraftingRecipe")

	dir := t.TempDir()
	w := &Writer{Format: FormatJSON, Dir: dir}

	paths, err := w.WriteSheets(result)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(dir, "character_sheet.json"), paths[0])
	assert.Equal(t, filepath.Join(dir, "item_crafting_recipe.json"), paths[1])
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}

func TestWriteSingleOneFile(t *testing.T) {
	result := resultWithEntities(weave.ShapeSingle, "Alpha", "Beta", "Gamma")

	dir := t.TempDir()
	w := &Writer{Format: FormatYAML, Dir: dir}

	path, err := w.WriteSingle(result, "lorecore")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lorecore_all.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, "Alpha:\n")
	assert.Contains(t, s, "Beta:\n")
	assert.Contains(t, s, "Gamma:\n")
}

func TestWriteDispatchesByShape(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Format: FormatYAML, Dir: dir}

	single := resultWithEntities(weave.ShapeSingle, "Alpha", "Beta")
	paths, err := w.Write(single, "lorecore")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "lorecore_all.yaml"), paths[0])

	sheets := resultWithEntities(weave.ShapeSheets, "Alpha", "Beta")
	paths, err = w.Write(sheets, "lorecore")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.Equal(t, filepath.Join(dir, "sheets"), filepath.Dir(p))
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Format: FormatYAML, Dir: dir}

	result := resultWithEntities(weave.ShapeSingle, "Alpha")
	path, err := w.WriteSingle(result, "lorecore")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

	_, err = w.WriteSingle(result, "lorecore")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWriteSheetsCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "out")
	w := &Writer{Format: FormatMarkdown, Dir: dir}

	result := resultWithEntities(weave.ShapeSheets, "Alpha")
	paths, err := w.WriteSheets(result)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.FileExists(t, paths[0])
}
