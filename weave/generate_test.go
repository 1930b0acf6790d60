package weave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/schema"
)

func TestGenerateWholeCatalog(t *testing.T) {
	c := testCatalog(t)

	result, err := Generate(c, ShapeSingle, ModeFull)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.Failed())
	require.Len(t, result.Documents, 3)

	// Documents follow catalog declaration order.
	assert.Equal(t, "LocalizedString", result.Documents[0].Entity)
	assert.Equal(t, "Base", result.Documents[1].Entity)
	assert.Equal(t, "CharacterBackground", result.Documents[2].Entity)
}

func TestGenerateContinuesPastEntityFailures(t *testing.T) {
	c := testCatalog(t)
	c.MustAddEntity(&schema.Entity{
		Name:   "Broken",
		Fields: []schema.Field{{Name: "ref", Type: schema.Model("Ghost")}},
	})
	c.MustAddEntity(&schema.Entity{
		Name:   "AfterBroken",
		Fields: []schema.Field{{Name: "name", Type: schema.String()}},
	})

	result, err := Generate(c, ShapeSheets, ModeBasic)
	require.NoError(t, err)

	assert.True(t, result.Failed())
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Broken", result.Failures[0].Entity)
	assert.True(t, errors.IsResolutionError(result.Failures[0].Err))

	// Entities after the failure still generate.
	names := make([]string, 0, len(result.Documents))
	for _, doc := range result.Documents {
		names = append(names, doc.Entity)
	}
	assert.Contains(t, names, "AfterBroken")
	assert.NotContains(t, names, "Broken")
}

func TestGenerateEntitiesSubset(t *testing.T) {
	c := testCatalog(t)

	result, err := GenerateEntities(c, ShapeSingle, ModeBasic, []string{"CharacterBackground", "Base"})
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	// Subset output keeps catalog order, not request order.
	assert.Equal(t, "Base", result.Documents[0].Entity)
	assert.Equal(t, "CharacterBackground", result.Documents[1].Entity)
}

func TestGenerateEntitiesUnknownName(t *testing.T) {
	c := testCatalog(t)

	result, err := GenerateEntities(c, ShapeSingle, ModeBasic, []string{"Base", "Nonexistent"})
	require.NoError(t, err)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Nonexistent", result.Failures[0].Entity)
	assert.True(t, errors.Is(result.Failures[0].Err, errors.ErrUnknownEntity))
	require.Len(t, result.Documents, 1)
}

func TestMergedPreservesOrder(t *testing.T) {
	c := testCatalog(t)

	result, err := Generate(c, ShapeSingle, ModeBasic)
	require.NoError(t, err)

	merged := result.Merged()
	assert.Equal(t, []string{"LocalizedString", "Base", "CharacterBackground"}, merged.Keys())

	nested, ok := merged.Get("Base").(*Template)
	require.True(t, ok)
	assert.Equal(t, []string{"uuid", "canonical_name"}, nested.Keys())
}

func TestRunIDsAreUnique(t *testing.T) {
	c := testCatalog(t)

	first, err := Generate(c, ShapeSingle, ModeBasic)
	require.NoError(t, err)
	second, err := Generate(c, ShapeSingle, ModeBasic)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}
