package weave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/schema"
)

func TestResolveScalarTokens(t *testing.T) {
	b := NewBuilder(schema.NewCatalog(), ModeBasic)

	cases := []struct {
		typ  schema.TypeRef
		want Token
	}{
		{schema.String(), "<str>"},
		{schema.Int(), "<int>"},
		{schema.Float(), "<float>"},
		{schema.Bool(), "<bool>"},
		{schema.UUID(), "<UUID>"},
		{schema.Timestamp(), "<datetime>"},
		{schema.Any(), "<Any>"},
	}
	for _, tc := range cases {
		got, err := b.resolve("E", "f", tc.typ)
		require.NoError(t, err, tc.typ.String())
		assert.Equal(t, tc.want, got, tc.typ.String())
	}
}

// optional<string> resolves exactly like string: the optional wrapper
// leaves no trace in the placeholder.
func TestResolveOptionalIsTransparent(t *testing.T) {
	b := NewBuilder(schema.NewCatalog(), ModeBasic)

	plain, err := b.resolve("E", "f", schema.String())
	require.NoError(t, err)
	wrapped, err := b.resolve("E", "f", schema.Optional(schema.String()))
	require.NoError(t, err)

	assert.Equal(t, plain, wrapped)
}

func TestResolveUnionFirstNonNull(t *testing.T) {
	b := NewBuilder(schema.NewCatalog(), ModeBasic)

	got, err := b.resolve("E", "f", schema.Union(schema.String(), schema.Int()))
	require.NoError(t, err)
	assert.Equal(t, Token("<str>"), got)

	// Leading nulls are skipped, not resolved.
	got, err = b.resolve("E", "f", schema.Union(schema.Null(), schema.Int(), schema.String()))
	require.NoError(t, err)
	assert.Equal(t, Token("<int>"), got)
}

func TestResolveAllNullUnionFails(t *testing.T) {
	b := NewBuilder(schema.NewCatalog(), ModeBasic)

	_, err := b.resolve("E", "f", schema.Union(schema.Null(), schema.Null()))
	require.Error(t, err)
	assert.True(t, errors.IsResolutionError(err))
}

func TestResolveContainersStayOpaque(t *testing.T) {
	b := NewBuilder(schema.NewCatalog(), ModeBasic)

	got, err := b.resolve("E", "f", schema.List(schema.Model("Missing")))
	require.NoError(t, err, "list contents are not expanded")
	assert.Equal(t, EmptyList{}, got)

	got, err = b.resolve("E", "f", schema.Map(schema.String(), schema.Model("Missing")))
	require.NoError(t, err)
	assert.Equal(t, EmptyMap{}, got)
}

func TestResolveEnumByMode(t *testing.T) {
	c := schema.NewCatalog()
	c.MustAddEnum(&schema.Enum{Name: "Rarity", Values: []string{"common", "rare"}})

	full, err := NewBuilder(c, ModeFull).resolve("E", "f", schema.EnumOf("Rarity"))
	require.NoError(t, err)
	assert.Equal(t, EnumChoice{Name: "Rarity", Values: []string{"common", "rare"}}, full)

	basic, err := NewBuilder(c, ModeBasic).resolve("E", "f", schema.EnumOf("Rarity"))
	require.NoError(t, err)
	assert.Equal(t, EnumChoice{Name: "Rarity"}, basic)
}

func TestResolveUnknownReferences(t *testing.T) {
	b := NewBuilder(schema.NewCatalog(), ModeBasic)

	_, err := b.resolve("E", "f", schema.EnumOf("Ghost"))
	require.Error(t, err)
	assert.True(t, errors.IsResolutionError(err))

	_, err = b.resolve("E", "f", schema.Model("Ghost"))
	require.Error(t, err)
	assert.True(t, errors.IsResolutionError(err))
}
