package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeRefString(t *testing.T) {
	cases := []struct {
		ref  TypeRef
		want string
	}{
		{String(), "str"},
		{Int(), "int"},
		{Float(), "float"},
		{Bool(), "bool"},
		{UUID(), "UUID"},
		{Timestamp(), "datetime"},
		{Any(), "Any"},
		{Null(), "None"},
		{Optional(String()), "optional<str>"},
		{Union(Null(), String(), Int()), "union<None, str, int>"},
		{List(UUID()), "list<UUID>"},
		{Map(String(), Float()), "map<str, float>"},
		{EnumOf("Alignment"), "Alignment"},
		{Model("LocalizedString"), "LocalizedString"},
		{Optional(Union(String(), Int())), "optional<union<str, int>>"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ref.String())
	}
}

func TestCatalogRegistration(t *testing.T) {
	cat := NewCatalog()

	require.NoError(t, cat.AddEntity(&Entity{Name: "Item"}))
	require.NoError(t, cat.AddEntity(&Entity{Name: "Location"}))
	require.NoError(t, cat.AddEnum(&Enum{Name: "Rarity", Values: []string{"Common", "Rare"}}))

	e, ok := cat.Entity("Item")
	require.True(t, ok)
	assert.Equal(t, "Item", e.Name)

	_, ok = cat.Entity("Ghost")
	assert.False(t, ok)

	en, ok := cat.Enum("Rarity")
	require.True(t, ok)
	assert.Equal(t, []string{"Common", "Rare"}, en.Values)

	assert.Equal(t, 2, cat.Len())
}

func TestCatalogDeclarationOrder(t *testing.T) {
	cat := NewCatalog()
	for _, name := range []string{"Zebra", "Apple", "Middle"} {
		require.NoError(t, cat.AddEntity(&Entity{Name: name}))
	}

	var got []string
	for _, e := range cat.Entities() {
		got = append(got, e.Name)
	}
	// Declaration order, not alphabetical
	assert.Equal(t, []string{"Zebra", "Apple", "Middle"}, got)
}

func TestCatalogDuplicateEntity(t *testing.T) {
	cat := NewCatalog()
	require.NoError(t, cat.AddEntity(&Entity{Name: "Item"}))

	err := cat.AddEntity(&Entity{Name: "Item"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	assert.Panics(t, func() {
		cat.MustAddEntity(&Entity{Name: "Item"})
	})
}

func TestCatalogEmptyName(t *testing.T) {
	cat := NewCatalog()
	assert.Error(t, cat.AddEntity(&Entity{}))
	assert.Error(t, cat.AddEnum(&Enum{}))
}
