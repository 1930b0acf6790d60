package lorecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypertech/loreweave/schema"
	"github.com/hypertech/loreweave/weave"
)

func TestCatalogContents(t *testing.T) {
	c := Catalog()

	assert.Equal(t, 41, c.Len(), "entity count")
	assert.Len(t, c.Enums(), 4, "enum count")

	for _, name := range []string{
		"BaseEntity", "LocalizedString", "Relationship",
		"CharacterSheet", "Item", "Location", "Faction", "Event",
		"WorldSheet", "Timeline", "UniverseSheet",
		"WorldSimulation", "SimulationSheet", "Memories",
	} {
		_, ok := c.Entity(name)
		assert.True(t, ok, "entity %s should be registered", name)
	}

	rarity, ok := c.Enum("Rarity")
	require.True(t, ok)
	assert.Equal(t, []string{"Common", "Uncommon", "Rare", "Very Rare", "Legendary", "Unique"}, rarity.Values)
}

func TestCatalogIsSingleton(t *testing.T) {
	assert.Same(t, Catalog(), Catalog())
}

func TestBaseEntityInheritance(t *testing.T) {
	c := Catalog()
	sheet, ok := c.Entity("CharacterSheet")
	require.True(t, ok)

	fields, err := weave.Flatten(c, sheet)
	require.NoError(t, err)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	// Mixin fields come first, then BaseEntity's own, then the sheet's.
	assert.Equal(t, "version", names[0])
	assert.Contains(t, names, "uuid")
	assert.Contains(t, names, "canonical_name")
	assert.Contains(t, names, "race")
	assert.Less(t, indexOf(names, "uuid"), indexOf(names, "race"))
}

// Every registered entity must reference only registered models and
// enums, and must build a template in both modes without error.
func TestEveryEntityBuilds(t *testing.T) {
	c := Catalog()
	for _, mode := range []weave.Mode{weave.ModeFull, weave.ModeBasic} {
		b := weave.NewBuilder(c, mode)
		for _, e := range c.Entities() {
			_, err := b.Build(e)
			assert.NoError(t, err, "entity %s, mode %s", e.Name, mode)
		}
	}
}

func TestModelReferencesResolve(t *testing.T) {
	c := Catalog()
	for _, e := range c.Entities() {
		for _, f := range e.Fields {
			checkRefs(t, c, e.Name+"."+f.Name, f.Type)
		}
		for _, base := range e.Bases {
			_, ok := c.Entity(base)
			assert.True(t, ok, "base %s of %s", base, e.Name)
		}
	}
}

func checkRefs(t *testing.T, c *schema.Catalog, at string, tr schema.TypeRef) {
	t.Helper()
	switch tr.Kind {
	case schema.KindModel:
		_, ok := c.Entity(tr.Name)
		assert.True(t, ok, "model %s referenced at %s", tr.Name, at)
	case schema.KindEnum:
		_, ok := c.Enum(tr.Name)
		assert.True(t, ok, "enum %s referenced at %s", tr.Name, at)
	case schema.KindOptional, schema.KindList:
		checkRefs(t, c, at, *tr.Elem)
	case schema.KindMap:
		checkRefs(t, c, at, *tr.Key)
		checkRefs(t, c, at, *tr.Elem)
	case schema.KindUnion:
		for _, alt := range tr.Alts {
			checkRefs(t, c, at, alt)
		}
	}
}

func indexOf(ss []string, want string) int {
	for i, s := range ss {
		if s == want {
			return i
		}
	}
	return -1
}
