// Package lorecore defines the worldbuilding entity catalog: the base
// models and mixins, enumerations, and the character, item, location,
// faction, event, world, timeline and simulation schemas the generator
// turns into templates.
//
// The catalog is plain data. Registration order matters: it is the order
// entities appear in generated output.
package lorecore

import (
	"sync"

	"github.com/hypertech/loreweave/schema"
)

var (
	catalog     *schema.Catalog
	catalogOnce sync.Once
)

// Catalog returns the lorecore entity catalog, built on first use and
// shared afterwards. The catalog is immutable once built.
func Catalog() *schema.Catalog {
	catalogOnce.Do(func() {
		c := schema.NewCatalog()
		registerBaseModels(c)
		registerEnums(c)
		registerCharacterModels(c)
		registerItemModels(c)
		registerLocationModels(c)
		registerFactionModels(c)
		registerEventModels(c)
		registerWorldModels(c)
		registerSimulationModels(c)
		catalog = c
	})
	return catalog
}

// Name is the catalog's name, used for the single-shape output file.
const Name = "lorecore"
