package schema

import (
	"github.com/hypertech/loreweave/errors"
)

// Catalog is an ordered registry of entity definitions and enumerations.
// Declaration order is enumeration order; generation output follows it.
//
// A catalog is built once at startup and read-only afterwards, so it is
// safe to share across goroutines without locking.
type Catalog struct {
	entities    []*Entity
	enums       []*Enum
	entityIndex map[string]*Entity
	enumIndex   map[string]*Enum
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		entityIndex: make(map[string]*Entity),
		enumIndex:   make(map[string]*Enum),
	}
}

// AddEntity registers an entity definition. Names must be unique.
func (c *Catalog) AddEntity(e *Entity) error {
	if e.Name == "" {
		return errors.New("entity name cannot be empty")
	}
	if _, exists := c.entityIndex[e.Name]; exists {
		return errors.Newf("duplicate entity definition: %s", e.Name)
	}
	c.entities = append(c.entities, e)
	c.entityIndex[e.Name] = e
	return nil
}

// AddEnum registers an enumeration. Names must be unique.
func (c *Catalog) AddEnum(e *Enum) error {
	if e.Name == "" {
		return errors.New("enum name cannot be empty")
	}
	if _, exists := c.enumIndex[e.Name]; exists {
		return errors.Newf("duplicate enum definition: %s", e.Name)
	}
	c.enums = append(c.enums, e)
	c.enumIndex[e.Name] = e
	return nil
}

// MustAddEntity registers an entity and panics on registration errors.
// Catalogs are static data assembled at startup; a bad registration is a
// programming error, not a runtime condition.
func (c *Catalog) MustAddEntity(e *Entity) {
	if err := c.AddEntity(e); err != nil {
		panic(err)
	}
}

// MustAddEnum registers an enum and panics on registration errors.
func (c *Catalog) MustAddEnum(e *Enum) {
	if err := c.AddEnum(e); err != nil {
		panic(err)
	}
}

// Entity looks up an entity definition by name.
func (c *Catalog) Entity(name string) (*Entity, bool) {
	e, ok := c.entityIndex[name]
	return e, ok
}

// Enum looks up an enumeration by name.
func (c *Catalog) Enum(name string) (*Enum, bool) {
	e, ok := c.enumIndex[name]
	return e, ok
}

// Entities returns all entity definitions in declaration order.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Entities() []*Entity {
	return c.entities
}

// Enums returns all enumerations in declaration order.
func (c *Catalog) Enums() []*Enum {
	return c.enums
}

// Len returns the number of registered entity definitions.
func (c *Catalog) Len() int {
	return len(c.entities)
}
