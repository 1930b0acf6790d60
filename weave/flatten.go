package weave

import (
	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/schema"
)

// Flatten walks an entity's base chain depth-first, bases left-to-right,
// and returns the complete deduplicated field list: inherited fields first
// in first-occurrence order, the entity's own declarations last.
//
// When a field name recurs, the most-derived declaration wins its type,
// description and default, but the field keeps the position of its first
// occurrence — base definitions establish order, subclasses only override
// metadata.
func Flatten(catalog *schema.Catalog, entity *schema.Entity) ([]schema.Field, error) {
	b := &Builder{catalog: catalog}
	return b.flatten(entity, nil)
}

// flatten implements the depth-first walk. stack holds the entities on the
// current chain; revisiting one means the catalog's base graph has a cycle
// and the walk fails with the chain that closed the loop.
func (b *Builder) flatten(entity *schema.Entity, stack []string) ([]schema.Field, error) {
	for _, name := range stack {
		if name == entity.Name {
			return nil, errors.NewCyclicInheritanceError(entity.Name, stack)
		}
	}
	stack = append(stack, entity.Name)

	var ordered []schema.Field
	index := make(map[string]int)

	merge := func(fields []schema.Field) {
		for _, f := range fields {
			if i, seen := index[f.Name]; seen {
				ordered[i] = f // most-derived declaration wins, position stays
				continue
			}
			index[f.Name] = len(ordered)
			ordered = append(ordered, f)
		}
	}

	for _, baseName := range entity.Bases {
		base, ok := b.catalog.Entity(baseName)
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnknownEntity,
				"%s lists base %s, which the catalog does not define", entity.Name, baseName)
		}
		baseFields, err := b.flatten(base, stack)
		if err != nil {
			return nil, err
		}
		merge(baseFields)
	}

	merge(entity.Fields)
	return ordered, nil
}
