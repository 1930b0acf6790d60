package weave

import (
	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/schema"
)

// Scalar markers, matching the original template vocabulary.
const (
	tokenString    = Token("<str>")
	tokenInt       = Token("<int>")
	tokenFloat     = Token("<float>")
	tokenBool      = Token("<bool>")
	tokenUUID      = Token("<UUID>")
	tokenTimestamp = Token("<datetime>")
	tokenAny       = Token("<Any>")
)

// resolve maps a declared type to its canonical placeholder.
//
// Resolution is deterministic: the same declaration always yields the same
// placeholder. Optional and union wrappers unwrap to their first non-null
// alternative; container contents are never expanded; model references
// recurse through Build, which terminates because structural nesting in the
// catalog is acyclic.
func (b *Builder) resolve(entityName, fieldName string, t schema.TypeRef) (Placeholder, error) {
	switch t.Kind {
	case schema.KindString:
		return tokenString, nil
	case schema.KindInt:
		return tokenInt, nil
	case schema.KindFloat:
		return tokenFloat, nil
	case schema.KindBool:
		return tokenBool, nil
	case schema.KindUUID:
		return tokenUUID, nil
	case schema.KindTimestamp:
		return tokenTimestamp, nil
	case schema.KindAny:
		return tokenAny, nil

	case schema.KindOptional:
		return b.resolveFirstNonNull(entityName, fieldName, t, []schema.TypeRef{*t.Elem})

	case schema.KindUnion:
		return b.resolveFirstNonNull(entityName, fieldName, t, t.Alts)

	case schema.KindList:
		return EmptyList{}, nil

	case schema.KindMap:
		return EmptyMap{}, nil

	case schema.KindEnum:
		enum, ok := b.catalog.Enum(t.Name)
		if !ok {
			return nil, errors.NewResolutionError(entityName, fieldName, t.String())
		}
		choice := EnumChoice{Name: enum.Name}
		if b.mode == ModeFull {
			choice.Values = enum.Values
		}
		return choice, nil

	case schema.KindModel:
		nested, ok := b.catalog.Entity(t.Name)
		if !ok {
			return nil, errors.NewResolutionError(entityName, fieldName, t.String())
		}
		// Structural substitution: the nested entity's own complete
		// template becomes the placeholder.
		return b.Build(nested)
	}

	return nil, errors.NewResolutionError(entityName, fieldName, t.String())
}

// resolveFirstNonNull unwraps an optional/union to its first non-null
// alternative. A union of only null alternatives has no representable
// placeholder and fails resolution.
func (b *Builder) resolveFirstNonNull(entityName, fieldName string, declared schema.TypeRef, alts []schema.TypeRef) (Placeholder, error) {
	for _, alt := range alts {
		if alt.Kind == schema.KindNull {
			continue
		}
		return b.resolve(entityName, fieldName, alt)
	}
	return nil, errors.WithHint(
		errors.NewResolutionError(entityName, fieldName, declared.String()),
		"a union needs at least one non-null alternative")
}
