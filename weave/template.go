// Package weave is the template generator: it turns the schema catalog's
// entity definitions into empty, fillable document templates.
//
// The pipeline runs strictly downward: type resolution (resolve.go) feeds
// inheritance flattening (flatten.go) and template building (this file),
// which the catalog driver (generate.go) runs per entity. Serialization and
// persistence live in weave/render.
package weave

import (
	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/schema"
)

// Mode selects whether field descriptions are woven into the template.
type Mode string

const (
	// ModeFull interleaves a <field>_description entry after every
	// described field, and opens the template with the entity's own doc.
	ModeFull Mode = "full"
	// ModeBasic emits the bare field set, no description entries.
	ModeBasic Mode = "basic"
)

// Shape selects the output document layout.
type Shape string

const (
	// ShapeSingle merges all entity templates into one document.
	ShapeSingle Shape = "single"
	// ShapeSheets produces one independent document per entity.
	ShapeSheets Shape = "sheets"
)

// ParseMode validates a mode string from the CLI or config.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, ModeBasic:
		return Mode(s), nil
	}
	return "", errors.Newf("unknown mode %q (supported: full, basic)", s)
}

// ParseShape validates a shape string from the CLI or config.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeSingle, ShapeSheets:
		return Shape(s), nil
	}
	return "", errors.Newf("unknown shape %q (supported: single, sheets)", s)
}

// Placeholder is the resolved stand-in emitted for a field: a scalar token,
// an empty-container marker, an enumeration choice, a literal text, or an
// inlined nested template.
type Placeholder interface {
	placeholder()
}

// Token is a scalar type marker, e.g. "<str>", "<UUID>", "<utcnow>".
type Token string

// Text is a literal string carried verbatim into the output.
// Used for description entries.
type Text string

// EmptyList marks an ordered sequence left for the author to fill.
type EmptyList struct{}

// EmptyMap marks an order-preserving key-value container left for the
// author to fill. Also stands in for opaque metadata fields.
type EmptyMap struct{}

// EnumChoice is an enumeration placeholder. Values carries the allowed
// literals when full detail was requested, nil otherwise.
type EnumChoice struct {
	Name   string
	Values []string
}

// Template is an ordered field-name → placeholder mapping for one entity.
// Order is significant and preserved through serialization, so it is a
// slice of entries rather than a Go map.
type Template struct {
	Entries []Entry
}

// Entry is one key in a template.
type Entry struct {
	Key   string
	Value Placeholder
}

func (Token) placeholder()      {}
func (Text) placeholder()       {}
func (EmptyList) placeholder()  {}
func (EmptyMap) placeholder()   {}
func (EnumChoice) placeholder() {}
func (*Template) placeholder()  {}

// append adds an entry.
func (t *Template) append(key string, v Placeholder) {
	t.Entries = append(t.Entries, Entry{Key: key, Value: v})
}

// Keys returns the entry keys in order.
func (t *Template) Keys() []string {
	keys := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the placeholder for a key, or nil if absent.
func (t *Template) Get(key string) Placeholder {
	for _, e := range t.Entries {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// descriptionSuffix is the fixed convention for sibling description entries.
const descriptionSuffix = "_description"

// entityDocKey is the key carrying the entity's own doc in full mode.
const entityDocKey = "__description__"

// Builder builds entity templates against a read-only catalog.
// A Builder is a pure function of (catalog, mode): it holds no per-run
// state, so one builder may serve concurrent Build calls.
type Builder struct {
	catalog *schema.Catalog
	mode    Mode
}

// NewBuilder creates a builder for the given catalog and mode.
func NewBuilder(catalog *schema.Catalog, mode Mode) *Builder {
	return &Builder{catalog: catalog, mode: mode}
}

// Build produces the ordered template for one entity: flattened inherited
// fields first, directly-declared fields last, nested models expanded in
// place.
func (b *Builder) Build(entity *schema.Entity) (*Template, error) {
	fields, err := b.flatten(entity, nil)
	if err != nil {
		return nil, err
	}

	t := &Template{}
	if b.mode == ModeFull && entity.Doc != "" {
		t.append(entityDocKey, Text(entity.Doc))
	}

	for _, f := range fields {
		ph, err := b.placeholderFor(entity.Name, f)
		if err != nil {
			return nil, err
		}
		t.append(f.Name, ph)

		if b.mode == ModeFull && f.Description != "" {
			t.append(f.Name+descriptionSuffix, Text(f.Description))
		}
	}
	return t, nil
}

// placeholderFor synthesizes one field's placeholder: the default rule's
// marker when the declaration carries one, the resolved type otherwise.
// A zero-valued nested-model default still expands structurally, so the
// placeholder stays a complete template for the nested entity.
func (b *Builder) placeholderFor(entityName string, f schema.Field) (Placeholder, error) {
	switch f.Default {
	case schema.DefaultNewUUID:
		return Token("<uuid4>"), nil
	case schema.DefaultNow:
		return Token("<utcnow>"), nil
	case schema.DefaultEmptyList:
		return EmptyList{}, nil
	case schema.DefaultEmptyMap:
		return EmptyMap{}, nil
	}
	return b.resolve(entityName, f.Name, f.Type)
}
