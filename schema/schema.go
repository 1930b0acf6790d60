// Package schema defines the catalog data structure the generator consumes:
// entity definitions with ordered field declarations, base/mixin relations,
// enumerations, and a closed tagged union of type shapes.
//
// Entities are concrete values built once at startup from a registration
// list. There is no runtime reflection anywhere in the type graph; the
// resolver stays a total function over the Kind variants below.
package schema

import "strings"

// Kind enumerates the closed set of type shapes a field may declare.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindUUID // identifier reference; relational, never structurally expanded
	KindTimestamp
	KindAny  // opaque value, contents never inspected
	KindNull // the none alternative inside unions
	KindOptional
	KindUnion
	KindList
	KindMap
	KindEnum
	KindModel // reference to another entity definition, expanded inline
)

// TypeRef is a tagged union describing a field's declared type.
// Exactly the fields relevant to Kind are set; the rest stay zero.
type TypeRef struct {
	Kind Kind
	Elem *TypeRef  // KindOptional, KindList element; KindMap value
	Key  *TypeRef  // KindMap key
	Alts []TypeRef // KindUnion alternatives, in declaration order
	Name string    // KindEnum, KindModel
}

// Shorthand constructors keep catalog declarations readable.

func String() TypeRef    { return TypeRef{Kind: KindString} }
func Int() TypeRef       { return TypeRef{Kind: KindInt} }
func Float() TypeRef     { return TypeRef{Kind: KindFloat} }
func Bool() TypeRef      { return TypeRef{Kind: KindBool} }
func UUID() TypeRef      { return TypeRef{Kind: KindUUID} }
func Timestamp() TypeRef { return TypeRef{Kind: KindTimestamp} }
func Any() TypeRef       { return TypeRef{Kind: KindAny} }
func Null() TypeRef      { return TypeRef{Kind: KindNull} }

func Optional(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindOptional, Elem: &elem}
}

func Union(alts ...TypeRef) TypeRef {
	return TypeRef{Kind: KindUnion, Alts: alts}
}

func List(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindList, Elem: &elem}
}

func Map(key, value TypeRef) TypeRef {
	return TypeRef{Kind: KindMap, Key: &key, Elem: &value}
}

func EnumOf(name string) TypeRef {
	return TypeRef{Kind: KindEnum, Name: name}
}

func Model(name string) TypeRef {
	return TypeRef{Kind: KindModel, Name: name}
}

// String renders the declared type the way a schema author would write it.
// Used in resolution error messages.
func (t TypeRef) String() string {
	switch t.Kind {
	case KindString:
		return "str"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindUUID:
		return "UUID"
	case KindTimestamp:
		return "datetime"
	case KindAny:
		return "Any"
	case KindNull:
		return "None"
	case KindOptional:
		return "optional<" + t.Elem.String() + ">"
	case KindUnion:
		alts := make([]string, len(t.Alts))
		for i, a := range t.Alts {
			alts[i] = a.String()
		}
		return "union<" + strings.Join(alts, ", ") + ">"
	case KindList:
		return "list<" + t.Elem.String() + ">"
	case KindMap:
		return "map<" + t.Key.String() + ", " + t.Elem.String() + ">"
	case KindEnum, KindModel:
		return t.Name
	default:
		return "unknown"
	}
}

// DefaultRule names how a field's value is synthesized when an instance is
// created. For template generation only the rule's marker matters; actual
// value generation belongs to whatever fills the template in.
type DefaultRule int

const (
	NoDefault DefaultRule = iota
	DefaultNewUUID
	DefaultNow
	DefaultEmptyList
	DefaultEmptyMap
	DefaultEmptyModel // zero-valued nested model; the template still expands it
)

// Field is a single field declaration on an entity.
type Field struct {
	Name        string
	Type        TypeRef
	Description string
	Default     DefaultRule
}

// Entity is a named schema definition with ordered fields and zero or more
// base definitions (mixins, left-to-right). Immutable once registered.
type Entity struct {
	Name   string
	Doc    string
	Bases  []string
	Fields []Field
}

// Enum is a named enumeration with its ordered set of allowed literal values.
type Enum struct {
	Name   string
	Doc    string
	Values []string
}
