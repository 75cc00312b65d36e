package schema

import "strings"

// SchemaType is the closed enumeration of JSON-Schema primitive types
// (spec.md §3), plus the INVALID sentinel for unrecognized spellings.
type SchemaType int

const (
	TypeNull SchemaType = iota
	TypeBoolean
	TypeObject
	TypeArray
	TypeNumber
	TypeInteger
	TypeString
	TypeInvalid
)

// orderedTypes fixes the iteration order of TypeSet.Types, TypeSet.Count
// and ValidTypeNameList, so they are deterministic regardless of how the
// set was populated. Emitted type-check disjunctions do not use it: they
// list types in the order the schema gives them.
var orderedTypes = []SchemaType{
	TypeNull, TypeBoolean, TypeObject, TypeArray, TypeNumber, TypeInteger, TypeString,
}

var typeSpelling = map[SchemaType]string{
	TypeNull:    "null",
	TypeBoolean: "boolean",
	TypeObject:  "object",
	TypeArray:   "array",
	TypeNumber:  "number",
	TypeInteger: "integer",
	TypeString:  "string",
}

var typeByName = func() map[string]SchemaType {
	m := make(map[string]SchemaType, len(typeSpelling))
	for t, n := range typeSpelling {
		m[n] = t
	}
	return m
}()

// runtimeHelper names the emitted-code function that tests a node against
// this type - the stable contract documented in spec.md §6. "number" has no
// hand-written helper in the original runtime snippet even though the
// compiler emits calls to it; the contract still names one, and the
// runtime helper library is required to provide it.
var runtimeHelper = map[SchemaType]string{
	TypeNull:    "IsNullType",
	TypeBoolean: "IsBoolType",
	TypeObject:  "IsObjectType",
	TypeArray:   "IsArrayType",
	TypeNumber:  "IsNumberType",
	TypeInteger: "IsIntegerType",
	TypeString:  "IsStringType",
}

// SchemaTypeName returns the canonical JSON-Schema spelling of t, or
// "INVALID" if t is not one of the seven primitive types.
func SchemaTypeName(t SchemaType) string {
	if n, ok := typeSpelling[t]; ok {
		return n
	}
	return "INVALID"
}

// ParseSchemaType resolves a spelling to its SchemaType, or TypeInvalid if
// the spelling is not recognized.
func ParseSchemaType(name string) SchemaType {
	if t, ok := typeByName[name]; ok {
		return t
	}
	return TypeInvalid
}

// RuntimeHelperName returns the emitted-code helper function name for t
// (spec.md §4.2, §6). The compiler never calls these itself; it only
// emits references to them.
func RuntimeHelperName(t SchemaType) string {
	return runtimeHelper[t]
}

// ValidTypeNameList is a precomputed, comma-separated listing of every
// valid type spelling, used in "not a valid type" diagnostics. Built once
// at package initialization, after typeSpelling is populated (spec.md §5).
var ValidTypeNameList = buildValidTypeNameList()

func buildValidTypeNameList() string {
	var b strings.Builder
	for i, t := range orderedTypes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(typeSpelling[t])
		b.WriteByte('\'')
	}
	return b.String()
}

// TypeSet is a small bitset over SchemaType (spec.md §3).
type TypeSet uint8

// FullTypeSet returns the TypeSet containing every primitive type - the
// default when a schema position has no "type" property (spec.md §4.5,
// §4.6 step 3).
func FullTypeSet() TypeSet {
	var s TypeSet
	for _, t := range orderedTypes {
		s = s.with(t)
	}
	return s
}

func (s TypeSet) with(t SchemaType) TypeSet {
	return s | (1 << uint(t))
}

// Set adds t to the set.
func (s *TypeSet) Set(t SchemaType) {
	*s = s.with(t)
}

// Has reports whether t is a member of the set.
func (s TypeSet) Has(t SchemaType) bool {
	return s&(1<<uint(t)) != 0
}

// Count returns the number of member types.
func (s TypeSet) Count() int {
	n := 0
	for _, t := range orderedTypes {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Types returns the member types in the fixed, deterministic declaration
// order (spec.md §5's ordering guarantee).
func (s TypeSet) Types() []SchemaType {
	out := make([]SchemaType, 0, s.Count())
	for _, t := range orderedTypes {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
