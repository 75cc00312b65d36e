package schema

// Property is the closed enumeration of schema-object keys the compiler
// recognizes (spec.md §3, §4.4). Anything else encountered in a mapping is
// an unknown property and triggers a warning rather than a hard failure.
type Property int

const (
	PropType Property = iota
	PropProperties
	PropRequired
	PropItems
	PropMinItems
	PropMaxItems
	PropOneOf
	PropAnyOf
	PropEnum
	PropRef
	PropDefinitions
	propCount
)

var propSpelling = map[Property]string{
	PropType:        "type",
	PropProperties:  "properties",
	PropRequired:    "required",
	PropItems:       "items",
	PropMinItems:    "minItems",
	PropMaxItems:    "maxItems",
	PropOneOf:       "oneOf",
	PropAnyOf:       "anyOf",
	PropEnum:        "enum",
	PropRef:         "$ref",
	PropDefinitions: "definitions",
}

var propByName = func() map[string]Property {
	m := make(map[string]Property, len(propSpelling))
	for p, n := range propSpelling {
		m[n] = p
	}
	return m
}()

// PropertyName returns the JSON key this Property corresponds to.
func PropertyName(p Property) string {
	return propSpelling[p]
}

// ParseProperty resolves a JSON key to its Property, with ok=false for any
// key outside the recognized set (the unknown-property-warns case).
func ParseProperty(name string) (Property, bool) {
	p, ok := propByName[name]
	return p, ok
}

// PropertySet is a bitset over Property, for recording which recognized
// properties were present at a mapping node. The compiler's "$ref with
// siblings" check does not use it; it counts the mapping's pairs instead.
type PropertySet uint16

// Set adds p to the set.
func (s *PropertySet) Set(p Property) {
	*s |= 1 << uint(p)
}

// Has reports whether p is a member of the set.
func (s PropertySet) Has(p Property) bool {
	return s&(1<<uint(p)) != 0
}

// Count returns the number of member properties.
func (s PropertySet) Count() int {
	n := 0
	for p := Property(0); p < propCount; p++ {
		if s.Has(p) {
			n++
		}
	}
	return n
}
