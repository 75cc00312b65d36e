package compiler

import (
	"fmt"
	"strings"

	"github.com/SolidWallOfCode/canned-yaml/internal/diagnostics"
	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// Definitions maps canonical $ref strings to generated validator function
// identifiers (spec.md §3's Definition Entry, §4.4). It never removes or
// rewrites an entry once inserted, and insertion always happens before the
// referenced target is traversed - the discipline that breaks $ref cycles
// by construction (spec.md §4.4, §9).
type Definitions struct {
	byRef   map[string]string
	order   []string
	pending []pendingDef
}

// pendingDef is a registered definition whose body has not yet been
// generated. Generation is deferred to a worklist drained between
// top-level function bodies (see drainDefinitions in process.go) rather
// than performed inline at the $ref site, since a new function
// declaration can never be emitted textually inside another function's
// still-open body. ref and useNode are kept so a generation failure can
// be reported with both the target's and the use site's position.
type pendingDef struct {
	id      string
	ref     string
	target  schema.Node
	useNode schema.Node
}

func newDefinitions() *Definitions {
	return &Definitions{byRef: map[string]string{}}
}

// Register returns the identifier for ref, inserting a fresh one if ref
// has not been seen before and queuing its body for later generation.
// isNew tells the caller whether this call did the inserting - on a
// repeat reference the identifier is simply reused and nothing is
// queued again. useNode is the $ref site that caused this registration,
// kept so a later generation failure can name where the reference was
// used, not just the failing target.
func (d *Definitions) Register(ref string, target, useNode schema.Node) (id string, isNew bool) {
	if id, ok := d.byRef[ref]; ok {
		return id, false
	}
	id = identifierFor(ref)
	d.byRef[ref] = id
	d.order = append(d.order, ref)
	d.pending = append(d.pending, pendingDef{id: id, ref: ref, target: target, useNode: useNode})
	return id, true
}

// Lookup reports the identifier already registered for ref, if any.
func (d *Definitions) Lookup(ref string) (string, bool) {
	id, ok := d.byRef[ref]
	return id, ok
}

// Order returns the $ref strings in the order they were first registered
// - the order the header emits their declarations in.
func (d *Definitions) Order() []string {
	return d.order
}

// identifierFor derives a legal identifier from a canonical reference
// string: strip the leading "#/", replace every non-alphanumeric character
// with an underscore, and prefix with "v_" so the result can never collide
// with a language keyword (spec.md §4.4).
func identifierFor(ref string) string {
	trimmed := strings.TrimPrefix(ref, "#/")
	var b strings.Builder
	b.WriteString("v_")
	for _, r := range trimmed {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// Locate resolves a canonical reference string against root. The
// canonical form starts with "#/" followed by "/"-delimited mapping keys;
// resolution is pure and never emits (spec.md §4.4).
func Locate(root schema.Node, ref string) diagnostics.Rv[schema.Node] {
	var rv diagnostics.Rv[schema.Node]

	if !strings.HasPrefix(ref, "#/") {
		rv.Errata.Error("%q is not a supported reference form", ref)
		return rv
	}

	cur := root
	prefix := "#"
	for _, elt := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		if cur.Kind() != schema.KindMapping {
			rv.Errata.Error("%q is not a map", elt)
			return rv
		}
		child, ok := cur.Get(elt)
		if !ok {
			rv.Errata.Error("%q is not in the map %s at %s", elt, prefix, position(cur))
			return rv
		}
		cur = child
		prefix = prefix + "/" + elt
	}
	rv.Value = cur
	return rv
}

func position(n schema.Node) string {
	return fmt.Sprintf("%d:%d", n.Line(), n.Column())
}
