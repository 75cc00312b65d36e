// Package runtime is the helper library the compiler's emitted code
// depends on at link time: the primitive type-check predicates and the
// structural-equality helper used by "enum" checks (spec.md §1, §6). The
// compilation engine in internal/compiler never calls these itself; it
// only emits references to them by name, so this package is the one
// piece of the stable contract with generated code that also ships with
// this module rather than being left to the host program.
//
// Grounded on the hand-rolled helpers in the original tool's runtime
// snippet (is_null_type, is_bool_type, is_array_type, is_object_type,
// is_integer_type, is_string_type, equal) - including the is_number_type
// helper the original referenced but never defined (spec.md §9).
package runtime

import (
	"strconv"

	"github.com/SolidWallOfCode/canned-yaml/schema"
)

// IsNullType reports whether node is JSON null.
func IsNullType(node schema.Node) bool {
	return node.Kind() == schema.KindNull
}

// IsBoolType reports whether node's scalar text is a valid boolean
// literal.
func IsBoolType(node schema.Node) bool {
	if node.Kind() != schema.KindScalar {
		return false
	}
	_, err := strconv.ParseBool(node.Scalar())
	return err == nil
}

// IsObjectType reports whether node is a mapping.
func IsObjectType(node schema.Node) bool {
	return node.Kind() == schema.KindMapping
}

// IsArrayType reports whether node is a sequence.
func IsArrayType(node schema.Node) bool {
	return node.Kind() == schema.KindSequence
}

// IsNumberType reports whether node's scalar text parses as any JSON
// number, integer or floating point.
func IsNumberType(node schema.Node) bool {
	if node.Kind() != schema.KindScalar {
		return false
	}
	_, err := strconv.ParseFloat(node.Scalar(), 64)
	return err == nil
}

// IsIntegerType reports whether node's scalar text parses as a base-10
// integer with no fractional component.
func IsIntegerType(node schema.Node) bool {
	if node.Kind() != schema.KindScalar {
		return false
	}
	_, err := strconv.ParseInt(node.Scalar(), 10, 64)
	return err == nil
}

// IsStringType reports whether node is a scalar. Every scalar has textual
// content, so numeric and boolean scalars also satisfy it; null does not,
// since a null node is KindNull rather than KindScalar.
func IsStringType(node schema.Node) bool {
	return node.Kind() == schema.KindScalar
}

// Equal is the runtime-facing structural equality check an emitted
// "enum" assertion compares the validated node against. It delegates to
// the same full-tree comparison the compiler itself uses when verifying
// the enum round-trip property, rather than the original tool's
// single-element shortcut.
func Equal(a, b schema.Node) bool {
	return schema.Equal(a, b)
}
