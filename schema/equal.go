package schema

// Equal reports whether two nodes are structurally identical: same Kind,
// same scalar text, same mapping keys each with equal values regardless of
// key order, same sequence length with every element pairwise equal.
//
// The original tool's equivalent helper compared only the first element of
// a sequence, or the first pair of a map, before returning true - a bug
// that let any two same-length sequences or same-size maps compare equal
// as long as their first entries matched. The enum round-trip property
// this package is built to support needs real structural equality, so the
// comparison here walks every element.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull:
		return true
	case KindScalar:
		return a.Scalar() == b.Scalar()
	case KindSequence:
		ai, bi := a.Items(), b.Items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !Equal(ai[i], bi[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		ap, bp := a.Pairs(), b.Pairs()
		if len(ap) != len(bp) {
			return false
		}
		bv := make(map[string]Node, len(bp))
		for _, p := range bp {
			bv[p.Key] = p.Value
		}
		for _, p := range ap {
			other, ok := bv[p.Key]
			if !ok || !Equal(p.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
