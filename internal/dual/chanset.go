package dual

// Set is an ordered collection of distinct channel indices. A channel names
// one independent variable being differentiated against.
//
// The algebra below is total and pure: empty inputs are valid, results never
// alias their inputs, and first-operand ordering is preserved so that merged
// results have a deterministic layout. Nothing may assume the layout beyond
// that: derivative lookups always go through the channel index, never through
// physical position.
type Set []int

// Has reports whether channel c is in the set.
func (s Set) Has(c int) bool {
	for _, e := range s {
		if e == c {
			return true
		}
	}
	return false
}

// Clone returns a copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// Equal reports whether two sets hold the same channels in the same order.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Dedup returns the distinct channels of s, keeping the first occurrence of
// each.
func Dedup(s Set) Set {
	out := make(Set, 0, len(s))
	for _, c := range s {
		if !out.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Union returns a's channels followed by b's channels not already in a.
func Union(a, b Set) Set {
	return Dedup(Concat(a, b))
}

// Intersection returns the channels of a that also occur in b, in a's order.
func Intersection(a, b Set) Set {
	out := make(Set, 0, len(a))
	for _, c := range a {
		if b.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Difference returns the channels of a that do not occur in b, in a's order.
func Difference(a, b Set) Set {
	out := make(Set, 0, len(a))
	for _, c := range a {
		if !b.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Concat concatenates sets without deduplication. Callers must guarantee the
// inputs are disjoint when the result is used as a channel set.
func Concat(sets ...Set) Set {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(Set, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// Sequence returns the n consecutive channels start, start+1, ..., start+n-1.
func Sequence(start, n int) Set {
	out := make(Set, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// Merge computes the canonical channel split for a binary operation over the
// left set l and right set r:
//
//	common = Intersection(l, r)
//	onlyL  = Difference(l, common)
//	onlyR  = Difference(r, common)
//	result = Concat(onlyL, common, onlyR)
//
// common channels take the two-sided derivative rule, onlyL and onlyR the
// one-sided rules. The three parts are disjoint, so result is a valid set.
func Merge(l, r Set) (common, onlyL, onlyR, result Set) {
	common = Intersection(l, r)
	onlyL = Difference(l, common)
	onlyR = Difference(r, common)
	result = Concat(onlyL, common, onlyR)
	return common, onlyL, onlyR, result
}
