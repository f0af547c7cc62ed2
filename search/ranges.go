package search

// EqualRange returns the half-open index span [lo, hi) of elements
// equivalent to target in s, which must be sorted under less.
// When target is absent, lo == hi is its insertion point.
//
// Complexity: O(log n).
func EqualRange[S ~[]E, E any](s S, target E, less LessFunc[E]) (lo, hi int) {
	lo = LowerBound(s, func(e E) bool { return !less(e, target) })
	// the run starts at lo, so only the tail needs searching
	hi = lo + UpperBound(s[lo:], func(e E) bool { return !less(target, e) })

	return lo, hi
}

// Count returns how many elements of the sorted s are equivalent to target.
func Count[S ~[]E, E any](s S, target E, less LessFunc[E]) int {
	lo, hi := EqualRange(s, target, less)

	return hi - lo
}

// Range returns the index span [from, to) of elements e of the sorted s
// with lo <= e < hi. An empty or inverted interval (hi <= lo) yields an
// empty span positioned at lo's insertion point.
func Range[S ~[]E, E any](s S, lo, hi E, less LessFunc[E]) (from, to int) {
	from = LowerBound(s, func(e E) bool { return !less(e, lo) })
	if !less(lo, hi) {
		return from, from
	}
	to = from + LowerBound(s[from:], func(e E) bool { return !less(e, hi) })

	return from, to
}
