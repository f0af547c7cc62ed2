// Package search provides order-statistics primitives over sorted
// sequences: sortedness checks, lower/upper bound partition points,
// membership tests and equal-range queries.
//
// What
//
//   - IsSorted / FirstInversion / IsStrictlySorted — O(n) order checks.
//   - LowerBound — first index where a false→true predicate becomes true.
//   - UpperBound — first index where a true→false predicate becomes false.
//   - Contains / Find / ContainsFunc / ContainsPredicate — membership,
//     built strictly on LowerBound.
//   - EqualRange / Count / Range — index spans for range filters.
//   - *Of helpers — the same operations for constraints.Ordered elements.
//   - Checked* / RequireSorted — fail fast with ErrNotSorted.
//
// Why predicates
//
//	Every search is phrased as a monotonic predicate rather than a value
//	comparison. "x < v" and "x <= v" are then just two predicates over the
//	same algorithm, and keys, projections or descending orders need no
//	extra variants.
//
// Contract
//
//	A predicate passed to LowerBound must be false on a prefix of the
//	sequence and true on the rest; one passed to UpperBound must be true on
//	a prefix and false on the rest. This is not checked: a non-monotonic
//	predicate yields some index in [0, len(s)] with no further meaning.
//	Sortedness is only checked by the Checked* functions and RequireSorted.
//
// Complexity
//
//   - Bounds, membership, ranges: O(log n) time, O(1) memory.
//   - Sortedness checks:          O(n) time, O(1) memory.
//
// Concurrency
//
//	All functions are pure and never mutate s. Concurrent calls over the
//	same slice are safe as long as nobody writes to it meanwhile.
//
// Usage
//
//	s := []int{1, 2, 3, 3, 3, 3, 4, 5}
//	lo := search.LowerBound(s, func(x int) bool { return x >= 3 }) // 2
//	hi := search.UpperBound(s, func(x int) bool { return x <= 3 }) // 6
//	ok := search.ContainsOf(s, 4)                                  // true
//
//	if _, err := search.CheckedLowerBound(data, pred, less); errors.Is(err, search.ErrNotSorted) {
//		// handle unsorted input
//	}
package search
