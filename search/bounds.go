package search

// LowerBound / UpperBound — partition points
//
// Description:
//
//	A monotonic predicate splits a sorted sequence into two runs. The
//	partition point is the index where the predicate flips. LowerBound
//	finds the first index where a false→true predicate becomes true;
//	UpperBound finds the first index where a true→false predicate
//	becomes false.
//
// Algorithm Outline (both bounds):
//  1. first = 0, count = n. The answer always lies in [first, first+count].
//  2. While count > 0:
//     half = count / 2, mid = first + half
//     if mid belongs to the prefix: first = mid + 1, count -= half + 1
//     else:                         count = half
//  3. Return first.
//
// The two procedures differ in which predicate outcome means "prefix",
// so the branch that moves first is swapped rather than negated in place.
//
// Complexity:
//
//	Time   = O(log n) predicate calls
//	Memory = O(1)
//
// Only indices in [0, n) are ever probed.

// LowerBoundIndex returns the smallest i in [0, n) for which pred(i) is
// true, or n if there is none. pred must be false on a prefix of [0, n)
// and true on the remaining suffix.
//
// LowerBoundIndex is the index form of LowerBound; use it for random-access
// collections that are not slices.
func LowerBoundIndex(n int, pred func(i int) bool) int {
	first, count := 0, n
	for count > 0 {
		half := count >> 1
		mid := first + half
		if !pred(mid) {
			// mid and everything before it is excluded
			first = mid + 1
			count -= half + 1
		} else {
			count = half
		}
	}

	return first
}

// UpperBoundIndex returns the smallest i in [0, n) for which pred(i) is
// false, or n if there is none. pred must be true on a prefix of [0, n)
// and false on the remaining suffix.
func UpperBoundIndex(n int, pred func(i int) bool) int {
	first, count := 0, n
	for count > 0 {
		half := count >> 1
		mid := first + half
		if pred(mid) {
			// mid is still in the prefix
			first = mid + 1
			count -= half + 1
		} else {
			count = half
		}
	}

	return first
}

// LowerBound returns the smallest index i such that pred(s[i]) is true,
// or len(s) if pred is false for every element.
//
// pred must be monotonic over s: false for a prefix, true for the rest.
//
// Example:
//
//	s := []int{1, 2, 3, 3, 3, 3, 4, 5}
//	LowerBound(s, func(x int) bool { return x >= 3 }) // 2
func LowerBound[S ~[]E, E any](s S, pred Predicate[E]) int {
	return LowerBoundIndex(len(s), func(i int) bool { return pred(s[i]) })
}

// UpperBound returns the smallest index i such that pred(s[i]) is false,
// or len(s) if pred holds for every element.
//
// pred reports "still in the lower partition": true for a prefix, false
// for the rest.
//
// Example:
//
//	s := []int{1, 2, 3, 3, 3, 3, 4, 5}
//	UpperBound(s, func(x int) bool { return x <= 3 }) // 6
func UpperBound[S ~[]E, E any](s S, pred Predicate[E]) int {
	return UpperBoundIndex(len(s), func(i int) bool { return pred(s[i]) })
}
