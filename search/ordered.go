package search

import "golang.org/x/exp/constraints"

// Value-keyed helpers for naturally ordered element types.
//
// Each helper only builds a predicate and defers to the predicate API, so
// there is a single search implementation. Floating-point NaN values are
// unordered and must not appear in s or as the target.

// AtLeast returns the predicate e >= v (false→true over ascending data).
func AtLeast[E constraints.Ordered](v E) Predicate[E] {
	return func(e E) bool { return e >= v }
}

// GreaterThan returns the predicate e > v (false→true over ascending data).
func GreaterThan[E constraints.Ordered](v E) Predicate[E] {
	return func(e E) bool { return e > v }
}

// LessThan returns the predicate e < v (true→false over ascending data).
func LessThan[E constraints.Ordered](v E) Predicate[E] {
	return func(e E) bool { return e < v }
}

// AtMost returns the predicate e <= v (true→false over ascending data).
func AtMost[E constraints.Ordered](v E) Predicate[E] {
	return func(e E) bool { return e <= v }
}

// Less is the natural ordering of E as a LessFunc.
func Less[E constraints.Ordered](a, b E) bool {
	return a < b
}

// IsSortedOf reports whether s is in ascending order.
func IsSortedOf[S ~[]E, E constraints.Ordered](s S) bool {
	return IsSorted(s, Less[E])
}

// LowerBoundOf returns the index of the first element >= v in the
// ascending s, or len(s).
func LowerBoundOf[S ~[]E, E constraints.Ordered](s S, v E) int {
	return LowerBound(s, AtLeast(v))
}

// UpperBoundOf returns the index of the first element > v in the
// ascending s, or len(s).
func UpperBoundOf[S ~[]E, E constraints.Ordered](s S, v E) int {
	return UpperBound(s, AtMost(v))
}

// ContainsOf reports whether v is present in the ascending s.
func ContainsOf[S ~[]E, E constraints.Ordered](s S, v E) bool {
	return ContainsPredicate(s, AtLeast(v), GreaterThan(v))
}

// EqualRangeOf returns the span [lo, hi) of elements equal to v.
func EqualRangeOf[S ~[]E, E constraints.Ordered](s S, v E) (lo, hi int) {
	return EqualRange(s, v, Less[E])
}

// CountOf returns the number of elements equal to v.
func CountOf[S ~[]E, E constraints.Ordered](s S, v E) int {
	return Count(s, v, Less[E])
}
