package search

// Contains reports whether target is present in s, which must be sorted
// under less.
//
// It takes the lower bound of !less(e, target) and accepts the boundary
// element when target is not less than it, i.e. the two are equivalent.
//
// Complexity: O(log n).
func Contains[S ~[]E, E any](s S, target E, less LessFunc[E]) bool {
	_, ok := Find(s, target, less)

	return ok
}

// Find returns the position where target is, or would be inserted, in s,
// and whether it is actually present. s must be sorted under less.
func Find[S ~[]E, E any](s S, target E, less LessFunc[E]) (int, bool) {
	i := LowerBound(s, func(e E) bool { return !less(e, target) })

	return i, i < len(s) && !less(target, s[i])
}

// ContainsFunc is Contains for a three-way comparison against a target of
// a possibly different type, e.g. a key field of a struct element.
func ContainsFunc[S ~[]E, E, T any](s S, target T, cmp CompareFunc[E, T]) bool {
	_, ok := FindFunc(s, target, cmp)

	return ok
}

// FindFunc is Find for a three-way comparison.
func FindFunc[S ~[]E, E, T any](s S, target T, cmp CompareFunc[E, T]) (int, bool) {
	i := LowerBound(s, func(e E) bool { return cmp(e, target) >= 0 })

	return i, i < len(s) && cmp(s[i], target) == 0
}

// ContainsPredicate reports membership using a predicate pair:
//
//	atLeast(e) — e is ordered at or above the target (monotonic false→true)
//	greater(e) — e is ordered strictly above the target
//
// The element at LowerBound(s, atLeast) is the target iff it exists and
// is not greater.
func ContainsPredicate[S ~[]E, E any](s S, atLeast, greater Predicate[E]) bool {
	i := LowerBound(s, atLeast)

	return i < len(s) && !greater(s[i])
}
