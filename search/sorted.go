package search

// IsSorted reports whether s is in non-decreasing order under less, i.e.
// no adjacent pair satisfies less(s[i+1], s[i]).
//
// Empty and single-element slices are sorted.
//
// Complexity: O(n) time, O(1) memory.
func IsSorted[S ~[]E, E any](s S, less LessFunc[E]) bool {
	return FirstInversion(s, less) == -1
}

// FirstInversion returns the index of the first element that is less than
// its predecessor, or -1 if s is sorted.
//
// Complexity: O(n) time, O(1) memory.
func FirstInversion[S ~[]E, E any](s S, less LessFunc[E]) int {
	if len(s) < 2 {
		return -1
	}
	prev := s[0]
	for i := 1; i < len(s); i++ {
		if less(s[i], prev) {
			return i
		}
		prev = s[i]
	}

	return -1
}

// IsStrictlySorted reports whether s is strictly increasing under less.
// Equal neighbours (neither less than the other) make it return false.
func IsStrictlySorted[S ~[]E, E any](s S, less LessFunc[E]) bool {
	for i := 1; i < len(s); i++ {
		if !less(s[i-1], s[i]) {
			return false
		}
	}

	return true
}
