package search

import "fmt"

// Checked variants
//
// The plain functions trust the caller: they neither verify sortedness
// (which would cost O(n)) nor guard against nil functions. The variants
// below do both and fail fast with a sentinel error instead of searching
// meaningless data. Predicate monotonicity is still not verified.
//
// Errors:
//   - ErrNilLess       — less is nil.
//   - ErrNilPredicate  — pred is nil.
//   - ErrNotSorted     — s has an inversion under less (wrapped with its index).

// RequireSorted returns nil if s is non-decreasing under less, and an error
// wrapping ErrNotSorted that names the first inversion otherwise.
func RequireSorted[S ~[]E, E any](s S, less LessFunc[E]) error {
	if less == nil {
		return ErrNilLess
	}
	if i := FirstInversion(s, less); i >= 0 {
		return fmt.Errorf("%w: element %d (%v) is less than element %d (%v)",
			ErrNotSorted, i, s[i], i-1, s[i-1])
	}

	return nil
}

// CheckedLowerBound verifies that s is sorted under less, then returns
// LowerBound(s, pred).
//
// Complexity: O(n) for the check, O(log n) for the search.
func CheckedLowerBound[S ~[]E, E any](s S, pred Predicate[E], less LessFunc[E]) (int, error) {
	if pred == nil {
		return 0, ErrNilPredicate
	}
	if err := RequireSorted(s, less); err != nil {
		return 0, err
	}

	return LowerBound(s, pred), nil
}

// CheckedUpperBound verifies that s is sorted under less, then returns
// UpperBound(s, pred).
func CheckedUpperBound[S ~[]E, E any](s S, pred Predicate[E], less LessFunc[E]) (int, error) {
	if pred == nil {
		return 0, ErrNilPredicate
	}
	if err := RequireSorted(s, less); err != nil {
		return 0, err
	}

	return UpperBound(s, pred), nil
}

// CheckedContains verifies that s is sorted under less, then reports
// whether target is present.
func CheckedContains[S ~[]E, E any](s S, target E, less LessFunc[E]) (bool, error) {
	if err := RequireSorted(s, less); err != nil {
		return false, err
	}

	return Contains(s, target, less), nil
}
