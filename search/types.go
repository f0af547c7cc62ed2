// Package search defines the function types and sentinel errors shared by
// the partition-point, membership and sortedness primitives.
package search

import "errors"

// Sentinel errors returned by the checked variants.
var (
	// ErrNotSorted is returned when a sequence has an adjacent inversion
	// under the supplied ordering.
	ErrNotSorted = errors.New("search: sequence is not sorted")

	// ErrNilPredicate is returned when a nil Predicate is supplied.
	ErrNilPredicate = errors.New("search: predicate is nil")

	// ErrNilLess is returned when a nil LessFunc or CompareFunc is supplied.
	ErrNilLess = errors.New("search: ordering function is nil")
)

// Predicate reports whether an element belongs to the suffix of a partition.
//
// A Predicate must be monotonic over the sequence it is applied to: once it
// returns true for some element it returns true for every later element
// (for LowerBound), or once false it stays false (for UpperBound).
// Monotonicity is never verified; a violating predicate yields an
// unspecified index in [0, len].
type Predicate[E any] func(E) bool

// LessFunc is a strict weak ordering: less(a, b) reports a < b.
type LessFunc[E any] func(a, b E) bool

// CompareFunc is a three-way comparison of an element against a target.
// It returns a negative number when e < target, zero when equal and a
// positive number when e > target.
type CompareFunc[E, T any] func(e E, target T) int

// Not returns the complement of p.
func (p Predicate[E]) Not() Predicate[E] {
	return func(e E) bool { return !p(e) }
}
