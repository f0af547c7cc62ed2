// Package ordstat is a small toolkit of order-statistics primitives over
// sorted sequences.
//
// What is inside
//
//	search/ — sortedness checks, lower/upper bound partition points,
//	          membership and equal-range queries, all driven by monotonic
//	          predicates supplied by the caller.
//
// Every operation is pure, allocation-free and runs in O(log n), except
// the O(n) sortedness checks. The library owns no data: callers keep their
// slices and ordering, and pass closures describing what to look for.
//
//	go get github.com/katalvlaran/ordstat/search
package ordstat
