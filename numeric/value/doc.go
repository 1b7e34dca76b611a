// Package value defines NumberValue, the tagged exact-numeric domain the
// rest of the numeric core computes over: arbitrary-precision integers,
// exact rationals, and IEEE-754 doubles (spec.md §3).
//
// NumberValue is immutable once constructed. Rational values are always
// normalized (lowest terms, positive denominator) because they are built on
// [math/big.Rat], which maintains that invariant internally — the zero-cost
// way to satisfy spec.md §3's canonicalization requirement without hand
// maintaining a gcd reduction (see internal/value/classify.go in the teacher
// for the analogous tagged-dispatch design this mirrors).
package value
