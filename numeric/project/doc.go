// Package project implements the typed projector of spec.md §4.3: it turns
// a numeric/value.NumberValue plus a numeric/xsdtype.DeclaredType into a
// WireForm — a fully rendered digit sequence ready for numeric/emit, never
// passing back through a NumberValue or a language-level float formatter
// for the exact paths.
//
// The precision floor (DecimalDigits, spec.md's DECIMAL_DIGITS = 20) only
// applies to non-terminating rational expansions; a terminating decimal is
// rendered at its exact digit count, never padded or trimmed.
package project
