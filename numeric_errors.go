package numeric

import "github.com/terminusdb-labs/numeric-core/numeric/numerr"

// NumericError is the error type every numeric core operation returns on
// failure (spec.md §7). Re-exported here so callers of this package's
// entry points need not import numeric/numerr directly.
type NumericError = numerr.NumericError

// Error kinds, re-exported from numeric/numerr (spec.md §7's taxonomy
// table).
const (
	MalformedNumeric = numerr.MalformedNumeric
	TypeMismatch     = numerr.TypeMismatch
	TypeError        = numerr.TypeError
	DivisionByZero   = numerr.DivisionByZero
	NumericFault     = numerr.NumericFault
)
