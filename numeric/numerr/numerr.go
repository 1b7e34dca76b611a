// Package numerr defines the numeric core's shared error taxonomy
// (spec.md §7), constructed by numeric/parse, numeric/eval, and
// numeric/project and re-exported at the numeric facade. Kept as its own
// package (rather than living inside numeric/eval, as the teacher's
// analogous CheckError lives inside instance/eval) because three sibling
// packages need to construct the same taxonomy without importing each
// other.
package numerr

import "fmt"

// Kind classifies a NumericError the way the teacher's CheckErrorKind
// classifies validation failures, letting callers dispatch on failure mode
// without string matching.
type Kind uint8

const (
	// MalformedNumeric means the input bytes could not be parsed as any
	// numeric literal (spec.md §4.1).
	MalformedNumeric Kind = iota
	// TypeMismatch means a declared XSD type is unrecognized, or rejects
	// the lexical form it was paired with.
	TypeMismatch
	// TypeError means an operator received operands that parse fine but
	// are the wrong NumberValue kind for that operator (e.g. Div on a
	// Rational).
	TypeError
	// DivisionByZero means an exact division (Divide or Div) had a zero
	// divisor.
	DivisionByZero
	// NumericFault means a result cannot be represented on the wire at
	// all — a non-finite Double reaching the emitter, or Floor applied to
	// NaN.
	NumericFault
)

// String names the Kind for logging and error messages.
func (k Kind) String() string {
	switch k {
	case MalformedNumeric:
		return "MalformedNumeric"
	case TypeMismatch:
		return "TypeMismatch"
	case TypeError:
		return "TypeError"
	case DivisionByZero:
		return "DivisionByZero"
	case NumericFault:
		return "NumericFault"
	default:
		return "Unknown"
	}
}

// NumericError is the numeric core's single error type. Every failure path
// in numeric/parse, numeric/eval, and numeric/project returns one of these
// rather than an ad hoc wrapped error, so callers can switch on Kind.
type NumericError struct {
	Kind Kind
	Msg  string
}

func (e *NumericError) Error() string { return e.Msg }

// Malformed builds a MalformedNumeric error for an unparseable token.
func Malformed(format string, args ...any) *NumericError {
	return &NumericError{Kind: MalformedNumeric, Msg: fmt.Sprintf(format, args...)}
}

// MismatchedType builds a TypeMismatch error.
func MismatchedType(format string, args ...any) *NumericError {
	return &NumericError{Kind: TypeMismatch, Msg: fmt.Sprintf(format, args...)}
}

// WrongOperandType builds a TypeError error.
func WrongOperandType(format string, args ...any) *NumericError {
	return &NumericError{Kind: TypeError, Msg: fmt.Sprintf(format, args...)}
}

// DivByZero builds a DivisionByZero error.
func DivByZero(format string, args ...any) *NumericError {
	return &NumericError{Kind: DivisionByZero, Msg: fmt.Sprintf(format, args...)}
}

// Fault builds a NumericFault error.
func Fault(format string, args ...any) *NumericError {
	return &NumericError{Kind: NumericFault, Msg: fmt.Sprintf(format, args...)}
}
