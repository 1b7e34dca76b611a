package value

import (
	"math/big"
)

// NumberValue is the tagged exact-numeric domain of spec.md §3: an Integer
// (arbitrary precision), a Rational (always in lowest terms with a positive
// denominator), or a Double (binary64), never implicitly interconverted.
//
// The zero value is not meaningful; construct via Int, IntFromInt64, Rat, or
// Dbl. NumberValue is immutable and safe for concurrent use — no method
// mutates the receiver or any big.Int/big.Rat it wraps.
type NumberValue struct {
	kind Kind
	i    *big.Int
	r    *big.Rat
	f    float64
}

// Int wraps a *big.Int as an Integer NumberValue. The argument is cloned so
// the caller's mutations afterward cannot leak into the value.
func Int(n *big.Int) NumberValue {
	return NumberValue{kind: IntegerKind, i: new(big.Int).Set(n)}
}

// IntFromInt64 wraps an int64 as an Integer NumberValue.
func IntFromInt64(n int64) NumberValue {
	return NumberValue{kind: IntegerKind, i: big.NewInt(n)}
}

// Rat wraps a *big.Rat as a Rational NumberValue. big.Rat maintains the
// lowest-terms, positive-denominator invariant internally (see math/big
// docs), so no separate reduction step is needed here — this is the
// canonicalization spec.md §3 requires, for free. The argument is cloned.
func Rat(r *big.Rat) NumberValue {
	return NumberValue{kind: RationalKind, r: new(big.Rat).Set(r)}
}

// RatFromFrac builds a Rational NumberValue from a numerator/denominator
// pair, reducing and normalizing the sign as big.Rat.SetFrac does.
func RatFromFrac(num, den *big.Int) NumberValue {
	return NumberValue{kind: RationalKind, r: new(big.Rat).SetFrac(num, den)}
}

// Dbl wraps a float64 as a Double NumberValue.
func Dbl(f float64) NumberValue {
	return NumberValue{kind: DoubleKind, f: f}
}

// Kind reports which variant v holds.
func (v NumberValue) Kind() Kind { return v.kind }

// IsExact reports whether v is Integer or Rational (never produced as a
// side effect of exact-only arithmetic, per spec.md §3's "Double is never
// silently produced" invariant).
func (v NumberValue) IsExact() bool { return v.kind == IntegerKind || v.kind == RationalKind }

// BigInt returns the wrapped integer and true, or (nil, false) if v is not
// an Integer.
func (v NumberValue) BigInt() (*big.Int, bool) {
	if v.kind != IntegerKind {
		return nil, false
	}
	return v.i, true
}

// RatValue returns the wrapped rational and true, or (nil, false) if v is
// not a Rational.
func (v NumberValue) RatValue() (*big.Rat, bool) {
	if v.kind != RationalKind {
		return nil, false
	}
	return v.r, true
}

// Float64Value returns the wrapped double and true, or (0, false) if v is
// not a Double.
func (v NumberValue) Float64Value() (float64, bool) {
	if v.kind != DoubleKind {
		return 0, false
	}
	return v.f, true
}

// AsRat promotes an Integer or Rational to a *big.Rat, or returns
// (nil, false) for a Double — callers that need to mix a Double in must go
// through PromoteFloat64 instead, since that crossing is the one place the
// spec allows inexactness to enter.
func (v NumberValue) AsRat() (*big.Rat, bool) {
	switch v.kind {
	case IntegerKind:
		return new(big.Rat).SetInt(v.i), true
	case RationalKind:
		return new(big.Rat).Set(v.r), true
	default:
		return nil, false
	}
}

// PromoteFloat64 converts any variant to its nearest float64 representation.
// This is the single admissible place an exact value crosses into binary
// floating point, used only when an operator's other operand is already a
// Double (spec.md §4.2's promotion rule).
func (v NumberValue) PromoteFloat64() float64 {
	switch v.kind {
	case IntegerKind:
		f := new(big.Float).SetInt(v.i)
		out, _ := f.Float64()
		return out
	case RationalKind:
		out, _ := v.r.Float64()
		return out
	case DoubleKind:
		return v.f
	default:
		return 0
	}
}

// Sign returns -1, 0, or 1. Panics if v is the zero value.
func (v NumberValue) Sign() int {
	switch v.kind {
	case IntegerKind:
		return v.i.Sign()
	case RationalKind:
		return v.r.Sign()
	case DoubleKind:
		switch {
		case v.f > 0:
			return 1
		case v.f < 0:
			return -1
		default:
			return 0
		}
	default:
		panic("value: Sign on zero-value NumberValue")
	}
}

// IsZero reports whether v is the numeric value zero.
func (v NumberValue) IsZero() bool {
	switch v.kind {
	case IntegerKind:
		return v.i.Sign() == 0
	case RationalKind:
		return v.r.Sign() == 0
	case DoubleKind:
		return v.f == 0
	default:
		return false
	}
}

// Equal reports structural equality: same Kind, and equal value within that
// kind (Rational comparison happens on the already-normalized form, per
// spec.md §3).
func Equal(a, b NumberValue) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case IntegerKind:
		return a.i.Cmp(b.i) == 0
	case RationalKind:
		return a.r.Cmp(b.r) == 0
	case DoubleKind:
		return a.f == b.f
	default:
		return true
	}
}

// String renders a debug form (not the wire form — see numeric/project and
// numeric/emit for the digit-faithful wire representation).
func (v NumberValue) String() string {
	switch v.kind {
	case IntegerKind:
		return v.i.String()
	case RationalKind:
		return v.r.RatString()
	case DoubleKind:
		return big.NewFloat(v.f).Text('g', -1)
	default:
		return "<invalid NumberValue>"
	}
}
