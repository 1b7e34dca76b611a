package value

import "math/big"

// floatClass stratifies the special float64 values so comparisons against
// them stay total and antisymmetric even when one side is not finite.
// Ordered low-to-high: -Inf < finite < +Inf < NaN, the same convention the
// teacher's internal/value.Float64Compare uses, extended here to rank
// against exact values too (an exact value is always "finite").
type floatClass int

const (
	floatClassNegInf floatClass = iota
	floatClassFinite
	floatClassPosInf
	floatClassNaN
)

func classifyFloat(f float64) floatClass {
	switch {
	case f != f: // NaN
		return floatClassNaN
	case f > maxFiniteFloat:
		return floatClassPosInf
	case f < -maxFiniteFloat:
		return floatClassNegInf
	default:
		return floatClassFinite
	}
}

// maxFiniteFloat bounds the finite range; used only to classify ±Inf,
// which compare strictly greater/less than it in either direction.
const maxFiniteFloat = 1.7976931348623157e+308

// Compare returns -1, 0, or 1 for a versus b under a single total order
// spanning all three NumberValue kinds: exact values (Integer, Rational)
// compare against each other and against finite Doubles with no precision
// loss (every finite float64 has an exact big.Rat representation), and
// non-finite Doubles rank as -Inf < finite < +Inf < NaN, with NaN equal only
// to itself. This mirrors the cross-type exactness the teacher's
// internal/value/order.go goes to for int64-vs-float64 comparisons, carried
// over the three-kind domain here instead of Go's builtin numeric types.
func Compare(a, b NumberValue) int {
	af, aIsFloat := a.Float64Value()
	bf, bIsFloat := b.Float64Value()

	switch {
	case aIsFloat && bIsFloat:
		return compareFloats(af, bf)
	case aIsFloat:
		return compareFloatExact(af, b)
	case bIsFloat:
		return -compareFloatExact(bf, a)
	default:
		ar, _ := a.AsRat()
		br, _ := b.AsRat()
		return ar.Cmp(br)
	}
}

func compareFloats(a, b float64) int {
	ca, cb := classifyFloat(a), classifyFloat(b)
	if ca != floatClassFinite || cb != floatClassFinite {
		switch {
		case ca == cb:
			return 0
		case ca < cb:
			return -1
		default:
			return 1
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFloatExact compares a float64 against an exact NumberValue,
// returning -1/0/1 for f </=/> exact. Non-finite f ranks by floatClass
// against the always-finite exact side.
func compareFloatExact(f float64, exact NumberValue) int {
	switch classifyFloat(f) {
	case floatClassNegInf:
		return -1
	case floatClassPosInf:
		return 1
	case floatClassNaN:
		return 1 // NaN sorts after every exact value
	}
	fr := new(big.Rat).SetFloat64(f)
	if fr == nil {
		// f is finite so SetFloat64 cannot fail, but stay defensive.
		return 0
	}
	er, _ := exact.AsRat()
	return fr.Cmp(er)
}

// Less reports whether a orders strictly before b under Compare.
func Less(a, b NumberValue) bool { return Compare(a, b) < 0 }
