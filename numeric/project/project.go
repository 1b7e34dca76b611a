package project

import (
	"math/big"
	"strings"

	"github.com/terminusdb-labs/numeric-core/numeric/numerr"
	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

// DecimalDigits is spec.md's DECIMAL_DIGITS precision floor: the minimum
// count of fractional digits emitted for a Rational whose expansion does
// not terminate in base ten. 20 safely exceeds the 17 decimal digits a
// binary64 round-trip needs and gives decimal-arithmetic clients a stable
// contractual floor for repeating expansions (1/3, 1/7, 1/999999, ...).
const DecimalDigits = 20

// projectConfig allows the precision floor to be overridden, e.g. by tests
// pinning expected truncated digit counts below 20.
type projectConfig struct {
	decimalDigits int
}

// ProjectOption configures Project.
type ProjectOption func(*projectConfig)

// WithPrecisionFloor overrides the default DecimalDigits precision floor.
func WithPrecisionFloor(n int) ProjectOption {
	return func(c *projectConfig) { c.decimalDigits = n }
}

func applyOptions(opts []ProjectOption) *projectConfig {
	cfg := &projectConfig{decimalDigits: DecimalDigits}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Project implements spec.md §4.3: nv × declared → WireForm.
func Project(nv value.NumberValue, declared xsdtype.DeclaredType, opts ...ProjectOption) (WireForm, error) {
	cfg := applyOptions(opts)

	switch nv.Kind() {
	case value.IntegerKind:
		n, _ := nv.BigInt()
		return projectInt(n), nil

	case value.RationalKind:
		r, _ := nv.RatValue()
		switch declared {
		case xsdtype.Decimal:
			return projectDecimal(r, cfg.decimalDigits), nil
		case xsdtype.Integer:
			if r.IsInt() {
				return projectInt(r.Num()), nil
			}
			return WireForm{}, numerr.WrongOperandType("xsd:integer projection of non-integral rational %s", r.RatString())
		default:
			return WireForm{}, numerr.MismatchedType("rational value cannot be projected as %s", declared)
		}

	case value.DoubleKind:
		if !declared.IsFloating() {
			return WireForm{}, numerr.MismatchedType("double value cannot be projected as %s", declared)
		}
		f, _ := nv.Float64Value()
		return WireDouble(f), nil

	default:
		return WireForm{}, numerr.Fault("project: invalid NumberValue")
	}
}

func projectInt(n *big.Int) WireForm {
	abs := new(big.Int).Abs(n)
	return WireInt(n.Sign() < 0, abs.String())
}

// projectDecimal implements rules 2 of spec.md §4.3: an exact terminating
// render when the denominator divides a power of ten, otherwise a
// truncating long-division render to at least fracFloor digits.
func projectDecimal(r *big.Rat, fracFloor int) WireForm {
	neg := r.Sign() < 0
	absNum := new(big.Int).Abs(r.Num())
	den := r.Denom()

	if k, ok := minimalPow10(den); ok {
		intPart, fracPart := terminatingDigits(absNum, den, k)
		return WireDec(neg, intPart, fracPart)
	}

	intPart, fracPart := longDivision(absNum, den, fracFloor)
	return WireDec(neg, intPart, fracPart)
}

// minimalPow10 reports the minimal k such that den divides 10^k, by
// factoring out 2s and 5s; den divides some power of ten iff nothing but 2s
// and 5s remain.
func minimalPow10(den *big.Int) (int, bool) {
	d := new(big.Int).Set(den)
	two, five := big.NewInt(2), big.NewInt(5)

	count2 := 0
	for new(big.Int).Mod(d, two).Sign() == 0 {
		d.Div(d, two)
		count2++
	}
	count5 := 0
	for new(big.Int).Mod(d, five).Sign() == 0 {
		d.Div(d, five)
		count5++
	}
	if d.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if count2 > count5 {
		return count2, true
	}
	return count5, true
}

// terminatingDigits renders absNum/den exactly as absNum*10^k/den (an exact
// big.Int division, since den was already confirmed to divide 10^k),
// splitting the result into integer and fractional digit strings with
// exactly k fractional digits.
func terminatingDigits(absNum, den *big.Int, k int) (intPart, fracPart string) {
	if k == 0 {
		return new(big.Int).Quo(absNum, den).String(), ""
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
	scaled := new(big.Int).Mul(absNum, scale)
	scaled.Div(scaled, den)
	digits := scaled.String()
	if len(digits) <= k {
		digits = strings.Repeat("0", k-len(digits)+1) + digits
	}
	split := len(digits) - k
	return digits[:split], digits[split:]
}

// longDivision performs truncating long division of absNum/den to exactly
// fracDigits fractional digits, never rounding — grounded on the
// right-to-left coefficient-digit assembly technique govalues-decimal's
// Decimal.append uses, generalized here to an unbounded big.Int long
// division instead of a fixed 19-digit coefficient.
func longDivision(absNum, den *big.Int, fracDigits int) (intPart, fracPart string) {
	q := new(big.Int)
	rem := new(big.Int)
	q.QuoRem(absNum, den, rem)
	intPart = q.String()

	var sb strings.Builder
	sb.Grow(fracDigits)
	ten := big.NewInt(10)
	digitQ := new(big.Int)
	for i := 0; i < fracDigits; i++ {
		rem.Mul(rem, ten)
		digitQ.QuoRem(rem, den, rem)
		sb.WriteByte(byte(digitQ.Int64()) + '0')
	}
	return intPart, sb.String()
}
