package parse

import (
	"math/big"
	"strings"

	"github.com/terminusdb-labs/numeric-core/numeric/numerr"
	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

var ten = big.NewInt(10)

// Number parses a bare JSON number token — the exact source byte sequence of
// a literal, per spec.md §4.1 rule 1 — into a NumberValue with its inferred
// declared type. A token with no '.' and no 'e'/'E' is an Integer
// (xsd:integer); anything else is parsed as an exact Rational (xsd:decimal),
// never through float64.
func Number(tok string) (value.NumberValue, xsdtype.DeclaredType, error) {
	if tok == "" {
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Malformed("empty numeric token")
	}
	if !strings.ContainsAny(tok, ".eE") {
		n, ok := new(big.Int).SetString(tok, 10)
		if !ok {
			return value.NumberValue{}, xsdtype.Unspecified, numerr.Malformed("invalid integer token %q", tok)
		}
		return value.Int(n), xsdtype.Integer, nil
	}
	r, err := DecimalExact(tok)
	if err != nil {
		return value.NumberValue{}, xsdtype.Unspecified, err
	}
	return value.Rat(r), xsdtype.Decimal, nil
}

// DecimalExact scans a decimal or scientific-notation string into an exact
// *big.Rat without ever constructing a float64 intermediate (spec.md §4.1
// rules 2–3). Accepts an optional leading sign, an optional single '.', and
// an optional exponent suffix ('e'|'E', optional sign, digits).
//
// Grounded on the digit-scan approach of parsing a decimal literal directly
// into a numerator/scale pair (see ParseDecimalString in the rat128
// reference implementation), generalized here from a fixed 64-bit numerator
// to math/big so magnitude is never a concern.
func DecimalExact(s string) (*big.Rat, error) {
	mantissa, dotPos, exp, err := scanDecimal(s)
	if err != nil {
		return nil, err
	}

	n, ok := new(big.Int).SetString(mantissa, 10)
	if !ok {
		return nil, numerr.Malformed("invalid decimal token %q", s)
	}

	// fracDigits counts digits to the right of the decimal point before any
	// exponent is applied; the exponent then shifts that count further.
	fracDigits := dotPos - exp

	r := new(big.Rat).SetInt(n)
	switch {
	case fracDigits > 0:
		scale := new(big.Int).Exp(ten, big.NewInt(int64(fracDigits)), nil)
		r.Quo(r, new(big.Rat).SetInt(scale))
	case fracDigits < 0:
		scale := new(big.Int).Exp(ten, big.NewInt(int64(-fracDigits)), nil)
		r.Mul(r, new(big.Rat).SetInt(scale))
	}
	return r, nil
}

// scanDecimal splits s into the digit mantissa (sign preserved, decimal
// point removed), the count of fractional digits implied by the point's
// position, and the exponent from an 'e'/'E' suffix (0 if absent).
func scanDecimal(s string) (mantissa string, dotFracDigits int, exp int, err error) {
	body := s
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		body = s[:i]
		expPart := s[i+1:]
		if expPart == "" {
			return "", 0, 0, numerr.Malformed("invalid scientific notation %q", s)
		}
		e, ok := new(big.Int).SetString(expPart, 10)
		if !ok || !e.IsInt64() {
			return "", 0, 0, numerr.Malformed("invalid exponent in %q", s)
		}
		exp = int(e.Int64())
	}

	sign := ""
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = "-"
		}
		body = body[1:]
	}

	dot := strings.IndexByte(body, '.')
	digits := body
	fracCount := 0
	if dot >= 0 {
		digits = body[:dot] + body[dot+1:]
		fracCount = len(body) - dot - 1
	}
	if digits == "" {
		return "", 0, 0, numerr.Malformed("no digits in %q", s)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return "", 0, 0, numerr.Malformed("invalid character %q in numeric token %q", c, s)
		}
	}
	return sign + digits, fracCount, exp, nil
}
