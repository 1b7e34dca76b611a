// Package parse materializes numeric/value.NumberValue from the two input
// shapes spec.md §4.1 recognizes: a bare JSON number token (the exact source
// bytes of a literal) and a typed-literal dict ({"@type": T, "@value": V}).
//
// Every path here is exact except the one spec.md carves out for
// xsd:double/xsd:float: those route through strconv.ParseFloat, the single
// admissible float ingress point. Every other declared type is scanned
// digit-by-digit into a math/big.Int or math/big.Rat, so a literal like
// "0.1" becomes Rational(1,10), never float64(0.1).
package parse
