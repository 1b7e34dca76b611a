package parse

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/terminusdb-labs/numeric-core/numeric/numerr"
	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

// TypedLiteral materializes a NumberValue from a typed-literal dict's
// {"@type": T, "@value": V} fields (spec.md §4.1 rule 2). raw is the @value
// payload — a json.Number, string, or (for xsd:double/float only) float64.
//
// xsd:double and xsd:float are the only declared types permitted to parse
// through binary64 (spec.md §4.1: "the only admissible float ingress"); a
// float64 payload under any other declared type fails with TypeMismatch.
// xsd:decimal is scanned exactly; xsd:integer rejects a fractional or
// exponent lexical form with TypeMismatch. A lexical form that is not a
// number at all fails with MalformedNumeric.
func TypedLiteral(declared xsdtype.DeclaredType, raw any) (value.NumberValue, error) {
	if _, isFloat := raw.(float64); isFloat && !declared.IsFloating() {
		return value.NumberValue{}, numerr.MismatchedType("%s literal cannot take a float64 @value", declared)
	}
	lex, err := lexicalForm(raw)
	if err != nil {
		return value.NumberValue{}, err
	}

	switch declared {
	case xsdtype.Double, xsdtype.Float:
		f, err := strconv.ParseFloat(lex, 64)
		if err != nil {
			return value.NumberValue{}, numerr.Malformed("invalid %s literal %q: %s", declared, lex, err)
		}
		return value.Dbl(f), nil

	case xsdtype.Decimal:
		r, err := DecimalExact(lex)
		if err != nil {
			return value.NumberValue{}, err
		}
		return value.Rat(r), nil

	case xsdtype.Integer:
		if strings.ContainsAny(lex, ".eE") {
			return value.NumberValue{}, numerr.MismatchedType(
				"xsd:integer literal %q has a fractional or exponent part", lex)
		}
		nv, gotDeclared, err := Number(lex)
		if err != nil {
			return value.NumberValue{}, err
		}
		if gotDeclared != xsdtype.Integer {
			return value.NumberValue{}, numerr.MismatchedType("expected xsd:integer, got %s", gotDeclared)
		}
		return nv, nil

	default:
		return value.NumberValue{}, numerr.MismatchedType("unrecognized declared type %v", declared)
	}
}

// lexicalForm normalizes a typed-literal @value payload to its source text,
// accepting the shapes a JSON decoder configured with UseNumber() can
// produce, plus a caller-supplied literal float64 for the double/float path.
func lexicalForm(raw any) (string, error) {
	switch v := raw.(type) {
	case json.Number:
		return v.String(), nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", numerr.Malformed("unsupported @value payload type %T", raw)
	}
}
