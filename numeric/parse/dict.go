package parse

import (
	"github.com/terminusdb-labs/numeric-core/numeric/numerr"
	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

// FromLiteralDict materializes a NumberValue from an already-decoded
// {"@type": T, "@value": V} map — the shape numeric/ast.Literal.Val takes
// when built from a JSON-decoded AST (spec.md §4.1 rule 2, §6 typed-literal
// query-binding form).
func FromLiteralDict(m map[string]any) (value.NumberValue, xsdtype.DeclaredType, error) {
	typeField, ok := m["@type"]
	if !ok {
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Malformed("typed literal missing @type")
	}
	typeName, ok := typeField.(string)
	if !ok {
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Malformed("@type must be a string, got %T", typeField)
	}
	declared, err := xsdtype.Parse(typeName)
	if err != nil {
		return value.NumberValue{}, xsdtype.Unspecified, numerr.MismatchedType("%s", err)
	}

	rawValue, ok := m["@value"]
	if !ok {
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Malformed("typed literal missing @value")
	}

	nv, err := TypedLiteral(declared, rawValue)
	if err != nil {
		return value.NumberValue{}, xsdtype.Unspecified, err
	}
	return nv, declared, nil
}
