package xsdtype

import "fmt"

// DeclaredType is one of the four XSD datatypes the numeric pipeline
// recognizes (spec.md §4.3, GLOSSARY).
type DeclaredType int

const (
	// Unspecified is the zero value; never a valid declared type.
	Unspecified DeclaredType = iota
	// Integer is xsd:integer.
	Integer
	// Decimal is xsd:decimal.
	Decimal
	// Double is xsd:double.
	Double
	// Float is xsd:float — the projector treats it identically to Double
	// (spec.md §4.3 rule 4), the sole difference being the lexical name
	// the caller declared.
	Float
)

// String returns the XSD local name, e.g. "xsd:integer".
func (t DeclaredType) String() string {
	switch t {
	case Integer:
		return "xsd:integer"
	case Decimal:
		return "xsd:decimal"
	case Double:
		return "xsd:double"
	case Float:
		return "xsd:float"
	default:
		return "xsd:unspecified"
	}
}

// Parse recognizes a declared type from its XSD local name, accepting both
// the bare local name ("integer") and the prefixed form ("xsd:integer").
// Unknown names return an error the caller should surface as TypeMismatch
// (spec.md §6: "Unknown types passed to the projector cause TypeMismatch").
func Parse(name string) (DeclaredType, error) {
	switch name {
	case "integer", "xsd:integer":
		return Integer, nil
	case "decimal", "xsd:decimal":
		return Decimal, nil
	case "double", "xsd:double":
		return Double, nil
	case "float", "xsd:float":
		return Float, nil
	default:
		return Unspecified, fmt.Errorf("xsdtype: unrecognized declared type %q", name)
	}
}

// IsFloating reports whether t is Double or Float — the two declared types
// that admit binary64 ingress (spec.md §4.1: "the only admissible float
// ingress").
func (t DeclaredType) IsFloating() bool { return t == Double || t == Float }

// IsExact reports whether t is Integer or Decimal — the two declared types
// whose values are always held exactly until the final wire render.
func (t DeclaredType) IsExact() bool { return t == Integer || t == Decimal }
