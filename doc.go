// Package numeric is the numeric core of a graph database's query engine:
// an arithmetic evaluator, a typed value pipeline, and a decimal-preserving
// JSON emitter, built around a tagged Integer/Rational/Double value domain
// that keeps arithmetic exact until a Double enters the computation.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - numeric/value: the NumberValue sum type and its total order
//	  - numeric/xsdtype: the DeclaredType enum (xsd:integer/decimal/double/float)
//	  - numeric/numerr: the error taxonomy shared by parse/eval/project
//
//	Core library tier:
//	  - numeric/ast: the arithmetic expression tree
//	  - numeric/parse: typed-literal and bare-token parsing into NumberValue
//	  - numeric/eval: AST reduction over a caller-supplied variable Scope
//	  - numeric/project: NumberValue x DeclaredType -> WireForm
//	  - numeric/emit: WireForm -> JSON number token
//
//	Adapter tier:
//	  - numeric/wire: on-the-wire AST JSON decoding
//
// # Entry Points
//
// Arithmetic evaluation:
//
//	import "github.com/terminusdb-labs/numeric-core"
//
//	result, declared, err := numeric.EvaluateArithmetic(astJSON, scope)
//	if err != nil {
//	    // err.(*numeric.NumericError).Kind distinguishes MalformedNumeric,
//	    // TypeMismatch, TypeError, DivisionByZero, NumericFault
//	}
//
// Projecting a stored literal during document read:
//
//	token, err := numeric.ProjectStoredLiteral(rawBytes, "xsd:decimal")
//	if err != nil {
//	    // typed error, see NumericError.Kind
//	}
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/terminusdb-labs/numeric-core/numeric/value]: NumberValue and its order
//   - [github.com/terminusdb-labs/numeric-core/numeric/xsdtype]: declared XSD types
//   - [github.com/terminusdb-labs/numeric-core/numeric/numerr]: the error taxonomy
//   - [github.com/terminusdb-labs/numeric-core/numeric/ast]: the arithmetic AST
//   - [github.com/terminusdb-labs/numeric-core/numeric/parse]: literal parsing
//   - [github.com/terminusdb-labs/numeric-core/numeric/eval]: AST evaluation
//   - [github.com/terminusdb-labs/numeric-core/numeric/project]: the typed projector
//   - [github.com/terminusdb-labs/numeric-core/numeric/emit]: the JSON emitter
//   - [github.com/terminusdb-labs/numeric-core/numeric/wire]: AST JSON decoding
//   - [github.com/terminusdb-labs/numeric-core/internal/trace]: operation-boundary logging
package numeric
