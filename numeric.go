// Package numeric is the external interface of the numeric core (spec.md
// §6): evaluate_arithmetic and project_stored_literal, the two operations
// the query engine and storage layer call into.
package numeric

import (
	"github.com/terminusdb-labs/numeric-core/numeric/ast"
	"github.com/terminusdb-labs/numeric-core/numeric/emit"
	"github.com/terminusdb-labs/numeric-core/numeric/eval"
	"github.com/terminusdb-labs/numeric-core/numeric/numerr"
	"github.com/terminusdb-labs/numeric-core/numeric/parse"
	"github.com/terminusdb-labs/numeric-core/numeric/project"
	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/wire"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

// Scope resolves variable bindings for EvaluateArithmetic, re-exported so
// callers need not import numeric/eval directly for the common case.
type Scope = eval.Scope

// EmptyScope returns a Scope with no bindings.
func EmptyScope() Scope { return eval.EmptyScope() }

// EvaluateArithmetic reduces an arithmetic AST (spec.md §6's
// evaluate_arithmetic input boundary: JSON-encoded, comments/trailing
// commas tolerated) against scope, and projects + emits the result as a
// JSON number token under its own declared type.
//
// This is the compute-path entry point: Parser leaves are materialized
// lazily as the Evaluator walks the tree, the Evaluator reduces left-operand
// -first, and the result flows through the Typed Projector and Emitter
// before returning.
func EvaluateArithmetic(astJSON []byte, scope Scope, opts ...EvalOption) ([]byte, xsdtype.DeclaredType, error) {
	cfg := applyEvalOptions(opts)

	expr, err := wire.DecodeAST(astJSON)
	if err != nil {
		return nil, xsdtype.Unspecified, err
	}

	evaluator := eval.NewEvaluator(cfg.evalOpts...)
	nv, declared, err := evaluator.Evaluate(expr, scope)
	if err != nil {
		return nil, xsdtype.Unspecified, err
	}

	wf, err := project.Project(nv, declared, cfg.projectOpts...)
	if err != nil {
		return nil, xsdtype.Unspecified, err
	}

	data, err := emit.EmitBytes(wf, cfg.emitOpts...)
	if err != nil {
		return nil, xsdtype.Unspecified, err
	}
	return data, declared, nil
}

// EvalExpression is a lower-level alias of numeric/ast.Expression, for
// callers building an AST programmatically rather than decoding one from
// JSON (e.g. tests, or an in-process query planner).
type EvalExpression = ast.Expression

// EvaluateExpression is EvaluateArithmetic's programmatic-AST counterpart:
// it skips the wire decode step and evaluates expr directly, returning the
// NumberValue/DeclaredType pair rather than an emitted JSON token. Callers
// that need the wire form can pass the result through Project/Emit
// themselves.
func EvaluateExpression(expr EvalExpression, scope Scope, opts ...eval.EvalOption) (value.NumberValue, xsdtype.DeclaredType, error) {
	return eval.NewEvaluator(opts...).Evaluate(expr, scope)
}

// ProjectStoredLiteral implements spec.md §6's project_stored_literal: it
// parses a stored literal's raw lexical bytes under its declared XSD type,
// projects it to a WireForm, and emits the JSON number token the storage
// layer writes for that field during document read.
func ProjectStoredLiteral(rawBytes []byte, xsdType string, opts ...EvalOption) ([]byte, error) {
	cfg := applyEvalOptions(opts)

	declared, err := xsdtype.Parse(xsdType)
	if err != nil {
		return nil, numerr.MismatchedType("%s", err)
	}
	nv, err := parse.TypedLiteral(declared, string(rawBytes))
	if err != nil {
		return nil, err
	}
	wf, err := project.Project(nv, declared, cfg.projectOpts...)
	if err != nil {
		return nil, err
	}
	return emit.EmitBytes(wf, cfg.emitOpts...)
}
