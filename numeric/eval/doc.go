// Package eval evaluates the numeric/ast arithmetic AST into a NumberValue
// tagged with its XSD declared type (spec.md §4.2).
//
// # Evaluator
//
// [Evaluator] is stateless and safe for concurrent use; all evaluation state
// lives in the [Scope] passed to each call.
//
//	ev := eval.NewEvaluator()
//	result, declared, err := ev.Evaluate(expr, eval.EmptyScope())
//
// # Promotion
//
// Binary operators join their operands' kinds under Integer < Rational <
// Double (numeric/value.Wider). Exactness is the default: Double only
// appears in a result when at least one operand was already Double.
//
// # Configuration
//
// [EvalOption] configures optional debug observability via [WithLogger];
// evaluator semantics do not otherwise vary at runtime.
package eval
