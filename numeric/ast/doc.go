// Package ast provides the arithmetic expression AST evaluated by numeric/eval.
//
// The AST is strictly tree-shaped. Nodes are immutable after construction and
// carry no evaluation state, so the same tree can be reduced concurrently by
// many callers (see numeric/eval).
//
// # Node Types
//
//   - [Literal]: a pre-parsed numeric value, or a raw JSON number token or
//     typed-literal dict ({"@type": ..., "@value": ...}) left for
//     numeric/parse to materialize.
//   - [Var]: a named reference resolved through the caller-supplied binding
//     closure (numeric/eval.Scope).
//   - [Binary]: a two-operand node for Plus, Minus, Times, Divide, Div, Exp.
//   - [Unary]: a one-operand node for Floor and Negate.
//
// This mirrors the teacher's SExpr/Literal/Op split, narrowed to the seven
// arithmetic operators spec.md §4.2 names plus unary negation.
package ast
