// Package wire decodes the on-the-wire arithmetic AST (spec.md §6, the
// evaluate_arithmetic input boundary) into a numeric/ast.Expression tree.
//
// A node is one of:
//
//	{"op": "Plus", "left": <operand>, "right": <operand>}
//	{"op": "Floor", "argument": <operand>}
//	{"var": "x"}
//	{"data": <literal>}
//
// where an operand is itself any of these four shapes, and <literal> is a
// bare JSON number token, a JSON string holding a number token, or a
// typed-literal dict ({"@type": T, "@value": V}) per spec.md §4.1. Comments and trailing
// commas in the input are tolerated via tidwall/jsonc preprocessing, the
// same preprocessing the teacher's JSON adapter applies before decoding.
package wire
