package eval

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"math/big"

	"github.com/google/uuid"

	"github.com/terminusdb-labs/numeric-core/internal/trace"
	"github.com/terminusdb-labs/numeric-core/numeric/ast"
	"github.com/terminusdb-labs/numeric-core/numeric/numerr"
	"github.com/terminusdb-labs/numeric-core/numeric/parse"
	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

// Evaluator reduces a numeric/ast.Expression to a (NumberValue, DeclaredType)
// pair (spec.md §4.2). Evaluator is stateless and safe for concurrent use.
type Evaluator struct {
	cfg *evalConfig
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...EvalOption) *Evaluator {
	return &Evaluator{cfg: applyOptions(opts)}
}

// Evaluate reduces expression against scope. Subexpressions are evaluated
// left-operand-first, right-operand-second (spec.md §5 "Ordering"), so the
// first error encountered in that order is the one surfaced.
func (e *Evaluator) Evaluate(expression ast.Expression, scope Scope) (nv value.NumberValue, declared xsdtype.DeclaredType, err error) {
	ctx := trace.WithRequestID(context.Background(), uuid.NewString())
	op := trace.Begin(ctx, e.cfg.logger, "numeric.eval.expr", slog.String("op", expression.Op()))
	defer func() { op.End(err) }()

	nv, declared, err = e.eval(ctx, expression, scope)
	return
}

func (e *Evaluator) eval(ctx context.Context, expression ast.Expression, scope Scope) (value.NumberValue, xsdtype.DeclaredType, error) {
	switch n := expression.(type) {
	case *ast.Literal:
		return e.evalLiteral(n)
	case *ast.Var:
		v, d, ok := scope.Lookup(n.Name)
		if !ok {
			return value.NumberValue{}, xsdtype.Unspecified, numerr.MismatchedType("unbound variable %q", n.Name)
		}
		return v, d, nil
	case *ast.Binary:
		return e.evalBinary(ctx, n, scope)
	case *ast.Unary:
		return e.evalUnary(ctx, n, scope)
	default:
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Fault("unknown expression node %T", expression)
	}
}

func (e *Evaluator) evalLiteral(lit *ast.Literal) (value.NumberValue, xsdtype.DeclaredType, error) {
	switch v := lit.Val.(type) {
	case value.NumberValue:
		return v, inferredDeclaredType(v), nil
	case map[string]any:
		return parse.FromLiteralDict(v)
	case json.Number:
		return parse.Number(v.String())
	case string:
		return parse.Number(v)
	default:
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Malformed("unsupported literal payload type %T", lit.Val)
	}
}

// inferredDeclaredType maps a bare NumberValue (one built programmatically,
// not carrying an explicit declared type) to the declared type its Kind
// implies, per the tagging rule in spec.md §4.2.
func inferredDeclaredType(v value.NumberValue) xsdtype.DeclaredType {
	switch v.Kind() {
	case value.IntegerKind:
		return xsdtype.Integer
	case value.RationalKind:
		return xsdtype.Decimal
	case value.DoubleKind:
		return xsdtype.Double
	default:
		return xsdtype.Unspecified
	}
}

func (e *Evaluator) evalBinary(ctx context.Context, n *ast.Binary, scope Scope) (value.NumberValue, xsdtype.DeclaredType, error) {
	lv, _, err := e.eval(ctx, n.Left, scope)
	if err != nil {
		return value.NumberValue{}, xsdtype.Unspecified, err
	}
	rv, _, err := e.eval(ctx, n.Right, scope)
	if err != nil {
		return value.NumberValue{}, xsdtype.Unspecified, err
	}

	trace.Debug(ctx, e.cfg.logger, "evaluating binary operator", slog.String("op", n.Operator))

	switch n.Operator {
	case ast.OpPlus:
		return e.ring(lv, rv, (*big.Int).Add, (*big.Rat).Add, func(x, y float64) float64 { return x + y })
	case ast.OpMinus:
		return e.ring(lv, rv, (*big.Int).Sub, (*big.Rat).Sub, func(x, y float64) float64 { return x - y })
	case ast.OpTimes:
		return e.ring(lv, rv, (*big.Int).Mul, (*big.Rat).Mul, func(x, y float64) float64 { return x * y })
	case ast.OpDivide:
		return e.divide(lv, rv)
	case ast.OpDiv:
		return e.divTruncated(lv, rv)
	case ast.OpExp:
		return e.exp(lv, rv)
	default:
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Fault("unknown binary operator %q", n.Operator)
	}
}

func (e *Evaluator) evalUnary(ctx context.Context, n *ast.Unary, scope Scope) (value.NumberValue, xsdtype.DeclaredType, error) {
	v, _, err := e.eval(ctx, n.Operand, scope)
	if err != nil {
		return value.NumberValue{}, xsdtype.Unspecified, err
	}

	trace.Debug(ctx, e.cfg.logger, "evaluating unary operator", slog.String("op", n.Operator))

	switch n.Operator {
	case ast.OpFloor:
		return e.floor(v)
	case ast.OpNegate:
		return e.negate(v)
	default:
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Fault("unknown unary operator %q", n.Operator)
	}
}

// ring evaluates Plus/Minus/Times: exact ring operations in ℤ or ℚ when both
// operands are exact, promoted to the wider of the two kinds; f64 as soon as
// either operand is Double (spec.md §4.2: "exact if both exact").
func (e *Evaluator) ring(
	l, r value.NumberValue,
	intOp func(z, x, y *big.Int) *big.Int,
	ratOp func(z, x, y *big.Rat) *big.Rat,
	floatOp func(x, y float64) float64,
) (value.NumberValue, xsdtype.DeclaredType, error) {
	if l.Kind() == value.DoubleKind || r.Kind() == value.DoubleKind {
		return value.Dbl(floatOp(l.PromoteFloat64(), r.PromoteFloat64())), xsdtype.Double, nil
	}
	if value.Wider(l.Kind(), r.Kind()) == value.IntegerKind {
		li, _ := l.BigInt()
		ri, _ := r.BigInt()
		return value.Int(intOp(new(big.Int), li, ri)), xsdtype.Integer, nil
	}
	lr, _ := l.AsRat()
	rr, _ := r.AsRat()
	return value.Rat(ratOp(new(big.Rat), lr, rr)), xsdtype.Decimal, nil
}

// divide implements Divide: always Rational over exact inputs, even when
// the result is integral (spec.md §4.2), tagged xsd:decimal; Double as soon
// as either operand is Double, following IEEE semantics for the zero
// divisor instead of failing.
func (e *Evaluator) divide(l, r value.NumberValue) (value.NumberValue, xsdtype.DeclaredType, error) {
	if l.Kind() == value.DoubleKind || r.Kind() == value.DoubleKind {
		return value.Dbl(l.PromoteFloat64() / r.PromoteFloat64()), xsdtype.Double, nil
	}
	lr, _ := l.AsRat()
	rr, _ := r.AsRat()
	if rr.Sign() == 0 {
		return value.NumberValue{}, xsdtype.Unspecified, numerr.DivByZero("Divide: division by zero")
	}
	return value.Rat(new(big.Rat).Quo(lr, rr)), xsdtype.Decimal, nil
}

// divTruncated implements Div: both operands must be Integer; truncated
// toward zero (spec.md §4.2). big.Int's Quo/Rem pair (not Div/Mod) is the
// truncated-toward-zero variant — Div/Mod is Euclidean and would be wrong
// here for negative operands.
func (e *Evaluator) divTruncated(l, r value.NumberValue) (value.NumberValue, xsdtype.DeclaredType, error) {
	li, lok := l.BigInt()
	ri, rok := r.BigInt()
	if !lok || !rok {
		return value.NumberValue{}, xsdtype.Unspecified, numerr.WrongOperandType(
			"Div requires integer operands, got %s and %s", l.Kind(), r.Kind())
	}
	if ri.Sign() == 0 {
		return value.NumberValue{}, xsdtype.Unspecified, numerr.DivByZero("Div: division by zero")
	}
	return value.Int(new(big.Int).Quo(li, ri)), xsdtype.Integer, nil
}

// exp implements x^y. y must be a non-negative Integer over an exact base
// for an exact result via repeated squaring; a negative Integer y over an
// exact base produces a Rational (spec.md §4.2). A non-integer y over an
// exact base is rejected with TypeError — the spec defines Exp only for
// integer exponents and does not specify a fractional-exponent fallback.
func (e *Evaluator) exp(l, r value.NumberValue) (value.NumberValue, xsdtype.DeclaredType, error) {
	if l.Kind() == value.DoubleKind || r.Kind() == value.DoubleKind {
		return value.Dbl(math.Pow(l.PromoteFloat64(), r.PromoteFloat64())), xsdtype.Double, nil
	}

	exponent, ok := r.BigInt()
	if !ok {
		return value.NumberValue{}, xsdtype.Unspecified, numerr.WrongOperandType(
			"Exp requires an integer exponent, got %s", r.Kind())
	}

	if exponent.Sign() < 0 {
		baseRat, _ := l.AsRat()
		if baseRat.Sign() == 0 {
			return value.NumberValue{}, xsdtype.Unspecified, numerr.DivByZero("Exp: zero base with negative exponent")
		}
		absExp := new(big.Int).Neg(exponent)
		powRat := ratPow(baseRat, absExp)
		return value.Rat(new(big.Rat).Inv(powRat)), xsdtype.Decimal, nil
	}

	if li, ok := l.BigInt(); ok {
		return value.Int(new(big.Int).Exp(li, exponent, nil)), xsdtype.Integer, nil
	}
	baseRat, _ := l.AsRat()
	return value.Rat(ratPow(baseRat, exponent)), xsdtype.Decimal, nil
}

// ratPow computes base^exp by repeated squaring for a non-negative exp.
func ratPow(base *big.Rat, exp *big.Int) *big.Rat {
	result := big.NewRat(1, 1)
	b := new(big.Rat).Set(base)
	e := new(big.Int).Set(exp)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
		}
		b.Mul(b, b)
		e.Rsh(e, 1)
	}
	return result
}

// floor implements Floor: Integer unchanged; Rational floored toward −∞
// (spec.md §4.2); Double floored then cast to Integer; NaN and ±Inf fault.
func (e *Evaluator) floor(v value.NumberValue) (value.NumberValue, xsdtype.DeclaredType, error) {
	switch v.Kind() {
	case value.IntegerKind:
		n, _ := v.BigInt()
		return value.Int(n), xsdtype.Integer, nil
	case value.RationalKind:
		r, _ := v.RatValue()
		q := new(big.Int)
		// DivMod on a big.Rat's (num, denom) pair is Euclidean division; since
		// Denom() is always positive, this is floor division toward -infinity.
		q.DivMod(r.Num(), r.Denom(), new(big.Int))
		return value.Int(q), xsdtype.Integer, nil
	case value.DoubleKind:
		f, _ := v.Float64Value()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return value.NumberValue{}, xsdtype.Unspecified, numerr.Fault("Floor of non-finite double %v", f)
		}
		bi, _ := big.NewFloat(math.Floor(f)).Int(nil)
		return value.Int(bi), xsdtype.Integer, nil
	default:
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Fault("Floor on invalid NumberValue")
	}
}

// negate implements unary minus across all three kinds.
func (e *Evaluator) negate(v value.NumberValue) (value.NumberValue, xsdtype.DeclaredType, error) {
	switch v.Kind() {
	case value.IntegerKind:
		n, _ := v.BigInt()
		return value.Int(new(big.Int).Neg(n)), xsdtype.Integer, nil
	case value.RationalKind:
		r, _ := v.RatValue()
		return value.Rat(new(big.Rat).Neg(r)), xsdtype.Decimal, nil
	case value.DoubleKind:
		f, _ := v.Float64Value()
		return value.Dbl(-f), xsdtype.Double, nil
	default:
		return value.NumberValue{}, xsdtype.Unspecified, numerr.Fault("Negate on invalid NumberValue")
	}
}
