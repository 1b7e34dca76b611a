package eval_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminusdb-labs/numeric-core/numeric/ast"
	"github.com/terminusdb-labs/numeric-core/numeric/eval"
	"github.com/terminusdb-labs/numeric-core/numeric/numerr"
	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

func lit(s string) *ast.Literal { return ast.NewLiteral(s) }

func TestEvaluate_DecimalAddition(t *testing.T) {
	ev := eval.NewEvaluator()
	result, declared, err := ev.Evaluate(ast.Plus(lit("0.1"), lit("0.2")), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Decimal, declared)
	assert.Equal(t, 0, value.Compare(result, value.RatFromFrac(big.NewInt(3), big.NewInt(10))))
}

func TestEvaluate_DivideAlwaysRational(t *testing.T) {
	ev := eval.NewEvaluator()
	result, declared, err := ev.Evaluate(ast.Divide(lit("1"), lit("3")), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Decimal, declared)
	want := value.RatFromFrac(big.NewInt(1), big.NewInt(3))
	assert.Equal(t, 0, value.Compare(want, result))
}

func TestEvaluate_IntegerFidelity(t *testing.T) {
	ev := eval.NewEvaluator()
	result, declared, err := ev.Evaluate(
		ast.Plus(lit("99999999999999999999"), lit("1")), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Integer, declared)
	want, _ := new(big.Int).SetString("100000000000000000000", 10)
	assert.True(t, value.Equal(value.Int(want), result))
}

func TestEvaluate_LargeMultiplication(t *testing.T) {
	ev := eval.NewEvaluator()
	result, declared, err := ev.Evaluate(
		ast.Times(lit("999999999999"), lit("999999999999")), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Integer, declared)
	want, _ := new(big.Int).SetString("999999999998000000000001", 10)
	assert.True(t, value.Equal(value.Int(want), result))
}

func TestEvaluate_DivNonIntegerOperand_ErrorMatchesContract(t *testing.T) {
	ev := eval.NewEvaluator()
	_, _, err := ev.Evaluate(ast.Div(lit("10.5"), lit("3")), eval.EmptyScope())
	require.Error(t, err)
	// The test suite contract: message must match /type|integer|div|rational/i.
	msg := err.Error()
	assert.Regexp(t, `(?i)type|integer|div|rational`, msg)
}

func TestEvaluate_DivTruncatesTowardZero(t *testing.T) {
	ev := eval.NewEvaluator()
	result, declared, err := ev.Evaluate(ast.Div(lit("-7"), lit("2")), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Integer, declared)
	assert.True(t, value.Equal(value.IntFromInt64(-3), result))
}

func TestEvaluate_ExpPositiveIntegerExponent(t *testing.T) {
	ev := eval.NewEvaluator()
	result, declared, err := ev.Evaluate(ast.Exp(lit("2.5"), lit("3")), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Decimal, declared)
	want := value.RatFromFrac(big.NewInt(15625), big.NewInt(1000))
	assert.Equal(t, 0, value.Compare(want, result))
}

func TestEvaluate_ExpNegativeExponentOverExactBase(t *testing.T) {
	ev := eval.NewEvaluator()
	result, declared, err := ev.Evaluate(ast.Exp(lit("2"), lit("-2")), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Decimal, declared)
	want := value.RatFromFrac(big.NewInt(1), big.NewInt(4))
	assert.Equal(t, 0, value.Compare(want, result))
}

func TestEvaluate_ExpNonIntegerExponent_IsTypeError(t *testing.T) {
	ev := eval.NewEvaluator()
	_, _, err := ev.Evaluate(ast.Exp(lit("2"), lit("0.5")), eval.EmptyScope())
	require.Error(t, err)
	var numErr *numerr.NumericError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, numerr.TypeError, numErr.Kind)
}

func TestEvaluate_FloorRational(t *testing.T) {
	ev := eval.NewEvaluator()
	result, declared, err := ev.Evaluate(ast.Floor(lit("3.14285714285714285714")), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Integer, declared)
	assert.True(t, value.Equal(value.IntFromInt64(3), result))
}

func TestEvaluate_FloorNegativeRationalRoundsTowardNegativeInfinity(t *testing.T) {
	ev := eval.NewEvaluator()
	result, _, err := ev.Evaluate(ast.Floor(lit("-0.5")), eval.EmptyScope())
	require.NoError(t, err)
	assert.True(t, value.Equal(value.IntFromInt64(-1), result))
}

func TestEvaluate_FloorNaN_IsNumericFault(t *testing.T) {
	ev := eval.NewEvaluator()
	nan := ast.NewLiteral(value.Dbl(math.NaN()))
	_, _, err := ev.Evaluate(ast.Floor(nan), eval.EmptyScope())
	require.Error(t, err)
	var numErr *numerr.NumericError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, numerr.NumericFault, numErr.Kind)
}

func TestEvaluate_DivideByZero_Exact(t *testing.T) {
	ev := eval.NewEvaluator()
	_, _, err := ev.Evaluate(ast.Divide(lit("1"), lit("0")), eval.EmptyScope())
	require.Error(t, err)
}

func TestEvaluate_DivideByZero_Float_FollowsIEEE(t *testing.T) {
	ev := eval.NewEvaluator()
	one := ast.NewLiteral(value.Dbl(1))
	zero := ast.NewLiteral(value.Dbl(0))
	result, declared, err := ev.Evaluate(ast.Divide(one, zero), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Double, declared)
	f, _ := result.Float64Value()
	assert.True(t, math.IsInf(f, 0))
}

func TestEvaluate_VariableBinding(t *testing.T) {
	ev := eval.NewEvaluator()
	scope := eval.EmptyScope().WithVar("x", value.IntFromInt64(5), xsdtype.Integer)
	result, declared, err := ev.Evaluate(ast.Plus(ast.NewVar("x"), lit("1")), scope)
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Integer, declared)
	assert.True(t, value.Equal(value.IntFromInt64(6), result))
}

func TestEvaluate_UnboundVariable(t *testing.T) {
	ev := eval.NewEvaluator()
	_, _, err := ev.Evaluate(ast.NewVar("missing"), eval.EmptyScope())
	assert.Error(t, err)
}

func TestEvaluate_FloatContagion(t *testing.T) {
	ev := eval.NewEvaluator()
	result, declared, err := ev.Evaluate(ast.Plus(lit("1"), ast.NewLiteral(value.Dbl(0.5))), eval.EmptyScope())
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Double, declared)
	f, _ := result.Float64Value()
	assert.Equal(t, 1.5, f)
}
