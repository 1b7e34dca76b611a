package project_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminusdb-labs/numeric-core/numeric/project"
	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

func rat(num, den int64) value.NumberValue {
	return value.RatFromFrac(big.NewInt(num), big.NewInt(den))
}

func TestProject_IntegerFidelity(t *testing.T) {
	n, _ := new(big.Int).SetString("999999999998000000000001", 10)
	wf, err := project.Project(value.Int(n), xsdtype.Integer)
	require.NoError(t, err)
	assert.True(t, wf.IsInt())
	assert.False(t, wf.Negative())
	assert.Equal(t, "999999999998000000000001", wf.IntDigits())
}

func TestProject_NegativeInteger(t *testing.T) {
	n, _ := new(big.Int).SetString("-999999999999998000000000000001", 10)
	wf, err := project.Project(value.Int(n), xsdtype.Integer)
	require.NoError(t, err)
	assert.True(t, wf.Negative())
	assert.Equal(t, "999999999999998000000000000001", wf.IntDigits())
}

func TestProject_TerminatingDecimal(t *testing.T) {
	wf, err := project.Project(rat(3, 10), xsdtype.Decimal)
	require.NoError(t, err)
	assert.True(t, wf.IsDec())
	assert.Equal(t, "0", wf.IntDigits())
	assert.Equal(t, "3", wf.FracDigits())
}

func TestProject_TerminatingDecimal_075(t *testing.T) {
	wf, err := project.Project(rat(75, 1000), xsdtype.Decimal)
	require.NoError(t, err)
	assert.Equal(t, "0", wf.IntDigits())
	assert.Equal(t, "075", wf.FracDigits())
}

func TestProject_OneThird_PrecisionFloor(t *testing.T) {
	wf, err := project.Project(rat(1, 3), xsdtype.Decimal)
	require.NoError(t, err)
	assert.Equal(t, "0", wf.IntDigits())
	assert.Equal(t, "33333333333333333333", wf.FracDigits())
	assert.Len(t, wf.FracDigits(), project.DecimalDigits)
}

func TestProject_OneSeventh(t *testing.T) {
	wf, err := project.Project(rat(1, 7), xsdtype.Decimal)
	require.NoError(t, err)
	assert.Equal(t, "14285714285714285714", wf.FracDigits())
}

func TestProject_OneOverMillionMinusOne(t *testing.T) {
	wf, err := project.Project(rat(1, 999999), xsdtype.Decimal)
	require.NoError(t, err)
	assert.Equal(t, "00000100000100000100", wf.FracDigits())
}

func TestProject_RationalAsIntegerWhenIntegral(t *testing.T) {
	wf, err := project.Project(rat(4, 2), xsdtype.Integer)
	require.NoError(t, err)
	assert.True(t, wf.IsInt())
	assert.Equal(t, "2", wf.IntDigits())
}

func TestProject_RationalAsIntegerWhenNotIntegral_Fails(t *testing.T) {
	_, err := project.Project(rat(1, 2), xsdtype.Integer)
	assert.Error(t, err)
}

func TestProject_Double(t *testing.T) {
	wf, err := project.Project(value.Dbl(2.5), xsdtype.Double)
	require.NoError(t, err)
	assert.True(t, wf.IsDouble())
	assert.Equal(t, 2.5, wf.Float())
}

func TestProject_UnknownDeclaredType_Fails(t *testing.T) {
	_, err := project.Project(rat(1, 2), xsdtype.Unspecified)
	assert.Error(t, err)
}
