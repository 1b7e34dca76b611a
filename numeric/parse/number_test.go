package parse_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminusdb-labs/numeric-core/numeric/parse"
	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

func TestNumber_Integer(t *testing.T) {
	nv, declared, err := parse.Number("99999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Integer, declared)
	want, _ := new(big.Int).SetString("99999999999999999999", 10)
	assert.True(t, value.Equal(value.Int(want), nv))
}

func TestNumber_NegativeInteger(t *testing.T) {
	nv, declared, err := parse.Number("-42")
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Integer, declared)
	assert.True(t, value.Equal(value.IntFromInt64(-42), nv))
}

func TestNumber_Decimal(t *testing.T) {
	nv, declared, err := parse.Number("0.1")
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Decimal, declared)
	want := value.RatFromFrac(big.NewInt(1), big.NewInt(10))
	assert.True(t, value.Equal(want, nv))
}

func TestNumber_DecimalAddition_NeverBinaryFloat(t *testing.T) {
	a, _, err := parse.Number("0.1")
	require.NoError(t, err)
	b, _, err := parse.Number("0.2")
	require.NoError(t, err)

	ar, _ := a.AsRat()
	br, _ := b.AsRat()
	sum := new(big.Rat).Add(ar, br)
	want := value.RatFromFrac(big.NewInt(3), big.NewInt(10))
	assert.True(t, value.Equal(want, value.Rat(sum)), "0.1 + 0.2 must equal exactly 3/10")
}

func TestNumber_ScientificNotation(t *testing.T) {
	nv, declared, err := parse.Number("1.5e2")
	require.NoError(t, err)
	assert.Equal(t, xsdtype.Decimal, declared)
	assert.Equal(t, 0, value.Compare(value.IntFromInt64(150), nv))
}

func TestNumber_ScientificNotationNegativeExponent(t *testing.T) {
	nv, _, err := parse.Number("2.5e-2")
	require.NoError(t, err)
	want := value.RatFromFrac(big.NewInt(25), big.NewInt(1000))
	assert.True(t, value.Equal(want, nv))
}

func TestNumber_Malformed(t *testing.T) {
	_, _, err := parse.Number("12x34")
	assert.Error(t, err)
}

func TestNumber_Empty(t *testing.T) {
	_, _, err := parse.Number("")
	assert.Error(t, err)
}

