package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminusdb-labs/numeric-core/numeric/ast"
	"github.com/terminusdb-labs/numeric-core/numeric/wire"
)

func TestDecodeAST_BinaryOfLiterals(t *testing.T) {
	expr, err := wire.DecodeAST([]byte(`{"op": "Plus", "left": {"data": "1"}, "right": {"data": "2"}}`))
	require.NoError(t, err)
	assert.Equal(t, ast.OpPlus, expr.Op())
	assert.Len(t, expr.Children(), 2)
}

func TestDecodeAST_UnaryWithVar(t *testing.T) {
	expr, err := wire.DecodeAST([]byte(`{"op": "Floor", "argument": {"var": "x"}}`))
	require.NoError(t, err)
	assert.Equal(t, ast.OpFloor, expr.Op())
	require.Len(t, expr.Children(), 1)
	v, ok := expr.Children()[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name)
}

func TestDecodeAST_TypedLiteralDict(t *testing.T) {
	expr, err := wire.DecodeAST([]byte(`{"data": {"@type": "xsd:decimal", "@value": "0.1"}}`))
	require.NoError(t, err)
	lit, ok := expr.(*ast.Literal)
	require.True(t, ok)
	_, ok = lit.Val.(map[string]any)
	assert.True(t, ok)
}

func TestDecodeAST_NestedExpression(t *testing.T) {
	expr, err := wire.DecodeAST([]byte(`
		{"op": "Times",
		 "left": {"op": "Plus", "left": {"data": "1"}, "right": {"data": "2"}},
		 "right": {"data": "3"}}
	`))
	require.NoError(t, err)
	assert.Equal(t, ast.OpTimes, expr.Op())
	assert.Equal(t, ast.OpPlus, expr.Children()[0].Op())
}

func TestDecodeAST_Malformed(t *testing.T) {
	_, err := wire.DecodeAST([]byte(`{"op": "Plus", "left": {"data": "1"}}`))
	assert.Error(t, err)

	_, err = wire.DecodeAST([]byte(`{"nonsense": true}`))
	assert.Error(t, err)

	_, err = wire.DecodeAST([]byte(`{"op": "Bogus"}`))
	assert.Error(t, err)
}

func TestDecodeAST_ToleratesComments(t *testing.T) {
	expr, err := wire.DecodeAST([]byte(`{
		// a comment
		"op": "Negate",
		"argument": {"data": "5"},
	}`))
	require.NoError(t, err)
	assert.Equal(t, ast.OpNegate, expr.Op())
}
