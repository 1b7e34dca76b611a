package xsdtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want xsdtype.DeclaredType
	}{
		{"xsd:integer", xsdtype.Integer},
		{"integer", xsdtype.Integer},
		{"xsd:decimal", xsdtype.Decimal},
		{"xsd:double", xsdtype.Double},
		{"xsd:float", xsdtype.Float},
	}
	for _, tt := range tests {
		got, err := xsdtype.Parse(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := xsdtype.Parse("xsd:string")
	assert.Error(t, err)
}

func TestIsFloating(t *testing.T) {
	assert.True(t, xsdtype.Double.IsFloating())
	assert.True(t, xsdtype.Float.IsFloating())
	assert.False(t, xsdtype.Integer.IsFloating())
	assert.False(t, xsdtype.Decimal.IsFloating())
}

func TestIsExact(t *testing.T) {
	assert.True(t, xsdtype.Integer.IsExact())
	assert.True(t, xsdtype.Decimal.IsExact())
	assert.False(t, xsdtype.Double.IsExact())
}

func TestString(t *testing.T) {
	assert.Equal(t, "xsd:integer", xsdtype.Integer.String())
	assert.Equal(t, "xsd:unspecified", xsdtype.Unspecified.String())
}
