package emit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminusdb-labs/numeric-core/numeric/emit"
	"github.com/terminusdb-labs/numeric-core/numeric/project"
)

func TestEmit_Integer(t *testing.T) {
	wf := project.WireInt(false, "999999999998000000000001")
	data, err := emit.EmitBytes(wf)
	require.NoError(t, err)
	assert.Equal(t, "999999999998000000000001", string(data))
}

func TestEmit_NegativeInteger(t *testing.T) {
	wf := project.WireInt(true, "42")
	data, err := emit.EmitBytes(wf)
	require.NoError(t, err)
	assert.Equal(t, "-42", string(data))
}

func TestEmit_Decimal(t *testing.T) {
	wf := project.WireDec(false, "0", "33333333333333333333")
	data, err := emit.EmitBytes(wf)
	require.NoError(t, err)
	assert.Equal(t, "0.33333333333333333333", string(data))
}

func TestEmit_DecimalNoFraction(t *testing.T) {
	wf := project.WireDec(false, "2", "")
	data, err := emit.EmitBytes(wf)
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))
}

func TestEmit_Double(t *testing.T) {
	wf := project.WireDouble(15.625)
	data, err := emit.EmitBytes(wf)
	require.NoError(t, err)
	assert.Equal(t, "15.625", string(data))
}

func TestEmit_Double_NonFinite_Faults(t *testing.T) {
	_, err := emit.EmitBytes(project.WireDouble(math.Inf(1)))
	assert.Error(t, err)

	_, err = emit.EmitBytes(project.WireDouble(math.NaN()))
	assert.Error(t, err)
}

func TestEmit_StringIntegers_WithinRange(t *testing.T) {
	wf := project.WireInt(false, "12345")
	data, err := emit.EmitBytes(wf, emit.WithStringIntegers(true))
	require.NoError(t, err)
	assert.Equal(t, "12345", string(data))
}

func TestEmit_StringIntegers_OutOfRange(t *testing.T) {
	wf := project.WireInt(false, "999999999999999999999")
	data, err := emit.EmitBytes(wf, emit.WithStringIntegers(true))
	require.NoError(t, err)
	assert.Equal(t, `"999999999999999999999"`, string(data))
}

func TestEmit_WriterReturnsByteCount(t *testing.T) {
	var buf boundedWriter
	wf := project.WireInt(false, "123")
	n, err := emit.Emit(&buf, wf)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

type boundedWriter struct {
	data []byte
}

func (b *boundedWriter) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}
