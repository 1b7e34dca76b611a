package emit

import (
	"bytes"
	"io"
	"math"
	"math/big"
	"strconv"

	"github.com/terminusdb-labs/numeric-core/numeric/numerr"
	"github.com/terminusdb-labs/numeric-core/numeric/project"
)

// EmitBytes assembles wf into a JSON number token and returns the raw bytes.
// See Emit for the assembly rules.
func EmitBytes(wf project.WireForm, opts ...EmitOption) ([]byte, error) {
	cfg := applyOptions(opts)

	var buf bytes.Buffer
	if err := writeToken(&buf, wf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Emit writes wf to w as a JSON number token (or, under WithStringIntegers,
// a quoted JSON string for out-of-range integers). It never routes the
// digits through a language-level number formatter for the exact paths
// (spec.md §4.4's critical rule); the only formatter call is
// strconv.FormatFloat for WireDouble, the spec's sole admissible float
// egress point.
//
// Returns io.ErrShortWrite if w accepts fewer bytes than produced.
func Emit(w io.Writer, wf project.WireForm, opts ...EmitOption) (int64, error) {
	data, err := EmitBytes(wf, opts...)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err == nil && n < len(data) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), err
}

func writeToken(buf *bytes.Buffer, wf project.WireForm, cfg *emitConfig) error {
	switch {
	case wf.IsInt():
		return writeInt(buf, wf, cfg)
	case wf.IsDec():
		writeDecimal(buf, wf)
		return nil
	case wf.IsDouble():
		return writeDouble(buf, wf)
	default:
		return numerr.Fault("emit: invalid WireForm")
	}
}

func writeInt(buf *bytes.Buffer, wf project.WireForm, cfg *emitConfig) error {
	if cfg.stringIntegers && exceedsSafeInteger(wf) {
		buf.WriteByte('"')
		writeSignedDigits(buf, wf.Negative(), wf.IntDigits())
		buf.WriteByte('"')
		return nil
	}
	writeSignedDigits(buf, wf.Negative(), wf.IntDigits())
	return nil
}

func exceedsSafeInteger(wf project.WireForm) bool {
	n, ok := new(big.Int).SetString(wf.IntDigits(), 10)
	if !ok {
		return false
	}
	return n.CmpAbs(maxSafeInteger) > 0
}

func writeDecimal(buf *bytes.Buffer, wf project.WireForm) {
	writeSignedDigits(buf, wf.Negative(), wf.IntDigits())
	if wf.FracDigits() != "" {
		buf.WriteByte('.')
		buf.WriteString(wf.FracDigits())
	}
}

func writeDouble(buf *bytes.Buffer, wf project.WireForm) error {
	f := wf.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return numerr.Fault("emit: non-finite double %v has no JSON number representation", f)
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

func writeSignedDigits(buf *bytes.Buffer, negative bool, digits string) {
	if negative {
		buf.WriteByte('-')
	}
	buf.WriteString(digits)
}
