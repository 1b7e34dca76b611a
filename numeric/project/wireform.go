package project

// WireForm is the projector's output: a fully rendered representation ready
// for numeric/emit to assemble into a JSON number token (spec.md §4.3).
// Exactly one of the accessor predicates (IsInt/IsDec/IsDouble) is true.
type WireForm struct {
	kind wireKind

	negative bool
	intDigit string // WireInt: full digit sequence; WireDec: integer-part digits

	fracDigits string // WireDec only

	float float64 // WireDouble only
}

type wireKind int

const (
	wireInt wireKind = iota
	wireDec
	wireDouble
)

// WireInt builds an arbitrary-precision integer wire form: a sign plus a
// decimal digit sequence, no scientific notation ever (spec.md §4.3 rule 1).
func WireInt(negative bool, digits string) WireForm {
	return WireForm{kind: wireInt, negative: negative, intDigit: digits}
}

// WireDec builds a decimal wire form: sign, integer-part digits, and
// fractional-part digits (spec.md §4.3 rule 2).
func WireDec(negative bool, intPart, fracPart string) WireForm {
	return WireForm{kind: wireDec, negative: negative, intDigit: intPart, fracDigits: fracPart}
}

// WireDouble builds a double wire form, rendered later by numeric/emit in
// shortest round-trip form.
func WireDouble(f float64) WireForm {
	return WireForm{kind: wireDouble, float: f}
}

// IsInt reports whether w is a WireInt.
func (w WireForm) IsInt() bool { return w.kind == wireInt }

// IsDec reports whether w is a WireDec.
func (w WireForm) IsDec() bool { return w.kind == wireDec }

// IsDouble reports whether w is a WireDouble.
func (w WireForm) IsDouble() bool { return w.kind == wireDouble }

// Negative reports the sign for WireInt/WireDec forms.
func (w WireForm) Negative() bool { return w.negative }

// IntDigits returns the full digit sequence for WireInt, or the integer-part
// digits for WireDec.
func (w WireForm) IntDigits() string { return w.intDigit }

// FracDigits returns the fractional-part digits for WireDec.
func (w WireForm) FracDigits() string { return w.fracDigits }

// Float returns the wrapped float64 for WireDouble.
func (w WireForm) Float() float64 { return w.float }
