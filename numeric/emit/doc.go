// Package emit implements spec.md §4.4: it assembles a
// numeric/project.WireForm into a JSON number token without ever routing the
// digits back through a language-level number formatter that could re-parse
// through float64.
//
// The one admissible exception is WireDouble, whose shortest round-trip form
// is produced by strconv.FormatFloat — the sole float ingress/egress point
// the spec carves out for xsd:double/xsd:float. Integer and decimal wire
// forms are assembled byte-by-byte from the digit strings the projector
// already computed.
package emit
