package emit

import "math/big"

// maxSafeInteger is the largest integer magnitude a binary64-backed JSON
// consumer can round-trip exactly (2^53 - 1).
var maxSafeInteger = big.NewInt(1<<53 - 1)

// emitConfig holds the output consumer's out-of-band configuration
// (spec.md §4.4: "an out-of-band configuration not part of the numeric
// core").
type emitConfig struct {
	stringIntegers bool
}

// EmitOption configures Emit/EmitBytes.
type EmitOption func(*emitConfig)

// WithStringIntegers signals that the output consumer cannot handle
// xsd:integer values outside its safe integer range. When enabled, integers
// whose magnitude exceeds 2^53-1 are emitted as a quoted JSON string instead
// of a bare number token; integers within range are unaffected.
func WithStringIntegers(enabled bool) EmitOption {
	return func(c *emitConfig) { c.stringIntegers = enabled }
}

func applyOptions(opts []EmitOption) *emitConfig {
	cfg := &emitConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
