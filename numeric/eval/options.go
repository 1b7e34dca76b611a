package eval

import "log/slog"

// EvalOption configures an Evaluator.
type EvalOption func(*evalConfig)

type evalConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for operation-boundary and per-node debug
// logging. If not set, no logging is performed.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(c *evalConfig) {
		c.logger = logger
	}
}

func applyOptions(opts []EvalOption) *evalConfig {
	cfg := &evalConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
