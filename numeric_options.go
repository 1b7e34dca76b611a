package numeric

import (
	"log/slog"

	"github.com/terminusdb-labs/numeric-core/numeric/emit"
	"github.com/terminusdb-labs/numeric-core/numeric/eval"
	"github.com/terminusdb-labs/numeric-core/numeric/project"
)

// facadeConfig fans a single option list out to the three pipeline stages'
// own functional options, so callers of EvaluateArithmetic/
// ProjectStoredLiteral configure the whole pipeline without importing
// numeric/eval, numeric/project, and numeric/emit directly.
type facadeConfig struct {
	evalOpts    []eval.EvalOption
	projectOpts []project.ProjectOption
	emitOpts    []emit.EmitOption
}

// EvalOption configures EvaluateArithmetic and ProjectStoredLiteral.
type EvalOption func(*facadeConfig)

// WithLogger sets the logger used for operation-boundary logging in the
// Evaluator.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(c *facadeConfig) { c.evalOpts = append(c.evalOpts, eval.WithLogger(logger)) }
}

// WithPrecisionFloor overrides the typed projector's default 20-digit
// precision floor (numeric/project.DecimalDigits).
func WithPrecisionFloor(n int) EvalOption {
	return func(c *facadeConfig) { c.projectOpts = append(c.projectOpts, project.WithPrecisionFloor(n)) }
}

// WithStringIntegers signals that the output consumer cannot handle
// xsd:integer values beyond its safe integer range; see
// numeric/emit.WithStringIntegers.
func WithStringIntegers(enabled bool) EvalOption {
	return func(c *facadeConfig) { c.emitOpts = append(c.emitOpts, emit.WithStringIntegers(enabled)) }
}

func applyEvalOptions(opts []EvalOption) *facadeConfig {
	cfg := &facadeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
