package eval

import (
	"maps"

	"github.com/terminusdb-labs/numeric-core/numeric/value"
	"github.com/terminusdb-labs/numeric-core/numeric/xsdtype"
)

// Scope is the opaque variable-binding lookup closure spec.md §6 describes:
// "The core resolves bindings via an opaque lookup closure supplied by the
// caller." It is immutable; WithVar returns a new Scope rather than mutating
// the receiver, so the same base scope can be reused across concurrent
// evaluations (spec.md §5 concurrency model).
type Scope interface {
	// Lookup returns the value bound to name and its declared XSD type, or
	// (zero, zero, false) if name is unbound.
	Lookup(name string) (value.NumberValue, xsdtype.DeclaredType, bool)

	// WithVar returns a new Scope with name bound to v, shadowing any
	// existing binding of the same name.
	WithVar(name string, v value.NumberValue, declared xsdtype.DeclaredType) Scope
}

type binding struct {
	val      value.NumberValue
	declared xsdtype.DeclaredType
}

type mapScope struct {
	vars map[string]binding
}

// EmptyScope returns a Scope with no bindings.
func EmptyScope() Scope {
	return &mapScope{vars: make(map[string]binding)}
}

// ScopeFromMap builds a Scope from a set of already-typed bindings.
func ScopeFromMap(bindings map[string]struct {
	Value    value.NumberValue
	Declared xsdtype.DeclaredType
}) Scope {
	vars := make(map[string]binding, len(bindings))
	for name, b := range bindings {
		vars[name] = binding{val: b.Value, declared: b.Declared}
	}
	return &mapScope{vars: vars}
}

func (s *mapScope) Lookup(name string) (value.NumberValue, xsdtype.DeclaredType, bool) {
	b, ok := s.vars[name]
	if !ok {
		return value.NumberValue{}, xsdtype.Unspecified, false
	}
	return b.val, b.declared, true
}

func (s *mapScope) WithVar(name string, v value.NumberValue, declared xsdtype.DeclaredType) Scope {
	newVars := make(map[string]binding, len(s.vars)+1)
	maps.Copy(newVars, s.vars)
	newVars[name] = binding{val: v, declared: declared}
	return &mapScope{vars: newVars}
}
