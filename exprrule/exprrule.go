package exprrule

import (
	"errors"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dmitrymomot/formkit"
)

// Condition is a compiled boolean expression over a form snapshot.
type Condition struct {
	program *vm.Program
	source  string
	refs    []string
}

// Compile compiles a boolean condition. refs declares the field names the
// expression reads so that form registration can verify them.
func Compile(condition string, refs ...string) (Condition, error) {
	if condition == "" {
		return Condition{}, ErrEmptyCondition
	}
	program, err := expr.Compile(condition,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return Condition{}, errors.Join(ErrInvalidCondition, err)
	}
	return Condition{program: program, source: condition, refs: refs}, nil
}

// MustCompile is Compile for declaration sites; it panics on a malformed
// condition.
func MustCompile(condition string, refs ...string) Condition {
	c, err := Compile(condition, refs...)
	if err != nil {
		panic("exprrule: " + err.Error())
	}
	return c
}

// Eval reports whether the condition holds for ctx. Run failures and
// non-boolean results evaluate as false.
func (c Condition) Eval(ctx formkit.Context) bool {
	if c.program == nil {
		return false
	}
	out, err := expr.Run(c.program, environment(ctx))
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

// Refs returns the declared field references.
func (c Condition) Refs() []string {
	return slices.Clone(c.refs)
}

// String returns the condition source.
func (c Condition) String() string {
	return c.source
}

// When gates inner on cond: while the condition holds the inner rule
// applies, otherwise the value passes. The failure message is the inner
// rule's own, and the references of both are declared.
func When[T any](cond Condition, inner formkit.Rule[T]) formkit.Rule[T] {
	return formkit.Rule[T]{
		Check: func(value T, ctx formkit.Context) bool {
			if !cond.Eval(ctx) {
				return true
			}
			return inner.Check == nil || inner.Check(value, ctx)
		},
		Error:   inner.Error,
		Explain: inner.Explain,
		Refs:    unionRefs(cond.refs, inner.Refs),
	}
}

// Require makes the field required while cond holds, the expression flavor
// of a conditional required rule.
func Require(cond Condition) formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, ctx formkit.Context) bool {
			if !cond.Eval(ctx) {
				return true
			}
			return strings.TrimSpace(value) != ""
		},
		Error: formkit.Message{
			Text:   "field is required",
			Key:    "validation.required_when",
			Values: map[string]any{"condition": cond.source},
		},
		Refs: slices.Clone(cond.refs),
	}
}

// environment flattens the snapshot for evaluation: one variable per field
// name plus a fields map for names that are not identifiers. A field
// literally named "fields" is reachable only through its own entry in that
// map.
func environment(ctx formkit.Context) map[string]any {
	fields := make(map[string]any, ctx.Len())
	env := make(map[string]any, ctx.Len()+1)
	for _, name := range ctx.Names() {
		if s, ok := ctx.Field(name); ok {
			fields[name] = s.Any()
			env[name] = s.Any()
		}
	}
	env["fields"] = fields
	return env
}

func unionRefs(a, b []string) []string {
	out := slices.Clone(a)
	for _, r := range b {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
