package kvshape

import (
	"context"

	eng "github.com/reoring/kvshape/internal/engine"
)

// Pair is one key/value text entry of the input. Keys may repeat.
type Pair = eng.Pair

// Param is a named constructor parameter.
type Param struct {
	Name  string
	Shape AnyShape
}

// Constructor describes one way of building a *T from parsed parameters.
type Constructor[T any] struct {
	Params []Param
	// Internal constructors are described but never chosen by Assemble.
	Internal bool
	// New receives the parsed parameter values in Params order.
	New func(args []any) (*T, error)
}

// Field describes a field that may be assigned after construction. Fields
// without Set are not settable.
type Field[T any] struct {
	Name  string
	Shape AnyShape
	Set   func(dst *T, v any) error
}

// Settable reports whether the field accepts assignments.
func (f Field[T]) Settable() bool { return f.Set != nil }

// Target describes a type that Assemble can construct: its candidate
// constructors and assignable fields, both in declaration order.
type Target[T any] struct {
	Name         string
	Constructors []Constructor[T]
	Fields       []Field[T]
}

func (t *Target[T]) ctors() []eng.Ctor {
	out := make([]eng.Ctor, len(t.Constructors))
	for i, c := range t.Constructors {
		params := make([]eng.Param, len(c.Params))
		for j, p := range c.Params {
			params[j] = eng.Param{Name: p.Name, Parse: parseFunc(p.Shape)}
		}
		out[i] = eng.Ctor{Params: params, Eligible: !c.Internal && c.New != nil}
	}
	return out
}

func (t *Target[T]) fieldRefs() []eng.FieldRef {
	out := make([]eng.FieldRef, len(t.Fields))
	for i, f := range t.Fields {
		out[i] = eng.FieldRef{Name: f.Name, Settable: f.Settable() && f.Shape != nil}
	}
	return out
}

func parseFunc(s AnyShape) eng.ParseFunc {
	return func(ctx context.Context, text string) (any, bool) {
		return TryParseAny(ctx, s, text)
	}
}
