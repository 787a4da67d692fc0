package dsl

import (
	"fmt"

	kvshape "github.com/reoring/kvshape"
)

// ParamOf is a typed constructor parameter. Use P to create one.
type ParamOf[V any] struct {
	name  string
	shape kvshape.Shape[V]
}

// P declares a constructor parameter matched by name against input keys.
func P[V any](name string, s kvshape.Shape[V]) ParamOf[V] {
	return ParamOf[V]{name: name, shape: s}
}

// Param returns the erased descriptor.
func (p ParamOf[V]) Param() kvshape.Param {
	return kvshape.Param{Name: p.name, Shape: kvshape.Erase(p.shape)}
}

// Ctor0 adapts a parameterless constructor.
func Ctor0[T any](fn func() *T) kvshape.Constructor[T] {
	return kvshape.Constructor[T]{
		New: func(args []any) (*T, error) { return fn(), nil },
	}
}

// Ctor1 adapts a one-parameter constructor.
func Ctor1[T, A any](a ParamOf[A], fn func(A) *T) kvshape.Constructor[T] {
	return kvshape.Constructor[T]{
		Params: []kvshape.Param{a.Param()},
		New: func(args []any) (*T, error) {
			return fn(Arg[A](args, 0)), nil
		},
	}
}

// Ctor2 adapts a two-parameter constructor.
func Ctor2[T, A, B any](a ParamOf[A], b ParamOf[B], fn func(A, B) *T) kvshape.Constructor[T] {
	return kvshape.Constructor[T]{
		Params: []kvshape.Param{a.Param(), b.Param()},
		New: func(args []any) (*T, error) {
			return fn(Arg[A](args, 0), Arg[B](args, 1)), nil
		},
	}
}

// Ctor3 adapts a three-parameter constructor.
func Ctor3[T, A, B, C any](a ParamOf[A], b ParamOf[B], c ParamOf[C], fn func(A, B, C) *T) kvshape.Constructor[T] {
	return kvshape.Constructor[T]{
		Params: []kvshape.Param{a.Param(), b.Param(), c.Param()},
		New: func(args []any) (*T, error) {
			return fn(Arg[A](args, 0), Arg[B](args, 1), Arg[C](args, 2)), nil
		},
	}
}

// Ctor4 adapts a four-parameter constructor.
func Ctor4[T, A, B, C, D any](a ParamOf[A], b ParamOf[B], c ParamOf[C], d ParamOf[D], fn func(A, B, C, D) *T) kvshape.Constructor[T] {
	return kvshape.Constructor[T]{
		Params: []kvshape.Param{a.Param(), b.Param(), c.Param(), d.Param()},
		New: func(args []any) (*T, error) {
			return fn(Arg[A](args, 0), Arg[B](args, 1), Arg[C](args, 2), Arg[D](args, 3)), nil
		},
	}
}

// CtorN adapts a constructor of any arity. fn receives the parsed values in
// params order; read them with Arg.
func CtorN[T any](fn func(args []any) (*T, error), params ...kvshape.Param) kvshape.Constructor[T] {
	return kvshape.Constructor[T]{Params: params, New: fn}
}

// Arg returns args[i] as V, or the zero V when the index is out of range or
// the value has another type.
func Arg[V any](args []any, i int) V {
	var zero V
	if i < 0 || i >= len(args) {
		return zero
	}
	v, ok := args[i].(V)
	if !ok {
		return zero
	}
	return v
}

// FieldOf declares a settable field.
func FieldOf[T, V any](name string, s kvshape.Shape[V], set func(*T, V)) kvshape.Field[T] {
	return kvshape.Field[T]{
		Name:  name,
		Shape: kvshape.Erase(s),
		Set: func(dst *T, v any) error {
			vv, ok := v.(V)
			if !ok {
				return fmt.Errorf("field %s: unexpected value type %T", name, v)
			}
			set(dst, vv)
			return nil
		},
	}
}

// ReadOnly declares a field that is described but never assigned.
func ReadOnly[T any](name string, s kvshape.AnyShape) kvshape.Field[T] {
	return kvshape.Field[T]{Name: name, Shape: s}
}

// Internal returns c marked as not eligible for assembly.
func Internal[T any](c kvshape.Constructor[T]) kvshape.Constructor[T] {
	c.Internal = true
	return c
}
