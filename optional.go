package kvshape

import (
	"context"
	"fmt"
)

// Optional wraps a shape so that empty text means "no value". The result is
// a pointer: nil when absent, otherwise a pointer to the parsed value.
func Optional[T any](inner Shape[T]) Shape[*T] {
	return optionalShape[T]{inner: inner}
}

type optionalShape[T any] struct{ inner Shape[T] }

func (o optionalShape[T]) Name() string {
	if o.inner == nil {
		return "optional"
	}
	return o.inner.Name() + "?"
}

func (o optionalShape[T]) ParseText(ctx context.Context, text string) (*T, error) {
	if text == "" {
		return nil, nil
	}
	v, err := Parse(ctx, o.inner, text)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (o optionalShape[T]) Unwrap() AnyShape { return Erase(o.inner) }

func (o optionalShape[T]) IsAbsent(v *T) bool { return v == nil }

func (o optionalShape[T]) FormatText(v *T) string {
	if v == nil {
		return ""
	}
	if f, ok := o.inner.(Formatter[T]); ok {
		return f.FormatText(*v)
	}
	return fmt.Sprint(*v)
}

// OptionalAny is the erased counterpart of Optional, for shapes only known at
// run time. Empty text parses to (nil, not present).
func OptionalAny(inner AnyShape) AnyShape { return optionalAny{inner: inner} }

type optionalAny struct{ inner AnyShape }

func (o optionalAny) Name() string {
	if o.inner == nil {
		return "optional"
	}
	return o.inner.Name() + "?"
}

func (o optionalAny) Unwrap() AnyShape { return o.inner }

func (o optionalAny) ParseAny(ctx context.Context, text string) (any, bool, error) {
	if text == "" {
		return nil, false, nil
	}
	if o.inner == nil {
		return nil, false, invalidArgument("shape is nil")
	}
	return o.inner.ParseAny(ctx, text)
}

func (o optionalAny) FormatAny(v any) (string, bool) {
	if v == nil {
		return "", true
	}
	if f, ok := o.inner.(AnyFormatter); ok {
		return f.FormatAny(v)
	}
	return "", false
}
