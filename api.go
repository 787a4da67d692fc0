package kvshape

import (
	"context"
	"fmt"
)

// Shape describes how text becomes a value of type T.
type Shape[T any] interface {
	// Name identifies the shape in messages and registries (e.g. "int64").
	Name() string
	// ParseText converts text into T. Implementations must not depend on the
	// host locale.
	ParseText(ctx context.Context, text string) (T, error)
}

// Formatter is implemented by shapes with a canonical text form, so that
// Parse(s, s.FormatText(v)) returns v.
type Formatter[T any] interface {
	FormatText(v T) string
}

// Wrapper is implemented by optional shapes. Unwrap returns the underlying
// shape in erased form.
type Wrapper interface {
	Unwrap() AnyShape
}

// Absence is implemented by shapes that can produce "no value".
type Absence[T any] interface {
	IsAbsent(v T) bool
}

// AnyShape is the erased view of a Shape used by target descriptors, where
// parameters and fields of different types share one list.
type AnyShape interface {
	Name() string
	// ParseAny parses text and reports whether the result carries a value.
	ParseAny(ctx context.Context, text string) (v any, present bool, err error)
}

// AnyFormatter is implemented by erased shapes that can render a value
// produced by ParseAny back into text.
type AnyFormatter interface {
	FormatAny(v any) (string, bool)
}

// FormatAny renders v with the formatter of s. Nil values render as empty
// text; values the shape cannot format fall back to fmt.Sprint.
func FormatAny(s AnyShape, v any) string {
	if v == nil {
		return ""
	}
	if f, ok := s.(AnyFormatter); ok {
		if text, ok := f.FormatAny(v); ok {
			return text
		}
	}
	return fmt.Sprint(v)
}

// Parse converts text with s.
//
// A nil shape fails with invalid_argument. An optional shape given empty text
// yields its zero value (no value) without error. Any other failure is
// returned as Issues matching ErrParse.
func Parse[T any](ctx context.Context, s Shape[T], text string) (T, error) {
	var zero T
	if s == nil {
		return zero, invalidArgument("shape is nil")
	}
	if _, ok := s.(Wrapper); ok && text == "" {
		return zero, nil
	}
	v, err := s.ParseText(ctx, text)
	if err != nil {
		return zero, asParseIssues(err, s.Name(), text)
	}
	return v, nil
}

// ParseNullable is like Parse but distinguishes absent text (nil) from empty
// text. Absent text is accepted only by optional shapes.
func ParseNullable[T any](ctx context.Context, s Shape[T], text *string) (T, error) {
	var zero T
	if s == nil {
		return zero, invalidArgument("shape is nil")
	}
	if text == nil {
		if _, ok := s.(Wrapper); ok {
			return zero, nil
		}
		return zero, invalidArgument("text is required for shape " + s.Name())
	}
	return Parse(ctx, s, *text)
}

// TryParse parses text into T, returning (zero, false) on any failure. It
// never panics, even when the shape does.
func TryParse[T any](ctx context.Context, s Shape[T], text string) (v T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, ok = zero, false
		}
	}()
	val, err := Parse(ctx, s, text)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// IsAbsent reports whether v is the "no value" result of s.
func IsAbsent[T any](s Shape[T], v T) bool {
	if a, ok := s.(Absence[T]); ok {
		return a.IsAbsent(v)
	}
	return false
}

// Erase adapts a typed shape to AnyShape.
func Erase[T any](s Shape[T]) AnyShape {
	if s == nil {
		return nil
	}
	if as, ok := s.(AnyShape); ok {
		return as
	}
	return erased[T]{s: s}
}

type erased[T any] struct{ s Shape[T] }

func (e erased[T]) Name() string { return e.s.Name() }

func (e erased[T]) ParseAny(ctx context.Context, text string) (any, bool, error) {
	v, err := Parse(ctx, e.s, text)
	if err != nil {
		return nil, false, err
	}
	if IsAbsent(e.s, v) {
		return nil, false, nil
	}
	return v, true, nil
}

func (e erased[T]) FormatAny(v any) (string, bool) {
	f, ok := e.s.(Formatter[T])
	if !ok {
		return "", false
	}
	tv, ok := v.(T)
	if !ok {
		return "", false
	}
	return f.FormatText(tv), true
}

// ParseAny is the erased counterpart of Parse. Absent results are returned as
// a nil value.
func ParseAny(ctx context.Context, s AnyShape, text string) (any, error) {
	if s == nil {
		return nil, invalidArgument("shape is nil")
	}
	v, _, err := s.ParseAny(ctx, text)
	if err != nil {
		return nil, asParseIssues(err, s.Name(), text)
	}
	return v, nil
}

// TryParseAny parses text with s and reports whether a value was produced.
// Failures and absent results both report false.
func TryParseAny(ctx context.Context, s AnyShape, text string) (v any, present bool) {
	defer func() {
		if r := recover(); r != nil {
			v, present = nil, false
		}
	}()
	if s == nil {
		return nil, false
	}
	val, ok, err := s.ParseAny(ctx, text)
	if err != nil || !ok {
		return nil, false
	}
	return val, true
}

// asParseIssues keeps Issues as-is and wraps foreign errors into parse_error.
func asParseIssues(err error, shape, text string) error {
	if _, ok := AsIssues(err); ok {
		return err
	}
	return Issues{IssueFor(CodeParseError, shape, text, err)}
}
