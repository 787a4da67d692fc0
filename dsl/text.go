package dsl

import (
	"context"
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	kvshape "github.com/reoring/kvshape"
)

// Text returns a shape for any T, dispatched by capability. When *T
// implements encoding.TextUnmarshaler that conversion is used; otherwise text
// is coerced according to T's kind (string, bool, integers, floats). Kinds
// with no text form fail with an unsupported issue.
func Text[T any]() kvshape.Shape[T] {
	return textShape[T]{name: reflect.TypeFor[T]().String()}
}

type textShape[T any] struct{ name string }

func (s textShape[T]) Name() string { return s.name }

func (s textShape[T]) ParseText(ctx context.Context, text string) (T, error) {
	var v, zero T
	if u, ok := any(&v).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(text)); err != nil {
			return zero, kvshape.Issues{kvshape.IssueFor(kvshape.CodeParseError, s.name, text, err)}
		}
		return v, nil
	}
	if err := coerce(reflect.ValueOf(&v).Elem(), s.name, text); err != nil {
		return zero, err
	}
	return v, nil
}

func (s textShape[T]) FormatText(v T) string {
	if m, ok := any(v).(encoding.TextMarshaler); ok {
		if b, err := m.MarshalText(); err == nil {
			return string(b)
		}
	}
	if m, ok := any(&v).(encoding.TextMarshaler); ok {
		if b, err := m.MarshalText(); err == nil {
			return string(b)
		}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	}
	return fmt.Sprint(v)
}

// coerce is the generic fallback for types without their own text
// conversion.
func coerce(rv reflect.Value, shape, text string) error {
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(text)
	case reflect.Bool:
		b, err := parseBool(text)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, rv.Type().Bits())
		if err != nil {
			return numError(shape, text, err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, rv.Type().Bits())
		if err != nil {
			return numError(shape, text, err)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return numError(shape, text, err)
		}
		rv.SetFloat(f)
	default:
		return kvshape.Issues{kvshape.IssueFor(kvshape.CodeUnsupported, shape, text, nil)}
	}
	return nil
}
