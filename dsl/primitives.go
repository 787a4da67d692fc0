package dsl

import (
	"context"
	"errors"
	"strconv"
	"strings"

	kvshape "github.com/reoring/kvshape"
)

// String returns the identity shape.
func String() kvshape.Shape[string] { return stringShape[string]{name: "string"} }

// StringOf returns the identity shape projected to a domain type with
// underlying string.
func StringOf[T ~string](name string) kvshape.Shape[T] { return stringShape[T]{name: name} }

type stringShape[T ~string] struct{ name string }

func (s stringShape[T]) Name() string { return s.name }

func (stringShape[T]) ParseText(ctx context.Context, text string) (T, error) { return T(text), nil }

func (stringShape[T]) FormatText(v T) string { return string(v) }

// Bool returns a shape accepting only "true" and "false", in any case.
func Bool() kvshape.Shape[bool] { return boolShape{} }

type boolShape struct{}

func (boolShape) Name() string { return "bool" }

func (boolShape) ParseText(ctx context.Context, text string) (bool, error) {
	return parseBool(text)
}

func (boolShape) FormatText(v bool) string { return strconv.FormatBool(v) }

func parseBool(text string) (bool, error) {
	switch {
	case strings.EqualFold(text, "true"):
		return true, nil
	case strings.EqualFold(text, "false"):
		return false, nil
	}
	iss := kvshape.IssueFor(kvshape.CodeParseError, "bool", text, strconv.ErrSyntax)
	iss.Hint = "true|false"
	return false, kvshape.Issues{iss}
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// Int returns a shape for base-10 int text.
func Int() kvshape.Shape[int] { return intShape[int]{name: "int", bits: strconv.IntSize} }

// Int8 returns a shape for base-10 int8 text.
func Int8() kvshape.Shape[int8] { return intShape[int8]{name: "int8", bits: 8} }

// Int16 returns a shape for base-10 int16 text.
func Int16() kvshape.Shape[int16] { return intShape[int16]{name: "int16", bits: 16} }

// Int32 returns a shape for base-10 int32 text.
func Int32() kvshape.Shape[int32] { return intShape[int32]{name: "int32", bits: 32} }

// Int64 returns a shape for base-10 int64 text.
func Int64() kvshape.Shape[int64] { return intShape[int64]{name: "int64", bits: 64} }

// IntOf returns a signed integer shape for a domain type. bits must match the
// width of T's underlying type.
func IntOf[T signed](name string, bits int) kvshape.Shape[T] {
	return intShape[T]{name: name, bits: bits}
}

type intShape[T signed] struct {
	name string
	bits int
}

func (s intShape[T]) Name() string { return s.name }

func (s intShape[T]) ParseText(ctx context.Context, text string) (T, error) {
	n, err := strconv.ParseInt(text, 10, s.bits)
	if err != nil {
		return 0, numError(s.name, text, err)
	}
	return T(n), nil
}

func (intShape[T]) FormatText(v T) string { return strconv.FormatInt(int64(v), 10) }

// Uint returns a shape for base-10 uint text.
func Uint() kvshape.Shape[uint] { return uintShape[uint]{name: "uint", bits: strconv.IntSize} }

// Uint8 returns a shape for base-10 uint8 text.
func Uint8() kvshape.Shape[uint8] { return uintShape[uint8]{name: "uint8", bits: 8} }

// Uint16 returns a shape for base-10 uint16 text.
func Uint16() kvshape.Shape[uint16] { return uintShape[uint16]{name: "uint16", bits: 16} }

// Uint32 returns a shape for base-10 uint32 text.
func Uint32() kvshape.Shape[uint32] { return uintShape[uint32]{name: "uint32", bits: 32} }

// Uint64 returns a shape for base-10 uint64 text.
func Uint64() kvshape.Shape[uint64] { return uintShape[uint64]{name: "uint64", bits: 64} }

type uintShape[T unsigned] struct {
	name string
	bits int
}

func (s uintShape[T]) Name() string { return s.name }

func (s uintShape[T]) ParseText(ctx context.Context, text string) (T, error) {
	n, err := strconv.ParseUint(text, 10, s.bits)
	if err != nil {
		return 0, numError(s.name, text, err)
	}
	return T(n), nil
}

func (uintShape[T]) FormatText(v T) string { return strconv.FormatUint(uint64(v), 10) }

// Float32 returns a shape for float32 text ('.' decimal separator).
func Float32() kvshape.Shape[float32] { return floatShape[float32]{name: "float32", bits: 32} }

// Float64 returns a shape for float64 text ('.' decimal separator).
func Float64() kvshape.Shape[float64] { return floatShape[float64]{name: "float64", bits: 64} }

type floatShape[T float] struct {
	name string
	bits int
}

func (s floatShape[T]) Name() string { return s.name }

func (s floatShape[T]) ParseText(ctx context.Context, text string) (T, error) {
	f, err := strconv.ParseFloat(text, s.bits)
	if err != nil {
		return 0, numError(s.name, text, err)
	}
	return T(f), nil
}

func (s floatShape[T]) FormatText(v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, s.bits)
}

// numError maps strconv failures onto issue codes: range errors are overflow,
// everything else is parse_error.
func numError(shape, text string, err error) error {
	code := kvshape.CodeParseError
	if errors.Is(err, strconv.ErrRange) {
		code = kvshape.CodeOverflow
	}
	return kvshape.Issues{kvshape.IssueFor(code, shape, text, err)}
}
