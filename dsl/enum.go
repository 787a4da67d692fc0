package dsl

import (
	"context"
	"slices"
	"strings"

	kvshape "github.com/reoring/kvshape"
)

// Enum returns a shape mapping tokens to values. An exact token wins,
// then tokens compare case-insensitively; FormatText returns the first token, in sorted order,
// that maps to the value.
func Enum[T comparable](name string, values map[string]T) kvshape.Shape[T] {
	tokens := make([]string, 0, len(values))
	for k := range values {
		tokens = append(tokens, k)
	}
	slices.Sort(tokens)
	return enumShape[T]{name: name, tokens: tokens, values: values}
}

type enumShape[T comparable] struct {
	name   string
	tokens []string
	values map[string]T
}

func (s enumShape[T]) Name() string { return s.name }

func (s enumShape[T]) ParseText(ctx context.Context, text string) (T, error) {
	if v, ok := s.values[text]; ok {
		return v, nil
	}
	for _, tok := range s.tokens {
		if strings.EqualFold(tok, text) {
			return s.values[tok], nil
		}
	}
	var zero T
	iss := kvshape.IssueFor(kvshape.CodeInvalidEnum, s.name, text, nil)
	iss.Hint = strings.Join(s.tokens, "|")
	return zero, kvshape.Issues{iss}
}

func (s enumShape[T]) FormatText(v T) string {
	for _, tok := range s.tokens {
		if s.values[tok] == v {
			return tok
		}
	}
	return ""
}
