package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftovers(t *testing.T) {
	pairs := []Pair{{"name", "a"}, {"age", "1"}, {"name", "b"}, {"Name", "c"}, {"number", "7"}}
	left := Leftovers(pairs, []Parsed{{Key: "name", Value: "a"}, {Key: "age", Value: 1}})
	assert.Equal(t, []Pair{{"Name", "c"}, {"number", "7"}}, left)

	assert.Equal(t, pairs, Leftovers(pairs, nil))
	assert.Empty(t, Leftovers(nil, nil))
}

func TestFieldIndex(t *testing.T) {
	fields := []FieldRef{
		{Name: "Secret", Settable: false},
		{Name: "Number", Settable: true},
		{Name: "FirstName", Settable: true},
		{Name: "number", Settable: true},
	}
	title := func(s string) string {
		parts := strings.Split(s, "_")
		for i, p := range parts {
			if p != "" {
				parts[i] = strings.ToUpper(p[:1]) + p[1:]
			}
		}
		return strings.Join(parts, "")
	}

	// first case-insensitive match wins
	assert.Equal(t, 1, FieldIndex(fields, "NUMBER", title))
	assert.Equal(t, 2, FieldIndex(fields, "first_name", title))
	assert.Equal(t, -1, FieldIndex(fields, "first_name", nil))
	// not settable
	assert.Equal(t, -1, FieldIndex(fields, "secret", title))
	assert.Equal(t, -1, FieldIndex(fields, "missing", title))
	assert.Equal(t, -1, FieldIndex(fields, "x", func(string) string { return "" }))
}
