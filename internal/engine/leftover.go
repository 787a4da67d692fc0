package engine

import "strings"

// Leftovers returns the pairs whose key was not consumed by args, in input
// order. Keys compare exactly: a pair spelled differently from the consumed
// one is a leftover even when it differs only in case.
func Leftovers(pairs []Pair, args []Parsed) []Pair {
	consumed := make(map[string]struct{}, len(args))
	for _, a := range args {
		consumed[a.Key] = struct{}{}
	}
	var out []Pair
	for _, p := range pairs {
		if _, ok := consumed[p.Key]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FieldRef is the part of a field descriptor needed to pick an assignment
// target.
type FieldRef struct {
	Name     string
	Settable bool
}

// FieldIndex picks the settable field a key assigns to: first by
// case-insensitive name, then by exact match against alt(key). It returns -1
// when no field qualifies.
func FieldIndex(fields []FieldRef, key string, alt func(string) string) int {
	for i, f := range fields {
		if f.Settable && strings.EqualFold(f.Name, key) {
			return i
		}
	}
	if alt == nil {
		return -1
	}
	name := alt(key)
	if name == "" {
		return -1
	}
	for i, f := range fields {
		if f.Settable && f.Name == name {
			return i
		}
	}
	return -1
}
