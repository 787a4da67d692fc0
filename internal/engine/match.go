package engine

import (
	"context"
	"sort"
	"strings"
)

// Pair is one key/value text entry of the input.
type Pair struct {
	Key   string
	Value string
}

// ParseFunc converts text into a value and reports whether a value was
// produced. It must not panic or return partial results.
type ParseFunc func(ctx context.Context, text string) (any, bool)

// Param is a constructor parameter in erased form.
type Param struct {
	Name  string
	Parse ParseFunc
}

// Ctor is a constructor in erased form. Ineligible constructors never match.
type Ctor struct {
	Params   []Param
	Eligible bool
}

// Parsed is a parameter value together with the input key it was read from.
type Parsed struct {
	Key   string
	Value any
}

// Candidate is a constructor whose every parameter was matched and parsed.
type Candidate struct {
	Index int
	Args  []Parsed
}

// Reason explains why a constructor did not become a candidate.
type Reason int

const (
	ReasonIneligible Reason = iota
	ReasonMissingKey
	ReasonUnparsable
)

func (r Reason) String() string {
	switch r {
	case ReasonIneligible:
		return "ineligible"
	case ReasonMissingKey:
		return "missing_key"
	case ReasonUnparsable:
		return "unparsable"
	}
	return "unknown"
}

// RejectFunc observes constructors that fail to match. param is empty for
// ineligible constructors.
type RejectFunc func(index int, param string, reason Reason)

// Lookup returns the first pair whose key equals name case-insensitively.
func Lookup(pairs []Pair, name string) (Pair, bool) {
	for _, p := range pairs {
		if strings.EqualFold(p.Key, name) {
			return p, true
		}
	}
	return Pair{}, false
}

// Match tries to satisfy params from pairs in declaration order and stops at
// the first parameter that is missing or does not parse to a value.
func Match(ctx context.Context, params []Param, pairs []Pair) (args []Parsed, failed string, reason Reason, ok bool) {
	args = make([]Parsed, 0, len(params))
	for _, prm := range params {
		p, found := Lookup(pairs, prm.Name)
		if !found {
			return nil, prm.Name, ReasonMissingKey, false
		}
		v, present := prm.Parse(ctx, p.Value)
		if !present {
			return nil, prm.Name, ReasonUnparsable, false
		}
		args = append(args, Parsed{Key: p.Key, Value: v})
	}
	return args, "", 0, true
}

// Resolve matches every constructor against pairs and returns the candidates
// ranked by parameter count, most parameters first. Ties keep declaration
// order.
func Resolve(ctx context.Context, ctors []Ctor, pairs []Pair, reject RejectFunc) []Candidate {
	var out []Candidate
	for i, c := range ctors {
		if !c.Eligible {
			if reject != nil {
				reject(i, "", ReasonIneligible)
			}
			continue
		}
		args, failed, reason, ok := Match(ctx, c.Params, pairs)
		if !ok {
			if reject != nil {
				reject(i, failed, reason)
			}
			continue
		}
		out = append(out, Candidate{Index: i, Args: args})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return len(out[a].Args) > len(out[b].Args)
	})
	return out
}

// Values returns the parsed values in parameter order.
func Values(args []Parsed) []any {
	vs := make([]any, len(args))
	for i, a := range args {
		vs[i] = a.Value
	}
	return vs
}
