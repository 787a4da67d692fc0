package dsl

import (
	"strconv"
	"strings"

	kvshape "github.com/reoring/kvshape"
	"github.com/reoring/kvshape/i18n"
)

type targetBuilder[T any] struct {
	name   string
	ctors  []kvshape.Constructor[T]
	fields []kvshape.Field[T]
}

// ctorStep enables chain-friendly APIs like Constructor(...).Internal().
type ctorStep[T any] struct {
	b *targetBuilder[T]
	i int
}

// TargetOf creates a builder describing how to assemble *T.
func TargetOf[T any](name string) *targetBuilder[T] {
	return &targetBuilder[T]{name: name}
}

// Constructor registers a constructor. Declaration order breaks ties between
// constructors with the same number of parameters.
func (b *targetBuilder[T]) Constructor(c kvshape.Constructor[T]) *ctorStep[T] {
	b.ctors = append(b.ctors, c)
	return &ctorStep[T]{b: b, i: len(b.ctors) - 1}
}

// Field registers an assignable field.
func (b *targetBuilder[T]) Field(f kvshape.Field[T]) *targetBuilder[T] {
	b.fields = append(b.fields, f)
	return b
}

// Build validates the description and returns the target.
func (b *targetBuilder[T]) Build() (*kvshape.Target[T], error) {
	var iss kvshape.Issues
	for i, c := range b.ctors {
		path := "/constructors/" + strconv.Itoa(i)
		if c.New == nil {
			iss = kvshape.AppendIssues(iss, buildIssue(path, "constructor without New"))
		}
		seen := map[string]struct{}{}
		for _, p := range c.Params {
			key := strings.ToLower(p.Name)
			if p.Shape == nil {
				iss = kvshape.AppendIssues(iss, buildIssue(path+"/"+p.Name, "parameter without shape"))
			}
			if _, dup := seen[key]; dup {
				iss = kvshape.AppendIssues(iss, buildIssue(path+"/"+p.Name, "duplicate parameter name"))
			}
			seen[key] = struct{}{}
		}
	}
	seen := map[string]struct{}{}
	for _, f := range b.fields {
		if _, dup := seen[f.Name]; dup {
			iss = kvshape.AppendIssues(iss, buildIssue("/fields/"+f.Name, "duplicate field name"))
		}
		seen[f.Name] = struct{}{}
		if f.Settable() && f.Shape == nil {
			iss = kvshape.AppendIssues(iss, buildIssue("/fields/"+f.Name, "settable field without shape"))
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return &kvshape.Target[T]{
		Name:         b.name,
		Constructors: append([]kvshape.Constructor[T](nil), b.ctors...),
		Fields:       append([]kvshape.Field[T](nil), b.fields...),
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *targetBuilder[T]) MustBuild() *kvshape.Target[T] {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func buildIssue(path, hint string) kvshape.Issue {
	return kvshape.Issue{
		Path:    path,
		Code:    kvshape.CodeInvalidArgument,
		Message: i18n.T(kvshape.CodeInvalidArgument, nil),
		Hint:    hint,
	}
}

// ----- ctorStep methods -----

// Internal marks the current constructor as not eligible for assembly.
func (s *ctorStep[T]) Internal() *targetBuilder[T] {
	s.b.ctors[s.i].Internal = true
	return s.b
}

// Forward helpers to keep chaining ergonomics.
func (s *ctorStep[T]) Constructor(c kvshape.Constructor[T]) *ctorStep[T] { return s.b.Constructor(c) }
func (s *ctorStep[T]) Field(f kvshape.Field[T]) *targetBuilder[T]         { return s.b.Field(f) }
func (s *ctorStep[T]) Build() (*kvshape.Target[T], error)                 { return s.b.Build() }
func (s *ctorStep[T]) MustBuild() *kvshape.Target[T]                      { return s.b.MustBuild() }
