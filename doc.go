// Package kvshape converts key/value text into typed values and assembled
// objects, without requiring the target type to implement any
// serialization interface.
//
// It provides:
//
// - Value parsing: Parse/TryParse turn text into T through a Shape[T]. Optional
// shapes map empty text to "no value".
// - Object assembly: Assemble picks the constructor of a Target[T] that the
// input satisfies with the most parameters, builds the instance and assigns
// leftover pairs to settable fields.
// - A stable error model via Issues (path, code, message) with the
// ErrInvalidArgument and ErrParse sentinels for errors.Is.
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place shapes and builders under dsl/, identifier and date/time shapes under codec/,
// input readers under source/, and the CLI under cmd/kvshape.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	person := g.TargetOf[Person]("person").
//	    Constructor(g.Ctor2(g.P("name", g.String()), g.P("age", g.Int()), NewPerson)).
//	    MustBuild()
//	p, err := kvshape.Assemble(ctx, person, source.Text("name: John, age: 25"))
//
//	n, err := kvshape.Parse(ctx, g.Int64(), "42")
//	opt, ok := kvshape.TryParse(ctx, g.Optional(g.Int()), "")
package kvshape
