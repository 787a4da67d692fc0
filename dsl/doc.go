// Package dsl provides shapes and target builders for kvshape.
//
// Overview
//   - Shapes: String()/Bool()/Int()..Uint64()/Float32()/Float64() parse text with strconv, so
//     results never depend on the host locale. Time()/TimeLayout()/Duration()/UUID() come from
//     the codec package. Enum() maps tokens to values and Text[T]() dispatches on capability
//     (encoding.TextUnmarshaler first, then coercion by kind).
//   - Optional(s): empty text parses to nil instead of failing.
//   - Targets: TargetOf[T](name) collects constructors and fields; Build()/MustBuild() return a
//     *kvshape.Target[T] ready for kvshape.Assemble.
//   - Registry: Lookup(name)/Names() expose the built-in shapes by name for tools such as the
//     CLI. A trailing "?" makes the shape optional.
//
// Example
//
//	type Person struct {
//	    Name   string
//	    Age    int
//	    Number int
//	}
//
//	func NewPerson(name string, age int) *Person { return &Person{Name: name, Age: age} }
//
//	var person = g.TargetOf[Person]("person").
//	    Constructor(g.Ctor2(g.P("name", g.String()), g.P("age", g.Int()), NewPerson)).
//	    Field(g.FieldOf("Number", g.Int(), func(p *Person, v int) { p.Number = v })).
//	    MustBuild()
//
//	p, err := kvshape.Assemble(ctx, person, source.Text("name: John, age: 25, number: 7"))
//	// p == nil && err == nil: no constructor could be satisfied
//
// File layout (roles)
//   - primitives.go: string/bool/integer/float shapes and the strconv error mapping.
//   - codecs.go: re-exports of codec shapes and Optional.
//   - enum.go, text.go: token enumerations and capability-dispatched shapes.
//   - ctor.go: typed parameters (P), constructor adapters (Ctor0..Ctor4, CtorN) and fields.
//   - target_builder.go: TargetOf builder and its validation.
//   - registry.go: named shape lookup.
package dsl
