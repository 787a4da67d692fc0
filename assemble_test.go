package kvshape_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/kvshape"
	g "github.com/reoring/kvshape/dsl"
	"github.com/reoring/kvshape/source"
)

type person struct {
	Name       string
	Age        int
	Department string
	Number     int
	Nickname   *string
	FirstName  string
	built      string
}

func newPersonName(name string) *person { return &person{Name: name, built: "name"} }

func newPersonNameAge(name string, age int) *person {
	return &person{Name: name, Age: age, built: "name,age"}
}

func newPersonFull(name string, age int, dept string) *person {
	return &person{Name: name, Age: age, Department: dept, built: "name,age,department"}
}

func personTarget(ctors ...kvshape.Constructor[person]) *kvshape.Target[person] {
	b := g.TargetOf[person]("person")
	for _, c := range ctors {
		b.Constructor(c)
	}
	return b.
		Field(g.FieldOf("Name", g.String(), func(p *person, v string) { p.Name = v })).
		Field(g.FieldOf("Age", g.Int(), func(p *person, v int) { p.Age = v })).
		Field(g.FieldOf("Number", g.Int(), func(p *person, v int) { p.Number = v })).
		Field(g.FieldOf("Nickname", kvshape.Optional(g.String()), func(p *person, v *string) { p.Nickname = v })).
		Field(g.FieldOf("FirstName", g.String(), func(p *person, v string) { p.FirstName = v })).
		MustBuild()
}

var (
	ctorName     = g.Ctor1(g.P("name", g.String()), newPersonName)
	ctorNameAge  = g.Ctor2(g.P("name", g.String()), g.P("age", g.Int()), newPersonNameAge)
	ctorNameFull = g.Ctor3(g.P("name", g.String()), g.P("age", g.Int()), g.P("department", g.String()), newPersonFull)
)

func pairs(kv ...string) []kvshape.Pair {
	out := make([]kvshape.Pair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, kvshape.Pair{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestAssemble_Basic(t *testing.T) {
	ctx := context.Background()
	target := personTarget(ctorNameAge)

	p, err := kvshape.Assemble(ctx, target, pairs("name", "John", "age", "25"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "John", p.Name)
	assert.Equal(t, 25, p.Age)
}

func TestAssemble_MissingKeyIsNoInstance(t *testing.T) {
	ctx := context.Background()
	target := personTarget(ctorNameAge)

	p, err := kvshape.Assemble(ctx, target, pairs("name", "John"))
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestAssemble_UnparsableParamIsNoInstance(t *testing.T) {
	ctx := context.Background()
	target := personTarget(ctorNameAge)

	p, err := kvshape.Assemble(ctx, target, pairs("name", "John", "age", "invalid_number"))
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestAssemble_PrefersMostParameters(t *testing.T) {
	ctx := context.Background()
	// the smaller constructor is declared first on purpose
	target := personTarget(ctorName, ctorNameFull)

	p, err := kvshape.Assemble(ctx, target, pairs("name", "Ann", "age", "40", "department", "R&D"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "name,age,department", p.built)
	assert.Equal(t, "R&D", p.Department)

	p, err = kvshape.Assemble(ctx, target, pairs("name", "Ann"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "name", p.built)
}

func TestAssemble_TiesKeepDeclarationOrder(t *testing.T) {
	ctx := context.Background()
	first := g.Ctor2(g.P("name", g.String()), g.P("age", g.Int()), func(n string, a int) *person {
		return &person{Name: n, Age: a, built: "first"}
	})
	second := g.Ctor2(g.P("name", g.String()), g.P("number", g.Int()), func(n string, num int) *person {
		return &person{Name: n, Number: num, built: "second"}
	})
	target := personTarget(first, second)

	p, err := kvshape.Assemble(ctx, target, pairs("name", "Bo", "number", "9", "age", "3"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "first", p.built)
	// number was not consumed by the winner and lands on the field
	assert.Equal(t, 9, p.Number)
}

func TestAssemble_LeftoverFieldAssignment(t *testing.T) {
	ctx := context.Background()
	target := personTarget(ctorName)

	p, err := kvshape.Assemble(ctx, target, pairs("name", "Cathy", "number", "101"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Cathy", p.Name)
	assert.Equal(t, 101, p.Number)
}

func TestAssemble_FirstWinsForParamsLastWinsForFields(t *testing.T) {
	ctx := context.Background()
	in := pairs("name", "First", "age", "25", "name", "Second")

	// both "name" pairs are consumed by the constructor: first occurrence wins
	viaCtor, err := kvshape.Assemble(ctx, personTarget(ctorNameAge), in)
	require.NoError(t, err)
	require.NotNil(t, viaCtor)
	assert.Equal(t, "First", viaCtor.Name)

	ageOnly := g.Ctor1(g.P("age", g.Int()), func(a int) *person { return &person{Age: a} })
	viaField, err := kvshape.Assemble(ctx, personTarget(ageOnly), in)
	require.NoError(t, err)
	require.NotNil(t, viaField)
	assert.Equal(t, "Second", viaField.Name)

	assert.NotEqual(t, viaCtor.Name, viaField.Name)

	p, err := kvshape.Assemble(ctx, personTarget(ctorName), pairs("name", "Cathy", "number", "1", "number", "2"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 2, p.Number)
}

func TestAssemble_ConsumedKeysCompareExactly(t *testing.T) {
	ctx := context.Background()
	// "Name" is consumed; "name" differs in case, so it is a leftover and
	// overwrites the field after construction.
	p, err := kvshape.Assemble(ctx, personTarget(ctorNameAge), pairs("Name", "A", "age", "1", "name", "B"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "B", p.Name)
}

func TestAssemble_CaseInsensitiveParamMatch(t *testing.T) {
	ctx := context.Background()
	p, err := kvshape.Assemble(ctx, personTarget(ctorNameAge), pairs("NAME", "Dee", "Age", "30"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Dee", p.Name)
	assert.Equal(t, 30, p.Age)
}

func TestAssemble_CamelCaseFieldFallback(t *testing.T) {
	ctx := context.Background()
	p, err := kvshape.Assemble(ctx, personTarget(ctorName), pairs("name", "Eve", "first_name", "Evelyn"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Evelyn", p.FirstName)
}

func TestAssemble_LeftoversNeverFailAssembly(t *testing.T) {
	ctx := context.Background()
	p, err := kvshape.Assemble(ctx, personTarget(ctorName),
		pairs("name", "Fay", "number", "abc", "unknown", "x", "nickname", ""))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Number)
	// explicit empty optional is absent and skipped
	assert.Nil(t, p.Nickname)

	p, err = kvshape.Assemble(ctx, personTarget(ctorName), pairs("name", "Fay", "nickname", "F"))
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.Nickname)
	assert.Equal(t, "F", *p.Nickname)
}

func TestAssemble_EmptyOptionalParamFailsMatch(t *testing.T) {
	ctx := context.Background()
	withNick := g.Ctor2(g.P("name", g.String()), g.P("nickname", kvshape.Optional(g.String())),
		func(n string, nick *string) *person { return &person{Name: n, Nickname: nick, built: "name,nickname"} })
	target := personTarget(ctorName, withNick)

	p, err := kvshape.Assemble(ctx, target, pairs("name", "Gus", "nickname", ""))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "name", p.built)

	p, err = kvshape.Assemble(ctx, target, pairs("name", "Gus", "nickname", "G"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "name,nickname", p.built)
}

func TestAssemble_InternalConstructorIgnored(t *testing.T) {
	ctx := context.Background()
	target := g.TargetOf[person]("person").
		Constructor(ctorNameFull).Internal().
		Constructor(ctorName).
		MustBuild()

	p, err := kvshape.Assemble(ctx, target, pairs("name", "Hal", "age", "1", "department", "x"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "name", p.built)
}

func TestAssemble_ConstructorErrorIsNoInstance(t *testing.T) {
	ctx := context.Background()
	failing := g.CtorN(func(args []any) (*person, error) {
		return nil, errors.New("rejected")
	}, g.P("name", g.String()).Param())
	target := personTarget(failing)

	p, err := kvshape.Assemble(ctx, target, pairs("name", "Ivy"))
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestAssemble_ReadOnlyFieldNotAssigned(t *testing.T) {
	ctx := context.Background()
	target := g.TargetOf[person]("person").
		Constructor(ctorName).
		Field(g.ReadOnly[person]("Age", kvshape.Erase(g.Int()))).
		MustBuild()

	p, err := kvshape.Assemble(ctx, target, pairs("name", "Jo", "age", "5"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Age)
}

func TestAssemble_NilTarget(t *testing.T) {
	_, err := kvshape.Assemble[person](context.Background(), nil, pairs("name", "x"))
	assert.ErrorIs(t, err, kvshape.ErrInvalidArgument)
}

func TestAssemble_NoConstructors(t *testing.T) {
	p, err := kvshape.Assemble(context.Background(), g.TargetOf[person]("empty").MustBuild(), pairs("name", "x"))
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestAssemble_ParameterlessConstructor(t *testing.T) {
	ctx := context.Background()
	target := personTarget(g.Ctor0(func() *person { return &person{built: "zero"} }), ctorName)

	p, err := kvshape.Assemble(ctx, target, pairs("age", "3"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "zero", p.built)
	assert.Equal(t, 3, p.Age)

	p, err = kvshape.Assemble(ctx, target, pairs("name", "Kim"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "name", p.built)
}

func TestAssemble_Idempotent(t *testing.T) {
	ctx := context.Background()
	target := personTarget(ctorName, ctorNameAge)
	in := source.Text("name: Lee, age: 33, number: 4")

	a, err := kvshape.Assemble(ctx, target, in)
	require.NoError(t, err)
	b, err := kvshape.Assemble(ctx, target, in)
	require.NoError(t, err)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotSame(t, a, b)
	assert.Equal(t, *a, *b)
}

func TestAssemble_Concurrent(t *testing.T) {
	ctx := context.Background()
	target := personTarget(ctorName, ctorNameFull)
	in := pairs("name", "Max", "age", "20", "department", "Ops", "number", "8")

	var wg sync.WaitGroup
	results := make([]*person, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = kvshape.Assemble(ctx, target, in)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, "Ops", r.Department)
		assert.Equal(t, 8, r.Number)
	}
}

func TestAssemble_LogsRejections(t *testing.T) {
	var buf bytes.Buffer
	kvshape.SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer kvshape.SetLogger(nil)

	p, err := kvshape.Assemble(context.Background(), personTarget(ctorNameAge), pairs("name", "Ned"))
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Contains(t, buf.String(), `"msg":"constructor rejected"`)
	assert.Contains(t, buf.String(), `"reason":"missing_key"`)
	assert.Contains(t, buf.String(), `"target":"person"`)
}
