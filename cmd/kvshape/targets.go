package main

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	kvshape "github.com/reoring/kvshape"
	g "github.com/reoring/kvshape/dsl"
)

type Person struct {
	Name       string  `json:"name"                 yaml:"name"`
	Age        int     `json:"age"                  yaml:"age"`
	Department string  `json:"department,omitempty" yaml:"department,omitempty"`
	Number     int     `json:"number"               yaml:"number"`
	Nickname   *string `json:"nickname,omitempty"   yaml:"nickname,omitempty"`
}

func NewPerson(name string) *Person { return &Person{Name: name} }

func NewPersonAged(name string, age int) *Person { return &Person{Name: name, Age: age} }

func NewPersonInDepartment(name string, age int, department string) *Person {
	return &Person{Name: name, Age: age, Department: department}
}

type Role string

const (
	RoleEngineer Role = "engineer"
	RoleManager  Role = "manager"
	RoleSupport  Role = "support"
)

type Employee struct {
	ID     uuid.UUID `json:"id"               yaml:"id"`
	Name   string    `json:"name"             yaml:"name"`
	Role   Role      `json:"role"             yaml:"role"`
	Hired  time.Time `json:"hired"            yaml:"hired"`
	Salary float64   `json:"salary,omitempty" yaml:"salary,omitempty"`
	Remote bool      `json:"remote"           yaml:"remote"`
}

// Staff has a constructor reserved for internal use and a badge that is
// computed, never assigned from input.
type Staff struct {
	Name  string `json:"name"  yaml:"name"`
	Badge string `json:"badge" yaml:"badge"`
	Level int8   `json:"level" yaml:"level"`
}

type Event struct {
	Title    string        `json:"title"              yaml:"title"`
	Start    time.Time     `json:"start"              yaml:"start"`
	Duration time.Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
	Day      *time.Time    `json:"day,omitempty"      yaml:"day,omitempty"`
	Seats    *uint16       `json:"seats,omitempty"    yaml:"seats,omitempty"`
}

var roles = g.Enum("role", map[string]Role{
	"engineer": RoleEngineer,
	"manager":  RoleManager,
	"support":  RoleSupport,
})

func personTarget() *kvshape.Target[Person] {
	name := g.P("name", g.String())
	age := g.P("age", g.Int())
	return g.TargetOf[Person]("person").
		Constructor(g.Ctor1(name, NewPerson)).
		Constructor(g.Ctor2(name, age, NewPersonAged)).
		Constructor(g.Ctor3(name, age, g.P("department", g.String()), NewPersonInDepartment)).
		Field(g.FieldOf("Name", g.String(), func(p *Person, v string) { p.Name = v })).
		Field(g.FieldOf("Age", g.Int(), func(p *Person, v int) { p.Age = v })).
		Field(g.FieldOf("Department", g.String(), func(p *Person, v string) { p.Department = v })).
		Field(g.FieldOf("Number", g.Int(), func(p *Person, v int) { p.Number = v })).
		Field(g.FieldOf("Nickname", g.Optional(g.String()), func(p *Person, v *string) { p.Nickname = v })).
		MustBuild()
}

func employeeTarget() *kvshape.Target[Employee] {
	return g.TargetOf[Employee]("employee").
		Constructor(g.Ctor3(g.P("id", g.UUID()), g.P("name", g.String()), g.P("role", roles),
			func(id uuid.UUID, name string, role Role) *Employee {
				return &Employee{ID: id, Name: name, Role: role}
			})).
		Constructor(g.Ctor2(g.P("name", g.String()), g.P("role", roles),
			func(name string, role Role) *Employee {
				return &Employee{ID: uuid.New(), Name: name, Role: role}
			})).
		Field(g.FieldOf("Hired", g.Time(), func(e *Employee, v time.Time) { e.Hired = v })).
		Field(g.FieldOf("Salary", g.Float64(), func(e *Employee, v float64) { e.Salary = v })).
		Field(g.FieldOf("Remote", g.Bool(), func(e *Employee, v bool) { e.Remote = v })).
		MustBuild()
}

func staffTarget() *kvshape.Target[Staff] {
	return g.TargetOf[Staff]("staff").
		Constructor(g.Ctor2(g.P("name", g.String()), g.P("badge", g.String()),
			func(name, badge string) *Staff { return &Staff{Name: name, Badge: badge} })).Internal().
		Constructor(g.Ctor1(g.P("name", g.String()),
			func(name string) *Staff {
				return &Staff{Name: name, Badge: "S-" + strings.ToUpper(name)}
			})).
		Field(g.ReadOnly[Staff]("Badge", kvshape.Erase(g.String()))).
		Field(g.FieldOf("Level", g.Int8(), func(s *Staff, v int8) { s.Level = v })).
		MustBuild()
}

func eventTarget() *kvshape.Target[Event] {
	return g.TargetOf[Event]("event").
		Constructor(g.Ctor2(g.P("title", g.String()), g.P("start", g.Time()),
			func(title string, start time.Time) *Event { return &Event{Title: title, Start: start} })).
		Field(g.FieldOf("Duration", g.Duration(), func(e *Event, v time.Duration) { e.Duration = v })).
		Field(g.FieldOf("Day", g.Optional(g.TimeLayout(time.DateOnly)), func(e *Event, v *time.Time) { e.Day = v })).
		Field(g.FieldOf("Seats", g.Optional(g.Uint16()), func(e *Event, v *uint16) { e.Seats = v })).
		MustBuild()
}

// demo is a target with its type erased so the CLI can hold them in one
// table.
type demo struct {
	name      string
	signature []string
	assemble  func(ctx context.Context, pairs []kvshape.Pair) (any, error)
}

func demoOf[T any](t *kvshape.Target[T]) demo {
	return demo{
		name:      t.Name,
		signature: signature(t),
		assemble: func(ctx context.Context, pairs []kvshape.Pair) (any, error) {
			v, err := kvshape.Assemble(ctx, t, pairs)
			if err != nil || v == nil {
				return nil, err
			}
			return v, nil
		},
	}
}

func signature[T any](t *kvshape.Target[T]) []string {
	var out []string
	for _, c := range t.Constructors {
		params := make([]string, len(c.Params))
		for i, p := range c.Params {
			params[i] = p.Name + " " + p.Shape.Name()
		}
		line := "new(" + strings.Join(params, ", ") + ")"
		if c.Internal {
			line += " [internal]"
		}
		out = append(out, line)
	}
	for _, f := range t.Fields {
		line := "field " + f.Name + " " + f.Shape.Name()
		if !f.Settable() {
			line += " [read-only]"
		}
		out = append(out, line)
	}
	return out
}

var demos = map[string]demo{
	"person":   demoOf(personTarget()),
	"employee": demoOf(employeeTarget()),
	"staff":    demoOf(staffTarget()),
	"event":    demoOf(eventTarget()),
}

func demoNames() []string {
	out := make([]string, 0, len(demos))
	for k := range demos {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
