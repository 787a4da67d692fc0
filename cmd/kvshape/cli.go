package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sahilm/fuzzy"

	kvshape "github.com/reoring/kvshape"
	g "github.com/reoring/kvshape/dsl"
	"github.com/reoring/kvshape/i18n"
	"github.com/reoring/kvshape/source"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitUsage      = 2
	exitNoInstance = 3
)

var errNoInstance = errors.New("no instance")

// CLI is the top-level command line.
type CLI struct {
	Log  logConfig `embed:"" prefix:"log-"`
	Lang string    `default:"${lang}" enum:"en,ja" help:"Language of issue messages."`

	Parse    ParseCmd    `cmd:"" help:"Parse text with a named shape."`
	Assemble AssembleCmd `cmd:"" help:"Assemble a demo target from key/value input."`
	Shapes   ShapesCmd   `cmd:"" help:"List the named shapes."`
	Targets  TargetsCmd  `cmd:"" help:"List the demo targets and their constructors."`
}

// streams carries the process IO into command Run methods.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

type exitCode int

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	env, err := loadEnv()
	if err != nil {
		fmt.Fprintln(stderr, "kvshape:", err)
		return exitUsage
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("kvshape"),
		kong.Description("Parse key/value text into typed values and assembled objects."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Vars{
			"log_level":  env.LogLevel,
			"log_format": env.LogFormat,
			"lang":       env.Lang,
		},
	)
	if err != nil {
		fmt.Fprintln(stderr, "kvshape:", err)
		return exitUsage
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, "kvshape:", err)
		return exitUsage
	}

	logger, err := cli.Log.logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "kvshape:", err)
		return exitUsage
	}
	kvshape.SetLogger(logger)
	defer kvshape.SetLogger(nil)
	i18n.SetLanguage(cli.Lang)
	defer i18n.SetLanguage("en")

	err = kctx.Run(&streams{in: stdin, out: stdout, err: stderr})
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNoInstance):
		fmt.Fprintln(stderr, "kvshape:", err)
		return exitNoInstance
	}
	printError(stderr, err)
	return exitFailure
}

func printError(w io.Writer, err error) {
	iss, ok := kvshape.AsIssues(err)
	if !ok {
		fmt.Fprintln(w, "kvshape:", err)
		return
	}
	for _, it := range iss {
		line := fmt.Sprintf("%s: %s", it.Path, it.Message)
		if it.Hint != "" {
			line += " (" + it.Hint + ")"
		}
		fmt.Fprintln(w, line)
	}
}

// suggest returns an unknown-name error listing the closest known names.
func suggest(kind, name string, known []string) error {
	matches := fuzzy.Find(strings.ToLower(name), known)
	if len(matches) == 0 {
		return fmt.Errorf("unknown %s %q (known: %s)", kind, name, strings.Join(known, ", "))
	}
	const maxSuggestions = 3
	var names []string
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		names = append(names, m.Str)
	}
	return fmt.Errorf("unknown %s %q, did you mean: %s", kind, name, strings.Join(names, ", "))
}

// ParseCmd parses one text value.
type ParseCmd struct {
	Shape string `required:"" short:"s" help:"Shape name; a trailing '?' makes it optional."`
	Try   bool   `help:"Print ok=false instead of failing."`
	Text  string `arg:"" help:"Text to parse."`
}

func (c *ParseCmd) Run(ctx context.Context, s *streams) error {
	shape, ok := g.Lookup(c.Shape)
	if !ok {
		return suggest("shape", c.Shape, g.Names())
	}
	if c.Try {
		v, present := kvshape.TryParseAny(ctx, shape, c.Text)
		if !present {
			fmt.Fprintln(s.out, "ok=false")
			return nil
		}
		fmt.Fprintf(s.out, "ok=true %s\n", kvshape.FormatAny(shape, v))
		return nil
	}
	v, err := kvshape.ParseAny(ctx, shape, c.Text)
	if err != nil {
		return err
	}
	if v == nil {
		fmt.Fprintln(s.out, "<none>")
		return nil
	}
	fmt.Fprintln(s.out, kvshape.FormatAny(shape, v))
	return nil
}

// AssembleCmd builds a demo target from input pairs.
type AssembleCmd struct {
	Target string `required:"" short:"t" help:"Demo target name (see 'targets')."`
	Input  string `default:"text" enum:"text,json,yaml" short:"i" help:"Input format."`
	Output string `default:"json" enum:"json,yaml,dump" short:"o" help:"Output format."`
	Source string `arg:"" help:"Input text, or '-' to read stdin."`
}

func (c *AssembleCmd) Run(ctx context.Context, s *streams) error {
	d, ok := demos[strings.ToLower(c.Target)]
	if !ok {
		return suggest("target", c.Target, demoNames())
	}
	raw := []byte(c.Source)
	if c.Source == "-" {
		b, err := io.ReadAll(s.in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		raw = b
	}
	pairs, err := readPairs(c.Input, raw)
	if err != nil {
		return err
	}
	v, err := d.assemble(ctx, pairs)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("%s: %w", d.name, errNoInstance)
	}
	return write(s.out, c.Output, v)
}

func readPairs(format string, raw []byte) ([]kvshape.Pair, error) {
	switch format {
	case "json":
		return source.JSON(raw)
	case "yaml":
		return source.YAML(raw)
	}
	return source.Text(string(raw)), nil
}

// ShapesCmd lists the registered shape names.
type ShapesCmd struct{}

func (ShapesCmd) Run(s *streams) error {
	for _, n := range g.Names() {
		fmt.Fprintln(s.out, n)
	}
	return nil
}

// TargetsCmd lists the demo targets.
type TargetsCmd struct{}

func (TargetsCmd) Run(s *streams) error {
	for _, n := range demoNames() {
		fmt.Fprintln(s.out, n)
		for _, line := range demos[n].signature {
			fmt.Fprintln(s.out, "  "+line)
		}
	}
	return nil
}
