package kvshape

import (
	"context"
	"log/slog"

	"github.com/iancoleman/strcase"

	eng "github.com/reoring/kvshape/internal/engine"
)

// Assemble builds a *T from key/value pairs.
//
// Every eligible constructor of t whose parameters can all be found (first
// pair with a case-insensitively equal key) and parsed to a value becomes a
// candidate; the candidate with the most parameters wins, ties going to the
// earlier constructor. Pairs whose key was not consumed by the winner are
// then assigned to settable fields in input order, so the last pair for a
// field wins. Leftovers that match no field or do not parse are skipped.
//
// A nil instance with a nil error means no constructor could be satisfied or
// the chosen constructor failed. Only a nil target is reported as an error.
func Assemble[T any](ctx context.Context, t *Target[T], pairs []Pair) (*T, error) {
	if t == nil {
		return nil, invalidArgument("target is nil")
	}
	log := Logger().With(slog.String("target", t.Name))

	cands := eng.Resolve(ctx, t.ctors(), pairs, func(i int, param string, reason eng.Reason) {
		log.DebugContext(ctx, "constructor rejected",
			slog.Int("constructor", i),
			slog.String("param", param),
			slog.String("reason", reason.String()))
	})
	if len(cands) == 0 {
		log.DebugContext(ctx, "no constructor satisfied", slog.Int("pairs", len(pairs)))
		return nil, nil
	}

	win := cands[0]
	out, err := t.Constructors[win.Index].New(eng.Values(win.Args))
	if err != nil || out == nil {
		log.WarnContext(ctx, "constructor failed",
			slog.Int("constructor", win.Index),
			slog.Any("error", err))
		return nil, nil
	}

	assignLeftovers(ctx, log, t, out, eng.Leftovers(pairs, win.Args))
	return out, nil
}

func assignLeftovers[T any](ctx context.Context, log *slog.Logger, t *Target[T], dst *T, left []Pair) {
	refs := t.fieldRefs()
	for _, p := range left {
		i := eng.FieldIndex(refs, p.Key, strcase.ToCamel)
		if i < 0 {
			log.DebugContext(ctx, "leftover skipped", slog.String("key", p.Key), slog.String("reason", "no_field"))
			continue
		}
		f := t.Fields[i]
		v, ok := TryParseAny(ctx, f.Shape, p.Value)
		if !ok {
			log.DebugContext(ctx, "leftover skipped", slog.String("key", p.Key), slog.String("reason", "unparsable"))
			continue
		}
		if err := f.Set(dst, v); err != nil {
			log.DebugContext(ctx, "leftover skipped", slog.String("key", p.Key), slog.Any("error", err))
		}
	}
}
