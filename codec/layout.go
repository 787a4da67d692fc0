package codec

import (
	"context"
	"time"

	kvshape "github.com/reoring/kvshape"
)

// TimeLayout returns a shape parsing time.Time with a fixed Go reference
// layout (for example "2006-01-02"). Values without a zone are read as UTC.
func TimeLayout(layout string) kvshape.Shape[time.Time] { return layoutShape{layout: layout} }

type layoutShape struct{ layout string }

func (s layoutShape) Name() string { return "time(" + s.layout + ")" }

func (s layoutShape) ParseText(ctx context.Context, text string) (time.Time, error) {
	t, err := time.ParseInLocation(s.layout, text, time.UTC)
	if err != nil {
		iss := kvshape.IssueFor(kvshape.CodeInvalidFormat, s.Name(), text, err)
		iss.Hint = s.layout
		return time.Time{}, kvshape.Issues{iss}
	}
	return t, nil
}

func (s layoutShape) FormatText(t time.Time) string { return t.Format(s.layout) }

// Duration returns a shape for time.Duration text such as "1h30m".
func Duration() kvshape.Shape[time.Duration] { return durationShape{} }

type durationShape struct{}

func (durationShape) Name() string { return "duration" }

func (durationShape) ParseText(ctx context.Context, text string) (time.Duration, error) {
	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, kvshape.Issues{kvshape.IssueFor(kvshape.CodeInvalidFormat, "duration", text, err)}
	}
	return d, nil
}

func (durationShape) FormatText(d time.Duration) string { return d.String() }
