package codec

import (
	"context"
	"time"

	kvshape "github.com/reoring/kvshape"
)

// TimeRFC3339 returns a shape that converts RFC3339 text into time.Time.
// Fractional seconds are accepted; formatting is canonical UTC RFC3339Nano.
func TimeRFC3339() kvshape.Shape[time.Time] { return rfc3339Shape{} }

type rfc3339Shape struct{}

func (rfc3339Shape) Name() string { return "time" }

func (rfc3339Shape) ParseText(ctx context.Context, text string) (time.Time, error) {
	t, err := parseRFC3339(text)
	if err != nil {
		iss := kvshape.IssueFor(kvshape.CodeInvalidFormat, "time", text, err)
		iss.Hint = time.RFC3339
		return time.Time{}, kvshape.Issues{iss}
	}
	return t, nil
}

func (rfc3339Shape) FormatText(t time.Time) string { return formatRFC3339Canonical(t) }

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
