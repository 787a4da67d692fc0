package codec

import (
	"context"
	"errors"
	"testing"
	"time"

	kvshape "github.com/reoring/kvshape"
)

func TestTimeRFC3339_Basic(t *testing.T) {
	s := TimeRFC3339()
	ctx := context.Background()

	in := "2025-01-01T00:00:00Z"
	got, err := kvshape.Parse(ctx, s, in)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out := s.(kvshape.Formatter[time.Time]).FormatText(got)
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestTimeRFC3339_FractionalAndOffset(t *testing.T) {
	ctx := context.Background()
	got, err := kvshape.Parse(ctx, TimeRFC3339(), "2025-01-01T09:00:00.5+09:00")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 500_000_000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time: %v", got)
	}
	if s := TimeRFC3339().(kvshape.Formatter[time.Time]).FormatText(got); s != "2025-01-01T00:00:00.5Z" {
		t.Fatalf("unexpected canonical form: %s", s)
	}
}

func TestTimeRFC3339_InvalidFormat(t *testing.T) {
	_, err := kvshape.Parse(context.Background(), TimeRFC3339(), "01/02/2025")
	if err == nil {
		t.Fatalf("expected error")
	}
	iss, ok := kvshape.AsIssues(err)
	if !ok || iss[0].Code != kvshape.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
	if iss[0].Hint != time.RFC3339 {
		t.Fatalf("expected layout hint, got %q", iss[0].Hint)
	}
	if !errors.Is(err, kvshape.ErrParse) {
		t.Fatalf("expected ErrParse match")
	}
}

func TestTimeLayout_DateOnly(t *testing.T) {
	s := TimeLayout(time.DateOnly)
	ctx := context.Background()
	got, err := kvshape.Parse(ctx, s, "2024-02-29")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if got.Location() != time.UTC || got.Day() != 29 {
		t.Fatalf("unexpected time: %v", got)
	}
	if _, err := kvshape.Parse(ctx, s, "2023-02-29"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := Duration()
	for _, d := range []time.Duration{0, time.Millisecond, 90 * time.Minute, -3 * time.Second} {
		text := s.(kvshape.Formatter[time.Duration]).FormatText(d)
		got, err := kvshape.Parse(ctx, s, text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		if got != d {
			t.Fatalf("roundtrip mismatch: %v != %v", got, d)
		}
	}
	if _, ok := kvshape.TryParse(ctx, s, "ten minutes"); ok {
		t.Fatalf("expected failure")
	}
}
