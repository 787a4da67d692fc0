package dsl

import (
	"time"

	"github.com/google/uuid"

	kvshape "github.com/reoring/kvshape"
	"github.com/reoring/kvshape/codec"
)

// Time returns the RFC3339 time shape (see codec.TimeRFC3339).
func Time() kvshape.Shape[time.Time] { return codec.TimeRFC3339() }

// TimeLayout returns a time shape for a fixed reference layout.
func TimeLayout(layout string) kvshape.Shape[time.Time] { return codec.TimeLayout(layout) }

// Duration returns the time.Duration shape.
func Duration() kvshape.Shape[time.Duration] { return codec.Duration() }

// UUID returns the uuid.UUID shape.
func UUID() kvshape.Shape[uuid.UUID] { return codec.UUID() }

// Optional wraps s so that empty text parses to nil.
func Optional[T any](s kvshape.Shape[T]) kvshape.Shape[*T] { return kvshape.Optional(s) }
