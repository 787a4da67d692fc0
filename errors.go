package kvshape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/kvshape/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidArgument = "invalid_argument"
	CodeInvalidType     = "invalid_type"
	CodeParseError      = "parse_error"
	CodeOverflow        = "overflow"
	CodeInvalidFormat   = "invalid_format"
	CodeInvalidEnum     = "invalid_enum"
	CodeUnsupported     = "unsupported"
)

var (
	// ErrInvalidArgument matches issues raised for caller misuse: a missing
	// shape or absent text for a shape that requires it.
	ErrInvalidArgument = errors.New("kvshape: invalid argument")
	// ErrParse matches issues raised when text cannot be converted into the
	// value space of a shape (format or range violations).
	ErrParse = errors.New("kvshape: parse error")
)

// Issue represents a single failure entry.
type Issue struct {
	Path    string // "/" for a bare value, "/<key>" when tied to an input key.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"shape":"int8", "text":"300"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. overflow at /age
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue maps onto target. invalid_argument matches
// ErrInvalidArgument; every conversion code matches ErrParse.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		switch target {
		case ErrInvalidArgument:
			if it.Code == CodeInvalidArgument {
				return true
			}
		case ErrParse:
			if it.Code != CodeInvalidArgument {
				return true
			}
		}
	}
	return false
}

// Unwrap exposes the causes of the issues to errors.Is/As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueFor creates an Issue for a shape conversion failure. The message is
// resolved through the i18n translator.
func IssueFor(code, shape, text string, cause error) Issue {
	return Issue{
		Path:    "/",
		Code:    code,
		Message: i18n.T(code, map[string]string{"shape": shape}),
		Cause:   cause,
		Params:  map[string]any{"shape": shape, "text": text},
	}
}

// At returns a copy of the issues rebased onto the input key.
func (iss Issues) At(key string) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Path = "/" + key
		out[i] = it
	}
	return out
}

func invalidArgument(msg string) error {
	return Issues{{
		Path:    "/",
		Code:    CodeInvalidArgument,
		Message: i18n.T(CodeInvalidArgument, nil),
		Hint:    msg,
	}}
}
