package source

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	kvshape "github.com/reoring/kvshape"
	"github.com/reoring/kvshape/i18n"
)

// JSON reads a flat JSON object. Strings are taken verbatim, numbers keep
// their literal text, booleans become "true"/"false" and null becomes empty
// text. Nested objects and arrays are rejected.
func JSON(data []byte) ([]kvshape.Pair, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, formatIssue("/", err)
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return nil, typeIssue("/", "top-level value must be an object")
	}

	var out []kvshape.Pair
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, formatIssue("/", err)
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			break
		}
		key, ok := tok.(string)
		if !ok {
			return nil, typeIssue("/", "object key must be a string")
		}
		vt, err := dec.Token()
		if err != nil {
			return nil, formatIssue("/"+key, err)
		}
		text, err := scalarText(key, vt)
		if err != nil {
			return nil, err
		}
		out = append(out, kvshape.Pair{Key: key, Value: text})
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, typeIssue("/", "unexpected data after object")
	}
	return out, nil
}

func scalarText(key string, tok any) (string, error) {
	switch v := tok.(type) {
	case string:
		return v, nil
	case j.Number:
		return string(v), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	case j.Delim:
		return "", typeIssue("/"+key, "nested values are not supported")
	}
	return "", typeIssue("/"+key, "unexpected token")
}

func typeIssue(path, hint string) error {
	return kvshape.Issues{{
		Path:    path,
		Code:    kvshape.CodeInvalidType,
		Message: i18n.T(kvshape.CodeInvalidType, nil),
		Hint:    hint,
	}}
}

func formatIssue(path string, err error) error {
	return kvshape.Issues{{
		Path:    path,
		Code:    kvshape.CodeInvalidFormat,
		Message: i18n.T(kvshape.CodeInvalidFormat, nil),
		Cause:   err,
	}}
}
