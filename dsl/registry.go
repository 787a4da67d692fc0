package dsl

import (
	"slices"
	"strings"

	kvshape "github.com/reoring/kvshape"
)

var named = map[string]func() kvshape.AnyShape{
	"string":   func() kvshape.AnyShape { return kvshape.Erase(String()) },
	"bool":     func() kvshape.AnyShape { return kvshape.Erase(Bool()) },
	"int":      func() kvshape.AnyShape { return kvshape.Erase(Int()) },
	"int8":     func() kvshape.AnyShape { return kvshape.Erase(Int8()) },
	"int16":    func() kvshape.AnyShape { return kvshape.Erase(Int16()) },
	"int32":    func() kvshape.AnyShape { return kvshape.Erase(Int32()) },
	"int64":    func() kvshape.AnyShape { return kvshape.Erase(Int64()) },
	"uint":     func() kvshape.AnyShape { return kvshape.Erase(Uint()) },
	"uint8":    func() kvshape.AnyShape { return kvshape.Erase(Uint8()) },
	"uint16":   func() kvshape.AnyShape { return kvshape.Erase(Uint16()) },
	"uint32":   func() kvshape.AnyShape { return kvshape.Erase(Uint32()) },
	"uint64":   func() kvshape.AnyShape { return kvshape.Erase(Uint64()) },
	"float32":  func() kvshape.AnyShape { return kvshape.Erase(Float32()) },
	"float64":  func() kvshape.AnyShape { return kvshape.Erase(Float64()) },
	"time":     func() kvshape.AnyShape { return kvshape.Erase(Time()) },
	"date":     func() kvshape.AnyShape { return kvshape.Erase(TimeLayout("2006-01-02")) },
	"duration": func() kvshape.AnyShape { return kvshape.Erase(Duration()) },
	"uuid":     func() kvshape.AnyShape { return kvshape.Erase(UUID()) },
}

// Lookup returns the built-in shape registered under name. Names are case
// insensitive; a trailing "?" wraps the shape with kvshape.OptionalAny.
func Lookup(name string) (kvshape.AnyShape, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	base, opt := strings.CutSuffix(name, "?")
	mk, ok := named[base]
	if !ok {
		return nil, false
	}
	if opt {
		return kvshape.OptionalAny(mk()), true
	}
	return mk(), true
}

// Names lists the registered shape names in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for k := range named {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
