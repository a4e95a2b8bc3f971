package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/cardrender/pkg/types"
)

// Props reads typed properties out of a decoded JSON or YAML object and
// tracks which keys were consumed. Invalid values are reported as
// InvalidValue warnings and replaced by the caller's default.
type Props struct {
	ctx      *Context
	raw      map[string]any
	used     map[string]bool
	typeName string
}

func newProps(ctx *Context, raw map[string]any, typeName string) *Props {
	return &Props{ctx: ctx, raw: raw, used: map[string]bool{"type": true}, typeName: typeName}
}

// Context returns the parse context the properties belong to
func (p *Props) Context() *Context { return p.ctx }

// Raw returns the underlying object
func (p *Props) Raw() map[string]any { return p.raw }

// Has reports whether the key is present
func (p *Props) Has(key string) bool {
	_, ok := p.raw[key]
	return ok
}

func (p *Props) get(key string) (any, bool) {
	v, ok := p.raw[key]
	if ok {
		p.used[key] = true
	}
	return v, ok && v != nil
}

func (p *Props) invalid(key string, v any, expected string) {
	p.ctx.AddWarning(types.WarnInvalidValue,
		fmt.Sprintf("Invalid value %v for property %s of %s, expected %s", v, key, p.typeName, expected))
}

// String returns a string property or ""
func (p *Props) String(key string) string {
	v, ok := p.get(key)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case int, int64, float64, bool:
		return fmt.Sprint(s)
	default:
		p.invalid(key, v, "a string")
		return ""
	}
}

// RequiredString returns a string property, warning when it is missing or empty
func (p *Props) RequiredString(key string) string {
	s := p.String(key)
	if s == "" {
		p.ctx.AddWarning(types.WarnRequiredPropertyMissing,
			fmt.Sprintf("Required property %s missing on %s", key, p.typeName))
	}
	return s
}

// Bool returns a boolean property or def. The strings "true" and "false"
// are accepted.
func (p *Props) Bool(key string, def bool) bool {
	v, ok := p.get(key)
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}
	p.invalid(key, v, "a boolean")
	return def
}

// Float returns a numeric property or nil
func (p *Props) Float(key string) *float64 {
	v, ok := p.get(key)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		p.invalid(key, v, "a number")
		return nil
	}
	return &f
}

// Uint returns a non-negative integer property or 0
func (p *Props) Uint(key string) uint32 {
	v, ok := p.get(key)
	if !ok {
		return 0
	}
	f, ok := toFloat(v)
	if !ok || f < 0 {
		p.invalid(key, v, "a non-negative integer")
		return 0
	}
	return uint32(f)
}

// Pixels reads a size written as "50px" or as a bare number
func (p *Props) Pixels(key string) uint32 {
	v, ok := p.get(key)
	if !ok {
		return 0
	}
	if s, isString := v.(string); isString {
		n, err := strconv.ParseUint(strings.TrimSuffix(strings.TrimSpace(s), "px"), 10, 32)
		if err != nil {
			p.invalid(key, v, "a pixel size")
			return 0
		}
		return uint32(n)
	}
	f, ok := toFloat(v)
	if !ok || f < 0 {
		p.invalid(key, v, "a pixel size")
		return 0
	}
	return uint32(f)
}

// Object returns a nested object or nil
func (p *Props) Object(key string) map[string]any {
	v, ok := p.get(key)
	if !ok {
		return nil
	}
	m, ok := asObject(v)
	if !ok {
		p.invalid(key, v, "an object")
		return nil
	}
	return m
}

// Array returns a nested array or nil
func (p *Props) Array(key string) []any {
	v, ok := p.get(key)
	if !ok {
		return nil
	}
	a, ok := v.([]any)
	if !ok {
		p.invalid(key, v, "an array")
		return nil
	}
	return a
}

// Any marks a key consumed and returns its raw value
func (p *Props) Any(key string) any {
	v, _ := p.get(key)
	return v
}

// Rest returns the properties nobody consumed, nil when there are none
func (p *Props) Rest() map[string]any {
	var rest map[string]any
	for k, v := range p.raw {
		if p.used[k] {
			continue
		}
		if rest == nil {
			rest = make(map[string]any)
		}
		rest[k] = v
	}
	return rest
}

// Enum reads a string enum property. Matching is case-insensitive; an
// unknown value warns and yields def.
func Enum[T ~string](p *Props, key string, parse func(string) (T, bool), def T) T {
	s := p.String(key)
	if s == "" {
		return def
	}
	v, ok := parse(s)
	if !ok {
		p.invalid(key, strconv.Quote(s), fmt.Sprintf("a known value, using %q", def))
		return def
	}
	return v
}

// Requirements reads the "requires" object, sorted by feature name
func (p *Props) Requirements() []types.Requirement {
	obj := p.Object("requires")
	if len(obj) == 0 {
		return nil
	}
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)

	reqs := make([]types.Requirement, 0, len(names))
	for _, name := range names {
		version := fmt.Sprint(obj[name])
		if s, ok := obj[name].(string); ok {
			version = s
		}
		reqs = append(reqs, types.Requirement{Name: name, Version: version})
	}
	return reqs
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// asObject accepts both decoded JSON objects and YAML maps with non-string keys
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
