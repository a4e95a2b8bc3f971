// Package fallback resolves the renderer for an element or action by
// walking its fallback chain until a registered, supported type is found.
package fallback

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/registry"
	"github.com/arthur-debert/cardrender/pkg/types"
)

// DefaultMaxHops bounds the length of a fallback chain
const DefaultMaxHops = 32

// Kind labels what is being resolved in warnings and errors
type Kind string

const (
	KindElement Kind = "element"
	KindAction  Kind = "action"
)

// ErrDropped signals that the element was dropped and must produce no output
var ErrDropped = errors.New(errors.ErrDropped, "dropped by fallback")

// Fallbackable is satisfied by types.CardElement and types.ActionElement
type Fallbackable[E any] interface {
	TypeName() string
	FallbackType() types.FallbackType
	FallbackContent() E
	Requirements() []types.Requirement
}

// Lookup finds the renderer registered for a type tag
type Lookup[R any] func(typeName string) (R, bool)

// FromRegistry adapts a registry to a Lookup
func FromRegistry[R any](reg registry.Registry[R]) Lookup[R] {
	return func(typeName string) (R, bool) {
		r, err := reg.Get(typeName)
		return r, err == nil
	}
}

// RequirementChecker decides whether the host satisfies an element's requirements
type RequirementChecker interface {
	Meets(reqs []types.Requirement) bool
}

// Options configures a resolution
type Options struct {
	// Warnings receives drop and fallback warnings. Nil discards them.
	Warnings types.WarningSink
	// Requirements is consulted for every candidate. Nil accepts all.
	Requirements RequirementChecker
	Kind         Kind
	MaxHops      int
}

func (o Options) sink() types.WarningSink {
	if o.Warnings == nil {
		return types.DiscardWarnings{}
	}
	return o.Warnings
}

func (o Options) kind() Kind {
	if o.Kind == "" {
		return KindElement
	}
	return o.Kind
}

func (o Options) unknownCode() types.WarningStatusCode {
	if o.kind() == KindAction {
		return types.WarnUnknownActionElementType
	}
	return types.WarnUnknownElementType
}

// Resolve returns the renderer and the element it applies to. The element
// is either elem itself or one of its fallback descendants.
//
// It returns ErrDropped when the chain ends in a drop or a cycle, and an
// ErrUnsupportedElement error when it ends in an element without
// fallback. The latter records no warning.
func Resolve[E Fallbackable[E], R any](elem E, lookup Lookup[R], opts Options) (R, E, error) {
	var zeroR R
	var zeroE E

	logger := logging.GetLogger("fallback")
	maxHops := opts.MaxHops
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	sink := opts.sink()
	kind := opts.kind()

	visited := make(map[any]struct{})
	current := elem
	for hops := 0; ; hops++ {
		typeName := current.TypeName()
		if r, ok := lookup(typeName); ok {
			if opts.Requirements == nil || opts.Requirements.Meets(current.Requirements()) {
				if hops > 0 {
					logger.Debug().Str("kind", string(kind)).Str("type", typeName).Int("hops", hops).Msg("Resolved through fallback")
				}
				return r, current, nil
			}
			logger.Debug().Str("type", typeName).Msg("Requirements not met")
		}
		visited[any(current)] = struct{}{}

		switch current.FallbackType() {
		case types.FallbackDrop:
			sink.AddWarning(opts.unknownCode(), fmt.Sprintf("Dropping %s of type %s for fallback", kind, typeName))
			return zeroR, zeroE, ErrDropped

		case types.FallbackContent:
			next := current.FallbackContent()
			if isNil(next) || seen(visited, next) || hops+1 >= maxHops {
				sink.AddWarning(types.WarnFallbackCycle,
					fmt.Sprintf("Fallback chain for %s of type %s does not terminate, dropping it", kind, typeName))
				logEvent(logger.Debug(), kind, typeName, hops).Msg("Fallback cycle")
				return zeroR, zeroE, ErrDropped
			}
			sink.AddWarning(types.WarnPerformingFallback,
				fmt.Sprintf("Performing fallback for %s of type %s to %s", kind, typeName, next.TypeName()))
			current = next

		default:
			return zeroR, zeroE, errors.Newf(errors.ErrUnsupportedElement, "no renderer for %s of type %s", kind, typeName).
				WithDetail("type", typeName).
				WithDetail("kind", string(kind))
		}
	}
}

// IsDropped reports whether err is the drop signal
func IsDropped(err error) bool {
	return errors.IsErrorCode(err, errors.ErrDropped)
}

func seen(visited map[any]struct{}, e any) bool {
	_, ok := visited[e]
	return ok
}

// isNil catches both a nil interface and a typed nil pointer inside one
func isNil[E any](e E) bool {
	v := any(e)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func logEvent(ev *zerolog.Event, kind Kind, typeName string, hops int) *zerolog.Event {
	return ev.Str("kind", string(kind)).Str("type", typeName).Int("hops", hops)
}
