package cascade

import (
	"strings"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/hostconfig"
	"github.com/arthur-debert/cardrender/pkg/types"
)

// Well-known style names looked up in the host style dictionaries
const (
	StyleAction             = "Adaptive.Action"
	StyleActionOverflow     = "Adaptive.Action.Overflow"
	StyleActionPositive     = "Adaptive.Action.Positive"
	StyleActionDestructive  = "Adaptive.Action.Destructive"
	StylePositiveDefault    = "PositiveActionDefaultStyle"
	StyleDestructiveDefault = "DestructiveActionDefaultStyle"
	customActionStylePrefix = "Adaptive.Action."
)

// Style is a named bag of visual settings applied to a node
type Style struct {
	Name       string `json:"name" yaml:"name"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Border     string `json:"border,omitempty" yaml:"border,omitempty"`
	Bold       bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
}

// StyleDictionary looks styles up by name
type StyleDictionary interface {
	Lookup(name string) (Style, bool)
}

// MapStyles is a StyleDictionary backed by a map. A nil MapStyles is empty.
type MapStyles map[string]Style

// Lookup implements StyleDictionary. The returned style always carries
// the name it was found under.
func (m MapStyles) Lookup(name string) (Style, bool) {
	s, ok := m[name]
	if ok && s.Name == "" {
		s.Name = name
	}
	return s, ok
}

// StyleContext exposes the dictionaries consulted while styling actions
type StyleContext interface {
	// OverrideStyles are supplied by the host, may be nil
	OverrideStyles() StyleDictionary
	// DefaultSentimentStyles holds the built-in sentiment styles
	DefaultSentimentStyles() StyleDictionary
}

// StyleSources is a plain StyleContext
type StyleSources struct {
	Overrides StyleDictionary
	Defaults  StyleDictionary
}

func (s StyleSources) OverrideStyles() StyleDictionary         { return s.Overrides }
func (s StyleSources) DefaultSentimentStyles() StyleDictionary { return s.Defaults }

// DefaultSentimentStyles builds the built-in action styles from the host
// config: positive actions get the accent color as background, destructive
// actions get the attention color as text.
func DefaultSentimentStyles(hc *hostconfig.HostConfig) MapStyles {
	def := hc.ContainerStyles.Default
	return MapStyles{
		StyleAction: {
			Name:       StyleAction,
			Foreground: def.ForegroundColors.Default.Default,
		},
		StylePositiveDefault: {
			Name:       StylePositiveDefault,
			Background: def.ForegroundColors.Accent.Default,
			Foreground: "#FFFFFFFF",
		},
		StyleDestructiveDefault: {
			Name:       StyleDestructiveDefault,
			Foreground: def.ForegroundColors.Attention.Default,
		},
	}
}

func lookup(dict StyleDictionary, name string) (Style, bool) {
	if dict == nil {
		return Style{}, false
	}
	return dict.Lookup(name)
}

// lookupAny tries the host overrides first, then the built-in styles
func lookupAny(ctx StyleContext, name string) (Style, bool) {
	if s, ok := lookup(ctx.OverrideStyles(), name); ok {
		return s, true
	}
	return lookup(ctx.DefaultSentimentStyles(), name)
}

// ResolveActionStyle picks the style of an action button.
//
//  1. The overflow button uses Adaptive.Action.Overflow when the host defines it.
//  2. An empty or "default" sentiment uses Adaptive.Action.
//  3. "positive" and "destructive" use the host override, else the built-in
//     accent or attention style.
//  4. Any other sentiment names the custom style "Adaptive.Action.<sentiment>";
//     ErrStyleNotFound when neither dictionary has it.
func ResolveActionStyle(ctx StyleContext, sentiment string, isOverflow bool) (Style, error) {
	if isOverflow {
		if s, ok := lookup(ctx.OverrideStyles(), StyleActionOverflow); ok {
			return s, nil
		}
	}

	switch {
	case sentiment == "" || strings.EqualFold(sentiment, types.SentimentDefault):
		if s, ok := lookupAny(ctx, StyleAction); ok {
			return s, nil
		}
		return Style{Name: StyleAction}, nil
	case strings.EqualFold(sentiment, types.SentimentPositive):
		return overrideOrDefault(ctx, StyleActionPositive, StylePositiveDefault)
	case strings.EqualFold(sentiment, types.SentimentDestructive):
		return overrideOrDefault(ctx, StyleActionDestructive, StyleDestructiveDefault)
	}

	name := customActionStylePrefix + sentiment
	if s, ok := lookupAny(ctx, name); ok {
		return s, nil
	}
	return Style{}, errors.Newf(errors.ErrStyleNotFound, "style %q not found", name).
		WithDetail("sentiment", sentiment)
}

func overrideOrDefault(ctx StyleContext, override, builtin string) (Style, error) {
	if s, ok := lookup(ctx.OverrideStyles(), override); ok {
		return s, nil
	}
	if s, ok := lookup(ctx.DefaultSentimentStyles(), builtin); ok {
		return s, nil
	}
	return Style{}, errors.Newf(errors.ErrStyleNotFound, "style %q not found", builtin)
}
