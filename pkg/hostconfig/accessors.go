package hostconfig

import "github.com/arthur-debert/cardrender/pkg/types"

// Get returns the definition for a container style. Unknown and empty
// styles resolve to the default style.
func (c ContainerStylesConfig) Get(style types.ContainerStyle) ContainerStyleDefinition {
	switch style {
	case types.ContainerStyleEmphasis:
		return c.Emphasis
	case types.ContainerStyleGood:
		return c.Good
	case types.ContainerStyleAttention:
		return c.Attention
	case types.ContainerStyleWarning:
		return c.Warning
	case types.ContainerStyleAccent:
		return c.Accent
	default:
		return c.Default
	}
}

// Get returns the color pair for a foreground color
func (c ColorsConfig) Get(color types.ForegroundColor) ColorConfig {
	switch color {
	case types.ColorDark:
		return c.Dark
	case types.ColorLight:
		return c.Light
	case types.ColorAccent:
		return c.Accent
	case types.ColorGood:
		return c.Good
	case types.ColorWarning:
		return c.Warning
	case types.ColorAttention:
		return c.Attention
	default:
		return c.Default
	}
}

// Get returns the definition for a font type
func (c FontTypesConfig) Get(fontType types.FontType) FontTypeDefinition {
	if fontType == types.FontTypeMonospace {
		return c.Monospace
	}
	return c.Default
}

// namedStyles lists container styles with their schema names
func (c ContainerStylesConfig) namedStyles() []struct {
	name string
	def  ContainerStyleDefinition
} {
	return []struct {
		name string
		def  ContainerStyleDefinition
	}{
		{"default", c.Default},
		{"emphasis", c.Emphasis},
		{"good", c.Good},
		{"attention", c.Attention},
		{"warning", c.Warning},
		{"accent", c.Accent},
	}
}

func (c ColorsConfig) namedColors() map[string]ColorConfig {
	return map[string]ColorConfig{
		"default":   c.Default,
		"dark":      c.Dark,
		"light":     c.Light,
		"accent":    c.Accent,
		"good":      c.Good,
		"warning":   c.Warning,
		"attention": c.Attention,
	}
}
