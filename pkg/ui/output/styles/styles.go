// Package styles defines the visual styling of terminal card output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. Exporters write style names as XML-like tags:
//
//	<Button>Submit</Button>
//	<Muted>(disabled)</Muted>
//
// See pkg/ui/output/doc.go for the complete export pipeline.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cardrender/pkg/logging"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Faint         bool   `yaml:"faint,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
	Foreground    string `yaml:"foreground,omitempty"`
	Background    string `yaml:"background,omitempty"`
	Border        string `yaml:"border,omitempty"`
	BorderColor   string `yaml:"borderColor,omitempty"`
	Width         int    `yaml:"width,omitempty"`
	Align         string `yaml:"align,omitempty"`
	MarginLeft    int    `yaml:"marginLeft,omitempty"`
	MarginBottom  int    `yaml:"marginBottom,omitempty"`
	MarginTop     int    `yaml:"marginTop,omitempty"`
	PaddingLeft   int    `yaml:"paddingLeft,omitempty"`
	PaddingRight  int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

// Adaptive colors loaded from YAML
var colors map[string]lipgloss.AdaptiveColor

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		logger := logging.GetLogger("ui.styles")
		logger.Warn().Err(err).Msg("Embedded styles failed to load, using defaults")
		initDefaultStyles()
	}
}

// initDefaultStyles installs a minimal unstyled set so exporters never
// miss a name
func initDefaultStyles() {
	colors = make(map[string]lipgloss.AdaptiveColor)
	StyleRegistry = make(map[string]lipgloss.Style)

	defaultStyle := lipgloss.NewStyle()
	for _, name := range []string{
		"Card", "Heading", "Button", "ButtonDisabled", "MenuItem",
		"Muted", "Label", "Warning", "Error", "Info",
	} {
		StyleRegistry[name] = defaultStyle
	}
}

// LoadStyles replaces the registry with the styles in a YAML file
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	if err := LoadStylesFromData(data); err != nil {
		return fmt.Errorf("failed to parse styles file %s: %w", path, err)
	}
	logger := logging.GetLogger("ui.styles")
	logger.Debug().Str("path", path).Int("styles", len(StyleRegistry)).Msg("Styles loaded")
	return nil
}

// LoadStylesFromData replaces the registry with the styles in YAML data
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}
	if len(config.Styles) == 0 {
		return fmt.Errorf("failed to parse styles data: no styles defined")
	}

	colors = make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	StyleRegistry = make(map[string]lipgloss.Style)
	for name, def := range config.Styles {
		StyleRegistry[name] = buildStyle(def)
	}

	return nil
}

// color resolves a palette name, or uses the value as a literal color
func color(name string) lipgloss.TerminalColor {
	if c, ok := colors[name]; ok {
		return c
	}
	return lipgloss.Color(name)
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	// Text formatting
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}
	if def.Strikethrough {
		style = style.Strikethrough(true)
	}

	// Colors
	if def.Foreground != "" {
		style = style.Foreground(color(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(color(def.Background))
	}

	// Borders
	if border, ok := borderByName(def.Border); ok {
		style = style.Border(border)
		if def.BorderColor != "" {
			style = style.BorderForeground(color(def.BorderColor))
		}
	}

	// Layout
	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	switch def.Align {
	case "left":
		style = style.Align(lipgloss.Left)
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	}

	// Spacing
	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

func borderByName(name string) (lipgloss.Border, bool) {
	switch name {
	case "normal":
		return lipgloss.NormalBorder(), true
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	}
	return lipgloss.Border{}, false
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// HasStyle reports whether name is registered
func HasStyle(name string) bool {
	_, ok := StyleRegistry[name]
	return ok
}

// MergeStyles combines multiple styles
func MergeStyles(styles ...string) lipgloss.Style {
	result := lipgloss.NewStyle()
	for _, name := range styles {
		result = result.Inherit(GetStyle(name))
	}
	return result
}

// Names returns the registered style names in order
func Names() []string {
	names := make([]string, 0, len(StyleRegistry))
	for name := range StyleRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
