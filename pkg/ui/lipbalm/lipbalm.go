package lipbalm

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NoFormatTag marks content shown only when colors are off
const NoFormatTag = "no-format"

// rootTag wraps input so fragments with several top-level tags parse
const rootTag = "lipbalm-root"

// StyleMap maps tag names to styles
type StyleMap map[string]lipgloss.Style

var (
	mu       sync.RWMutex
	renderer *lipgloss.Renderer
)

// SetDefaultRenderer sets the renderer whose color profile decides
// whether styles are applied. Nil restores lipgloss's default renderer.
func SetDefaultRenderer(r *lipgloss.Renderer) {
	mu.Lock()
	defer mu.Unlock()
	renderer = r
}

func colorEnabled() bool {
	mu.RLock()
	r := renderer
	mu.RUnlock()
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return r.ColorProfile() != termenv.Ascii
}

// Render executes a text/template with data and expands the style tags
// of the result
func Render(tmpl string, data any, styles StyleMap) (string, error) {
	t, err := template.New("lipbalm").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return ExpandTags(buf.String(), styles)
}

// ExpandTags replaces style tags with their styles. Input that does not
// parse as markup is returned as is.
func ExpandTags(input string, styles StyleMap) (string, error) {
	if input == "" {
		return "", nil
	}
	root, ok := parse(input)
	if !ok {
		return input, nil
	}
	return expand(root, styles, colorEnabled()), nil
}

// StripTags removes every tag, keeping all text including no-format content
func StripTags(input string) string {
	if input == "" {
		return ""
	}
	root, ok := parse(input)
	if !ok {
		return input
	}
	var sb strings.Builder
	collect(root, &sb)
	return sb.String()
}

// Escape escapes the markup characters of s
func Escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return strings.ReplaceAll(buf.String(), "&#xA;", "\n")
}

func parse(input string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil, false
	}
	root := doc.SelectElement(rootTag)
	return root, root != nil
}

func expand(el *etree.Element, styles StyleMap, color bool) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == NoFormatTag {
				if !color {
					collect(t, &sb)
				}
				continue
			}
			inner := expand(t, styles, color)
			if style, ok := styles[t.Tag]; ok && color {
				inner = style.Render(inner)
			}
			sb.WriteString(inner)
		}
	}
	return sb.String()
}

func collect(el *etree.Element, sb *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			collect(t, sb)
		}
	}
}
