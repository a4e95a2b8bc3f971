// Package tree prints the raw node tree, one line per node, for
// inspecting what a render pass produced.
package tree

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

// Renderer prints node trees with pterm
type Renderer struct {
	output io.Writer
	color  bool

	kindStyle   *pterm.Style
	mutedStyle  *pterm.Style
	warnStyle   *pterm.Style
	hiddenStyle *pterm.Style
}

// New creates a plain tree renderer
func New(output io.Writer) (*Renderer, error) {
	return newRenderer(output, false), nil
}

// NewColor creates a tree renderer that colors kinds and warnings
func NewColor(output io.Writer) (*Renderer, error) {
	return newRenderer(output, true), nil
}

func newRenderer(output io.Writer, color bool) *Renderer {
	r := &Renderer{
		output:      output,
		color:       color,
		kindStyle:   pterm.NewStyle(),
		mutedStyle:  pterm.NewStyle(),
		warnStyle:   pterm.NewStyle(),
		hiddenStyle: pterm.NewStyle(),
	}
	if color {
		r.kindStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
		r.mutedStyle = pterm.NewStyle(pterm.FgGray)
		r.warnStyle = pterm.NewStyle(pterm.FgYellow)
		r.hiddenStyle = pterm.NewStyle(pterm.FgGray, pterm.Italic)
	}
	return r
}

// Lines flattens a node tree into leveled list items
func (r *Renderer) Lines(root *ui.Node) pterm.LeveledList {
	var list pterm.LeveledList
	var visit func(n *ui.Node, level int, prefix string)
	visit = func(n *ui.Node, level int, prefix string) {
		if n == nil {
			return
		}
		list = append(list, pterm.LeveledListItem{Level: level, Text: prefix + r.describe(n)})
		for _, c := range n.Children {
			visit(c, level+1, "")
		}
		if n.Flyout != nil {
			visit(n.Flyout, level+1, "flyout: ")
		}
	}
	visit(root, 0, "")
	return list
}

func (r *Renderer) describe(n *ui.Node) string {
	parts := []string{r.kindStyle.Sprint(string(n.Kind))}
	if n.Name != "" {
		parts = append(parts, "#"+n.Name)
	}
	if n.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", n.Text))
	}
	if n.Column >= 0 {
		parts = append(parts, fmt.Sprintf("col=%d", n.Column))
	}
	if n.Style != "" {
		parts = append(parts, "style="+n.Style)
	}

	keys := make([]string, 0, len(n.Props))
	for k, v := range n.Props {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		props := make([]string, len(keys))
		for i, k := range keys {
			props[i] = k + "=" + n.Props[k]
		}
		parts = append(parts, r.mutedStyle.Sprint("["+strings.Join(props, " ")+"]"))
	}
	if !n.Visible {
		parts = append(parts, r.hiddenStyle.Sprint("(hidden)"))
	}
	return strings.Join(parts, " ")
}

// RenderCard prints the tree followed by its warnings
func (r *Renderer) RenderCard(root *ui.Node, warnings []types.Warning) error {
	var sb strings.Builder
	if root != nil {
		printer := pterm.DefaultTree.
			WithRoot(putils.TreeFromLeveledList(r.Lines(root))).
			WithTreeStyle(r.mutedStyle).
			WithTextStyle(pterm.NewStyle())
		out, err := printer.Srender()
		if err != nil {
			return err
		}
		sb.WriteString(out)
	}
	for _, w := range warnings {
		sb.WriteString(r.warnStyle.Sprintf("! %s: %s", w.StatusCode, w.Message))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(r.output, sb.String())
	return err
}

// RenderError renders an error line
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, r.warnStyle.Sprint("error: "+err.Error()))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
