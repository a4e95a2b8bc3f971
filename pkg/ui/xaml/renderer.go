// Package xaml writes the node tree as XAML-like markup, the shape a
// native UI host would instantiate.
package xaml

import (
	"fmt"
	"io"
	"sort"

	"github.com/beevik/etree"

	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

const (
	xmlns  = "http://schemas.microsoft.com/winfx/2006/xaml/presentation"
	xmlnsX = "http://schemas.microsoft.com/winfx/2006/xaml"
)

// Renderer writes XAML documents
type Renderer struct {
	output io.Writer
	indent int
}

// New creates a new XAML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output, indent: 2}, nil
}

// Document builds the XAML document for a node tree. Warnings become
// leading comments.
func Document(root *ui.Node, warnings []types.Warning) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	for _, w := range warnings {
		doc.CreateComment(fmt.Sprintf(" %s: %s ", w.StatusCode, w.Message))
	}
	if root == nil {
		return doc
	}
	el := element(&doc.Element, root)
	el.CreateAttr("xmlns", xmlns)
	el.CreateAttr("xmlns:x", xmlnsX)
	return doc
}

func element(parent *etree.Element, n *ui.Node) *etree.Element {
	el := parent.CreateElement(string(n.Kind))
	if n.Name != "" {
		el.CreateAttr("x:Name", n.Name)
	}
	if !n.Visible {
		el.CreateAttr("Visibility", "Collapsed")
	}
	if n.Column >= 0 {
		el.CreateAttr("Grid.Column", fmt.Sprint(n.Column))
	}
	if n.Style != "" {
		el.CreateAttr("Style", "{StaticResource "+n.Style+"}")
	}
	if n.Orientation != "" {
		el.CreateAttr("Orientation", string(n.Orientation))
	}
	if n.HAlign != "" {
		el.CreateAttr("HorizontalAlignment", string(n.HAlign))
	}
	if !n.Margin.IsZero() {
		el.CreateAttr("Margin", thickness(n.Margin))
	}
	if !n.Padding.IsZero() {
		el.CreateAttr("Padding", thickness(n.Padding))
	}
	if n.Background != "" {
		el.CreateAttr("Background", n.Background)
	}
	if n.Foreground != "" {
		el.CreateAttr("Foreground", n.Foreground)
	}
	if n.Action != nil {
		el.CreateAttr("Command", n.Action.TypeName())
	}

	keys := make([]string, 0, len(n.Props))
	for k, v := range n.Props {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.CreateAttr(k, n.Props[k])
	}

	if n.Text != "" {
		switch n.Kind {
		case ui.KindButton, ui.KindMenuItem:
			el.CreateAttr("Content", n.Text)
		default:
			el.CreateAttr("Text", n.Text)
		}
	}

	for _, c := range n.Children {
		if c != nil {
			element(el, c)
		}
	}
	if n.Flyout != nil {
		holder := el.CreateElement(string(n.Kind) + ".Flyout")
		element(holder, n.Flyout)
	}
	return el
}

func thickness(t ui.Thickness) string {
	return fmt.Sprintf("%d,%d,%d,%d", t.Left, t.Top, t.Right, t.Bottom)
}

// RenderCard writes the card as an indented XAML document
func (r *Renderer) RenderCard(root *ui.Node, warnings []types.Warning) error {
	doc := Document(root, warnings)
	doc.Indent(r.indent)
	_, err := doc.WriteTo(r.output)
	return err
}

// RenderError renders an error as a comment-only document
func (r *Renderer) RenderError(err error) error {
	doc := etree.NewDocument()
	doc.CreateComment(" error: " + err.Error() + " ")
	doc.Indent(r.indent)
	_, writeErr := doc.WriteTo(r.output)
	return writeErr
}

// RenderMessage renders a simple message as a comment
func (r *Renderer) RenderMessage(msg string) error {
	doc := etree.NewDocument()
	doc.CreateComment(" " + msg + " ")
	doc.Indent(r.indent)
	_, err := doc.WriteTo(r.output)
	return err
}
