// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// NodeView is the JSON shape of a UI node
type NodeView struct {
	Kind       ui.Kind           `json:"kind"`
	Name       string            `json:"name,omitempty"`
	Text       string            `json:"text,omitempty"`
	Style      string            `json:"style,omitempty"`
	Background string            `json:"background,omitempty"`
	Foreground string            `json:"foreground,omitempty"`
	Margin     *ui.Thickness     `json:"margin,omitempty"`
	Padding    *ui.Thickness     `json:"padding,omitempty"`
	HAlign     string            `json:"horizontalAlignment,omitempty"`
	Column     *int              `json:"column,omitempty"`
	Visible    bool              `json:"visible"`
	Action     string            `json:"action,omitempty"`
	Props      map[string]string `json:"props,omitempty"`
	Children   []*NodeView       `json:"children,omitempty"`
	Flyout     *NodeView         `json:"flyout,omitempty"`
}

// CardView is the document written for a rendered card
type CardView struct {
	Root     *NodeView       `json:"root"`
	Warnings []types.Warning `json:"warnings"`
}

// View converts a node tree to its JSON shape
func View(n *ui.Node) *NodeView {
	if n == nil {
		return nil
	}
	v := &NodeView{
		Kind:       n.Kind,
		Name:       n.Name,
		Text:       n.Text,
		Style:      n.Style,
		Background: n.Background,
		Foreground: n.Foreground,
		HAlign:     string(n.HAlign),
		Visible:    n.Visible,
		Props:      nonEmpty(n.Props),
		Flyout:     View(n.Flyout),
	}
	if !n.Margin.IsZero() {
		m := n.Margin
		v.Margin = &m
	}
	if !n.Padding.IsZero() {
		p := n.Padding
		v.Padding = &p
	}
	if n.Column >= 0 {
		c := n.Column
		v.Column = &c
	}
	if n.Action != nil {
		v.Action = n.Action.TypeName()
	}
	for _, c := range n.Children {
		v.Children = append(v.Children, View(c))
	}
	return v
}

// nonEmpty drops empty property values
func nonEmpty(props map[string]string) map[string]string {
	var out map[string]string
	for k, val := range props {
		if val == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(props))
		}
		out[k] = val
	}
	return out
}

// RenderCard renders the node tree and warnings as JSON
func (r *Renderer) RenderCard(root *ui.Node, warnings []types.Warning) error {
	if warnings == nil {
		warnings = []types.Warning{}
	}
	return r.encoder.Encode(CardView{Root: View(root), Warnings: warnings})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
