// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
	"github.com/arthur-debert/cardrender/pkg/ui/terminal"
)

// Renderer provides plain text output without colors or styling. Layout
// is shared with the terminal renderer.
type Renderer struct {
	output io.Writer
	layout *terminal.Renderer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	layout, err := terminal.New(output, terminal.WithNoColor(), terminal.WithMarkdown(false))
	if err != nil {
		return nil, fmt.Errorf("failed to create layout renderer: %w", err)
	}
	return &Renderer{
		output: output,
		layout: layout,
	}, nil
}

// RenderCard renders the card as plain text
func (r *Renderer) RenderCard(root *ui.Node, warnings []types.Warning) error {
	return r.layout.RenderCard(root, warnings)
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
