// Package ui holds the abstract UI tree a card renders into, and the
// output formats that tree can be written as.
//
// A render pass produces a *Node tree. Exporters in the subpackages
// (terminal, text, json, xaml) implement Renderer and write that tree to
// an io.Writer; pkg/ui/output picks one by Format.
package ui

import "github.com/arthur-debert/cardrender/pkg/types"

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderCard writes a rendered tree and the warnings gathered while building it
	RenderCard(root *Node, warnings []types.Warning) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}
