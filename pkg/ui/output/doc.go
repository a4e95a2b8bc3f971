// Package output picks the exporter that writes a rendered card.
//
// # Export Pipeline
//
// A render pass (pkg/render) produces a *ui.Node tree plus warnings. An
// exporter turns that tree into bytes:
//
//  1. terminal: lipgloss panels, leaves written as lipbalm style tags
//  2. text: the terminal layout with every tag stripped
//  3. tree: one line per node, for debugging renderers
//  4. json: the node tree as a JSON document
//  5. xaml: the node tree as XAML-like markup
//
// # Usage Example
//
//	rc, err := render.New().RenderJSON(data)
//	if err != nil {
//	    return err
//	}
//	r, err := output.NewRenderer(ui.FormatAuto, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	return r.RenderCard(rc.Root, rc.Warnings)
//
// # Style Tags
//
// The terminal exporter writes markup such as
//
//	<Button>[ Send ]</Button>
//	<WarningCode>UnknownElementType</WarningCode>
//
// Tag names are entries of the style registry in styles/. Tags expand to
// ANSI codes when the writer supports color and are stripped otherwise.
//
// # Color Support
//
// FormatAuto picks terminal output for color terminals and text output
// when NO_COLOR is set, the writer is not a terminal, or the terminal has
// no color support.
package output
