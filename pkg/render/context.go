package render

import (
	"fmt"

	"github.com/arthur-debert/cardrender/pkg/cascade"
	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/fallback"
	"github.com/arthur-debert/cardrender/pkg/features"
	"github.com/arthur-debert/cardrender/pkg/hostconfig"
	"github.com/arthur-debert/cardrender/pkg/registry"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

// Node property names shared by the built-in renderers and the exporters
const (
	propValue       = "value"
	propOpen        = "open"
	propColor       = "color"
	propSize        = "size"
	propWeight      = "weight"
	propWrap        = "wrap"
	propURL         = "url"
	propIcon        = "icon"
	propTooltip     = "tooltip"
	propInputType   = "inputType"
	propPlaceholder = "placeholder"
	propLabel       = "label"
	propThickness   = "thickness"
	propRole        = "role"
	propEnabled     = "enabled"
	propWidth       = "width"
)

// Args is the per-subtree state handed to renderers. A renderer passes a
// modified copy to its children; it never changes the Args it received.
type Args struct {
	// ContainerStyle is the style of the nearest styled ancestor
	ContainerStyle types.ContainerStyle
	// AllowAboveTitleIconPlacement is set while rendering an action set
	// whose actions all have icons
	AllowAboveTitleIconPlacement bool
	IsInShowCard                 bool
	InActionSet                  bool
	ParentElement                types.CardElement
}

// ElementRenderer turns one card element into a UI node. Returning a nil
// node without error omits the element.
type ElementRenderer interface {
	Render(element types.CardElement, ctx *Context, args Args) (*ui.Node, error)
}

// ElementRendererFunc adapts a function to ElementRenderer
type ElementRendererFunc func(element types.CardElement, ctx *Context, args Args) (*ui.Node, error)

func (f ElementRendererFunc) Render(element types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	return f(element, ctx, args)
}

// ActionRenderer turns an action into a button node. Unlike
// ElementRenderer, a nil node is not an omission: it fails the render
// with ErrRender. Use a "drop" fallback to leave an action out.
type ActionRenderer interface {
	Render(action types.ActionElement, ctx *Context, args Args) (*ui.Node, error)
}

// ActionRendererFunc adapts a function to ActionRenderer
type ActionRendererFunc func(action types.ActionElement, ctx *Context, args Args) (*ui.Node, error)

func (f ActionRendererFunc) Render(action types.ActionElement, ctx *Context, args Args) (*ui.Node, error) {
	return f(action, ctx, args)
}

// Context is the state of one render pass. It is not safe for concurrent
// use; each pass creates its own.
type Context struct {
	hostConfig *hostconfig.HostConfig
	elements   registry.Registry[ElementRenderer]
	actions    registry.Registry[ActionRenderer]
	features   *features.Registry
	styles     cascade.StyleContext
	card       *RenderedCard
}

// HostConfig returns the host config of the pass
func (c *Context) HostConfig() *hostconfig.HostConfig { return c.hostConfig }

// ActionInvoker returns the host invoker, nil when none was configured
func (c *Context) ActionInvoker() ActionInvoker { return c.card.invoker }

// AddWarning implements types.WarningSink
func (c *Context) AddWarning(code types.WarningStatusCode, message string) {
	c.card.Warnings.AddWarning(code, message)
}

// Warnings returns the warnings gathered so far
func (c *Context) Warnings() types.Warnings { return c.card.Warnings }

// ElementRenderers returns the element renderer registry
func (c *Context) ElementRenderers() registry.Registry[ElementRenderer] { return c.elements }

// ActionRenderers returns the action renderer registry
func (c *Context) ActionRenderers() registry.Registry[ActionRenderer] { return c.actions }

// Features returns the host feature registry
func (c *Context) Features() *features.Registry { return c.features }

// Styles returns the style dictionaries used for action buttons
func (c *Context) Styles() cascade.StyleContext { return c.styles }

// RenderedCard returns the card being built, for renderers that register
// inputs or clickable nodes
func (c *Context) RenderedCard() *RenderedCard { return c.card }

// RegisterInput makes a node's "value" property visible through
// RenderedCard.Inputs
func (c *Context) RegisterInput(id string, node *ui.Node) {
	c.card.registerInput(id, node)
}

func (c *Context) fallbackOptions(kind fallback.Kind) fallback.Options {
	return fallback.Options{Warnings: c, Requirements: c.features, Kind: kind}
}

// RenderElement renders one element through the registry, following its
// fallback chain when its type has no renderer or its requirements are
// not met. A dropped element yields a nil node and no error.
func (c *Context) RenderElement(el types.CardElement, args Args) (*ui.Node, error) {
	node, _, err := c.renderElement(el, args)
	return node, err
}

// renderElement is RenderElement that also returns the element that
// rendered after fallback, so spacing and separators follow it
func (c *Context) renderElement(el types.CardElement, args Args) (*ui.Node, types.CardElement, error) {
	renderer, effective, err := fallback.Resolve[types.CardElement, ElementRenderer](
		el, fallback.FromRegistry(c.elements), c.fallbackOptions(fallback.KindElement))
	if fallback.IsDropped(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	node, err := renderer.Render(effective, c, args)
	if err != nil {
		return nil, nil, renderError(err, effective.TypeName(), effective.ID())
	}
	if node == nil {
		return nil, nil, nil
	}

	if node.Name == "" {
		node.Name = effective.ID()
	}
	node = c.wrapSelectAction(effective, node)
	if !effective.IsVisible() {
		node.Visible = false
	}
	c.card.registerElement(effective.ID(), node)
	return node, effective, nil
}

// RenderElements renders children in order, inserting spacing and
// separators between them
func (c *Context) RenderElements(elements []types.CardElement, args Args) ([]*ui.Node, error) {
	var nodes []*ui.Node
	for _, el := range elements {
		node, effective, err := c.renderElement(el, args)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		if len(nodes) > 0 {
			if sep := c.applySpacing(effective, node, false); sep != nil {
				nodes = append(nodes, sep)
			}
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// applySpacing sets the gap before node and returns a separator node when
// the element asks for one. Horizontal gaps go on the left.
func (c *Context) applySpacing(el types.CardElement, node *ui.Node, horizontal bool) *ui.Node {
	gap := int(cascade.ResolveSpacing(c.hostConfig, el.Spacing()))
	if !el.Separator() {
		if horizontal {
			node.Margin.Left += gap
		} else {
			node.Margin.Top += gap
		}
		return nil
	}

	sep := ui.NewNode(ui.KindSeparator)
	sep.Foreground = c.hostConfig.Separator.LineColor
	sep.SetProp(propThickness, fmt.Sprint(c.hostConfig.Separator.LineThickness))
	if horizontal {
		sep.Orientation = ui.Vertical
		sep.Margin = ui.Thickness{Left: gap / 2, Right: gap / 2}
	} else {
		sep.Orientation = ui.Horizontal
		sep.Margin = ui.Thickness{Top: gap / 2, Bottom: gap / 2}
	}
	sep.Visible = node.Visible
	c.card.separators[node] = sep
	return sep
}

func (c *Context) wrapSelectAction(el types.CardElement, node *ui.Node) *ui.Node {
	sel, ok := el.(types.Selectable)
	if !ok || sel.SelectAction() == nil {
		return node
	}
	return c.wrapTouchTarget(sel.SelectAction(), node)
}

// wrapTouchTarget makes node clickable for action, subject to the
// interactivity policy
func (c *Context) wrapTouchTarget(action types.ActionElement, node *ui.Node) *ui.Node {
	if !c.hostConfig.SupportsInteractivity {
		c.AddWarning(types.WarnInteractivityNotSupported,
			"SelectAction present, but Interactivity is not supported")
		return node
	}
	if action.ActionType() == types.ActionShowCard {
		c.AddWarning(types.WarnUnsupportedValue, "Inline ShowCard not supported for SelectAction")
		return node
	}

	resolved, ok := c.resolveAction(action)
	if !ok {
		return node
	}

	target := ui.NewNode(ui.KindTouchTarget).Add(node)
	target.Name = node.Name
	target.Margin = node.Margin
	node.Margin = ui.Thickness{}
	target.Action = resolved
	target.SetProp(propTooltip, resolved.Tooltip())
	if resolved.IsEnabled() {
		card := c.card
		target.OnClick = func() error { return card.Invoke(resolved) }
	}
	return target
}

// resolveAction follows an action's fallback chain. It reports false when
// the action was dropped or cannot be rendered; the latter is recorded as
// a warning because select and inline actions are optional decoration.
func (c *Context) resolveAction(action types.ActionElement) (types.ActionElement, bool) {
	_, effective, err := fallback.Resolve[types.ActionElement, ActionRenderer](
		action, fallback.FromRegistry(c.actions), c.fallbackOptions(fallback.KindAction))
	if err == nil {
		return effective, true
	}
	if !fallback.IsDropped(err) {
		c.AddWarning(types.WarnUnknownActionElementType,
			fmt.Sprintf("No renderer for action of type %s", action.TypeName()))
	}
	return nil, false
}

// RenderAction renders a single button through the action registry
func (c *Context) RenderAction(action types.ActionElement, args Args) (*ui.Node, types.ActionElement, error) {
	renderer, effective, err := fallback.Resolve[types.ActionElement, ActionRenderer](
		action, fallback.FromRegistry(c.actions), c.fallbackOptions(fallback.KindAction))
	if err != nil {
		return nil, nil, err
	}
	node, err := c.renderButton(renderer, effective, args)
	if err != nil {
		return nil, nil, err
	}
	return node, effective, nil
}

// renderButton runs an action renderer. Every action that survives
// fallback owns a slot in its action set, so a renderer returning no
// node is an error rather than an omission.
func (c *Context) renderButton(renderer ActionRenderer, action types.ActionElement, args Args) (*ui.Node, error) {
	node, err := renderer.Render(action, c, args)
	if err != nil {
		return nil, renderError(err, action.TypeName(), action.ID())
	}
	if node == nil {
		return nil, errors.Newf(errors.ErrRender, "renderer for %s returned no button", action.TypeName()).
			WithDetail("id", action.ID())
	}
	return node, nil
}

// renderError codes a failure of a custom renderer. Coded errors from
// nested renders pass through so callers see the original code.
func renderError(err error, typeName, id string) error {
	if errors.GetErrorCode(err) != errors.ErrUnknown {
		return err
	}
	return errors.Wrapf(err, errors.ErrRender, "rendering %s", typeName).WithDetail("id", id)
}
