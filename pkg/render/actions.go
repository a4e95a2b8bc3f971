package render

import (
	"fmt"

	"github.com/arthur-debert/cardrender/pkg/registry"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

// NewActionRendererRegistration returns a registry holding the button
// renderer for every built-in action type
func NewActionRendererRegistration() registry.Registry[ActionRenderer] {
	r := registry.New[ActionRenderer]()
	for _, t := range []types.ActionType{
		types.ActionOpenURL,
		types.ActionSubmit,
		types.ActionExecute,
		types.ActionShowCard,
		types.ActionToggleVisibility,
	} {
		registry.MustRegister[ActionRenderer](r, string(t), ActionRendererFunc(renderButton))
	}
	return r
}

// renderButton builds the button shared by every built-in action. The
// click handler invokes the action on the rendered card.
func renderButton(action types.ActionElement, ctx *Context, args Args) (*ui.Node, error) {
	hc := ctx.HostConfig()

	node := ui.NewNode(ui.KindButton)
	node.Name = action.ID()
	node.Text = action.Title()
	node.Action = action
	node.SetProp(propTooltip, action.Tooltip())
	if err := ctx.applyActionStyle(node, action.Style(), false); err != nil {
		return nil, err
	}

	if icon := action.IconURL(); icon != "" {
		node.SetProp(propIcon, resolveURL(hc.ImageBaseURL, icon))
		placement := types.IconLeftOfTitle
		if args.AllowAboveTitleIconPlacement && hc.Actions.IconPlacement == types.IconAboveTitle {
			placement = types.IconAboveTitle
		}
		node.SetProp("iconPlacement", string(placement))
		node.SetProp("iconSize", fmt.Sprint(hc.Actions.IconSize))
	}

	switch a := action.(type) {
	case *types.OpenURLAction:
		node.SetProp(propURL, a.URL)
	case *types.ShowCardAction:
		node.SetProp("showCard", string(hc.Actions.ShowCard.ActionMode))
	}

	if !action.IsEnabled() {
		node.SetProp(propEnabled, "false")
		return node, nil
	}
	card := ctx.RenderedCard()
	node.OnClick = func() error { return card.Invoke(action) }
	return node, nil
}
