package render

import (
	"fmt"

	"github.com/arthur-debert/cardrender/pkg/cascade"
	"github.com/arthur-debert/cardrender/pkg/fallback"
	"github.com/arthur-debert/cardrender/pkg/layout"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

type resolvedAction struct {
	renderer ActionRenderer
	action   types.ActionElement
}

// RenderActionSet lays out and materializes an action collection: the
// button row, the overflow menu and the inline show card panels.
func (c *Context) RenderActionSet(actions []types.ActionElement, args Args) (*ui.Node, error) {
	hc := c.hostConfig

	// Fallback runs per action before layout, dropped actions never reach it
	var resolved []resolvedAction
	for _, a := range actions {
		renderer, effective, err := fallback.Resolve[types.ActionElement, ActionRenderer](
			a, fallback.FromRegistry(c.actions), c.fallbackOptions(fallback.KindAction))
		if fallback.IsDropped(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, resolvedAction{renderer: renderer, action: effective})
	}
	if len(resolved) == 0 {
		return nil, nil
	}

	effective := make([]types.ActionElement, len(resolved))
	renderers := make(map[types.ActionElement]ActionRenderer, len(resolved))
	for i, r := range resolved {
		effective[i] = r.action
		renderers[r.action] = r.renderer
	}

	inline := hc.Actions.ShowCard.ActionMode == types.ShowCardInline
	plan := layout.Layout(effective, layout.Options{
		MaxActions:         hc.Actions.MaxActions,
		OverflowMaxActions: hc.Overflow.OverflowMaxActions,
		InlineShowCards:    inline,
	}, c)

	state := &actionSetState{
		plan:    plan,
		panels:  make(map[types.ActionElement]*ui.Node),
		current: plan.LastPrimaryIndex,
	}

	buttonArgs := args
	buttonArgs.InActionSet = true
	buttonArgs.AllowAboveTitleIconPlacement = plan.AllActionsHaveIcons

	row := c.newActionPanel(len(plan.Primary) + boolInt(plan.OverflowTrigger))
	for i, slot := range plan.Primary {
		node, err := c.renderButton(renderers[slot.Action], slot.Action, buttonArgs)
		if err != nil {
			return nil, err
		}
		node.Visible = slot.Visible
		node.Column = slot.Column
		node.Margin = cascade.ButtonMargin(hc.Actions)
		node.HAlign = cascade.ButtonAlignment(hc.Actions)
		if slot.Action.IsEnabled() {
			node.OnClick = c.card.clickSlot(state, i)
		}
		state.slots = append(state.slots, node)
		row.Add(node)
	}

	if plan.OverflowTrigger {
		trigger, err := c.overflowButton(state)
		if err != nil {
			return nil, err
		}
		trigger.Column = plan.TriggerColumn
		row.Add(trigger)
	}

	set := ui.NewNode(ui.KindActionSet).Add(row)

	if inline && len(plan.ShowCards) > 0 {
		cards := ui.NewNode(ui.KindStack)
		cards.Orientation = ui.Vertical
		for _, sc := range plan.ShowCards {
			panel, err := c.renderShowCardPanel(sc.Action, args)
			if err != nil {
				return nil, err
			}
			state.panels[sc.Action] = panel
			cards.Add(panel)
		}
		set.Add(cards)
	}

	c.card.actionSets = append(c.card.actionSets, state)
	return set, nil
}

func (c *Context) newActionPanel(columns int) *ui.Node {
	actions := c.hostConfig.Actions
	var panel *ui.Node
	if cascade.UseStretchGrid(actions) {
		panel = ui.NewNode(ui.KindGrid)
		panel.SetProp("columns", fmt.Sprint(columns))
	} else {
		panel = ui.NewNode(ui.KindStack)
		panel.Orientation = cascade.Orientation(actions)
	}
	panel.HAlign = cascade.PanelAlignment(actions)
	panel.Margin = cascade.PanelMargin(actions)
	panel.Style = "Adaptive.Actions"
	return panel
}

func (c *Context) overflowButton(state *actionSetState) (*ui.Node, error) {
	hc := c.hostConfig
	action := types.NewOverflowAction(hc.Overflow.ButtonText, hc.Overflow.AccessibilityText)

	trigger := ui.NewNode(ui.KindButton)
	trigger.Text = action.Title()
	trigger.Action = action
	trigger.Margin = cascade.ButtonMargin(hc.Actions)
	trigger.HAlign = cascade.ButtonAlignment(hc.Actions)
	trigger.SetProp(propTooltip, action.Tooltip())
	if err := c.applyActionStyle(trigger, "", true); err != nil {
		return nil, err
	}

	flyout := ui.NewNode(ui.KindFlyout)
	flyout.SetProp(propOpen, "false")
	for i, entry := range state.plan.Overflow {
		item := ui.NewNode(ui.KindMenuItem)
		item.Text = entry.Action.Title()
		item.Action = entry.Action
		item.Visible = entry.Visible
		item.SetProp(propIcon, entry.Action.IconURL())
		item.SetProp(propTooltip, entry.Action.Tooltip())
		if entry.Action.IsEnabled() {
			item.OnClick = c.card.clickEntry(state, i)
		} else {
			item.SetProp(propEnabled, "false")
		}
		state.entries = append(state.entries, item)
		flyout.Add(item)
	}
	trigger.Flyout = flyout
	state.flyout = flyout
	trigger.OnClick = func() error {
		open := flyout.Prop(propOpen) == "true"
		flyout.SetProp(propOpen, fmt.Sprint(!open))
		return nil
	}
	return trigger, nil
}

// applyActionStyle resolves and applies the sentiment style of a button.
// A missing custom style is reported and the default style used instead.
func (c *Context) applyActionStyle(node *ui.Node, sentiment string, isOverflow bool) error {
	style, err := cascade.ResolveActionStyle(c.styles, sentiment, isOverflow)
	if err != nil {
		c.AddWarning(types.WarnCustomWarning,
			fmt.Sprintf("Action style %q not found, using the default action style", sentiment))
		if style, err = cascade.ResolveActionStyle(c.styles, types.SentimentDefault, isOverflow); err != nil {
			return err
		}
	}
	node.Style = style.Name
	node.Background = style.Background
	node.Foreground = style.Foreground
	if style.Bold {
		node.SetProp(propWeight, "bold")
	}
	return nil
}

func (c *Context) renderShowCardPanel(action *types.ShowCardAction, args Args) (*ui.Node, error) {
	hc := c.hostConfig
	style := hc.Actions.ShowCard.Style
	if style == types.ContainerStyleNone {
		style = types.ContainerStyleEmphasis
	}

	panel := ui.NewNode(ui.KindShowCardPanel)
	panel.Visible = false
	panel.Action = action
	panel.Margin.Top = int(hc.Actions.ShowCard.InlineTopMargin)
	panel.Background = cascade.ContainerColors(hc, style).BackgroundColor
	panel.Padding = cascade.ContainerPadding(hc, style, args.ContainerStyle)

	if action.Card == nil {
		return panel, nil
	}
	body, err := c.renderCardBody(action.Card, Args{
		ContainerStyle: style,
		IsInShowCard:   true,
	})
	if err != nil {
		return nil, err
	}
	panel.Add(body)
	return panel, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
