package cascade

import (
	"github.com/arthur-debert/cardrender/pkg/hostconfig"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

// ResolveSpacing maps a symbolic spacing to pixels. Unknown values use
// the default spacing.
func ResolveSpacing(hc *hostconfig.HostConfig, spacing types.Spacing) uint32 {
	switch spacing {
	case types.SpacingNone:
		return 0
	case types.SpacingSmall:
		return hc.Spacing.Small
	case types.SpacingMedium:
		return hc.Spacing.Medium
	case types.SpacingLarge:
		return hc.Spacing.Large
	case types.SpacingExtraLarge:
		return hc.Spacing.ExtraLarge
	case types.SpacingPadding:
		return hc.Spacing.Padding
	default:
		return hc.Spacing.Default
	}
}

// ContainerPadding is the inner padding of a container painted with a
// style different from its parent. Containers that keep the parent style
// get no padding.
func ContainerPadding(hc *hostconfig.HostConfig, style, parent types.ContainerStyle) ui.Thickness {
	if style == types.ContainerStyleNone || style == parent {
		return ui.Thickness{}
	}
	p := int(hc.Spacing.Padding)
	return ui.Thickness{Left: p, Top: p, Right: p, Bottom: p}
}

// InheritStyle returns the style a container paints with: its own when
// set, its parent's otherwise.
func InheritStyle(own, parent types.ContainerStyle) types.ContainerStyle {
	if own == types.ContainerStyleNone {
		if parent == types.ContainerStyleNone {
			return types.ContainerStyleDefault
		}
		return parent
	}
	return own
}

// ButtonMargin is half the button spacing on each side along the axis
// the buttons are laid out on.
func ButtonMargin(actions hostconfig.ActionsConfig) ui.Thickness {
	half := int(actions.ButtonSpacing / 2)
	if actions.ActionsOrientation == types.OrientationVertical {
		return ui.Thickness{Top: half, Bottom: half}
	}
	return ui.Thickness{Left: half, Right: half}
}

// PanelMargin pulls the action panel out by the button margin so the
// outer buttons sit flush with the card edges.
func PanelMargin(actions hostconfig.ActionsConfig) ui.Thickness {
	return ButtonMargin(actions).Negate()
}

// UseStretchGrid reports whether buttons are laid out in a grid of equal
// columns. Stretch only applies to horizontal rows.
func UseStretchGrid(actions hostconfig.ActionsConfig) bool {
	return actions.ActionAlignment == types.ActionAlignStretch &&
		actions.ActionsOrientation != types.OrientationVertical
}

// PanelAlignment aligns the action panel inside its parent
func PanelAlignment(actions hostconfig.ActionsConfig) types.HorizontalAlignment {
	return alignmentOf(actions.ActionAlignment)
}

// ButtonAlignment aligns a single button. Buttons in a row fill their
// slot, buttons in a column follow the action alignment.
func ButtonAlignment(actions hostconfig.ActionsConfig) types.HorizontalAlignment {
	if actions.ActionsOrientation != types.OrientationVertical {
		return types.HAlignStretch
	}
	return alignmentOf(actions.ActionAlignment)
}

func alignmentOf(a types.ActionAlignment) types.HorizontalAlignment {
	switch a {
	case types.ActionAlignCenter:
		return types.HAlignCenter
	case types.ActionAlignRight:
		return types.HAlignRight
	case types.ActionAlignStretch:
		return types.HAlignStretch
	default:
		return types.HAlignLeft
	}
}

// Orientation converts the configured actions orientation
func Orientation(actions hostconfig.ActionsConfig) ui.Orientation {
	if actions.ActionsOrientation == types.OrientationVertical {
		return ui.Vertical
	}
	return ui.Horizontal
}
