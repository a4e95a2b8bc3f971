// Package layout partitions an action collection into the visible
// primary row, the overflow menu and the inline show cards.
//
// The result is a Plan: a pure description of which buttons exist, in
// which column, whether they start hidden, and how hidden buttons pair
// with overflow menu entries. Show card actions moved into the overflow
// menu get a hidden placeholder in the primary row, so invoking one from
// the menu can swap it with the last primary button.
package layout

import (
	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/types"
)

// Warning messages recorded with WarnMaxActionsExceeded
const (
	MsgActionsNotRendered = "Some actions were not rendered due to exceeding the maximum number of actions allowed"
	MsgActionsOverflowed  = "Some actions were moved to an overflow menu due to exceeding the maximum number of actions allowed"
)

// Options configures one layout
type Options struct {
	// MaxActions caps the visible primary buttons, 0 means no cap
	MaxActions uint32
	// OverflowMaxActions moves primary actions past the cap into the
	// overflow menu instead of dropping them
	OverflowMaxActions bool
	// InlineShowCards records show card panels in the plan
	InlineShowCards bool
}

// Slot is one button of the primary row
type Slot struct {
	Action  types.ActionElement
	Visible bool
	Column  int
	// OverflowTwin is the overflow entry this button trades places with, -1 for none
	OverflowTwin int
}

// Entry is one item of the overflow menu
type Entry struct {
	Action  types.ActionElement
	Visible bool
	// Slot is the primary row button this entry trades places with, -1 for none
	Slot int
}

// InlineShowCard pairs a show card action with the controls that toggle it
type InlineShowCard struct {
	Action        *types.ShowCardAction
	SlotIndex     int
	OverflowIndex int
}

// Plan is the partition of an action collection
type Plan struct {
	Primary   []Slot
	Overflow  []Entry
	ShowCards []InlineShowCard
	// OverflowTrigger is set when the overflow menu button exists; it
	// sits in TriggerColumn, after every primary slot
	OverflowTrigger bool
	TriggerColumn   int
	// LastPrimaryIndex is the Primary index of the last visible primary
	// button, -1 when there is none
	LastPrimaryIndex int
	// AllActionsHaveIcons enables the above-title icon placement
	AllActionsHaveIcons bool
}

// VisiblePrimary returns the actions of the visible primary buttons in column order
func (p Plan) VisiblePrimary() []types.ActionElement {
	var out []types.ActionElement
	for _, s := range p.Primary {
		if s.Visible {
			out = append(out, s.Action)
		}
	}
	return out
}

// VisibleOverflow returns the actions of the visible overflow entries
func (p Plan) VisibleOverflow() []types.ActionElement {
	var out []types.ActionElement
	for _, e := range p.Overflow {
		if e.Visible {
			out = append(out, e.Action)
		}
	}
	return out
}

func (p *Plan) addSlot(a types.ActionElement, visible bool, twin int) int {
	idx := len(p.Primary)
	p.Primary = append(p.Primary, Slot{Action: a, Visible: visible, Column: idx, OverflowTwin: twin})
	return idx
}

func (p *Plan) addEntry(a types.ActionElement, visible bool) int {
	p.Overflow = append(p.Overflow, Entry{Action: a, Visible: visible, Slot: -1})
	return len(p.Overflow) - 1
}

// Layout partitions actions. Actions dropped by fallback must already be
// removed. Warnings go to sink in the order they arise.
func Layout(actions []types.ActionElement, opts Options, sink types.WarningSink) Plan {
	logger := logging.GetLogger("layout")
	if sink == nil {
		sink = types.DiscardWarnings{}
	}

	plan := Plan{LastPrimaryIndex: -1, TriggerColumn: -1, AllActionsHaveIcons: true}

	// First pass: find the action that becomes the last visible primary button
	lastPrimary := -1
	var primaries uint32
	for i, a := range actions {
		if a.IconURL() == "" {
			plan.AllActionsHaveIcons = false
		}
		if a.Mode() != types.ActionModePrimary {
			continue
		}
		if opts.MaxActions == 0 || primaries < opts.MaxActions {
			lastPrimary = i
			primaries++
		}
	}

	// Second pass: emit buttons and overflow entries in order, deferring
	// the last primary button until the placeholders are known
	pastLastPrimary := false
	var pendingShowCards []int
	for i, a := range actions {
		primary := a.Mode() == types.ActionModePrimary
		switch {
		case !pastLastPrimary && primary:
			if i == lastPrimary {
				pastLastPrimary = true
				continue
			}
			plan.addSlot(a, true, -1)
		case pastLastPrimary && primary && !opts.OverflowMaxActions:
			sink.AddWarning(types.WarnMaxActionsExceeded, MsgActionsNotRendered)
		default:
			idx := plan.addEntry(a, true)
			if a.ActionType() == types.ActionShowCard {
				pendingShowCards = append(pendingShowCards, idx)
			}
			if primary {
				sink.AddWarning(types.WarnMaxActionsExceeded, MsgActionsOverflowed)
			}
		}
	}

	hasOverflow := len(plan.Overflow) > 0
	twin := -1
	if hasOverflow && len(pendingShowCards) > 0 {
		if lastPrimary >= 0 {
			twin = plan.addEntry(actions[lastPrimary], false)
		}
		for _, entry := range pendingShowCards {
			slot := plan.addSlot(plan.Overflow[entry].Action, false, entry)
			plan.Overflow[entry].Slot = slot
		}
	}

	if lastPrimary >= 0 {
		slot := plan.addSlot(actions[lastPrimary], true, twin)
		plan.LastPrimaryIndex = slot
		if twin >= 0 {
			plan.Overflow[twin].Slot = slot
		}
	}

	if hasOverflow {
		plan.OverflowTrigger = true
		plan.TriggerColumn = len(plan.Primary)
	}

	if opts.InlineShowCards {
		for i, s := range plan.Primary {
			if sc, ok := s.Action.(*types.ShowCardAction); ok {
				plan.ShowCards = append(plan.ShowCards, InlineShowCard{
					Action:        sc,
					SlotIndex:     i,
					OverflowIndex: s.OverflowTwin,
				})
			}
		}
	}

	logger.Trace().
		Int("actions", len(actions)).
		Int("primary", len(plan.Primary)).
		Int("overflow", len(plan.Overflow)).
		Bool("trigger", plan.OverflowTrigger).
		Msg("laid out action set")

	return plan
}
