package layout_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/cardrender/pkg/layout"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotView struct {
	Title   string
	Visible bool
	Column  int
	Twin    int
}

type entryView struct {
	Title   string
	Visible bool
	Slot    int
}

type planView struct {
	Primary  []slotView
	Overflow []entryView
	Trigger  int
	Last     int
}

func view(p layout.Plan) planView {
	v := planView{Trigger: p.TriggerColumn, Last: p.LastPrimaryIndex}
	for _, s := range p.Primary {
		v.Primary = append(v.Primary, slotView{s.Action.Title(), s.Visible, s.Column, s.OverflowTwin})
	}
	for _, e := range p.Overflow {
		v.Overflow = append(v.Overflow, entryView{e.Action.Title(), e.Visible, e.Slot})
	}
	return v
}

func primary(title string) types.ActionElement {
	return types.NewSubmitAction(title)
}

func secondary(title string) types.ActionElement {
	a := types.NewSubmitAction(title)
	a.SetMode(types.ActionModeSecondary)
	return a
}

func showCard(title string, mode types.ActionMode) types.ActionElement {
	a := types.NewShowCardAction(title, types.NewCard("1.6"))
	a.SetMode(mode)
	return a
}

func titles(actions []types.ActionElement) []string {
	var out []string
	for _, a := range actions {
		out = append(out, a.Title())
	}
	return out
}

func TestLayoutWithinLimitHasNoOverflow(t *testing.T) {
	for n := 0; n <= 4; n++ {
		for limit := uint32(0); limit <= 5; limit++ {
			if limit != 0 && uint32(n) > limit {
				continue
			}
			t.Run(fmt.Sprintf("%d actions max %d", n, limit), func(t *testing.T) {
				var actions []types.ActionElement
				for i := 0; i < n; i++ {
					actions = append(actions, primary(fmt.Sprintf("a%d", i)))
				}
				var warnings types.Warnings
				plan := layout.Layout(actions, layout.Options{MaxActions: limit, OverflowMaxActions: true}, &warnings)

				assert.Empty(t, plan.Overflow)
				assert.False(t, plan.OverflowTrigger)
				assert.Equal(t, -1, plan.TriggerColumn)
				assert.Equal(t, titles(actions), titles(plan.VisiblePrimary()))
				assert.Empty(t, warnings)
			})
		}
	}
}

func TestLayoutDropsPastLimit(t *testing.T) {
	for limit := uint32(1); limit <= 3; limit++ {
		t.Run(fmt.Sprintf("max %d", limit), func(t *testing.T) {
			actions := []types.ActionElement{primary("a"), primary("b"), primary("c"), primary("d"), primary("e")}
			var warnings types.Warnings
			plan := layout.Layout(actions, layout.Options{MaxActions: limit}, &warnings)

			assert.Len(t, plan.VisiblePrimary(), int(limit))
			assert.Equal(t, titles(actions[:limit]), titles(plan.VisiblePrimary()))
			assert.Empty(t, plan.Overflow)
			assert.False(t, plan.OverflowTrigger)
			assert.Equal(t, 5-int(limit), warnings.Count(types.WarnMaxActionsExceeded))
			assert.Equal(t, layout.MsgActionsNotRendered, warnings[0].Message)
		})
	}
}

func TestLayoutSecondaryGoesToOverflow(t *testing.T) {
	actions := []types.ActionElement{primary("A"), primary("B"), secondary("C")}
	var warnings types.Warnings
	plan := layout.Layout(actions, layout.Options{MaxActions: 2}, &warnings)

	want := planView{
		Primary: []slotView{
			{"A", true, 0, -1},
			{"B", true, 1, -1},
		},
		Overflow: []entryView{{"C", true, -1}},
		Trigger:  2,
		Last:     1,
	}
	if diff := cmp.Diff(want, view(plan)); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, warnings)
}

func TestLayoutOverflowsPastLimit(t *testing.T) {
	actions := []types.ActionElement{primary("A"), primary("B")}
	var warnings types.Warnings
	plan := layout.Layout(actions, layout.Options{MaxActions: 1, OverflowMaxActions: true}, &warnings)

	want := planView{
		Primary:  []slotView{{"A", true, 0, -1}},
		Overflow: []entryView{{"B", true, -1}},
		Trigger:  1,
		Last:     0,
	}
	if diff := cmp.Diff(want, view(plan)); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, warnings, 1)
	assert.Equal(t, types.Warning{StatusCode: types.WarnMaxActionsExceeded, Message: layout.MsgActionsOverflowed}, warnings[0])
}

func TestLayoutOverflowedShowCardGetsPlaceholder(t *testing.T) {
	actions := []types.ActionElement{
		primary("A"),
		primary("B"),
		showCard("S", types.ActionModePrimary),
		showCard("T", types.ActionModeSecondary),
		primary("C"),
	}
	var warnings types.Warnings
	plan := layout.Layout(actions, layout.Options{MaxActions: 2, OverflowMaxActions: true, InlineShowCards: true}, &warnings)

	want := planView{
		Primary: []slotView{
			{"A", true, 0, -1},
			{"S", false, 1, 0},
			{"T", false, 2, 1},
			{"B", true, 3, 3},
		},
		Overflow: []entryView{
			{"S", true, 1},
			{"T", true, 2},
			{"C", true, -1},
			{"B", false, 3},
		},
		Trigger: 4,
		Last:    3,
	}
	if diff := cmp.Diff(want, view(plan)); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}

	// S and C were meant to be primary
	assert.Equal(t, 2, warnings.Count(types.WarnMaxActionsExceeded))

	require.Len(t, plan.ShowCards, 2)
	assert.Equal(t, "S", plan.ShowCards[0].Action.Title())
	assert.Equal(t, 1, plan.ShowCards[0].SlotIndex)
	assert.Equal(t, 0, plan.ShowCards[0].OverflowIndex)
	assert.Equal(t, "T", plan.ShowCards[1].Action.Title())
}

func TestLayoutPrimaryShowCardInline(t *testing.T) {
	actions := []types.ActionElement{showCard("S", types.ActionModePrimary), primary("A")}

	plan := layout.Layout(actions, layout.Options{MaxActions: 5, InlineShowCards: true}, nil)
	require.Len(t, plan.ShowCards, 1)
	assert.Equal(t, 0, plan.ShowCards[0].SlotIndex)
	assert.Equal(t, -1, plan.ShowCards[0].OverflowIndex)

	popup := layout.Layout(actions, layout.Options{MaxActions: 5}, nil)
	assert.Empty(t, popup.ShowCards)
}

func TestLayoutOnlySecondary(t *testing.T) {
	actions := []types.ActionElement{secondary("X"), showCard("Y", types.ActionModeSecondary)}
	plan := layout.Layout(actions, layout.Options{MaxActions: 3, InlineShowCards: true}, nil)

	want := planView{
		Primary:  []slotView{{"Y", false, 0, 1}},
		Overflow: []entryView{{"X", true, -1}, {"Y", true, 0}},
		Trigger:  1,
		Last:     -1,
	}
	if diff := cmp.Diff(want, view(plan)); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutIcons(t *testing.T) {
	a := primary("A")
	a.SetIconURL("https://example.com/a.png")
	b := primary("B")
	b.SetIconURL("https://example.com/b.png")

	assert.True(t, layout.Layout([]types.ActionElement{a, b}, layout.Options{}, nil).AllActionsHaveIcons)
	assert.False(t, layout.Layout([]types.ActionElement{a, primary("C")}, layout.Options{}, nil).AllActionsHaveIcons)
}

func TestLayoutEmpty(t *testing.T) {
	plan := layout.Layout(nil, layout.Options{MaxActions: 3}, nil)
	assert.Empty(t, plan.Primary)
	assert.False(t, plan.OverflowTrigger)
	assert.Equal(t, -1, plan.LastPrimaryIndex)
}
