package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/layout"
	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

// RenderedCard is the output of a render pass. Besides the UI tree it
// keeps what is needed to react to clicks: inputs, element nodes by id,
// and the state of each action set.
type RenderedCard struct {
	ID       string
	Card     *types.Card
	Root     *ui.Node
	Warnings types.Warnings

	invoker    ActionInvoker
	inputs     map[string]*ui.Node
	inputOrder []string
	elements   map[string]*ui.Node
	separators map[*ui.Node]*ui.Node
	actionSets []*actionSetState
}

func newRenderedCard(id string, card *types.Card, invoker ActionInvoker) *RenderedCard {
	return &RenderedCard{
		ID:         id,
		Card:       card,
		invoker:    invoker,
		inputs:     make(map[string]*ui.Node),
		elements:   make(map[string]*ui.Node),
		separators: make(map[*ui.Node]*ui.Node),
	}
}

// actionSetState tracks the controls of one rendered action set
type actionSetState struct {
	plan    layout.Plan
	slots   []*ui.Node
	entries []*ui.Node
	panels  map[types.ActionElement]*ui.Node
	flyout  *ui.Node
	// current is the slot shown in the last primary position, -1 for none
	current int
}

func (rc *RenderedCard) registerElement(id string, node *ui.Node) {
	if id == "" {
		return
	}
	if _, exists := rc.elements[id]; !exists {
		rc.elements[id] = node
	}
}

func (rc *RenderedCard) registerInput(id string, node *ui.Node) {
	if id == "" {
		return
	}
	if _, exists := rc.inputs[id]; !exists {
		rc.inputOrder = append(rc.inputOrder, id)
	}
	rc.inputs[id] = node
}

// ElementNode returns the node rendered for the element with the given id
func (rc *RenderedCard) ElementNode(id string) *ui.Node {
	return rc.elements[id]
}

// InputIDs returns the ids of all rendered inputs in document order
func (rc *RenderedCard) InputIDs() []string {
	return append([]string(nil), rc.inputOrder...)
}

// Inputs returns the current value of every input
func (rc *RenderedCard) Inputs() map[string]string {
	values := make(map[string]string, len(rc.inputs))
	for id, node := range rc.inputs {
		values[id] = node.Prop(propValue)
	}
	return values
}

// SetInputValue changes the value of an input, as a user typing would
func (rc *RenderedCard) SetInputValue(id, value string) error {
	node, ok := rc.inputs[id]
	if !ok {
		return errors.Newf(errors.ErrNotFound, "no input with id %q", id).WithDetail("id", id)
	}
	node.SetProp(propValue, value)
	return nil
}

// Invoke runs an action as if its button was clicked
func (rc *RenderedCard) Invoke(action types.ActionElement) error {
	logger := logging.GetLogger("render")
	if action == nil {
		return errors.New(errors.ErrInvalidInput, "no action to invoke")
	}
	if !action.IsEnabled() {
		return errors.Newf(errors.ErrInvalidInput, "action %q is disabled", action.Title())
	}
	logger.Debug().Str("card", rc.ID).Str("type", action.TypeName()).Str("title", action.Title()).Msg("invoking action")

	switch a := action.(type) {
	case *types.ToggleVisibilityAction:
		return rc.toggleVisibility(a)
	case *types.ShowCardAction:
		if set := rc.setWithPanel(a); set != nil {
			set.togglePanel(a)
			return nil
		}
	}
	return rc.send(action)
}

func (rc *RenderedCard) send(action types.ActionElement) error {
	if rc.invoker == nil {
		return errors.Newf(errors.ErrNotImplemented, "no action invoker for %s", action.TypeName())
	}
	inputs := rc.Inputs()
	if !sendsInputs(action) {
		inputs = map[string]string{}
	}
	return rc.invoker.SendActionEvent(ActionEvent{CardID: rc.ID, Action: action, Inputs: inputs})
}

func (rc *RenderedCard) sendMedia(media *types.Media) error {
	mi, ok := rc.invoker.(MediaInvoker)
	if !ok {
		return errors.New(errors.ErrNotImplemented, "no media invoker for Media")
	}
	logger := logging.GetLogger("render")
	logger.Debug().Str("card", rc.ID).Str("id", media.ID()).Msg("media clicked")
	return mi.SendMediaClickedEvent(MediaEvent{CardID: rc.ID, Media: media})
}

// sendsInputs reports whether an action's associatedInputs lets input
// values go out with its event. Only "none" withholds them.
func sendsInputs(action types.ActionElement) bool {
	var associated string
	switch a := action.(type) {
	case *types.SubmitAction:
		associated = a.AssociatedInputs
	case *types.ExecuteAction:
		associated = a.AssociatedInputs
	}
	return !strings.EqualFold(strings.TrimSpace(associated), "none")
}

func (rc *RenderedCard) toggleVisibility(a *types.ToggleVisibilityAction) error {
	var missing []string
	for _, target := range a.Targets {
		node, ok := rc.elements[target.ElementID]
		if !ok {
			missing = append(missing, target.ElementID)
			continue
		}
		visible := !node.Visible
		if target.IsVisible != nil {
			visible = *target.IsVisible
		}
		node.Visible = visible
		if sep, ok := rc.separators[node]; ok {
			sep.Visible = visible
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.Newf(errors.ErrNotFound, "toggle targets not found: %v", missing)
	}
	return nil
}

func (rc *RenderedCard) setWithPanel(a types.ActionElement) *actionSetState {
	for _, set := range rc.actionSets {
		if _, ok := set.panels[a]; ok {
			return set
		}
	}
	return nil
}

// togglePanel expands the show card of a, collapsing the others of the
// set, or collapses it when it is already expanded
func (s *actionSetState) togglePanel(a types.ActionElement) {
	panel := s.panels[a]
	expand := !panel.Visible
	for _, p := range s.panels {
		p.Visible = false
	}
	panel.Visible = expand
}

// clickSlot handles a click on a primary row button
func (rc *RenderedCard) clickSlot(s *actionSetState, slot int) func() error {
	return func() error {
		return rc.Invoke(s.plan.Primary[slot].Action)
	}
}

// clickEntry handles a click on an overflow menu item. A show card moves
// into the primary row first, trading places with the last primary button.
func (rc *RenderedCard) clickEntry(s *actionSetState, entry int) func() error {
	return func() error {
		e := s.plan.Overflow[entry]
		if _, isShowCard := e.Action.(*types.ShowCardAction); isShowCard && e.Slot >= 0 {
			if _, inline := s.panels[e.Action]; inline {
				s.swapIn(entry)
			}
		}
		if s.flyout != nil {
			s.flyout.SetProp(propOpen, "false")
		}
		return rc.Invoke(e.Action)
	}
}

func (s *actionSetState) swapIn(entry int) {
	slot := s.plan.Overflow[entry].Slot
	if slot == s.current {
		return
	}
	s.slots[slot].Visible = true
	s.entries[entry].Visible = false

	if s.current >= 0 {
		s.slots[s.current].Visible = false
		if twin := s.plan.Primary[s.current].OverflowTwin; twin >= 0 {
			s.entries[twin].Visible = true
		}
	}
	s.current = slot
}

// String summarizes the card for logs
func (rc *RenderedCard) String() string {
	return fmt.Sprintf("card %s (%d warnings)", rc.ID, len(rc.Warnings))
}
