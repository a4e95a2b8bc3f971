package render_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/cardrender/pkg/cascade"
	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/hostconfig"
	"github.com/arthur-debert/cardrender/pkg/layout"
	"github.com/arthur-debert/cardrender/pkg/render"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []render.ActionEvent
}

func (r *recorder) SendActionEvent(e render.ActionEvent) error {
	r.events = append(r.events, e)
	return nil
}

func newCard(body ...types.CardElement) *types.Card {
	card := types.NewCard("1.5")
	card.Body = body
	return card
}

func withHost(mutate func(hc *hostconfig.HostConfig)) render.Option {
	hc := hostconfig.Default()
	mutate(hc)
	return render.WithHostConfig(hc)
}

func ofKind(root *ui.Node, kind ui.Kind) []*ui.Node {
	return root.FindAll(func(n *ui.Node) bool { return n.Kind == kind })
}

func titles(nodes []*ui.Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Text)
	}
	return out
}

func findText(t *testing.T, root *ui.Node, kind ui.Kind, text string) *ui.Node {
	t.Helper()
	n := root.Find(func(n *ui.Node) bool { return n.Kind == kind && n.Text == text })
	require.NotNil(t, n, "no %s node %q", kind, text)
	return n
}

func textBlock(id, text string) *types.TextBlock {
	tb := types.NewTextBlock(text)
	tb.SetID(id)
	return tb
}

func TestRenderCard(t *testing.T) {
	card := newCard(textBlock("title", "Hello"))
	card.Actions = []types.ActionElement{types.NewSubmitAction("OK")}

	rc, err := render.New().RenderCard(card)
	require.NoError(t, err)
	assert.NotEmpty(t, rc.ID)
	assert.Empty(t, rc.Warnings)
	require.NotNil(t, rc.Root)
	assert.Equal(t, ui.KindCard, rc.Root.Kind)

	title := rc.Root.FindByName("title")
	require.NotNil(t, title)
	assert.Equal(t, "Hello", title.Text)
	assert.Same(t, title, rc.ElementNode("title"))

	assert.Equal(t, []string{"OK"}, titles(ofKind(rc.Root, ui.KindButton)))
	assert.Len(t, ofKind(rc.Root, ui.KindActionSet), 1)
}

func TestRenderCardIDsAreUnique(t *testing.T) {
	r := render.New()
	a, err := r.RenderCard(newCard())
	require.NoError(t, err)
	b, err := r.RenderCard(newCard())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRenderCardNil(t *testing.T) {
	_, err := render.New().RenderCard(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSchemaVersionWarning(t *testing.T) {
	tests := []struct {
		version string
		warn    bool
	}{
		{"1.0", false},
		{"1.6", false},
		{"", false},
		{"2.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			card := newCard()
			card.Version = tt.version
			rc, err := render.New().RenderCard(card)
			require.NoError(t, err)
			assert.Equal(t, tt.warn, rc.Warnings.Has(types.WarnUnsupportedSchemaVersion))
		})
	}
}

func TestFallback(t *testing.T) {
	t.Run("content", func(t *testing.T) {
		graph := types.NewUnknownElement("Graph", nil)
		require.NoError(t, graph.SetFallback(types.FallbackContent, textBlock("fb", "no graphs here")))

		rc, err := render.New().RenderCard(newCard(graph))
		require.NoError(t, err)
		assert.Equal(t, "no graphs here", rc.Root.FindByName("fb").Text)
		assert.Equal(t, 1, rc.Warnings.Count(types.WarnPerformingFallback))
	})

	t.Run("drop", func(t *testing.T) {
		graph := types.NewUnknownElement("Graph", nil)
		require.NoError(t, graph.SetFallback(types.FallbackDrop, nil))

		rc, err := render.New().RenderCard(newCard(graph, textBlock("after", "kept")))
		require.NoError(t, err)
		assert.Len(t, rc.Root.Children, 1)
		assert.True(t, rc.Warnings.Has(types.WarnUnknownElementType))
	})

	t.Run("requirements not met", func(t *testing.T) {
		fancy := textBlock("fancy", "fancy")
		fancy.SetRequirements([]types.Requirement{{Name: "acme", Version: "1.0"}})
		require.NoError(t, fancy.SetFallback(types.FallbackContent, textBlock("plain", "plain")))

		rc, err := render.New().RenderCard(newCard(fancy))
		require.NoError(t, err)
		assert.Nil(t, rc.Root.FindByName("fancy"))
		assert.NotNil(t, rc.Root.FindByName("plain"))
	})

	t.Run("none aborts with partial warnings", func(t *testing.T) {
		old := types.NewUnknownElement("Old", nil)
		require.NoError(t, old.SetFallback(types.FallbackDrop, nil))
		nested := types.NewContainer(types.NewUnknownElement("Graph", nil))

		rc, err := render.New().RenderCard(newCard(old, nested))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedElement))
		require.NotNil(t, rc)
		assert.Nil(t, rc.Root)
		assert.True(t, rc.Warnings.Has(types.WarnUnknownElementType))
	})

	t.Run("dropped action", func(t *testing.T) {
		unknown := types.NewUnknownAction("Action.Future", nil)
		require.NoError(t, unknown.SetFallback(types.FallbackDrop, nil))
		card := newCard()
		card.Actions = []types.ActionElement{unknown, types.NewSubmitAction("OK")}

		rc, err := render.New().RenderCard(card)
		require.NoError(t, err)
		assert.Equal(t, []string{"OK"}, titles(ofKind(rc.Root, ui.KindButton)))
		assert.True(t, rc.Warnings.Has(types.WarnUnknownActionElementType))
	})
}

func TestCustomRenderers(t *testing.T) {
	elements := render.NewElementRendererRegistration()
	require.NoError(t, elements.Register(string(types.ElementTextBlock), render.ElementRendererFunc(
		func(el types.CardElement, ctx *render.Context, args render.Args) (*ui.Node, error) {
			n := ui.NewNode(ui.KindText)
			n.Text = "custom:" + el.(*types.TextBlock).Text
			return n, nil
		})))
	require.NoError(t, elements.Register("Rating", render.ElementRendererFunc(
		func(el types.CardElement, ctx *render.Context, args render.Args) (*ui.Node, error) {
			n := ui.NewNode(ui.KindText)
			n.Text = "*****"
			return n, nil
		})))
	require.NoError(t, elements.Register("Broken", render.ElementRendererFunc(
		func(types.CardElement, *render.Context, render.Args) (*ui.Node, error) {
			return nil, fmt.Errorf("boom")
		})))

	r := render.New(render.WithElementRenderers(elements))

	rating := types.NewUnknownElement("Rating", nil)
	rating.SetID("stars")
	rc, err := r.RenderCard(newCard(textBlock("t", "hi"), rating))
	require.NoError(t, err)
	assert.Empty(t, rc.Warnings)
	assert.Equal(t, "custom:hi", rc.Root.FindByName("t").Text)
	assert.Equal(t, "*****", rc.Root.FindByName("stars").Text)

	_, err = r.RenderCard(newCard(types.NewUnknownElement("Broken", nil)))
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
}

func TestSelectAction(t *testing.T) {
	box := func(action types.ActionElement) *types.Container {
		c := types.NewContainer(types.NewTextBlock("inside"))
		c.SetID("box")
		c.SetSelectAction(action)
		return c
	}

	tests := []struct {
		name        string
		interactive bool
		action      types.ActionElement
		kind        ui.Kind
		warning     types.WarningStatusCode
	}{
		{"wrapped", true, types.NewOpenURLAction("", "https://example.com"), ui.KindTouchTarget, ""},
		{"no interactivity", false, types.NewOpenURLAction("", "https://example.com"), ui.KindStack, types.WarnInteractivityNotSupported},
		{"show card", true, types.NewShowCardAction("", types.NewCard("")), ui.KindStack, types.WarnUnsupportedValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := render.New(withHost(func(hc *hostconfig.HostConfig) {
				hc.SupportsInteractivity = tt.interactive
			}))
			rc, err := r.RenderCard(newCard(box(tt.action)))
			require.NoError(t, err)

			node := rc.Root.FindByName("box")
			require.NotNil(t, node)
			assert.Equal(t, tt.kind, node.Kind)
			if tt.warning == "" {
				assert.Empty(t, rc.Warnings)
			} else {
				assert.Equal(t, 1, rc.Warnings.Count(tt.warning))
			}
		})
	}
}

func TestSelectActionInvokes(t *testing.T) {
	rec := &recorder{}
	open := types.NewOpenURLAction("", "https://example.com")
	c := types.NewContainer(types.NewTextBlock("inside"))
	c.SetID("box")
	c.SetSelectAction(open)

	rc, err := render.New(render.WithActionInvoker(rec)).RenderCard(newCard(c))
	require.NoError(t, err)
	require.NoError(t, rc.Root.FindByName("box").Click())
	require.Len(t, rec.events, 1)
	assert.Same(t, open, rec.events[0].Action)
}

func TestInteractivityOff(t *testing.T) {
	card := newCard(
		types.NewTextInput("name"),
		types.NewActionSet(types.NewSubmitAction("Inline")),
		textBlock("t", "still here"),
	)
	card.Actions = []types.ActionElement{types.NewSubmitAction("OK")}

	r := render.New(withHost(func(hc *hostconfig.HostConfig) { hc.SupportsInteractivity = false }))
	rc, err := r.RenderCard(card)
	require.NoError(t, err)
	assert.Equal(t, 3, rc.Warnings.Count(types.WarnInteractivityNotSupported))
	assert.Empty(t, rc.InputIDs())
	assert.Empty(t, ofKind(rc.Root, ui.KindButton))
	assert.NotNil(t, rc.Root.FindByName("t"))
}

func threeActions() []types.ActionElement {
	return []types.ActionElement{
		types.NewSubmitAction("A"),
		types.NewSubmitAction("B"),
		types.NewSubmitAction("C"),
	}
}

func TestMaxActions(t *testing.T) {
	maxTwo := withHost(func(hc *hostconfig.HostConfig) { hc.Actions.MaxActions = 2 })

	t.Run("dropped", func(t *testing.T) {
		card := newCard()
		card.Actions = threeActions()
		rc, err := render.New(maxTwo).RenderCard(card)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B"}, titles(ofKind(rc.Root, ui.KindButton)))
		assert.Empty(t, ofKind(rc.Root, ui.KindMenuItem))
		require.Len(t, rc.Warnings, 1)
		assert.Equal(t, types.WarnMaxActionsExceeded, rc.Warnings[0].StatusCode)
		assert.Equal(t, layout.MsgActionsNotRendered, rc.Warnings[0].Message)
	})

	t.Run("overflowed", func(t *testing.T) {
		card := newCard()
		card.Actions = threeActions()
		rc, err := render.New(maxTwo, render.WithOverflowMaxActions(true)).RenderCard(card)
		require.NoError(t, err)

		buttons := ofKind(rc.Root, ui.KindButton)
		assert.Equal(t, []string{"A", "B", "..."}, titles(buttons))
		assert.Equal(t, 2, buttons[2].Column)
		assert.Equal(t, []string{"C"}, titles(ofKind(rc.Root, ui.KindMenuItem)))
		require.Len(t, rc.Warnings, 1)
		assert.Equal(t, layout.MsgActionsOverflowed, rc.Warnings[0].Message)
	})

	t.Run("unlimited", func(t *testing.T) {
		card := newCard()
		card.Actions = threeActions()
		r := render.New(withHost(func(hc *hostconfig.HostConfig) { hc.Actions.MaxActions = 0 }))
		rc, err := r.RenderCard(card)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, titles(ofKind(rc.Root, ui.KindButton)))
		assert.Empty(t, rc.Warnings)
	})
}

func TestOverflowMenu(t *testing.T) {
	rec := &recorder{}
	card := newCard()
	card.Actions = threeActions()
	card.Actions[2].SetMode(types.ActionModeSecondary)

	rc, err := render.New(render.WithActionInvoker(rec)).RenderCard(card)
	require.NoError(t, err)
	assert.Empty(t, rc.Warnings)

	trigger := findText(t, rc.Root, ui.KindButton, "...")
	require.NotNil(t, trigger.Flyout)
	assert.Equal(t, "false", trigger.Flyout.Prop("open"))
	assert.Equal(t, "More actions", trigger.Prop("tooltip"))

	require.NoError(t, trigger.Click())
	assert.Equal(t, "true", trigger.Flyout.Prop("open"))

	require.NoError(t, findText(t, rc.Root, ui.KindMenuItem, "C").Click())
	assert.Equal(t, "false", trigger.Flyout.Prop("open"))
	require.Len(t, rec.events, 1)
	assert.Equal(t, "C", rec.events[0].Action.Title())
}

func TestInlineShowCard(t *testing.T) {
	innerCard := func(id string) *types.Card {
		c := types.NewCard("")
		c.Body = []types.CardElement{textBlock(id, "inner "+id)}
		return c
	}
	first := types.NewShowCardAction("First", innerCard("one"))
	second := types.NewShowCardAction("Second", innerCard("two"))
	card := newCard()
	card.Actions = []types.ActionElement{first, second}

	rec := &recorder{}
	rc, err := render.New(render.WithActionInvoker(rec)).RenderCard(card)
	require.NoError(t, err)

	panels := ofKind(rc.Root, ui.KindShowCardPanel)
	require.Len(t, panels, 2)
	panelOf := map[types.ActionElement]*ui.Node{}
	for _, p := range panels {
		assert.False(t, p.Visible)
		panelOf[p.Action] = p
	}
	assert.NotNil(t, rc.ElementNode("one"))

	require.NoError(t, findText(t, rc.Root, ui.KindButton, "First").Click())
	assert.True(t, panelOf[first].Visible)
	assert.False(t, panelOf[second].Visible)

	require.NoError(t, findText(t, rc.Root, ui.KindButton, "Second").Click())
	assert.False(t, panelOf[first].Visible)
	assert.True(t, panelOf[second].Visible)

	require.NoError(t, findText(t, rc.Root, ui.KindButton, "Second").Click())
	assert.False(t, panelOf[second].Visible)
	assert.Empty(t, rec.events)
}

func TestPopupShowCard(t *testing.T) {
	show := types.NewShowCardAction("More", types.NewCard(""))
	card := newCard()
	card.Actions = []types.ActionElement{show}

	rec := &recorder{}
	r := render.New(render.WithActionInvoker(rec), withHost(func(hc *hostconfig.HostConfig) {
		hc.Actions.ShowCard.ActionMode = types.ShowCardPopup
	}))
	rc, err := r.RenderCard(card)
	require.NoError(t, err)
	assert.Empty(t, ofKind(rc.Root, ui.KindShowCardPanel))

	require.NoError(t, findText(t, rc.Root, ui.KindButton, "More").Click())
	require.Len(t, rec.events, 1)
	assert.Same(t, show, rec.events[0].Action)
}

func TestOverflowShowCardSwap(t *testing.T) {
	a := types.NewSubmitAction("A")
	s := types.NewShowCardAction("S", types.NewCard(""))
	card := newCard()
	card.Actions = []types.ActionElement{a, s}

	rec := &recorder{}
	r := render.New(
		render.WithActionInvoker(rec),
		render.WithOverflowMaxActions(true),
		withHost(func(hc *hostconfig.HostConfig) { hc.Actions.MaxActions = 1 }),
	)
	rc, err := r.RenderCard(card)
	require.NoError(t, err)
	assert.Equal(t, 1, rc.Warnings.Count(types.WarnMaxActionsExceeded))

	buttonA := findText(t, rc.Root, ui.KindButton, "A")
	buttonS := findText(t, rc.Root, ui.KindButton, "S")
	itemA := findText(t, rc.Root, ui.KindMenuItem, "A")
	itemS := findText(t, rc.Root, ui.KindMenuItem, "S")
	panel := ofKind(rc.Root, ui.KindShowCardPanel)
	require.Len(t, panel, 1)

	assert.True(t, buttonA.Visible)
	assert.False(t, buttonS.Visible)
	assert.True(t, itemS.Visible)
	assert.False(t, itemA.Visible)

	require.NoError(t, itemS.Click())
	assert.False(t, buttonA.Visible)
	assert.True(t, buttonS.Visible)
	assert.False(t, itemS.Visible)
	assert.True(t, itemA.Visible)
	assert.True(t, panel[0].Visible)
	assert.Empty(t, rec.events)

	// the swapped out action still works from the menu
	require.NoError(t, itemA.Click())
	require.Len(t, rec.events, 1)
	assert.Same(t, a, rec.events[0].Action)
}

func TestToggleVisibility(t *testing.T) {
	details := textBlock("details", "details")
	details.SetSeparator(true)
	hidden := false
	toggle := types.NewToggleVisibilityAction("Toggle",
		types.ToggleTarget{ElementID: "details"},
		types.ToggleTarget{ElementID: "summary", IsVisible: &hidden},
	)
	card := newCard(textBlock("summary", "summary"), details)
	card.Actions = []types.ActionElement{toggle}

	rc, err := render.New().RenderCard(card)
	require.NoError(t, err)

	seps := ofKind(rc.Root, ui.KindSeparator)
	require.Len(t, seps, 1)
	button := findText(t, rc.Root, ui.KindButton, "Toggle")

	require.NoError(t, button.Click())
	assert.False(t, rc.ElementNode("details").Visible)
	assert.False(t, seps[0].Visible)
	assert.False(t, rc.ElementNode("summary").Visible)

	require.NoError(t, button.Click())
	assert.True(t, rc.ElementNode("details").Visible)
	assert.True(t, seps[0].Visible)
	assert.False(t, rc.ElementNode("summary").Visible)

	missing := types.NewToggleVisibilityAction("Missing", types.ToggleTarget{ElementID: "nope"})
	assert.True(t, errors.IsErrorCode(rc.Invoke(missing), errors.ErrNotFound))
}

func TestInvisibleElementRendersHidden(t *testing.T) {
	tb := textBlock("later", "later")
	tb.SetIsVisible(false)
	rc, err := render.New().RenderCard(newCard(tb))
	require.NoError(t, err)
	node := rc.ElementNode("later")
	require.NotNil(t, node)
	assert.False(t, node.Visible)
}

func TestInputs(t *testing.T) {
	name := types.NewTextInput("name")
	name.Label = "Name"
	name.IsRequired = true
	name.Value = "Ada"
	agree := types.NewToggleInput("agree", "I agree")
	noLabel := types.NewNumberInput("qty")
	noLabel.IsRequired = true

	submit := types.NewSubmitAction("Send")
	card := newCard(name, agree, noLabel)
	card.Actions = []types.ActionElement{submit}

	rec := &recorder{}
	rc, err := render.New(render.WithActionInvoker(rec)).RenderCard(card)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "agree", "qty"}, rc.InputIDs())
	assert.Equal(t, 1, rc.Warnings.Count(types.WarnRequiredPropertyMissing))

	label := rc.Root.Find(func(n *ui.Node) bool { return n.Prop("role") == "label" })
	require.NotNil(t, label)
	assert.Equal(t, "Name *", label.Text)

	require.NoError(t, rc.Root.FindByName("agree").Click())
	require.NoError(t, rc.SetInputValue("name", "Grace"))
	assert.True(t, errors.IsErrorCode(rc.SetInputValue("nope", "x"), errors.ErrNotFound))

	require.NoError(t, findText(t, rc.Root, ui.KindButton, "Send").Click())
	require.Len(t, rec.events, 1)
	assert.Equal(t, rc.ID, rec.events[0].CardID)
	assert.Equal(t, map[string]string{"name": "Grace", "agree": "true", "qty": ""}, rec.events[0].Inputs)
}

func TestInlineAction(t *testing.T) {
	withAction := func(action types.ActionElement) *types.TextInput {
		in := types.NewTextInput("q")
		in.InlineAction = action
		return in
	}

	rc, err := render.New().RenderCard(newCard(withAction(types.NewSubmitAction("Go"))))
	require.NoError(t, err)
	button := findText(t, rc.Root, ui.KindButton, "Go")
	assert.Equal(t, 1, button.Column)

	rc, err = render.New().RenderCard(newCard(withAction(types.NewShowCardAction("More", types.NewCard("")))))
	require.NoError(t, err)
	assert.Empty(t, ofKind(rc.Root, ui.KindButton))
	assert.Equal(t, 1, rc.Warnings.Count(types.WarnUnsupportedValue))
}

func TestActionInvocationErrors(t *testing.T) {
	disabled := types.NewSubmitAction("Off")
	disabled.SetIsEnabled(false)
	card := newCard()
	card.Actions = []types.ActionElement{disabled, types.NewSubmitAction("On")}

	rc, err := render.New().RenderCard(card)
	require.NoError(t, err)

	off := findText(t, rc.Root, ui.KindButton, "Off")
	assert.Equal(t, "false", off.Prop("enabled"))
	assert.Error(t, off.Click())
	assert.True(t, errors.IsErrorCode(rc.Invoke(disabled), errors.ErrInvalidInput))

	// no invoker configured
	err = findText(t, rc.Root, ui.KindButton, "On").Click()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
}

func TestActionStyles(t *testing.T) {
	styled := func(sentiment string) *types.Card {
		a := types.NewSubmitAction("Go")
		a.SetStyle(sentiment)
		card := newCard()
		card.Actions = []types.ActionElement{a}
		return card
	}

	tests := []struct {
		name      string
		sentiment string
		overrides cascade.MapStyles
		style     string
		warning   bool
	}{
		{"default", types.SentimentDefault, nil, cascade.StyleAction, false},
		{"positive", types.SentimentPositive, nil, cascade.StylePositiveDefault, false},
		{"positive override", types.SentimentPositive,
			cascade.MapStyles{cascade.StyleActionPositive: {Background: "#FF00FF00"}}, cascade.StyleActionPositive, false},
		{"custom", "fancy",
			cascade.MapStyles{"Adaptive.Action.fancy": {Background: "#FF00FF00"}}, "Adaptive.Action.fancy", false},
		{"missing custom", "fancy", nil, cascade.StyleAction, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := render.New(render.WithOverrideStyles(tt.overrides)).RenderCard(styled(tt.sentiment))
			require.NoError(t, err)
			button := findText(t, rc.Root, ui.KindButton, "Go")
			assert.Equal(t, tt.style, button.Style)
			assert.Equal(t, tt.warning, rc.Warnings.Has(types.WarnCustomWarning))
		})
	}
}

func TestContainerStylesAndColumns(t *testing.T) {
	box := types.NewContainer(textBlock("inner", "inner"))
	box.SetID("box")
	box.SetContainerStyle(types.ContainerStyleEmphasis)

	left := types.NewColumn(types.NewTextBlock("l"))
	left.SetID("left")
	right := types.NewColumn(types.NewTextBlock("r"))
	right.SetID("right")
	right.Width = "stretch"

	rc, err := render.New().RenderCard(newCard(box, types.NewColumnSet(left, right)))
	require.NoError(t, err)

	node := rc.ElementNode("box")
	assert.Equal(t, "#08000000", node.Background)
	assert.Equal(t, ui.Thickness{Left: 20, Top: 20, Right: 20, Bottom: 20}, node.Padding)

	assert.Equal(t, 0, rc.ElementNode("left").Column)
	assert.Equal(t, 1, rc.ElementNode("right").Column)
	assert.Equal(t, 8, rc.ElementNode("right").Margin.Left)
	assert.Equal(t, "stretch", rc.ElementNode("right").Prop("width"))
}

func TestHeadingTextBlock(t *testing.T) {
	heading := textBlock("h", "Title")
	heading.Style = types.TextStyleHeading
	rc, err := render.New().RenderCard(newCard(heading))
	require.NoError(t, err)

	node := rc.ElementNode("h")
	assert.Equal(t, "heading", node.Prop("role"))
	assert.Equal(t, "17", node.Prop("size"))
	assert.Equal(t, "600", node.Prop("weight"))
	assert.Equal(t, "2", node.Prop("level"))
}

func TestRenderJSONWarningOrder(t *testing.T) {
	doc := `{"type": "AdaptiveCard", "version": "1.5", "body": [
		{"type": "Foo", "fallback": "drop"},
		{"type": "TextBlock", "id": "t", "text": "hi"}
	]}`
	rc, err := render.New().RenderJSON([]byte(doc))
	require.NoError(t, err)
	require.Len(t, rc.Warnings, 2)
	assert.Equal(t, "Unknown element type Foo", rc.Warnings[0].Message)
	assert.Equal(t, types.WarnUnknownElementType, rc.Warnings[1].StatusCode)
	assert.Equal(t, "hi", rc.Root.FindByName("t").Text)

	_, err = render.New().RenderJSON([]byte(`{"type": "Other"}`))
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}

func TestRenderYAML(t *testing.T) {
	doc := `
type: AdaptiveCard
version: "1.5"
body:
  - type: TextBlock
    id: t
    text: from yaml
actions:
  - type: Action.OpenUrl
    title: Docs
    url: https://example.com
`
	rc, err := render.New().RenderYAML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "from yaml", rc.Root.FindByName("t").Text)
	assert.Equal(t, "https://example.com", findText(t, rc.Root, ui.KindButton, "Docs").Prop("url"))
}

func TestActionRendererReturningNil(t *testing.T) {
	actions := render.NewActionRendererRegistration()
	require.NoError(t, actions.Register(string(types.ActionSubmit), render.ActionRendererFunc(
		func(types.ActionElement, *render.Context, render.Args) (*ui.Node, error) {
			return nil, nil
		})))

	card := newCard(textBlock("t", "hi"))
	card.Actions = []types.ActionElement{types.NewSubmitAction("Send")}

	var rc *render.RenderedCard
	var err error
	require.NotPanics(t, func() {
		rc, err = render.New(render.WithActionRenderers(actions)).RenderCard(card)
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	require.NotNil(t, rc)
	assert.Nil(t, rc.Root)
}

func TestAssociatedInputs(t *testing.T) {
	secret := types.NewTextInput("secret")
	secret.Value = "x"

	tests := []struct {
		name   string
		action types.ActionElement
		want   map[string]string
	}{
		{"submit auto", types.NewSubmitAction("Send"), map[string]string{"secret": "x"}},
		{"submit none", func() types.ActionElement {
			a := types.NewSubmitAction("Send")
			a.AssociatedInputs = "None"
			return a
		}(), map[string]string{}},
		{"execute none", func() types.ActionElement {
			a := types.NewExecuteAction("Send", "cancel")
			a.AssociatedInputs = "none"
			return a
		}(), map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := newCard(secret)
			card.Actions = []types.ActionElement{tt.action}

			rec := &recorder{}
			rc, err := render.New(render.WithActionInvoker(rec)).RenderCard(card)
			require.NoError(t, err)

			require.NoError(t, findText(t, rc.Root, ui.KindButton, "Send").Click())
			require.Len(t, rec.events, 1)
			assert.Equal(t, tt.want, rec.events[0].Inputs)
		})
	}
}

type mediaRecorder struct {
	recorder
	media []render.MediaEvent
}

func (r *mediaRecorder) SendMediaClickedEvent(e render.MediaEvent) error {
	r.media = append(r.media, e)
	return nil
}

func TestMediaClick(t *testing.T) {
	clip := types.NewMedia(types.MediaSource{MimeType: "video/mp4", URL: "https://example.com/clip.mp4"})
	clip.SetID("clip")

	rec := &mediaRecorder{}
	rc, err := render.New(render.WithActionInvoker(rec)).RenderCard(newCard(clip))
	require.NoError(t, err)

	require.NoError(t, rc.Root.FindByName("clip").Click())
	require.Len(t, rec.media, 1)
	assert.Equal(t, rc.ID, rec.media[0].CardID)
	assert.Same(t, clip, rec.media[0].Media)
	assert.Empty(t, rec.events)

	// an invoker without media support
	rc, err = render.New(render.WithActionInvoker(&recorder{})).RenderCard(newCard(clip))
	require.NoError(t, err)
	err = rc.Root.FindByName("clip").Click()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
}

func TestDroppedInlineActionWarnsOnce(t *testing.T) {
	future := types.NewUnknownAction("Action.Future", nil)
	require.NoError(t, future.SetFallback(types.FallbackDrop, nil))
	in := types.NewTextInput("q")
	in.InlineAction = future

	rc, err := render.New().RenderCard(newCard(in))
	require.NoError(t, err)
	assert.Empty(t, ofKind(rc.Root, ui.KindButton))
	assert.Equal(t, 1, rc.Warnings.Count(types.WarnUnknownActionElementType))
}

func TestSpacingFollowsFallbackContent(t *testing.T) {
	hc := hostconfig.Default()

	spaced := textBlock("spaced", "fallback")
	spaced.SetSpacing(types.SpacingLarge)
	graph := types.NewUnknownElement("Graph", nil)
	require.NoError(t, graph.SetFallback(types.FallbackContent, spaced))

	rc, err := render.New().RenderCard(newCard(textBlock("first", "first"), graph))
	require.NoError(t, err)
	assert.Equal(t, int(hc.Spacing.Large), rc.Root.FindByName("spaced").Margin.Top)

	ruled := textBlock("ruled", "fallback")
	ruled.SetSeparator(true)
	chart := types.NewUnknownElement("Chart", nil)
	require.NoError(t, chart.SetFallback(types.FallbackContent, ruled))

	rc, err = render.New().RenderCard(newCard(textBlock("first", "first"), chart))
	require.NoError(t, err)
	assert.Len(t, ofKind(rc.Root, ui.KindSeparator), 1)
}
