package types_test

import (
	"testing"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseElementDefaults(t *testing.T) {
	tb := types.NewTextBlock("hello")

	assert.Equal(t, types.ElementTextBlock, tb.ElementType())
	assert.Equal(t, "TextBlock", tb.TypeName())
	assert.True(t, tb.IsVisible())
	assert.Equal(t, types.SpacingDefault, tb.Spacing())
	assert.Equal(t, types.HeightAuto, tb.Height())
	assert.Equal(t, types.FallbackNone, tb.FallbackType())
	assert.Nil(t, tb.FallbackContent())
}

func TestSetFallback(t *testing.T) {
	content := types.NewTextBlock("fallback")

	tests := []struct {
		name         string
		fallbackType types.FallbackType
		content      types.CardElement
		wantErr      bool
	}{
		{"content with element", types.FallbackContent, content, false},
		{"content without element", types.FallbackContent, nil, true},
		{"drop without element", types.FallbackDrop, nil, false},
		{"drop with element", types.FallbackDrop, content, true},
		{"none without element", types.FallbackNone, nil, false},
		{"none with element", types.FallbackNone, content, true},
		{"unknown type", types.FallbackType("maybe"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := types.NewImage("https://example.com/a.png")
			err := img.SetFallback(tt.fallbackType, tt.content)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
				assert.Equal(t, types.FallbackNone, img.FallbackType(), "failed set must not change state")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fallbackType, img.FallbackType())
			assert.Equal(t, tt.content == nil, img.FallbackContent() == nil)
		})
	}
}

func TestActionSetFallback(t *testing.T) {
	a := types.NewSubmitAction("Send")
	require.NoError(t, a.SetFallback(types.FallbackContent, types.NewOpenURLAction("Open", "https://x")))
	assert.Equal(t, types.ActionOpenURL, a.FallbackContent().ActionType())

	err := a.SetFallback(types.FallbackContent, nil)
	assert.Error(t, err)
}

func TestActionDefaults(t *testing.T) {
	a := types.NewOpenURLAction("Docs", "https://example.com")

	assert.Equal(t, "Docs", a.Title())
	assert.Equal(t, types.ActionModePrimary, a.Mode())
	assert.Equal(t, types.SentimentDefault, a.Style())
	assert.True(t, a.IsEnabled())
	assert.Equal(t, "Action.OpenUrl", a.TypeName())
}

func TestUnknownKeepsTypeName(t *testing.T) {
	el := types.NewUnknownElement("Graph", map[string]any{"type": "Graph"})
	assert.Equal(t, types.ElementUnknown, el.ElementType())
	assert.Equal(t, "Graph", el.TypeName())

	act := types.NewUnknownAction("Action.Popup", nil)
	assert.Equal(t, types.ActionUnknown, act.ActionType())
	assert.Equal(t, "Action.Popup", act.TypeName())
}

func TestCapabilityInterfaces(t *testing.T) {
	var el types.CardElement = types.NewContainer(types.NewTextBlock("a"))

	_, isContainer := el.(types.ContainerBase)
	assert.True(t, isContainer)
	coll, isCollection := el.(types.Collection)
	require.True(t, isCollection)
	assert.Len(t, coll.Children(), 1)

	var img types.CardElement = types.NewImage("x")
	_, selectable := img.(types.Selectable)
	assert.True(t, selectable)
	_, container := img.(types.ContainerBase)
	assert.False(t, container)

	var in types.CardElement = types.NewTextInput("name")
	input, ok := in.(types.InputElement)
	require.True(t, ok)
	input.InputInfo().Label = "Name"
	assert.Equal(t, "Name", in.(*types.TextInput).Label)
}

func TestParseEnums(t *testing.T) {
	s, ok := types.ParseSpacing("ExtraLarge")
	assert.True(t, ok)
	assert.Equal(t, types.SpacingExtraLarge, s)

	_, ok = types.ParseSpacing("huge")
	assert.False(t, ok)

	m, ok := types.ParseActionMode("SECONDARY")
	assert.True(t, ok)
	assert.Equal(t, types.ActionModeSecondary, m)

	var align types.ActionAlignment
	require.NoError(t, align.UnmarshalText([]byte("Right")))
	assert.Equal(t, types.ActionAlignRight, align)
	assert.Error(t, align.UnmarshalText([]byte("diagonal")))

	style := types.ContainerStyleEmphasis
	require.NoError(t, style.UnmarshalText([]byte("")))
	assert.Equal(t, types.ContainerStyleEmphasis, style, "empty input leaves value untouched")
}

func TestWarnings(t *testing.T) {
	var w types.Warnings
	var sink types.WarningSink = &w

	sink.AddWarning(types.WarnMaxActionsExceeded, "one")
	sink.AddWarning(types.WarnUnknownElementType, "two")
	sink.AddWarning(types.WarnMaxActionsExceeded, "three")

	require.Len(t, w, 3)
	assert.Equal(t, "one", w[0].Message)
	assert.Equal(t, "three", w[2].Message)
	assert.Equal(t, 2, w.Count(types.WarnMaxActionsExceeded))
	assert.True(t, w.Has(types.WarnUnknownElementType))
	assert.False(t, w.Has(types.WarnFallbackCycle))
}

func TestWalkAndFind(t *testing.T) {
	inner := types.NewTextBlock("deep")
	inner.SetID("deep")
	col := types.NewColumn(inner)
	set := types.NewColumnSet(col)
	top := types.NewTextBlock("top")
	top.SetID("top")

	var visited []string
	types.WalkElements([]types.CardElement{top, set}, func(el types.CardElement) bool {
		visited = append(visited, el.TypeName())
		return true
	})
	assert.Equal(t, []string{"TextBlock", "ColumnSet", "Column", "TextBlock"}, visited)

	assert.Same(t, inner, types.FindElement([]types.CardElement{top, set}, "deep"))
	assert.Nil(t, types.FindElement([]types.CardElement{top, set}, "missing"))
}

func TestRequirementString(t *testing.T) {
	assert.Equal(t, "acme.charts@1.2", types.Requirement{Name: "acme.charts", Version: "1.2"}.String())
}
