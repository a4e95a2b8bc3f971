package tree_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
	"github.com/arthur-debert/cardrender/pkg/ui/tree"
)

func sample() *ui.Node {
	text := ui.NewNode(ui.KindText)
	text.Name = "title"
	text.Text = "Hello"
	text.SetProp("wrap", "true").SetProp("size", "17")

	item := ui.NewNode(ui.KindMenuItem)
	item.Text = "Archive"
	item.Visible = false
	button := ui.NewNode(ui.KindButton)
	button.Text = "..."
	button.Column = 2
	button.Flyout = ui.NewNode(ui.KindFlyout).Add(item)

	return ui.NewNode(ui.KindCard).Add(text, button)
}

func TestLines(t *testing.T) {
	r, err := tree.New(&bytes.Buffer{})
	require.NoError(t, err)

	lines := r.Lines(sample())
	require.Len(t, lines, 5)

	want := []struct {
		level int
		text  string
	}{
		{0, "Card"},
		{1, `TextBlock #title "Hello" [size=17 wrap=true]`},
		{1, `Button "..." col=2`},
		{2, "flyout: MenuFlyout"},
		{3, `MenuFlyoutItem "Archive" (hidden)`},
	}
	for i, w := range want {
		assert.Equal(t, w.level, lines[i].Level, "line %d", i)
		assert.Equal(t, w.text, lines[i].Text, "line %d", i)
	}
}

func TestRenderCard(t *testing.T) {
	var buf bytes.Buffer
	r, err := tree.New(&buf)
	require.NoError(t, err)

	warnings := []types.Warning{{StatusCode: types.WarnFallbackCycle, Message: "cycle"}}
	require.NoError(t, r.RenderCard(sample(), warnings))

	out := buf.String()
	assert.Contains(t, out, "Card")
	assert.Contains(t, out, `TextBlock #title "Hello"`)
	assert.Contains(t, out, "flyout: MenuFlyout")
	assert.Contains(t, out, "! FallbackCycle: cycle")
}

func TestRenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := tree.New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New("bad")))
	require.NoError(t, r.RenderMessage("ok"))
	assert.Equal(t, "error: bad\nok\n", buf.String())
}
