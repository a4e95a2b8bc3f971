package json_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cardrender/pkg/render"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
	uijson "github.com/arthur-debert/cardrender/pkg/ui/json"
)

func TestView(t *testing.T) {
	child := ui.NewNode(ui.KindText)
	child.Text = "hi"
	child.Column = 1
	child.Margin.Top = 8
	child.SetProp("wrap", "false").SetProp("empty", "")
	root := ui.NewNode(ui.KindGrid).Add(child)
	root.Visible = false

	v := uijson.View(root)
	require.Len(t, v.Children, 1)
	assert.False(t, v.Visible)
	assert.Nil(t, v.Column)
	assert.Nil(t, v.Margin)

	c := v.Children[0]
	require.NotNil(t, c.Column)
	assert.Equal(t, 1, *c.Column)
	assert.Equal(t, &ui.Thickness{Top: 8}, c.Margin)
	assert.Equal(t, map[string]string{"wrap": "false"}, c.Props)
	assert.Nil(t, uijson.View(nil))
}

func TestRenderCard(t *testing.T) {
	rc, err := render.New().RenderJSON([]byte(`{
		"type": "AdaptiveCard",
		"body": [{"type": "TextBlock", "text": "Hello"}, {"type": "Unknown", "fallback": "drop"}],
		"actions": [{"type": "Action.Submit", "title": "Send"}]
	}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	r, err := uijson.New(&buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderCard(rc.Root, rc.Warnings))

	var doc struct {
		Root     map[string]any  `json:"root"`
		Warnings []types.Warning `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Card", doc.Root["kind"])
	assert.Contains(t, buf.String(), `"text": "Hello"`)
	assert.Contains(t, buf.String(), `"action": "Action.Submit"`)
	require.NotEmpty(t, doc.Warnings)
	assert.Equal(t, types.WarnUnknownElementType, doc.Warnings[0].StatusCode)
}

func TestRenderCardWithoutWarnings(t *testing.T) {
	var buf bytes.Buffer
	r, err := uijson.New(&buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderCard(ui.NewNode(ui.KindCard), nil))
	assert.Contains(t, buf.String(), `"warnings": []`)
}

func TestRenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := uijson.New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New("bad")))
	require.NoError(t, r.RenderMessage("ok"))
	assert.Equal(t, "{\n  \"error\": \"bad\"\n}\n{\n  \"message\": \"ok\"\n}\n", buf.String())
}
