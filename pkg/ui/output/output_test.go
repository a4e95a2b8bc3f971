package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/ui"
	"github.com/arthur-debert/cardrender/pkg/ui/json"
	"github.com/arthur-debert/cardrender/pkg/ui/output"
	"github.com/arthur-debert/cardrender/pkg/ui/terminal"
	"github.com/arthur-debert/cardrender/pkg/ui/text"
	"github.com/arthur-debert/cardrender/pkg/ui/tree"
	"github.com/arthur-debert/cardrender/pkg/ui/xaml"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		format ui.Format
		want   any
	}{
		{ui.FormatAuto, &text.Renderer{}},
		{ui.FormatTerminal, &terminal.Renderer{}},
		{ui.FormatText, &text.Renderer{}},
		{ui.FormatTree, &tree.Renderer{}},
		{ui.FormatJSON, &json.Renderer{}},
		{ui.FormatXAML, &xaml.Renderer{}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			r, err := output.NewRenderer(tt.format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}

func TestNewRendererUnknownFormat(t *testing.T) {
	_, err := output.NewRenderer(ui.Format(99), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestEveryFormatRendersACard(t *testing.T) {
	root := ui.NewNode(ui.KindCard)
	label := ui.NewNode(ui.KindText)
	label.Text = "Hello"
	root.Add(label)

	for _, name := range ui.Formats() {
		t.Run(name, func(t *testing.T) {
			format, err := ui.ParseFormat(name)
			require.NoError(t, err)

			var buf bytes.Buffer
			r, err := output.NewRenderer(format, &buf)
			require.NoError(t, err)
			require.NoError(t, r.RenderCard(root, nil))
			assert.Contains(t, buf.String(), "Hello")
		})
	}
}
